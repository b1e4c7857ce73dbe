package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/iamNilotpal/gzipper/internal/core/ports"
	"github.com/iamNilotpal/gzipper/pkg/pool"
)

// Deflator is one compression session. The engine compresses the entire
// input into a pooled staging buffer on the first step; every step then
// drains the stage into the caller's output window until nothing remains,
// at which point the stream-end status fires.
type Deflator struct {
	src     []byte           // Immutable caller input, never written to.
	zw      io.WriteCloser   // Engine writer targeting the stage.
	stage   *bytes.Buffer    // Compressed member, drained window by window.
	pool    *pool.BufferPool // Owns the staging scratch space.
	read    int              // Input bytes consumed by this session.
	written int              // Output bytes produced by this session.
	drained int              // Stage bytes already copied out.
	started bool             // First step has run.
	closed  bool
	msg     string
}

// NewDeflator opens a compression session over src. Unsupported window
// bits or a level the engine rejects fail initialization with a stream
// status; the returned session then holds no resources and its Close is
// a no-op.
func (c *Codec) NewDeflator(src []byte, level, windowBits int32) (ports.Session, ports.Status) {
	d := &Deflator{src: src, pool: c.buffers}

	wrap, ok := resolveWrapper(windowBits, false)
	if !ok {
		d.msg = fmt.Sprintf("invalid window bits: %d", windowBits)
		return d, ports.StatusErrStream
	}

	stage := c.buffers.Get()

	var zw io.WriteCloser
	var err error
	switch wrap {
	case wrapperGzip:
		zw, err = gzip.NewWriterLevel(stage, int(level))
	case wrapperZlib:
		zw, err = zlib.NewWriterLevel(stage, int(level))
	case wrapperRaw:
		zw, err = flate.NewWriter(stage, int(level))
	}
	if err != nil {
		c.buffers.Put(stage)
		d.msg = err.Error()
		return d, ports.StatusErrStream
	}

	d.zw = zw
	d.stage = stage
	return d, ports.StatusOK
}

// Step compresses on first invocation and then copies as much of the
// staged member as fits into dst. The flush mode is accepted for contract
// symmetry; a staged engine emits identically under every mode.
func (d *Deflator) Step(dst []byte, mode ports.FlushMode) (int, ports.Status) {
	if d.closed || d.zw == nil {
		d.msg = "step on finalized session"
		return 0, ports.StatusErrStream
	}

	if !d.started {
		d.started = true
		if _, err := d.zw.Write(d.src); err != nil {
			d.msg = err.Error()
			return 0, statusFromError(err)
		}
		// Close flushes the final block and the wrapper trailer.
		if err := d.zw.Close(); err != nil {
			d.msg = err.Error()
			return 0, statusFromError(err)
		}
		d.read = len(d.src)
	}

	n := copy(dst, d.stage.Bytes()[d.drained:])
	d.drained += n
	d.written += n

	if d.drained == d.stage.Len() {
		return n, ports.StatusStreamEnd
	}
	return n, ports.StatusOK
}

func (d *Deflator) BytesRead() int { return d.read }

func (d *Deflator) BytesWritten() int { return d.written }

func (d *Deflator) Msg() string { return d.msg }

// Close returns the staging buffer to the pool. Closing an already
// finalized session is a stream error; closing a session whose
// initialization failed is a successful no-op.
func (d *Deflator) Close() ports.Status {
	if d.closed {
		d.msg = "session already finalized"
		return ports.StatusErrStream
	}
	d.closed = true

	if d.stage != nil {
		d.pool.Put(d.stage)
		d.stage = nil
	}
	d.zw = nil
	return ports.StatusOK
}
