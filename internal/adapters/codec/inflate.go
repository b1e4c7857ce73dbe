package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/iamNilotpal/gzipper/internal/core/domain"
	"github.com/iamNilotpal/gzipper/internal/core/ports"
)

// Inflator is one decompression session covering a single compressed
// stream: one gzip member, one zlib stream, or one raw deflate stream.
// Input consumption is byte-exact because the engine reads through a
// bytes.Reader, which is an io.ByteReader; after stream end the read
// position sits exactly on the member boundary.
type Inflator struct {
	src     []byte        // Immutable caller input, never written to.
	rd      *bytes.Reader // Cursor over src; its position is the consumed count.
	zr      io.ReadCloser // Engine reader, created lazily on the first step.
	wrap    wrapper
	written int  // Output bytes produced by this session.
	done    bool // Stream end already observed.
	closed  bool
	msg     string
}

// NewInflator opens a decompression session over src. Initialization only
// validates parameters; header parsing is deferred to the first step, the
// same way zlib's inflateInit leaves the input untouched.
func (c *Codec) NewInflator(src []byte, windowBits int32) (ports.Session, ports.Status) {
	i := &Inflator{src: src}

	wrap, ok := resolveWrapper(windowBits, true)
	if !ok {
		i.msg = fmt.Sprintf("invalid window bits: %d", windowBits)
		return i, ports.StatusErrStream
	}

	i.wrap = wrap
	i.rd = bytes.NewReader(src)
	return i, ports.StatusOK
}

// open parses the stream header and builds the engine reader.
func (i *Inflator) open() ports.Status {
	wrap := i.wrap
	if wrap == wrapperAuto {
		// Auto-detection: the gzip magic selects gzip framing, anything
		// else is treated as a zlib stream.
		if len(i.src) >= 2 && i.src[0] == domain.GzipID1 && i.src[1] == domain.GzipID2 {
			wrap = wrapperGzip
		} else {
			wrap = wrapperZlib
		}
	}

	switch wrap {
	case wrapperGzip:
		zr, err := gzip.NewReader(i.rd)
		if err != nil {
			i.msg = err.Error()
			return statusFromError(err)
		}
		// One session covers one member; stream end must fire at each
		// member boundary so the caller can start the next session.
		zr.Multistream(false)
		i.zr = zr
	case wrapperZlib:
		zr, err := zlib.NewReader(i.rd)
		if err != nil {
			i.msg = err.Error()
			return statusFromError(err)
		}
		i.zr = zr
	case wrapperRaw:
		i.zr = flate.NewReader(i.rd)
	}

	return ports.StatusOK
}

// Step decompresses into dst, the unused window of the caller's output
// buffer. Filling dst completely without reaching stream end is ordinary
// progress; the caller resolves it by growing the buffer and stepping
// again.
func (i *Inflator) Step(dst []byte, mode ports.FlushMode) (int, ports.Status) {
	if i.closed {
		i.msg = "step on finalized session"
		return 0, ports.StatusErrStream
	}

	if i.zr == nil {
		if st := i.open(); st != ports.StatusOK {
			return 0, st
		}
	}
	if i.done {
		return 0, ports.StatusStreamEnd
	}

	n, err := i.zr.Read(dst)
	i.written += n

	switch {
	case err == nil:
		return n, ports.StatusOK
	case errors.Is(err, io.EOF):
		i.done = true
		return n, ports.StatusStreamEnd
	default:
		i.msg = err.Error()
		return n, statusFromError(err)
	}
}

// BytesRead reports input consumption as the cursor position, which the
// engine advances byte-exactly.
func (i *Inflator) BytesRead() int {
	if i.rd == nil {
		return 0
	}
	return len(i.src) - i.rd.Len()
}

func (i *Inflator) BytesWritten() int { return i.written }

func (i *Inflator) Msg() string { return i.msg }

// Close releases the engine reader. Closing an already finalized session
// is a stream error; closing a session whose initialization failed is a
// successful no-op.
func (i *Inflator) Close() ports.Status {
	if i.closed {
		i.msg = "session already finalized"
		return ports.StatusErrStream
	}
	i.closed = true

	if i.zr != nil {
		// The interesting error already surfaced through Step; release
		// errors carry no extra signal here.
		i.zr.Close()
		i.zr = nil
	}
	return ports.StatusOK
}
