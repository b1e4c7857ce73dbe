// Package codec adapts the klauspost/compress DEFLATE engine to the
// step-wise session contract in ports. Sessions own the engine's state
// for one compressed stream, track their own byte accounting, and
// translate the engine's error values into zlib-numbered statuses;
// they never surface Go errors directly.
package codec

import (
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/iamNilotpal/gzipper/internal/core/ports"
	"github.com/iamNilotpal/gzipper/pkg/pool"
)

// Initial capacity of pooled staging buffers.
const stagingBufferSize = 16384 // 16KB

// Codec creates deflate and inflate sessions backed by klauspost/compress.
// Safe for concurrent use; every session it creates is independent.
type Codec struct {
	buffers *pool.BufferPool // Scratch space shared across deflate sessions.
}

func New() *Codec {
	return &Codec{buffers: pool.NewBufferPool(stagingBufferSize)}
}

// wrapper identifies the container format a window-bits value selects.
type wrapper int

const (
	wrapperRaw  wrapper = iota // bare deflate stream, no framing
	wrapperZlib                // zlib header and Adler-32 trailer
	wrapperGzip                // gzip member framing
	wrapperAuto                // gzip or zlib, detected from the header
)

// resolveWrapper maps a zlib-style windowBits value to the wrapper it
// selects. The +32 auto-detect bias is only valid for decompression.
func resolveWrapper(windowBits int32, inflate bool) (wrapper, bool) {
	switch {
	case windowBits >= -15 && windowBits <= -8:
		return wrapperRaw, true
	case windowBits >= 8 && windowBits <= 15:
		return wrapperZlib, true
	case windowBits >= 24 && windowBits <= 31:
		return wrapperGzip, true
	case inflate && windowBits >= 40 && windowBits <= 47:
		return wrapperAuto, true
	default:
		return 0, false
	}
}

// statusFromError translates an engine error into a codec status.
func statusFromError(err error) ports.Status {
	var corrupt flate.CorruptInputError

	switch {
	case errors.Is(err, gzip.ErrHeader),
		errors.Is(err, gzip.ErrChecksum),
		errors.Is(err, zlib.ErrHeader),
		errors.Is(err, zlib.ErrChecksum),
		errors.Is(err, zlib.ErrDictionary),
		errors.As(err, &corrupt):
		return ports.StatusErrData
	case errors.Is(err, io.ErrUnexpectedEOF):
		// A stream that ends mid-member is corrupt input, not an
		// output-space problem.
		return ports.StatusErrData
	default:
		return ports.StatusErrStream
	}
}
