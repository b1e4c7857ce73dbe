package domain

import (
	"github.com/iamNilotpal/gzipper/internal/core/ports"
)

// GzipOptions defines the configuration for a Gzip service instance.
type GzipOptions struct {
	// ChunkSize controls the growth increment of the compression output
	// buffer, which also serves as its initial capacity. Larger chunks
	// mean fewer codec steps at the cost of memory overshoot on small
	// payloads. Must be between 1KB and 16MB.
	//
	// Default: 16KB
	ChunkSize uint32

	// Custom allows using a custom Codec implementation.
	// If provided, it takes precedence over the built-in engine.
	Custom ports.Codec
}

// CompressOptions configures a single compression call.
type CompressOptions struct {
	// Level is the compression level, passed to the codec uninterpreted.
	// The zero value selects NoCompression; use DefaultCompression (-1)
	// explicitly to get the codec's default trade-off.
	Level int32

	// WindowBits selects the history window and wrapper format.
	// The zero value selects GzipWindowBits (gzip-wrapped output).
	WindowBits int32
}

// DecompressOptions configures a single decompression call.
type DecompressOptions struct {
	// WindowBits selects the history window and wrapper format.
	// The zero value selects AutoWindowBits (automatic gzip/zlib
	// header detection).
	WindowBits int32
}
