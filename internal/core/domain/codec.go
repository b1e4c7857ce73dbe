// Package domain defines the core types and configuration for the gzipper
// buffer codec.
package domain

// Compression level presets. The value is handed to the codec
// uninterpreted, so anything the engine accepts is legal here.
const (
	NoCompression      int32 = 0
	BestSpeed          int32 = 1
	BestCompression    int32 = 9
	DefaultCompression int32 = -1
)

// Window-bits presets. The base value selects the codec's largest history
// window; the +16 bias requests gzip wrapping on compression and the +32
// bias requests automatic gzip/zlib header detection on decompression.
// Values between 8 and 15 select a zlib wrapper, negative values between
// -15 and -8 select raw deflate with no wrapper at all.
const (
	MaxWindowBits  int32 = 15
	GzipWindowBits int32 = MaxWindowBits + 16
	AutoWindowBits int32 = MaxWindowBits + 32
)

// Leading magic bytes of a gzip member.
const (
	GzipID1 byte = 0x1F
	GzipID2 byte = 0x8B
)
