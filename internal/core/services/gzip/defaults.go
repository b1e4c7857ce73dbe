package gzip

import (
	"github.com/iamNilotpal/gzipper/internal/adapters/codec"
	"github.com/iamNilotpal/gzipper/internal/core/domain"
)

const (
	DefaultChunkSize    = 16384    // 16KB
	DefaultMinChunkSize = 1024     // 1KB
	DefaultMaxChunkSize = 16777216 // 16MB
)

func prepareDefaults(opts *domain.GzipOptions) *domain.GzipOptions {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if opts.Custom == nil {
		opts.Custom = codec.New()
	}

	return opts
}

func prepareCompressDefaults(opts *domain.CompressOptions) *domain.CompressOptions {
	if opts == nil {
		return &domain.CompressOptions{
			Level:      domain.DefaultCompression,
			WindowBits: domain.GzipWindowBits,
		}
	}

	if opts.WindowBits == 0 {
		opts.WindowBits = domain.GzipWindowBits
	}

	return opts
}

func prepareDecompressDefaults(opts *domain.DecompressOptions) *domain.DecompressOptions {
	if opts == nil {
		return &domain.DecompressOptions{WindowBits: domain.AutoWindowBits}
	}

	if opts.WindowBits == 0 {
		opts.WindowBits = domain.AutoWindowBits
	}

	return opts
}
