package gzip

import (
	"fmt"

	"github.com/iamNilotpal/gzipper/internal/core/domain"
	"github.com/iamNilotpal/gzipper/pkg/errors"
)

func Validate(opts *domain.GzipOptions) error {
	if opts.ChunkSize != 0 && opts.ChunkSize < DefaultMinChunkSize {
		return errors.NewValidationError(
			"chunkSize", opts.ChunkSize,
			fmt.Errorf("chunk size must be at least 1KB (%d bytes), got %d bytes", DefaultMinChunkSize, opts.ChunkSize),
		)
	}

	if opts.ChunkSize > DefaultMaxChunkSize {
		return errors.NewValidationError(
			"chunkSize", opts.ChunkSize,
			fmt.Errorf("chunk size must not exceed 16MB (%d bytes), got %d bytes", DefaultMaxChunkSize, opts.ChunkSize),
		)
	}

	return nil
}
