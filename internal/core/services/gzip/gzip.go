// Package gzip turns the codec's fixed-size, step-wise session interface
// into a simple bytes-in, bytes-out API over complete in-memory buffers:
// it manages growable output buffers, drives chunked encode and decode
// loops, walks concatenated gzip members, and classifies codec statuses
// into typed errors.
package gzip

import (
	"github.com/iamNilotpal/gzipper/internal/core/domain"
	"github.com/iamNilotpal/gzipper/internal/core/ports"
	"github.com/iamNilotpal/gzipper/pkg/errors"
)

// Gzip compresses and decompresses byte buffers through a codec engine.
// Every call owns its own buffers and sessions, so a single instance is
// safe for concurrent use.
type Gzip struct {
	codec     ports.Codec
	chunkSize int // Growth increment for compression output buffers.
}

func New(opts *domain.GzipOptions) (*Gzip, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
		opts = prepareDefaults(opts)
	} else {
		opts = prepareDefaults(&domain.GzipOptions{})
	}

	return &Gzip{codec: opts.Custom, chunkSize: int(opts.ChunkSize)}, nil
}

// Compress compresses data into a single gzip member (or the wrapper the
// options' window bits select). Empty input returns an empty buffer
// without touching the codec. A nil opts selects the codec's default
// level and gzip wrapping.
func (g *Gzip) Compress(data []byte, opts *domain.CompressOptions) ([]byte, error) {
	opts = prepareCompressDefaults(opts)
	if len(data) == 0 {
		return []byte{}, nil
	}

	sess, st := g.codec.NewDeflator(data, opts.Level, opts.WindowBits)
	if st != ports.StatusOK {
		cerr := errors.Classify(int32(st), sess.Msg())
		sess.Close()
		return nil, cerr
	}

	out := make([]byte, g.chunkSize)
	produced := 0

	for {
		// A full buffer means the last step exhausted its window; extend
		// by one chunk before stepping again.
		if produced == len(out) {
			out = grow(out, g.chunkSize)
		}

		n, st := sess.Step(out[produced:], ports.FlushFinish)
		produced += n

		if st == ports.StatusStreamEnd {
			break
		}
		if st != ports.StatusOK {
			cerr := errors.Classify(int32(st), sess.Msg())
			sess.Close()
			return nil, cerr
		}
	}

	if st := sess.Close(); st != ports.StatusOK {
		return nil, errors.Classify(int32(st), sess.Msg())
	}
	return out[:produced], nil
}

// Decompress inflates data, transparently handling multiple concatenated
// gzip members. Empty input returns an empty buffer without touching the
// codec. A nil opts selects automatic gzip/zlib header detection.
func (g *Gzip) Decompress(data []byte, opts *domain.DecompressOptions) ([]byte, error) {
	opts = prepareDecompressDefaults(opts)
	if len(data) == 0 {
		return []byte{}, nil
	}

	// Start from a 2x estimate of typical ratios and grow by half the
	// input length, never less than one byte so the codec always sees
	// fresh output space.
	step := len(data) / 2
	if step < 1 {
		step = 1
	}

	out := make([]byte, 2*len(data))
	consumed, produced := 0, 0

	// One session per member: the codec signals stream end at each member
	// boundary, so a fresh session picks up where the previous one
	// stopped until the whole input is consumed.
	for consumed < len(data) {
		sess, st := g.codec.NewInflator(data[consumed:], opts.WindowBits)
		if st != ports.StatusOK {
			cerr := errors.Classify(int32(st), sess.Msg())
			sess.Close()
			return nil, cerr
		}

		stalls := 0
		for {
			if produced == len(out) {
				out = grow(out, step)
			}

			before := sess.BytesRead()
			n, st := sess.Step(out[produced:], ports.FlushSync)
			produced += n

			if st == ports.StatusStreamEnd {
				break
			}
			if st != ports.StatusOK {
				cerr := errors.Classify(int32(st), sess.Msg())
				sess.Close()
				return nil, cerr
			}

			// A step that moved nothing in either direction will never
			// move anything; growth alone cannot fix that, so report
			// exhausted output space instead of looping forever.
			if n == 0 && sess.BytesRead() == before {
				if stalls++; stalls > 1 {
					cerr := errors.Classify(int32(ports.StatusErrBuffer), sess.Msg())
					sess.Close()
					return nil, cerr
				}
			} else {
				stalls = 0
			}
		}

		consumed += sess.BytesRead()
		if st := sess.Close(); st != ports.StatusOK {
			return nil, errors.Classify(int32(st), sess.Msg())
		}
	}

	return out[:produced], nil
}

// IsGzipped reports whether data begins with the gzip magic bytes.
// Buffers shorter than two bytes report false.
func IsGzipped(data []byte) bool {
	return len(data) >= 2 && data[0] == domain.GzipID1 && data[1] == domain.GzipID2
}
