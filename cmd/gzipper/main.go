package main

import (
	"bytes"
	"os"

	"go.uber.org/zap"

	"github.com/iamNilotpal/gzipper/config"
	"github.com/iamNilotpal/gzipper/internal/core/domain"
	"github.com/iamNilotpal/gzipper/internal/core/services/gzip"
	"github.com/iamNilotpal/gzipper/pkg/errors"
	"github.com/iamNilotpal/gzipper/pkg/logger"
)

func main() {
	logger := logger.New("gzipper")
	defer logger.Sync()

	logger.Info("starting gzipper demo")

	cfg := config.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := config.LoadConfig(os.Args[1])
		if err != nil {
			logger.Infow("load config error", "path", os.Args[1], "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	codec, err := gzip.New(&domain.GzipOptions{ChunkSize: cfg.Codec.ChunkSize})
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("create codec error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("create codec error", "error", err)
		}
		os.Exit(1)
	}

	payload := bytes.Repeat([]byte("all work and no play makes jack a dull boy. "), 512)

	compressed, err := codec.Compress(
		payload,
		&domain.CompressOptions{Level: cfg.Codec.Level, WindowBits: cfg.Codec.WindowBits},
	)
	if err != nil {
		logCodecError(logger, "compress error", err)
		os.Exit(1)
	}
	logger.Infow("compressed",
		"in", len(payload), "out", len(compressed), "gzip", gzip.IsGzipped(compressed),
	)

	restored, err := codec.Decompress(compressed, nil)
	if err != nil {
		logCodecError(logger, "decompress error", err)
		os.Exit(1)
	}
	logger.Infow("round trip", "out", len(restored), "match", bytes.Equal(payload, restored))
}

func logCodecError(logger *zap.SugaredLogger, op string, err error) {
	if cerr := errors.AsCodecError(err); cerr != nil {
		logger.Infow(op, "kind", cerr.Kind.String(), "code", cerr.Code, "error", cerr.Message)
		return
	}
	logger.Infow(op, "error", err)
}
