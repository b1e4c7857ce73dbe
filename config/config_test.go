package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))
	require.Equal(t, int32(-1), cfg.Codec.Level)
	require.Equal(t, int32(31), cfg.Codec.WindowBits)
	require.Equal(t, uint32(16384), cfg.Codec.ChunkSize)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
codec:
  level: 9
  window_bits: 31
  chunk_size: 65536
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, int32(9), cfg.Codec.Level)
	require.Equal(t, int32(31), cfg.Codec.WindowBits)
	require.Equal(t, uint32(65536), cfg.Codec.ChunkSize)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad level": `
codec:
  level: 12
  window_bits: 31
  chunk_size: 16384
`,
		"bad window bits": `
codec:
  level: -1
  window_bits: 16
  chunk_size: 16384
`,
		"zero chunk size": `
codec:
  level: -1
  window_bits: 31
  chunk_size: 0
`,
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, contents))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
