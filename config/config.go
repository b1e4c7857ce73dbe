package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Codec CodecConfig `yaml:"codec"`
}

// Holds codec-specific configuration.
type CodecConfig struct {
	Level      int32  `yaml:"level"`       // Compression level (-2 to 9, -1 for default)
	WindowBits int32  `yaml:"window_bits"` // History window and wrapper selector
	ChunkSize  uint32 `yaml:"chunk_size"`  // Output buffer growth increment in bytes
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Codec: CodecConfig{
			Level:      -1,        // codec default
			WindowBits: 15 + 16,   // gzip wrapping
			ChunkSize:  1024 * 16, // 16KB
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Codec.Level < -2 || config.Codec.Level > 9 {
		return fmt.Errorf("level must be between -2 and 9, got %d", config.Codec.Level)
	}

	if err := validateWindowBits(config.Codec.WindowBits); err != nil {
		return err
	}

	if config.Codec.ChunkSize == 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	return nil
}

func validateWindowBits(bits int32) error {
	// Accepted ranges: raw deflate (-15..-8), zlib (8..15), gzip (24..31),
	// auto-detect (40..47).
	if (bits >= -15 && bits <= -8) || (bits >= 8 && bits <= 15) ||
		(bits >= 24 && bits <= 31) || (bits >= 40 && bits <= 47) {
		return nil
	}
	return fmt.Errorf("window_bits must select a supported wrapper, got %d", bits)
}
