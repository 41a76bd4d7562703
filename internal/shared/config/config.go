package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SplitterConfig contains the tuning knobs for a split run. None of these
// affect which shard a key routes to; the defaults reproduce the reference
// behavior exactly.
type SplitterConfig struct {
	Sink    SinkConfig    `mapstructure:"sink"`
	Read    ReadConfig    `mapstructure:"read"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SinkConfig contains output file configuration.
type SinkConfig struct {
	// BufferSize is the per-shard output buffer in bytes. The default of
	// 512 KiB suits filesystems with large blocks (e.g. Panasas, some RAID).
	BufferSize int `mapstructure:"buffer_size"`
}

// ReadConfig contains input stream configuration.
type ReadConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

// LoggingConfig contains logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load returns the splitter configuration. Defaults can be overridden with
// HASHSPLIT_-prefixed environment variables, e.g. HASHSPLIT_SINK_BUFFER_SIZE.
func Load() (*SplitterConfig, error) {
	v := viper.New()

	v.SetDefault("sink.buffer_size", 512*1024)
	v.SetDefault("read.buffer_size", 1024*1024)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("HASHSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg SplitterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Sink.BufferSize <= 0 {
		return nil, fmt.Errorf("sink buffer size must be positive: %d", cfg.Sink.BufferSize)
	}
	if cfg.Read.BufferSize <= 0 {
		return nil, fmt.Errorf("read buffer size must be positive: %d", cfg.Read.BufferSize)
	}

	return &cfg, nil
}
