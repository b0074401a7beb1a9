// Package config holds process configuration: defaults, an optional YAML
// file pointed at by PCALC_CONFIG, and environment overrides. Configuration
// only shapes ambient behavior (logging, input limits); it never changes the
// arithmetic a subcommand performs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all pcalc configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Input   InputConfig   `yaml:"input"`
}

// LoggingConfig configures the stderr logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// InputConfig bounds the stdin reader.
type InputConfig struct {
	// MaxLineBytes caps a single input line; 0 selects the stream
	// package default.
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
		},
		Input: InputConfig{
			MaxLineBytes: 0,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// named by PCALC_CONFIG if set, then environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv("PCALC_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PCALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PCALC_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PCALC_MAX_LINE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Input.MaxLineBytes = n
		}
	}
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Logging.Format)
	}
	return nil
}
