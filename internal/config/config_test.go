package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Input.MaxLineBytes)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PCALC_CONFIG", "")
	t.Setenv("PCALC_LOG_LEVEL", "")
	t.Setenv("PCALC_LOG_FORMAT", "")
	t.Setenv("PCALC_MAX_LINE_BYTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	// A config file path in the developer's shell must not leak in.
	t.Setenv("PCALC_CONFIG", "")

	t.Run("log level", func(t *testing.T) {
		t.Setenv("PCALC_LOG_LEVEL", "debug")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("log format", func(t *testing.T) {
		t.Setenv("PCALC_LOG_FORMAT", "json")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("max line bytes", func(t *testing.T) {
		t.Setenv("PCALC_MAX_LINE_BYTES", "4096")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 4096, cfg.Input.MaxLineBytes)
	})

	t.Run("non-numeric max line bytes is ignored", func(t *testing.T) {
		t.Setenv("PCALC_MAX_LINE_BYTES", "lots")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Input.MaxLineBytes)
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		t.Setenv("PCALC_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("logging:\n  level: warn\n  format: json\ninput:\n  max_line_bytes: 128\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("PCALC_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 128, cfg.Input.MaxLineBytes)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))
	t.Setenv("PCALC_CONFIG", path)
	t.Setenv("PCALC_LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("PCALC_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
