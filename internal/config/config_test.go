package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.ContinueOnError())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, lvl)
}

func TestLoadFile(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "logLevel: debug\nonError: continue\n"))
		require.NoError(t, err)

		assert.True(t, cfg.ContinueOnError())
		lvl, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, log.DebugLevel, lvl)
	})

	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "onError: continue\n"))
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "logLevel: [unterminated\n"))
		assert.Error(t, err)
	})

	t.Run("unknown onError", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "onError: retry\n"))
		assert.ErrorContains(t, err, "invalid onError")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "logLevel: loud\n"))
		assert.ErrorContains(t, err, "invalid logLevel")
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfig, writeConfig(t, "logLevel: info\nonError: halt\n"))
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvOnError, "continue")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.ContinueOnError())
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(EnvOnError, "sometimes")

	_, err := Load()
	assert.Error(t, err)
}
