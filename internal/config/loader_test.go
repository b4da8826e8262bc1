package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whirl-cli/whirl/internal/spinner"
)

// loadWithFile writes the given YAML to a temp config file and loads it.
func loadWithFile(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	loader := NewConfigLoader(viper.New(), WithConfigFile(path))
	return loader.Load()
}

func TestConfigLoader_Defaults(t *testing.T) {
	t.Setenv("WHIRL_HOME", t.TempDir())

	loader := NewConfigLoader(viper.New())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, spinner.DefaultName, cfg.Spinner)
	assert.Equal(t, spinner.MatchLenient, cfg.Matching)
	assert.Equal(t, UIFancy, cfg.UI)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Zero(t, cfg.Interval)
	assert.Empty(t, cfg.Warnings)
	assert.Empty(t, cfg.ConfigFileUsed)
}

func TestConfigLoader_FromFile(t *testing.T) {
	t.Parallel()

	cfg, err := loadWithFile(t, `
spinner: moon
interval: 150ms
matching: strict
ui: plain
color: false
debug: true
logFormat: json
`)
	require.NoError(t, err)

	assert.Equal(t, "moon", cfg.Spinner)
	assert.Equal(t, 150*time.Millisecond, cfg.Interval)
	assert.Equal(t, spinner.MatchStrict, cfg.Matching)
	assert.Equal(t, UIPlain, cfg.UI)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.NotEmpty(t, cfg.ConfigFileUsed)
}

func TestConfigLoader_EnvOverrides(t *testing.T) {
	t.Setenv("WHIRL_HOME", t.TempDir())
	t.Setenv("WHIRL_SPINNER", "clock")
	t.Setenv("WHIRL_MATCHING", "strict")
	t.Setenv("WHIRL_UI", "plain")

	loader := NewConfigLoader(viper.New())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "clock", cfg.Spinner)
	assert.Equal(t, spinner.MatchStrict, cfg.Matching)
	assert.Equal(t, UIPlain, cfg.UI)
}

func TestConfigLoader_Warnings(t *testing.T) {
	t.Parallel()

	t.Run("InvalidInterval", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadWithFile(t, "interval: soon\n")
		require.NoError(t, err)
		require.Len(t, cfg.Warnings, 1)
		assert.Contains(t, cfg.Warnings[0], "interval")
		assert.Zero(t, cfg.Interval)
	})

	t.Run("InvalidMatching", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadWithFile(t, "matching: fuzzy\n")
		require.NoError(t, err)
		require.Len(t, cfg.Warnings, 1)
		assert.Equal(t, spinner.MatchLenient, cfg.Matching)
	})
}

func TestConfigLoader_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("BadUIMode", func(t *testing.T) {
		t.Parallel()
		_, err := loadWithFile(t, "ui: curses\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ui mode")
	})

	t.Run("BadLogFormat", func(t *testing.T) {
		t.Parallel()
		_, err := loadWithFile(t, "logFormat: xml\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log format")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Spinner:   spinner.DefaultName,
			UI:        UIFancy,
			LogFormat: "text",
		}
	}

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid().Validate())
	})

	t.Run("EmptySpinner", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Spinner = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("NegativeInterval", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Interval = -time.Second
		require.Error(t, cfg.Validate())
	})
}
