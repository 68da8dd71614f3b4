package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/snarkyed/internal/config/loader"
)

// mapLoader serves a fixed settings map.
type mapLoader map[string]any

func (m mapLoader) Load() (map[string]any, error) { return m, nil }

type errLoader struct{ err error }

func (l errLoader) Load() (map[string]any, error) { return nil, l.err }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPageStep, cfg.Editor.PageStep)
	assert.Equal(t, DefaultLineHeight, cfg.Editor.LineHeight)

	level, err := cfg.Logging.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
page_step = 25
line_height = 2.0

[logging]
level = "debug"
file = "/tmp/snarkyed.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Editor.PageStep)
	assert.Equal(t, 2.0, cfg.Editor.LineHeight)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/snarkyed.log", cfg.Logging.File)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(loader.NewTOMLLoader(filepath.Join(t.TempDir(), "none.toml")))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "[editor]\npage_step = 25\n")
	t.Setenv("SNARKYED_PAGE_STEP", "40")
	t.Setenv("SNARKYED_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Editor.PageStep)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[editor\npage_step = 3\n")

	_, err := Load(path)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestLoadWrongType(t *testing.T) {
	_, err := LoadFrom(mapLoader{"editor": map[string]any{"page_step": "many"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestLoadLoaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadFrom(errLoader{boom})
	assert.ErrorIs(t, err, boom)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"zero page step", func(c *Config) { c.Editor.PageStep = 0 }, "editor.page_step"},
		{"negative line height", func(c *Config) { c.Editor.LineHeight = -1 }, "editor.line_height"},
		{"fractional line height", func(c *Config) { c.Editor.LineHeight = 0.5 }, "editor.line_height"},
		{"zero tab width", func(c *Config) { c.Editor.TabWidth = 0 }, "editor.tab_width"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidationFailed))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.path, verr.Path)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("HOME", "/home/u")
	path := DefaultPath()
	if path != "" {
		assert.Equal(t, "config.toml", filepath.Base(path))
		assert.Equal(t, "snarkyed", filepath.Base(filepath.Dir(path)))
	}
}
