package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/snarkyed/internal/config/loader"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "SNARKYED_"

// Default configuration values.
const (
	DefaultPageStep   = 10
	DefaultLineHeight = 1.0
	DefaultTabWidth   = 4
	DefaultLogLevel   = "info"
)

// Config is the resolved configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			PageStep:   DefaultPageStep,
			LineHeight: DefaultLineHeight,
			TabWidth:   DefaultTabWidth,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultPath returns the user config file location, or "" if the
// platform has no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "snarkyed", "config.toml")
}

// Load resolves defaults, the TOML file at path and SNARKYED_ environment
// variables, then validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	loaders := []loader.Loader{}
	if path != "" {
		loaders = append(loaders, loader.NewTOMLLoader(path))
	}
	loaders = append(loaders, loader.NewEnvLoader(EnvPrefix))
	return LoadFrom(loaders...)
}

// LoadFrom applies loaders over the defaults in order, later loaders
// overriding earlier ones, then validates the result.
func LoadFrom(loaders ...loader.Loader) (*Config, error) {
	merged := make(map[string]any)
	for _, l := range loaders {
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.decode(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays a raw settings map onto c. Settings absent from the
// map keep their current values.
func (c *Config) decode(raw map[string]any) error {
	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return nil
}

// Validate checks every setting for a usable value.
func (c *Config) Validate() error {
	if c.Editor.PageStep <= 0 {
		return &ValidationError{Path: "editor.page_step", Message: "must be positive", Value: c.Editor.PageStep}
	}
	// Terminal rows are whole cells; a shorter row would overlap the next.
	if c.Editor.LineHeight < 1 {
		return &ValidationError{Path: "editor.line_height", Message: "must be at least 1", Value: c.Editor.LineHeight}
	}
	if c.Editor.TabWidth <= 0 {
		return &ValidationError{Path: "editor.tab_width", Message: "must be positive", Value: c.Editor.TabWidth}
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return &ValidationError{Path: "logging.level", Message: "unknown log level", Value: c.Logging.Level}
	}
	return nil
}
