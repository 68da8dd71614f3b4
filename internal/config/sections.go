package config

import "log/slog"

// EditorConfig holds navigation and display settings.
type EditorConfig struct {
	// PageStep is the number of lines a page scroll moves.
	PageStep int `toml:"page_step"`

	// LineHeight is the height of one row in display units.
	// The terminal frontend measures in cells, so 1 is one line per row.
	LineHeight float64 `toml:"line_height"`

	// TabWidth is the display width of a tab stop.
	TabWidth int `toml:"tab_width"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// File is the log destination. Empty discards logs.
	File string `toml:"file"`
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}
