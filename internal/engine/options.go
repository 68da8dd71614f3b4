package engine

import (
	"io"
	"log/slog"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithPageStep sets the number of lines a page scroll moves.
func WithPageStep(step int) Option {
	return func(e *Engine) {
		if step > 0 {
			e.pageStep = step
		}
	}
}

// WithLogger sets the logger for the engine and its navigator.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.With("component", "engine")
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
