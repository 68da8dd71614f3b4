package navigator

import (
	"io"
	"log/slog"
)

// DefaultPageStep is the number of lines a page scroll moves by default.
const DefaultPageStep = 10

// Option configures a Navigator during creation.
type Option func(*Navigator)

// WithPageStep sets the default page scroll step.
func WithPageStep(step int) Option {
	return func(n *Navigator) {
		if step > 0 {
			n.pageStep = step
		}
	}
}

// WithLogger sets the logger used for debug tracing of navigation.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
