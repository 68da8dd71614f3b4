package engine

import (
	"log/slog"

	"github.com/dshills/snarkyed/internal/engine/navigator"
	"github.com/dshills/snarkyed/internal/engine/textstore"
	"github.com/dshills/snarkyed/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Intent is a navigation request.
	Intent = navigator.Intent

	// IntentKind identifies a navigation request.
	IntentKind = navigator.IntentKind

	// Frame is the state a frontend paints.
	Frame = navigator.Frame

	// Geometry is the display area supplied each frame.
	Geometry = viewport.Geometry
)

// Re-export constants.
const (
	IntentUp        = navigator.IntentUp
	IntentDown      = navigator.IntentDown
	IntentLeft      = navigator.IntentLeft
	IntentRight     = navigator.IntentRight
	IntentLineStart = navigator.IntentLineStart
	IntentLineEnd   = navigator.IntentLineEnd
	IntentPageUp    = navigator.IntentPageUp
	IntentPageDown  = navigator.IntentPageDown
)

// Engine is the main facade for the text engine.
// It combines the loaded document with the navigator that moves the caret
// and viewport over it.
//
// Engine is not safe for concurrent use; drive it from a single input loop.
type Engine struct {
	store *textstore.Store
	nav   *navigator.Navigator

	// Configuration
	pageStep int
	logger   *slog.Logger
}

// Open loads the document at path and creates an engine over it.
// Load failures are reported as *textstore.LoadError.
func Open(path string, opts ...Option) (*Engine, error) {
	store, err := textstore.Load(path)
	if err != nil {
		return nil, err
	}
	return New(store, opts...), nil
}

// New creates an engine over an already loaded document.
func New(store *textstore.Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		pageStep: navigator.DefaultPageStep,
		logger:   discardLogger(),
	}

	// Apply options to get configuration
	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With("document", store.Name(), "id", store.ID().String())
	e.nav = navigator.New(store,
		navigator.WithPageStep(e.pageStep),
		navigator.WithLogger(e.logger),
	)
	e.logger.Debug("document opened", "bytes", store.Len(), "lines", store.LineCount())
	return e
}

// Store returns the underlying document.
func (e *Engine) Store() *textstore.Store {
	return e.store
}

// Navigator returns the navigator driving the caret and viewport.
func (e *Engine) Navigator() *navigator.Navigator {
	return e.nav
}

// Update runs the frame update phase for the given display geometry.
func (e *Engine) Update(g Geometry) Frame {
	return e.nav.Update(g)
}

// Apply performs a navigation intent.
func (e *Engine) Apply(in Intent) {
	e.nav.Apply(in)
}

// GoToLine puts the caret on an absolute line, clamped to the document.
func (e *Engine) GoToLine(line int) {
	e.nav.GoToLine(line)
}

// LineCount returns the number of lines in the document.
func (e *Engine) LineCount() int {
	return e.store.LineCount()
}

// VisibleText returns the text of the visible lines.
func (e *Engine) VisibleText() string {
	return e.nav.VisibleText()
}

// Caret returns the caret's viewport row and column.
func (e *Engine) Caret() (row, col int) {
	return e.nav.Caret()
}
