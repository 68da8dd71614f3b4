// Package app provides the terminal frontend: the event loop that decodes
// keys into navigation intents and paints each frame the engine reports.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/dshills/snarkyed/internal/app/cmdline"
	"github.com/dshills/snarkyed/internal/engine"
	"github.com/dshills/snarkyed/internal/renderer/backend"
	"github.com/dshills/snarkyed/internal/renderer/statusline"
)

// Options configures the application.
type Options struct {
	// LineHeight is the height of one viewport row in terminal cells.
	// Values below 1 are treated as 1.
	LineHeight float64

	// TabWidth is the display width of a tab stop.
	TabWidth int

	// Logger receives debug tracing. Nil discards.
	Logger *slog.Logger
}

// Application couples an engine to a terminal backend.
// Only Run's goroutine may touch it while it runs.
type Application struct {
	engine  *engine.Engine
	backend backend.Backend

	keys   keyDecoder
	cmd    cmdline.Line
	status *statusline.StatusLine

	lineHeight float64
	tabWidth   int
	logger     *slog.Logger

	running atomic.Bool
}

// New creates an application over e, drawing to b.
func New(e *engine.Engine, b backend.Backend, opts Options) *Application {
	app := &Application{
		engine:     e,
		backend:    b,
		lineHeight: opts.LineHeight,
		tabWidth:   opts.TabWidth,
		logger:     opts.Logger,
		status:     statusline.New(),
	}
	if app.lineHeight < 1 {
		app.lineHeight = 1
	}
	if app.tabWidth <= 0 {
		app.tabWidth = 4
	}
	if app.logger == nil {
		app.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	app.logger = app.logger.With("component", "app")
	return app
}

// Run initializes the backend and processes events until the user quits
// or ctx is canceled. Both end the loop with a nil error.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	// PollEvent blocks; an interrupt event wakes it on cancellation.
	stop := context.AfterFunc(ctx, func() {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	})
	defer stop()

	app.logger.Debug("event loop started")
	app.Render()
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventInterrupt && ctx.Err() != nil {
			app.logger.Debug("event loop canceled", "cause", context.Cause(ctx))
			return nil
		}

		err := app.HandleEvent(ev)
		if errors.Is(err, ErrQuit) {
			app.logger.Debug("quit requested")
			return nil
		}
		if err != nil {
			return err
		}
		app.Render()
	}
}

// HandleEvent applies one backend event to the application state.
// Returns ErrQuit if the application should exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		if app.cmd.Visible() {
			return app.handleCommandKey(ev)
		}
		return app.handleKey(ev)
	default:
		// Resizes need no state change; the next Render reads the new size.
		return nil
	}
}

func (app *Application) handleKey(ev backend.Event) error {
	a := app.keys.decode(ev)
	switch a.kind {
	case actionIntent:
		app.status.ClearMessage()
		app.engine.Apply(a.intent)
		app.logger.Debug("intent applied", "intent", a.intent.String())
	case actionGoTo:
		app.status.ClearMessage()
		line := a.line
		if line == lastLine {
			line = app.engine.LineCount() - 1
		}
		app.engine.GoToLine(line)
	case actionCommandLine:
		app.status.ClearMessage()
		app.cmd.Open()
	case actionQuit:
		return ErrQuit
	}
	return nil
}

func (app *Application) handleCommandKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		app.cmd.Close()
	case backend.KeyBackspace:
		app.cmd.Pop()
	case backend.KeyEnter:
		if text, ok := app.cmd.Submit(); ok {
			return app.execute(text)
		}
	case backend.KeyRune:
		app.cmd.Push(ev.Rune)
	}
	return nil
}

// execute runs a submitted command line.
func (app *Application) execute(text string) error {
	c := cmdline.Parse(text)
	app.logger.Debug("command", "text", text, "kind", int(c.Kind))

	switch c.Kind {
	case cmdline.Quit:
		return ErrQuit
	case cmdline.GoToLine:
		app.engine.GoToLine(c.Line)
	case cmdline.Top:
		app.engine.GoToLine(0)
	case cmdline.Bottom:
		app.engine.GoToLine(app.engine.LineCount() - 1)
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, text)
		app.status.SetMessage(err.Error(), statusline.MessageError)
	}
	return nil
}

// Status returns the message shown in the status line, if any.
func (app *Application) Status() string {
	return app.status.Message()
}

// CommandLine returns the command line overlay state.
func (app *Application) CommandLine() *cmdline.Line {
	return &app.cmd
}
