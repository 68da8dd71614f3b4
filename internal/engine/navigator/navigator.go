package navigator

import (
	"log/slog"

	"github.com/dshills/snarkyed/internal/engine/cursor"
	"github.com/dshills/snarkyed/internal/renderer/viewport"
)

// Document is the read-only text a Navigator moves over.
// *textstore.Store satisfies it.
type Document interface {
	LineCount() int
	LineLen(i int) int
	LinesInRange(from, to int) string
	Lines(from, to int) []string
}

// Navigator maps navigation intents to cursor and viewport changes.
// It is not safe for concurrent use.
type Navigator struct {
	doc    Document
	cursor *cursor.Cursor
	view   *viewport.Viewport

	pageStep int
	logger   *slog.Logger
}

// New creates a navigator with the caret at the start of doc.
func New(doc Document, opts ...Option) *Navigator {
	n := &Navigator{
		doc:      doc,
		cursor:   cursor.New(),
		view:     viewport.New(),
		pageStep: DefaultPageStep,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With("component", "navigator")
	return n
}

// Row returns the caret's viewport row.
func (n *Navigator) Row() int { return n.cursor.Row() }

// Col returns the caret's column.
func (n *Navigator) Col() int { return n.cursor.Col() }

// StickyCol returns the remembered column, if any.
func (n *Navigator) StickyCol() (int, bool) { return n.cursor.StickyCol() }

// OffsetY returns the first visible line.
func (n *Navigator) OffsetY() int { return n.view.OffsetY() }

// Rows returns the viewport height in rows.
func (n *Navigator) Rows() int { return n.view.Rows() }

// PageStep returns the default page scroll step.
func (n *Navigator) PageStep() int { return n.pageStep }

// Line returns the caret's absolute line.
func (n *Navigator) Line() int {
	return n.view.RowToLine(n.cursor.Row())
}

// LineCount returns the number of lines in the document.
func (n *Navigator) LineCount() int {
	return n.doc.LineCount()
}

// Caret returns the caret's screen anchor in row/column units.
func (n *Navigator) Caret() (row, col int) {
	return n.cursor.Row(), n.cursor.Col()
}

// VisibleText returns the text of the visible lines, terminators included.
func (n *Navigator) VisibleText() string {
	from, to := n.view.VisibleRange()
	return n.doc.LinesInRange(from, to)
}

func (n *Navigator) lineLen() int {
	return n.doc.LineLen(n.Line())
}

// MoveDown moves the caret one line down. On the bottom row the document
// scrolls beneath the caret instead. Without a line below, nothing changes.
func (n *Navigator) MoveDown() {
	if n.Line()+1 >= n.doc.LineCount() {
		return
	}

	row := n.cursor.Row()
	if row == n.view.Rows()-1 {
		n.view.ScrollDown(1, row, n.doc.LineCount())
	} else {
		n.cursor.SetRow(row + 1)
	}
	n.cursor.MoveVertical(n.lineLen())
}

// MoveUp moves the caret one line up. On the top row the document scrolls
// instead. On the first line nothing changes.
func (n *Navigator) MoveUp() {
	if n.Line() == 0 {
		return
	}

	row := n.cursor.Row()
	if row == 0 {
		n.view.ScrollUp(1)
	} else {
		n.cursor.SetRow(row - 1)
	}
	n.cursor.MoveVertical(n.lineLen())
}

// MoveLeft moves the caret one column left.
func (n *Navigator) MoveLeft() {
	n.cursor.MoveLeft()
}

// MoveRight moves the caret one column right, up to the last character.
func (n *Navigator) MoveRight() {
	n.cursor.MoveRight(n.lineLen())
}

// MoveToLineStart moves the caret to column 0.
func (n *Navigator) MoveToLineStart() {
	n.cursor.LineStart()
}

// MoveToLineEnd moves the caret to the last character of the line.
func (n *Navigator) MoveToLineEnd() {
	n.cursor.LineEnd(n.lineLen())
}

// ScrollDown scrolls the document step lines up the screen, keeping the
// caret on its row. It does nothing if the caret would pass the last line.
// Returns true if the viewport moved.
func (n *Navigator) ScrollDown(step int) bool {
	if !n.view.ScrollDown(step, n.cursor.Row(), n.doc.LineCount()) {
		n.logger.Debug("scroll down ignored", "step", step, "offset", n.view.OffsetY())
		return false
	}
	n.cursor.MoveVertical(n.lineLen())
	return true
}

// ScrollUp scrolls the document step lines down the screen, keeping the
// caret on its row. It does nothing if the offset would go negative.
// Returns true if the viewport moved.
func (n *Navigator) ScrollUp(step int) bool {
	if !n.view.ScrollUp(step) {
		n.logger.Debug("scroll up ignored", "step", step, "offset", n.view.OffsetY())
		return false
	}
	n.cursor.MoveVertical(n.lineLen())
	return true
}

// PageScroll scrolls by step lines in dir. A non-positive step uses the
// configured page step. Like ScrollUp and ScrollDown it never scrolls
// partially.
func (n *Navigator) PageScroll(step int, dir Direction) bool {
	if step <= 0 {
		step = n.pageStep
	}
	if dir == Up {
		return n.ScrollUp(step)
	}
	return n.ScrollDown(step)
}

// GoToLine puts the caret on an absolute line, clamped to the document.
// A visible line is reached by moving the caret; otherwise the viewport
// jumps so the line sits on the nearest edge.
func (n *Navigator) GoToLine(line int) {
	line = max(min(line, n.doc.LineCount()-1), 0)
	offset, rows := n.view.OffsetY(), n.view.Rows()

	switch {
	case line < offset:
		n.view.SetOffset(line)
		n.cursor.SetRow(0)
	case line >= offset+rows:
		n.view.SetOffset(line - (rows - 1))
		n.cursor.SetRow(rows - 1)
	default:
		n.cursor.SetRow(line - offset)
	}
	n.cursor.MoveVertical(n.lineLen())
}

// Apply performs an intent.
func (n *Navigator) Apply(in Intent) {
	if in.Kind == IntentPageUp || in.Kind == IntentPageDown {
		dir := Down
		if in.Kind == IntentPageUp {
			dir = Up
		}
		n.PageScroll(in.Count, dir)
		return
	}

	move := n.moveFor(in.Kind)
	if move == nil {
		n.logger.Debug("unknown intent", "intent", in.String())
		return
	}
	// More repeats than lines plus columns cannot change the outcome.
	repeats := min(max(in.Count, 1), n.doc.LineCount()+n.lineLen())
	for range repeats {
		move()
	}
}

func (n *Navigator) moveFor(kind IntentKind) func() {
	switch kind {
	case IntentUp:
		return n.MoveUp
	case IntentDown:
		return n.MoveDown
	case IntentLeft:
		return n.MoveLeft
	case IntentRight:
		return n.MoveRight
	case IntentLineStart:
		return n.MoveToLineStart
	case IntentLineEnd:
		return n.MoveToLineEnd
	default:
		return nil
	}
}
