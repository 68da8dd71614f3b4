// Package viewport tracks the window of document lines eligible for display.
package viewport

import (
	"fmt"
	"math"
)

// Geometry is the display area supplied by the frontend each frame.
// Units are arbitrary (pixels for a graphical frontend, cells for a
// terminal) but must agree between Height and LineHeight.
type Geometry struct {
	Width      float64
	Height     float64
	LineHeight float64
}

// Rows returns floor(Height / LineHeight), at least 1.
// A non-positive LineHeight is treated as 1.
func (g Geometry) Rows() int {
	lh := g.LineHeight
	if lh <= 0 {
		lh = 1
	}
	rows := math.Floor(g.Height / lh)
	if rows < 1 || math.IsNaN(rows) {
		return 1
	}
	if rows > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(rows)
}

// Viewport is the visible portion of the document: a first visible line
// (the offset) and a row count derived from the display geometry.
type Viewport struct {
	offsetY int
	rows    int
	width   float64
}

// New creates a one-row viewport at the top of the document.
func New() *Viewport {
	return &Viewport{rows: 1}
}

// OffsetY returns the absolute index of the first visible line.
func (v *Viewport) OffsetY() int {
	return v.offsetY
}

// Rows returns the number of visible rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// Width returns the display width from the last resize.
func (v *Viewport) Width() float64 {
	return v.width
}

// Resize recomputes the row count from the display geometry and
// returns it.
func (v *Viewport) Resize(g Geometry) int {
	v.rows = g.Rows()
	v.width = g.Width
	return v.rows
}

// SetOffset moves the first visible line, clamping negatives to 0.
func (v *Viewport) SetOffset(offset int) {
	v.offsetY = max(offset, 0)
}

// ScrollDown advances the offset by step lines if the caret, sitting at
// row, would still be on a line of the document afterwards. It never
// scrolls partially: an out-of-range step leaves the offset unchanged.
// Returns true if the viewport moved.
func (v *Viewport) ScrollDown(step, row, lineCount int) bool {
	if step <= 0 {
		return false
	}
	next := v.offsetY + step
	if next+row >= lineCount {
		return false
	}
	v.offsetY = next
	return true
}

// ScrollUp moves the offset back by step lines if it stays at or
// above the first line; otherwise it does nothing.
// Returns true if the viewport moved.
func (v *Viewport) ScrollUp(step int) bool {
	if step <= 0 || v.offsetY-step < 0 {
		return false
	}
	v.offsetY -= step
	return true
}

// VisibleRange returns the absolute line range [from, to) covered by the
// viewport. to may exceed the document; range queries clamp it.
func (v *Viewport) VisibleRange() (from, to int) {
	return v.offsetY, v.offsetY + v.rows
}

// RowToLine converts a viewport row to an absolute line.
func (v *Viewport) RowToLine(row int) int {
	return v.offsetY + row
}

// LineToRow converts an absolute line to a viewport row.
// Returns false if the line is not visible.
func (v *Viewport) LineToRow(line int) (int, bool) {
	if line < v.offsetY || line >= v.offsetY+v.rows {
		return -1, false
	}
	return line - v.offsetY, true
}

// String returns a string representation of the viewport.
func (v *Viewport) String() string {
	return fmt.Sprintf("Viewport(offset=%d rows=%d)", v.offsetY, v.rows)
}
