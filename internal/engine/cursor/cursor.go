package cursor

import "fmt"

// Cursor is the caret position within the viewport.
// The zero value is a cursor at the origin with no sticky column.
type Cursor struct {
	row int
	col int

	sticky    int
	hasSticky bool
}

// New creates a cursor at (0, 0).
func New() *Cursor {
	return &Cursor{}
}

// Row returns the viewport-relative row.
func (c *Cursor) Row() int {
	return c.row
}

// Col returns the column within the current line.
func (c *Cursor) Col() int {
	return c.col
}

// StickyCol returns the remembered column and whether one is set.
func (c *Cursor) StickyCol() (int, bool) {
	return c.sticky, c.hasSticky
}

// SetRow places the cursor on a viewport row. Negative rows clamp to 0.
// The column and sticky column are left as they are.
func (c *Cursor) SetRow(row int) {
	c.row = max(row, 0)
}

// ClampRow keeps the row inside a viewport of the given height.
func (c *Cursor) ClampRow(rows int) {
	c.row = max(min(c.row, rows-1), 0)
}

// SetCol places the cursor on a column and forgets the sticky column.
// Negative columns clamp to 0.
func (c *Cursor) SetCol(col int) {
	c.col = max(col, 0)
	c.clearSticky()
}

// MoveVertical applies the column rule for a vertical move onto a line of
// lineLen characters. The target is the sticky column if one is set,
// otherwise the current column. The caret is clamped to the line's last
// character; if clamping moved it left of the target, the target is
// remembered for the next vertical move.
func (c *Cursor) MoveVertical(lineLen int) {
	target := c.col
	if c.hasSticky {
		target = c.sticky
	}

	c.col = min(target, lastCol(lineLen))
	if c.col < target {
		c.sticky, c.hasSticky = target, true
	} else {
		c.clearSticky()
	}
}

// MoveLeft moves one column left, stopping at 0.
func (c *Cursor) MoveLeft() {
	c.col = max(c.col-1, 0)
	c.clearSticky()
}

// MoveRight moves one column right, stopping at the line's last character.
func (c *Cursor) MoveRight(lineLen int) {
	c.col = min(c.col+1, lastCol(lineLen))
	c.clearSticky()
}

// LineStart moves to column 0.
func (c *Cursor) LineStart() {
	c.col = 0
	c.clearSticky()
}

// LineEnd moves to the line's last character.
func (c *Cursor) LineEnd(lineLen int) {
	c.col = lastCol(lineLen)
	c.clearSticky()
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	if c.hasSticky {
		return fmt.Sprintf("Cursor(%d:%d sticky=%d)", c.row, c.col, c.sticky)
	}
	return fmt.Sprintf("Cursor(%d:%d)", c.row, c.col)
}

func (c *Cursor) clearSticky() {
	c.sticky, c.hasSticky = 0, false
}

// lastCol is the highest column the caret may occupy on a line:
// the last character, or 0 on an empty line.
func lastCol(lineLen int) int {
	return max(lineLen-1, 0)
}
