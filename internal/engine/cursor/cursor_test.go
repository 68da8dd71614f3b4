package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertSticky(t *testing.T, c *Cursor, want int, wantSet bool) {
	t.Helper()
	got, ok := c.StickyCol()
	assert.Equal(t, wantSet, ok, "sticky set")
	if wantSet {
		assert.Equal(t, want, got, "sticky col")
	}
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Row())
	assert.Equal(t, 0, c.Col())
	assertSticky(t, c, 0, false)
	assert.Equal(t, "Cursor(0:0)", c.String())
}

func TestZeroValueIsUsable(t *testing.T) {
	var c Cursor
	c.MoveVertical(3)
	assert.Equal(t, 0, c.Col())
	assertSticky(t, &c, 0, false)
}

func TestMoveVertical(t *testing.T) {
	tests := []struct {
		name       string
		col        int
		sticky     int
		hasSticky  bool
		lineLen    int
		wantCol    int
		wantSticky int
		wantSet    bool
	}{
		{"fits", 3, 0, false, 10, 3, 0, false},
		{"clamps and remembers", 5, 0, false, 2, 1, 5, true},
		{"empty line", 5, 0, false, 0, 0, 5, true},
		{"at zero on empty line", 0, 0, false, 0, 0, 0, false},
		{"restores sticky", 1, 5, true, 11, 5, 0, false},
		{"sticky still too long", 1, 8, true, 4, 3, 8, true},
		{"exact last char", 4, 0, false, 5, 4, 0, false},
		{"sticky equals last char", 2, 4, true, 5, 4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cursor{col: tt.col, sticky: tt.sticky, hasSticky: tt.hasSticky}
			c.MoveVertical(tt.lineLen)
			assert.Equal(t, tt.wantCol, c.Col())
			assertSticky(t, c, tt.wantSticky, tt.wantSet)
		})
	}
}

func TestHorizontalMovesClearSticky(t *testing.T) {
	moves := map[string]func(c *Cursor){
		"left":       func(c *Cursor) { c.MoveLeft() },
		"right":      func(c *Cursor) { c.MoveRight(10) },
		"line start": func(c *Cursor) { c.LineStart() },
		"line end":   func(c *Cursor) { c.LineEnd(10) },
		"set col":    func(c *Cursor) { c.SetCol(2) },
	}

	for name, move := range moves {
		t.Run(name, func(t *testing.T) {
			c := &Cursor{col: 1, sticky: 7, hasSticky: true}
			move(c)
			assertSticky(t, c, 0, false)
		})
	}
}

func TestMoveLeftRight(t *testing.T) {
	c := New()
	c.MoveLeft()
	assert.Equal(t, 0, c.Col(), "left at column 0 stays")

	c.MoveRight(3)
	c.MoveRight(3)
	c.MoveRight(3)
	assert.Equal(t, 2, c.Col(), "right stops at last character")

	c.MoveRight(0)
	assert.Equal(t, 0, c.Col(), "empty line pins to 0")
}

func TestLineStartEnd(t *testing.T) {
	c := New()
	c.LineEnd(6)
	assert.Equal(t, 5, c.Col())

	c.LineStart()
	assert.Equal(t, 0, c.Col())

	c.LineEnd(0)
	assert.Equal(t, 0, c.Col())
}

func TestRowClamping(t *testing.T) {
	c := New()
	c.SetRow(-4)
	assert.Equal(t, 0, c.Row())

	c.SetRow(9)
	c.ClampRow(5)
	assert.Equal(t, 4, c.Row())

	c.ClampRow(0)
	assert.Equal(t, 0, c.Row())
}

func TestString(t *testing.T) {
	c := &Cursor{row: 1, col: 1, sticky: 5, hasSticky: true}
	assert.Equal(t, "Cursor(1:1 sticky=5)", c.String())
}
