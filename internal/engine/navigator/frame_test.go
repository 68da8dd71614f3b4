package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/snarkyed/internal/engine/textstore"
	"github.com/dshills/snarkyed/internal/renderer/viewport"
)

func TestUpdate(t *testing.T) {
	store := textstore.FromString("abcdef\nxy\nhello world")
	n := New(store)

	f := n.Update(viewport.Geometry{Width: 960, Height: 64, LineHeight: 32})
	assert.Equal(t, 2, f.Rows)
	assert.Equal(t, 3, f.LineCount)
	assert.Equal(t, "abcdef\nxy\n", f.Text)
	assert.Equal(t, []string{"abcdef", "xy"}, f.Lines)
	assert.Equal(t, n.VisibleText(), f.Text)

	n.MoveDown()
	n.MoveDown()
	f = n.Update(viewport.Geometry{Width: 960, Height: 64, LineHeight: 32})
	assert.Equal(t, 1, f.OffsetY)
	assert.Equal(t, "xy\nhello world", f.Text)
	assert.Equal(t, 2, f.Line())

	row, col := n.Caret()
	assert.Equal(t, f.Row, row)
	assert.Equal(t, f.Col, col)
}

func TestUpdateAtEndOfDocument(t *testing.T) {
	n := New(textstore.FromString("a\nb\nc"))
	n.Update(viewport.Geometry{Height: 2, LineHeight: 1})
	n.GoToLine(2)

	// Growing the viewport past the document end clamps the text.
	f := n.Update(viewport.Geometry{Height: 10, LineHeight: 1})
	assert.Equal(t, 10, f.Rows)
	assert.Equal(t, "b\nc", f.Text)
	assert.Equal(t, []string{"b", "c"}, f.Lines)
}

func TestUpdateShrinkKeepsCaretLine(t *testing.T) {
	n := New(textstore.FromString(numberedLines(30)))
	n.Update(viewport.Geometry{Height: 10, LineHeight: 1})
	n.GoToLine(7)
	require.Equal(t, 7, n.Row())

	f := n.Update(viewport.Geometry{Height: 3, LineHeight: 1})
	assert.Equal(t, 7, f.Line())
	assert.Equal(t, 2, f.Row)
	assert.Equal(t, 5, f.OffsetY)

	// A viewport shorter than one line still has one row.
	f = n.Update(viewport.Geometry{Height: 0.5, LineHeight: 1})
	assert.Equal(t, 1, f.Rows)
	assert.Equal(t, 0, f.Row)
	assert.Equal(t, 7, f.Line())
}
