package navigator

import "github.com/dshills/snarkyed/internal/renderer/viewport"

// Frame is everything the frontend needs to paint one frame.
type Frame struct {
	OffsetY   int      // first visible line
	Rows      int      // viewport height in rows
	LineCount int      // document line count
	Row       int      // caret row within the viewport
	Col       int      // caret column within its line
	Text      string   // visible lines, terminators included
	Lines     []string // visible lines, terminators stripped
}

// Line returns the caret's absolute line.
func (f Frame) Line() int {
	return f.OffsetY + f.Row
}

// Update runs the frame update phase: it derives the row count from the
// display geometry and snapshots the visible text and caret.
//
// If the viewport shrank below the caret's row, the viewport scrolls so the
// caret stays on the same absolute line, now on the bottom row.
func (n *Navigator) Update(g viewport.Geometry) Frame {
	rows := n.view.Resize(g)
	if row := n.cursor.Row(); row >= rows {
		n.view.SetOffset(n.view.OffsetY() + row - (rows - 1))
		n.cursor.SetRow(rows - 1)
		n.logger.Debug("viewport shrank below caret", "rows", rows, "offset", n.view.OffsetY())
	}

	from, to := n.view.VisibleRange()
	return Frame{
		OffsetY:   from,
		Rows:      rows,
		LineCount: n.doc.LineCount(),
		Row:       n.cursor.Row(),
		Col:       n.cursor.Col(),
		Text:      n.doc.LinesInRange(from, to),
		Lines:     n.doc.Lines(from, to),
	}
}
