// Package cursor models the caret of a single-cursor text view.
//
// A Cursor is a viewport-relative row, a column within that row's line, and
// an optional sticky column. Columns count grapheme clusters.
//
// Sticky column:
//
// When the caret moves vertically onto a line too short for its column, the
// column is clamped to the line's last character and the original column is
// remembered. The next vertical move aims for the remembered column again,
// so moving down across a short line and onward lands back where the user
// started. Any horizontal move or explicit column set forgets it.
//
//	c := cursor.New()
//	c.SetCol(5)
//	c.MoveVertical(2)   // col 1, sticky 5
//	c.MoveVertical(11)  // col 5, no sticky
//
// Cursor is not safe for concurrent use; it is owned by a single input path.
package cursor
