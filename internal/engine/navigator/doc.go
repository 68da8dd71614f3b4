// Package navigator turns movement intents into coordinated cursor and
// viewport changes.
//
// The Navigator owns a cursor and a viewport over a read-only document.
// The caret's absolute line is always OffsetY()+Row(), and every operation
// keeps it on a line of the document:
//
//   - 0 <= OffsetY()
//   - 0 <= Row() < Rows()
//   - OffsetY()+Row() < document line count
//   - Col() <= max(0, length of the caret line - 1)
//
// Operations never fail. Requests that would break an invariant at a
// document boundary are ignored, so holding a key at the top or bottom of
// the document is inert.
//
// Each frame the frontend calls Update with the current display geometry
// and paints the returned Frame; input events in between call the move
// methods or Apply.
package navigator
