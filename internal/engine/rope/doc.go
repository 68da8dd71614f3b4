// Package rope provides an immutable rope for line-indexed access to large text.
//
// A rope is a balanced tree where leaf nodes hold bounded text chunks and
// internal nodes cache aggregated metrics (byte count, newline count) for
// each child. This implementation uses a B+ tree variant: every line lookup
// descends the tree once, so finding the start of any line is O(log n)
// regardless of where the line sits in the document.
//
// Basic usage:
//
//	r := rope.FromString("first\nsecond\nthird")
//	r.LineCount()              // 3
//	r.LineText(1)              // "second"
//	r.Slice(0, r.LineStartOffset(2)) // "first\nsecond\n"
//
// Ropes are never modified after construction and are safe for concurrent
// readers.
package rope
