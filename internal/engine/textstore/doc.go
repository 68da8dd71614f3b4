// Package textstore holds the loaded document and answers line queries.
//
// A Store is built once from a file or reader and never changes. Lines are
// 0-indexed; a document always has at least one (possibly empty) line.
// Exact lookups through LineAt report ErrOutOfRange, while range queries
// through LinesInRange and Lines clamp silently at the end of the document,
// so render code never special-cases the last screen of text.
//
// Storage is a rope, so each per-frame range query costs O(log n) to locate
// its first line rather than a scan from the start of the text.
package textstore
