package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope data structure for line-indexed text access.
// The zero value is an empty rope with one empty line.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return Rope{root: buildTree(splitIntoChunks(s))}
}

// FromReader creates a rope from everything readable from r.
func FromReader(r io.Reader) (Rope, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return Rope{}, err
	}
	return FromString(sb.String()), nil
}

// Len returns the total byte length.
func (r Rope) Len() ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() uint32 {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(r.Len()))
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end).
// Bounds past the end of the rope are clamped.
func (r Rope) Slice(start, end ByteOffset) string {
	end = min(end, r.Len())
	if r.root == nil || start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(end - start))
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// LineStartOffset returns the byte offset of the start of the given line.
// Lines are 0-indexed; lines past the end map to Len().
func (r Rope) LineStartOffset(line uint32) ByteOffset {
	if r.root == nil || line == 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}
	return r.root.lineStart(line)
}

// LineEndOffset returns the byte offset of the end of the given line,
// not including its newline character.
func (r Rope) LineEndOffset(line uint32) ByteOffset {
	if line+1 >= r.LineCount() {
		return r.Len()
	}
	return r.LineStartOffset(line+1) - 1
}

// LineText returns the text of the given line (not including newline).
func (r Rope) LineText(line uint32) string {
	if line >= r.LineCount() {
		return ""
	}
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// LinesSlice returns the text of lines [from, to), newlines included.
// to is clamped to LineCount().
func (r Rope) LinesSlice(from, to uint32) string {
	to = min(to, r.LineCount())
	if from >= to {
		return ""
	}
	return r.Slice(r.LineStartOffset(from), r.LineStartOffset(to))
}
