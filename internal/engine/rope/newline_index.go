package rope

// MaxInlineNewlines is the number of newline positions stored without a
// heap allocation. Most chunks of prose or code hold only a few lines.
const MaxInlineNewlines = 4

// NewlineIndex records the byte positions of every newline in a chunk so a
// line start inside the chunk is found without rescanning its text.
type NewlineIndex struct {
	inline [MaxInlineNewlines]uint16
	count  uint16

	// Only allocated when count > MaxInlineNewlines.
	positions []uint16
}

// ComputeNewlineIndex scans a string and builds its newline index.
// The string must be no longer than MaxChunkSize.
func ComputeNewlineIndex(s string) NewlineIndex {
	var idx NewlineIndex

	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
		}
	}
	if count == 0 {
		return idx
	}

	idx.count = uint16(count)
	if count > MaxInlineNewlines {
		idx.positions = make([]uint16, 0, count)
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		if count > MaxInlineNewlines {
			idx.positions = append(idx.positions, uint16(i))
		} else {
			idx.inline[n] = uint16(i)
		}
		n++
	}

	return idx
}

// Count returns the number of newlines.
func (idx NewlineIndex) Count() uint32 {
	return uint32(idx.count)
}

// Position returns the byte offset of the nth newline (0-indexed),
// or -1 if n is out of range.
func (idx NewlineIndex) Position(n uint32) int {
	if n >= uint32(idx.count) {
		return -1
	}
	if idx.count <= MaxInlineNewlines {
		return int(idx.inline[n])
	}
	return int(idx.positions[n])
}

// LineStart returns the byte offset where line `line` begins within the
// chunk: 0 for line 0, otherwise the byte after the line-th newline.
// Returns -1 if the chunk has fewer than `line` newlines.
//
// For "abc\ndef\nghi", LineStart(1) == 4 and LineStart(2) == 8.
func (idx NewlineIndex) LineStart(line uint32) int {
	if line == 0 {
		return 0
	}
	pos := idx.Position(line - 1)
	if pos < 0 {
		return -1
	}
	return pos + 1
}
