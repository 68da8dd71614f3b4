package rope

// ByteOffset represents an absolute byte position in the rope.
type ByteOffset uint64

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid under Add, which is what lets internal nodes
// answer line queries without touching their leaves.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes ByteOffset

	// Lines is the number of newline characters.
	Lines uint32

	// LongestLine is the byte length of the longest line.
	LongestLine uint32

	// FirstLineLen is the byte length of the first line (excluding newline).
	FirstLineLen uint32

	// LastLineLen is the byte length of the last line (excluding newline).
	LastLineLen uint32
}

// Add combines two summaries as if their texts were concatenated.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	// The first line of other continues the last line of s.
	joined := s.LastLineLen + other.FirstLineLen

	result := TextSummary{
		Bytes:        s.Bytes + other.Bytes,
		Lines:        s.Lines + other.Lines,
		LongestLine:  max(s.LongestLine, other.LongestLine, joined),
		FirstLineLen: s.FirstLineLen,
		LastLineLen:  other.LastLineLen,
	}
	if s.Lines == 0 {
		result.FirstLineLen = joined
	}
	if other.Lines == 0 {
		result.LastLineLen = joined
	}

	return result
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	var sum TextSummary
	sum.Bytes = ByteOffset(len(s))

	var lineLen uint32
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			lineLen++
			continue
		}
		if sum.Lines == 0 {
			sum.FirstLineLen = lineLen
		}
		sum.Lines++
		sum.LongestLine = max(sum.LongestLine, lineLen)
		lineLen = 0
	}

	sum.LastLineLen = lineLen
	sum.LongestLine = max(sum.LongestLine, lineLen)
	if sum.Lines == 0 {
		sum.FirstLineLen = lineLen
	}

	return sum
}
