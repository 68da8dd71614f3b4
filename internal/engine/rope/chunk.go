package rope

// Chunk size constants control the granularity of text storage.
const (
	// MinChunkSize is the minimum bytes per chunk (except for the last chunk).
	MinChunkSize = 128

	// MaxChunkSize is the maximum bytes per chunk.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when splitting text.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk is a bounded, immutable string stored in a leaf node.
type Chunk struct {
	data     string
	summary  TextSummary
	newlines NewlineIndex
}

// NewChunk creates a chunk from a string, computing its metrics eagerly.
func NewChunk(s string) Chunk {
	return Chunk{
		data:     s,
		summary:  ComputeSummary(s),
		newlines: ComputeNewlineIndex(s),
	}
}

// String returns the chunk's text.
func (c Chunk) String() string {
	return c.data
}

// Summary returns the chunk's precomputed metrics.
func (c Chunk) Summary() TextSummary {
	return c.summary
}

// Newlines returns the chunk's newline index.
func (c Chunk) Newlines() NewlineIndex {
	return c.newlines
}

// Len returns the byte length of the chunk.
func (c Chunk) Len() int {
	return len(c.data)
}

// splitIntoChunks splits a string into chunks no larger than MaxChunkSize.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, len(s)/TargetChunkSize+1)
	for len(s) > MaxChunkSize {
		at := findSplitPoint(s, TargetChunkSize)
		chunks = append(chunks, NewChunk(s[:at]))
		s = s[at:]
	}
	return append(chunks, NewChunk(s))
}

// findSplitPoint picks a byte position near target that never falls inside
// a UTF-8 sequence, preferring the byte just after a newline.
func findSplitPoint(s string, target int) int {
	lo := max(target-MinChunkSize/4, 1)
	hi := min(target+MinChunkSize/4, len(s), MaxChunkSize)

	for i := target; i < hi; i++ {
		if s[i-1] == '\n' {
			return i
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i-1] == '\n' {
			return i
		}
	}

	pos := target
	for pos > 1 && !isUTF8Start(s[pos]) {
		pos--
	}
	return pos
}

// isUTF8Start reports whether b begins a UTF-8 sequence
// (continuation bytes are 10xxxxxx).
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}
