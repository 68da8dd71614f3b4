package rope

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("New rope should be empty")
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
	if r.LineCount() != 1 {
		t.Errorf("New rope should have 1 line, got %d", r.LineCount())
	}
	if got := r.LineText(0); got != "" {
		t.Errorf("LineText(0) = %q, want empty", got)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"with newline", "hello\nworld"},
		{"trailing newline", "a\nb\n"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 100)},
		{"very long string", strings.Repeat("x", 10000)},
		{"long unicode", strings.Repeat("日本語", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != ByteOffset(len(tt.input)) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.input))
			}
			if want := uint32(strings.Count(tt.input, "\n") + 1); r.LineCount() != want {
				t.Errorf("LineCount() = %d, want %d", r.LineCount(), want)
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	text := strings.Repeat("line of text\n", 1000)
	r, err := FromReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if r.String() != text {
		t.Error("FromReader content mismatch")
	}
	if r.LineCount() != 1001 {
		t.Errorf("LineCount() = %d, want 1001", r.LineCount())
	}
}

func TestChunksRespectUTF8Boundaries(t *testing.T) {
	r := FromString(strings.Repeat("é日🌍", 400))
	iterLeaves(r.root, func(n *Node) {
		for _, c := range n.chunks {
			if c.Len() > MaxChunkSize {
				t.Errorf("chunk of %d bytes exceeds MaxChunkSize", c.Len())
			}
			if c.Len() > 0 && !isUTF8Start(c.String()[0]) {
				t.Errorf("chunk starts inside a UTF-8 sequence: %q", c.String()[:4])
			}
		}
	})
}

func iterLeaves(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fn(n)
		return
	}
	for _, child := range n.children {
		iterLeaves(child, fn)
	}
}

func TestLineText(t *testing.T) {
	r := FromString("first\nsecond\n\nfourth")

	tests := []struct {
		line uint32
		want string
	}{
		{0, "first"},
		{1, "second"},
		{2, ""},
		{3, "fourth"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := r.LineText(tt.line); got != tt.want {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLineOffsets(t *testing.T) {
	r := FromString("abc\ndef\nghi")

	tests := []struct {
		line       uint32
		start, end ByteOffset
	}{
		{0, 0, 3},
		{1, 4, 7},
		{2, 8, 11},
		{3, 11, 11},
	}
	for _, tt := range tests {
		if got := r.LineStartOffset(tt.line); got != tt.start {
			t.Errorf("LineStartOffset(%d) = %d, want %d", tt.line, got, tt.start)
		}
		if got := r.LineEndOffset(tt.line); got != tt.end {
			t.Errorf("LineEndOffset(%d) = %d, want %d", tt.line, got, tt.end)
		}
	}
}

func TestLineTextLargeDocument(t *testing.T) {
	lines := make([]string, 5000)
	for i := range lines {
		lines[i] = strings.Repeat(string(rune('a'+i%26)), i%97)
	}
	r := FromString(strings.Join(lines, "\n"))

	if r.LineCount() != uint32(len(lines)) {
		t.Fatalf("LineCount() = %d, want %d", r.LineCount(), len(lines))
	}
	if r.Height() < 3 {
		t.Errorf("expected a multi-level tree, got height %d", r.Height())
	}
	for i, want := range lines {
		if got := r.LineText(uint32(i)); got != want {
			t.Fatalf("LineText(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestSlice(t *testing.T) {
	text := strings.Repeat("0123456789\n", 100)
	r := FromString(text)

	tests := []struct {
		name       string
		start, end ByteOffset
		want       string
	}{
		{"whole", 0, ByteOffset(len(text)), text},
		{"middle", 250, 600, text[250:600]},
		{"empty", 10, 10, ""},
		{"inverted", 20, 10, ""},
		{"past end", 1000, 5000, text[1000:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Slice(tt.start, tt.end); got != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestLinesSlice(t *testing.T) {
	r := FromString("a\nbb\nccc\n")

	tests := []struct {
		from, to uint32
		want     string
	}{
		{0, 1, "a\n"},
		{1, 3, "bb\nccc\n"},
		{0, 4, "a\nbb\nccc\n"},
		{2, 100, "ccc\n"},
		{3, 4, ""},
		{4, 10, ""},
		{2, 1, ""},
	}
	for _, tt := range tests {
		if got := r.LinesSlice(tt.from, tt.to); got != tt.want {
			t.Errorf("LinesSlice(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSummaryMatchesText(t *testing.T) {
	f := func(parts []string) bool {
		text := strings.Join(parts, "\n")
		got := FromString(text).Summary()
		want := ComputeSummary(text)
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLineTextMatchesSplit(t *testing.T) {
	f := func(parts []string) bool {
		text := strings.Join(parts, "\n")
		r := FromString(text)
		want := strings.Split(text, "\n")
		if r.LineCount() != uint32(len(want)) {
			return false
		}
		for i, line := range want {
			if r.LineText(uint32(i)) != line {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
