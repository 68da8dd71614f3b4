package textstore

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dshills/snarkyed/internal/engine/grapheme"
	"github.com/dshills/snarkyed/internal/engine/rope"
)

// Store is an immutable, line-indexed document.
type Store struct {
	id   uuid.UUID
	name string
	text rope.Rope
}

// Load reads the file at path into a new Store.
// Any failure is reported as a *LoadError.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return LoadReader(path, f)
}

// LoadReader reads all of r into a new Store named name.
// A UTF-8 or UTF-16 byte order mark selects the decoding; otherwise the
// input must already be valid UTF-8.
func LoadReader(name string, r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	text, err := decode(raw)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	return &Store{
		id:   uuid.New(),
		name: name,
		text: rope.FromString(text),
	}, nil
}

// FromString creates a Store from in-memory text.
func FromString(text string) *Store {
	return &Store{
		id:   uuid.New(),
		name: "<string>",
		text: rope.FromString(text),
	}
}

// decode strips a UTF-8 byte order mark, transcodes input marked as
// UTF-16, and validates the result.
func decode(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if bytes.HasPrefix(raw, utf16BE) || bytes.HasPrefix(raw, utf16LE) {
		out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16: %w", err)
		}
		raw = out
	}

	if !utf8.Valid(raw) {
		return "", ErrInvalidText
	}
	return string(raw), nil
}

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	utf16BE = []byte{0xFE, 0xFF}
	utf16LE = []byte{0xFF, 0xFE}
)

// ID returns the document identifier assigned at load.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Name returns the path or name the document was loaded from.
func (s *Store) Name() string {
	return s.name
}

// Len returns the document size in bytes.
func (s *Store) Len() int {
	return int(s.text.Len())
}

// LineCount returns the number of lines. It is always at least 1.
func (s *Store) LineCount() int {
	return int(s.text.LineCount())
}

// LineAt returns line i without its terminator.
func (s *Store) LineAt(i int) (string, error) {
	if i < 0 || i >= s.LineCount() {
		return "", fmt.Errorf("line %d of %d: %w", i, s.LineCount(), ErrOutOfRange)
	}
	return trimCR(s.text.LineText(uint32(i))), nil
}

// LineLen returns the length of line i in grapheme clusters,
// or 0 when i is out of range.
func (s *Store) LineLen(i int) int {
	line, err := s.LineAt(i)
	if err != nil {
		return 0
	}
	return grapheme.Count(line)
}

// LinesInRange returns lines [from, to) exactly as stored, terminators
// included. to is clamped to LineCount(); an empty range yields "".
func (s *Store) LinesInRange(from, to int) string {
	from, to = s.clamp(from, to)
	if from >= to {
		return ""
	}
	return s.text.LinesSlice(uint32(from), uint32(to))
}

// Lines returns lines [from, to) without terminators, clamped like
// LinesInRange.
func (s *Store) Lines(from, to int) []string {
	from, to = s.clamp(from, to)
	if from >= to {
		return nil
	}

	lines := strings.SplitN(s.text.LinesSlice(uint32(from), uint32(to)), "\n", to-from)
	for i, line := range lines {
		lines[i] = trimCR(strings.TrimSuffix(line, "\n"))
	}
	return lines
}

// clamp applies to' = min(to, LineCount()) and from' = min(from, to').
func (s *Store) clamp(from, to int) (int, int) {
	to = max(min(to, s.LineCount()), 0)
	from = max(min(from, to), 0)
	return from, to
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
