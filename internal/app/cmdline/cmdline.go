// Package cmdline holds the state of the ':' command line overlay.
package cmdline

import (
	"strconv"
	"strings"
)

// Line accumulates a typed command. The zero value is a closed, empty line.
type Line struct {
	buf     []rune
	visible bool
}

// Open shows the command line with an empty buffer.
func (l *Line) Open() {
	l.buf = l.buf[:0]
	l.visible = true
}

// Close hides the command line and discards its text.
func (l *Line) Close() {
	l.buf = l.buf[:0]
	l.visible = false
}

// Visible reports whether the command line is open.
func (l *Line) Visible() bool {
	return l.visible
}

// Push appends r to an open command line.
func (l *Line) Push(r rune) {
	if l.visible {
		l.buf = append(l.buf, r)
	}
}

// Pop removes the last rune. Popping an empty line closes it.
func (l *Line) Pop() {
	if !l.visible {
		return
	}
	if len(l.buf) == 0 {
		l.Close()
		return
	}
	l.buf = l.buf[:len(l.buf)-1]
}

// Text returns the typed text.
func (l *Line) Text() string {
	return string(l.buf)
}

// Submit closes the line and returns its trimmed text. ok is false if the
// line was not open or held only blanks.
func (l *Line) Submit() (string, bool) {
	if !l.visible {
		return "", false
	}
	text := strings.TrimSpace(l.Text())
	l.Close()
	return text, text != ""
}

// Kind identifies a parsed command.
type Kind int

const (
	Unknown Kind = iota
	Quit
	GoToLine
	Top
	Bottom
)

// Command is a parsed command line.
type Command struct {
	Kind Kind
	// Line is the 0-based target of GoToLine.
	Line int
}

// Parse interprets a submitted command. Line numbers are 1-based as typed
// and converted to 0-based; zero and negatives map to the first line.
func Parse(text string) Command {
	switch text {
	case "q", "quit", "q!":
		return Command{Kind: Quit}
	case "top":
		return Command{Kind: Top}
	case "bottom", "$":
		return Command{Kind: Bottom}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return Command{Kind: Unknown}
	}
	return Command{Kind: GoToLine, Line: max(n-1, 0)}
}
