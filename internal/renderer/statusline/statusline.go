// Package statusline provides the status line and command line UI components.
package statusline

import (
	"fmt"

	"github.com/dshills/snarkyed/internal/engine/grapheme"
	"github.com/dshills/snarkyed/internal/renderer/backend"
)

// StatusLine renders the bottom screen row: file and position info, a
// message, or the command line being typed.
type StatusLine struct {
	// Display state
	filename   string
	line       int // Current line (1-indexed for display)
	col        int // Current column (1-indexed for display)
	totalLines int

	// Command line state
	commandActive bool
	commandPrompt rune
	commandBuffer string

	// Message display
	message     string
	messageType MessageType

	width    int
	tabWidth int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		commandPrompt: ':',
		tabWidth:      4,
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetPosition updates the caret position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetCommandMode activates command line display.
func (s *StatusLine) SetCommandMode(active bool, prompt rune) {
	s.commandActive = active
	s.commandPrompt = prompt
	if !active {
		s.commandBuffer = ""
	}
}

// SetCommandBuffer updates the command being typed.
func (s *StatusLine) SetCommandBuffer(buffer string) {
	s.commandBuffer = buffer
}

// SetMessage displays a status message in place of the file info.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message, if any.
func (s *StatusLine) Message() string {
	return s.message
}

// Resize updates the status line width and the tab width used to
// measure the command buffer.
func (s *StatusLine) Resize(width, tabWidth int) {
	s.width = width
	if tabWidth > 0 {
		s.tabWidth = tabWidth
	}
}

// Render draws the status line to the backend at the given row. While
// the command line is active it also places the terminal cursor.
func (s *StatusLine) Render(b backend.Backend, row int) {
	switch {
	case s.commandActive:
		s.renderCommandLine(b, row)
	case s.message != "":
		s.renderMessage(b, row)
	default:
		s.renderStatusBar(b, row)
	}
}

// renderStatusBar renders the file info line.
func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	s.fill(b, row, backend.StyleReverse)

	filename := s.filename
	if filename == "" {
		filename = "[No Name]"
	}
	posInfo := s.formatPosition()
	posStart := s.width - len(posInfo) - 1

	// Leave room for the position info.
	s.draw(b, 1, row, min(s.width, posStart-1), filename, backend.StyleReverse)
	if posStart > 0 {
		s.draw(b, posStart, row, s.width, posInfo, backend.StyleReverse)
	}
}

// renderCommandLine renders the command input line.
func (s *StatusLine) renderCommandLine(b backend.Backend, row int) {
	s.fill(b, row, backend.StyleDefault)

	text := string(s.commandPrompt) + s.commandBuffer
	end := s.draw(b, 0, row, s.width, text, backend.StyleDefault)
	b.ShowCursor(max(min(end, s.width-1), 0), row)
}

// renderMessage renders a status message.
func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	style := backend.StyleDefault
	if s.messageType == MessageError {
		style = backend.StyleBold
	}

	s.fill(b, row, style)
	s.draw(b, 0, row, s.width, s.message, style)
}

func (s *StatusLine) fill(b backend.Backend, row int, style backend.Style) {
	for x := range s.width {
		b.SetCell(x, row, backend.Cell{Text: " ", Style: style})
	}
}

// draw paints text from column x up to limit and returns the column
// after the last painted cell.
func (s *StatusLine) draw(b backend.Backend, x, row, limit int, text string, style backend.Style) int {
	for _, c := range grapheme.Split(text) {
		w := grapheme.CellWidth(c, x, s.tabWidth)
		if x+w > limit {
			break
		}
		if c == "\t" {
			c = " "
		}
		b.SetCell(x, row, backend.Cell{Text: c, Style: style})
		for i := 1; i < w; i++ {
			b.SetCell(x+i, row, backend.Cell{Text: "", Style: style})
		}
		x += w
	}
	return x
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	// Format: "Ln 123, Col 45 | 50%"
	line := max(s.line, 1)
	col := max(s.col, 1)
	result := fmt.Sprintf("Ln %d, Col %d", line, col)

	switch {
	case s.totalLines <= 1:
		result += " | All"
	case line == 1:
		result += " | Top"
	case line >= s.totalLines:
		result += " | Bot"
	default:
		result += fmt.Sprintf(" | %d%%", (line-1)*100/(s.totalLines-1))
	}
	return result
}
