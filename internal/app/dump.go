package app

import (
	"io"
	"strings"

	"github.com/dshills/snarkyed/internal/engine"
)

// Dump writes the first frame of rows lines to w, for output that is not
// a terminal. The caret stays at the top of the document.
func Dump(w io.Writer, e *engine.Engine, rows int) error {
	frame := e.Update(engine.Geometry{Height: float64(max(rows, 1)), LineHeight: 1})

	text := frame.Text
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
