package app

import (
	"path/filepath"

	"github.com/dshills/snarkyed/internal/engine"
	"github.com/dshills/snarkyed/internal/engine/grapheme"
	"github.com/dshills/snarkyed/internal/renderer/backend"
)

// Render runs the engine's frame update for the current terminal size
// and paints the result. The bottom screen row belongs to the status line.
func (app *Application) Render() {
	width, height := app.backend.Size()
	textRows := max(height-1, 1)

	frame := app.engine.Update(engine.Geometry{
		Width:      float64(width),
		Height:     float64(textRows),
		LineHeight: app.lineHeight,
	})

	app.backend.Clear()
	for row, line := range frame.Lines {
		if y := app.rowY(row); y < textRows {
			app.paintText(0, y, width, line, backend.StyleDefault)
		}
	}

	app.status.Resize(width, app.tabWidth)
	app.status.SetFilename(filepath.Base(app.engine.Store().Name()))
	app.status.SetPosition(frame.Line()+1, frame.Col+1)
	app.status.SetTotalLines(frame.LineCount)
	app.status.SetCommandMode(app.cmd.Visible(), ':')
	app.status.SetCommandBuffer(app.cmd.Text())
	app.status.Render(app.backend, height-1)

	if !app.cmd.Visible() {
		x := grapheme.PrefixWidth(frame.Lines[frame.Row], frame.Col, app.tabWidth)
		app.backend.ShowCursor(min(x, width-1), app.rowY(frame.Row))
	}

	app.backend.Show()
}

// rowY is the screen row of a viewport row.
func (app *Application) rowY(row int) int {
	return int(float64(row) * app.lineHeight)
}

// paintText draws s from column x, clipped at width. Tabs expand to
// blanks; the trailing cells of wide clusters are left empty.
func (app *Application) paintText(x, y, width int, s string, style backend.Style) {
	col := 0
	for _, c := range grapheme.Split(s) {
		w := grapheme.CellWidth(c, col, app.tabWidth)
		if x+col+w > width {
			break
		}

		switch {
		case c == "\t":
			for i := range w {
				app.backend.SetCell(x+col+i, y, backend.Cell{Text: " ", Style: style})
			}
		case w > 0:
			app.backend.SetCell(x+col, y, backend.Cell{Text: c, Style: style})
			for i := 1; i < w; i++ {
				app.backend.SetCell(x+col+i, y, backend.Cell{Style: style})
			}
		}
		col += w
	}
}
