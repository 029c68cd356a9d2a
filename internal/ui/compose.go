package ui

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Cell is one rendered region of a row: a view drawn at column X, clipped to
// Width columns.
type Cell struct {
	X     int
	Width int
	View  string
}

// Compose draws cells side by side into a width x height screen buffer and
// renders it. Content outside a cell's box, or past the screen edge, is
// clipped; columns no cell covers stay blank.
func Compose(width, height int, cells ...Cell) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	scr := uv.NewScreenBuffer(width, height)
	for _, c := range cells {
		if c.Width <= 0 || c.X >= width {
			continue
		}
		w := min(c.Width, width-c.X)
		uv.NewStyledString(c.View).Draw(scr, uv.Rect(c.X, 0, w, height))
	}
	return scr.Render()
}
