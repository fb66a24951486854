package backend

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/tessera/style"
)

// Cell is one styled character cell on a surface.
type Cell struct {
	Rune  rune
	Style style.Style
	// Width is the number of columns the rune occupies (1 or 2).
	Width int
}

// NewCell creates a cell, resolving the display width of the rune.
func NewCell(r rune, st style.Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return Cell{Rune: r, Style: st, Width: w}
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}
