package layout

import "github.com/dshills/tessera/geom"

// BorderInfo flags a cell occupied by a separator glyph.
type BorderInfo struct {
	Vertical   bool
	Horizontal bool
}

// Any reports whether the cell carries any separator.
func (b BorderInfo) Any() bool {
	return b.Vertical || b.Horizontal
}

// BorderMap is a grid, parallel to a solved rectangle, marking the cells
// occupied by inter-pane separators.
type BorderMap struct {
	cells [][]BorderInfo
}

// NewBorderMap creates an empty border map of the given size.
func NewBorderMap(size geom.Size) BorderMap {
	cells := make([][]BorderInfo, size.H)
	for i := range cells {
		cells[i] = make([]BorderInfo, size.W)
	}
	return BorderMap{cells: cells}
}

// Size returns the map dimensions.
func (m BorderMap) Size() geom.Size {
	h := len(m.cells)
	w := 0
	if h > 0 {
		w = len(m.cells[0])
	}
	return geom.Sz(w, h)
}

// At returns the border flags at a position; out-of-range positions are
// unflagged.
func (m BorderMap) At(row, col int) BorderInfo {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= len(m.cells[row]) {
		return BorderInfo{}
	}
	return m.cells[row][col]
}

// AddVertical marks a vertical separator of the given length starting at
// pos and running down.
func (m BorderMap) AddVertical(pos geom.Position, length int) {
	for i := 0; i < length; i++ {
		m.cells[pos.Row+i][pos.Col].Vertical = true
	}
}

// AddHorizontal marks a horizontal separator of the given length starting
// at pos and running right.
func (m BorderMap) AddHorizontal(pos geom.Position, length int) {
	for i := 0; i < length; i++ {
		m.cells[pos.Row][pos.Col+i].Horizontal = true
	}
}

// Merge copies a nested split's border map into this one at the given
// offset, combining flags.
func (m BorderMap) Merge(inner BorderMap, at geom.Position) {
	innerSize := inner.Size()
	for row := 0; row < innerSize.H; row++ {
		for col := 0; col < innerSize.W; col++ {
			src := inner.cells[row][col]
			dst := &m.cells[at.Row+row][at.Col+col]
			dst.Vertical = dst.Vertical || src.Vertical
			dst.Horizontal = dst.Horizontal || src.Horizontal
		}
	}
}

// CountFlagged returns the number of cells carrying any separator flag.
func (m BorderMap) CountFlagged() int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c.Any() {
				n++
			}
		}
	}
	return n
}
