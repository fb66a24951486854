// Package geom provides the integer-cell geometry used across the toolkit:
// positions, sizes, rectangles, and half-open ranges with overlap
// classification.
package geom

// Position is a cell coordinate on the terminal grid.
type Position struct {
	Row, Col int
}

// Pos creates a position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// AddRows returns the position moved down by n rows.
func (p Position) AddRows(n int) Position {
	p.Row += n
	return p
}

// AddCols returns the position moved right by n columns.
func (p Position) AddCols(n int) Position {
	p.Col += n
	return p
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// Sz creates a size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	return s.W * s.H
}

// Rect is a rectangular cell region: origin plus extent.
type Rect struct {
	Pos  Position
	Size Size
}

// NewRect creates a rectangle from origin coordinates and extent.
func NewRect(row, col, w, h int) Rect {
	return Rect{Pos: Position{Row: row, Col: col}, Size: Size{W: w, H: h}}
}

// Contains reports whether the position lies inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.Row >= r.Pos.Row && p.Row < r.Pos.Row+r.Size.H &&
		p.Col >= r.Pos.Col && p.Col < r.Pos.Col+r.Size.W
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.Pos.Col < other.Pos.Col+other.Size.W &&
		other.Pos.Col < r.Pos.Col+r.Size.W &&
		r.Pos.Row < other.Pos.Row+other.Size.H &&
		other.Pos.Row < r.Pos.Row+r.Size.H
}
