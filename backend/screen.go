package backend

import "strings"

// ScreenBuffer is an in-memory Surface. It backs tests and headless
// rendering; a frame is always written in full, matching the toolkit's
// full-redraw policy.
type ScreenBuffer struct {
	width, height int
	cells         [][]Cell
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{width: width, height: height}
	sb.allocate()
	return sb
}

func (sb *ScreenBuffer) allocate() {
	sb.cells = make([][]Cell, sb.height)
	for y := range sb.cells {
		sb.cells[y] = make([]Cell, sb.width)
		for x := range sb.cells[y] {
			sb.cells[y][x] = EmptyCell()
		}
	}
}

// Resize resizes the buffer and clears it.
func (sb *ScreenBuffer) Resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.allocate()
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (cols, rows int) {
	return sb.width, sb.height
}

// SetCell sets a cell. Out-of-bounds positions are ignored.
func (sb *ScreenBuffer) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= sb.height || col < 0 || col >= sb.width {
		return
	}
	sb.cells[row][col] = cell
}

// GetCell returns the cell at a position, or an empty cell out of bounds.
func (sb *ScreenBuffer) GetCell(row, col int) Cell {
	if row < 0 || row >= sb.height || col < 0 || col >= sb.width {
		return EmptyCell()
	}
	return sb.cells[row][col]
}

// Clear resets every cell to empty.
func (sb *ScreenBuffer) Clear() {
	for y := range sb.cells {
		for x := range sb.cells[y] {
			sb.cells[y][x] = EmptyCell()
		}
	}
}

// RowString returns the runes of one row as a string with trailing blanks
// trimmed. Test helper for asserting rendered frames.
func (sb *ScreenBuffer) RowString(row int) string {
	if row < 0 || row >= sb.height {
		return ""
	}
	var b strings.Builder
	for _, c := range sb.cells[row] {
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}
