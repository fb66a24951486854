// Package view provides the viewport state (cursor, selections, scroll
// offset) and the Buffer type that combines a shared Document with one View
// and renders it into an allotted rectangle.
package view

import "github.com/dshills/tessera/geom"

// View holds the per-pane presentation state for a document: an absolute
// cursor index into the document's text, a set of non-overlapping
// selections over the same coordinate space, the index of the first visible
// line, and the cursor glyph visibility.
type View struct {
	cursor        int
	cursorVisible bool
	// scroll is a line index, so it always names a line start.
	scroll      int
	selections  []geom.Range
	lastSize    geom.Size
	hasLastSize bool
}

// clone returns a copy safe to use after the owning lock is released.
func (v View) clone() View {
	v.selections = append([]geom.Range(nil), v.selections...)
	return v
}
