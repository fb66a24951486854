// Package layout provides the pane layout engine: a recursive tree of
// sized splits solved against an available rectangle, producing pane
// rectangles and a separator border map, or no solution when space runs
// out.
package layout

import (
	"fmt"

	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/view"
)

// Orientation is the axis along which a split arranges its children.
type Orientation int

const (
	// Vertical stacks children top to bottom.
	Vertical Orientation = iota
	// Horizontal arranges children side by side.
	Horizontal
)

// Flip returns the perpendicular orientation.
func (o Orientation) Flip() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type specKind int

const (
	specProportion specKind = iota
	specFixed
)

// SizeSpec describes how much of the split axis one child receives: either
// a weighted share of the space left after fixed reservations, or a fixed
// cell count.
type SizeSpec struct {
	kind  specKind
	value int
}

// Prop creates a proportional size spec with the given weight.
func Prop(weight int) SizeSpec {
	if weight < 0 {
		panic(fmt.Sprintf("layout: negative proportion weight %d", weight))
	}
	return SizeSpec{kind: specProportion, value: weight}
}

// Fixed creates a fixed size spec of the given cell count.
func Fixed(cells int) SizeSpec {
	if cells < 0 {
		panic(fmt.Sprintf("layout: negative fixed size %d", cells))
	}
	return SizeSpec{kind: specFixed, value: cells}
}

// IsFixed reports whether the spec reserves a fixed cell count.
func (s SizeSpec) IsFixed() bool {
	return s.kind == specFixed
}

// Content is one child of a split: either a Leaf pane showing a buffer or a
// Branch holding a nested split with the perpendicular orientation.
type Content interface {
	splitContent()
}

// Leaf is a pane displaying one buffer.
type Leaf struct {
	Buffer *view.Buffer
}

// Branch nests another split; its orientation is always the perpendicular
// of the parent's.
type Branch struct {
	Split *Split
}

func (Leaf) splitContent()   {}
func (Branch) splitContent() {}

// Split is one layout node: an ordered list of size specs paired 1:1 with
// contents along one axis. Splits are immutable once built and replaced
// wholesale, never mutated.
type Split struct {
	specs    []SizeSpec
	children []Content
}

// NewSplit creates a split. The structural invariants (at least one child,
// one spec per child, a positive weight total when any child is
// proportional) are preconditions; violating them panics.
func NewSplit(specs []SizeSpec, children []Content) *Split {
	if len(children) == 0 {
		panic("layout: split with no children")
	}
	if len(specs) != len(children) {
		panic(fmt.Sprintf("layout: %d size specs for %d children", len(specs), len(children)))
	}
	weightSum := 0
	hasProp := false
	for _, s := range specs {
		if s.kind == specProportion {
			hasProp = true
			weightSum += s.value
		}
	}
	if hasProp && weightSum == 0 {
		panic("layout: proportional weights sum to zero")
	}
	return &Split{
		specs:    append([]SizeSpec(nil), specs...),
		children: append([]Content(nil), children...),
	}
}

// Tree pairs a root split with the orientation of its top level.
type Tree struct {
	root        *Split
	orientation Orientation
}

// NewTree creates a split tree.
func NewTree(root *Split, top Orientation) *Tree {
	if root == nil {
		panic("layout: nil root split")
	}
	return &Tree{root: root, orientation: top}
}

// Map is a solved layout: pane rectangles mapped to their buffers, plus a
// border grid marking separator cells, both spanning Size.
type Map struct {
	Rects   map[geom.Rect]*view.Buffer
	Borders BorderMap
	Size    geom.Size
}

// minPaneSize is the smallest viable pane extent on either axis.
const minPaneSize = 1

// ComputeRects solves the tree against the available size. The second
// return is false when any pane would fall below the minimum viable size;
// no partial layout is produced in that case.
func (t *Tree) ComputeRects(avail geom.Size) (*Map, bool) {
	return t.root.computeRects(geom.Rect{Size: avail}, t.orientation)
}

func (s *Split) computeRects(rect geom.Rect, o Orientation) (*Map, bool) {
	axis := rect.Size.H
	cross := rect.Size.W
	if o == Horizontal {
		axis, cross = cross, axis
	}

	spans, ok := s.computeSpans(axis)
	if !ok {
		return nil, false
	}

	m := &Map{
		Rects:   make(map[geom.Rect]*view.Buffer),
		Borders: NewBorderMap(rect.Size),
		Size:    rect.Size,
	}

	offset := 0
	for i, span := range spans {
		contentOffset := offset
		contentSpan := span

		// Every child after the first loses its leading axis cell to a
		// separator.
		if i > 0 {
			if o == Vertical {
				m.Borders.AddHorizontal(geom.Pos(offset, 0), rect.Size.W)
			} else {
				m.Borders.AddVertical(geom.Pos(0, offset), rect.Size.H)
			}
			contentOffset++
			contentSpan--
		}

		if contentSpan < minPaneSize || cross < minPaneSize {
			return nil, false
		}

		var childRect geom.Rect
		if o == Vertical {
			childRect = geom.Rect{
				Pos:  rect.Pos.AddRows(contentOffset),
				Size: geom.Sz(rect.Size.W, contentSpan),
			}
		} else {
			childRect = geom.Rect{
				Pos:  rect.Pos.AddCols(contentOffset),
				Size: geom.Sz(contentSpan, rect.Size.H),
			}
		}

		switch child := s.children[i].(type) {
		case Leaf:
			m.Rects[childRect] = child.Buffer
		case Branch:
			inner, ok := child.Split.computeRects(childRect, o.Flip())
			if !ok {
				return nil, false
			}
			rel := geom.Pos(childRect.Pos.Row-rect.Pos.Row, childRect.Pos.Col-rect.Pos.Col)
			m.Borders.Merge(inner.Borders, rel)
			for r, buf := range inner.Rects {
				m.Rects[r] = buf
			}
		}

		offset += span
	}

	return m, true
}

// computeSpans allots the axis length across children. Fixed children
// reserve their cells (plus a separator cell when not first); the rest is
// split among proportional children by floor shares, with every leftover
// cell handed to the last proportional child so the space is consumed
// exactly.
func (s *Split) computeSpans(axis int) ([]int, bool) {
	fixedTotal := 0
	weightSum := 0
	lastProp := -1
	for i, spec := range s.specs {
		if spec.kind == specFixed {
			fixedTotal += spec.value
			if i > 0 {
				fixedTotal++
			}
		} else {
			weightSum += spec.value
			lastProp = i
		}
	}

	remaining := axis - fixedTotal
	if remaining < 0 {
		return nil, false
	}

	spans := make([]int, len(s.specs))
	used := 0
	for i, spec := range s.specs {
		if spec.kind == specFixed {
			spans[i] = spec.value
			if i > 0 {
				spans[i]++
			}
			continue
		}
		spans[i] = remaining * spec.value / weightSum
		used += spans[i]
	}
	if lastProp >= 0 {
		spans[lastProp] += remaining - used
	}
	return spans, true
}
