package layout

import "github.com/dshills/tessera/view"

// Def is one node of a declarative pane definition: a size spec paired with
// either a buffer or a nested group. Build trees with Pane, Group, and
// NewTreeFromDefs; the notation is construction-time sugar with no runtime
// semantics of its own.
type Def struct {
	spec     SizeSpec
	buffer   *view.Buffer
	children []Def
}

// Pane defines a leaf pane showing the given buffer.
func Pane(spec SizeSpec, b *view.Buffer) Def {
	return Def{spec: spec, buffer: b}
}

// Group defines a nested split; its children run perpendicular to the
// enclosing level.
func Group(spec SizeSpec, children ...Def) Def {
	return Def{spec: spec, children: children}
}

// NewTreeFromDefs builds a split tree from nested definitions:
//
//	tree := layout.NewTreeFromDefs(layout.Vertical,
//		layout.Group(layout.Prop(2),
//			layout.Pane(layout.Prop(1), left),
//			layout.Pane(layout.Prop(1), right),
//		),
//		layout.Pane(layout.Prop(1), bottom),
//	)
func NewTreeFromDefs(top Orientation, defs ...Def) *Tree {
	return NewTree(buildSplit(defs), top)
}

func buildSplit(defs []Def) *Split {
	specs := make([]SizeSpec, len(defs))
	children := make([]Content, len(defs))
	for i, d := range defs {
		specs[i] = d.spec
		if len(d.children) > 0 {
			children[i] = Branch{Split: buildSplit(d.children)}
		} else {
			children[i] = Leaf{Buffer: d.buffer}
		}
	}
	return NewSplit(specs, children)
}
