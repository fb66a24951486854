package rich

import (
	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/style"
)

// Segment is a styled run: a sub-range of text sharing one resolved style.
type Segment struct {
	Range geom.Range
	Style style.Style
}

// WithRange returns the segment re-pointed at a different sub-range.
func (s Segment) WithRange(r geom.Range) Segment {
	s.Range = r
	return s
}

// WithStyle returns the segment with a different style.
func (s Segment) WithStyle(st style.Style) Segment {
	s.Style = st
	return s
}
