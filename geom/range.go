package geom

import "fmt"

// Range is a half-open interval [Start, End) over an integer coordinate.
// Start must never exceed End.
type Range struct {
	Start, End int
}

// NewRange creates a range. Panics if start > end; reversed ranges are a
// programmer error, not input to tolerate.
func NewRange(start, end int) Range {
	if start > end {
		panic(fmt.Sprintf("geom: reversed range [%d, %d)", start, end))
	}
	return Range{Start: start, End: end}
}

// Len returns the number of coordinates covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// ShortenTo limits the range to at most n coordinates, keeping the start.
func (r Range) ShortenTo(n int) Range {
	if r.Len() > n {
		r.End = r.Start + n
	}
	return r
}

// SplitAt partitions the range at an absolute coordinate. The index is
// clamped to the range bounds, so either side may come back empty.
func (r Range) SplitAt(i int) (Range, Range) {
	if i < r.Start {
		i = r.Start
	}
	if i > r.End {
		i = r.End
	}
	return Range{Start: r.Start, End: i}, Range{Start: i, End: r.End}
}

// Shift returns the range moved by delta on both ends.
func (r Range) Shift(delta int) Range {
	r.Start += delta
	r.End += delta
	return r
}

// Intersect returns the common part of two ranges and whether it is
// non-empty.
func (r Range) Intersect(other Range) (Range, bool) {
	start := max(r.Start, other.Start)
	end := min(r.End, other.End)
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// OverlapKind classifies how a foreign range overlaps a base range.
type OverlapKind int

const (
	// OverlapNone means the two ranges share no coordinates.
	OverlapNone OverlapKind = iota
	// OverlapComplete means the foreign range covers the whole base range.
	OverlapComplete
	// OverlapLeft means the foreign range covers a prefix of the base
	// range, leaving a suffix remainder.
	OverlapLeft
	// OverlapRight means the foreign range covers a suffix of the base
	// range, leaving a prefix remainder.
	OverlapRight
	// OverlapInner means the foreign range lies strictly inside the base
	// range, leaving remainders on both sides.
	OverlapInner
)

// Overlap describes the intersection of a foreign range with a base range.
// Covered is the shared part; Before and After are the uncovered remainders
// of the base range (empty unless the kind calls for them).
type Overlap struct {
	Kind    OverlapKind
	Covered Range
	Before  Range
	After   Range
}

// OverlapWith classifies how foreign overlaps r.
func (r Range) OverlapWith(foreign Range) Overlap {
	covered, ok := r.Intersect(foreign)
	if !ok {
		return Overlap{Kind: OverlapNone}
	}
	switch {
	case covered == r:
		return Overlap{Kind: OverlapComplete, Covered: covered}
	case covered.Start == r.Start:
		return Overlap{
			Kind:    OverlapLeft,
			Covered: covered,
			After:   Range{Start: covered.End, End: r.End},
		}
	case covered.End == r.End:
		return Overlap{
			Kind:    OverlapRight,
			Covered: covered,
			Before:  Range{Start: r.Start, End: covered.Start},
		}
	default:
		return Overlap{
			Kind:    OverlapInner,
			Covered: covered,
			Before:  Range{Start: r.Start, End: covered.Start},
			After:   Range{Start: covered.End, End: r.End},
		}
	}
}
