// Package rich provides the styled-text value type: a rune sequence paired
// with a per-rune style attribution map and a deduplicated style table.
// Text values are owned by exactly one holder; duplication is an explicit
// Clone, and split operations hand back independently owned halves.
package rich

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/style"
)

// unstyled marks a style-map entry with no style-table attribution.
const unstyled = -1

// Text is a styled text value. The style map has exactly one entry per rune;
// each entry is either unstyled or a valid index into the style table, and
// no two table entries are equal.
type Text struct {
	runes    []rune
	styleMap []int
	styles   []style.Style
}

// Plain creates an unstyled text from a string.
func Plain(s string) Text {
	runes := []rune(s)
	m := make([]int, len(runes))
	for i := range m {
		m[i] = unstyled
	}
	return Text{runes: runes, styleMap: m}
}

// Styled creates a text with every rune attributed to the given style.
func Styled(s string, st style.Style) Text {
	runes := []rune(s)
	if len(runes) == 0 {
		return Text{}
	}
	m := make([]int, len(runes))
	return Text{runes: runes, styleMap: m, styles: []style.Style{st}}
}

// Join concatenates any number of parts into one text, deduplicating styles
// across all of them.
func Join(parts ...Text) Text {
	var res Text
	for _, p := range parts {
		res.Append(p)
	}
	return res
}

// Len returns the number of runes in the text.
func (t Text) Len() int {
	return len(t.runes)
}

// IsEmpty reports whether the text contains no runes.
func (t Text) IsEmpty() bool {
	return len(t.runes) == 0
}

// String returns the text content without styling.
func (t Text) String() string {
	return string(t.runes)
}

// Slice returns the plain content of a sub-range.
func (t Text) Slice(r geom.Range) string {
	return string(t.runes[r.Start:r.End])
}

// RuneAt returns the rune at an absolute index.
func (t Text) RuneAt(i int) rune {
	return t.runes[i]
}

// StyleAt returns the resolved style at an absolute index. Unstyled
// positions resolve to the default style.
func (t Text) StyleAt(i int) style.Style {
	if si := t.styleMap[i]; si != unstyled {
		return t.styles[si]
	}
	return style.Default()
}

// Clone returns an independently owned copy of the text.
func (t Text) Clone() Text {
	c := Text{
		runes:    make([]rune, len(t.runes)),
		styleMap: make([]int, len(t.styleMap)),
	}
	copy(c.runes, t.runes)
	copy(c.styleMap, t.styleMap)
	if len(t.styles) > 0 {
		c.styles = make([]style.Style, len(t.styles))
		copy(c.styles, t.styles)
	}
	return c
}

// Append concatenates other onto t. Styles already present in t's table are
// reused; new ones are added, so the table stays duplicate-free. Linear
// equality search is fine here: styles per line are few.
func (t *Text) Append(other Text) {
	mapping := make([]int, len(other.styles))
	for oi, os := range other.styles {
		mapping[oi] = t.styleIndex(os)
	}

	t.runes = append(t.runes, other.runes...)
	for _, si := range other.styleMap {
		if si == unstyled {
			t.styleMap = append(t.styleMap, unstyled)
		} else {
			t.styleMap = append(t.styleMap, mapping[si])
		}
	}
}

// PushRune appends one unstyled rune.
func (t *Text) PushRune(r rune) {
	t.runes = append(t.runes, r)
	t.styleMap = append(t.styleMap, unstyled)
}

// PushStyledRune appends one rune attributed to the given style.
func (t *Text) PushStyledRune(r rune, st style.Style) {
	t.runes = append(t.runes, r)
	t.styleMap = append(t.styleMap, t.styleIndex(st))
}

// styleIndex returns the table index for st, adding it if absent.
func (t *Text) styleIndex(st style.Style) int {
	for i, existing := range t.styles {
		if existing == st {
			return i
		}
	}
	t.styles = append(t.styles, st)
	return len(t.styles) - 1
}

// SplitAt partitions the text at a rune index. An index at or below zero
// yields (empty, whole); an index at or past the end yields (whole, empty).
// Both halves own pruned, renumbered style tables holding only the styles
// they still reference.
func (t Text) SplitAt(index int) (Text, Text) {
	switch {
	case index <= 0:
		return Text{}, t.Clone()
	case index >= len(t.runes):
		return t.Clone(), Text{}
	}

	left := Text{
		runes:    append([]rune(nil), t.runes[:index]...),
		styleMap: append([]int(nil), t.styleMap[:index]...),
	}
	right := Text{
		runes:    append([]rune(nil), t.runes[index:]...),
		styleMap: append([]int(nil), t.styleMap[index:]...),
	}
	left.styles = reduceStyles(t.styles, left.styleMap)
	right.styles = reduceStyles(t.styles, right.styleMap)
	return left, right
}

// reduceStyles filters styles down to the entries still referenced by m,
// rewriting m in place to the renumbered indices.
func reduceStyles(styles []style.Style, m []int) []style.Style {
	remap := make(map[int]int)
	var kept []style.Style
	for i := range m {
		old := m[i]
		if old == unstyled {
			continue
		}
		ni, ok := remap[old]
		if !ok {
			ni = len(kept)
			remap[old] = ni
			kept = append(kept, styles[old])
		}
		m[i] = ni
	}
	return kept
}

// ReplaceRange removes the runes covered by r and inserts repl in their
// place. An empty range at position 0 prepends; any range starting at or
// past the end appends. The resulting length is always
// len - r.Len() + repl.Len() for in-bounds ranges.
func (t *Text) ReplaceRange(r geom.Range, repl Text) {
	switch {
	case r.Start >= len(t.runes):
		t.Append(repl)
	case r.IsEmpty() && r.Start == 0:
		res := repl.Clone()
		res.Append(*t)
		*t = res
	default:
		left, _ := t.SplitAt(r.Start)
		_, right := t.SplitAt(r.End)
		left.Append(repl)
		left.Append(right)
		*t = left
	}
}

// Segments run-length-encodes the style map over the query range into an
// ordered, contiguous, gap-free list of styled sub-ranges. Unstyled runs
// resolve to the default style. The query must lie within the text and is
// expected to cover a single line.
func (t Text) Segments(r geom.Range) []Segment {
	if r.IsEmpty() {
		return nil
	}
	window := t.styleMap[r.Start:r.End]

	var res []Segment
	runStart := 0
	for i := 1; i <= len(window); i++ {
		if i < len(window) && window[i] == window[runStart] {
			continue
		}
		seg := Segment{
			Range: geom.Range{Start: r.Start + runStart, End: r.Start + i},
		}
		if si := window[runStart]; si != unstyled {
			seg.Style = t.styles[si]
		} else {
			seg.Style = style.Default()
		}
		res = append(res, seg)
		runStart = i
	}
	return res
}

// LineRanges partitions the text into per-line ranges, splitting on '\n'.
// The terminator is excluded from its line's range. The result always has
// at least one entry; a trailing newline yields a final empty line.
func (t Text) LineRanges() []geom.Range {
	var res []geom.Range
	lineStart := 0
	for i, r := range t.runes {
		if r == '\n' {
			res = append(res, geom.Range{Start: lineStart, End: i})
			lineStart = i + 1
		}
	}
	res = append(res, geom.Range{Start: lineStart, End: len(t.runes)})
	return res
}

// IndexAt maps a (line, column) position to an absolute rune index. The
// column is not validated against the line length; a column past the end
// addresses positions beyond the terminator.
func (t Text) IndexAt(row, col int) int {
	idx := 0
	if row > 0 {
		seen := 0
		for _, r := range t.runes {
			idx++
			if r == '\n' {
				seen++
				if seen == row {
					break
				}
			}
		}
	}
	return idx + col
}

// DisplayWidth returns the number of terminal cells a string occupies,
// accounting for wide characters and grapheme clusters.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// checkInvariants panics when the structural invariants are violated. Used
// by tests; violations are programmer errors, never runtime conditions.
func (t Text) checkInvariants() {
	if len(t.styleMap) != len(t.runes) {
		panic(fmt.Sprintf("rich: style map length %d != rune count %d", len(t.styleMap), len(t.runes)))
	}
	for i, si := range t.styleMap {
		if si != unstyled && (si < 0 || si >= len(t.styles)) {
			panic(fmt.Sprintf("rich: style map entry %d references invalid style %d", i, si))
		}
	}
	for i := range t.styles {
		for j := i + 1; j < len(t.styles); j++ {
			if t.styles[i] == t.styles[j] {
				panic(fmt.Sprintf("rich: duplicate style table entries %d and %d", i, j))
			}
		}
	}
}
