package view

import (
	"sort"

	"github.com/dshills/tessera/backend"
	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/style"
)

// RenderOptions adjust how a buffer is drawn into its rectangle.
type RenderOptions struct {
	// Selection, when set, is overlaid on selected fragments instead of
	// the built-in highlight variant.
	Selection *style.Style

	// Base, when set, is the style beneath every cell: unstyled text and
	// blank cells take it, and styled text keeps its own colors on top.
	Base *style.Style
}

// RenderTo draws the buffer's visible content into the given rectangle of
// the surface with default options.
func (b *Buffer) RenderTo(s backend.Surface, rect geom.Rect) {
	b.RenderWith(s, rect, RenderOptions{})
}

// RenderWith draws like RenderTo under the given options. The view is
// snapshotted and the document copied up front, so no lock is held while
// cells are written.
func (b *Buffer) RenderWith(s backend.Surface, rect geom.Rect, opts RenderOptions) {
	if rect.Size.W < 1 || rect.Size.H < 1 {
		return
	}
	v := b.snapshotView(rect.Size)
	content := b.doc.Content()
	renderContent(s, rect, content, v, opts)
}

func renderContent(s backend.Surface, rect geom.Rect, content rich.Text, v View, opts RenderOptions) {
	allLines := content.LineRanges()

	visible := allLines
	if v.scroll >= len(visible) {
		visible = nil
	} else {
		visible = visible[v.scroll:]
	}
	if len(visible) > rect.Size.H {
		visible = visible[:rect.Size.H]
	}

	highlight := style.Style.Highlighted
	if opts.Selection != nil {
		sel := *opts.Selection
		highlight = func(st style.Style) style.Style {
			return st.Overlay(sel)
		}
	}
	ground := func(st style.Style) style.Style {
		if opts.Base != nil {
			return opts.Base.Overlay(st)
		}
		return st
	}

	// endRow/endCol track where output stopped, for the end-of-document
	// cursor cell.
	endRow, endCol := rect.Pos.Row, rect.Pos.Col
	maxCol := rect.Pos.Col + rect.Size.W

	for i := 0; i < rect.Size.H; i++ {
		row := rect.Pos.Row + i
		col := rect.Pos.Col

		if i < len(visible) {
			line := visible[i]
			clipped := line.ShortenTo(rect.Size.W)

			var sels []geom.Range
			for _, sel := range v.selections {
				if part, ok := sel.Intersect(clipped); ok {
					sels = append(sels, part)
				}
			}

			var frags []rich.Segment
			for _, seg := range content.Segments(clipped) {
				frags = append(frags, resolveSelections(seg, sels, highlight)...)
			}
			if v.cursorVisible {
				frags = overlayCursor(frags, v.cursor)
			}

			for _, frag := range frags {
				for idx := frag.Range.Start; idx < frag.Range.End; idx++ {
					cell := backend.NewCell(content.RuneAt(idx), ground(frag.Style))
					if col+cell.Width > maxCol {
						col = maxCol
						break
					}
					s.SetCell(row, col, cell)
					col += cell.Width
				}
			}

			// Cursor resting on this line's terminator renders as a blank
			// highlighted cell just past the text. Skipped when the line
			// was clipped, since the cursor is then outside the pane.
			if v.cursorVisible && clipped.End == line.End &&
				v.cursor == line.End && v.cursor < content.Len() && col < maxCol {
				cell := backend.EmptyCell()
				cell.Style = ground(cell.Style.Reversed())
				s.SetCell(row, col, cell)
				col++
			}

			endRow, endCol = row, col
		}

		if opts.Base != nil {
			blank := backend.EmptyCell()
			blank.Style = *opts.Base
			for c := col; c < maxCol; c++ {
				s.SetCell(row, c, blank)
			}
		}
	}

	// Cursor at end-of-document gets a synthetic blank cell, provided the
	// document's final line is on screen.
	lastLineVisible := v.scroll+len(visible) == len(allLines)
	if v.cursorVisible && v.cursor >= content.Len() && lastLineVisible && endCol < maxCol {
		cell := backend.EmptyCell()
		cell.Style = ground(cell.Style.Reversed())
		s.SetCell(endRow, endCol, cell)
	}
}

// resolveSelections splits a styled segment against a list of disjoint
// selection ranges. Each covered part takes the highlight variant of its
// style; uncovered remainders are re-checked against the remaining
// selections. The returned fragments are disjoint, ordered by start, and
// tile the segment.
func resolveSelections(seg rich.Segment, sels []geom.Range, highlight func(style.Style) style.Style) []rich.Segment {
	if len(sels) == 0 {
		return []rich.Segment{seg}
	}
	sel, rest := sels[0], sels[1:]

	ov := seg.Range.OverlapWith(sel)
	switch ov.Kind {
	case geom.OverlapComplete:
		return []rich.Segment{seg.WithStyle(highlight(seg.Style))}

	case geom.OverlapLeft, geom.OverlapRight:
		remainder := ov.After
		if ov.Kind == geom.OverlapRight {
			remainder = ov.Before
		}
		frags := []rich.Segment{{Range: ov.Covered, Style: highlight(seg.Style)}}
		frags = append(frags, resolveSelections(seg.WithRange(remainder), rest, highlight)...)
		sortFragments(frags)
		return frags

	case geom.OverlapInner:
		frags := []rich.Segment{{Range: ov.Covered, Style: highlight(seg.Style)}}
		frags = append(frags, resolveSelections(seg.WithRange(ov.Before), rest, highlight)...)
		frags = append(frags, resolveSelections(seg.WithRange(ov.After), rest, highlight)...)
		sortFragments(frags)
		return frags

	default:
		return resolveSelections(seg, rest, highlight)
	}
}

// sortFragments orders fragments by start offset. Fragments never overlap,
// so start order fully determines render order.
func sortFragments(frags []rich.Segment) {
	sort.Slice(frags, func(i, j int) bool {
		return frags[i].Range.Start < frags[j].Range.Start
	})
}

// overlayCursor splits the fragment containing the cursor into pre-cursor,
// at-cursor, and post-cursor pieces, rendering the cursor cell in reverse
// video.
func overlayCursor(frags []rich.Segment, cursor int) []rich.Segment {
	out := make([]rich.Segment, 0, len(frags)+2)
	for _, f := range frags {
		if !f.Range.Contains(cursor) {
			out = append(out, f)
			continue
		}
		pre, tail := f.Range.SplitAt(cursor)
		at, post := tail.SplitAt(cursor + 1)
		if !pre.IsEmpty() {
			out = append(out, f.WithRange(pre))
		}
		out = append(out, rich.Segment{Range: at, Style: f.Style.Reversed()})
		if !post.IsEmpty() {
			out = append(out, f.WithRange(post))
		}
	}
	return out
}
