package view

import (
	"testing"

	"github.com/dshills/tessera/backend"
	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/style"
)

var (
	green = style.New(style.ColorGreen)
	blue  = style.New(style.ColorBlue)
)

func TestRenderPlainLines(t *testing.T) {
	b := NewFromText(rich.Plain("one\ntwo\nthree"))
	sb := backend.NewScreenBuffer(10, 5)

	b.RenderTo(sb, geom.NewRect(0, 0, 10, 5))

	if sb.RowString(0) != "one" || sb.RowString(1) != "two" || sb.RowString(2) != "three" {
		t.Errorf("rows = %q %q %q", sb.RowString(0), sb.RowString(1), sb.RowString(2))
	}
}

func TestRenderClipsToRect(t *testing.T) {
	b := NewFromText(rich.Plain("abcdefghij\nklm"))
	sb := backend.NewScreenBuffer(20, 5)

	b.RenderTo(sb, geom.NewRect(1, 2, 4, 1))

	if got := sb.RowString(1); got != "  abcd" {
		t.Errorf("row 1 = %q, want %q", got, "  abcd")
	}
	// Height 1: second line must not render.
	if got := sb.RowString(2); got != "" {
		t.Errorf("row 2 = %q, want empty", got)
	}
}

func TestRenderHonorsScrollOffset(t *testing.T) {
	b := NewFromText(rich.Plain("1\n2\n3\n4"))
	b.ScrollTo(2)
	sb := backend.NewScreenBuffer(5, 2)

	b.RenderTo(sb, geom.NewRect(0, 0, 5, 2))

	if sb.RowString(0) != "3" || sb.RowString(1) != "4" {
		t.Errorf("rows = %q %q, want 3 4", sb.RowString(0), sb.RowString(1))
	}
}

func TestRenderStyles(t *testing.T) {
	b := NewFromText(rich.Join(rich.Styled("ab", green), rich.Plain("cd")))
	sb := backend.NewScreenBuffer(10, 1)

	b.RenderTo(sb, geom.NewRect(0, 0, 10, 1))

	if got := sb.GetCell(0, 0).Style; got != green {
		t.Errorf("cell 0 style = %v, want green", got)
	}
	if got := sb.GetCell(0, 2).Style; got != style.Default() {
		t.Errorf("cell 2 style = %v, want default", got)
	}
}

func TestRenderSelectionHighlight(t *testing.T) {
	b := NewFromText(rich.Plain("abcdef"))
	if err := b.AddSelection(geom.NewRange(2, 4)); err != nil {
		t.Fatal(err)
	}
	sb := backend.NewScreenBuffer(10, 1)

	b.RenderTo(sb, geom.NewRect(0, 0, 10, 1))

	highlighted := style.Default().Highlighted()
	if got := sb.GetCell(0, 2).Style; got != highlighted {
		t.Errorf("cell 2 style = %v, want highlighted", got)
	}
	if got := sb.GetCell(0, 1).Style; got != style.Default() {
		t.Errorf("cell 1 style = %v, want default", got)
	}
	if got := sb.GetCell(0, 4).Style; got != style.Default() {
		t.Errorf("cell 4 style = %v, want default", got)
	}
}

func TestRenderCursorCell(t *testing.T) {
	b := NewFromText(rich.Plain("abc"))
	b.SetCursorVisible(true)
	b.MoveCursorBy(1)
	sb := backend.NewScreenBuffer(10, 1)

	b.RenderTo(sb, geom.NewRect(0, 0, 10, 1))

	if got := sb.GetCell(0, 1).Style; !got.Attributes.Has(style.AttrReverse) {
		t.Errorf("cursor cell style = %v, want reversed", got)
	}
	if got := sb.GetCell(0, 0).Style; got.Attributes.Has(style.AttrReverse) {
		t.Error("non-cursor cell should not be reversed")
	}
}

func TestRenderCursorAtEndOfDocument(t *testing.T) {
	b := NewFromText(rich.Plain("ab"))
	b.SetCursorVisible(true)
	b.MoveCursorBy(2)
	sb := backend.NewScreenBuffer(10, 1)

	b.RenderTo(sb, geom.NewRect(0, 0, 10, 1))

	got := sb.GetCell(0, 2)
	if got.Rune != ' ' || !got.Style.Attributes.Has(style.AttrReverse) {
		t.Errorf("end-of-document cell = %v, want reversed blank", got)
	}
}

func TestRenderCursorOnLineTerminator(t *testing.T) {
	b := NewFromText(rich.Plain("ab\ncd"))
	b.SetCursorVisible(true)
	b.MoveCursorBy(2) // on the newline
	sb := backend.NewScreenBuffer(10, 2)

	b.RenderTo(sb, geom.NewRect(0, 0, 10, 2))

	got := sb.GetCell(0, 2)
	if got.Rune != ' ' || !got.Style.Attributes.Has(style.AttrReverse) {
		t.Errorf("line-end cursor cell = %v, want reversed blank", got)
	}
}

func TestRenderWideRunesRespectWidth(t *testing.T) {
	b := NewFromText(rich.Plain("日本語"))
	sb := backend.NewScreenBuffer(10, 1)

	// Width 4 fits two wide runes; the third must be clipped.
	b.RenderTo(sb, geom.NewRect(0, 0, 4, 1))

	if got := sb.GetCell(0, 0).Rune; got != '日' {
		t.Errorf("cell 0 = %q", got)
	}
	if got := sb.GetCell(0, 2).Rune; got != '本' {
		t.Errorf("cell 2 = %q", got)
	}
	if got := sb.GetCell(0, 4); got != backend.EmptyCell() {
		t.Errorf("cell 4 = %v, want empty", got)
	}
}

func TestScrollDownTails(t *testing.T) {
	b := NewFromText(rich.Text{})
	sb := backend.NewScreenBuffer(10, 3)
	rect := geom.NewRect(0, 0, 10, 3)

	// Establish the rendered size, then append past one screenful.
	b.RenderTo(sb, rect)
	for i := 0; i < 6; i++ {
		b.AddLine(rich.Plain("line"))
	}

	sb.Clear()
	b.RenderTo(sb, rect)

	// 6 records plus trailing empty line = 7 lines; height 3 shows the
	// last screenful starting at line 4.
	b.mu.Lock()
	scroll := b.view.scroll
	b.mu.Unlock()
	if scroll != 4 {
		t.Errorf("scroll = %d, want 4", scroll)
	}
}

func TestSelectionFragmentsProperties(t *testing.T) {
	seg := rich.Segment{Range: geom.NewRange(0, 30), Style: green}
	selSets := [][]geom.Range{
		nil,
		{geom.NewRange(0, 30)},
		{geom.NewRange(0, 10)},
		{geom.NewRange(20, 30)},
		{geom.NewRange(10, 20)},
		{geom.NewRange(2, 5), geom.NewRange(8, 12), geom.NewRange(25, 40)},
		{geom.NewRange(25, 40), geom.NewRange(2, 5), geom.NewRange(8, 12)},
		{geom.NewRange(40, 50)},
	}

	for _, sels := range selSets {
		frags := resolveSelections(seg, sels, style.Style.Highlighted)

		// Pairwise disjoint, ordered by start, union equals the segment.
		pos := seg.Range.Start
		for _, f := range frags {
			if f.Range.Start != pos {
				t.Fatalf("sels %v: fragment %v breaks coverage at %d", sels, f.Range, pos)
			}
			if f.Range.IsEmpty() {
				t.Fatalf("sels %v: empty fragment", sels)
			}
			pos = f.Range.End
		}
		if pos != seg.Range.End {
			t.Fatalf("sels %v: fragments end at %d, want %d", sels, pos, seg.Range.End)
		}
	}
}

func TestSelectionFragmentStyles(t *testing.T) {
	seg := rich.Segment{Range: geom.NewRange(0, 10), Style: blue}
	frags := resolveSelections(seg, []geom.Range{geom.NewRange(3, 6)}, style.Style.Highlighted)

	if len(frags) != 3 {
		t.Fatalf("got %d fragments, want 3", len(frags))
	}
	if frags[0].Style != blue || frags[2].Style != blue {
		t.Error("uncovered fragments must keep the segment style")
	}
	if frags[1].Style != blue.Highlighted() {
		t.Errorf("covered fragment style = %v, want highlighted blue", frags[1].Style)
	}
}

func TestRenderWithSelectionStyle(t *testing.T) {
	b := NewFromText(rich.Plain("abcdef"))
	if err := b.AddSelection(geom.NewRange(2, 4)); err != nil {
		t.Fatal(err)
	}
	sb := backend.NewScreenBuffer(10, 1)

	sel := style.New(style.ColorRed).WithBackground(style.ColorBlue)
	b.RenderWith(sb, geom.NewRect(0, 0, 10, 1), RenderOptions{Selection: &sel})

	got := sb.GetCell(0, 2).Style
	if got.Foreground != style.ColorRed || got.Background != style.ColorBlue {
		t.Errorf("selected cell style = %v, want red on blue", got)
	}
	if got := sb.GetCell(0, 1).Style; got != style.Default() {
		t.Errorf("unselected cell style = %v, want default", got)
	}
}

func TestRenderWithSelectionStyleKeepsTextColors(t *testing.T) {
	b := NewFromText(rich.Styled("abcdef", green))
	if err := b.AddSelection(geom.NewRange(0, 6)); err != nil {
		t.Fatal(err)
	}
	sb := backend.NewScreenBuffer(10, 1)

	// A background-only selection style must leave foregrounds alone.
	sel := style.Default().WithBackground(style.ColorBlue)
	b.RenderWith(sb, geom.NewRect(0, 0, 10, 1), RenderOptions{Selection: &sel})

	got := sb.GetCell(0, 3).Style
	if got.Foreground != style.ColorGreen {
		t.Errorf("foreground = %v, want green kept", got.Foreground)
	}
	if got.Background != style.ColorBlue {
		t.Errorf("background = %v, want blue", got.Background)
	}
}

func TestRenderWithBaseStyle(t *testing.T) {
	b := NewFromText(rich.Plain("hi"))
	sb := backend.NewScreenBuffer(6, 2)

	base := style.New(style.ColorWhite).WithBackground(style.ColorBlack)
	b.RenderWith(sb, geom.NewRect(0, 0, 6, 2), RenderOptions{Base: &base})

	// Unstyled text takes the base style.
	if got := sb.GetCell(0, 0).Style; got != base {
		t.Errorf("text cell style = %v, want base", got)
	}
	// Blank cells past the text and on empty rows are filled with it.
	if got := sb.GetCell(0, 4).Style; got != base {
		t.Errorf("trailing blank style = %v, want base", got)
	}
	if got := sb.GetCell(1, 2).Style; got != base {
		t.Errorf("empty row blank style = %v, want base", got)
	}
	if got := sb.GetCell(0, 4).Rune; got != ' ' {
		t.Errorf("trailing blank rune = %q", got)
	}
}

func TestRenderWithBaseKeepsStyledText(t *testing.T) {
	b := NewFromText(rich.Styled("ok", green))
	sb := backend.NewScreenBuffer(6, 1)

	base := style.Default().WithBackground(style.ColorBlack)
	b.RenderWith(sb, geom.NewRect(0, 0, 6, 1), RenderOptions{Base: &base})

	got := sb.GetCell(0, 0).Style
	if got.Foreground != style.ColorGreen {
		t.Errorf("foreground = %v, want green", got.Foreground)
	}
	if got.Background != style.ColorBlack {
		t.Errorf("background = %v, want base black", got.Background)
	}
}
