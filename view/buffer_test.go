package view

import (
	"errors"
	"testing"

	"github.com/dshills/tessera/document"
	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/rich"
)

func TestInsertRuneAdvancesCursor(t *testing.T) {
	b := NewFromText(rich.Text{})
	b.InsertRune('h')
	b.InsertRune('i')

	if got := b.Document().Content().String(); got != "hi" {
		t.Errorf("content = %q, want hi", got)
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
}

func TestInsertTextMovesCursorByLength(t *testing.T) {
	b := NewFromText(rich.Plain("world"))
	b.InsertText(rich.Plain("hello "))

	if got := b.Document().Content().String(); got != "hello world" {
		t.Errorf("content = %q", got)
	}
	if b.Cursor() != 6 {
		t.Errorf("cursor = %d, want 6", b.Cursor())
	}
}

func TestDeleteBeforeCursorSaturates(t *testing.T) {
	b := NewFromText(rich.Plain("ab"))

	// At position 0 deletion is a no-op.
	b.DeleteRuneBeforeCursor()
	if got := b.Document().Content().String(); got != "ab" {
		t.Errorf("content = %q, want ab", got)
	}

	b.MoveCursorBy(2)
	b.DeleteRuneBeforeCursor()
	if got := b.Document().Content().String(); got != "a" {
		t.Errorf("content = %q, want a", got)
	}
	if b.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", b.Cursor())
	}
}

func TestMoveCursorClamps(t *testing.T) {
	b := NewFromText(rich.Plain("abc"))

	b.MoveCursorBy(-5)
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
	b.MoveCursorBy(99)
	if b.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", b.Cursor())
	}
}

func TestAddSelectionRejectsOverlap(t *testing.T) {
	b := NewFromText(rich.Plain("0123456789"))

	if err := b.AddSelection(geom.NewRange(0, 4)); err != nil {
		t.Fatalf("first selection: %v", err)
	}
	if err := b.AddSelection(geom.NewRange(4, 8)); err != nil {
		t.Fatalf("adjacent selection: %v", err)
	}
	err := b.AddSelection(geom.NewRange(3, 5))
	if !errors.Is(err, ErrSelectionOverlap) {
		t.Errorf("overlapping selection: err = %v, want ErrSelectionOverlap", err)
	}
	if got := len(b.Selections()); got != 2 {
		t.Errorf("selection count = %d, want 2", got)
	}

	b.ClearSelections()
	if got := len(b.Selections()); got != 0 {
		t.Errorf("selection count after clear = %d, want 0", got)
	}
}

func TestTakeResetsCursorAndScroll(t *testing.T) {
	b := NewFromText(rich.Plain("hello"))
	b.MoveCursorBy(5)
	b.ScrollTo(3)

	got := b.Take()
	if got.String() != "hello" {
		t.Errorf("taken = %q", got.String())
	}
	if b.Document().Len() != 0 {
		t.Error("document should be empty after Take")
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
}

func TestSharedDocumentBetweenBuffers(t *testing.T) {
	doc := document.New()
	a := New(doc)
	b := New(doc)

	a.AddLine(rich.Plain("from a"))
	if got := b.Document().Content().String(); got != "from a\n" {
		t.Errorf("buffer b sees %q", got)
	}
}
