package view

import (
	"sync"

	"github.com/dshills/tessera/document"
	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/rich"
)

// Buffer pairs a shared Document with one View. Several Buffers may
// reference the same Document; each carries its own cursor, selections, and
// scroll state.
//
// The Buffer's lock guards only the View. Document edits take the
// Document's own lock; the two are never held at the same time, so edits
// racing with rendering are visible mid-frame at worst, never deadlocked.
type Buffer struct {
	mu   sync.Mutex
	doc  *document.Document
	view View
}

// New creates a buffer over an existing document.
func New(doc *document.Document) *Buffer {
	return &Buffer{doc: doc}
}

// NewFromText creates a buffer with its own fresh document holding t.
func NewFromText(t rich.Text) *Buffer {
	return &Buffer{doc: document.FromText(t)}
}

// Document returns the shared document reference.
func (b *Buffer) Document() *document.Document {
	return b.doc
}

// Cursor returns the absolute cursor index.
func (b *Buffer) Cursor() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.view.cursor
}

// CursorVisible reports whether the cursor glyph is being rendered.
func (b *Buffer) CursorVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.view.cursorVisible
}

// SetCursorVisible toggles rendering of the cursor glyph.
func (b *Buffer) SetCursorVisible(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.cursorVisible = visible
}

// MoveCursorBy moves the cursor by delta, clamped to [0, document length].
func (b *Buffer) MoveCursorBy(delta int) {
	length := b.doc.Len()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.cursor = min(max(b.view.cursor+delta, 0), length)
}

// InsertRune inserts one character at the cursor and advances it.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(rich.Plain(string(r)))
}

// InsertText inserts styled text at the cursor; the cursor moves past the
// insertion.
func (b *Buffer) InsertText(t rich.Text) {
	b.mu.Lock()
	pos := b.view.cursor
	b.view.cursor += t.Len()
	b.mu.Unlock()

	b.doc.ReplaceRange(geom.Range{Start: pos, End: pos}, t)
}

// DeleteRuneBeforeCursor removes the character before the cursor and moves
// the cursor back. At position 0 it is a no-op.
func (b *Buffer) DeleteRuneBeforeCursor() {
	b.mu.Lock()
	pos := b.view.cursor
	if pos == 0 {
		b.mu.Unlock()
		return
	}
	b.view.cursor = pos - 1
	b.mu.Unlock()

	b.doc.ReplaceRange(geom.Range{Start: pos - 1, End: pos}, rich.Text{})
}

// AddLine appends a newline-terminated record to the document and
// tail-scrolls so the newest content stays visible.
func (b *Buffer) AddLine(t rich.Text) {
	b.doc.AddLine(t)
	b.ScrollDown()
}

// Take removes and returns the whole document content, resetting the
// cursor and scroll offset. The buffer lock is released before the
// document edit.
func (b *Buffer) Take() rich.Text {
	b.mu.Lock()
	b.view.cursor = 0
	b.view.scroll = 0
	b.mu.Unlock()

	return b.doc.Take()
}

// ScrollDown recomputes the scroll offset so only the final screenful of
// lines is visible. Without a rendered size yet, the offset stays put.
func (b *Buffer) ScrollDown() {
	lines := b.doc.LineCount()

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.view.hasLastSize {
		return
	}
	b.view.scroll = max(0, lines-b.view.lastSize.H)
}

// ScrollTo sets the first visible line. Negative values clamp to 0.
func (b *Buffer) ScrollTo(line int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.scroll = max(line, 0)
}

// AddSelection adds a highlighted range. Selections must be mutually
// disjoint; an overlapping range is rejected with ErrSelectionOverlap.
func (b *Buffer) AddSelection(r geom.Range) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.view.selections {
		if _, ok := existing.Intersect(r); ok {
			return ErrSelectionOverlap
		}
	}
	b.view.selections = append(b.view.selections, r)
	return nil
}

// ClearSelections removes all selections.
func (b *Buffer) ClearSelections() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.selections = nil
}

// Selections returns a copy of the current selection set.
func (b *Buffer) Selections() []geom.Range {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]geom.Range(nil), b.view.selections...)
}

// snapshotView copies the view state and records the rendered size used for
// tail-scrolling.
func (b *Buffer) snapshotView(size geom.Size) View {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.lastSize = size
	b.view.hasLastSize = true
	return b.view.clone()
}
