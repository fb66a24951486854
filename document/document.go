// Package document provides the mutation-guarded owner of one rich.Text
// value. A Document may be shared by any number of Buffers; sharing happens
// by passing the pointer around, never by copying content.
package document

import (
	"sync"

	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/rich"
)

// Document owns one styled text value behind a lock. Every mutation holds
// the lock for the duration of the edit only; no Document operation takes
// any other lock.
type Document struct {
	mu      sync.RWMutex
	content rich.Text
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// FromText creates a document that takes ownership of the given text.
func FromText(t rich.Text) *Document {
	return &Document{content: t}
}

// AddLine appends a newline-terminated record. Styles carried by the text
// are merged into the document's style table with deduplication.
func (d *Document) AddLine(t rich.Text) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.content.Append(t)
	d.content.PushRune('\n')
}

// Append concatenates text without a terminator.
func (d *Document) Append(t rich.Text) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.content.Append(t)
}

// ReplaceRange edits a sub-range of the content.
func (d *Document) ReplaceRange(r geom.Range, repl rich.Text) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.content.ReplaceRange(r, repl)
}

// Replace swaps the whole content for t and returns the previous value.
func (d *Document) Replace(t rich.Text) rich.Text {
	d.mu.Lock()
	defer d.mu.Unlock()

	old := d.content
	d.content = t
	return old
}

// Take extracts the content, leaving the document empty.
func (d *Document) Take() rich.Text {
	return d.Replace(rich.Text{})
}

// Len returns the content length in runes.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.content.Len()
}

// LineCount returns the number of lines in the content.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.content.LineRanges())
}

// Content returns an independently owned copy of the content. Renderers
// work from this snapshot so the lock is never held across drawing.
func (d *Document) Content() rich.Text {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.content.Clone()
}
