package document

import (
	"sync"
	"testing"

	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/style"
)

func TestAddLine(t *testing.T) {
	d := New()
	d.AddLine(rich.Plain("hello"))
	d.AddLine(rich.Styled("world", style.New(style.ColorGreen)))

	content := d.Content()
	if content.String() != "hello\nworld\n" {
		t.Errorf("content = %q", content.String())
	}
	if d.LineCount() != 3 { // two records plus the empty trailing line
		t.Errorf("line count = %d, want 3", d.LineCount())
	}
}

func TestReplaceReturnsOld(t *testing.T) {
	d := FromText(rich.Plain("before"))
	old := d.Replace(rich.Plain("after"))

	if old.String() != "before" {
		t.Errorf("old = %q, want before", old.String())
	}
	if d.Content().String() != "after" {
		t.Errorf("content = %q, want after", d.Content().String())
	}
}

func TestTakeLeavesEmpty(t *testing.T) {
	d := FromText(rich.Plain("content"))
	got := d.Take()

	if got.String() != "content" {
		t.Errorf("took %q", got.String())
	}
	if d.Len() != 0 {
		t.Errorf("document should be empty, len = %d", d.Len())
	}
}

func TestReplaceRange(t *testing.T) {
	d := FromText(rich.Plain("Hello world"))
	d.ReplaceRange(geom.NewRange(0, 0), rich.Plain("Oh, "))

	if d.Content().String() != "Oh, Hello world" {
		t.Errorf("content = %q", d.Content().String())
	}
}

func TestContentIsASnapshot(t *testing.T) {
	d := FromText(rich.Plain("abc"))
	snap := d.Content()
	d.Append(rich.Plain("def"))

	if snap.String() != "abc" {
		t.Errorf("snapshot changed to %q", snap.String())
	}
}

func TestConcurrentAppends(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.AddLine(rich.Plain("line"))
			}
		}()
	}
	wg.Wait()

	if d.LineCount() != 8*50+1 {
		t.Errorf("line count = %d, want %d", d.LineCount(), 8*50+1)
	}
}
