package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tessera/style"
)

// Terminal implements Backend using tcell for terminal output. tcell owns
// raw mode and the alternate screen between Init and Shutdown.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	closed bool
}

// NewTerminal creates a terminal backend for the process's tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}

func (t *Terminal) Size() (cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(row, col int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(col, row, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
	return nil
}

func (t *Terminal) ShowCursor(row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(col, row)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks for the next event. Bracketed-paste content arrives from
// tcell as a start marker, a run of rune keys, and an end marker; those are
// folded here into a single paste event carrying the whole string.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			return convertKey(e)

		case *tcell.EventResize:
			w, h := e.Size()
			return Event{Type: EventResize, Width: w, Height: h}

		case *tcell.EventPaste:
			if e.Start() {
				return Event{Type: EventPaste, Text: t.collectPaste()}
			}
			// Stray end marker; ignore.

		case *tcell.EventInterrupt:
			if posted, ok := e.Data().(Event); ok {
				return posted
			}
			return Event{Type: EventInterrupt}

		case nil:
			return Event{Type: EventNone}
		}
	}
}

// collectPaste reads rune keys until the paste end marker.
func (t *Terminal) collectPaste() string {
	var runes []rune
	for {
		switch e := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyRune:
				runes = append(runes, e.Rune())
			case tcell.KeyEnter:
				runes = append(runes, '\n')
			case tcell.KeyTab:
				runes = append(runes, '\t')
			}
		case *tcell.EventPaste:
			if !e.Start() {
				return string(runes)
			}
		case nil:
			return string(runes)
		}
	}
}

func (t *Terminal) PostEvent(ev Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev)) // best-effort; queue may be full
}

// convertStyle converts a toolkit style to a tcell style.
func convertStyle(s style.Style) tcell.Style {
	st := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		if s.Foreground.Indexed {
			st = st.Foreground(tcell.PaletteColor(int(s.Foreground.R)))
		} else {
			st = st.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
		}
	}
	if !s.Background.IsDefault() {
		if s.Background.Indexed {
			st = st.Background(tcell.PaletteColor(int(s.Background.R)))
		} else {
			st = st.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
		}
	}

	if s.Attributes.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(style.AttrDim) {
		st = st.Dim(true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(style.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attributes.Has(style.AttrBlink) {
		st = st.Blink(true)
	}
	if s.Attributes.Has(style.AttrReverse) {
		st = st.Reverse(true)
	}
	if s.Attributes.Has(style.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}

	return st
}

// convertKey converts a tcell key event. Control chords are normalized to
// KeyRune plus ModCtrl so handlers see one shape for character input.
func convertKey(e *tcell.EventKey) Event {
	ev := Event{Type: EventKey, Mod: convertMod(e.Modifiers())}

	k := e.Key()
	switch k {
	case tcell.KeyRune:
		ev.Key = KeyRune
		ev.Rune = e.Rune()
		return ev
	case tcell.KeyEscape:
		ev.Key = KeyEscape
		return ev
	case tcell.KeyEnter:
		ev.Key = KeyEnter
		return ev
	case tcell.KeyTab:
		ev.Key = KeyTab
		return ev
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ev.Key = KeyBackspace
		return ev
	case tcell.KeyDelete:
		ev.Key = KeyDelete
		return ev
	case tcell.KeyInsert:
		ev.Key = KeyInsert
		return ev
	case tcell.KeyHome:
		ev.Key = KeyHome
		return ev
	case tcell.KeyEnd:
		ev.Key = KeyEnd
		return ev
	case tcell.KeyPgUp:
		ev.Key = KeyPageUp
		return ev
	case tcell.KeyPgDn:
		ev.Key = KeyPageDown
		return ev
	case tcell.KeyUp:
		ev.Key = KeyUp
		return ev
	case tcell.KeyDown:
		ev.Key = KeyDown
		return ev
	case tcell.KeyLeft:
		ev.Key = KeyLeft
		return ev
	case tcell.KeyRight:
		ev.Key = KeyRight
		return ev
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		ev.Key = KeyF1 + Key(k-tcell.KeyF1)
		return ev
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		ev.Key = KeyRune
		ev.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		ev.Mod |= ModCtrl
		return ev
	}

	ev.Key = KeyNone
	return ev
}

// convertMod converts the tcell modifier mask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
