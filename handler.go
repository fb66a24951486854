package tessera

import (
	"github.com/dshills/tessera/backend"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/view"
)

// HandlerResult is an event handler's verdict on the editing loop.
type HandlerResult int

const (
	// HandlerContinue keeps the loop running.
	HandlerContinue HandlerResult = iota
	// HandlerDone completes the loop; the prompt line is the result.
	HandlerDone
	// HandlerAbort ends the loop without a result.
	HandlerAbort
)

// EventHandler reacts to terminal events during a prompt editing loop. The
// prompt buffer is the one being edited; handlers may also touch other
// buffers they hold references to.
type EventHandler interface {
	HandleEvent(ev backend.Event, prompt *view.Buffer) HandlerResult
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc func(ev backend.Event, prompt *view.Buffer) HandlerResult

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ev backend.Event, prompt *view.Buffer) HandlerResult {
	return f(ev, prompt)
}

// LineHandler is a ready-made handler for single-line input: printable
// runes insert at the cursor, backspace deletes, Enter completes the line,
// Ctrl+C aborts, and pasted text inserts verbatim.
type LineHandler struct{}

// HandleEvent implements EventHandler.
func (LineHandler) HandleEvent(ev backend.Event, prompt *view.Buffer) HandlerResult {
	switch ev.Type {
	case backend.EventKey:
		return handleLineKey(ev, prompt)
	case backend.EventPaste:
		if ev.Text != "" {
			prompt.InsertText(rich.Plain(ev.Text))
		}
	}
	return HandlerContinue
}

func handleLineKey(ev backend.Event, prompt *view.Buffer) HandlerResult {
	switch ev.Key {
	case backend.KeyEnter:
		return HandlerDone
	case backend.KeyBackspace:
		prompt.DeleteRuneBeforeCursor()
	case backend.KeyLeft:
		prompt.MoveCursorBy(-1)
	case backend.KeyRight:
		prompt.MoveCursorBy(1)
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) {
			if ev.Rune == 'c' {
				return HandlerAbort
			}
			return HandlerContinue
		}
		prompt.InsertRune(ev.Rune)
	}
	return HandlerContinue
}
