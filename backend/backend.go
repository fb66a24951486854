// Package backend provides the terminal surface abstraction the toolkit
// renders into, a tcell-based implementation, and an in-memory screen for
// tests.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventPaste
	EventInterrupt
)

// Event represents a terminal event delivered to the application's handler.
type Event struct {
	Type EventType

	// Key event fields.
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields.
	Width, Height int

	// Paste event field: the full pasted string.
	Text string
}

// Key represents a keyboard key. Printable characters arrive as KeyRune
// with the Rune field set; control-chords arrive as KeyRune plus ModCtrl.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Surface is the minimal render target: a grid of styled cells addressed by
// (row, col). Renderers write whole frames; there is no dirty tracking at
// this layer.
type Surface interface {
	// SetCell sets a single cell. Positions outside the surface are
	// silently ignored.
	SetCell(row, col int, cell Cell)

	// Size returns the current surface dimensions.
	Size() (cols, rows int)
}

// Backend is a Surface wired to a real terminal: it owns terminal setup and
// teardown, frame flushing, the hardware cursor, and the event queue.
type Backend interface {
	Surface

	// Init initializes the backend. Must be called before any other
	// method.
	Init() error

	// Shutdown restores the terminal state. Safe to call more than once.
	Shutdown()

	// Clear clears the whole surface with the default style.
	Clear()

	// Show flushes all cell changes to the terminal in one atomic update.
	Show() error

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(row, col int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent blocks until the next event is available.
	PollEvent() Event

	// PostEvent injects a synthetic event into the queue, waking a
	// blocked PollEvent. Used for shutdown signaling.
	PostEvent(ev Event)
}
