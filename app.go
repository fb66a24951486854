// Package tessera is a terminal UI toolkit built around two pieces: a pane
// layout engine that solves a tree of proportional and fixed splits against
// the terminal size, and a styled-text document model rendered through
// per-pane buffers. App ties them together with a prompt strip, an event
// loop, and a tcell-backed terminal driver.
package tessera

import (
	"time"

	"github.com/dshills/tessera/backend"
	"github.com/dshills/tessera/geom"
	"github.com/dshills/tessera/layout"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/theme"
	"github.com/dshills/tessera/view"
)

// promptRows is the bottom strip reserved on every frame: one separator
// row plus one prompt row.
const promptRows = 2

// tooSmallMessage is shown when the layout has no solution for the
// current terminal size.
const tooSmallMessage = "terminal too small"

// Config assembles an App. Backend and Tree are required; Theme and Logger
// fall back to theme.Default() and NullLogger.
type Config struct {
	Backend backend.Backend
	Tree    *layout.Tree
	Theme   *theme.Theme
	Logger  *Logger
}

// App is the orchestrator: it owns the split tree, the prompt buffer, and
// the frame loop. One goroutine runs the event loop; other goroutines may
// mutate documents and call Quit.
type App struct {
	backend   backend.Backend
	tree      *layout.Tree
	prompt    *view.Buffer
	theme     *theme.Theme
	logger    *Logger
	renderLog *Logger
	metrics   *Metrics
}

// New creates an App from the config.
func New(cfg Config) (*App, error) {
	if cfg.Backend == nil {
		return nil, ErrNoBackend
	}
	if cfg.Tree == nil {
		return nil, ErrNoTree
	}
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	lg := cfg.Logger
	if lg == nil {
		lg = NullLogger
	}
	return &App{
		backend:   cfg.Backend,
		tree:      cfg.Tree,
		prompt:    view.NewFromText(rich.Text{}),
		theme:     th,
		logger:    lg,
		renderLog: lg.WithComponent("render"),
		metrics:   NewMetrics(),
	}, nil
}

// Init initializes the terminal backend.
func (a *App) Init() error {
	if err := a.backend.Init(); err != nil {
		return NewOperationError("init", err)
	}
	cols, rows := a.backend.Size()
	a.logger.Info("initialized terminal %dx%d", cols, rows)
	return nil
}

// Shutdown restores the terminal. Safe to call more than once.
func (a *App) Shutdown() {
	a.backend.Shutdown()
	s := a.metrics.Snapshot()
	a.logger.Info("shutdown after %d frames (avg %v)", s.Frames, s.AvgFrame)
}

// Prompt returns the prompt buffer rendered on the bottom row.
func (a *App) Prompt() *view.Buffer {
	return a.prompt
}

// Tree returns the current split tree.
func (a *App) Tree() *layout.Tree {
	return a.tree
}

// SetTree replaces the split tree wholesale; the next frame uses it.
func (a *App) SetTree(t *layout.Tree) {
	if t == nil {
		panic("tessera: nil layout tree")
	}
	a.tree = t
}

// Theme returns the active theme.
func (a *App) Theme() *theme.Theme {
	return a.theme
}

// Metrics returns a snapshot of the frame statistics.
func (a *App) Metrics() MetricsSnapshot {
	return a.metrics.Snapshot()
}

// Quit wakes a blocked event loop and makes it return ErrQuit. Safe to
// call from any goroutine.
func (a *App) Quit() {
	a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
}

// Render draws one full frame: every pane, the separator borders, the
// prompt strip, then a single Show. When the layout has no solution for
// the current size only the too-small notice is drawn. The hardware cursor
// tracks the prompt cursor while it is visible and hides otherwise.
func (a *App) Render() error {
	start := time.Now()

	cols, rows := a.backend.Size()
	a.backend.Clear()
	ok := a.renderFrame(a.backend, cols, rows)
	if ok && a.prompt.CursorVisible() {
		col := a.prompt.Cursor()
		if col > cols-1 {
			col = cols - 1
		}
		a.backend.ShowCursor(rows-1, col)
	} else {
		a.backend.HideCursor()
	}
	if err := a.backend.Show(); err != nil {
		return NewOperationError("render", err)
	}

	a.metrics.RecordFrame(time.Since(start))
	return nil
}

func (a *App) renderFrame(s backend.Surface, cols, rows int) bool {
	var m *layout.Map
	ok := false
	if content := rows - promptRows; content >= 1 && cols >= 1 {
		m, ok = a.tree.ComputeRects(geom.Sz(cols, content))
	}
	if !ok {
		a.renderLog.Warn("layout has no solution for %dx%d", cols, rows)
		a.drawNotice(s, cols, rows)
		return false
	}

	paneOpts := view.RenderOptions{Selection: &a.theme.Selection}
	for rect, buf := range m.Rects {
		buf.RenderWith(s, rect, paneOpts)
	}
	a.drawBorders(s, m)

	sep := backend.NewCell(a.theme.HLine, a.theme.Border)
	for col := 0; col < cols; col++ {
		s.SetCell(rows-2, col, sep)
	}
	a.prompt.RenderWith(s, geom.NewRect(rows-1, 0, cols, 1), view.RenderOptions{
		Selection: &a.theme.Selection,
		Base:      &a.theme.Prompt,
	})
	return true
}

func (a *App) drawBorders(s backend.Surface, m *layout.Map) {
	for row := 0; row < m.Size.H; row++ {
		for col := 0; col < m.Size.W; col++ {
			info := m.Borders.At(row, col)
			if !info.Any() {
				continue
			}
			glyph := a.theme.VLine
			switch {
			case info.Vertical && info.Horizontal:
				glyph = a.theme.Cross
			case info.Horizontal:
				glyph = a.theme.HLine
			}
			s.SetCell(row, col, backend.NewCell(glyph, a.theme.Border))
		}
	}
}

func (a *App) drawNotice(s backend.Surface, cols, rows int) {
	if rows < 1 {
		return
	}
	col := (cols - rich.DisplayWidth(tooSmallMessage)) / 2
	if col < 0 {
		col = 0
	}
	for _, r := range tooSmallMessage {
		if col >= cols {
			break
		}
		cell := backend.NewCell(r, a.theme.Message)
		s.SetCell(0, col, cell)
		col += cell.Width
	}
}

// EditPrompt runs the event loop over the prompt buffer until the handler
// completes or aborts. The prompt cursor is visible for the duration. On
// completion the entered line is taken out of the prompt and returned; on
// abort or interrupt the prompt is emptied and ErrQuit is returned. Render
// errors are logged and the next frame retries.
func (a *App) EditPrompt(h EventHandler) (rich.Text, error) {
	a.prompt.SetCursorVisible(true)
	defer a.prompt.SetCursorVisible(false)

	for {
		if err := a.Render(); err != nil {
			a.renderLog.Error("%v", err)
		}

		ev := a.backend.PollEvent()
		switch ev.Type {
		case backend.EventInterrupt:
			a.prompt.Take()
			return rich.Text{}, ErrQuit
		case backend.EventResize:
			continue
		}

		switch h.HandleEvent(ev, a.prompt) {
		case HandlerDone:
			line := a.prompt.Take()
			a.logger.Debug("prompt accepted (%d runes)", line.Len())
			return line, nil
		case HandlerAbort:
			a.prompt.Take()
			return rich.Text{}, ErrQuit
		}
	}
}
