// Package main tails a shared document into two panes: both buffers sit on
// the same document, so every appended line shows up in both, while each
// pane keeps its own scroll position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/dshills/tessera"
	"github.com/dshills/tessera/backend"
	"github.com/dshills/tessera/document"
	"github.com/dshills/tessera/layout"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/style"
	"github.com/dshills/tessera/view"
)

func main() {
	os.Exit(run())
}

func run() int {
	var interval time.Duration
	flag.DurationVar(&interval, "interval", 500*time.Millisecond, "Delay between generated lines")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: tessera-tail requires a terminal")
		return 1
	}

	doc := document.New()
	follow := view.New(doc)
	pinned := view.New(doc)

	tree := layout.NewTreeFromDefs(layout.Horizontal,
		layout.Pane(layout.Prop(1), follow),
		layout.Pane(layout.Prop(1), pinned),
	)

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create terminal: %v\n", err)
		return 1
	}

	app, err := tessera.New(tessera.Config{Backend: terminal, Tree: tree})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := app.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		app.Quit()
	}()

	// The feeder appends through the left buffer so only that pane
	// tail-scrolls; the right pane stays pinned to the top.
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		n := 0
		for {
			select {
			case <-stop:
				return
			case t := <-ticker.C:
				n++
				follow.AddLine(rich.Plain(
					fmt.Sprintf("%s line %d", t.Format("15:04:05"), n)))
				// Wake the event loop so the new line is drawn.
				terminal.PostEvent(backend.Event{})
			}
		}
	}()
	defer close(stop)

	marker := style.New(style.RGB(220, 180, 80)).Bold()
	for {
		line, err := app.EditPrompt(tessera.LineHandler{})
		if err != nil {
			if errors.Is(err, tessera.ErrQuit) {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if line.IsEmpty() {
			continue
		}
		follow.AddLine(rich.Styled("== "+line.String()+" ==", marker))
	}
}
