// Package main is a fake chat client showing the pane layout engine and
// the prompt editing loop.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/tessera"
	"github.com/dshills/tessera/backend"
	"github.com/dshills/tessera/layout"
	"github.com/dshills/tessera/rich"
	"github.com/dshills/tessera/style"
	"github.com/dshills/tessera/theme"
	"github.com/dshills/tessera/view"
)

func main() {
	os.Exit(run())
}

func run() int {
	var themePath string
	var logPath string
	var logLevel string
	flag.StringVar(&themePath, "theme", "", "Path to a theme JSON file")
	flag.StringVar(&logPath, "log", "", "Write logs to this file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: tessera-chat requires a terminal")
		return 1
	}

	logger := tessera.NullLogger
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = tessera.NewLogger(tessera.LoggerConfig{
			Level:  tessera.ParseLogLevel(logLevel),
			Output: f,
			Prefix: "tessera-chat",
		})
	}

	th := theme.Default()
	if themePath != "" {
		loaded, err := theme.Load(themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		th = loaded
	}

	chat := view.NewFromText(rich.Plain("Hello World"))
	members := view.NewFromText(rich.Join(
		rich.Styled("members", style.Default().Bold()),
		rich.Plain("\nyou\necho-bot"),
	))
	log := view.NewFromText(rich.Text{})

	tree := layout.NewTreeFromDefs(layout.Vertical,
		layout.Group(layout.Prop(2),
			layout.Pane(layout.Prop(3), chat),
			layout.Pane(layout.Prop(1), members),
		),
		layout.Pane(layout.Prop(1), log),
	)

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create terminal: %v\n", err)
		return 1
	}

	app, err := tessera.New(tessera.Config{
		Backend: terminal,
		Tree:    tree,
		Theme:   th,
		Logger:  logger,
	})
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

	you := style.New(style.RGB(120, 200, 120)).Bold()
	bot := style.New(style.RGB(120, 160, 220)).Bold()

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

		chat.AddLine(rich.Join(rich.Styled("you: ", you), line))
		chat.AddLine(rich.Join(
			rich.Styled("echo-bot: ", bot),
			rich.Plain(line.String()),
		))
		log.AddLine(rich.Plain(fmt.Sprintf("sent %d runes", line.Len())))
	}
}
