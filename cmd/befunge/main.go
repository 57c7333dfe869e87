// Command befunge is the terminal entry point: it loads the editor-local
// config, reads (or creates) the grid named on the command line, starts
// the interpreter task as a goroutine, and runs the editor task's Bubble
// Tea program, wiring the two over the internal/proto channel pair (spec
// §2/§6.2).
package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/puccinia/befunge-tui/internal/config"
	"github.com/puccinia/befunge-tui/internal/editor"
	"github.com/puccinia/befunge-tui/internal/engine"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
	"github.com/puccinia/befunge-tui/internal/registry"
	"github.com/puccinia/befunge-tui/internal/ui"
)

func main() {
	cfg := config.Load()
	if !ui.SetTheme(cfg.Theme) {
		ui.SetTheme("dark")
	}

	closeLog := config.InitLogging()
	defer closeLog()

	var path *string
	if len(os.Args) > 1 {
		p := os.Args[1]
		path = &p
	}

	g, err := loadOrCreateGrid(path, cfg)
	if err != nil {
		log.Fatalf("befunge: %v", err)
	}

	toInterp := make(chan proto.ToInterpreter)
	toEditor := make(chan proto.ToEditor)

	eng := engine.New(g.Clone(), path, toEditor, toInterp)
	go eng.Run()

	restore := installPanicRestore()
	defer restore()

	reg := registry.New()
	m := editor.New(g, cfg, reg, toInterp, toEditor)

	_, runErr := tea.NewProgram(m, tea.WithAltScreen()).Run()

	// The editor task has stopped reading toEditor; drain it so the
	// interpreter's shutdown Break doesn't block forever.
	go func() {
		for range toEditor {
		}
	}()
	toInterp <- proto.Kill{}

	if runErr != nil {
		log.Fatalf("befunge: %v", runErr)
	}
}

// loadOrCreateGrid reads the named file's text into a grid, or builds an
// empty grid sized per config if the path is missing or unreadable (spec
// §6.1: the CLI's input file may not exist yet).
func loadOrCreateGrid(path *string, cfg config.Config) (*grid.Grid, error) {
	if path == nil {
		return grid.New(cfg.DefaultGridWidth, cfg.DefaultGridHeight), nil
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("befunge: reading %s: %v; starting with an empty grid", *path, err)
		}
		return grid.New(cfg.DefaultGridWidth, cfg.DefaultGridHeight), nil
	}

	return grid.FromText(string(data)), nil
}

// installPanicRestore saves the current terminal mode and returns a
// restore function, deferred so a panic mid-render doesn't leave the
// user's shell in raw mode (ambient stack: terminal teardown on crash).
func installPanicRestore() func() {
	fd := int(os.Stdin.Fd())
	state, err := term.GetState(fd)
	if err != nil {
		return func() {}
	}
	return func() {
		_ = term.Restore(fd, state)
	}
}
