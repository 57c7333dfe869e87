// Package config loads and provides editor-local application configuration.
//
// On first run, a default YAML config is written to ~/.befunge-tui.yaml.
// Subsequent runs read and merge that file with built-in defaults. This is
// distinct from the per-grid EditorConfig the interpreter/editor protocol
// carries (panel toggles like heat/live_output live there, set via the
// `set` command); this package holds preferences that exist before any
// grid is loaded at all.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RunAreaPosition is where the stack/output run panel docks by default.
type RunAreaPosition string

const (
	RunAreaLeft   RunAreaPosition = "left"
	RunAreaRight  RunAreaPosition = "right"
	RunAreaHidden RunAreaPosition = "hidden"
)

// Next cycles Left -> Right -> Hidden -> Left (spec §4.3, Normal `f`).
func (p RunAreaPosition) Next() RunAreaPosition {
	switch p {
	case RunAreaLeft:
		return RunAreaRight
	case RunAreaRight:
		return RunAreaHidden
	default:
		return RunAreaLeft
	}
}

// Config holds all user-configurable settings.
type Config struct {
	// Theme selects the lipgloss color palette internal/ui renders with.
	Theme string `yaml:"theme"`

	// DefaultGridWidth/DefaultGridHeight size the empty grid created when
	// the CLI's input file does not exist (spec §6.1).
	DefaultGridWidth  int `yaml:"default_grid_width"`
	DefaultGridHeight int `yaml:"default_grid_height"`

	// RunAreaPosition is the initial dock side for the stack/output panel.
	RunAreaPosition RunAreaPosition `yaml:"run_area_position"`

	// FrameRate is the editor's render loop target in Hz (spec §4's "Frame
	// loop & input dispatch", nominally 30; §9 treats it as a target, not
	// a correctness requirement).
	FrameRate int `yaml:"frame_rate"`

	// HistorySize bounds the undo/redo snapshot deque (spec §3.4).
	HistorySize int `yaml:"history_size"`

	// CommandHistorySize bounds the command-mode recall deque (spec §3.4).
	CommandHistorySize int `yaml:"command_history_size"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Theme:              "dark",
		DefaultGridWidth:   10,
		DefaultGridHeight:  10,
		RunAreaPosition:    RunAreaLeft,
		FrameRate:          30,
		HistorySize:        100,
		CommandHistorySize: 100,
	}
}

// configPath returns the path to ~/.befunge-tui.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".befunge-tui.yaml")
}

// Load reads the config file, falling back to defaults for missing fields,
// writing the defaults out on first run (teacher precedent:
// internal/config.Load in the multiterminal UI this was adapted from).
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.DefaultGridWidth < 1 {
		cfg.DefaultGridWidth = 1
	}
	if cfg.DefaultGridHeight < 1 {
		cfg.DefaultGridHeight = 1
	}
	if cfg.FrameRate < 1 {
		cfg.FrameRate = 1
	}
	if cfg.FrameRate > 120 {
		cfg.FrameRate = 120
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = 1
	}
	if cfg.CommandHistorySize < 1 {
		cfg.CommandHistorySize = 1
	}

	validThemes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	switch cfg.RunAreaPosition {
	case RunAreaLeft, RunAreaRight, RunAreaHidden:
	default:
		cfg.RunAreaPosition = RunAreaLeft
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# befunge-tui configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}

// logFilePath returns the path for the day's log file, next to the config
// file in the user's home directory.
func logFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	ts := time.Now().Format("2006-01-02")
	return filepath.Join(home, fmt.Sprintf(".befunge-tui-%s.log", ts))
}

// InitLogging redirects the standard logger to a logfile and returns a
// close func to run on shutdown. The terminal spends its whole run in
// alt-screen/raw mode, so diagnostics must never reach stdout/stderr; unlike
// the desktop app this was adapted from (which tees to stderr for visibility
// in a normal console), a TUI has no stderr to spare.
func InitLogging() func() {
	path := logFilePath()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { f.Close() }
}
