package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// DefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want 'dark'", cfg.Theme)
	}
	if cfg.DefaultGridWidth != 10 || cfg.DefaultGridHeight != 10 {
		t.Errorf("grid size = %dx%d, want 10x10", cfg.DefaultGridWidth, cfg.DefaultGridHeight)
	}
	if cfg.RunAreaPosition != RunAreaLeft {
		t.Errorf("RunAreaPosition = %q, want %q", cfg.RunAreaPosition, RunAreaLeft)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30", cfg.FrameRate)
	}
	if cfg.HistorySize != 100 || cfg.CommandHistorySize != 100 {
		t.Errorf("history sizes = %d/%d, want 100/100", cfg.HistorySize, cfg.CommandHistorySize)
	}
}

// ---------------------------------------------------------------------------
// YAML round-trip
// ---------------------------------------------------------------------------

func TestConfig_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-config.yaml")

	original := DefaultConfig()
	original.Theme = "dracula"
	original.DefaultGridWidth = 20
	original.RunAreaPosition = RunAreaRight

	writeDefaults(path, original)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.Theme != "dracula" {
		t.Errorf("Loaded Theme = %q, want 'dracula'", loaded.Theme)
	}
	if loaded.DefaultGridWidth != 20 {
		t.Errorf("Loaded DefaultGridWidth = %d, want 20", loaded.DefaultGridWidth)
	}
	if loaded.RunAreaPosition != RunAreaRight {
		t.Errorf("Loaded RunAreaPosition = %q, want %q", loaded.RunAreaPosition, RunAreaRight)
	}
}

// ---------------------------------------------------------------------------
// Load: first run, clamping, validation
// ---------------------------------------------------------------------------

func TestLoad_WritesDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := Load()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want 'dark'", cfg.Theme)
	}

	if _, err := os.Stat(filepath.Join(dir, ".befunge-tui.yaml")); err != nil {
		t.Errorf("expected config file to be written, stat failed: %v", err)
	}
}

func TestLoad_ClampsOutOfRangeFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, ".befunge-tui.yaml")

	bad := DefaultConfig()
	bad.DefaultGridWidth = -5
	bad.DefaultGridHeight = 0
	bad.FrameRate = 500
	bad.HistorySize = -1
	bad.CommandHistorySize = 0
	data, err := yaml.Marshal(bad)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load()
	if cfg.DefaultGridWidth != 1 {
		t.Errorf("DefaultGridWidth = %d, want 1", cfg.DefaultGridWidth)
	}
	if cfg.DefaultGridHeight != 1 {
		t.Errorf("DefaultGridHeight = %d, want 1", cfg.DefaultGridHeight)
	}
	if cfg.FrameRate != 120 {
		t.Errorf("FrameRate = %d, want 120", cfg.FrameRate)
	}
	if cfg.HistorySize != 1 {
		t.Errorf("HistorySize = %d, want 1", cfg.HistorySize)
	}
	if cfg.CommandHistorySize != 1 {
		t.Errorf("CommandHistorySize = %d, want 1", cfg.CommandHistorySize)
	}
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, ".befunge-tui.yaml")

	bad := DefaultConfig()
	bad.Theme = "monokai"
	data, _ := yaml.Marshal(bad)
	os.WriteFile(path, data, 0644)

	cfg := Load()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want fallback 'dark'", cfg.Theme)
	}
}

func TestLoad_RejectsUnknownRunAreaPosition(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, ".befunge-tui.yaml")

	bad := DefaultConfig()
	bad.RunAreaPosition = RunAreaPosition("top")
	data, _ := yaml.Marshal(bad)
	os.WriteFile(path, data, 0644)

	cfg := Load()
	if cfg.RunAreaPosition != RunAreaLeft {
		t.Errorf("RunAreaPosition = %q, want fallback %q", cfg.RunAreaPosition, RunAreaLeft)
	}
}

func TestLoad_AcceptsValidRunAreaPositions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, ".befunge-tui.yaml")

	for _, pos := range []RunAreaPosition{RunAreaLeft, RunAreaRight, RunAreaHidden} {
		cfg := DefaultConfig()
		cfg.RunAreaPosition = pos
		data, _ := yaml.Marshal(cfg)
		os.WriteFile(path, data, 0644)

		loaded := Load()
		if loaded.RunAreaPosition != pos {
			t.Errorf("RunAreaPosition = %q, want %q", loaded.RunAreaPosition, pos)
		}
	}
}

func TestConfig_Validation_Theme(t *testing.T) {
	validThemes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}

	valid := []string{"dark", "light", "dracula", "nord", "solarized"}
	for _, theme := range valid {
		if !validThemes[theme] {
			t.Errorf("Theme %q should be valid", theme)
		}
	}

	invalid := []string{"", "monokai", "gruvbox", "DARK", "Light"}
	for _, theme := range invalid {
		if validThemes[theme] {
			t.Errorf("Theme %q should be invalid", theme)
		}
	}
}
