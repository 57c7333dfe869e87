package ui

import (
	"strings"
	"testing"

	"github.com/puccinia/befunge-tui/internal/registry"
)

func TestRenderStatusShowsModeAndCursor(t *testing.T) {
	out := RenderStatus("NORMAL", 3, 5, 40)
	if !strings.Contains(out, "NORMAL") {
		t.Fatalf("expected mode label in status line, got %q", out)
	}
	if !strings.Contains(out, "(3,5)") {
		t.Fatalf("expected cursor position in status line, got %q", out)
	}
}

func TestRenderTooltipNoneIsEmpty(t *testing.T) {
	if out := RenderTooltip(registry.Tooltip{}, 40); out != "" {
		t.Fatalf("expected empty string for TooltipNone, got %q", out)
	}
}

func TestRenderTooltipErrorWrapsText(t *testing.T) {
	out := RenderTooltip(registry.ErrorTooltip("bad argument"), 40)
	if !strings.Contains(out, "bad argument") {
		t.Fatalf("expected error text in tooltip, got %q", out)
	}
}

func TestRenderCommandLineShowsPrompt(t *testing.T) {
	out := RenderCommandLine("set heat true")
	if !strings.Contains(out, ":set heat true") {
		t.Fatalf("expected `:` prompt prefix, got %q", out)
	}
}

func TestRenderInputLineShowsKindAndBuffer(t *testing.T) {
	out := RenderInputLine("integer", "-42")
	if !strings.Contains(out, "integer> -42") {
		t.Fatalf("expected kind label and buffer, got %q", out)
	}
}
