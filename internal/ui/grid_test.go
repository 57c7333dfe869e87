package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/grid"
)

func TestRenderGridDrawsEveryCellWhenUnbounded(t *testing.T) {
	g := grid.FromText("abc\ndef")
	out := RenderGrid(g, GridRenderOpts{Now: time.Now()})

	for _, ch := range []string{"a", "b", "c", "d", "e", "f"} {
		if !strings.Contains(out, ch) {
			t.Fatalf("rendered grid missing %q:\n%s", ch, out)
		}
	}
}

func TestRenderGridHonorsViewWindow(t *testing.T) {
	g := grid.FromText("abcdef\nghijkl\nmnopqr")
	out := RenderGrid(g, GridRenderOpts{Now: time.Now(), ViewWidth: 2, ViewHeight: 1})

	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Fatalf("window should include the first two columns of the first row:\n%s", out)
	}
	if strings.Contains(out, "m") || strings.Contains(out, "n") {
		t.Fatalf("window should not include the third row:\n%s", out)
	}
}

func TestRenderGridWindowFollowsPan(t *testing.T) {
	g := grid.FromText("abcdef\nghijkl")
	g.Pan(cellmodel.Right)
	g.Pan(cellmodel.Right)
	out := RenderGrid(g, GridRenderOpts{Now: time.Now(), ViewWidth: 2, ViewHeight: 2})

	if strings.Contains(out, "a") {
		t.Fatalf("panned-right window should not show the first column:\n%s", out)
	}
}
