package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/puccinia/befunge-tui/internal/grid"
)

// GridRenderOpts controls how RenderGrid decorates the raw grid text.
type GridRenderOpts struct {
	Now     time.Time
	Focused bool
	Running bool
	HeatOn  bool

	// ViewWidth/ViewHeight bound the visible window of cells; 0 means
	// "whole grid". The window starts at the grid's pan offset (original
	// grid.rs: render skips pan.0 columns / pan.1 rows, then takes the
	// area's size).
	ViewWidth  int
	ViewHeight int

	// VisualActive/VisualA/VisualB describe an active Visual-mode
	// selection rectangle (inclusive, unordered corners).
	VisualActive bool
	VisualA      grid.Point
	VisualB      grid.Point
}

// RenderGrid draws one frame of the grid pane: every cell styled by
// breakpoint/heat/cursor/selection state, with a rounded border matching
// the editor's focus state (spec §4.1, D.1/D.2 of the expanded design).
func RenderGrid(g *grid.Grid, opts GridRenderOpts) string {
	cur := g.Cursor()
	blinkOn := g.CursorBlinkOn(opts.Now)
	pan := g.PanOffset()

	minX, maxX, minY, maxY := 0, -1, 0, -1
	if opts.VisualActive {
		minX, maxX = minMaxInt(opts.VisualA.X, opts.VisualB.X)
		minY, maxY = minMaxInt(opts.VisualA.Y, opts.VisualB.Y)
	}

	x0, y0 := pan.X, pan.Y
	x1, y1 := g.Width(), g.Height()
	if opts.ViewWidth > 0 && x0+opts.ViewWidth < x1 {
		x1 = x0 + opts.ViewWidth
	}
	if opts.ViewHeight > 0 && y0+opts.ViewHeight < y1 {
		y1 = y0 + opts.ViewHeight
	}

	var lines []string
	for y := y0; y < y1; y++ {
		var row strings.Builder
		for x := x0; x < x1; x++ {
			cell := g.Get(x, y)
			ch := string(cell.Value.ToChar())

			style := lipgloss.NewStyle()
			switch {
			case x == cur.X && y == cur.Y && blinkOn:
				style = CellCursor
			case opts.Running && x == cur.X && y == cur.Y:
				style = CellIP
			case cell.IsBreakpoint:
				style = CellBreakpoint
			case opts.VisualActive && x >= minX && x <= maxX && y >= minY && y <= maxY:
				style = CellVisualSelected
			case opts.HeatOn && cell.Heat > 0:
				style = HeatStyle(cell.Heat)
			}

			row.WriteString(style.Render(ch))
		}
		lines = append(lines, row.String())
	}

	body := strings.Join(lines, "\n")

	border := GridBorderBlurred
	if opts.Focused {
		border = GridBorderFocused
	}
	return border.Render(body)
}

func minMaxInt(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
