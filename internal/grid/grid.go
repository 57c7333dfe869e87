// Package grid implements the resizable 2-D cell container the editor and
// interpreter tasks each own a private copy of (spec §3.2, §4.1). It is
// grounded on the original `Grid` (original_source/src/grid.rs), minus the
// render-widget half, which internal/ui owns instead.
package grid

import (
	"strings"
	"time"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
)

// Point is an (x, y) grid coordinate.
type Point struct {
	X, Y int
}

// BorderSet names the runes a renderer draws a grid's frame with. Purely
// cosmetic; the engine never reads it (spec §3.2: "visual characters for
// lids/sides/corners (render-time only)").
type BorderSet struct {
	Lid     rune
	Side    rune
	Corners [4]rune // top-left, top-right, bottom-left, bottom-right
}

// DefaultBorder matches the rounded-box look the teacher's lipgloss styles
// use elsewhere in the UI (internal/ui.GridBorderFocused).
var DefaultBorder = BorderSet{
	Lid:     '─',
	Side:    '│',
	Corners: [4]rune{'╭', '╮', '╰', '╯'},
}

// Grid is a rectangular, mutable container of cells plus the cursor/pan
// state both the editor (insertion point) and interpreter (instruction
// pointer) drive through it.
type Grid struct {
	width, height int
	rows          [][]cellmodel.Cell

	cursor    Point
	cursorDir cellmodel.Direction
	lastMove  time.Time

	pan Point

	Border BorderSet
}

// New builds an empty w*h grid of Empty cells.
func New(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g := &Grid{
		width:     w,
		height:    h,
		rows:      make([][]cellmodel.Cell, h),
		cursorDir: cellmodel.Right,
		lastMove:  time.Now(),
		Border:    DefaultBorder,
	}
	for y := range g.rows {
		g.rows[y] = emptyRow(w)
	}
	return g
}

func emptyRow(w int) []cellmodel.Cell {
	row := make([]cellmodel.Cell, w)
	for x := range row {
		row[x] = cellmodel.NewCell(cellmodel.Empty)
	}
	return row
}

// FromText splits s on line terminators into rows, padding every row with
// Empty cells to the width of the longest line. An empty input yields a
// 1x1 grid containing a single Empty cell (spec §4.1).
func FromText(s string) *Grid {
	if s == "" {
		return New(1, 1)
	}

	lines := splitLines(s)
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		width = 1
	}

	g := &Grid{
		cursorDir: cellmodel.Right,
		lastMove:  time.Now(),
		Border:    DefaultBorder,
	}
	g.width = width
	g.height = len(lines)
	g.rows = make([][]cellmodel.Cell, g.height)
	for y, line := range lines {
		g.rows[y] = rowFromText(line, width)
	}
	return g
}

func rowFromText(line string, width int) []cellmodel.Cell {
	row := make([]cellmodel.Cell, width)
	i := 0
	for _, r := range line {
		if i >= width {
			break
		}
		row[i] = cellmodel.NewCell(cellmodel.Classify(r))
		i++
	}
	for ; i < width; i++ {
		row[i] = cellmodel.NewCell(cellmodel.Empty)
	}
	return row
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Width and Height report the current rectangle size.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y). Callers must bounds-check first; an
// out-of-bounds access is a programmer bug, not a recoverable condition
// (spec §4.1: "require in-bounds; panic-class bug if violated").
func (g *Grid) Get(x, y int) cellmodel.Cell {
	return g.rows[y][x]
}

// Set replaces the cell's value at (x, y), preserving heat/breakpoint.
func (g *Grid) Set(x, y int, v cellmodel.CellValue) {
	g.rows[y][x].Value = v
}

// Cursor, CursorDir, PanOffset report current state.
func (g *Grid) Cursor() Point                      { return g.cursor }
func (g *Grid) CursorDir() cellmodel.Direction     { return g.cursorDir }
func (g *Grid) PanOffset() Point                   { return g.pan }
func (g *Grid) SetCursorDir(d cellmodel.Direction) { g.cursorDir = d }

// SetCursor places the cursor, clamping nothing: callers must ensure the
// target is in-bounds. Returns false if it was not (cursor left unchanged).
func (g *Grid) SetCursor(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cursor = Point{x, y}
	g.lastMove = time.Now()
	return true
}

// CursorBlinkOn implements the original's blink rule (original_source's
// grid.rs render): solid for the first second after a move, then flashing
// at 1Hz thereafter.
func (g *Grid) CursorBlinkOn(now time.Time) bool {
	elapsed := now.Sub(g.lastMove)
	if elapsed < time.Second {
		return true
	}
	return now.Unix()%2 == 0
}
