package grid

import (
	"sort"
	"strings"
	"time"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
)

// AppendColumn grows the grid by one column on the right.
func (g *Grid) AppendColumn() {
	g.width++
	for y := range g.rows {
		g.rows[y] = append(g.rows[y], cellmodel.NewCell(cellmodel.Empty))
	}
}

// PrependColumn grows the grid by one column on the left. The cursor's
// numeric (x, y) is left untouched, matching the original: a cursor at x=3
// keeps reporting x=3 afterward, now addressing the cell that used to sit
// one column to its left.
func (g *Grid) PrependColumn() {
	g.width++
	for y := range g.rows {
		g.rows[y] = append([]cellmodel.Cell{cellmodel.NewCell(cellmodel.Empty)}, g.rows[y]...)
	}
}

// AppendRow grows the grid by one row at the bottom. If text is non-nil its
// characters populate the new row (classified), widening every existing row
// to match if text is longer than the current width.
func (g *Grid) AppendRow(text *string) {
	g.growWidthFor(text)
	g.rows = append(g.rows, g.buildRow(text))
	g.height++
}

// PrependRow grows the grid by one row at the top. Like PrependColumn, the
// cursor's numeric (x, y) is left untouched.
func (g *Grid) PrependRow(text *string) {
	g.growWidthFor(text)
	g.rows = append([][]cellmodel.Cell{g.buildRow(text)}, g.rows...)
	g.height++
}

func (g *Grid) growWidthFor(text *string) {
	if text == nil {
		return
	}
	n := len([]rune(*text))
	if n <= g.width {
		return
	}
	for y := range g.rows {
		for len(g.rows[y]) < n {
			g.rows[y] = append(g.rows[y], cellmodel.NewCell(cellmodel.Empty))
		}
	}
	g.width = n
}

func (g *Grid) buildRow(text *string) []cellmodel.Cell {
	if text == nil {
		return emptyRow(g.width)
	}
	return rowFromText(*text, g.width)
}

// Trim removes all-Empty border rows and columns, returning
// [leadRows, trailRows, leadCols, trailCols] removed. Post-condition:
// width, height >= 1; an entirely-empty grid collapses to a single Empty
// cell (spec §4.1).
func (g *Grid) Trim() [4]int {
	// Mirrors the original's two independent min-over-all-rows passes
	// (grid.rs trim): column trim widths are computed before any row is
	// popped, so a fully-empty row (whose own empty-prefix equals the full
	// width) never lowers the column min below what a content row needs.
	leadCol := g.width
	trailCol := g.width
	for _, row := range g.rows {
		l, t := emptyBorders(row)
		if l < leadCol {
			leadCol = l
		}
		if t < trailCol {
			trailCol = t
		}
	}

	leadRow := 0
	for leadRow < g.height && rowAllEmpty(g.rows[leadRow]) {
		leadRow++
	}
	trailRow := 0
	for trailRow < g.height-leadRow && rowAllEmpty(g.rows[g.height-1-trailRow]) {
		trailRow++
	}

	g.rows = g.rows[leadRow : g.height-trailRow]
	if leadRow+trailRow > g.height {
		g.height = 0
	} else {
		g.height -= leadRow + trailRow
	}

	if leadCol+trailCol > g.width {
		leadCol, trailCol = 0, 0
	}
	for y := range g.rows {
		g.rows[y] = g.rows[y][leadCol : g.width-trailCol]
	}
	g.width -= leadCol + trailCol

	if g.width == 0 {
		g.width = 1
		g.height = 1
		g.rows = [][]cellmodel.Cell{{cellmodel.NewCell(cellmodel.Empty)}}
	}

	return [4]int{leadRow, trailRow, leadCol, trailCol}
}

func rowAllEmpty(row []cellmodel.Cell) bool {
	for _, c := range row {
		if c.Value.Kind != cellmodel.KindEmpty {
			return false
		}
	}
	return true
}

// emptyBorders counts the leading/trailing run of Empty cells in a row.
func emptyBorders(row []cellmodel.Cell) (lead, trail int) {
	for lead < len(row) && row[lead].Value.Kind == cellmodel.KindEmpty {
		lead++
	}
	for trail < len(row)-lead && row[len(row)-1-trail].Value.Kind == cellmodel.KindEmpty {
		trail++
	}
	return
}

// MoveCursor steps the cursor one unit in dir. If updateDir, cursorDir is
// also set. If resize, the grid grows in the direction of travel so the
// step never fails (prepending when moving negative, appending otherwise)
// and the return value is always false. Otherwise the cursor wraps
// toroidally and the return value reports whether it wrapped on either
// axis (spec §4.1).
func (g *Grid) MoveCursor(dir cellmodel.Direction, updateDir, resize bool) bool {
	if updateDir {
		g.cursorDir = dir
	}

	dx, dy := dir.Delta()
	newX, newY := g.cursor.X+dx, g.cursor.Y+dy

	if resize {
		if newX < 0 {
			g.PrependColumn()
			newX = 0
		} else if newX == g.width {
			g.AppendColumn()
		}
		if newY < 0 {
			g.PrependRow(nil)
			newY = 0
		} else if newY == g.height {
			g.AppendRow(nil)
		}
		g.cursor = Point{newX, newY}
		g.lastMove = time.Now()
		return false
	}

	wrappedX, newX := wrap(newX, g.width)
	wrappedY, newY := wrap(newY, g.height)
	g.cursor = Point{newX, newY}
	g.lastMove = time.Now()
	return wrappedX || wrappedY
}

func wrap(v, max int) (bool, int) {
	if v < 0 {
		return true, max - 1
	}
	if v >= max {
		return true, 0
	}
	return false, v
}

// Pan shifts the viewport by one cell in dir, saturating at the grid edges.
func (g *Grid) Pan(dir cellmodel.Direction) {
	switch dir {
	case cellmodel.Up:
		if g.pan.Y > 0 {
			g.pan.Y--
		}
	case cellmodel.Down:
		if g.pan.Y < g.height-1 {
			g.pan.Y++
		}
	case cellmodel.Left:
		if g.pan.X > 0 {
			g.pan.X--
		}
	case cellmodel.Right:
		if g.pan.X < g.width-1 {
			g.pan.X++
		}
	}
}

// IterateRegion visits every cell in the inclusive rectangle bounded by the
// two (unordered) corners exactly once, row-major.
func (g *Grid) IterateRegion(a, b Point, f func(x, y int, c *cellmodel.Cell)) {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f(x, y, &g.rows[y][x])
		}
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// SetHeat sets the heat byte of the cell at (x, y).
func (g *Grid) SetHeat(x, y int, v uint8) {
	g.rows[y][x].Heat = v
}

// ReduceHeat decays every cell's heat by delta, saturating at 0.
func (g *Grid) ReduceHeat(delta uint8) {
	for y := range g.rows {
		for x := range g.rows[y] {
			h := g.rows[y][x].Heat
			if h < delta {
				h = 0
			} else {
				h -= delta
			}
			g.rows[y][x].Heat = h
		}
	}
}

// ClearHeat zeroes every cell's heat.
func (g *Grid) ClearHeat() {
	for y := range g.rows {
		for x := range g.rows[y] {
			g.rows[y][x].Heat = 0
		}
	}
}

// ToggleBreakpoint flips the breakpoint flag at (x, y).
func (g *Grid) ToggleBreakpoint(x, y int) {
	g.rows[y][x].IsBreakpoint = !g.rows[y][x].IsBreakpoint
}

// IsBreakpoint reports the flag at (x, y) without a separate derived set
// (spec §3.3: breakpoints are derived from the grid, never stored twice).
func (g *Grid) IsBreakpoint(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.rows[y][x].IsBreakpoint
}

// GetBreakpoints returns every breakpointed cell in deterministic row-major
// order.
func (g *Grid) GetBreakpoints() []Point {
	var pts []Point
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x].IsBreakpoint {
				pts = append(pts, Point{x, y})
			}
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// LoadBreakpoints clears existing breakpoints and sets exactly the given
// set, matching the original's `load_breakpoints`.
func (g *Grid) LoadBreakpoints(pts []Point) {
	g.ClearBreakpoints()
	for _, p := range pts {
		if g.InBounds(p.X, p.Y) {
			g.rows[p.Y][p.X].IsBreakpoint = true
		}
	}
}

// ClearBreakpoints clears every breakpoint flag.
func (g *Grid) ClearBreakpoints() {
	for y := range g.rows {
		for x := range g.rows[y] {
			g.rows[y][x].IsBreakpoint = false
		}
	}
}

// Dump serializes the grid's raw characters, rows separated by '\n', with
// one trailing '\n' (spec §4.1, §6.1).
func (g *Grid) Dump() string {
	var b strings.Builder
	for _, row := range g.rows {
		for _, c := range row {
			b.WriteRune(c.Value.ToChar())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Clone returns a deep copy, used when the editor and interpreter tasks
// each need their own private grid (spec §5: "No shared mutable memory").
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:     g.width,
		height:    g.height,
		cursor:    g.cursor,
		cursorDir: g.cursorDir,
		pan:       g.pan,
		lastMove:  g.lastMove,
		Border:    g.Border,
		rows:      make([][]cellmodel.Cell, g.height),
	}
	for y, row := range g.rows {
		out.rows[y] = append([]cellmodel.Cell(nil), row...)
	}
	return out
}
