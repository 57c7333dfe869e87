package editor

import (
	"github.com/puccinia/befunge-tui/internal/config"
	"github.com/puccinia/befunge-tui/internal/ferr"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/registry"
)

// Model implements registry.Context so command/property handlers can read
// and mutate editor state without the registry package importing editor
// (spec's leaves-first dependency order, DESIGN.md).
var _ registry.Context = (*Model)(nil)

func (m *Model) Grid() *grid.Grid { return m.grid }

func (m *Model) IsRunning() bool { return m.mode == ModeRunning }

func (m *Model) EnterRunning() { m.mode = ModeRunning }

func (m *Model) ClearRunState() {
	m.output = ""
	m.outputBuffer = ""
}

func (m *Model) ShowRunArea() {
	if m.runAreaPos == config.RunAreaHidden {
		m.runAreaPos = config.RunAreaLeft
	}
}

func (m *Model) SetTooltip(t registry.Tooltip) { m.tooltip = t }

func (m *Model) SetHeatEnabled(v bool) { m.heatOn = v }

func (m *Model) SetLiveOutput(v bool) error {
	if m.mode == ModeRunning {
		return registry.ErrLiveOutputWhileRunning
	}
	m.liveOutput = v
	return nil
}

func (m *Model) VisualRegion() (grid.Point, grid.Point, bool) {
	if m.mode != ModeVisual {
		return grid.Point{}, grid.Point{}, false
	}
	return m.visual.anchor, m.visual.head, true
}

// ReverseRegion reverses the active Visual selection horizontally (axis
// "x", the default) or vertically (axis "y"); spec §4.5's `rev` command
// table: "In Visual mode only".
func (m *Model) ReverseRegion(axis string) error {
	if m.mode != ModeVisual {
		return ferr.Command(&ferr.CommandError{Kind: ferr.CommandWrongMode, Name: "rev"})
	}

	a, b := m.visual.anchor, m.visual.head
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)

	if axis == "y" {
		for x := minX; x <= maxX; x++ {
			for lo, hi := minY, maxY; lo < hi; lo, hi = lo+1, hi-1 {
				cLo, cHi := m.grid.Get(x, lo), m.grid.Get(x, hi)
				m.grid.Set(x, lo, cHi.Value)
				m.grid.Set(x, hi, cLo.Value)
			}
		}
		return nil
	}

	for y := minY; y <= maxY; y++ {
		for lo, hi := minX, maxX; lo < hi; lo, hi = lo+1, hi-1 {
			cLo, cHi := m.grid.Get(lo, y), m.grid.Get(hi, y)
			m.grid.Set(lo, y, cHi.Value)
			m.grid.Set(hi, y, cLo.Value)
		}
	}
	return nil
}

func (m *Model) ClearHeat() { m.grid.ClearHeat() }

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
