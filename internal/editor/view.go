package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/puccinia/befunge-tui/internal/config"
	"github.com/puccinia/befunge-tui/internal/ui"
)

// View renders one frame: the grid pane, the stack/output run area docked
// per config, a tooltip/command-line/input-line footer, and the status
// bar (spec §4's render loop; layout per D.1 "dialog-less" ui package).
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	runWidth := 0
	if m.runAreaPos != config.RunAreaHidden {
		runWidth = m.width / 3
		if runWidth < 20 {
			runWidth = 20
		}
	}

	gridView := ui.RenderGrid(m.grid, ui.GridRenderOpts{
		Now:          time.Now(),
		Focused:      m.mode != ModeCommand,
		Running:      m.mode == ModeRunning,
		HeatOn:       m.heatOn,
		ViewWidth:    m.width - runWidth - 2,
		ViewHeight:   m.height - 3,
		VisualActive: m.mode == ModeVisual,
		VisualA:      m.visual.anchor,
		VisualB:      m.visual.head,
	})

	body := gridView
	if m.runAreaPos != config.RunAreaHidden {
		stack := ui.RenderStack(m.stack, runWidth)
		output := ui.RenderOutput(m.output, runWidth)
		runArea := lipgloss.JoinVertical(lipgloss.Left, stack, output)

		if m.runAreaPos == config.RunAreaLeft {
			body = lipgloss.JoinHorizontal(lipgloss.Top, runArea, gridView)
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, gridView, runArea)
		}
	}

	var footer string
	switch m.mode {
	case ModeCommand:
		footer = ui.RenderCommandLine(m.cmdBuf)
	case ModeInput:
		footer = ui.RenderInputLine(m.inputKind.String(), m.inputBuf)
	default:
		footer = ui.RenderTooltip(m.tooltip, m.width)
	}

	cur := m.grid.Cursor()
	status := ui.RenderStatus(m.mode.String(), cur.X, cur.Y, m.width)

	sections := []string{body}
	if footer != "" {
		sections = append(sections, footer)
	}
	sections = append(sections, status)

	return strings.Join(sections, "\n")
}
