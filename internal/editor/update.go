package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
	"github.com/puccinia/befunge-tui/internal/registry"
)

// Update is the Bubble Tea update loop (spec §4's frame/input-dispatch
// component), grounded on the teacher's internal/app.Model.Update and on
// original_source/src/frontend/input.rs's handle_events dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tickCmd(m.cfg.FrameRate)

	case fromInterpMsg:
		m = m.applyInterp(msg.msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, listenInterp(m.fromInterp)

	case interpClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyInterp folds one interpreter -> editor message into the model (spec
// §6.3), grounded on original_source/src/frontend/connect.rs's
// try_receive_message.
func (m Model) applyInterp(msg proto.ToEditor) Model {
	switch e := msg.(type) {
	case proto.Break:
		m.quitting = true

	case proto.Load:
		m.grid = grid.FromText(e.Text)
		m.grid.LoadBreakpoints(e.Breakpoints)
		m.stack = e.Stack
		m.pushHistory()

	case proto.MoveCursor:
		m.grid.SetCursor(e.Pos.X, e.Pos.Y)

	case proto.LogicError:
		m.tooltip = registry.ErrorTooltip(e.Message)

	case proto.SetCell:
		if m.grid.InBounds(e.Pos.X, e.Pos.Y) {
			m.grid.Set(e.Pos.X, e.Pos.Y, cellmodel.Classify(e.Val.Rune()))
		}

	case proto.LeaveRunningMode:
		m.mode = ModeNormal
		if !m.liveOutput {
			m.output = m.outputBuffer
			m.outputBuffer = ""
		}

	case proto.Output:
		if m.liveOutput {
			m.output += e.Chunk
		} else {
			m.outputBuffer += e.Chunk
		}

	case proto.Input:
		m.mode = ModeInput
		m.inputKind = e.Kind
		m.inputBuf = ""

	case proto.PopupToggle:
		m.tooltip = registry.InfoTooltip(e.Tooltip)
	}

	return m
}

// pushHistory snapshots the current (trimmed) grid dump, deduped against
// the head (spec §3.4). original_source/src/frontend/connect.rs calls this
// unconditionally on every Load, which is how a self-modifying run's Put
// instructions end up in the undo history too; this mirrors that.
func (m *Model) pushHistory() {
	trimmed := m.grid.Clone()
	trimmed.Trim()
	m.history.push(trimmed.Dump())
}
