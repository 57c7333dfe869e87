package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/ferr"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
	"github.com/puccinia/befunge-tui/internal/registry"
)

func isKey(msg tea.KeyMsg, k tea.KeyType) bool {
	return msg.Type == k
}

func isRune(msg tea.KeyMsg, r rune) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == r
}

func isCtrlRune(msg tea.KeyMsg, r rune) bool {
	switch r {
	case 'h':
		return msg.Type == tea.KeyCtrlH
	case 'j':
		return msg.Type == tea.KeyCtrlJ
	case 'k':
		return msg.Type == tea.KeyCtrlK
	case 'l':
		return msg.Type == tea.KeyCtrlL
	case 'r':
		return msg.Type == tea.KeyCtrlR
	case 'w':
		return msg.Type == tea.KeyCtrlW
	case 'c':
		return msg.Type == tea.KeyCtrlC
	default:
		return false
	}
}

// handleKey is the top-level dispatcher (spec §4.3), grounded on
// original_source/src/frontend/input.rs's handle_events: a global pan
// shortcut (suppressed in Command mode), a global `:` to enter Command
// from Normal/Running, then per-mode dispatch.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeCommand {
		if dir, ok := panDirection(msg); ok {
			m.grid.Pan(dir)
			return m, nil
		}
	}

	if (m.mode == ModeNormal || m.mode == ModeRunning) && isRune(msg, ':') {
		prev := m.mode
		m.previousMode = &prev
		m.mode = ModeCommand
		m.cmdBuf = ""
		return m, nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKey(msg)
	case ModeCommand:
		return m.handleCommandKey(msg)
	case ModeVisual:
		return m.handleVisualKey(msg)
	case ModeInsert:
		return m.handleInsertKey(msg)
	case ModeRunning:
		return m.handleRunningKey(msg)
	case ModeInput:
		return m.handleInputKey(msg)
	case ModeHistory:
		return m.handleHistoryKey(msg)
	}

	return m, nil
}

func panDirection(msg tea.KeyMsg) (cellmodel.Direction, bool) {
	switch {
	case isCtrlRune(msg, 'h'):
		return cellmodel.Left, true
	case isCtrlRune(msg, 'j'):
		return cellmodel.Down, true
	case isCtrlRune(msg, 'k'):
		return cellmodel.Up, true
	case isCtrlRune(msg, 'l'):
		return cellmodel.Right, true
	default:
		return 0, false
	}
}

// ---------------------------------------------------------------------------
// Normal mode
// ---------------------------------------------------------------------------

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isRune(msg, 'i'):
		m.mode = ModeInsert

	case isRune(msg, 'f'):
		m.runAreaPos = m.runAreaPos.Next()

	case isRune(msg, 'b'):
		c := m.grid.Cursor()
		m.grid.ToggleBreakpoint(c.X, c.Y)

	case isRune(msg, 'v'):
		c := m.grid.Cursor()
		m.mode = ModeVisual
		m.visual = visualRegion{anchor: c, head: c}

	case isRune(msg, 'h'):
		m.grid.MoveCursor(cellmodel.Left, true, false)
	case isRune(msg, 'j'):
		m.grid.MoveCursor(cellmodel.Down, true, false)
	case isRune(msg, 'k'):
		m.grid.MoveCursor(cellmodel.Up, true, false)
	case isRune(msg, 'l'):
		m.grid.MoveCursor(cellmodel.Right, true, false)

	case isRune(msg, 'H'):
		m.grid.PrependColumn()
	case isRune(msg, 'J'):
		m.grid.AppendRow(nil)
	case isRune(msg, 'K'):
		m.grid.PrependRow(nil)
	case isRune(msg, 'L'):
		m.grid.AppendColumn()

	case isRune(msg, 'p'):
		return m.pasteClipboard()

	case isRune(msg, 'u'):
		m.pushHistory()
		m.mode = ModeHistory
		m.historyIdx = 0
		m.loadHistorySnapshot(0)

	case isCtrlRune(msg, 'r'):
		return m.runCommandDirect()

	case isKey(msg, tea.KeyEsc):
		m.tooltip = registry.Tooltip{}
	}

	return m, nil
}

// runCommandDirect executes the `run` command the way Ctrl-r does in the
// original (frontend/input.rs: `handle_command("run", ...)`), bypassing
// Command mode entirely.
func (m Model) runCommandDirect() (tea.Model, tea.Cmd) {
	exit := m.reg.Dispatch("run", &m, m.toInterp)
	if exit {
		m.quitting = true
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Insert mode
// ---------------------------------------------------------------------------

func (m Model) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, tea.KeyRunes) && len(msg.Runes) == 1:
		c := m.grid.Cursor()
		m.grid.Set(c.X, c.Y, cellmodel.Classify(msg.Runes[0]))
		m.grid.MoveCursor(m.grid.CursorDir(), true, true)

	case isKey(msg, tea.KeySpace):
		c := m.grid.Cursor()
		m.grid.Set(c.X, c.Y, cellmodel.Classify(' '))
		m.grid.MoveCursor(m.grid.CursorDir(), true, true)

	case isKey(msg, tea.KeyBackspace):
		wrapped := m.grid.MoveCursor(m.grid.CursorDir().Opposite(), false, false)
		if !wrapped {
			c := m.grid.Cursor()
			m.grid.Set(c.X, c.Y, cellmodel.Classify(' '))
		}

	case isKey(msg, tea.KeyDelete):
		c := m.grid.Cursor()
		m.grid.Set(c.X, c.Y, cellmodel.Classify(' '))

	case isKey(msg, tea.KeyEsc):
		m.mode = ModeNormal
		m.pushHistory()
		return m, sendToInterp(m.toInterp, proto.Sync{Text: m.grid.Dump()})
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Visual mode
// ---------------------------------------------------------------------------

func (m Model) handleVisualKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isRune(msg, 'h'):
		m.grid.MoveCursor(cellmodel.Left, true, false)
		m.visual.head = m.grid.Cursor()
	case isRune(msg, 'j'):
		m.grid.MoveCursor(cellmodel.Down, true, false)
		m.visual.head = m.grid.Cursor()
	case isRune(msg, 'k'):
		m.grid.MoveCursor(cellmodel.Up, true, false)
		m.visual.head = m.grid.Cursor()
	case isRune(msg, 'l'):
		m.grid.MoveCursor(cellmodel.Right, true, false)
		m.visual.head = m.grid.Cursor()

	case isRune(msg, 'y'):
		_ = m.copyRegionToClipboard()
		m.mode = ModeNormal

	case isRune(msg, 'd'):
		m.pushHistory()
		_ = m.copyRegionToClipboard()
		m.clearRegion()
		m.mode = ModeNormal
		m.pushHistory()
		return m, sendToInterp(m.toInterp, proto.Sync{Text: m.grid.Dump()})

	case isKey(msg, tea.KeyEsc):
		m.mode = ModeNormal
	}

	return m, nil
}

func (m *Model) clearRegion() {
	a, b := m.visual.anchor, m.visual.head
	m.grid.IterateRegion(a, b, func(x, y int, c *cellmodel.Cell) {
		c.Value = cellmodel.Empty
	})
}

// ---------------------------------------------------------------------------
// Running mode
// ---------------------------------------------------------------------------

func (m Model) handleRunningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, tea.KeySpace):
		return m, sendToInterp(m.toInterp, proto.RunningCommand{Op: proto.RunStep{}})

	case isKey(msg, tea.KeyEnter):
		return m, sendToInterp(m.toInterp, proto.RunningCommand{Op: proto.RunSkipToBreakpoint{}})

	case isRune(msg, 'b'):
		return m, sendToInterp(m.toInterp, proto.RunningCommand{Op: proto.RunToggleBreakpoint{Pos: m.grid.Cursor()}})

	case isKey(msg, tea.KeyEsc) || isCtrlRune(msg, 'c'):
		m.mode = ModeNormal
		m.grid.ClearHeat()
		return m, sendToInterp(m.toInterp, proto.RunningCommand{Op: proto.RunStop{}})
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Command mode
// ---------------------------------------------------------------------------

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, tea.KeyUp):
		if trimSpace(m.cmdBuf) != "" && m.cmdHistoryIdx < 0 {
			m.pushCmdHistory(m.cmdBuf)
		}
		if len(m.cmdHistory) > 0 {
			next := 0
			if m.cmdHistoryIdx >= 0 {
				next = m.cmdHistoryIdx + 1
				if next > len(m.cmdHistory)-1 {
					next = len(m.cmdHistory) - 1
				}
			}
			m.cmdHistoryIdx = next
			m.cmdBuf = m.cmdHistory[next]
		}

	case isKey(msg, tea.KeyDown):
		if m.cmdHistoryIdx == 0 {
			m.cmdHistoryIdx = -1
			m.cmdBuf = ""
			return m, nil
		}
		if m.cmdHistoryIdx > 0 {
			m.cmdHistoryIdx--
			m.cmdBuf = m.cmdHistory[m.cmdHistoryIdx]
		}

	case isKey(msg, tea.KeyRunes) && len(msg.Runes) == 1:
		m.cmdBuf += string(msg.Runes[0])
		m.cmdHistoryIdx = -1

	case isKey(msg, tea.KeySpace):
		m.cmdBuf += " "
		m.cmdHistoryIdx = -1

	case isKey(msg, tea.KeyBackspace):
		if m.cmdBuf != "" {
			r := []rune(m.cmdBuf)
			m.cmdBuf = string(r[:len(r)-1])
		}

	case isKey(msg, tea.KeyEnter):
		cmd := m.cmdBuf
		m.exitCommandMode()
		m.tooltip = registry.Tooltip{}
		if m.cmdHistoryIdx < 0 && trimSpace(cmd) != "" {
			m.pushCmdHistory(cmd)
		}
		m.cmdHistoryIdx = -1
		exit := m.reg.Dispatch(cmd, &m, m.toInterp)
		if exit {
			m.quitting = true
			return m, tea.Quit
		}

	case isKey(msg, tea.KeyEsc):
		m.exitCommandMode()
		m.tooltip = registry.Tooltip{}
	}

	return m, nil
}

func (m *Model) exitCommandMode() {
	if m.previousMode != nil {
		m.mode = *m.previousMode
		m.previousMode = nil
	} else {
		m.mode = ModeNormal
	}
}

func (m *Model) pushCmdHistory(cmd string) {
	m.cmdHistory = append([]string{cmd}, m.cmdHistory...)
	if len(m.cmdHistory) > m.cmdHistorySize {
		m.cmdHistory = m.cmdHistory[:m.cmdHistorySize]
	}
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

// ---------------------------------------------------------------------------
// Input mode (spec §4.2.4/§4.3; original_source never wired a handler for
// this mode, so it's built from the mode table alone)
// ---------------------------------------------------------------------------

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, tea.KeyRunes) && len(msg.Runes) == 1:
		r := msg.Runes[0]
		if m.inputKind == proto.InputAscii {
			m.inputBuf = string(r)
			return m, nil
		}
		if r == '-' || r == '+' || (r >= '0' && r <= '9') {
			m.inputBuf += string(r)
		}

	case isCtrlRune(msg, 'w'):
		m.inputBuf = dropLastWord(m.inputBuf)

	case isKey(msg, tea.KeyBackspace):
		if m.inputBuf != "" {
			r := []rune(m.inputBuf)
			m.inputBuf = string(r[:len(r)-1])
		}

	case isKey(msg, tea.KeyEnter):
		v, err := parseInputValue(m.inputKind, m.inputBuf)
		if err != nil {
			m.tooltip = registry.ErrorTooltip(err.Error())
			return m, nil
		}
		m.mode = ModeRunning
		return m, sendToInterp(m.toInterp, proto.InputValue{Value: v})

	case isKey(msg, tea.KeyEsc):
		return m, sendToInterp(m.toInterp, proto.RunningCommand{Op: proto.RunStop{}})
	}

	return m, nil
}

func dropLastWord(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	for end > 0 && s[end-1] != ' ' {
		end--
	}
	return s[:end]
}

func parseInputValue(kind proto.InputKind, buf string) (int32, error) {
	if kind == proto.InputAscii {
		r := []rune(buf)
		if len(r) != 1 {
			return 0, ferr.Input(&ferr.InputError{Kind: ferr.InputBadAscii, Buf: buf})
		}
		return int32(r[0]), nil
	}

	neg := false
	digits := buf
	if digits != "" && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if digits == "" {
		return 0, ferr.Input(&ferr.InputError{Kind: ferr.InputBadInteger, Buf: buf})
	}
	var v int32
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, ferr.Input(&ferr.InputError{Kind: ferr.InputBadInteger, Buf: buf})
		}
		v = v*10 + int32(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// History mode (built from the mode table; no original_source handler)
// ---------------------------------------------------------------------------

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isRune(msg, 'u'):
		next := m.historyIdx + 1
		if max := m.history.len(); next > max {
			next = max
		}
		m.historyIdx = next
		m.loadHistorySnapshot(next)

	case isCtrlRune(msg, 'r'):
		next := m.historyIdx - 1
		if next < 0 {
			next = 0
		}
		m.historyIdx = next
		m.loadHistorySnapshot(next)

	case isKey(msg, tea.KeyEnter):
		m.history.truncateBefore(m.historyIdx)
		m.mode = ModeNormal

	case isKey(msg, tea.KeyEsc):
		m.loadHistorySnapshot(0)
		m.mode = ModeNormal
	}

	return m, nil
}

func (m *Model) loadHistorySnapshot(index int) {
	dump, ok := m.history.at(index)
	if !ok {
		return
	}
	cur := m.grid.Cursor()
	m.grid = grid.FromText(dump)
	if m.grid.InBounds(cur.X, cur.Y) {
		m.grid.SetCursor(cur.X, cur.Y)
	}
}

func sendToInterp(ch chan<- proto.ToInterpreter, msg proto.ToInterpreter) tea.Cmd {
	return func() tea.Msg {
		ch <- msg
		return nil
	}
}
