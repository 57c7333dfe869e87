package editor

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/proto"
	"github.com/puccinia/befunge-tui/internal/registry"
)

// pasteClipboard implements spec §4.4: read the clipboard, grow the grid
// to fit if needed, paste character-by-character, snapshot before and
// Sync the interpreter after. Grounded on original_source/src/frontend/
// input.rs's Normal-mode `p` handler.
func (m Model) pasteClipboard() (tea.Model, tea.Cmd) {
	content, err := clipboard.ReadAll()
	if err != nil {
		m.tooltip = registry.ErrorTooltip(err.Error())
		return m, nil
	}

	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	cWidth := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cWidth {
			cWidth = n
		}
	}
	cHeight := len(lines)

	cur := m.grid.Cursor()
	m.pushHistory()

	for m.grid.Width() < cur.X+cWidth {
		m.grid.AppendColumn()
	}
	for m.grid.Height() < cur.Y+cHeight {
		m.grid.AppendRow(nil)
	}

	for j, line := range lines {
		for i, c := range []rune(line) {
			m.grid.Set(cur.X+i, cur.Y+j, cellmodel.Classify(c))
		}
	}

	return m, sendToInterp(m.toInterp, proto.Sync{Text: m.grid.Dump()})
}

// copyRegionToClipboard writes the active Visual selection to the system
// clipboard, one line per row, matching original_source's
// copy_area_to_clipboard.
func (m *Model) copyRegionToClipboard() error {
	a, b := m.visual.anchor, m.visual.head
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)

	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			sb.WriteRune(m.grid.Get(x, y).Value.ToChar())
		}
		sb.WriteByte('\n')
	}

	return clipboard.WriteAll(sb.String())
}
