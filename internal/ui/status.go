package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/puccinia/befunge-tui/internal/registry"
)

// RenderStatus builds the footer line: a mode badge on the left, a cursor
// position indicator on the right, joined with a computed gap so the
// right section hugs the terminal edge (teacher's footer idiom: sections
// joined with a measured filler rather than fixed columns).
func RenderStatus(modeLabel string, cursorX, cursorY, width int) string {
	left := StatusModeStyle.Render(modeLabel)
	right := StatusDimStyle.Render("(" + strconv.Itoa(cursorX) + "," + strconv.Itoa(cursorY) + ")")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

// RenderTooltip renders the editor's single-slot popup, word-wrapped to
// the given width less two columns; the editor passes the full terminal
// width (design D.5).
func RenderTooltip(t registry.Tooltip, width int) string {
	if t.Kind == registry.TooltipNone {
		return ""
	}
	wrapped := wordwrap.String(t.Text, maxInt(width-2, 1))
	if t.Kind == registry.TooltipError {
		return TooltipErrorStyle.Render(wrapped)
	}
	return TooltipInfoStyle.Render(wrapped)
}

// RenderCommandLine renders the `:` prompt while in Command mode.
func RenderCommandLine(buf string) string {
	return CommandLineStyle.Render(":" + buf)
}

// RenderInputLine renders the interactive-input prompt (spec §4.2.4).
func RenderInputLine(kindLabel, buf string) string {
	return CommandLineStyle.Render(kindLabel + "> " + buf)
}
