// Package ui renders the editor's grid pane, run area, and status chrome
// with lipgloss, themed from internal/ui/themes.go.
package ui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Colour palette (mirrors the active Theme; rebuilt by SetTheme)
// ---------------------------------------------------------------------------

var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // violet-600
	ColorSecondary = lipgloss.Color("#06B6D4") // cyan-500
	ColorSuccess   = lipgloss.Color("#22C55E") // green-500
	ColorWarning   = lipgloss.Color("#F59E0B") // amber-500
	ColorDanger    = lipgloss.Color("#EF4444") // red-500
	ColorMuted     = lipgloss.Color("#6B7280") // gray-500
	ColorBG        = lipgloss.Color("#1E1E2E") // dark background
	ColorSurface   = lipgloss.Color("#313244") // slightly lighter
	ColorText      = lipgloss.Color("#CDD6F4") // light text
	ColorTextDim   = lipgloss.Color("#6C7086") // dim text
	ColorBorder    = lipgloss.Color("#45475A") // subtle border
	ColorHighlight = lipgloss.Color("#F5C2E7") // pink highlight
)

// ---------------------------------------------------------------------------
// Grid pane styles
// ---------------------------------------------------------------------------

var (
	GridBorderFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	GridBorderBlurred = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	// CellCursor marks the editor cursor in Normal/Insert/Command mode.
	CellCursor = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(ColorBG)

	// CellCursorBlinkOff is an unstyled look for the blink phase that hides
	// the cursor. RenderGrid does not use it: off-phase cursor cells take the
	// IP, breakpoint, selection, or heat style instead.
	CellCursorBlinkOff = lipgloss.NewStyle()

	// CellVisualSelected marks cells inside an active Visual-mode selection.
	CellVisualSelected = lipgloss.NewStyle().
				Background(ColorSurface).
				Foreground(ColorHighlight)

	// CellBreakpoint marks a cell carrying a breakpoint.
	CellBreakpoint = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// CellIP marks the instruction pointer's current cell during a run.
	CellIP = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(ColorBG).
		Bold(true)
)

// HeatStyle returns a style shading a cell by its heat value (0-255), used
// when the `heat` property is enabled (spec §4.5.1).
func HeatStyle(heat uint8) lipgloss.Style {
	if heat == 0 {
		return lipgloss.NewStyle()
	}
	switch {
	case heat > 170:
		return lipgloss.NewStyle().Foreground(ColorDanger)
	case heat > 85:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorSecondary)
	}
}

// ---------------------------------------------------------------------------
// Run area styles (stack + output)
// ---------------------------------------------------------------------------

var (
	RunAreaBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	RunAreaTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Padding(0, 1)

	StackValueStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	StackTopStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// ---------------------------------------------------------------------------
// Status line & tooltip styles
// ---------------------------------------------------------------------------

var (
	StatusStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, 1)

	StatusModeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBG).
			Background(ColorPrimary).
			Padding(0, 1)

	StatusDimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	CommandLineStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	TooltipInfoStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary).
				Foreground(ColorText).
				Padding(0, 1)

	TooltipErrorStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDanger).
				Foreground(ColorDanger).
				Padding(0, 1)

	TooltipCommandStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)
