package registry

import (
	"strconv"
	"strings"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/ferr"
	"github.com/puccinia/befunge-tui/internal/proto"
)

// buildCommands mirrors original_source/src/frontend/command.rs's
// init_commands(): one entry per built-in (spec §4.5 table).
func buildCommands() []Command {
	return []Command{
		{
			Names:       []string{"q", "quit"},
			Description: "Quit the program",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				return true, nil
			},
		},
		{
			Names: []string{"w", "write"},
			Args:  []Arg{{Name: "path", Optional: true, Type: ArgString}},
			Description: "Save the buffer to a given path",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				send <- proto.Write{Path: optionalPath(args)}
				return false, nil
			},
		},
		{
			Names: []string{"x", "exit"},
			Args:  []Arg{{Name: "path", Optional: true, Type: ArgString}},
			Description: "Saves the buffer and quits the program",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				send <- proto.Write{Path: optionalPath(args)}
				return true, nil
			},
		},
		{
			Names:       []string{"t", "trim"},
			Description: "Trim the grid on all sides",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				g := ctx.Grid()
				trimmed := g.Trim()
				ctx.SetTooltip(InfoTooltip(formatTrimResult(trimmed)))
				if anyNonZero(trimmed) {
					cur := g.Cursor()
					if !g.InBounds(cur.X, cur.Y) {
						g.SetCursor(0, 0)
					}
				}
				return false, nil
			},
		},
		{
			Names:       []string{"r", "run"},
			Description: "Start a run",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				g := ctx.Grid()
				g.SetCursor(0, 0)
				g.SetCursorDir(cellmodel.Right)
				g.ClearHeat()
				ctx.ClearRunState()
				ctx.EnterRunning()
				ctx.ShowRunArea()
				send <- proto.RunningCommand{Op: proto.RunStart{Text: g.Dump(), Breakpoints: g.GetBreakpoints()}}
				return false, nil
			},
		},
		{
			Names: []string{"s", "set"},
			Args: []Arg{
				{Name: "property", Optional: false, Type: ArgString},
				{Name: "value", Optional: false, Type: ArgAny},
			},
			Description: "Set a property (use ? for a list)",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				return false, handleSetCommand(args, ctx, reg, send)
			},
		},
		{
			Names: []string{"rev"},
			Args:  []Arg{{Name: "axis", Optional: true, Type: ArgString}},
			Description: "Reverse the visual selection horizontally or vertically",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				axis := "x"
				if len(args) > 0 && args[0] != "" {
					axis = strings.ToLower(args[0])
				}
				return false, ctx.ReverseRegion(axis)
			},
		},
		{
			Names:       []string{"clear_heat"},
			Description: "Clear heat on the grid",
			Handler: func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (bool, error) {
				ctx.ClearHeat()
				return false, nil
			},
		},
	}
}

func optionalPath(args []string) *string {
	if len(args) == 0 {
		return nil
	}
	p := strings.TrimSpace(args[0])
	if p == "" {
		return nil
	}
	return &p
}

func anyNonZero(trimmed [4]int) bool {
	for _, v := range trimmed {
		if v != 0 {
			return true
		}
	}
	return false
}

func formatTrimResult(trimmed [4]int) string {
	parts := make([]string, len(trimmed))
	for i, v := range trimmed {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func handleSetCommand(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) error {
	if len(args) == 0 || args[0] == "?" {
		ctx.SetTooltip(InfoTooltip(propertiesHelpText(reg)))
		return nil
	}

	name, rest := args[0], args[1:]

	for _, p := range reg.Properties {
		if p.Name != name {
			continue
		}
		required := 0
		for _, a := range p.Args {
			if !a.Optional {
				required++
			}
		}
		if len(rest) < required || len(rest) > len(p.Args) {
			return ferr.Command(&ferr.CommandError{Kind: ferr.CommandInvalidArguments, Args: rest, Name: name})
		}
		if err := p.Setter(rest, ctx, send); err != nil {
			return err
		}
		ctx.SetTooltip(InfoTooltip("`" + name + "` has been set"))
		return nil
	}

	return ferr.Command(&ferr.CommandError{Kind: ferr.CommandUnrecognizedProperty, Name: name})
}

func propertiesHelpText(reg *Registry) string {
	lines := make([]string, 0, len(reg.Properties))
	for _, p := range reg.Properties {
		lines = append(lines, p.Describe())
	}
	return strings.Join(lines, "\n")
}
