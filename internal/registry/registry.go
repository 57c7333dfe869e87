// Package registry implements the command and property registry of spec
// §4.5, grounded on original_source/src/frontend/command.rs: a fixed list
// of Commands (aliases, typed args, a handler) and Properties (a single
// name, typed args, a setter), dispatched by splitting the command-mode
// buffer at the first whitespace and resolving the name by case-insensitive
// linear lookup.
package registry

import (
	"errors"
	"strconv"
	"strings"

	"github.com/puccinia/befunge-tui/internal/ferr"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
)

// ErrLiveOutputWhileRunning is returned by a Context's SetLiveOutput when
// called during a run (spec §4.5.1: "rejected while Running").
var ErrLiveOutputWhileRunning = errors.New("can't change output mode during a run")

// TooltipKind tags which variant of the editor's tooltip (spec §3.4:
// "None | Command(s) | Info(s) | Error(s)") is active.
type TooltipKind int

const (
	TooltipNone TooltipKind = iota
	TooltipCommand
	TooltipInfo
	TooltipError
)

// Tooltip is the editor's single-slot popup state.
type Tooltip struct {
	Kind TooltipKind
	Text string
}

func InfoTooltip(text string) Tooltip  { return Tooltip{Kind: TooltipInfo, Text: text} }
func ErrorTooltip(text string) Tooltip { return Tooltip{Kind: TooltipError, Text: text} }

// Context is the slice of editor state a command or property handler needs
// to read or mutate. internal/editor's Model implements it; registry never
// imports internal/editor, keeping the dependency edge one-directional
// (editor -> registry, per the module layout's leaves-first order).
type Context interface {
	Grid() *grid.Grid
	IsRunning() bool
	EnterRunning()
	ClearRunState()
	ShowRunArea()
	SetTooltip(Tooltip)
	SetHeatEnabled(bool)
	SetLiveOutput(bool) error
	VisualRegion() (grid.Point, grid.Point, bool)
	ReverseRegion(axis string) error
	ClearHeat()
}

// ArgType classifies a string argument by attempted parse, matching the
// original's ArgType::from(&str): numeric first, then boolean, else string
// (spec §D.3).
type ArgType int

const (
	ArgString ArgType = iota
	ArgNumber
	ArgBoolean
	ArgAny
)

func InferArgType(s string) ArgType {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return ArgNumber
	}
	if _, err := strconv.ParseBool(s); err == nil {
		return ArgBoolean
	}
	return ArgString
}

// Arg describes one positional argument slot.
type Arg struct {
	Name     string
	Optional bool
	Type     ArgType
}

func (a Arg) String() string {
	open, close := '<', '>'
	if a.Optional {
		open, close = '[', ']'
	}
	return string(open) + a.Name + ":" + argTypeLabel(a.Type) + string(close)
}

func argTypeLabel(t ArgType) string {
	switch t {
	case ArgNumber:
		return "Number"
	case ArgBoolean:
		return "Boolean"
	case ArgAny:
		return "Any"
	default:
		return "String"
	}
}

// Handler runs a parsed command. It returns exit=true to end the editor
// task (q/quit/x/exit).
type Handler func(args []string, ctx Context, reg *Registry, send chan<- proto.ToInterpreter) (exit bool, err error)

// Command is one registered command, aliased under one or more names.
type Command struct {
	Names       []string
	Args        []Arg
	Description string
	Handler     Handler
}

// Describe renders a Command the way the original's ToString impl does:
// "names: <req>[opt]: description" (spec §D.5).
func (c Command) Describe() string {
	names := strings.Join(c.Names, "|")
	argParts := make([]string, len(c.Args))
	for i, a := range c.Args {
		argParts[i] = a.String()
	}
	args := strings.Join(argParts, " ")
	if args == "" {
		return names + ": " + c.Description
	}
	return names + " " + args + ": " + c.Description
}

// Setter applies a property value.
type Setter func(args []string, ctx Context, send chan<- proto.ToInterpreter) error

// Property is one registered `set <name> <args...>` target.
type Property struct {
	Name        string
	Args        []Arg
	Description string
	Setter      Setter
}

func (p Property) Describe() string {
	argParts := make([]string, len(p.Args))
	for i, a := range p.Args {
		argParts[i] = a.String()
	}
	args := strings.Join(argParts, " ")
	if args == "" {
		return p.Name + ": " + p.Description
	}
	return p.Name + " " + args + ": " + p.Description
}

// Registry holds the built-in commands and properties.
type Registry struct {
	Commands   []Command
	Properties []Property
}

// New builds the registry with every built-in command and property wired
// (spec §4.5).
func New() *Registry {
	r := &Registry{}
	r.Commands = buildCommands()
	r.Properties = buildProperties()
	return r
}

// Dispatch parses and runs one command-mode submission (spec §4.5
// "Parsing: split at first whitespace..."). `h`/`help` is special-cased
// exactly as the original does, before falling through to alias lookup.
func (r *Registry) Dispatch(cmd string, ctx Context, send chan<- proto.ToInterpreter) (exit bool) {
	name, rest, _ := strings.Cut(cmd, " ")

	if strings.EqualFold(name, "h") || strings.EqualFold(name, "help") {
		ctx.SetTooltip(InfoTooltip(r.helpText()))
		return false
	}

	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}

	for _, c := range r.Commands {
		if containsFold(c.Names, name) {
			exit, err := c.Handler(args, ctx, r, send)
			if err != nil {
				ctx.SetTooltip(ErrorTooltip(err.Error()))
				return false
			}
			return exit
		}
	}

	ctx.SetTooltip(ErrorTooltip(ferr.Command(&ferr.CommandError{Kind: ferr.CommandUnknown, Name: cmd}).Error()))
	return false
}

func (r *Registry) helpText() string {
	lines := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		lines[i] = c.Describe()
	}
	return strings.Join(lines, "\n")
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
