// Package proto defines the typed messages the Editor and Interpreter tasks
// exchange over their two ordered channels (spec §5, §6.3). Each direction
// gets its own sum type, modeled the Go way as an interface with a sealed
// set of concrete implementations rather than a tagged union, since several
// variants carry distinct payload shapes the caller needs named fields for.
package proto

import "github.com/puccinia/befunge-tui/internal/grid"

// InputKind distinguishes the two interactive-input handoff modes (§4.2.4).
type InputKind int

const (
	InputInteger InputKind = iota
	InputAscii
)

func (k InputKind) String() string {
	if k == InputAscii {
		return "ascii"
	}
	return "integer"
}

// ViewUpdates controls how often SkipToBreakpoint pushes a Load back to the
// editor (§4.2.3).
type ViewUpdates int

const (
	ViewNone ViewUpdates = iota
	ViewPartial
	ViewAll
)

func ParseViewUpdates(s string) (ViewUpdates, bool) {
	switch s {
	case "none":
		return ViewNone, true
	case "partial":
		return ViewPartial, true
	case "all":
		return ViewAll, true
	default:
		return ViewNone, false
	}
}

func (v ViewUpdates) String() string {
	switch v {
	case ViewPartial:
		return "partial"
	case ViewAll:
		return "all"
	default:
		return "none"
	}
}

// ToEditor is the sealed set of messages the interpreter sends the editor
// (spec §6.3 "Interpreter -> Editor").
type ToEditor interface{ toEditor() }

// Break announces the interpreter is exiting.
type Break struct{}

// Load is a full state refresh: grid text, stack snapshot, breakpoint set.
type Load struct {
	Text        string
	Stack       []int32
	Breakpoints []grid.Point
}

// MoveCursor is a cursor-only update. The engine does not emit it; the IP
// position reaches the editor through the grid carried by each Load.
type MoveCursor struct {
	Pos grid.Point
}

// LogicError carries a user-visible interpreter-domain error (§7).
type LogicError struct {
	Message string
}

// SetCell is a point update, emitted after a Put mutates the grid.
type SetCell struct {
	Pos grid.Point
	Val cellValueJSON
}

// LeaveRunningMode tells the editor to return to Normal. On a non-live-output
// run, the editor must commit its buffered output on receipt.
type LeaveRunningMode struct{}

// Output is one chunk to append to the output stream.
type Output struct {
	Chunk string
}

// Input requests interactive input of the given kind (§4.2.4 step 1).
type Input struct {
	Kind InputKind
}

// PopupToggle is reserved (spec §6.3 lists it without further contract).
type PopupToggle struct {
	Tooltip string
}

func (Break) toEditor()            {}
func (Load) toEditor()             {}
func (MoveCursor) toEditor()       {}
func (LogicError) toEditor()       {}
func (SetCell) toEditor()          {}
func (LeaveRunningMode) toEditor() {}
func (Output) toEditor()           {}
func (Input) toEditor()            {}
func (PopupToggle) toEditor()      {}

// ToInterpreter is the sealed set of messages the editor sends the
// interpreter (spec §6.3 "Editor -> Interpreter").
type ToInterpreter interface{ toInterpreter() }

// Kill requests interpreter shutdown.
type Kill struct{}

// Write persists the interpreter's (trimmed) grid to Path, or to the
// initial load path if Path is nil (§D.6).
type Write struct {
	Path *string
}

// Sync replaces the interpreter's grid with Text, becoming the new
// authoritative state (§5: "a late Sync after Start re-initializes the
// run").
type Sync struct {
	Text string
}

// SetCellCmd is a reserved point-edit message; spec §6.3 notes it is "not
// emitted by the current editor" but keeps it part of the protocol surface.
type SetCellCmd struct {
	Pos grid.Point
	Val cellValueJSON
}

// RunOp is the sealed set of RunningCommand operations (§6.3).
type RunOp interface{ runOp() }

type RunStart struct {
	Text        string
	Breakpoints []grid.Point
}
type RunStep struct{}
type RunSkipToBreakpoint struct{}
type RunToggleBreakpoint struct {
	Pos grid.Point
}
type RunStop struct{}

func (RunStart) runOp()            {}
func (RunStep) runOp()             {}
func (RunSkipToBreakpoint) runOp() {}
func (RunToggleBreakpoint) runOp() {}
func (RunStop) runOp()             {}

// RunningCommand carries one RunOp.
type RunningCommand struct {
	Op RunOp
}

// UpdateProperty sets an engine-side property (§4.5.1: heat_diffusion,
// view_updates, step_ms).
type UpdateProperty struct {
	Name  string
	Value string
}

// InputValue answers a pending Input request with an integer (both Integer
// and Ascii kinds resolve to an i32 payload per §4.2.4).
type InputValue struct {
	Value int32
}

func (Kill) toInterpreter()           {}
func (Write) toInterpreter()          {}
func (Sync) toInterpreter()           {}
func (SetCellCmd) toInterpreter()     {}
func (RunningCommand) toInterpreter() {}
func (UpdateProperty) toInterpreter() {}
func (InputValue) toInterpreter()     {}

// cellValueJSON is a minimal serializable stand-in for cellmodel.CellValue
// used by the SetCell and SetCellCmd point-edit messages; defined here
// (rather than importing cellmodel directly into every call site) to keep
// the point-edit payload to the one field the receiver needs: the raw
// character, re-classified on the receiving end.
type cellValueJSON struct {
	Char rune
}

// NewSetCell builds a SetCell point update from a raw character.
func NewSetCell(pos grid.Point, ch rune) SetCell {
	return SetCell{Pos: pos, Val: cellValueJSON{Char: ch}}
}

// NewSetCellCmd builds the editor-side reserved point-edit command.
func NewSetCellCmd(pos grid.Point, ch rune) SetCellCmd {
	return SetCellCmd{Pos: pos, Val: cellValueJSON{Char: ch}}
}

// Rune returns the raw character carried by a SetCell/SetCellCmd payload.
func (v cellValueJSON) Rune() rune { return v.Char }
