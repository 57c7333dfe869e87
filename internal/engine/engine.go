// Package engine implements the interpreter task's authoritative runtime:
// the grid, stack, string-mode flag, and the step/run/input control flow of
// spec §3.3/§4.2. It is grounded on original_source/src/editor/grid.rs (the
// instruction dispatch) and src/logic.rs (the run loop's message-passing
// shape), generalized from that file's ad hoc channel usage into the typed
// internal/proto protocol.
package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/ferr"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
)

// StepResult is the outcome of one Step (spec §4.2.1).
type StepResult int

const (
	Continue StepResult = iota
	BreakpointHit
	End
)

// Config is the engine-side property set (spec §3.3, §4.5.1).
type Config struct {
	HeatDiffusion uint8
	ViewUpdates   proto.ViewUpdates
	StepMs        uint64
}

// DefaultConfig matches the original's defaults (heat decays slowly, full
// view updates, no artificial delay).
func DefaultConfig() Config {
	return Config{HeatDiffusion: 4, ViewUpdates: proto.ViewAll, StepMs: 0}
}

// Engine is the interpreter task's runtime state.
type Engine struct {
	Grid        *grid.Grid
	Stack       Stack
	StringMode  bool
	Config      Config
	InitialPath *string

	out chan<- proto.ToEditor
	in  <-chan proto.ToInterpreter

	// runID tags each Start..Break/LeaveRunningMode span in the logfile so
	// overlapping runs (rapid Start/Stop/Start from the editor) can be told
	// apart when diagnosing a report.
	runID string

	// lastStepMutated records whether the instruction Step just executed
	// was a Put, driving the Partial view_updates policy (§4.2.3: "update
	// frontend only on grid-mutating steps (Put)").
	lastStepMutated bool
}

// New builds an idle engine around g, wired to the given channel pair.
func New(g *grid.Grid, initialPath *string, out chan<- proto.ToEditor, in <-chan proto.ToInterpreter) *Engine {
	return &Engine{
		Grid:        g,
		Config:      DefaultConfig(),
		InitialPath: initialPath,
		out:         out,
		in:          in,
	}
}

// Run is the interpreter task's main loop: block for a command, act on it,
// repeat until Kill or the channel closes (spec §5: "Blocking receive on
// the command channel at idle").
func (e *Engine) Run() {
	for msg := range e.in {
		switch m := msg.(type) {
		case proto.Kill:
			if e.runID != "" {
				log.Printf("befunge: run %s killed", e.runID)
			}
			e.out <- proto.Break{}
			return
		case proto.Sync:
			e.Grid = grid.FromText(m.Text)
		case proto.Write:
			e.handleWrite(m.Path)
		case proto.SetCellCmd:
			if e.Grid.InBounds(m.Pos.X, m.Pos.Y) {
				e.Grid.Set(m.Pos.X, m.Pos.Y, cellmodel.Classify(m.Val.Rune()))
			}
		case proto.UpdateProperty:
			e.handleUpdateProperty(m)
		case proto.RunningCommand:
			e.handleRunningCommand(m.Op)
		case proto.InputValue:
			// An Input arriving outside a pending-input wait is a protocol
			// violation by the caller; the engine simply drops it, mirroring
			// the policy that channel-level ordering is the caller's job.
		}
	}
}

func (e *Engine) handleWrite(path *string) {
	target := path
	if target == nil {
		target = e.InitialPath
	}
	if target == nil {
		e.out <- proto.LogicError{Message: ferr.New(ferr.KindFile, "no path to write to").Error()}
		return
	}
	trimmed := e.Grid.Clone()
	trimmed.Trim()
	if err := writeFile(*target, trimmed.Dump()); err != nil {
		e.out <- proto.LogicError{Message: ferr.File(*target, err).Error()}
		return
	}
	if path != nil {
		e.InitialPath = path
	}
}

func (e *Engine) handleUpdateProperty(m proto.UpdateProperty) {
	switch m.Name {
	case "heat_diffusion":
		var v uint64
		if _, err := fmt.Sscanf(m.Value, "%d", &v); err != nil {
			e.out <- proto.LogicError{Message: fmt.Sprintf("heat_diffusion: %v", err)}
			return
		}
		if v > 255 {
			v = 255
		}
		e.Config.HeatDiffusion = uint8(v)
	case "view_updates":
		vu, ok := proto.ParseViewUpdates(m.Value)
		if !ok {
			e.out <- proto.LogicError{Message: fmt.Sprintf("unrecognized view_updates value %q", m.Value)}
			return
		}
		e.Config.ViewUpdates = vu
	case "step_ms":
		var v uint64
		if _, err := fmt.Sscanf(m.Value, "%d", &v); err != nil {
			e.out <- proto.LogicError{Message: fmt.Sprintf("step_ms: %v", err)}
			return
		}
		e.Config.StepMs = v
	default:
		e.out <- proto.LogicError{Message: fmt.Sprintf("unrecognized property %q", m.Name)}
	}
}

func (e *Engine) handleRunningCommand(op proto.RunOp) {
	switch o := op.(type) {
	case proto.RunStart:
		e.start(o.Text, o.Breakpoints)
	case proto.RunStep:
		e.runStep()
	case proto.RunSkipToBreakpoint:
		e.skipToBreakpoint()
	case proto.RunToggleBreakpoint:
		if e.Grid.InBounds(o.Pos.X, o.Pos.Y) {
			e.Grid.ToggleBreakpoint(o.Pos.X, o.Pos.Y)
		}
	case proto.RunStop:
		// Idle Stop outside a skip loop is a no-op; Start/Step already left
		// the engine idle between commands.
	}
}

// start resets the engine for a fresh run (spec §4.2.3 "Start").
func (e *Engine) start(text string, breakpoints []grid.Point) {
	e.Grid = grid.FromText(text)
	e.Grid.LoadBreakpoints(breakpoints)
	e.Grid.ClearHeat()
	e.Grid.SetCursor(0, 0)
	e.Grid.SetCursorDir(cellmodel.Right)
	e.Stack.Clear()
	e.StringMode = false

	e.runID = uuid.NewString()
	log.Printf("befunge: run %s started", e.runID)
}

func (e *Engine) runStep() {
	result := e.Step()
	e.pushLoad()
	switch result {
	case End:
		log.Printf("befunge: run %s ended", e.runID)
		e.out <- proto.LeaveRunningMode{}
	case BreakpointHit:
		// Stepping manually onto a breakpoint is still just a step; only
		// SkipToBreakpoint treats it as a stopping condition (§4.2.3).
	}
}

// skipToBreakpoint loops Step, honoring a non-blocking Stop poll between
// steps and view_updates-gated reporting (spec §4.2.3).
func (e *Engine) skipToBreakpoint() {
	for {
		select {
		case msg, ok := <-e.in:
			if !ok {
				e.out <- proto.Break{}
				return
			}
			if rc, isRun := msg.(proto.RunningCommand); isRun {
				if _, stop := rc.Op.(proto.RunStop); stop {
					e.out <- proto.LeaveRunningMode{}
					return
				}
				if tb, isToggle := rc.Op.(proto.RunToggleBreakpoint); isToggle {
					if e.Grid.InBounds(tb.Pos.X, tb.Pos.Y) {
						e.Grid.ToggleBreakpoint(tb.Pos.X, tb.Pos.Y)
					}
				}
			} else if up, isProp := msg.(proto.UpdateProperty); isProp {
				e.handleUpdateProperty(up)
			}
		default:
		}

		result := e.Step()

		switch e.Config.ViewUpdates {
		case proto.ViewAll:
			e.pushLoad()
		case proto.ViewPartial:
			if e.lastStepMutated {
				e.pushLoad()
			}
		case proto.ViewNone:
			// only terminal events below trigger an update
		}

		if e.Config.ViewUpdates == proto.ViewAll && e.Config.StepMs > 10 {
			time.Sleep(time.Duration(e.Config.StepMs) * time.Millisecond)
		}

		switch result {
		case End:
			e.pushLoad()
			e.out <- proto.LeaveRunningMode{}
			return
		case BreakpointHit:
			// A breakpoint only stops the skip loop; it does not leave
			// Running (spec §4.3's mode table: Enter->SkipToBreakpoint and
			// b->ToggleBreakpoint both stay in Running). The IP, stack, and
			// heat are left exactly where they are so the user can resume
			// with another Step or SkipToBreakpoint.
			e.pushLoad()
			return
		}
	}
}

func (e *Engine) pushLoad() {
	e.out <- proto.Load{
		Text:        e.Grid.Dump(),
		Stack:       e.Stack.Snapshot(),
		Breakpoints: e.Grid.GetBreakpoints(),
	}
}

// requestInput implements the interactive input protocol (spec §4.2.4): send
// an Input request, then block for either an InputValue or a Stop arriving
// on the command channel (a RunStop inside a RunningCommand, consistent with
// how Stop is represented everywhere else in the protocol).
func (e *Engine) requestInput(kind proto.InputKind) (int32, bool) {
	e.out <- proto.Input{Kind: kind}
	for {
		msg, ok := <-e.in
		if !ok {
			return 0, false
		}
		switch m := msg.(type) {
		case proto.InputValue:
			return m.Value, true
		case proto.RunningCommand:
			if _, stop := m.Op.(proto.RunStop); stop {
				return 0, false
			}
		}
	}
}

// randomDirection resolves `?` at execution time; it must never be cached
// (spec §9: "Directional random... is impure and must not be cached").
func randomDirection() cellmodel.Direction {
	dirs := [4]cellmodel.Direction{cellmodel.Up, cellmodel.Down, cellmodel.Left, cellmodel.Right}
	return dirs[rand.Intn(4)]
}
