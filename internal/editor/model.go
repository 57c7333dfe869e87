// Package editor implements the editor task (E) of spec §2/§4.3/§4.4: the
// Bubble Tea Model driving the mode machine, undo/command history,
// clipboard paste, and the render loop, coordinating with the interpreter
// task (I) over the internal/proto channel pair. Grounded throughout on
// original_source/src/frontend/{input,state,connect,command}.rs and on the
// teacher's internal/app.Model (tick-driven Bubble Tea orchestration).
package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/puccinia/befunge-tui/internal/config"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
	"github.com/puccinia/befunge-tui/internal/registry"
)

// tickMsg drives the ~30Hz frame loop (spec §4's "Frame loop & input
// dispatch" row), matching the teacher's tickMsg time.Time idiom.
type tickMsg time.Time

// fromInterpMsg wraps one message received from the interpreter task so it
// can travel through Bubble Tea's Update as a tea.Msg.
type fromInterpMsg struct{ msg proto.ToEditor }

// interpClosedMsg signals the interpreter's outbound channel closed.
type interpClosedMsg struct{}

// Model is the editor task's Bubble Tea model.
type Model struct {
	cfg config.Config
	reg *registry.Registry

	toInterp   chan<- proto.ToInterpreter
	fromInterp <-chan proto.ToEditor

	mode         Mode
	previousMode *Mode
	cmdBuf       string
	visual       visualRegion
	inputKind    proto.InputKind
	inputBuf     string
	historyIdx   int

	grid   *grid.Grid
	stack  []int32
	output       string
	outputBuffer string

	tooltip registry.Tooltip

	runAreaPos config.RunAreaPosition
	heatOn     bool
	liveOutput bool

	history gridHistory

	cmdHistory      []string
	cmdHistoryIdx   int // -1 means "not browsing"
	cmdHistorySize  int

	width, height int
	quitting      bool
	lastCtrlC     time.Time
}

// New builds the initial Model around an already-classified grid and the
// channel pair connecting to the interpreter task.
func New(g *grid.Grid, cfg config.Config, reg *registry.Registry, toInterp chan<- proto.ToInterpreter, fromInterp <-chan proto.ToEditor) Model {
	return Model{
		cfg:            cfg,
		reg:            reg,
		toInterp:       toInterp,
		fromInterp:     fromInterp,
		mode:           ModeNormal,
		grid:           g,
		runAreaPos:     cfg.RunAreaPosition,
		heatOn:         true,
		liveOutput:     false,
		history:        newGridHistory(cfg.HistorySize),
		cmdHistoryIdx:  -1,
		cmdHistorySize: cfg.CommandHistorySize,
	}
}

// Init starts the frame tick and the interpreter-listen loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.FrameRate), listenInterp(m.fromInterp))
}

func tickCmd(frameRate int) tea.Cmd {
	if frameRate < 1 {
		frameRate = 1
	}
	d := time.Second / time.Duration(frameRate)
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenInterp blocks for the next interpreter message and rearms itself;
// this is the Bubble Tea idiom for draining an external channel (teacher's
// model has no external-channel analogue, so this follows the standard
// Bubble Tea "listen command" pattern instead).
func listenInterp(ch <-chan proto.ToEditor) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return interpClosedMsg{}
		}
		return fromInterpMsg{msg: msg}
	}
}
