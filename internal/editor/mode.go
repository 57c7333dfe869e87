package editor

import "github.com/puccinia/befunge-tui/internal/grid"

// Mode is the editor's state-machine tag (spec §3.4/§4.3). The original's
// EditorMode is a Rust enum carrying per-variant payloads (Command(String),
// Visual((x,y),(x,y)), Input(InputMode,String), History(usize)); Go has no
// sum type, so Model carries one flat field per payload and Mode only
// selects which of them is meaningful right now.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCommand
	ModeVisual
	ModeInsert
	ModeRunning
	ModeInput
	ModeHistory
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeVisual:
		return "VISUAL"
	case ModeInsert:
		return "INSERT"
	case ModeRunning:
		return "RUNNING"
	case ModeInput:
		return "INPUT"
	case ModeHistory:
		return "HISTORY"
	default:
		return "NORMAL"
	}
}

// visualRegion is the payload of ModeVisual: anchor is fixed at entry,
// head tracks the cursor (original's Visual((usize,usize),(usize,usize))).
type visualRegion struct {
	anchor grid.Point
	head   grid.Point
}
