package engine

import (
	"strconv"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
)

// Step executes the cell at the IP, decays heat, and advances the IP
// (spec §4.2.1). Put mutations are reported to the editor immediately as a
// SetCell so both tasks' grids stay in sync without a full Load (§6.3).
func (e *Engine) Step() StepResult {
	cur := e.Grid.Cursor()
	cell := e.Grid.Get(cur.X, cur.Y)

	if cell.Value.Kind == cellmodel.KindEnd {
		return End
	}

	e.lastStepMutated = false
	bridge := false
	halted := false

	switch {
	case cell.Value.Kind == cellmodel.KindStringMode:
		e.StringMode = !e.StringMode
	case e.StringMode:
		e.Stack.Push(int32(cell.Value.ToChar()))
	default:
		switch cell.Value.Kind {
		case cellmodel.KindEmpty, cellmodel.KindChar:
			// no-op
		case cellmodel.KindBridge:
			bridge = true
		case cellmodel.KindNumber:
			e.Stack.Push(int32(cell.Value.Number))
		case cellmodel.KindDir:
			d := cell.Value.Dir
			if d == cellmodel.Random {
				d = randomDirection()
			}
			e.Grid.SetCursorDir(d)
		case cellmodel.KindIf:
			e.execIf(cell.Value.If)
		case cellmodel.KindOp:
			if !e.execOp(cell.Value.Op) {
				halted = true
			}
		}
	}

	if halted {
		return End
	}

	e.Grid.ReduceHeat(e.Config.HeatDiffusion)
	e.Grid.SetHeat(cur.X, cur.Y, 128)

	e.Grid.MoveCursor(e.Grid.CursorDir(), false, false)
	if bridge {
		e.Grid.MoveCursor(e.Grid.CursorDir(), false, false)
	}

	dest := e.Grid.Cursor()
	if e.Grid.IsBreakpoint(dest.X, dest.Y) {
		return BreakpointHit
	}
	return Continue
}

func (e *Engine) execIf(dir cellmodel.IfDir) {
	v := e.Stack.Pop()
	if dir == cellmodel.Horizontal {
		if v == 0 {
			e.Grid.SetCursorDir(cellmodel.Right)
		} else {
			e.Grid.SetCursorDir(cellmodel.Left)
		}
		return
	}
	if v == 0 {
		e.Grid.SetCursorDir(cellmodel.Down)
	} else {
		e.Grid.SetCursorDir(cellmodel.Up)
	}
}

// execOp dispatches an operator cell. It returns false only when a nullary
// input request was cancelled by a Stop (§4.2.4 step 3), signalling the
// caller to halt the step as End without the usual heat/move tail.
func (e *Engine) execOp(op cellmodel.Op) bool {
	switch o := op.(type) {
	case cellmodel.NullaryOp:
		return e.execNullary(o)
	case cellmodel.UnaryOp:
		e.execUnary(o)
	case cellmodel.BinaryOp:
		e.execBinary(o)
	case cellmodel.TernaryOp:
		e.execTernary(o)
	}
	return true
}

func (e *Engine) execNullary(op cellmodel.NullaryOp) bool {
	switch op {
	case cellmodel.OpInteger:
		v, ok := e.requestInput(proto.InputInteger)
		if !ok {
			return false
		}
		e.Stack.Push(v)
	case cellmodel.OpAscii:
		v, ok := e.requestInput(proto.InputAscii)
		if !ok {
			return false
		}
		e.Stack.Push(v & 0xff)
	}
	return true
}

func (e *Engine) execUnary(op cellmodel.UnaryOp) {
	switch op {
	case cellmodel.OpNegate:
		x := e.Stack.Pop()
		if x == 0 {
			e.Stack.Push(1)
		} else {
			e.Stack.Push(0)
		}
	case cellmodel.OpDuplicate:
		x := e.Stack.Pop()
		e.Stack.Push(x)
		e.Stack.Push(x)
	case cellmodel.OpPop:
		e.Stack.Pop()
	case cellmodel.OpWriteNumber:
		x := e.Stack.Pop()
		e.out <- proto.Output{Chunk: strconv.FormatInt(int64(x), 10)}
	case cellmodel.OpWriteAscii:
		x := e.Stack.Pop()
		b := byte(((x % 256) + 256) % 256)
		e.out <- proto.Output{Chunk: string([]byte{b})}
	}
}

func (e *Engine) execBinary(op cellmodel.BinaryOp) {
	a, b := e.Stack.PopTwo()
	switch op {
	case cellmodel.OpGreater:
		if a > b {
			e.Stack.Push(1)
		} else {
			e.Stack.Push(0)
		}
	case cellmodel.OpAdd:
		e.Stack.Push(a + b)
	case cellmodel.OpSubtract:
		e.Stack.Push(a - b)
	case cellmodel.OpMultiply:
		e.Stack.Push(a * b)
	case cellmodel.OpDivide:
		if b == 0 {
			e.Stack.Push(0)
		} else {
			e.Stack.Push(a / b)
		}
	case cellmodel.OpModulo:
		if b == 0 {
			e.Stack.Push(0)
		} else {
			e.Stack.Push(a % b)
		}
	case cellmodel.OpSwap:
		e.Stack.Push(b)
		e.Stack.Push(a)
	case cellmodel.OpGet:
		x, y := a, b
		if x >= 0 && y >= 0 && e.Grid.InBounds(int(x), int(y)) {
			e.Stack.Push(int32(e.Grid.Get(int(x), int(y)).Value.ToChar()))
		} else {
			e.Stack.Push(0)
		}
	}
}

func (e *Engine) execTernary(op cellmodel.TernaryOp) {
	if op != cellmodel.OpPut {
		return
	}
	y := e.Stack.Pop()
	x := e.Stack.Pop()
	v := e.Stack.Pop()

	if x < 0 || y < 0 || !e.Grid.InBounds(int(x), int(y)) {
		return
	}

	r := charFromCodepoint(v)
	e.Grid.Set(int(x), int(y), cellmodel.Classify(r))
	e.lastStepMutated = true
	e.out <- proto.NewSetCell(grid.Point{X: int(x), Y: int(y)}, r)
}

// charFromCodepoint converts a raw stack value into a rune for Put. The
// conversion is unspecified for non-scalar values (spec §9); rather than
// panic as the original does, an invalid codepoint is replaced with '?'.
func charFromCodepoint(v int32) rune {
	r := rune(v)
	if v < 0 || !validRune(r) {
		return '?'
	}
	return r
}

func validRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}
