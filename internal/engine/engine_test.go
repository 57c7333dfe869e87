package engine

import (
	"testing"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
	"github.com/puccinia/befunge-tui/internal/grid"
	"github.com/puccinia/befunge-tui/internal/proto"
)

func newTestEngine(t *testing.T, program string) (*Engine, chan proto.ToEditor, chan proto.ToInterpreter) {
	t.Helper()
	out := make(chan proto.ToEditor, 256)
	in := make(chan proto.ToInterpreter, 256)
	e := New(grid.FromText(program), nil, out, in)
	e.Grid.SetCursor(0, 0)
	e.Grid.SetCursorDir(cellmodel.Right)
	return e, out, in
}

func drainOutput(out chan proto.ToEditor) string {
	var s string
	for {
		select {
		case msg := <-out:
			if o, ok := msg.(proto.Output); ok {
				s += o.Chunk
			}
		default:
			return s
		}
	}
}

func runToCompletion(t *testing.T, e *Engine, limit int) StepResult {
	t.Helper()
	for i := 0; i < limit; i++ {
		r := e.Step()
		if r == End {
			return End
		}
	}
	t.Fatalf("program did not halt within %d steps", limit)
	return Continue
}

func TestAddMultiplyThenHalt(t *testing.T) {
	e, _, _ := newTestEngine(t, `>25*@`)
	r := runToCompletion(t, e, 100)
	if r != End {
		t.Fatalf("expected End, got %v", r)
	}
	if e.Stack.Len() != 1 {
		t.Fatalf("stack len = %d, want 1", e.Stack.Len())
	}
	got := e.Stack.Pop()
	if got != 10 {
		t.Fatalf("stack top = %d, want 10", got)
	}
}

func TestStringModePushesThenCommasPrintInStackOrder(t *testing.T) {
	e, out, _ := newTestEngine(t, `>"olleh",,,,,@`)
	runToCompletion(t, e, 200)
	got := drainOutput(out)
	if got != "hello" {
		t.Fatalf("output = %q, want %q", got, "hello")
	}
}

func TestEndHaltsImmediatelyNoFurtherStep(t *testing.T) {
	e, _, _ := newTestEngine(t, `@`)
	r := e.Step()
	if r != End {
		t.Fatalf("Step() = %v, want End", r)
	}
	if e.Grid.Cursor() != (grid.Point{0, 0}) {
		t.Fatalf("cursor moved past @: %+v", e.Grid.Cursor())
	}
}

func TestDuplicateOnEmptyStackYieldsZeroZero(t *testing.T) {
	e, _, _ := newTestEngine(t, `:`)
	e.Step()
	if e.Stack.Len() != 2 {
		t.Fatalf("stack len = %d, want 2", e.Stack.Len())
	}
	b := e.Stack.Pop()
	a := e.Stack.Pop()
	if a != 0 || b != 0 {
		t.Fatalf("got [%d %d], want [0 0]", a, b)
	}
}

func TestSwapIsInvolution(t *testing.T) {
	e, _, _ := newTestEngine(t, `\`)
	e.Stack.Push(3)
	e.Stack.Push(7)
	e.Step()
	b := e.Stack.Pop()
	a := e.Stack.Pop()
	if a != 7 || b != 3 {
		t.Fatalf("after one swap got [%d %d], want [7 3]", a, b)
	}

	// The 1x1 grid wraps the IP back onto '\', so a second step swaps the
	// pair back into its original order.
	e.Stack.Push(a)
	e.Stack.Push(b)
	e.Step()
	b = e.Stack.Pop()
	a = e.Stack.Pop()
	if a != 3 || b != 7 {
		t.Fatalf("after two swaps got [%d %d], want [3 7]", a, b)
	}
}

func TestGreaterIsStrictComparison(t *testing.T) {
	e, _, _ := newTestEngine(t, "`")
	e.Stack.Push(5)
	e.Stack.Push(5)
	e.Step()
	if got := e.Stack.Pop(); got != 0 {
		t.Fatalf("5 > 5 pushed %d, want 0", got)
	}

	e2, _, _ := newTestEngine(t, "`")
	e2.Stack.Push(3)
	e2.Stack.Push(9)
	e2.Step()
	if got := e2.Stack.Pop(); got != 0 {
		t.Fatalf("3 > 9 pushed %d, want 0", got)
	}

	e3, _, _ := newTestEngine(t, "`")
	e3.Stack.Push(9)
	e3.Stack.Push(3)
	e3.Step()
	if got := e3.Stack.Pop(); got != 1 {
		t.Fatalf("9 > 3 pushed %d, want 1", got)
	}
}

func TestTruncatedDivisionIdentity(t *testing.T) {
	cases := []struct{ a, b int32 }{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2}, {1, 3},
	}
	for _, c := range cases {
		e, _, _ := newTestEngine(t, `/`)
		e.Stack.Push(c.a)
		e.Stack.Push(c.b)
		e.Step()
		quot := e.Stack.Pop()

		e2, _, _ := newTestEngine(t, `%`)
		e2.Stack.Push(c.a)
		e2.Stack.Push(c.b)
		e2.Step()
		rem := e2.Stack.Pop()

		if quot*c.b+rem != c.a {
			t.Errorf("a=%d b=%d: quot*b+rem = %d, want %d", c.a, c.b, quot*c.b+rem, c.a)
		}
	}
}

func TestDivideModuloByZeroPushesZero(t *testing.T) {
	e, _, _ := newTestEngine(t, `/`)
	e.Stack.Push(5)
	e.Stack.Push(0)
	e.Step()
	if got := e.Stack.Pop(); got != 0 {
		t.Fatalf("5/0 = %d, want 0", got)
	}
}

func TestStringModeTogglesAndPushesOrder(t *testing.T) {
	e, _, _ := newTestEngine(t, `"ab"`)
	// step through: '"' toggles on, 'a' pushes, 'b' pushes, '"' toggles off
	e.Step()
	if !e.StringMode {
		t.Fatalf("string mode did not toggle on")
	}
	e.Step()
	e.Step()
	e.Step()
	if e.StringMode {
		t.Fatalf("string mode did not toggle back off")
	}
	b := e.Stack.Pop()
	a := e.Stack.Pop()
	if a != 'a' || b != 'b' {
		t.Fatalf("got [%d %d], want ['a' 'b'] in push order", a, b)
	}
}

func TestBridgeSkipsOneCell(t *testing.T) {
	// Row: '#' at (0,0), 'X' at (1,0) should be skipped, '1' at (2,0).
	e, _, _ := newTestEngine(t, `#X1@`)
	e.Step() // executes '#', moves two cells to (2,0)
	if e.Grid.Cursor() != (grid.Point{2, 0}) {
		t.Fatalf("cursor after bridge = %+v, want (2,0)", e.Grid.Cursor())
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	e, _, _ := newTestEngine(t, `    `)
	// Put: stack order popped is y, x, v -- push v, x, y so they pop in
	// that order.
	e.Stack.Push(int32('Z'))
	e.Stack.Push(1)
	e.Stack.Push(0)
	e.execTernary(cellmodel.OpPut)

	e.Stack.Push(1)
	e.Stack.Push(0)
	e.execBinary(cellmodel.OpGet)
	if got := e.Stack.Pop(); got != 'Z' {
		t.Fatalf("Get after Put = %d (%q), want 'Z'", got, rune(got))
	}
}

func TestGetOutOfBoundsYieldsZero(t *testing.T) {
	e, _, _ := newTestEngine(t, ` `)
	e.Stack.Push(99)
	e.Stack.Push(99)
	e.execBinary(cellmodel.OpGet)
	if got := e.Stack.Pop(); got != 0 {
		t.Fatalf("out-of-bounds Get = %d, want 0", got)
	}
}

func TestBreakpointStopsSkipExactlyOnIt(t *testing.T) {
	e, out, _ := newTestEngine(t, `>1234@`)
	e.Grid.ToggleBreakpoint(3, 0)
	e.skipToBreakpoint()

	if e.Grid.Cursor() != (grid.Point{3, 0}) {
		t.Fatalf("stopped at %+v, want (3,0)", e.Grid.Cursor())
	}

	// A breakpoint stops the skip loop but leaves Running mode untouched, so
	// the user can resume from exactly this paused position; only Stop or
	// End send LeaveRunningMode.
	sawLeave := false
	for {
		select {
		case msg := <-out:
			if _, ok := msg.(proto.LeaveRunningMode); ok {
				sawLeave = true
			}
		default:
			goto done
		}
	}
done:
	if sawLeave {
		t.Fatalf("breakpoint stop must not send LeaveRunningMode")
	}
}

func TestStopDuringSkipHaltsWithinOneStep(t *testing.T) {
	e, _, in := newTestEngine(t, `111111111111111111111111111111@`)
	in <- proto.RunningCommand{Op: proto.RunStop{}}
	before := e.Grid.Cursor().X
	e.skipToBreakpoint()
	after := e.Grid.Cursor().X
	if after-before > 1 {
		t.Fatalf("cursor advanced %d cells after Stop, want at most 1", after-before)
	}
}
