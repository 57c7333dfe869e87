package grid

import (
	"testing"

	"github.com/puccinia/befunge-tui/internal/cellmodel"
)

func TestNewClampsToMinimumOne(t *testing.T) {
	g := New(0, -3)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("New(0,-3) = %dx%d, want 1x1", g.Width(), g.Height())
	}
}

func TestFromTextPadsToLongestLine(t *testing.T) {
	g := FromText("12\n3456\n7")
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("got %dx%d, want 4x3", g.Width(), g.Height())
	}
	if g.Get(2, 0).Value.Kind != cellmodel.KindEmpty {
		t.Fatalf("short row not padded with Empty")
	}
	if g.Get(0, 2).Value.Kind != cellmodel.KindNumber || g.Get(0, 2).Value.Number != 7 {
		t.Fatalf("Get(0,2) = %+v, want Number(7)", g.Get(0, 2))
	}
}

func TestFromTextEmptyIsSingleEmptyCell(t *testing.T) {
	g := FromText("")
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("FromText(\"\") = %dx%d, want 1x1", g.Width(), g.Height())
	}
	if g.Get(0, 0).Value.Kind != cellmodel.KindEmpty {
		t.Fatalf("FromText(\"\") cell = %+v, want Empty", g.Get(0, 0))
	}
}

func TestAppendPrependColumnPreservesContent(t *testing.T) {
	g := FromText("AB\nCD")
	g.AppendColumn()
	if g.Width() != 3 {
		t.Fatalf("width = %d, want 3", g.Width())
	}
	if g.Get(0, 0).Value.Rune != 'A' || g.Get(2, 0).Value.Kind != cellmodel.KindEmpty {
		t.Fatalf("AppendColumn shifted existing content")
	}

	g2 := FromText("AB\nCD")
	g2.PrependColumn()
	if g2.Get(1, 0).Value.Rune != 'A' || g2.Get(0, 0).Value.Kind != cellmodel.KindEmpty {
		t.Fatalf("PrependColumn did not shift content right")
	}
}

func TestPrependDoesNotAdjustCursor(t *testing.T) {
	g := FromText("AB\nCD")
	g.SetCursor(1, 1)
	before := g.Cursor()

	g.PrependColumn()
	if g.Cursor() != before {
		t.Fatalf("PrependColumn adjusted cursor: got %+v, want %+v", g.Cursor(), before)
	}

	g.PrependRow(nil)
	if g.Cursor() != before {
		t.Fatalf("PrependRow adjusted cursor: got %+v, want %+v", g.Cursor(), before)
	}
}

func TestAppendRowWidensToLongerText(t *testing.T) {
	g := FromText("AB")
	text := "ABCDE"
	g.AppendRow(&text)
	if g.Width() != 5 {
		t.Fatalf("width = %d, want 5 after appending a longer row", g.Width())
	}
	if g.Height() != 2 {
		t.Fatalf("height = %d, want 2", g.Height())
	}
	if g.Get(4, 1).Value.Rune != 'E' {
		t.Fatalf("new row content not preserved at its full width")
	}
}

func TestTrimRemovesEmptyBorders(t *testing.T) {
	g := FromText("   \n  A\n   ")
	trimmed := g.Trim()
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.Width(), g.Height())
	}
	if g.Get(0, 0).Value.Rune != 'A' {
		t.Fatalf("Trim lost content: %+v", g.Get(0, 0))
	}
	if trimmed[0] != 1 || trimmed[1] != 1 {
		t.Fatalf("trimmed row counts = %v, want lead=1 trail=1", trimmed)
	}
}

func TestTrimAllEmptyCollapsesToSingleCell(t *testing.T) {
	g := FromText("   \n   \n   ")
	g.Trim()
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.Width(), g.Height())
	}
	if g.Get(0, 0).Value.Kind != cellmodel.KindEmpty {
		t.Fatalf("collapsed cell = %+v, want Empty", g.Get(0, 0))
	}
}

func TestTrimColumnWidthUsesMinAcrossAllRows(t *testing.T) {
	// Row 0 has 2 leading spaces then content; row 1 is fully empty (4
	// leading spaces by its own count). Per the original, row 1's blank
	// run must not lower the column trim below what row 0 needs, because
	// row popping and column-width computation both read the pre-trim grid.
	g := FromText("  AB\n    ")
	g.Trim()
	if g.Width() != 2 {
		t.Fatalf("width = %d, want 2 (trim driven by row 0's content)", g.Width())
	}
	if g.Height() != 1 {
		t.Fatalf("height = %d, want 1 (all-empty row popped)", g.Height())
	}
	if g.Get(0, 0).Value.Rune != 'A' || g.Get(1, 0).Value.Rune != 'B' {
		t.Fatalf("trimmed content = %+v/%+v, want A/B", g.Get(0, 0), g.Get(1, 0))
	}
}

func TestMoveCursorWrapsToroidally(t *testing.T) {
	g := New(3, 3)
	g.SetCursor(0, 0)
	wrapped := g.MoveCursor(cellmodel.Left, true, false)
	if !wrapped {
		t.Fatalf("expected wrap moving left off column 0")
	}
	if g.Cursor() != (Point{2, 0}) {
		t.Fatalf("cursor = %+v, want (2,0)", g.Cursor())
	}
	if g.CursorDir() != cellmodel.Left {
		t.Fatalf("cursor dir not updated")
	}
}

func TestMoveCursorResizeGrowsGridInsteadOfWrapping(t *testing.T) {
	g := New(2, 2)
	g.SetCursor(0, 0)
	wrapped := g.MoveCursor(cellmodel.Left, true, true)
	if wrapped {
		t.Fatalf("resize-mode MoveCursor must never report a wrap")
	}
	if g.Width() != 3 {
		t.Fatalf("width = %d, want 3 after prepend-on-resize", g.Width())
	}
	if g.Cursor() != (Point{0, 0}) {
		t.Fatalf("cursor = %+v, want (0,0) pinned to the new column", g.Cursor())
	}
}

func TestHeatReduceSaturatesAtZero(t *testing.T) {
	g := New(1, 1)
	g.SetHeat(0, 0, 3)
	g.ReduceHeat(10)
	if g.Get(0, 0).Heat != 0 {
		t.Fatalf("heat = %d, want 0 (saturating)", g.Get(0, 0).Heat)
	}
}

func TestBreakpointsRoundTrip(t *testing.T) {
	g := New(3, 3)
	g.ToggleBreakpoint(0, 0)
	g.ToggleBreakpoint(2, 1)
	got := g.GetBreakpoints()
	want := []Point{{0, 0}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("GetBreakpoints() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetBreakpoints()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	g.ClearBreakpoints()
	if len(g.GetBreakpoints()) != 0 {
		t.Fatalf("ClearBreakpoints left breakpoints set")
	}

	g.LoadBreakpoints(want)
	got2 := g.GetBreakpoints()
	if len(got2) != len(want) {
		t.Fatalf("after LoadBreakpoints: got %v, want %v", got2, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := FromText("AB\nCD")
	c := g.Clone()
	c.Set(0, 0, cellmodel.Char('Z'))
	if g.Get(0, 0).Value.Rune == 'Z' {
		t.Fatalf("mutating clone affected original")
	}
}

func TestDumpRoundTripsThroughFromText(t *testing.T) {
	src := "AB\nC "
	g := FromText(src)
	dumped := g.Dump()
	if dumped != "AB\nC \n" {
		t.Fatalf("Dump() = %q, want %q", dumped, "AB\nC \n")
	}
}
