package editor

import "testing"

func TestGridHistoryPushDedupesHead(t *testing.T) {
	h := newGridHistory(10)
	h.push("a")
	h.push("a")
	if h.len() != 1 {
		t.Fatalf("len = %d, want 1 after pushing a duplicate", h.len())
	}
	h.push("b")
	if h.len() != 2 {
		t.Fatalf("len = %d, want 2", h.len())
	}
}

func TestGridHistoryPushEvictsOldestPastMaxSize(t *testing.T) {
	h := newGridHistory(2)
	h.push("a")
	h.push("b")
	h.push("c")
	if h.len() != 2 {
		t.Fatalf("len = %d, want 2", h.len())
	}
	if v, ok := h.at(0); !ok || v != "c" {
		t.Fatalf("at(0) = %q, want c", v)
	}
	if v, ok := h.at(1); !ok || v != "b" {
		t.Fatalf("at(1) = %q, want b", v)
	}
	if _, ok := h.at(2); ok {
		t.Fatalf("at(2) should be out of range")
	}
}

func TestGridHistoryAtIndexesBackFromHead(t *testing.T) {
	h := newGridHistory(10)
	h.push("a")
	h.push("b")
	h.push("c")

	if v, _ := h.at(0); v != "c" {
		t.Fatalf("at(0) = %q, want c", v)
	}
	if v, _ := h.at(1); v != "b" {
		t.Fatalf("at(1) = %q, want b", v)
	}
	if v, _ := h.at(2); v != "a" {
		t.Fatalf("at(2) = %q, want a", v)
	}
}

func TestGridHistoryTruncateBeforeDropsNewer(t *testing.T) {
	h := newGridHistory(10)
	h.push("a")
	h.push("b")
	h.push("c")

	h.truncateBefore(1) // keep "a","b", drop "c"
	if h.len() != 2 {
		t.Fatalf("len = %d, want 2", h.len())
	}
	if v, _ := h.at(0); v != "b" {
		t.Fatalf("at(0) after truncate = %q, want b", v)
	}
}
