package editor

// gridHistory is a bounded deque of serialized grid snapshots (spec §3.4),
// grounded on original_source/src/frontend/state.rs's GridHistory.
type gridHistory struct {
	snapshots []string
	maxSize   int
}

func newGridHistory(maxSize int) gridHistory {
	return gridHistory{maxSize: maxSize}
}

// push appends dump unless it equals the current head (spec §3.4: "a push
// that equals the last snapshot is a no-op").
func (h *gridHistory) push(dump string) {
	if len(h.snapshots) > 0 && h.snapshots[len(h.snapshots)-1] == dump {
		return
	}
	if len(h.snapshots)+1 > h.maxSize {
		h.snapshots = h.snapshots[1:]
	}
	h.snapshots = append(h.snapshots, dump)
}

// at returns the snapshot `index` steps back from the head (index 0 is the
// most recent), matching the original's load_history indexing.
func (h *gridHistory) at(index int) (string, bool) {
	pos := len(h.snapshots) - 1 - index
	if pos < 0 || pos >= len(h.snapshots) {
		return "", false
	}
	return h.snapshots[pos], true
}

// len reports how many snapshots are currently held.
func (h *gridHistory) len() int { return len(h.snapshots) }

// truncateBefore drops every snapshot newer than the one `index` steps back
// from the head, so that snapshot becomes the new head and everything older
// is kept (spec §4.3, History Enter: "truncate future snapshots").
func (h *gridHistory) truncateBefore(index int) {
	pos := len(h.snapshots) - 1 - index
	if pos < 0 {
		return
	}
	h.snapshots = h.snapshots[:pos+1]
}
