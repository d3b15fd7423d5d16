package engine

// DefaultHistoryLimit is the number of undo steps retained per session.
const DefaultHistoryLimit = 20

// snapshot is an immutable (board, score) pair taken before a confirmed move.
type snapshot struct {
	board Board
	score int
}

// history is a bounded stack of snapshots. When the limit is exceeded the
// oldest entry is discarded, so undo always covers the most recent moves.
type history struct {
	entries []snapshot
	limit   int
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{limit: limit}
}

// push appends a snapshot, evicting the oldest entry on overflow.
func (h *history) push(s snapshot) {
	h.entries = append(h.entries, s)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// pop removes and returns the most recent snapshot.
// The second return value is false when the history is empty.
func (h *history) pop() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

func (h *history) len() int {
	return len(h.entries)
}
