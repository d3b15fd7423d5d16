package engine

import "testing"

func TestHistoryPushPopRoundTrip(t *testing.T) {
	h := newHistory(20)

	snap := snapshot{
		board: Board{{2, 4, 0, 0}},
		score: 42,
	}
	h.push(snap)

	got, ok := h.pop()
	if !ok {
		t.Fatal("pop after push should succeed")
	}
	if got != snap {
		t.Errorf("pop = %+v, want %+v", got, snap)
	}
}

func TestHistoryPopEmpty(t *testing.T) {
	h := newHistory(20)

	if _, ok := h.pop(); ok {
		t.Error("pop on empty history should report false")
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := newHistory(20)

	for i := 1; i <= 21; i++ {
		h.push(snapshot{score: i})
	}

	if h.len() != 20 {
		t.Fatalf("history length = %d, want 20", h.len())
	}

	// Most recent 20 remain, in order: 21 down to 2
	for want := 21; want >= 2; want-- {
		snap, ok := h.pop()
		if !ok {
			t.Fatalf("pop for score %d failed", want)
		}
		if snap.score != want {
			t.Errorf("pop score = %d, want %d", snap.score, want)
		}
	}

	if _, ok := h.pop(); ok {
		t.Error("entry 1 should have been evicted")
	}
}

func TestHistoryDefaultLimit(t *testing.T) {
	h := newHistory(0)

	for i := 0; i < DefaultHistoryLimit+5; i++ {
		h.push(snapshot{score: i})
	}

	if h.len() != DefaultHistoryLimit {
		t.Errorf("history length = %d, want %d", h.len(), DefaultHistoryLimit)
	}
}
