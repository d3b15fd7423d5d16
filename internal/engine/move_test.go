package engine

import "testing"

func TestSlideLineMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		gained   int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			gained:   4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			gained:   4,
		},
		{
			name:     "two pairs no triple merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			gained:   8,
		},
		{
			name:     "merge result never chains",
			input:    [4]int{4, 4, 8, 0},
			expected: [4]int{8, 8, 0, 0},
			gained:   8,
		},
		{
			name:     "merge across gap",
			input:    [4]int{2, 0, 2, 0},
			expected: [4]int{4, 0, 0, 0},
			gained:   4,
		},
		{
			name:     "compaction only no score",
			input:    [4]int{0, 2, 0, 0},
			expected: [4]int{2, 0, 0, 0},
			gained:   0,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			gained:   0,
		},
		{
			name:     "empty line",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			gained:   0,
		},
		{
			name:     "already compacted",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			gained:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, gained := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if gained != tt.gained {
				t.Errorf("slideLine(%v) gained = %d, want %d", tt.input, gained, tt.gained)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, gained, changed := SlideLeft(board)

	if result != expected {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideLeft should indicate board changed")
	}
	if gained != 4+8+8 {
		t.Errorf("SlideLeft gained = %d, want %d", gained, 4+8+8)
	}
}

func TestSlideRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := SlideRight(board)

	if result != expected {
		t.Errorf("SlideRight: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideRight should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, changed := SlideUp(board)

	if result != expected {
		t.Errorf("SlideUp: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideUp should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := SlideDown(board)

	if result != expected {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideDown should indicate board changed")
	}
}

func TestSlideNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Sliding left when tiles are already left-aligned
	result, gained, changed := SlideLeft(board)

	if changed {
		t.Error("SlideLeft should not change already left-aligned tiles")
	}
	if gained != 0 {
		t.Errorf("no-op slide gained = %d, want 0", gained)
	}
	if result != board {
		t.Error("no-op slide should return an identical board")
	}
}

func TestCompactionOnlyCountsAsChanged(t *testing.T) {
	board := Board{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, gained, changed := SlideLeft(board)

	if !changed {
		t.Error("compaction-only shift should count as a move")
	}
	if gained != 0 {
		t.Errorf("compaction-only shift gained = %d, want 0", gained)
	}
	if result[0] != [4]int{2, 0, 0, 0} {
		t.Errorf("row after compaction = %v, want [2 0 0 0]", result[0])
	}
}

func TestSlideInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Slide with invalid direction should panic")
		}
	}()
	Slide(Board{}, Direction(42))
}

func TestCanMove(t *testing.T) {
	// Alternating board: full, no equal orthogonal neighbors
	blocked := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if CanMove(blocked) {
		t.Error("alternating full board should have no moves")
	}

	// Full board with one mergeable pair
	mergeable := blocked
	mergeable[0][1] = 2
	if !CanMove(mergeable) {
		t.Error("board with adjacent equal pair should have a move")
	}

	// Board with an empty cell trivially has a move
	withEmpty := blocked
	withEmpty[2][2] = 0
	if !CanMove(withEmpty) {
		t.Error("board with empty cell should have a move")
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{0, 2, 0, 4},
		{32, 0, 2, 0},
		{0, 0, 0, 2},
	}

	if transpose(transpose(board)) != board {
		t.Error("transpose applied twice should restore the board")
	}
}
