// Package engine implements the 2048 grid-merge engine: tile compaction and
// merging, scoring, random tile spawning, terminal detection and a bounded
// undo history. All state lives in a Session so that concurrent sessions
// (e.g. one per SSH connection) are fully isolated.
package engine

import "fmt"

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4x4 tile matrix. A cell is 0 (empty) or a power of two >= 2.
// The zero value is an empty board.
type Board [BoardSize][BoardSize]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

func checkBounds(x, y int) {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		panic(fmt.Sprintf("engine: cell (%d,%d) out of bounds", x, y))
	}
}

// At returns the value at (x, y). Out-of-bounds access panics: it is a
// programming error, not a recoverable condition.
func (b *Board) At(x, y int) int {
	checkBounds(x, y)
	return b[y][x]
}

// Set writes the value at (x, y). Out-of-bounds access panics.
func (b *Board) Set(x, y, value int) {
	checkBounds(x, y)
	b[y][x] = value
}

// Reset fills all cells with 0.
func (b *Board) Reset() {
	*b = Board{}
}

// EmptyCells returns coordinates of all empty cells.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}
