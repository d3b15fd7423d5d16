package engine

import "fmt"

// slideLine compacts and merges a single line toward index 0.
// Compaction first drops zeros while preserving order, then a single
// left-to-right pass merges adjacent equal pairs. A merged tile is consumed
// and never merges again in the same move, so [4,4,8] becomes [8,8], not [16].
// Returns the updated line and the score gained from merges.
func slideLine(line [BoardSize]int) (result [BoardSize]int, gained int) {
	dense := make([]int, 0, BoardSize)
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	writePos := 0
	for i := 0; i < len(dense); {
		if i+1 < len(dense) && dense[i] == dense[i+1] {
			merged := dense[i] * 2
			result[writePos] = merged
			gained += merged
			i += 2
		} else {
			result[writePos] = dense[i]
			i++
		}
		writePos++
	}

	return result, gained
}

// reverseLine reverses a line.
func reverseLine(line [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = line[BoardSize-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// SlideLeft slides all tiles left and merges.
// Returns the new board, score gained, and whether the board changed.
// A line counts as changed when any position differs from its pre-move
// value, so a compaction-only shift with no merge is still a move.
func SlideLeft(board Board) (Board, int, bool) {
	var newBoard Board
	totalGained := 0
	changed := false

	for y := range BoardSize {
		row := board[y]
		newRow, gained := slideLine(row)
		newBoard[y] = newRow
		totalGained += gained

		if row != newRow {
			changed = true
		}
	}

	return newBoard, totalGained, changed
}

// SlideRight slides all tiles right and merges.
func SlideRight(board Board) (Board, int, bool) {
	var newBoard Board
	totalGained := 0
	changed := false

	for y := range BoardSize {
		// Reverse, slide left, reverse back
		newRow, gained := slideLine(reverseLine(board[y]))
		newBoard[y] = reverseLine(newRow)
		totalGained += gained

		if board[y] != newBoard[y] {
			changed = true
		}
	}

	return newBoard, totalGained, changed
}

// SlideUp slides all tiles up and merges.
func SlideUp(board Board) (Board, int, bool) {
	// Transpose, slide left, transpose back
	slid, gained, changed := SlideLeft(transpose(board))
	return transpose(slid), gained, changed
}

// SlideDown slides all tiles down and merges.
func SlideDown(board Board) (Board, int, bool) {
	// Transpose, slide right, transpose back
	slid, gained, changed := SlideRight(transpose(board))
	return transpose(slid), gained, changed
}

// Slide performs a move in the given direction.
// Returns the new board, score gained, and whether the board changed.
// An invalid direction is a programming error and panics.
func Slide(board Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return SlideLeft(board)
	case DirRight:
		return SlideRight(board)
	case DirUp:
		return SlideUp(board)
	case DirDown:
		return SlideDown(board)
	default:
		panic(fmt.Sprintf("engine: invalid direction %v", dir))
	}
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
// Only right and down neighbors are checked; the mirror directions
// would revisit the same pairs.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
// Correct on any board: a non-full board trivially has a move.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}
