package engine

import (
	"math/rand"
	"time"
)

// BestStore persists the best score across sessions. Implementations must
// tolerate being called on the hot path: Save failures are swallowed by the
// session (best-effort persistence must never block or fail a move).
type BestStore interface {
	// Load returns the stored best score, or 0 if none is recorded.
	Load() (int, error)

	// Save records a new best score.
	Save(score int) error
}

// Rules holds the tunable parameters of a session.
type Rules struct {
	// Spawn4Prob is the probability that a spawned tile is a 4 instead of a 2.
	Spawn4Prob float64

	// InitialTiles is the number of tiles spawned on a new game.
	InitialTiles int

	// HistoryLimit is the undo buffer capacity.
	HistoryLimit int

	// WinTile is the tile value that marks the game as won.
	WinTile int
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		Spawn4Prob:   0.10,
		InitialTiles: 2,
		HistoryLimit: DefaultHistoryLimit,
		WinTile:      2048,
	}
}

// Session owns the state of one running game: board, score, best score and
// undo history. A session has exactly one actor; it is not safe for
// concurrent use and is not meant to be shared.
type Session struct {
	rules Rules
	rng   *rand.Rand
	best  BestStore

	board    Board
	score    int
	bestVal  int
	hist     *history
	gameOver bool
	won      bool
}

// NewSession creates a session with the given rules, RNG and best-score
// store, and starts the first game. A nil rng falls back to a time-based
// seed. A nil or unreadable store degrades to best=0.
func NewSession(rules Rules, rng *rand.Rand, best BestStore) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		rules: rules,
		rng:   rng,
		best:  best,
	}

	if best != nil {
		if v, err := best.Load(); err == nil && v > 0 {
			s.bestVal = v
		}
	}

	s.NewGame()
	return s
}

// MoveResult reports the outcome of a Move call.
type MoveResult struct {
	Moved    bool // false when the move was a no-op
	Gained   int  // score gained by merges in this move
	Score    int
	Best     int
	GameOver bool
	Won      bool
}

// Move performs a directional move. A direction with no legal effect is a
// silent no-op: the board, score and history are left untouched, no tile is
// spawned and the move does not count as a turn.
func (s *Session) Move(dir Direction) MoveResult {
	prev := snapshot{board: s.board, score: s.score}

	newBoard, gained, changed := Slide(s.board, dir)
	if !changed {
		return s.result(false, 0)
	}

	s.hist.push(prev)
	s.board = newBoard
	s.score += gained

	if s.score > s.bestVal {
		s.bestVal = s.score
		if s.best != nil {
			// Fire-and-forget: a failing store must not fail the move.
			_ = s.best.Save(s.bestVal)
		}
	}

	s.spawnTile()

	if !s.won && s.rules.WinTile > 0 && s.board.MaxTile() >= s.rules.WinTile {
		s.won = true
	}
	s.gameOver = !CanMove(s.board)

	return s.result(true, gained)
}

// Undo restores the board and score from the most recent history entry.
// Returns false when there is nothing to undo. The best score is monotonic
// and is never rolled back.
func (s *Session) Undo() bool {
	snap, ok := s.hist.pop()
	if !ok {
		return false
	}

	s.board = snap.board
	s.score = snap.score
	s.gameOver = !CanMove(s.board)
	s.won = s.rules.WinTile > 0 && s.board.MaxTile() >= s.rules.WinTile
	return true
}

// NewGame resets board, score and history, then spawns the initial tiles.
func (s *Session) NewGame() {
	s.board.Reset()
	s.score = 0
	s.hist = newHistory(s.rules.HistoryLimit)
	s.gameOver = false
	s.won = false

	for range s.rules.InitialTiles {
		s.spawnTile()
	}
}

// spawnTile places a 2 (or, with Spawn4Prob, a 4) in a random empty cell.
// A full board is a valid no-op.
func (s *Session) spawnTile() {
	empty := s.board.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.rules.Spawn4Prob {
		value = 4
	}

	s.board[cell.Y][cell.X] = value
}

// State is a read-only view of the session, consumed by rendering and
// reporting collaborators after every mutating call.
type State struct {
	Board    Board
	Score    int
	Best     int
	GameOver bool
	Won      bool
}

// State returns the current session state. The board is a copy.
func (s *Session) State() State {
	return State{
		Board:    s.board,
		Score:    s.score,
		Best:     s.bestVal,
		GameOver: s.gameOver,
		Won:      s.won,
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen so far, across sessions.
func (s *Session) Best() int { return s.bestVal }

// GameOver reports whether no further move is possible.
func (s *Session) GameOver() bool { return s.gameOver }

// HistoryLen returns the number of undoable moves.
func (s *Session) HistoryLen() int { return s.hist.len() }

func (s *Session) result(moved bool, gained int) MoveResult {
	return MoveResult{
		Moved:    moved,
		Gained:   gained,
		Score:    s.score,
		Best:     s.bestVal,
		GameOver: s.gameOver,
		Won:      s.won,
	}
}
