package storage

import (
	"github.com/charmbracelet/log"

	"github.com/mkruglov/twenty48/internal/engine"
)

// BestKeeper adapts a Store to the engine's BestStore contract for one game
// key. Writes are best-effort: failures are logged and swallowed so that a
// broken database never reaches the play flow.
type BestKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestKeeper creates a best-score adapter for the given game key.
// A nil store yields a keeper that reports best=0 and drops writes.
func NewBestKeeper(store *Store, gameID string, logger *log.Logger) *BestKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &BestKeeper{
		store:  store,
		gameID: gameID,
		logger: logger,
	}
}

// Load implements engine.BestStore.
func (k *BestKeeper) Load() (int, error) {
	if k.store == nil {
		return 0, nil
	}
	return k.store.BestScore(k.gameID)
}

// Save implements engine.BestStore. Errors are logged, never returned.
func (k *BestKeeper) Save(score int) error {
	if k.store == nil {
		return nil
	}
	if err := k.store.UpdateBestScore(k.gameID, score); err != nil {
		k.logger.Warn("could not persist best score", "game", k.gameID, "error", err)
	}
	return nil
}

var _ engine.BestStore = (*BestKeeper)(nil)
