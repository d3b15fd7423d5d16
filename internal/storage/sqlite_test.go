package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game key is isolated
	if _, err := store.SaveScore("2048_practice", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048", (i+1)*100)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore with no rows = %d, want 0", high)
	}

	store.SaveScore("2048", 128)
	store.SaveScore("2048", 512)
	store.SaveScore("2048", 64)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 512 {
		t.Errorf("HighScore = %d, want 512", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("other", 200)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("ClearScores should not touch other games, got %d rows", len(others))
	}
}

func TestBestScoreUpsertOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	// No record yet
	best, err := store.BestScore("2048")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore with no record = %d, want 0", best)
	}

	if err := store.UpdateBestScore("2048", 100); err != nil {
		t.Fatalf("UpdateBestScore() failed: %v", err)
	}

	// A lower value must not overwrite
	if err := store.UpdateBestScore("2048", 40); err != nil {
		t.Fatalf("UpdateBestScore() failed: %v", err)
	}

	best, _ = store.BestScore("2048")
	if best != 100 {
		t.Errorf("BestScore after stale write = %d, want 100", best)
	}

	// A higher value raises it
	if err := store.UpdateBestScore("2048", 250); err != nil {
		t.Fatalf("UpdateBestScore() failed: %v", err)
	}

	best, _ = store.BestScore("2048")
	if best != 250 {
		t.Errorf("BestScore after raise = %d, want 250", best)
	}
}

func TestBestKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)
	keeper := NewBestKeeper(store, "2048", nil)

	best, err := keeper.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Load with empty store = %d, want 0", best)
	}

	if err := keeper.Save(300); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	best, err = keeper.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Load after Save = %d, want 300", best)
	}
}

func TestBestKeeperNilStore(t *testing.T) {
	keeper := NewBestKeeper(nil, "2048", nil)

	best, err := keeper.Load()
	if err != nil || best != 0 {
		t.Errorf("nil-store Load = (%d, %v), want (0, nil)", best, err)
	}

	if err := keeper.Save(100); err != nil {
		t.Errorf("nil-store Save should be a no-op, got %v", err)
	}
}
