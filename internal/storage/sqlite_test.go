package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("stealth", 7) //nolint:errcheck
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("stealth")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("HighScore() = %d after reopen, expected 7", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 5, 20} {
		if _, err := store.SaveScore("stealth", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("stealth", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	expected := []int{20, 10, 5}
	for i, e := range expected {
		if scores[i].Score != e {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, e)
		}
		if scores[i].GameID != "stealth" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not set", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("stealth", (i+1)*3) //nolint:errcheck
	}

	scores, err := store.TopScores("stealth", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	if scores[0].Score != 15 || scores[1].Score != 12 || scores[2].Score != 9 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("stealth", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d entries, expected default limit to cover 5", len(all))
	}
}

func TestStoreUpdateScore(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore("stealth", 3)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.UpdateScore(id, 8); err != nil {
		t.Fatalf("UpdateScore() failed: %v", err)
	}

	scores, _ := store.TopScores("stealth", 10)
	if len(scores) != 1 || scores[0].Score != 8 {
		t.Errorf("TopScores() = %v, expected a single entry with score 8", scores)
	}

	if err := store.UpdateScore(id+100, 1); err == nil {
		t.Error("expected error updating a missing score")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("stealth")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for empty game, expected 0", high)
	}

	store.SaveScore("stealth", 4)  //nolint:errcheck
	store.SaveScore("stealth", 12) //nolint:errcheck
	store.SaveScore("stealth", 9)  //nolint:errcheck

	high, err = store.HighScore("stealth")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("HighScore() = %d, expected 12", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("stealth", 1) //nolint:errcheck
	store.SaveScore("stealth", 2) //nolint:errcheck
	store.SaveScore("other", 3)   //nolint:errcheck

	if err := store.ClearScores("stealth"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("stealth", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other game's scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("stealth")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty store = %+v", empty)
	}

	store.SaveScore("stealth", 3) //nolint:errcheck
	store.SaveScore("stealth", 9) //nolint:errcheck

	stats, err := store.GetGameStats("stealth")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 9 {
		t.Errorf("HighScore = %d, expected 9", stats.HighScore)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, expected 6", stats.AvgScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("TotalScore = %d, expected 12", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
