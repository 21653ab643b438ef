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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("flappy", "hard", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("flappy", "hard")
	if err != nil || high != 7 {
		t.Errorf("HighScore() = %d, %v after reopen, expected 7", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		mode  string
		score int
	}{
		{"medium", 10},
		{"medium", 5},
		{"medium", 20},
		{"hard", 50},
	} {
		if _, err := store.SaveScore("flappy", s.mode, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("flappy", "medium", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 medium scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Mode != "medium" || scores[0].GameID != "flappy" {
		t.Errorf("Entry = %+v, expected flappy/medium", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	all, err := store.TopScores("flappy", AnyMode, 10)
	if err != nil {
		t.Fatalf("TopScores(AnyMode) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 50 || all[0].Mode != "hard" {
		t.Errorf("TopScores(AnyMode) = %v, expected hard 50 first of 4", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "easy", (i+1)*100)
	}

	scores, err := store.TopScores("test", "easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy", "medium")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("flappy", "medium", 1)
	store.SaveScore("flappy", "medium", 3)
	store.SaveScore("flappy", "nightmare", 9)

	tests := []struct {
		mode string
		want int
	}{
		{"medium", 3},
		{"nightmare", 9},
		{"easy", 0},
		{AnyMode, 9},
	}
	for _, tc := range tests {
		high, err := store.HighScore("flappy", tc.mode)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tc.mode, err)
		}
		if high != tc.want {
			t.Errorf("HighScore(%q) = %d, expected %d", tc.mode, high, tc.want)
		}
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("flappy", "easy", -1); err == nil {
		t.Error("SaveScore() with a negative score should fail")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", "easy", 1)
	store.SaveScore("flappy", "hard", 2)
	store.SaveScore("other", "easy", 3)

	if err := store.ClearScores("flappy", "easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore("flappy", "easy"); high != 0 {
		t.Errorf("easy scores should be cleared, high = %d", high)
	}
	if high, _ := store.HighScore("flappy", "hard"); high != 2 {
		t.Errorf("hard scores should survive, high = %d", high)
	}

	if err := store.ClearScores("flappy", AnyMode); err != nil {
		t.Fatalf("ClearScores(AnyMode) failed: %v", err)
	}
	if scores, _ := store.TopScores("flappy", AnyMode, 10); len(scores) != 0 {
		t.Errorf("Expected no flappy scores, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", AnyMode, 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing flappy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", "medium", 2)
	store.SaveScore("flappy", "medium", 4)
	store.SaveScore("flappy", "easy", 10)

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(stats))
	}

	easy, medium := stats[0], stats[1]
	if easy.Mode != "easy" || easy.GamesCount != 1 || easy.HighScore != 10 {
		t.Errorf("easy stats = %+v", easy)
	}
	if medium.Mode != "medium" || medium.GamesCount != 2 || medium.HighScore != 4 || medium.AvgScore != 3 {
		t.Errorf("medium stats = %+v", medium)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
