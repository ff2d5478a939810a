package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Memory)
	if err != nil {
		t.Fatalf("Open(Memory) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreMemoryDoesNotTouchDisk(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	store := openMemory(t)
	if _, err := store.SaveScore(ScoreEntry{GameID: "brawler", Score: 100}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("memory store created %d files", len(entries))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	runs := []ScoreEntry{
		{GameID: "brawler", Score: 100, Kills: 1, Ticks: 600},
		{GameID: "brawler", Score: 50, Kills: 0, Ticks: 120},
		{GameID: "brawler", Score: 300, Kills: 3, Ticks: 4000},
		{GameID: "other", Score: 900},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("brawler", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted: %d, %d, %d", scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].Kills != 3 || scores[0].Ticks != 4000 {
		t.Errorf("Run details lost: kills=%d ticks=%d", scores[0].Kills, scores[0].Ticks)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
	if age := time.Since(scores[0].CreatedAt); age < -time.Minute || age > time.Hour {
		t.Errorf("CreatedAt = %v, expected about now", scores[0].CreatedAt)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"rfc3339", "2026-03-14T15:09:26Z", want},
		{"sqlite text", "2026-03-14 15:09:26", want},
		{"bytes", []byte("2026-03-14 15:09:26"), want},
		{"garbage", "yesterday", time.Time{}},
		{"null", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openMemory(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := store.SaveScore(ScoreEntry{GameID: "brawler", Score: 100})
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		ids = append(ids, id)
	}

	scores, err := store.TopScores("brawler", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, s := range scores {
		if s.ID != ids[i] {
			t.Errorf("tie %d: expected id %d, got %d", i, ids[i], s.ID)
		}
	}
}

func TestStoreRecent(t *testing.T) {
	store := openMemory(t)

	for _, score := range []int{10, 30, 20} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "brawler", Score: score}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	recent, err := store.Recent("brawler", 2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 30 {
		t.Errorf("unexpected recent runs: %+v", recent)
	}
}

func TestStoreHighScoreAndCount(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore("brawler")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, score := range []int{200, 700, 400} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "brawler", Score: score}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("brawler")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected high score 700, got %d", high)
	}

	n, err := store.Count("brawler")
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 runs, got %d", n)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openMemory(t)

	store.SaveScore(ScoreEntry{GameID: "brawler", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 100})

	if err := store.ClearScores("brawler"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if n, _ := store.Count("brawler"); n != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", n)
	}
	if n, _ := store.Count("other"); n != 1 {
		t.Errorf("Other game's runs should survive, got %d", n)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.brawler/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".brawler", "scores.db")); err != nil {
		t.Errorf("expected db under HOME: %v", err)
	}
}
