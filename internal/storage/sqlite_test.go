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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 70}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("temple", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected persisted high score 70, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "temple", Mode: "normal", Score: 100, Level: 3, Ticks: 1500},
		{GameID: "temple", Mode: "normal", Score: 50, Level: 2, Ticks: 700},
		{GameID: "temple", Mode: "normal", Score: 200, Level: 4, Ticks: 3100},
		{GameID: "temple", Mode: "hard", Score: 500, Level: 6, Ticks: 9000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("temple", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 normal runs, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 4 || scores[0].Ticks != 3100 || scores[0].Mode != "normal" {
		t.Errorf("run fields not persisted: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}

	all, err := store.TopScores("temple", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("empty mode should match every run, got %+v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"limit 3", 3, 3},
		{"limit larger than rows", 50, 12},
		{"zero defaults to 10", 0, 10},
	}

	store := openTestStore(t)
	for i := 0; i < 12; i++ {
		store.SaveRun(Run{GameID: "temple", Mode: "easy", Score: (i + 1) * 10})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("temple", "easy", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("got %d scores, expected %d", len(scores), tt.want)
			}
			if scores[0].Score != 120 {
				t.Errorf("top score = %d, expected 120", scores[0].Score)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("temple", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 100})
	store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 300})
	store.SaveRun(Run{GameID: "temple", Mode: "easy", Score: 900})

	high, err = store.HighScore("temple", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 100})
	store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 200})
	store.SaveRun(Run{GameID: "temple", Mode: "hard", Score: 300})

	n, err := store.ClearScores("temple", "normal")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rows cleared, got %d", n)
	}

	normal, _ := store.AllScores("temple", "normal")
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}

	hard, _ := store.AllScores("temple", "hard")
	if len(hard) != 1 {
		t.Error("hard runs should not be affected by clearing normal")
	}

	if n, _ := store.ClearScores("temple", ""); n != 1 {
		t.Errorf("clearing every mode removed %d rows, expected 1", n)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "temple", Mode: "fixed", Score: i * 10})
	}

	scores, err := store.AllScores("temple", "fixed")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSummaries(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 40, Level: 2, Ticks: 600})
	store.SaveRun(Run{GameID: "temple", Mode: "normal", Score: 90, Level: 3, Ticks: 1400})
	store.SaveRun(Run{GameID: "temple", Mode: "hard", Score: 10, Level: 3, Ticks: 200})

	sums, err := store.Summaries("temple")
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("Expected 2 modes, got %d", len(sums))
	}

	n := sums["normal"]
	if n == nil {
		t.Fatal("missing normal summary")
	}
	if n.Runs != 2 || n.HighScore != 90 || n.MaxLevel != 3 || n.TotalTicks != 2000 {
		t.Errorf("unexpected normal summary %+v", n)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/nested/deep/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "scores.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}
