package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun("alice", "normal", 42, time.Second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	high, err := b.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second store sees high score %d, expected an empty board", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		player string
		score  int
	}{
		{"alice", 100},
		{"bob", 50},
		{"alice", 200},
	}
	ids := make(map[string]bool)
	for _, r := range runs {
		id, err := store.SaveRun(r.player, "normal", r.score, 3*time.Second)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("run id %q is not a UUID: %v", id, err)
		}
		ids[id] = true
	}
	if len(ids) != len(runs) {
		t.Errorf("expected %d distinct run ids, got %d", len(runs), len(ids))
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("run %d: score = %d, expected %d", i, top[i].Score, w)
		}
	}
	if top[0].Player != "alice" || top[0].DurationMs != 3000 || top[0].Difficulty != "normal" {
		t.Errorf("top run = %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun("p", "easy", i*10, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit limit", 5, 5},
		{"zero defaults to ten", 0, 10},
		{"more than stored", 50, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			top, err := store.TopRuns(tc.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(top) != tc.want {
				t.Errorf("got %d runs, expected %d", len(top), tc.want)
			}
			if len(top) > 0 && top[0].Score != 140 {
				t.Errorf("highest score = %d, expected 140", top[0].Score)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty board, got %d", high)
	}

	for _, score := range []int{100, 500, 200} {
		if _, err := store.SaveRun("p", "normal", score, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun("p", "normal", -1, 0); err == nil {
		t.Error("expected an error for a negative score")
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("carol", "hard", 77, 1500*time.Millisecond)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 77 || run.Player != "carol" || run.DurationMs != 1500 {
		t.Errorf("run = %+v", run)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []int{10, 20, 60} {
		if _, err := store.SaveRun("p", "normal", score, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 60 || stats.TotalScore != 90 || stats.AvgScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("p", "normal", 100, 0); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}
