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

func run(pattern string, generations, peak int) RunRecord {
	return RunRecord{
		Seed:            42,
		Width:           32,
		Height:          16,
		Pattern:         pattern,
		Generations:     generations,
		PeakPopulation:  peak,
		FinalPopulation: peak / 2,
		Outcome:         "stable",
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		Seed:            7,
		Width:           64,
		Height:          48,
		Pattern:         "acorn",
		Generations:     5206,
		PeakPopulation:  1057,
		FinalPopulation: 633,
		Outcome:         "limit",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("saved run not found")
	}
	if r.Seed != 7 || r.Width != 64 || r.Height != 48 || r.Pattern != "acorn" {
		t.Errorf("unexpected run identity %+v", r)
	}
	if r.Generations != 5206 || r.PeakPopulation != 1057 || r.FinalPopulation != 633 || r.Outcome != "limit" {
		t.Errorf("unexpected run stats %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}

	missing, err := store.RunByID(id + 100)
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		run("random", 100, 50),
		run("random", 50, 80),
		run("random", 200, 10),
		run("glider", 500, 5),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("random", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 random runs, got %d", len(runs))
	}
	if runs[0].Generations != 200 || runs[1].Generations != 100 || runs[2].Generations != 50 {
		t.Errorf("Runs not ordered by generations: %v", runs)
	}

	all, err := store.TopRuns("", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 2 || all[0].Pattern != "glider" {
		t.Errorf("Expected glider first across all patterns, got %v", all)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(run("random", i, i))
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Same timestamp within the test, so id breaks the tie
	if runs[0].Generations != 5 || runs[2].Generations != 3 {
		t.Errorf("Expected newest first, got %v", runs)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats for empty store, got %d", len(stats))
	}

	store.SaveRun(run("random", 100, 40))
	store.SaveRun(run("random", 300, 90))
	store.SaveRun(run("pulsar", 1000, 48))

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	random := stats["random"]
	if random == nil {
		t.Fatal("missing stats for random")
	}
	if random.Runs != 2 || random.Longest != 300 || random.MaxPeak != 90 {
		t.Errorf("unexpected stats %+v", random)
	}
	if random.AvgGenerations != 200 {
		t.Errorf("Expected average 200, got %v", random.AvgGenerations)
	}
	if stats["pulsar"] == nil || stats["pulsar"].Runs != 1 {
		t.Errorf("unexpected pulsar stats %+v", stats["pulsar"])
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("random", 1, 1))
	store.SaveRun(run("random", 2, 2))
	store.SaveRun(run("glider", 3, 3))

	n, err := store.ClearRuns("random")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 deleted runs, got %d", n)
	}

	left, _ := store.TopRuns("", 10)
	if len(left) != 1 || left[0].Pattern != "glider" {
		t.Errorf("Glider run should survive clearing random, got %v", left)
	}

	if _, err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	left, _ = store.TopRuns("", 10)
	if len(left) != 0 {
		t.Errorf("Expected empty store, got %d runs", len(left))
	}
}
