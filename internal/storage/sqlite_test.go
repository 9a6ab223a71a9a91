package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// kv is the surface shared by Store and MemoryStore.
type kv interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestKeyValue(t *testing.T) {
	stores := map[string]kv{
		"sqlite": openTestStore(t),
		"memory": NewMemoryStore(),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.Get("missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
			}

			if err := store.Set("snake_retro_highscores", "[]"); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			if err := store.Set("snake_retro_highscores", `[{"name":"ANN"}]`); err != nil {
				t.Fatalf("Set() overwrite failed: %v", err)
			}
			got, ok, err := store.Get("snake_retro_highscores")
			if err != nil || !ok || got != `[{"name":"ANN"}]` {
				t.Errorf("Get() = %q, %v, %v", got, ok, err)
			}

			// Arbitrary UTF-8 survives the round trip.
			blob := "снейк ★ 🐍"
			if err := store.Set("utf8", blob); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			if got, _, _ := store.Get("utf8"); got != blob {
				t.Errorf("utf8 blob = %q", got)
			}

			if err := store.Delete("utf8"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, ok, _ := store.Get("utf8"); ok {
				t.Error("key still present after Delete")
			}
			if err := store.Delete("utf8"); err != nil {
				t.Errorf("Delete() of absent key failed: %v", err)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	stores := map[string]kv{
		"sqlite": openTestStore(t),
		"memory": NewMemoryStore(),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"daily:2026-03-02", "other", "daily:2026-03-01"} {
				if err := store.Set(k, "{}"); err != nil {
					t.Fatalf("Set(%q) failed: %v", k, err)
				}
			}
			keys, err := store.Keys("daily:")
			if err != nil {
				t.Fatalf("Keys() failed: %v", err)
			}
			want := []string{"daily:2026-03-01", "daily:2026-03-02"}
			if !reflect.DeepEqual(keys, want) {
				t.Errorf("Keys() = %v, expected %v", keys, want)
			}
		})
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if got, ok, _ := store.Get("k"); !ok || got != "v" {
		t.Errorf("Get() after reopen = %q, %v", got, ok)
	}
}

func TestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{MapID: "classic", Mode: "classic", Score: 100, Level: 2, Duration: 30 * time.Second},
		{MapID: "classic", Mode: "timed", Score: 50, Level: 1, Duration: 2 * time.Minute},
		{MapID: "classic", Mode: "fog", Score: 200, Level: 4, Duration: 45 * time.Second},
		{MapID: "maze", Mode: "classic", Score: 500, Level: 6, Duration: time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("runs not sorted by score: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[2].Duration != 2*time.Minute || top[2].Mode != "timed" {
		t.Errorf("run fields lost: %+v", top[2])
	}

	all, err := store.TopRuns("", 2)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 2 || all[0].MapID != "maze" {
		t.Errorf("TopRuns(all) = %+v", all)
	}

	stats, err := store.RunStats("classic")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Games != 3 || stats.HighScore != 200 || stats.TotalScore != 350 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	stats, err = store.RunStats("")
	if err != nil {
		t.Fatalf("RunStats(all) failed: %v", err)
	}
	if stats.Games != 1 || stats.HighScore != 500 {
		t.Errorf("stats after clear = %+v", stats)
	}
}

func TestRunStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.RunStats("arena")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Games != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.snake-retro/snake.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".snake-retro", "snake.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
