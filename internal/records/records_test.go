package records

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/storage"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestBook() (*Book, *storage.MemoryStore) {
	kv := storage.NewMemoryStore()
	b := New(kv, nil)
	b.now = func() time.Time { return fixedNow }
	return b, kv
}

func finished(score, level int, mapID string) snake.GameState {
	return snake.GameState{
		Score:  score,
		Level:  level,
		Status: snake.StatusGameOver,
		Round:  snake.Round{MapID: mapID, Mode: snake.ModeClassic},
	}
}

// failingKV fails every operation.
type failingKV struct{}

var errDisk = errors.New("disk on fire")

func (failingKV) Get(string) (string, bool, error) { return "", false, errDisk }
func (failingKV) Set(string, string) error         { return errDisk }
func (failingKV) Delete(string) error              { return errDisk }

func TestHighscoresEmpty(t *testing.T) {
	b, _ := newTestBook()
	entries, err := b.Highscores()
	if err != nil || len(entries) != 0 {
		t.Errorf("Highscores() = %v, %v", entries, err)
	}
}

func TestAddHighscore(t *testing.T) {
	b, kv := newTestBook()

	for i, score := range []int{50, 200, 120} {
		_, rank, err := b.AddHighscore(fmt.Sprintf("P%d", i), finished(score, 2, "maze"))
		if err != nil {
			t.Fatalf("AddHighscore() failed: %v", err)
		}
		if rank == 0 {
			t.Errorf("score %d should have ranked", score)
		}
	}

	entries, err := b.Highscores()
	if err != nil {
		t.Fatalf("Highscores() failed: %v", err)
	}
	if len(entries) != 3 || entries[0].Score != 200 || entries[1].Score != 120 || entries[2].Score != 50 {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if entries[0].MapID != "maze" || entries[0].Date != "2026-03-01T09:30:00Z" || entries[0].Name != "P1" {
		t.Errorf("entry fields = %+v", entries[0])
	}

	blob, ok, _ := kv.Get(HighscoresKey)
	if !ok || blob == "" {
		t.Error("list was not persisted")
	}
}

func TestAddHighscoreDefaults(t *testing.T) {
	b, _ := newTestBook()

	_, rank, err := b.AddHighscore("", finished(0, 1, "classic"))
	if err != nil || rank != 0 {
		t.Errorf("zero score should not rank: rank %d, err %v", rank, err)
	}

	entries, _, err := b.AddHighscore("", finished(10, 1, "classic"))
	if err != nil {
		t.Fatalf("AddHighscore() failed: %v", err)
	}
	if entries[0].Name != DefaultPlayerName {
		t.Errorf("name = %q, expected %q", entries[0].Name, DefaultPlayerName)
	}
}

func TestHighscoreListIsCapped(t *testing.T) {
	b, _ := newTestBook()
	for i := 1; i <= 12; i++ {
		if _, _, err := b.AddHighscore("P", finished(i*10, 1, "classic")); err != nil {
			t.Fatalf("AddHighscore() failed: %v", err)
		}
	}

	entries, _ := b.Highscores()
	if len(entries) != MaxHighscores {
		t.Fatalf("len = %d, expected %d", len(entries), MaxHighscores)
	}
	if entries[0].Score != 120 || entries[MaxHighscores-1].Score != 30 {
		t.Errorf("kept the wrong entries: first %d last %d", entries[0].Score, entries[MaxHighscores-1].Score)
	}

	// Ties with the last entry do not qualify.
	_, rank, _ := b.AddHighscore("P", finished(30, 1, "classic"))
	if rank != 0 {
		t.Errorf("tie with last place ranked %d", rank)
	}
	_, rank, _ = b.AddHighscore("P", finished(115, 1, "classic"))
	if rank != 2 {
		t.Errorf("rank = %d, expected 2", rank)
	}
}

func TestEqualScoresKeepOlderFirst(t *testing.T) {
	b, _ := newTestBook()
	b.AddHighscore("first", finished(100, 1, "classic"))
	_, rank, _ := b.AddHighscore("second", finished(100, 1, "classic"))

	entries, _ := b.Highscores()
	if entries[0].Name != "first" || entries[1].Name != "second" || rank != 2 {
		t.Errorf("tie order = %q, %q (rank %d)", entries[0].Name, entries[1].Name, rank)
	}
}

func TestIsHighscore(t *testing.T) {
	full := make([]snake.HighscoreEntry, MaxHighscores)
	for i := range full {
		full[i] = snake.HighscoreEntry{Score: 100 - i*5}
	}

	tests := []struct {
		name    string
		entries []snake.HighscoreEntry
		score   int
		want    bool
	}{
		{"empty list, zero", nil, 0, false},
		{"empty list, positive", nil, 1, true},
		{"full list, below last", full, 40, false},
		{"full list, equal to last", full, 55, false},
		{"full list, above last", full, 56, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHighscore(tt.entries, tt.score); got != tt.want {
				t.Errorf("IsHighscore(%d) = %v, expected %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestCorruptBlobsCountAsEmpty(t *testing.T) {
	b, kv := newTestBook()
	kv.Set(HighscoresKey, "{not json")
	kv.Set(DailyKey("2026-03-01"), "[]")

	entries, err := b.Highscores()
	if err != nil || len(entries) != 0 {
		t.Errorf("corrupt list: %v, %v", entries, err)
	}
	rec, err := b.DailyRecord("2026-03-01")
	if err != nil || rec != nil {
		t.Errorf("corrupt daily record: %+v, %v", rec, err)
	}

	// A corrupt list is replaced by the next save.
	if _, _, err := b.AddHighscore("P", finished(10, 1, "classic")); err != nil {
		t.Fatalf("AddHighscore() failed: %v", err)
	}
	if entries, _ := b.Highscores(); len(entries) != 1 {
		t.Errorf("len = %d after recovery", len(entries))
	}
}

func TestClearHighscores(t *testing.T) {
	b, _ := newTestBook()
	b.AddHighscore("P", finished(10, 1, "classic"))
	if err := b.ClearHighscores(); err != nil {
		t.Fatalf("ClearHighscores() failed: %v", err)
	}
	if entries, _ := b.Highscores(); len(entries) != 0 {
		t.Errorf("list not cleared: %v", entries)
	}
}

func TestDailyRecords(t *testing.T) {
	b, _ := newTestBook()

	rec, err := b.DailyRecord("2026-03-01")
	if err != nil || rec != nil {
		t.Fatalf("fresh DailyRecord = %+v, %v", rec, err)
	}

	b.RecordDailyRun("2026-03-01", 80, 2)
	b.RecordDailyRun("2026-03-01", 40, 3)
	got, err := b.RecordDailyRun("2026-03-01", 60, 1)
	if err != nil {
		t.Fatalf("RecordDailyRun() failed: %v", err)
	}
	want := snake.DailyChallengeRecord{Date: "2026-03-01", Score: 80, Level: 3, Attempts: 3}
	if got != want {
		t.Errorf("record = %+v, expected %+v", got, want)
	}

	// Another date starts over.
	other, _ := b.RecordDailyRun("2026-03-02", 5, 1)
	if other.Attempts != 1 {
		t.Errorf("new date attempts = %d", other.Attempts)
	}
	stored, _ := b.DailyRecord("2026-03-01")
	if stored == nil || *stored != want {
		t.Errorf("stored record = %+v", stored)
	}
}

func TestDailyRecordUnderWrongKey(t *testing.T) {
	b, kv := newTestBook()
	kv.Set(DailyKey("2026-03-01"), `{"date":"2026-02-28","score":900,"level":9,"attempts":4}`)

	rec, err := b.DailyRecord("2026-03-01")
	if err != nil || rec != nil {
		t.Errorf("mismatched record should be ignored: %+v, %v", rec, err)
	}
}

func TestStoreFailuresAreReturned(t *testing.T) {
	b := New(failingKV{}, nil)

	if _, err := b.Highscores(); !errors.Is(err, errDisk) {
		t.Errorf("Highscores() error = %v", err)
	}
	if _, _, err := b.AddHighscore("P", finished(10, 1, "classic")); !errors.Is(err, errDisk) {
		t.Errorf("AddHighscore() error = %v", err)
	}
	if err := b.ClearHighscores(); !errors.Is(err, errDisk) {
		t.Errorf("ClearHighscores() error = %v", err)
	}
	if _, err := b.RecordDailyRun("2026-03-01", 1, 1); !errors.Is(err, errDisk) {
		t.Errorf("RecordDailyRun() error = %v", err)
	}
}
