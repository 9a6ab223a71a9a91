// Package records keeps the highscore list and the per-date daily challenge
// records on top of a string key-value store.
//
// Blobs are JSON. A blob that is missing or does not parse counts as no
// record; only failures of the store itself are returned.
package records

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

const (
	// HighscoresKey holds the JSON highscore list.
	HighscoresKey = "snake_retro_highscores"

	// DailyKeyPrefix is followed by the YYYY-MM-DD date of the record.
	DailyKeyPrefix = "snake_retro_daily:"

	// MaxHighscores is the length of the highscore list.
	MaxHighscores = 10

	// DefaultPlayerName is used when a highscore is saved without a name.
	DefaultPlayerName = "Player"
)

// KV is the persistence collaborator: a string-keyed store of text blobs.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Book reads and writes records through a KV.
type Book struct {
	kv     KV
	logger *log.Logger
	now    func() time.Time
}

// New creates a Book. logger may be nil.
func New(kv KV, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Book{kv: kv, logger: logger, now: time.Now}
}

// DailyKey returns the store key of the record for date.
func DailyKey(date string) string {
	return DailyKeyPrefix + date
}

// Highscores returns the list, best first.
func (b *Book) Highscores() ([]snake.HighscoreEntry, error) {
	var entries []snake.HighscoreEntry
	ok, err := b.load(HighscoresKey, &entries)
	if err != nil || !ok {
		return nil, err
	}
	sortEntries(entries)
	if len(entries) > MaxHighscores {
		entries = entries[:MaxHighscores]
	}
	return entries, nil
}

// IsHighscore reports whether score would enter the list.
func IsHighscore(entries []snake.HighscoreEntry, score int) bool {
	if len(entries) < MaxHighscores {
		return score > 0
	}
	return score > entries[len(entries)-1].Score
}

// AddHighscore inserts a finished run if it qualifies. It returns the
// updated list and the 1-based rank of the new entry, or 0 when it did
// not make the list.
func (b *Book) AddHighscore(name string, s snake.GameState) ([]snake.HighscoreEntry, int, error) {
	entries, err := b.Highscores()
	if err != nil {
		return nil, 0, err
	}
	if !IsHighscore(entries, s.Score) {
		return entries, 0, nil
	}
	if name == "" {
		name = DefaultPlayerName
	}

	entry := snake.HighscoreEntry{
		Name:  name,
		Score: s.Score,
		Level: s.Level,
		MapID: s.Round.MapID,
		Date:  b.now().UTC().Format(time.RFC3339),
	}
	entries = append(entries, entry)
	sortEntries(entries)

	rank := 0
	for i := range entries {
		if entries[i] == entry {
			rank = i + 1
		}
	}
	if len(entries) > MaxHighscores {
		entries = entries[:MaxHighscores]
	}
	if rank > MaxHighscores {
		rank = 0
	}

	if err := b.save(HighscoresKey, entries); err != nil {
		return nil, 0, err
	}
	b.logger.Debug("highscore saved", "name", name, "score", s.Score, "rank", rank)
	return entries, rank, nil
}

// ClearHighscores removes the list.
func (b *Book) ClearHighscores() error {
	if err := b.kv.Delete(HighscoresKey); err != nil {
		return fmt.Errorf("records: cannot clear highscores: %w", err)
	}
	return nil
}

// DailyRecord returns the stored record for date, or nil when there is none.
func (b *Book) DailyRecord(date string) (*snake.DailyChallengeRecord, error) {
	var rec snake.DailyChallengeRecord
	ok, err := b.load(DailyKey(date), &rec)
	if err != nil || !ok {
		return nil, err
	}
	if rec.Date != date {
		// A record filed under the wrong key is as good as none.
		return nil, nil
	}
	return &rec, nil
}

// RecordDailyRun merges a finished daily run into the record for date.
func (b *Book) RecordDailyRun(date string, score, level int) (snake.DailyChallengeRecord, error) {
	existing, err := b.DailyRecord(date)
	if err != nil {
		return snake.DailyChallengeRecord{}, err
	}
	rec := snake.MergeDailyRecord(existing, date, score, level)
	if err := b.save(DailyKey(date), rec); err != nil {
		return snake.DailyChallengeRecord{}, err
	}
	return rec, nil
}

// load decodes the blob under key into v. ok is false when the key is
// absent or the blob is corrupt.
func (b *Book) load(key string, v any) (bool, error) {
	blob, ok, err := b.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("records: cannot read %s: %w", key, err)
	}
	if !ok || blob == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(blob), v); err != nil {
		b.logger.Warn("ignoring corrupt record", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (b *Book) save(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("records: cannot encode %s: %w", key, err)
	}
	if err := b.kv.Set(key, string(blob)); err != nil {
		return fmt.Errorf("records: cannot write %s: %w", key, err)
	}
	return nil
}

// sortEntries orders by score, best first. Equal scores keep their order so
// an older entry stays ahead of a newer one.
func sortEntries(entries []snake.HighscoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
