package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/records"
	"github.com/vovakirdan/retro-snake/internal/storage"
)

func TestBoards(t *testing.T) {
	bs := boards()
	if len(bs) != len(snake.MapIDs())+1 {
		t.Fatalf("got %d boards", len(bs))
	}
	if bs[0].MapID != "" || bs[0].Title != "Highscores" {
		t.Errorf("first board = %+v", bs[0])
	}
	if last := bs[len(bs)-1]; last.MapID != snake.DailyMapID || last.Title != "Daily" {
		t.Errorf("last board = %+v", last)
	}
}

func TestScoreboardRows(t *testing.T) {
	book := records.New(storage.NewMemoryStore(), nil)
	book.AddHighscore("Ada", snake.GameState{Score: 90, Level: 3, Round: snake.Round{MapID: "maze"}})
	book.AddHighscore("Bob", snake.GameState{Score: 40, Level: 1, Round: snake.Round{MapID: "classic"}})

	history := &fakeHistory{runs: []storage.Run{
		{MapID: "maze", Mode: "fog", Score: 70, Level: 2, CreatedAt: time.Now()},
		{MapID: "classic", Mode: "classic", Score: 10, Level: 1, CreatedAt: time.Now()},
	}}

	m := NewScoreboardModel(book, history, 100, 30)
	if len(m.rows) != 2 || m.rows[0][1] != "Ada" || m.rows[0][2] != "90" {
		t.Fatalf("highscore rows = %v", m.rows)
	}

	// Tab twice: classic, then maze history.
	for range 2 {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(ScoreboardModel)
	}
	if len(m.rows) != 1 || m.rows[0][1] != "fog" || m.rows[0][2] != "70" {
		t.Errorf("maze rows = %v", m.rows)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(ScoreboardModel)
	if m.boards[m.cursor].MapID != "classic" {
		t.Errorf("board = %+v", m.boards[m.cursor])
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	m := NewScoreboardModel(nil, &fakeHistory{err: errors.New("locked")}, 60, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty highscores should show a placeholder")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load errors should be shown")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 24)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("standalone scoreboard should exit on Esc")
	}

	m = NewScoreboardModel(nil, nil, 60, 24)
	m.embedded = true
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ScoreboardModel)
	if !m.IsGoingBack() || cmd != nil {
		t.Error("embedded scoreboard should hand control back without quitting")
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("not a date"); got != "not a date" {
		t.Errorf("formatDate kept %q", got)
	}
	stamp := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	if got, want := formatDate(stamp.Format(time.RFC3339)), stamp.Local().Format("Jan 02 15:04"); got != want {
		t.Errorf("formatDate = %q, expected %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Highscores", 6); got != "Highs." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Maze", 6); got != "Maze" {
		t.Errorf("truncate = %q", got)
	}
}
