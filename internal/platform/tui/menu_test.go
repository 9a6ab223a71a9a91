package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(MenuModel)
}

func TestMenuStartsOnInitialSelection(t *testing.T) {
	m := NewMenuModel(Selection{MapID: "cave", Mode: snake.ModeFog}, "2026-03-01", 80, 24)

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil || sel.MapID != "cave" || sel.Mode != snake.ModeFog {
		t.Errorf("selection = %+v", sel)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(Selection{}, "2026-03-01", 80, 24)

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp}) // Clamped at the top
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft}) // Wraps to the last mode
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.MapID != "maze" || sel.Mode != snake.ModeFog {
		t.Errorf("selection = %+v", sel)
	}
}

func TestMenuListsDailyMap(t *testing.T) {
	m := NewMenuModel(Selection{}, "2026-03-01", 100, 30)

	view := m.View()
	if !strings.Contains(view, "Daily Challenge 2026-03-01") {
		t.Error("daily map missing from the menu")
	}
	if !strings.Contains(view, "Classic") {
		t.Error("mode name missing from the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(Selection{}, "2026-03-01", 80, 24)

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || m.Selected() != nil || m.View() != "" {
		t.Error("Esc should leave without a selection")
	}
}
