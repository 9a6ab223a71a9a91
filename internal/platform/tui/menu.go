package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

// Selection is what the picker hands to the game.
type Selection struct {
	MapID string
	Mode  snake.GameMode
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the map and mode picker.
// Up/Down pick a map, Left/Right pick a mode.
type MenuModel struct {
	maps      []snake.MapConfig
	modes     []snake.ModeInfo
	cursor    int
	mode      int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  *Selection
}

// NewMenuModel creates a picker positioned on initial. date is the day
// whose daily map is listed.
func NewMenuModel(initial Selection, date string, width, height int) MenuModel {
	m := MenuModel{
		modes:     snake.Modes(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, id := range snake.MapIDs() {
		m.maps = append(m.maps, snake.ResolveMapOn(id, date))
		if id == initial.MapID {
			m.cursor = i
		}
	}
	for i, info := range m.modes {
		if info.ID == initial.Mode {
			m.mode = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.maps)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.mode = (m.mode - 1 + len(m.modes)) % len(m.modes)
	case MenuActionRight:
		m.mode = (m.mode + 1) % len(m.modes)
	case MenuActionSelect:
		m.selected = &Selection{MapID: m.maps[m.cursor].ID, Mode: m.modes[m.mode].ID}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R E T R O   S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map:", m.width))
	b.WriteString("\n\n")

	for i, mc := range m.maps {
		line := fmt.Sprintf("%-28s %s", mc.Name, snake.DifficultyStars(mc.Difficulty))
		if i == m.cursor {
			b.WriteString(centerText(menuActiveStyle.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.maps[m.cursor].Description), m.width))
	b.WriteString("\n\n")

	mode := m.modes[m.mode]
	b.WriteString(centerText(fmt.Sprintf("Mode: < %s >", mode.Name), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(mode.Description), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Map  |  Left/Right: Mode  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu runs the picker. It returns nil when the user quit.
func RunMenu(initial Selection, width, height int) (*Selection, error) {
	model := NewMenuModel(initial, snake.DateString(time.Now()), width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
