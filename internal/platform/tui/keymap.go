package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return core.ActionQuit, true
	case "up", "w", "W":
		return core.ActionUp, false
	case "down", "s", "S":
		return core.ActionDown, false
	case "left", "a", "A":
		return core.ActionLeft, false
	case "right", "d", "D":
		return core.ActionRight, false
	case " ", "p", "P":
		return core.ActionPause, false
	case "enter":
		return core.ActionStart, false
	case "esc", "b", "B":
		return core.ActionBack, false
	case "tab":
		return core.ActionNextMap, false
	case "shift+tab":
		return core.ActionPrevMap, false
	case "g", "G":
		return core.ActionNextMode, false
	case "n", "N":
		return core.ActionMute, false
	case "h", "H":
		return core.ActionScores, false
	}
	return core.ActionNone, false
}

// directionFor converts a movement action to a snake direction.
func directionFor(a core.Action) (snake.Direction, bool) {
	if !a.IsDirection() {
		return 0, false
	}
	dirs := [...]snake.Direction{snake.DirUp, snake.DirDown, snake.DirLeft, snake.DirRight}
	return dirs[a-core.ActionUp], true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l", "tab":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
