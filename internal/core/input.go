package core

// Action represents a semantic command, abstracted from physical key presses.
// The input layer debounces and translates device input into these.
type Action int

// Default bindings: arrows/WASD move, Space/P pause, Enter start, Esc/B back,
// Tab/Shift+Tab cycle maps, G cycles modes, N mutes, H shows scores, Q quits.
const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionStart
	ActionBack
	ActionNextMap
	ActionPrevMap
	ActionNextMode
	ActionMute
	ActionScores
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionNextMap:
		return "NextMap"
	case ActionPrevMap:
		return "PrevMap"
	case ActionNextMode:
		return "NextMode"
	case ActionMute:
		return "Mute"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}
