package snake

// Event is a discrete notification derived from two consecutive states.
type Event int

const (
	EventStart Event = iota
	EventPause
	EventResume
	EventEat
	EventPowerUp
	EventLevelUp
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventEat:
		return "eat"
	case EventPowerUp:
		return "powerup"
	case EventLevelUp:
		return "levelup"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// DiffEvents lists what happened between prev and next, in a fixed order.
// Observers such as the audio player subscribe to these instead of the engine
// calling into them.
func DiffEvents(prev, next GameState) []Event {
	var events []Event

	switch {
	case next.Status == StatusPlaying && prev.Status == StatusPaused:
		events = append(events, EventResume)
	case next.Status == StatusPlaying && prev.Status != StatusPlaying:
		events = append(events, EventStart)
	case next.Status == StatusPaused && prev.Status == StatusPlaying:
		events = append(events, EventPause)
	}

	// A start resets the counters; only compare within one round.
	sameRound := prev.Status == StatusPlaying || prev.Status == StatusPaused
	if sameRound && next.Status != StatusMenu {
		if next.FoodEaten > prev.FoodEaten {
			events = append(events, EventEat)
		}
		if next.PowerUpsCollected > prev.PowerUpsCollected {
			events = append(events, EventPowerUp)
		}
		if next.Level > prev.Level {
			events = append(events, EventLevelUp)
		}
	}

	if next.Status == StatusGameOver && prev.Status != StatusGameOver {
		events = append(events, EventGameOver)
	}
	return events
}
