package audio

import "github.com/vovakirdan/retro-snake/internal/games/snake"

// MusicCue tells the player what to do with the background loop.
type MusicCue int

const (
	MusicKeep MusicCue = iota
	MusicStart
	MusicStop
)

// Cues maps the events of one transition to a music cue and the jingles to
// play, in order. status is the state after the transition.
//
// A level up covers the eat jingle of the same tick.
func Cues(events []snake.Event, status snake.Status) (MusicCue, []Sound) {
	cue := MusicKeep
	var sounds []Sound
	var ate, levelled, over bool

	for _, e := range events {
		switch e {
		case snake.EventStart, snake.EventResume:
			cue = MusicStart
		case snake.EventPause:
			cue = MusicStop
		case snake.EventEat:
			ate = true
		case snake.EventLevelUp:
			levelled = true
		case snake.EventPowerUp:
			sounds = append(sounds, SoundPowerUp)
		case snake.EventGameOver:
			cue = MusicStop
			over = true
		}
	}

	switch {
	case levelled:
		sounds = append([]Sound{SoundLevelUp}, sounds...)
	case ate:
		sounds = append([]Sound{SoundEat}, sounds...)
	}
	if over {
		sounds = append(sounds, SoundGameOver)
	}
	if status == snake.StatusMenu {
		cue = MusicStop
	}
	return cue, sounds
}
