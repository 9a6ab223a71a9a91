// Package audio plays the 8-bit soundtrack: a looping background melody and
// short jingles for game events. It listens to state changes instead of
// being called by the engine.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 100 * time.Millisecond
)

// Sound identifies a one-shot jingle.
type Sound int

const (
	SoundEat Sound = iota
	SoundPowerUp
	SoundLevelUp
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundPowerUp:
		return "powerup"
	case SoundLevelUp:
		return "levelup"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Config controls the player.
type Config struct {
	Enabled bool
	Volume  float64 // Master volume, 0-1
}

// Player owns the speaker. A Player that failed to initialize, or was
// created disabled, accepts every call and stays silent.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	logger      *log.Logger
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Init before anything is audible.
func NewPlayer(cfg Config, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Player{
		cfg:    cfg,
		logger: logger,
		mixer:  mixer,
		master: newVolume(mixer, cfg.Volume),
	}
}

// Init opens the audio device. On error the player keeps working silently.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}
	speaker.Play(p.master)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate), "volume", p.cfg.Volume)
	return nil
}

// Close stops all sound and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// StartMusic starts the background loop from the top unless it is already running.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: newSequencer(sampleRate, bgmMelody, true)}
	p.add(p.music)
}

// StopMusic stops the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	// A nil streamer makes the mixer drop the ctrl on its next pass.
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// Play starts a jingle on top of whatever is playing. Muted players skip it.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	notes, ok := jingles[s]
	if !p.initialized || p.muted || !ok {
		return
	}
	p.add(newSequencer(sampleRate, notes, false))
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	silent := p.muted || p.cfg.Volume <= 0
	if !p.initialized {
		p.master.Silent = silent
		return p.muted
	}
	speaker.Lock()
	p.master.Silent = silent
	speaker.Unlock()
	return p.muted
}

// Muted reports the mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// MusicPlaying reports whether the background loop is running.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil
}

// Observe reacts to the transition from prev to next.
func (p *Player) Observe(prev, next snake.GameState) {
	cue, sounds := Cues(snake.DiffEvents(prev, next), next.Status)
	switch cue {
	case MusicStart:
		p.StartMusic()
	case MusicStop:
		p.StopMusic()
	}
	for _, s := range sounds {
		p.Play(s)
	}
}

// add puts s on the mixer. Caller holds p.mu.
func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// newVolume wraps s in a gain stage; vol is linear 0-1.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
