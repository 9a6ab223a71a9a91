package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Note frequencies in Hz.
const (
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

const (
	beat     = 150 * time.Millisecond
	longBeat = 300 * time.Millisecond

	// Per-note envelope: starts at peakGain and decays exponentially to
	// floorGain over the first 90% of the note.
	peakGain  = 0.3
	floorGain = 0.01
	decayPart = 0.9
)

type note struct {
	freq     float64
	duration time.Duration
}

// bgmMelody is the background loop.
var bgmMelody = []note{
	{noteE4, beat}, {noteG4, beat}, {noteA4, beat}, {noteG4, beat},
	{noteE4, beat}, {noteG4, beat}, {noteA4, longBeat},
	{noteG4, beat}, {noteA4, beat}, {noteB4, beat}, {noteA4, beat},
	{noteG4, beat}, {noteE4, beat}, {noteD4, longBeat},
	{noteE4, beat}, {noteG4, beat}, {noteA4, beat}, {noteG4, beat},
	{noteE4, beat}, {noteD4, beat}, {noteC4, longBeat},
	{noteD4, beat}, {noteE4, beat}, {noteG4, beat}, {noteA4, beat},
	{noteG4, beat}, {noteE4, beat}, {noteG4, longBeat},
}

// jingles holds the one-shot effects.
var jingles = map[Sound][]note{
	SoundEat: {
		{noteC5, 50 * time.Millisecond},
		{noteE5, 50 * time.Millisecond},
	},
	SoundPowerUp: {
		{noteC5, 100 * time.Millisecond},
		{noteE5, 100 * time.Millisecond},
		{noteG5, 100 * time.Millisecond},
	},
	SoundLevelUp: {
		{noteC5, 100 * time.Millisecond},
		{noteE5, 100 * time.Millisecond},
		{noteG5, 100 * time.Millisecond},
		{noteC5, 200 * time.Millisecond},
	},
	SoundGameOver: {
		{noteE4, 200 * time.Millisecond},
		{noteD4, 200 * time.Millisecond},
		{noteC4, 400 * time.Millisecond},
	},
}

// sequencer plays a list of square-wave notes, optionally forever.
type sequencer struct {
	rate  beep.SampleRate
	notes []note
	loop  bool

	idx    int     // current note
	pos    int     // sample within the current note
	phase  float64 // oscillator phase in [0, 1)
	length int     // samples in the current note
}

func newSequencer(rate beep.SampleRate, notes []note, loop bool) *sequencer {
	s := &sequencer{rate: rate, notes: notes, loop: loop}
	if len(notes) > 0 {
		s.length = rate.N(notes[0].duration)
	}
	return s
}

func (s *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		for s.pos >= s.length {
			if !s.advance() {
				return i, i > 0
			}
		}

		cur := s.notes[s.idx]
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		val *= s.gain()

		samples[i][0] = val
		samples[i][1] = val

		s.phase += cur.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

// advance moves to the next note. It reports false once a non-looping
// sequence is exhausted.
func (s *sequencer) advance() bool {
	if len(s.notes) == 0 {
		return false
	}
	s.idx++
	if s.idx >= len(s.notes) {
		if !s.loop {
			s.idx = len(s.notes)
			return false
		}
		s.idx = 0
	}
	s.pos = 0
	s.phase = 0
	s.length = s.rate.N(s.notes[s.idx].duration)
	return true
}

// gain is the envelope value at the current position.
func (s *sequencer) gain() float64 {
	decay := float64(s.length) * decayPart
	if decay <= 0 {
		return peakGain
	}
	t := math.Min(float64(s.pos)/decay, 1)
	return peakGain * math.Pow(floorGain/peakGain, t)
}

func (s *sequencer) Err() error { return nil }

// sequenceSamples is the total length of notes at rate.
func sequenceSamples(rate beep.SampleRate, notes []note) int {
	total := 0
	for _, n := range notes {
		total += rate.N(n.duration)
	}
	return total
}
