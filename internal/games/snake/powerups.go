package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// EffectKind distinguishes one-shot effects from timed ones.
type EffectKind string

const (
	EffectInstant  EffectKind = "instant"
	EffectDuration EffectKind = "duration"
)

// Power-up identifiers.
const (
	PowerUpSpeed  = "speed"
	PowerUpSlow   = "slow"
	PowerUpGhost  = "ghost"
	PowerUpBomb   = "bomb"
	PowerUpShrink = "shrink"
	PowerUpDouble = "double"
)

// PowerUpType is a static catalog entry.
type PowerUpType struct {
	ID          string
	Name        string
	Description string
	Color       core.Color
	Symbol      rune
	Kind        EffectKind
	Duration    time.Duration // Zero for instant effects
}

// powerUpTypes is the catalog. Order matters for RandomPowerUpType.
var powerUpTypes = [...]PowerUpType{
	{
		ID:          PowerUpSpeed,
		Name:        "Speed",
		Description: "Move speed x1.5",
		Color:       core.ColorBrightCyan,
		Symbol:      '>',
		Kind:        EffectDuration,
		Duration:    5000 * time.Millisecond,
	},
	{
		ID:          PowerUpSlow,
		Name:        "Slow",
		Description: "Move speed x0.6",
		Color:       core.ColorBrightYellow,
		Symbol:      '~',
		Kind:        EffectDuration,
		Duration:    6000 * time.Millisecond,
	},
	{
		ID:          PowerUpGhost,
		Name:        "Ghost",
		Description: "Pass through borders and walls",
		Color:       core.ColorBrightMagenta,
		Symbol:      '?',
		Kind:        EffectDuration,
		Duration:    7000 * time.Millisecond,
	},
	{
		ID:          PowerUpBomb,
		Name:        "Bomb",
		Description: "Drop the last 3 tail segments",
		Color:       core.ColorBrightRed,
		Symbol:      'B',
		Kind:        EffectInstant,
	},
	{
		ID:          PowerUpShrink,
		Name:        "Shrink",
		Description: "Drop the last 3 tail segments, +5 points",
		Color:       core.ColorOrange,
		Symbol:      'S',
		Kind:        EffectInstant,
	},
	{
		ID:          PowerUpDouble,
		Name:        "Double",
		Description: "Score x2",
		Color:       core.ColorBrightGreen,
		Symbol:      'x',
		Kind:        EffectDuration,
		Duration:    8000 * time.Millisecond,
	},
}

// PowerUpTypes returns a copy of the catalog.
func PowerUpTypes() []PowerUpType {
	out := make([]PowerUpType, len(powerUpTypes))
	copy(out, powerUpTypes[:])
	return out
}

// PowerUpByID looks up a catalog entry.
func PowerUpByID(id string) (PowerUpType, bool) {
	for _, t := range powerUpTypes {
		if t.ID == id {
			return t, true
		}
	}
	return PowerUpType{}, false
}

// RandomPowerUpType picks uniformly over the catalog.
func RandomPowerUpType(rng *rand.Rand) PowerUpType {
	return powerUpTypes[rng.Intn(len(powerUpTypes))]
}
