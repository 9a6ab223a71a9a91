package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is a flat, comparable view of a GameState used for determinism
// tests and debug output. Power-up ids are left out on purpose since they only
// need to be unique.
type Snapshot struct {
	Status        Status
	MapID         string
	Mode          GameMode
	Score         int
	Level         int
	FoodEaten     int
	Combo         int
	SnakeLen      int
	HeadX         int
	HeadY         int
	Dir           Direction
	FoodX         int
	FoodY         int
	PowerUps      int
	Effects       int
	TickInterval  time.Duration
	TimeRemaining time.Duration
}

// TakeSnapshot flattens s.
func TakeSnapshot(s GameState) Snapshot {
	headX, headY := 0, 0
	if len(s.Snake) > 0 {
		headX, headY = s.Snake[0].X, s.Snake[0].Y
	}
	return Snapshot{
		Status:        s.Status,
		MapID:         s.Round.MapID,
		Mode:          s.Round.Mode,
		Score:         s.Score,
		Level:         s.Level,
		FoodEaten:     s.FoodEaten,
		Combo:         s.Combo,
		SnakeLen:      len(s.Snake),
		HeadX:         headX,
		HeadY:         headY,
		Dir:           s.Direction,
		FoodX:         s.Food.X,
		FoodY:         s.Food.Y,
		PowerUps:      len(s.PowerUps),
		Effects:       len(s.ActiveEffects),
		TickInterval:  s.TickInterval,
		TimeRemaining: s.TimeRemaining,
	}
}

// DebugString returns a multi-line description of s.
func DebugString(s GameState) string {
	snap := TakeSnapshot(s)
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s, Map: %s, Mode: %s\n", snap.Status, snap.MapID, snap.Mode)
	fmt.Fprintf(&b, "Score: %d, Level: %d, Combo: %d, Food eaten: %d\n", snap.Score, snap.Level, snap.Combo, snap.FoodEaten)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", snap.SnakeLen, snap.Dir)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", snap.HeadX, snap.HeadY, snap.FoodX, snap.FoodY)
	fmt.Fprintf(&b, "Power-ups: %d, Effects: %d, Interval: %s\n", snap.PowerUps, snap.Effects, snap.TickInterval)
	return b.String()
}
