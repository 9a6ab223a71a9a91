package snake

import "time"

// Grid and tuning constants. These are fixed for the whole process.
const (
	GridWidth  = 30
	GridHeight = 20

	BaseTickInterval = 150 * time.Millisecond
	LevelTickStep    = 10 * time.Millisecond
	MinTickInterval  = 50 * time.Millisecond

	SpeedMultiplier = 1.5
	SlowMultiplier  = 0.6

	ComboWindow = 2000 * time.Millisecond
	MaxCombo    = 8
	BaseFoodPts = 10

	PowerUpLifetime    = 12000 * time.Millisecond
	MaxPowerUps        = 3
	PowerUpSpawnChance = 0.2
	FoodPerLevel       = 5

	foodSpawnAttempts    = 1000
	powerUpSpawnAttempts = 100

	// Shrink/bomb trim the tail only while the snake is longer than trimMinLen.
	trimSegments = 3
	trimMinLen   = 4
	shrinkBonus  = 5

	initialSnakeLen = 3
)

// Position is a grid cell, 0-indexed from the top-left corner.
type Position struct {
	X, Y int
}

// InBounds reports whether p lies on the grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Step returns p moved one cell in direction d.
func (d Direction) Step(p Position) Position {
	switch d {
	case DirUp:
		return Position{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Position{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Position{X: p.X - 1, Y: p.Y}
	default:
		return Position{X: p.X + 1, Y: p.Y}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the engine state machine position.
type Status string

const (
	StatusMenu     Status = "menu"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "gameover"
)

// PowerUp is a live power-up instance on the grid.
// ID is unique per instance and is what removal compares against.
type PowerUp struct {
	ID        string
	Type      PowerUpType
	Position  Position
	SpawnTime time.Time
}

// ActiveEffect is a running duration effect.
type ActiveEffect struct {
	ID      string
	EndTime time.Time
}

// Round pins the map, mode and calendar date a round was started with.
// Selection commands only change GameState.MapID/Mode; the running round
// keeps using Round until the next start.
type Round struct {
	MapID string
	Mode  GameMode
	Date  string
}

// GameState is the aggregate root of a round.
type GameState struct {
	Snake         []Position // Head at index 0
	Direction     Direction
	NextDirection Direction // Latched by SetDirection, committed on the next tick
	Food          Position
	PowerUps      []PowerUp
	ActiveEffects []ActiveEffect
	Score         int
	Level         int
	FoodEaten     int
	Combo         int
	LastFoodTime  time.Time
	Status        Status
	MapID         string   // Selected map, applied on the next start
	Mode          GameMode // Selected mode, applied on the next start
	Round         Round
	TickInterval  time.Duration
	TimeRemaining time.Duration // Only meaningful in timed mode

	PowerUpsCollected int
}

// Map resolves the layout the current round is played on.
func (s GameState) Map() MapConfig {
	return ResolveMapOn(s.Round.MapID, s.Round.Date)
}

// Head returns the snake's head position.
func (s GameState) Head() Position {
	return s.Snake[0]
}

// clone returns a copy of s that shares no slice storage with it.
func (s GameState) clone() GameState {
	c := s
	c.Snake = append([]Position(nil), s.Snake...)
	if s.PowerUps != nil {
		c.PowerUps = append([]PowerUp(nil), s.PowerUps...)
	}
	if s.ActiveEffects != nil {
		c.ActiveEffects = append([]ActiveEffect(nil), s.ActiveEffects...)
	}
	return c
}

// HighscoreEntry is one row of the highscore list.
type HighscoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	MapID string `json:"mapId"`
	Date  string `json:"date"`
}

// DailyChallengeRecord is the best run for one calendar date.
type DailyChallengeRecord struct {
	Date     string `json:"date"`
	Score    int    `json:"score"`
	Level    int    `json:"level"`
	Attempts int    `json:"attempts"`
}
