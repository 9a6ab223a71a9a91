// Package snake implements the retro snake simulation: the tick engine,
// the map and power-up catalogs and the date-seeded daily challenge.
//
// Every engine operation takes a GameState value and returns a new one.
// Slices of the input state are never written to, so callers may keep
// the previous state around (the audio observer diffs consecutive states).
package snake

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Engine advances game states. It owns the only non-deterministic input of
// the simulation: the RNG used for food and power-up placement.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine. A zero seed picks a time-based one.
func NewEngine(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// NewState builds a fresh menu state for the given selection.
func (e *Engine) NewState(mapID string, mode GameMode, now time.Time) GameState {
	if !IsMapID(mapID) {
		mapID = builtinMaps[0].ID
	}
	mode = ParseMode(string(mode))

	startX, startY := GridWidth/2, GridHeight/2
	snake := make([]Position, initialSnakeLen)
	for i := range snake {
		snake[i] = Position{X: startX - i, Y: startY}
	}

	s := GameState{
		Snake:         snake,
		Direction:     DirRight,
		NextDirection: DirRight,
		Level:         1,
		Status:        StatusMenu,
		MapID:         mapID,
		Mode:          mode,
		Round:         Round{MapID: mapID, Mode: mode, Date: DateString(now)},
		TickInterval:  BaseTickInterval,
	}
	if mode == ModeTimed {
		s.TimeRemaining = TimedModeDuration
	}
	// The zero Food cell counts as occupied for this first placement.
	s.Food = e.spawnFood(s)
	return s
}

// Start begins a new round from the current selection.
func (e *Engine) Start(s GameState, now time.Time) GameState {
	next := e.NewState(s.MapID, s.Mode, now)
	next.Status = StatusPlaying
	return next
}

// Reset returns to the menu, keeping the current selection.
func (e *Engine) Reset(s GameState, now time.Time) GameState {
	return e.NewState(s.MapID, s.Mode, now)
}

// TogglePause flips between playing and paused. Other statuses are unchanged.
func TogglePause(s GameState) GameState {
	switch s.Status {
	case StatusPlaying:
		s.Status = StatusPaused
	case StatusPaused:
		s.Status = StatusPlaying
	}
	return s
}

// SelectMap changes the selected map. It takes effect on the next start.
func SelectMap(s GameState, mapID string) GameState {
	if !IsMapID(mapID) {
		mapID = builtinMaps[0].ID
	}
	s.MapID = mapID
	return s
}

// SelectMode changes the selected mode. It takes effect on the next start.
func SelectMode(s GameState, mode GameMode) GameState {
	s.Mode = ParseMode(string(mode))
	return s
}

// SetDirection latches dir for the next tick unless it reverses the
// committed direction.
func SetDirection(s GameState, dir Direction) GameState {
	if dir == s.Direction.Opposite() {
		return s
	}
	s.NextDirection = dir
	return s
}

// HasEffect reports whether a duration effect is running at now.
func HasEffect(s GameState, id string, now time.Time) bool {
	for _, e := range s.ActiveEffects {
		if e.ID == id && e.EndTime.After(now) {
			return true
		}
	}
	return false
}

// TickInterval computes the delay before the next tick.
func TickInterval(s GameState, now time.Time) time.Duration {
	interval := BaseTickInterval - time.Duration(s.Level-1)*LevelTickStep
	interval = max(interval, MinTickInterval)

	ms := float64(interval.Milliseconds())
	if HasEffect(s, PowerUpSpeed, now) {
		ms = math.Floor(ms / SpeedMultiplier)
	}
	if HasEffect(s, PowerUpSlow, now) {
		ms = math.Floor(ms / SlowMultiplier)
	}
	return max(time.Duration(ms)*time.Millisecond, MinTickInterval)
}

// Tick advances a playing state by one cell. Any other status is returned as is.
func (e *Engine) Tick(s GameState, now time.Time) GameState {
	if s.Status != StatusPlaying {
		return s
	}
	next := s.clone()

	if next.Round.Mode == ModeTimed {
		next.TimeRemaining -= s.TickInterval
		if next.TimeRemaining <= 0 {
			next.TimeRemaining = 0
			next.Status = StatusGameOver
			return next
		}
	}

	// Expire effects and power-ups
	next.ActiveEffects = next.ActiveEffects[:0]
	for _, eff := range s.ActiveEffects {
		if eff.EndTime.After(now) {
			next.ActiveEffects = append(next.ActiveEffects, eff)
		}
	}
	next.PowerUps = next.PowerUps[:0]
	for _, p := range s.PowerUps {
		if now.Sub(p.SpawnTime) < PowerUpLifetime {
			next.PowerUps = append(next.PowerUps, p)
		}
	}

	ghost := HasEffect(next, PowerUpGhost, now)
	head := s.NextDirection.Step(s.Head())
	if ghost {
		head = wrap(head)
	}

	if e.collides(next, head, ghost) {
		next.Status = StatusGameOver
		return next
	}

	next.Direction = next.NextDirection

	ateFood := head == s.Food
	body := make([]Position, 0, len(s.Snake)+1)
	body = append(body, head)
	body = append(body, s.Snake...)
	if !ateFood {
		body = body[:len(body)-1]
	}
	next.Snake = body

	if ateFood {
		next.Score, next.Combo = scoreFood(next, now)
		next.LastFoodTime = now
		next.FoodEaten++
		if next.FoodEaten%FoodPerLevel == 0 {
			next.Level++
		}
		next.Food = e.spawnFood(next)

		if e.rng.Float64() < PowerUpSpawnChance {
			if p, ok := e.spawnPowerUp(next, now); ok {
				next.PowerUps = append(next.PowerUps, p)
			}
		}
	}

	if p, ok := powerUpAt(next.PowerUps, head); ok {
		next = applyPowerUp(next, p, now)
	}

	next.TickInterval = TickInterval(next, now)
	return next
}

// collides checks the candidate head against the border, the body and the walls.
// The tail is excluded since it vacates its cell this tick.
func (e *Engine) collides(s GameState, head Position, ghost bool) bool {
	if !ghost && !head.InBounds() {
		return true
	}
	for _, seg := range s.Snake[:len(s.Snake)-1] {
		if seg == head {
			return true
		}
	}
	if !ghost {
		for _, w := range s.Map().Walls {
			if w == head {
				return true
			}
		}
	}
	return false
}

// wrap folds an off-grid position back onto the opposite edge.
func wrap(p Position) Position {
	p.X = (p.X%GridWidth + GridWidth) % GridWidth
	p.Y = (p.Y%GridHeight + GridHeight) % GridHeight
	return p
}

// scoreFood returns the new score and combo after a food pickup.
func scoreFood(s GameState, now time.Time) (score, combo int) {
	points := BaseFoodPts
	combo = 1
	if !s.LastFoodTime.IsZero() && now.Sub(s.LastFoodTime) < ComboWindow {
		combo = core.Clamp(s.Combo+1, 1, MaxCombo)
		points = BaseFoodPts * combo
	}
	if HasEffect(s, PowerUpDouble, now) {
		points *= 2
	}
	return s.Score + points, combo
}

// powerUpAt finds the power-up under the head. When several share the cell the
// earliest spawned wins, then the lowest id.
func powerUpAt(powerUps []PowerUp, head Position) (PowerUp, bool) {
	var hits []PowerUp
	for _, p := range powerUps {
		if p.Position == head {
			hits = append(hits, p)
		}
	}
	if len(hits) == 0 {
		return PowerUp{}, false
	}
	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].SpawnTime.Equal(hits[j].SpawnTime) {
			return hits[i].SpawnTime.Before(hits[j].SpawnTime)
		}
		return hits[i].ID < hits[j].ID
	})
	return hits[0], true
}

// applyPowerUp applies p's effect and removes that instance from play.
// s must already be a private copy.
func applyPowerUp(s GameState, p PowerUp, now time.Time) GameState {
	switch p.Type.Kind {
	case EffectDuration:
		effects := make([]ActiveEffect, 0, len(s.ActiveEffects)+1)
		for _, eff := range s.ActiveEffects {
			if eff.ID != p.Type.ID {
				effects = append(effects, eff)
			}
		}
		s.ActiveEffects = append(effects, ActiveEffect{ID: p.Type.ID, EndTime: now.Add(p.Type.Duration)})

	case EffectInstant:
		if len(s.Snake) > trimMinLen {
			s.Snake = s.Snake[:len(s.Snake)-trimSegments]
		}
		if p.Type.ID == PowerUpShrink {
			s.Score += shrinkBonus
		}
	}

	remaining := make([]PowerUp, 0, len(s.PowerUps))
	for _, q := range s.PowerUps {
		if q.ID != p.ID {
			remaining = append(remaining, q)
		}
	}
	s.PowerUps = remaining
	s.PowerUpsCollected++
	return s
}

// occupied collects every cell taken by the snake, walls, food and power-ups.
func occupied(s GameState) map[Position]bool {
	cells := s.Map().WallSet()
	for _, p := range s.Snake {
		cells[p] = true
	}
	cells[s.Food] = true
	for _, p := range s.PowerUps {
		cells[p.Position] = true
	}
	return cells
}

func (e *Engine) randomCell() Position {
	return Position{X: e.rng.Intn(GridWidth), Y: e.rng.Intn(GridHeight)}
}

// spawnFood picks a free cell. After foodSpawnAttempts misses the last
// candidate is used even if it is occupied.
func (e *Engine) spawnFood(s GameState) Position {
	taken := occupied(s)
	var pos Position
	for range foodSpawnAttempts {
		pos = e.randomCell()
		if !taken[pos] {
			break
		}
	}
	return pos
}

// spawnPowerUp places a random power-up on a free cell. It gives up when the
// cap is reached or no free cell turns up within powerUpSpawnAttempts.
func (e *Engine) spawnPowerUp(s GameState, now time.Time) (PowerUp, bool) {
	if len(s.PowerUps) >= MaxPowerUps {
		return PowerUp{}, false
	}
	taken := occupied(s)
	for range powerUpSpawnAttempts {
		pos := e.randomCell()
		if taken[pos] {
			continue
		}
		return PowerUp{
			ID:        e.newID(),
			Type:      RandomPowerUpType(e.rng),
			Position:  pos,
			SpawnTime: now,
		}, true
	}
	return PowerUp{}, false
}

// newID draws a UUID from the engine RNG so seeded runs stay reproducible.
func (e *Engine) newID() string {
	id, err := uuid.NewRandomFromReader(e.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
