package snake

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// MapConfig describes an obstacle layout.
type MapConfig struct {
	ID          string
	Name        string
	Description string
	Difficulty  int // 1-5
	Walls       []Position
}

// WallSet returns the walls as a lookup set.
func (m MapConfig) WallSet() map[Position]bool {
	set := make(map[Position]bool, len(m.Walls))
	for _, w := range m.Walls {
		set[w] = true
	}
	return set
}

// builtinMaps holds the fixed layouts; index 0 is the fallback.
// Wall slices are shared with every caller and must not be modified.
var builtinMaps = []MapConfig{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "No obstacles, the border kills",
		Difficulty:  1,
	},
	{
		ID:          "maze",
		Name:        "Maze",
		Description: "A cross of inner walls splits the field in four",
		Difficulty:  3,
		Walls:       crossWalls(),
	},
	{
		ID:          "cave",
		Name:        "Cave",
		Description: "Nested rectangles with cross channels, very tight",
		Difficulty:  4,
		Walls:       caveWalls(),
	},
	{
		ID:          "arena",
		Name:        "Arena",
		Description: "Two rings of pillars, chaotic space",
		Difficulty:  5,
		Walls:       arenaWalls(),
	},
}

// Maps returns the built-in maps in catalog order.
func Maps() []MapConfig {
	out := make([]MapConfig, len(builtinMaps))
	copy(out, builtinMaps)
	return out
}

// IsMapID reports whether id names a built-in map or the daily map.
func IsMapID(id string) bool {
	if id == DailyMapID {
		return true
	}
	for _, m := range builtinMaps {
		if m.ID == id {
			return true
		}
	}
	return false
}

// MapIDs returns every selectable map id, daily last.
func MapIDs() []string {
	ids := make([]string, 0, len(builtinMaps)+1)
	for _, m := range builtinMaps {
		ids = append(ids, m.ID)
	}
	return append(ids, DailyMapID)
}

// ResolveMap returns the layout for id as of today.
func ResolveMap(id string) MapConfig {
	return ResolveMapAt(id, time.Now())
}

// ResolveMapAt returns the layout for id as of the calendar date of t.
// Unknown ids resolve to the first built-in map.
func ResolveMapAt(id string, t time.Time) MapConfig {
	return ResolveMapOn(id, DateString(t))
}

// ResolveMapOn is ResolveMapAt keyed by an explicit date string.
func ResolveMapOn(id, date string) MapConfig {
	if id == DailyMapID {
		return DailyMap(date)
	}
	for _, m := range builtinMaps {
		if m.ID == id {
			return m
		}
	}
	return builtinMaps[0]
}

// DailyMap builds the daily challenge map for a date key.
func DailyMap(date string) MapConfig {
	difficulty := DailyDifficulty(date)
	return MapConfig{
		ID:          DailyMapID,
		Name:        "Daily Challenge " + date,
		Description: fmt.Sprintf("Today's difficulty: %s", DifficultyStars(difficulty)),
		Difficulty:  difficulty,
		Walls:       GenerateDailyWalls(date),
	}
}

// crossWalls draws a horizontal and a vertical wall with a gap around the center.
func crossWalls() []Position {
	var walls []Position
	midX, midY := GridWidth/2, GridHeight/2

	for x := 5; x < GridWidth-5; x++ {
		if core.Abs(x-midX) > 2 {
			walls = append(walls, Position{X: x, Y: midY})
		}
	}
	for y := 3; y < GridHeight-3; y++ {
		if core.Abs(y-midY) > 2 {
			walls = append(walls, Position{X: midX, Y: y})
		}
	}
	return walls
}

// caveWalls draws two nested rectangles, each broken by a cross-shaped channel.
func caveWalls() []Position {
	var walls []Position
	midX, midY := GridWidth/2, GridHeight/2

	// Outer rectangle
	for x := 6; x < GridWidth-6; x++ {
		if core.Abs(x-midX) > 2 {
			walls = append(walls, Position{X: x, Y: 4}, Position{X: x, Y: GridHeight - 5})
		}
	}
	for y := 4; y < GridHeight-4; y++ {
		if core.Abs(y-midY) > 2 {
			walls = append(walls, Position{X: 6, Y: y}, Position{X: GridWidth - 7, Y: y})
		}
	}

	// Inner rectangle
	for x := 11; x < GridWidth-11; x++ {
		if core.Abs(x-midX) > 1 {
			walls = append(walls, Position{X: x, Y: 7}, Position{X: x, Y: GridHeight - 8})
		}
	}
	for y := 7; y < GridHeight-7; y++ {
		if core.Abs(y-midY) > 1 {
			walls = append(walls, Position{X: 11, Y: y}, Position{X: GridWidth - 12, Y: y})
		}
	}
	return walls
}

// arenaWalls places two elliptical rings of pillars plus hooks in each corner.
func arenaWalls() []Position {
	var walls []Position
	midX, midY := GridWidth/2, GridHeight/2

	ring := func(radius float64, startAngle int) {
		for angle := startAngle; angle < 360; angle += 30 {
			rad := float64(angle) * math.Pi / 180
			x := roundHalfUp(float64(midX) + radius*math.Cos(rad))
			y := roundHalfUp(float64(midY) + radius*0.6*math.Sin(rad))
			if x > 1 && x < GridWidth-2 && y > 1 && y < GridHeight-2 {
				walls = append(walls, Position{X: x, Y: y})
			}
		}
	}
	ring(8, 0)
	ring(4, 15)

	walls = append(walls,
		Position{X: 3, Y: 3}, Position{X: 4, Y: 3}, Position{X: 3, Y: 4},
		Position{X: GridWidth - 4, Y: 3}, Position{X: GridWidth - 5, Y: 3}, Position{X: GridWidth - 4, Y: 4},
		Position{X: 3, Y: GridHeight - 4}, Position{X: 4, Y: GridHeight - 4}, Position{X: 3, Y: GridHeight - 5},
		Position{X: GridWidth - 4, Y: GridHeight - 4}, Position{X: GridWidth - 5, Y: GridHeight - 4}, Position{X: GridWidth - 4, Y: GridHeight - 5},
	)
	return walls
}

// roundHalfUp rounds .5 toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
