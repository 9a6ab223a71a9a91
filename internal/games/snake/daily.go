package snake

import (
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// DateLayout is the calendar key format used for the daily challenge.
const DateLayout = "2006-01-02"

// DailyMapID selects the date-derived map.
const DailyMapID = "daily"

// dailyRand is the seeded stream behind the daily challenge.
// It must never be fed from the engine's RNG.
type dailyRand struct {
	seed int64
}

func newDailyRand(seed int64) *dailyRand {
	return &dailyRand{seed: seed}
}

// next returns a value in [0, 1].
// The product is taken in float64 and reduced mod 2^32; published daily
// layouts depend on that rounding, so it must not become integer math.
// The explicit conversion rounds the product before the add, which keeps
// the compiler from fusing them into an FMA on arm64 and friends.
func (r *dailyRand) next() float64 {
	v := math.Mod(float64(float64(r.seed)*1103515245)+12345, 1<<32)
	r.seed = int64(v) & 0x7fffffff
	return float64(r.seed) / 0x7fffffff
}

// intn returns floor(next()*n).
func (r *dailyRand) intn(n int) int {
	return int(r.next() * float64(n))
}

// DateString formats t as the local calendar date key.
func DateString(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Today returns today's local date key.
func Today() string {
	return DateString(time.Now())
}

// DateSeed hashes a date string into a non-negative seed (at most 2^31).
func DateSeed(date string) int64 {
	var hash int32
	for _, c := range date {
		hash = (hash << 5) - hash + int32(c)
	}
	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// dailySafeZone is the obstacle-free rectangle around the start cell.
func dailySafeZone() core.Rect {
	midX, midY := core.NewRect(0, 0, GridWidth, GridHeight).Center()
	return core.NewRect(midX-4, midY-3, 9, 7)
}

// GenerateDailyWalls derives the obstacle layout for a date.
// The same date always yields the same walls, in the same order.
func GenerateDailyWalls(date string) []Position {
	rng := newDailyRand(DateSeed(date))
	safe := dailySafeZone()
	var walls []Position

	add := func(x, y int) {
		if !safe.Contains(x, y) {
			walls = append(walls, Position{X: x, Y: y})
		}
	}

	obstacleCount := rng.intn(15) + 10
	pattern := rng.intn(4)

	switch pattern {
	case 0: // scattered points
		for range obstacleCount {
			x := rng.intn(GridWidth-4) + 2
			y := rng.intn(GridHeight-4) + 2
			add(x, y)
		}

	case 1: // horizontal stripes
		stripes := rng.intn(3) + 2
		for range stripes {
			y := rng.intn(GridHeight-6) + 3
			startX := rng.intn(5) + 2
			length := rng.intn(10) + 5
			for x := startX; x < startX+length && x < GridWidth-2; x++ {
				add(x, y)
			}
		}

	case 2: // solid blocks
		blocks := rng.intn(4) + 2
		for range blocks {
			bx := rng.intn(GridWidth-8) + 3
			by := rng.intn(GridHeight-6) + 3
			size := rng.intn(2) + 2
			for dx := range size {
				for dy := range size {
					add(bx+dx, by+dy)
				}
			}
		}

	case 3: // L-shaped bends
		bends := rng.intn(3) + 2
		for range bends {
			lx := rng.intn(GridWidth-8) + 3
			ly := rng.intn(GridHeight-6) + 3
			arm := rng.intn(4) + 3
			orient := rng.intn(4)

			for i := range arm {
				ny := ly + i
				if orient >= 2 {
					ny = ly - i
				}
				if ny > 1 && ny < GridHeight-2 {
					add(lx, ny)
				}
			}
			for i := range arm {
				nx := lx + i
				if orient%2 != 0 {
					nx = lx - i
				}
				if nx > 1 && nx < GridWidth-2 {
					add(nx, ly)
				}
			}
		}
	}

	return dedupePositions(walls)
}

// dedupePositions keeps the first occurrence of each cell.
func dedupePositions(in []Position) []Position {
	seen := make(map[Position]bool, len(in))
	out := make([]Position, 0, len(in))
	for _, p := range in {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// DailyDifficulty returns the 1-5 star rating for a date.
func DailyDifficulty(date string) int {
	rng := newDailyRand(DateSeed(date))
	return min(rng.intn(5)+1, 5)
}

// DifficultyStars renders a rating as stars.
func DifficultyStars(n int) string {
	return strings.Repeat("*", n)
}

// MergeDailyRecord folds a finished run into the stored record for date.
// A nil or stale existing record counts as no prior record.
func MergeDailyRecord(existing *DailyChallengeRecord, date string, score, level int) DailyChallengeRecord {
	if existing == nil || existing.Date != date {
		return DailyChallengeRecord{Date: date, Score: score, Level: level, Attempts: 1}
	}
	return DailyChallengeRecord{
		Date:     date,
		Score:    max(existing.Score, score),
		Level:    max(existing.Level, level),
		Attempts: existing.Attempts + 1,
	}
}
