package snake

import (
	"time"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// GameMode selects rule variations layered on top of the map.
type GameMode string

const (
	ModeClassic GameMode = "classic"
	ModeTimed   GameMode = "timed"
	ModeFog     GameMode = "fog"
)

const (
	// TimedModeDuration is the countdown for timed rounds.
	TimedModeDuration = 120 * time.Second

	// FogVisionRadius is how far around the head the player can see in fog mode.
	FogVisionRadius = 5
)

// ModeInfo is display metadata for a mode.
type ModeInfo struct {
	ID          GameMode
	Name        string
	Description string
}

var modes = []ModeInfo{
	{ID: ModeClassic, Name: "Classic", Description: "Play until you crash"},
	{ID: ModeTimed, Name: "Time Attack", Description: "Score as much as you can in 2 minutes"},
	{ID: ModeFog, Name: "Fog", Description: "You only see the cells around your head"},
}

// Modes returns all modes in menu order.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modes))
	copy(out, modes)
	return out
}

// ParseMode maps an identifier to a mode, falling back to classic.
func ParseMode(id string) GameMode {
	for _, m := range modes {
		if string(m.ID) == id {
			return m.ID
		}
	}
	return ModeClassic
}

// Info returns the display metadata for m.
func (m GameMode) Info() ModeInfo {
	for _, info := range modes {
		if info.ID == m {
			return info
		}
	}
	return modes[0]
}

// VisionRadius returns the visible radius around the head, or 0 for unlimited.
func (m GameMode) VisionRadius() int {
	if m == ModeFog {
		return FogVisionRadius
	}
	return 0
}

// Visible reports whether p can be seen from head under mode m.
// Distance is Chebyshev so the visible area is a square.
func (m GameMode) Visible(head, p Position) bool {
	r := m.VisionRadius()
	if r == 0 {
		return true
	}
	return core.Abs(p.X-head.X) <= r && core.Abs(p.Y-head.Y) <= r
}
