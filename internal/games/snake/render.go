package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Screen layout. The board sits below a two-line HUD with the legend panel
// to its right.
const (
	boardX = 0
	boardY = 2
	panelX = GridWidth + 3

	ScreenWidth  = GridWidth + 2 + 26
	ScreenHeight = GridHeight + 2 + boardY
)

// Render draws s into dst. dst should be at least ScreenWidth x ScreenHeight;
// anything larger is left blank.
func Render(dst *core.Screen, s GameState, now time.Time) {
	dst.Clear()

	if dst.Width() < ScreenWidth || dst.Height() < ScreenHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", ScreenWidth, ScreenHeight))
		return
	}

	m, mode := s.Map(), s.Round.Mode
	if s.Status == StatusMenu {
		// The menu previews the selection, not the last round.
		m, mode = ResolveMapOn(s.MapID, s.Round.Date), s.Mode
	}

	renderHUD(dst, s, m, mode)
	dst.DrawBox(core.NewRect(boardX, boardY, GridWidth+2, GridHeight+2))
	renderWalls(dst, m)
	renderItems(dst, s)
	renderSnake(dst, s, now)
	if s.Status != StatusMenu {
		renderFog(dst, s)
	}
	renderPanel(dst, s, now)

	switch s.Status {
	case StatusMenu:
		renderOverlay(dst, "RETRO SNAKE", "Enter to start")
	case StatusPaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case StatusGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - Enter to retry", s.Score))
	}
}

// cell converts a grid position to screen coordinates.
func cell(p Position) (int, int) {
	return boardX + 1 + p.X, boardY + 1 + p.Y
}

func renderHUD(dst *core.Screen, s GameState, m MapConfig, mode GameMode) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  Level: %d", s.Score, s.Level)
	if s.Combo > 1 {
		hud += fmt.Sprintf("  Combo x%d", s.Combo)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)

	info := fmt.Sprintf(" %s  |  %s", m.Name, mode.Info().Name)
	if mode == ModeTimed {
		remaining := s.TimeRemaining.Round(time.Second)
		info += fmt.Sprintf("  |  %d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	}
	dst.DrawTextColor(0, 1, info, core.ColorGray)
}

func renderWalls(dst *core.Screen, m MapConfig) {
	for _, w := range m.Walls {
		x, y := cell(w)
		dst.SetColor(x, y, '#', core.ColorWall)
	}
}

func renderItems(dst *core.Screen, s GameState) {
	for _, p := range s.PowerUps {
		x, y := cell(p.Position)
		dst.SetColor(x, y, p.Type.Symbol, p.Type.Color)
	}
	x, y := cell(s.Food)
	dst.SetColor(x, y, '*', core.ColorFood)
}

func renderSnake(dst *core.Screen, s GameState, now time.Time) {
	head, body := core.ColorSnakeHead, core.ColorSnakeBody
	if HasEffect(s, PowerUpGhost, now) {
		head, body = core.ColorGhost, core.ColorGhost
	}
	// Draw tail first so the head wins on overlap.
	for i := len(s.Snake) - 1; i >= 0; i-- {
		x, y := cell(s.Snake[i])
		if i == 0 {
			dst.SetColor(x, y, '@', head)
		} else {
			dst.SetColor(x, y, 'o', body)
		}
	}
}

// renderFog hides every grid cell outside the vision radius.
func renderFog(dst *core.Screen, s GameState) {
	if s.Round.Mode.VisionRadius() == 0 || len(s.Snake) == 0 {
		return
	}
	head := s.Head()
	for gy := range GridHeight {
		for gx := range GridWidth {
			p := Position{X: gx, Y: gy}
			if !s.Round.Mode.Visible(head, p) {
				x, y := cell(p)
				dst.SetColor(x, y, ':', core.ColorFog)
			}
		}
	}
}

// renderPanel draws the power-up legend and the running effects.
func renderPanel(dst *core.Screen, s GameState, now time.Time) {
	y := boardY
	dst.DrawTextColor(panelX, y, "POWER-UPS", core.ColorHUD)
	y += 2
	for _, t := range PowerUpTypes() {
		dst.SetColor(panelX, y, t.Symbol, t.Color)
		dst.DrawText(panelX+2, y, t.Name)
		y++
	}

	y++
	dst.DrawTextColor(panelX, y, "ACTIVE", core.ColorHUD)
	y += 2
	for _, eff := range s.ActiveEffects {
		t, ok := PowerUpByID(eff.ID)
		if !ok || !eff.EndTime.After(now) {
			continue
		}
		left := eff.EndTime.Sub(now).Seconds()
		dst.DrawTextColor(panelX, y, fmt.Sprintf("%-7s %4.1fs", t.Name, left), t.Color)
		y++
	}

	if s.Round.MapID == DailyMapID {
		y = boardY + GridHeight
		dst.DrawTextColor(panelX, y, "Daily "+DifficultyStars(s.Map().Difficulty), core.ColorYellow)
	}
}

// renderOverlay draws a boxed two-line message in the middle of the board,
// or of the whole screen when the board does not fit.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	areaW := dst.Width()
	if areaW >= ScreenWidth {
		areaW = GridWidth + 2
	}
	boxX := max((areaW-boxW)/2, 0)
	boxY := max((dst.Height()-boxH)/2, 0)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, line1, box, boxY+1, core.ColorBrightYellow)
	drawCentered(dst, line2, box, boxY+3, core.ColorDefault)
}

func drawCentered(dst *core.Screen, text string, box core.Rect, y int, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColor(x, y, text, c)
}
