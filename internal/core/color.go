package core

import "strconv"

// Color is a foreground color for a screen cell.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles used by the snake renderer.
const (
	ColorSnakeHead = ColorBrightGreen
	ColorSnakeBody = ColorGreen
	ColorGhost     = ColorCyan
	ColorFood      = ColorBrightRed
	ColorWall      = ColorGray
	ColorHUD       = ColorBrightWhite
	ColorFog       = ColorGray
)

// ansiCodes holds the 256-color code of every palette entry.
// ColorDefault has none and renders with the terminal default.
var ansiCodes = [...]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// ANSI returns the 256-color code for c as a string, or "" for the default
// and unknown colors.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
