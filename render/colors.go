package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Canvas colors, board space
var (
	RgbBackground = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255} // Tokyo Night background
	RgbForeground = colorful.Color{R: 192.0 / 255, G: 202.0 / 255, B: 245.0 / 255}
	RgbBall       = colorful.Color{R: 1, G: 1, B: 1}
	RgbPaddle     = colorful.Color{R: 135.0 / 255, G: 206.0 / 255, B: 250.0 / 255} // Light sky blue
)

// Terminal chrome colors
var (
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(36, 40, 59)
	RgbScore      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbLives      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbLivesOut   = tcell.NewRGBColor(255, 0, 0)     // Error red
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)
	RgbTerminalBg = tcell.NewRGBColor(16, 16, 24)
	RgbStatusHint = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// ToTcell converts a canvas color to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
