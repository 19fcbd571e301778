package constants

// Terminal Rendering
const (
	// PixelsPerCellY is the vertical canvas resolution of one terminal cell
	// Upper half block glyph: foreground paints the top pixel, background the bottom
	PixelsPerCellY = 2

	// HalfBlockGlyph is the upper half block used to show two stacked pixels per cell
	HalfBlockGlyph = '▀'

	// StatusBarHeight is the number of rows reserved under the board
	StatusBarHeight = 1

	// MinCanvasWidth and MinCanvasHeight bound the canvas for tiny terminals
	MinCanvasWidth  = 16
	MinCanvasHeight = 8
)

// Status bar text
const (
	StatusTextIdle    = "press s to start, q to quit"
	StatusTextRunning = "←/→ or a/d to move"
	StatusTextEnded   = "ball lost, press s to serve again"
	StatusTextCleared = "wall cleared, press s for a new wall"
	StatusTextOver    = "game over, press s to keep playing"
)

// StatusMutedSuffix is appended to the status hint while audio is muted
const StatusMutedSuffix = "  [muted]"
