package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-breakout/constants"
)

// TerminalRenderer shows a Canvas on a tcell screen with a border and a status bar
// The canvas uses two pixels per cell vertically (upper half block glyph)
// It also acts as the score/lives display sink
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas

	boardW, boardH float64

	// Screen layout
	width, height int
	originX       int // first canvas column
	originY       int // first canvas row
	cols, rows    int // canvas size in cells

	score  int
	lives  int
	status string
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, boardW, boardH float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		boardW: boardW,
		boardH: boardH,
		canvas: NewCanvas(boardW, boardH, constants.MinCanvasWidth, constants.MinCanvasHeight),
	}
	r.Resize()
	return r
}

// Canvas returns the drawing surface the simulation renders into
func (r *TerminalRenderer) Canvas() *Canvas {
	return r.canvas
}

// Resize recomputes the layout from the screen size and clears the canvas
// The board keeps its aspect ratio; half block pixels are roughly square
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()

	availCols := max(r.width-2, 1)
	availRows := max(r.height-2-constants.StatusBarHeight, 1)
	availPx := availCols
	availPy := availRows * constants.PixelsPerCellY

	aspect := r.boardW / r.boardH
	pxW := availPx
	pxH := int(math.Round(float64(pxW) / aspect))
	if pxH > availPy {
		pxH = availPy
		pxW = int(math.Round(float64(pxH) * aspect))
	}
	// Whole cells only
	pxH -= pxH % constants.PixelsPerCellY
	pxW = max(pxW, constants.MinCanvasWidth)
	pxH = max(pxH, constants.MinCanvasHeight)

	r.cols = pxW
	r.rows = pxH / constants.PixelsPerCellY
	r.originX = max((r.width-r.cols)/2, 1)
	r.originY = 1
	r.canvas.Resize(pxW, pxH)
}

// Layout returns the canvas origin and size in cells
func (r *TerminalRenderer) Layout() (x, y, cols, rows int) {
	return r.originX, r.originY, r.cols, r.rows
}

// ShowScore updates the score shown in the status bar
func (r *TerminalRenderer) ShowScore(score int) {
	r.score = score
}

// ShowLives updates the lives shown in the status bar
func (r *TerminalRenderer) ShowLives(lives int) {
	r.lives = lives
}

// SetStatus sets the hint text at the end of the status bar
func (r *TerminalRenderer) SetStatus(text string) {
	r.status = text
}

// RenderFrame pushes the canvas, border and status bar to the screen
func (r *TerminalRenderer) RenderFrame() {
	bgStyle := tcell.StyleDefault.Background(RgbTerminalBg)
	r.screen.Fill(' ', bgStyle)

	r.drawCanvas()
	r.drawBorder(bgStyle.Foreground(RgbBorder))
	r.drawStatusBar()

	r.screen.Show()
}

// drawCanvas maps pixel pairs onto upper half block cells
func (r *TerminalRenderer) drawCanvas() {
	for cy := 0; cy < r.rows; cy++ {
		sy := r.originY + cy
		if sy >= r.height {
			break
		}
		for cx := 0; cx < r.cols; cx++ {
			sx := r.originX + cx
			if sx >= r.width {
				break
			}
			top := r.canvas.At(cx, cy*constants.PixelsPerCellY)
			bottom := r.canvas.At(cx, cy*constants.PixelsPerCellY+1)
			style := tcell.StyleDefault.Foreground(ToTcell(top)).Background(ToTcell(bottom))
			r.screen.SetContent(sx, sy, constants.HalfBlockGlyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBorder(style tcell.Style) {
	left, right := r.originX-1, r.originX+r.cols
	top, bottom := r.originY-1, r.originY+r.rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawStatusBar writes score, lives and the hint on the row under the border
func (r *TerminalRenderer) drawStatusBar() {
	y := r.originY + r.rows + 1
	if y >= r.height {
		y = r.height - 1
	}

	base := tcell.StyleDefault.Background(RgbStatusBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, base)
	}

	livesColor := RgbLives
	if r.lives <= 0 {
		livesColor = RgbLivesOut
	}

	x := r.originX - 1
	x = r.drawText(x, y, " SCORE ", base.Foreground(RgbStatusBar))
	x = r.drawText(x, y, fmt.Sprintf("%d", r.score), base.Foreground(RgbScore).Bold(true))
	x = r.drawText(x, y, "  LIVES ", base.Foreground(RgbStatusBar))
	x = r.drawText(x, y, fmt.Sprintf("%d", r.lives), base.Foreground(livesColor).Bold(true))
	if r.status != "" {
		x = r.drawText(x, y, "   ", base)
		r.drawText(x, y, r.status, base.Foreground(RgbStatusHint))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
