package render

import (
	"image"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/vi-breakout/vmath"
)

// Minimum rasterizer coverage for a pixel to take the fill color
// A quarter keeps sub-pixel shapes (paddle, thin blocks) visible at terminal resolution
const coverageThreshold = 0x40

// Canvas rasterizes Surface calls into a fixed pixel grid
// Board coordinates are scaled to the grid on every vertex
type Canvas struct {
	width, height  int
	scaleX, scaleY float64
	boardW, boardH float64

	pixels     []colorful.Color
	background colorful.Color
	fill       colorful.Color

	raster *vector.Rasterizer
	mask   *image.Alpha
	// started is set once the path has a current point, open while the subpath has unclosed segments
	started, open bool
}

// NewCanvas creates a canvas mapping a boardW x boardH board onto pxW x pxH pixels
func NewCanvas(boardW, boardH float64, pxW, pxH int) *Canvas {
	c := &Canvas{
		boardW:     boardW,
		boardH:     boardH,
		background: RgbBackground,
		fill:       RgbForeground,
	}
	c.Resize(pxW, pxH)
	return c
}

// Resize changes the pixel resolution and clears the canvas
func (c *Canvas) Resize(pxW, pxH int) {
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	c.width, c.height = pxW, pxH
	c.scaleX = float64(pxW) / c.boardW
	c.scaleY = float64(pxH) / c.boardH
	c.pixels = make([]colorful.Color, pxW*pxH)
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
	c.mask = image.NewAlpha(image.Rect(0, 0, pxW, pxH))
	c.raster = vector.NewRasterizer(pxW, pxH)
	c.started, c.open = false, false
}

// Size returns the pixel resolution
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the pixel color, background when out of range
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.background
	}
	return c.pixels[y*c.width+x]
}

// SetBackground sets the color used by ClearRect
func (c *Canvas) SetBackground(bg colorful.Color) {
	c.background = bg
}

// ClearRect resets every pixel touched by the rectangle to the background
func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0 := clampInt(int(math.Floor(x*c.scaleX)), 0, c.width)
	y0 := clampInt(int(math.Floor(y*c.scaleY)), 0, c.height)
	x1 := clampInt(int(math.Ceil((x+w)*c.scaleX)), 0, c.width)
	y1 := clampInt(int(math.Ceil((y+h)*c.scaleY)), 0, c.height)

	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.width : (py+1)*c.width]
		for px := x0; px < x1; px++ {
			row[px] = c.background
		}
	}
}

func (c *Canvas) BeginPath() {
	c.raster.Reset(c.width, c.height)
	c.started, c.open = false, false
}

func (c *Canvas) MoveTo(x, y float64) {
	c.closeSubpath()
	px, py := c.toPixel(x, y)
	c.raster.MoveTo(px, py)
	c.started = true
}

// LineTo without a current point behaves as MoveTo
func (c *Canvas) LineTo(x, y float64) {
	if !c.started {
		c.MoveTo(x, y)
		return
	}
	px, py := c.toPixel(x, y)
	c.raster.LineTo(px, py)
	c.open = true
}

// Arc connects the current point to the arc start, then follows the arc
func (c *Canvas) Arc(x, y, r, startAngle, endAngle float64, counterClockwise bool) {
	for _, p := range vmath.FlattenArc(x, y, r, startAngle, endAngle, counterClockwise) {
		c.LineTo(p.X, p.Y)
	}
}

// ClosePath ends the subpath; the next segment starts from its first point
func (c *Canvas) ClosePath() {
	c.closeSubpath()
}

// Fill paints the current path with the nonzero rule, the open subpath closed implicitly
// Pixels reach the fill color once coverage passes coverageThreshold; the grid stays unblended
func (c *Canvas) Fill() {
	c.closeSubpath()
	// Reset restores draw.Over; Src rewrites the whole mask
	c.raster.DrawOp = draw.Src
	c.raster.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	for py := 0; py < c.height; py++ {
		cov := c.mask.Pix[py*c.mask.Stride : py*c.mask.Stride+c.width]
		row := c.pixels[py*c.width : (py+1)*c.width]
		for px, a := range cov {
			if a >= coverageThreshold {
				row[px] = c.fill
			}
		}
	}
}

func (c *Canvas) FillColor() colorful.Color {
	return c.fill
}

func (c *Canvas) SetFillColor(col colorful.Color) {
	c.fill = col
}

func (c *Canvas) toPixel(x, y float64) (float32, float32) {
	return float32(x * c.scaleX), float32(y * c.scaleY)
}

func (c *Canvas) closeSubpath() {
	if c.open {
		c.raster.ClosePath()
		c.open = false
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
