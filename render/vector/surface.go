// Package vector implements render.Surface on an ebiten image
// Paths are triangulated with ebiten's vector.Path; every shape the game draws is convex,
// so the default fill rule is sufficient
package vector

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-breakout/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws board-unit paths onto an offscreen ebiten image of the board size
// Draw calls happen during Update; the frontend copies Image to the screen in Draw
type Surface struct {
	img        *ebiten.Image
	path       vector.Path
	fill       colorful.Color
	background colorful.Color

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates a surface backed by a width x height image
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:        ebiten.NewImage(width, height),
		fill:       render.RgbForeground,
		background: render.RgbBackground,
	}
}

// Image returns the backing image
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// SetBackground sets the color used by ClearRect
func (s *Surface) SetBackground(c colorful.Color) {
	s.background = c
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), toRGBA(s.background), false)
}

func (s *Surface) BeginPath() {
	s.path = vector.Path{}
}

func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

func (s *Surface) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
}

func (s *Surface) Arc(x, y, r, startAngle, endAngle float64, counterClockwise bool) {
	dir := vector.Clockwise
	if counterClockwise {
		dir = vector.CounterClockwise
	}
	s.path.Arc(float32(x), float32(y), float32(r), float32(startAngle), float32(endAngle), dir)
}

func (s *Surface) ClosePath() {
	s.path.Close()
}

// Fill triangulates the current path and draws it in the fill color
func (s *Surface) Fill() {
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	if len(s.indices) == 0 {
		return
	}

	r, g, b := s.fill.Clamped().RGB255()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 255
		s.vertices[i].ColorG = float32(g) / 255
		s.vertices[i].ColorB = float32(b) / 255
		s.vertices[i].ColorA = 1
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.img.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *Surface) FillColor() colorful.Color {
	return s.fill
}

func (s *Surface) SetFillColor(c colorful.Color) {
	s.fill = c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
