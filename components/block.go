package components

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-breakout/render"
	"github.com/lixenwraith/vi-breakout/vmath"
)

// Block is a static destructible rectangle in the wall
type Block struct {
	vmath.Shape
	Width  float64
	Height float64
	Color  colorful.Color

	// Row and Col locate the block in the grid it was built from
	Row, Col int
}

// Rect returns the block bounds
func (b *Block) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Collide reports whether the ball's next position is strictly inside the block
func (b *Block) Collide(ball *Ball) bool {
	return b.Rect().ContainsOpen(ball.NextX(), ball.NextY())
}

// Draw fills the block with its color, restoring the surface fill color afterwards
func (b *Block) Draw(g render.Surface) {
	prev := g.FillColor()
	g.SetFillColor(b.Color)
	g.BeginPath()
	g.MoveTo(b.X, b.Y)
	g.LineTo(b.X+b.Width, b.Y)
	g.LineTo(b.X+b.Width, b.Y+b.Height)
	g.LineTo(b.X, b.Y+b.Height)
	g.ClosePath()
	g.Fill()
	g.SetFillColor(prev)
}
