package components

import (
	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/render"
	"github.com/lixenwraith/vi-breakout/vmath"
)

// Paddle is the player-controlled rectangle, centered on X with its top edge at Y
// One paddle lives for the whole session and is shared across rounds
type Paddle struct {
	vmath.Shape
	Width  float64
	Height float64

	boardWidth float64
}

// NewPaddle centers the paddle on the board at the configured row
func NewPaddle(cfg *config.Config) *Paddle {
	return &Paddle{
		Shape: vmath.Shape{
			X: cfg.Board.Width / 2,
			Y: cfg.PaddleY(),
		},
		Width:      cfg.Paddle.Width,
		Height:     cfg.Paddle.Height,
		boardWidth: cfg.Board.Width,
	}
}

// SetVelocity sets the horizontal velocity read by the next Tick
func (p *Paddle) SetVelocity(dx float64) {
	p.DX = dx
}

// Tick moves the paddle only when both edges stay on the board
func (p *Paddle) Tick() {
	half := p.Width / 2
	nx := p.NextX()
	if nx > half && nx < p.boardWidth-half {
		p.X = nx
	}
}

// Left returns the x coordinate of the left edge
func (p *Paddle) Left() float64 { return p.X - p.Width/2 }

// Right returns the x coordinate of the right edge
func (p *Paddle) Right() float64 { return p.X + p.Width/2 }

// Draw traces the outline from the top center clockwise
func (p *Paddle) Draw(g render.Surface) {
	half := p.Width / 2
	g.BeginPath()
	g.MoveTo(p.X, p.Y)
	g.LineTo(p.X+half, p.Y)
	g.LineTo(p.X+half, p.Y+p.Height)
	g.LineTo(p.X-half, p.Y+p.Height)
	g.LineTo(p.X-half, p.Y)
	g.ClosePath()
	g.Fill()
}
