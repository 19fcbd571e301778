package components

import (
	"math"

	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/render"
	"github.com/lixenwraith/vi-breakout/vmath"
)

// Bounce flags which reflections fired during a ball tick
type Bounce uint8

const (
	BounceSide   Bounce = 1 << iota // left or right board edge
	BounceTop                       // top board edge
	BouncePaddle                    // paddle face
)

// BallTick reports what happened to the ball in one tick
type BallTick struct {
	Bounces Bounce
	// Lost is set when the ball's next position passed the paddle row
	// The ball is left unmoved on that tick
	Lost bool
}

// Ball is the moving circle, one instance per round
type Ball struct {
	vmath.Shape
	Radius float64

	boardWidth float64
}

// NewBall serves a fresh ball at the configured start position and velocity
func NewBall(cfg *config.Config) *Ball {
	return &Ball{
		Shape: vmath.Shape{
			X:  cfg.BallStartX(),
			Y:  cfg.BallStartY(),
			DX: cfg.Ball.DX,
			DY: cfg.Ball.DY,
		},
		Radius:     cfg.Ball.Radius,
		boardWidth: cfg.Board.Width,
	}
}

// Tick applies wall, loss and paddle rules against the next position, then moves
// Rule order matters: side walls, then loss, then top/paddle
// Comparisons are strict on purpose at the paddle edges
func (b *Ball) Tick(paddle *Paddle) BallTick {
	var res BallTick
	nx, ny := b.NextX(), b.NextY()

	if nx > b.boardWidth-b.Radius || nx < b.Radius {
		b.InvertDX()
		res.Bounces |= BounceSide
	}

	if ny > paddle.Y {
		res.Lost = true
		return res
	}

	switch {
	case ny < b.Radius:
		b.InvertDY()
		res.Bounces |= BounceTop
	case ny > paddle.Y-b.Radius && b.X > paddle.Left() && b.X < paddle.Right():
		b.InvertDY()
		res.Bounces |= BouncePaddle
	}

	b.Advance()
	return res
}

// Draw paints the ball as a filled circle at its current position
func (b *Ball) Draw(g render.Surface) {
	g.BeginPath()
	g.Arc(b.X, b.Y, b.Radius, 0, math.Pi*2, true)
	g.ClosePath()
	g.Fill()
}
