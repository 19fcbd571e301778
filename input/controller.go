package input

import (
	"time"

	"github.com/lixenwraith/vi-breakout/engine"
)

// Steerable receives the paddle velocity
type Steerable interface {
	SetVelocity(dx float64)
}

// Controller turns direction key state into paddle velocity
// Terminals deliver presses and autorepeats but never releases,
// so a held direction is dropped after releaseDelay without a repeat
// All methods run on the game loop goroutine
type Controller struct {
	paddle       Steerable
	clock        engine.TimeProvider
	speed        float64
	releaseDelay time.Duration

	dir       int
	lastPress time.Time
}

// NewController creates a controller steering paddle at speed board units per tick
// A zero releaseDelay disables synthesized releases, for frontends with real key state
func NewController(paddle Steerable, clock engine.TimeProvider, speed float64, releaseDelay time.Duration) *Controller {
	return &Controller{
		paddle:       paddle,
		clock:        clock,
		speed:        speed,
		releaseDelay: releaseDelay,
	}
}

// Handle applies movement intents and returns every other intent to the caller
func (c *Controller) Handle(in Intent) Intent {
	if dir := in.Direction(); dir != 0 {
		c.Press(dir)
		return IntentNone
	}
	return in
}

// Press holds a direction, -1 left or 1 right; the latest press wins
func (c *Controller) Press(dir int) {
	c.lastPress = c.clock.Now()
	if dir == c.dir {
		return
	}
	c.dir = dir
	c.paddle.SetVelocity(float64(dir) * c.speed)
}

// Release stops the paddle
func (c *Controller) Release() {
	if c.dir == 0 {
		return
	}
	c.dir = 0
	c.paddle.SetVelocity(0)
}

// Update releases a direction whose key has been silent for releaseDelay
// Called before every tick
func (c *Controller) Update() {
	if c.dir == 0 || c.releaseDelay <= 0 {
		return
	}
	if c.clock.Now().Sub(c.lastPress) >= c.releaseDelay {
		c.Release()
	}
}

// Direction returns the held direction, zero when released
func (c *Controller) Direction() int {
	return c.dir
}
