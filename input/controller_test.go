package input

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/engine"
)

func newTestController(delay time.Duration) (*Controller, *components.Paddle, *engine.MockTimeProvider) {
	paddle := components.NewPaddle(config.Default())
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return NewController(paddle, clock, 6, delay), paddle, clock
}

func TestControllerPressRelease(t *testing.T) {
	c, paddle, _ := newTestController(500 * time.Millisecond)

	if got := c.Handle(IntentLeft); got != IntentNone {
		t.Errorf("movement intent returned %v", got)
	}
	if paddle.DX != -6 || c.Direction() != -1 {
		t.Errorf("DX = %v dir = %d, want -6/-1", paddle.DX, c.Direction())
	}

	c.Press(1)
	if paddle.DX != 6 {
		t.Errorf("reverse press DX = %v, want 6", paddle.DX)
	}

	c.Release()
	if paddle.DX != 0 || c.Direction() != 0 {
		t.Errorf("after release DX = %v", paddle.DX)
	}
}

func TestControllerPassesOtherIntents(t *testing.T) {
	c, paddle, _ := newTestController(500 * time.Millisecond)

	for _, in := range []Intent{IntentStart, IntentQuit, IntentToggleMute, IntentNone} {
		if got := c.Handle(in); got != in {
			t.Errorf("Handle(%v) = %v", in, got)
		}
	}
	if paddle.DX != 0 {
		t.Errorf("non-movement intent moved the paddle: %v", paddle.DX)
	}
}

func TestControllerSynthesizedRelease(t *testing.T) {
	c, paddle, clock := newTestController(500 * time.Millisecond)

	c.Press(1)
	clock.Advance(300 * time.Millisecond)
	c.Update()
	if paddle.DX != 6 {
		t.Fatal("released before the delay")
	}

	// Autorepeat keeps the key held
	c.Press(1)
	clock.Advance(300 * time.Millisecond)
	c.Update()
	if paddle.DX != 6 {
		t.Fatal("repeat did not extend the hold")
	}

	clock.Advance(200 * time.Millisecond)
	c.Update()
	if paddle.DX != 0 || c.Direction() != 0 {
		t.Errorf("silent key not released: DX = %v", paddle.DX)
	}
}

func TestControllerZeroDelayHolds(t *testing.T) {
	c, paddle, clock := newTestController(0)

	c.Press(-1)
	clock.Advance(time.Hour)
	c.Update()
	if paddle.DX != -6 {
		t.Errorf("zero delay released the key: DX = %v", paddle.DX)
	}
}

func TestControllerMovesPaddleThroughTicks(t *testing.T) {
	c, paddle, _ := newTestController(500 * time.Millisecond)
	start := paddle.X

	c.Press(1)
	for i := 0; i < 5; i++ {
		paddle.Tick()
	}
	if paddle.X != start+30 {
		t.Errorf("X = %v, want %v", paddle.X, start+30)
	}
}
