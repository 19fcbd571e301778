package engine

import (
	"time"
)

// Ticker is the simulation a ClockScheduler drives
type Ticker interface {
	Tick()
	Running() bool
}

// ClockScheduler runs game ticks on a fixed interval with drift correction
// The loop driving it calls Advance on every wake-up; Advance decides how many ticks are due
// Ticking stops as soon as the game leaves the running phase, the tick never reschedules itself
type ClockScheduler struct {
	game  Ticker
	clock TimeProvider

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction
	maxCatchUp       int       // Ticks run per Advance at most

	// Tick counter for debugging and metrics
	tickCount uint64

	// Hooks run around each tick, on the loop goroutine
	beforeTick []func()
	afterTick  []func()
}

// NewClockScheduler creates a scheduler for game with the given tick interval
func NewClockScheduler(game Ticker, clock TimeProvider, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		game:             game,
		clock:            clock,
		tickInterval:     tickInterval,
		nextTickDeadline: clock.Now().Add(tickInterval),
		maxCatchUp:       2,
	}
}

// BeforeTick registers a hook run before every tick (input sampling)
func (cs *ClockScheduler) BeforeTick(fn func()) {
	cs.beforeTick = append(cs.beforeTick, fn)
}

// AfterTick registers a hook run after every tick (frame presentation)
func (cs *ClockScheduler) AfterTick(fn func()) {
	cs.afterTick = append(cs.afterTick, fn)
}

// Advance runs every tick due at the current time and returns how many ran
// While the game is not running the deadline trails the clock,
// so a restart never bursts through missed ticks
func (cs *ClockScheduler) Advance() int {
	now := cs.clock.Now()

	if !cs.game.Running() {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
		return 0
	}

	ran := 0
	for !now.Before(cs.nextTickDeadline) && cs.game.Running() && ran < cs.maxCatchUp {
		cs.processTick()
		ran++
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
	}

	// Too far behind (suspended process, slow terminal): resync instead of bursting
	maxBehind := cs.tickInterval * 2
	if now.Sub(cs.nextTickDeadline) > maxBehind {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
	}

	return ran
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	for _, fn := range cs.beforeTick {
		fn()
	}
	cs.game.Tick()
	cs.tickCount++
	for _, fn := range cs.afterTick {
		fn()
	}
}

// UntilNextTick returns how long the loop may sleep before the next Advance is useful
func (cs *ClockScheduler) UntilNextTick() time.Duration {
	d := cs.nextTickDeadline.Sub(cs.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

// TickCount returns the number of ticks run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// TickInterval returns the configured interval
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}
