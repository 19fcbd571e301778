package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-breakout/components"
)

// EventType represents the type of game event
// Events are pushed during a tick and dispatched after the tick completes,
// so handlers observe a consistent end-of-tick state
type EventType int

const (
	// EventRoundStarted fires when Start serves a new ball
	EventRoundStarted EventType = iota

	// EventWallBounce fires when the ball reflects off a side or the top edge
	// Payload: Bounce holds BounceSide and/or BounceTop
	EventWallBounce

	// EventPaddleBounce fires when the ball reflects off the paddle
	EventPaddleBounce

	// EventBlockDestroyed fires once per removed block
	// Payload: Block, Score after the block was counted
	EventBlockDestroyed

	// EventRoundLost fires when the ball passes the paddle row
	// Payload: Score and Lives after the decrement
	EventRoundLost

	// EventWallCleared fires on the tick that removes the last block
	EventWallCleared
)

var eventNames = [...]string{
	EventRoundStarted:   "round_started",
	EventWallBounce:     "wall_bounce",
	EventPaddleBounce:   "paddle_bounce",
	EventBlockDestroyed: "block_destroyed",
	EventRoundLost:      "round_lost",
	EventWallCleared:    "wall_cleared",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// GameEvent is a single event with its payload
type GameEvent struct {
	Type  EventType
	Frame uint64 // tick count when the event was pushed

	Score  int
	Lives  int
	Bounce components.Bounce
	Block  *components.Block
}

// EventQueue buffers events produced during a tick
// Single producer and single consumer, both on the game loop goroutine
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
