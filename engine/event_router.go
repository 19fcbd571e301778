package engine

// EventHandler observes game events after the tick that raised them
// The sound manager and the session log are the frontends' handlers
type EventHandler interface {
	HandleEvent(event GameEvent)

	// EventTypes lists the kinds the handler subscribes to, read once at Register
	EventTypes() []EventType
}

// EventRouter fans queued game events out to subscribers on the loop goroutine
// Subscribers of one kind are called in the order they registered
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue oldest first and returns how many handler calls were made
// Events nobody subscribed to are dropped
func (r *EventRouter) DispatchAll() int {
	delivered := 0
	for _, ev := range r.queue.Consume() {
		subs := r.handlers[ev.Type]
		for _, h := range subs {
			h.HandleEvent(ev)
		}
		delivered += len(subs)
	}
	return delivered
}

// HandlerCount reports subscribers for one event kind
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
