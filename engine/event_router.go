package engine

import (
	"log"

	"github.com/lixenwraith/pacific-fighter/event"
)

// maxDispatchPasses bounds handler chains that keep emitting events
const maxDispatchPasses = 16

// EventRouter dispatches queued events to registered handlers
// Handlers run synchronously in registration order; events pushed by a handler
// are delivered in a later pass of the same dispatch
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch drains the queue until empty
func (r *EventRouter) Dispatch() {
	for pass := 0; pass < maxDispatchPasses; pass++ {
		events := r.queue.Drain()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
	}
	log.Printf("event router: dropping %d events after %d passes", r.queue.Len(), maxDispatchPasses)
	r.queue.Clear()
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
