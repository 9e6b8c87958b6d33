package event

import "github.com/lixenwraith/pacific-fighter/parameter"

// EventQueue is a FIFO of pending events owned by the tick goroutine
// Drain swaps buffers so handlers may push while a batch is dispatched
type EventQueue struct {
	pending []GameEvent
	spare   []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
		spare:   make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.pending = append(q.pending, ev)
}

// Drain returns all pending events in FIFO order and empties the queue
// The returned slice is valid until the next Drain
func (q *EventQueue) Drain() []GameEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending events
func (q *EventQueue) Clear() {
	q.pending = q.pending[:0]
}
