package engine

import "github.com/lixenwraith/pacific-fighter/event"

// System is a tick participant
// Lower Priority runs first
type System interface {
	Init()
	Name() string
	Priority() int
	Update()
}

// EventHandler is implemented by systems that consume routed events
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}
