package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// World contains all entities, their components, global resources and systems
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resources

	queue   *event.EventQueue
	router  *EventRouter
	systems []System
}

// NewWorld creates a world for the given tuning, random seed and collaborators
func NewWorld(tuning parameter.Tuning, seed uint64, sinks Sinks) *World {
	queue := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources: Resources{
			Time:   &TimeResource{},
			Input:  &InputResource{},
			Config: &tuning,
			Game:   &GameStateResource{},
			Stage:  &StageResource{GroundY: tuning.OceanLineY() + parameter.OceanGroundDrop},
			Rand:   vmath.NewFastRand(seed),
			Status: status.NewRegistry(),
			Sinks:  sinks.WithDefaults(),
		},
		queue:  queue,
		router: NewEventRouter(queue),
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an already destroyed entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
}

// Alive reports whether the entity still has a position
func (w *World) Alive(e core.Entity) bool {
	return w.Components.Kinetic.HasEntity(e)
}

// Clear removes all entities and pending events, keeping systems registered
func (w *World) Clear() {
	w.Components.clear()
	w.queue.Clear()
	w.Resources.Stage.Island = 0
	w.Resources.Stage.Carrier = 0
	w.Resources.Stage.GroundY = w.Resources.Config.OceanLineY() + parameter.OceanGroundDrop
}

// AddSystem registers a system, keeps systems sorted by priority and
// subscribes it to the router when it handles events
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns registered systems in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// DispatchEvents routes every pending event
func (w *World) DispatchEvents() {
	w.router.Dispatch()
}

// Update runs one tick: pending events first, then each system followed by
// dispatch of whatever it emitted, so later systems see earlier decisions
func (w *World) Update() {
	w.router.Dispatch()
	for _, s := range w.systems {
		s.Update()
		w.router.Dispatch()
	}
}

// Router exposes the event router for diagnostics
func (w *World) Router() *EventRouter {
	return w.router
}
