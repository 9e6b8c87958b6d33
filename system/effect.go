package system

import (
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
)

// EffectSystem forwards visual requests to the presentation sink
type EffectSystem struct {
	world   *engine.World
	sink    engine.EffectSink
	enabled bool
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{
		world: world,
		sink:  world.Resources.Sinks.Effects,
	}
	s.Init()
	return s
}

func (s *EffectSystem) Init() {
	s.enabled = true
}

func (s *EffectSystem) Name() string { return "effect" }

func (s *EffectSystem) Priority() int { return constant.PriorityEffect }

func (s *EffectSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEffectRequest,
	}
}

func (s *EffectSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.enabled || s.sink == nil {
		return
	}
	if p, ok := ev.Payload.(*event.EffectRequestPayload); ok {
		s.sink.SpawnEffect(p.Kind, p.X, p.Y, p.Params)
	}
}

// Update implements System interface (no tick-based logic)
func (s *EffectSystem) Update() {}
