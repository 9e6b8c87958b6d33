package system

import (
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
)

// CullSystem removes projectiles that left the playfield margin and wipes
// hostiles once the player is down
type CullSystem struct {
	world   *engine.World
	enabled bool
}

func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{world: world}
	s.Init()
	return s
}

func (s *CullSystem) Init() {
	s.enabled = true
}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return constant.PriorityCull }

func (s *CullSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerDeath,
		event.EventGameReset,
	}
}

func (s *CullSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventPlayerDeath:
		s.clearHostiles()
	}
}

func (s *CullSystem) Update() {
	if !s.enabled {
		return
	}
	w := s.world
	cfg := w.Resources.Config
	margin := cfg.Weapon.OffscreenMargin
	for _, e := range w.Components.Projectile.GetAllEntities() {
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		if k.X < -margin || k.X > cfg.Screen.Width+margin ||
			k.Y < -margin || k.Y > cfg.Screen.Height+margin {
			w.DestroyEntity(e)
		}
	}
}

// clearHostiles removes every combat entity and projectile without awarding score
func (s *CullSystem) clearHostiles() {
	w := s.world
	for _, e := range w.Components.Combat.GetAllEntities() {
		w.DestroyEntity(e)
	}
	for _, e := range w.Components.Projectile.GetAllEntities() {
		w.DestroyEntity(e)
	}
}
