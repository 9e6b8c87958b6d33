package system

import (
	"log"
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
)

// ConvoySystem sends batches of boats during OCEAN
// A new batch waits until every boat of the previous one is gone, plus a random delay
type ConvoySystem struct {
	world       *engine.World
	active      bool
	batch       int
	nextSpawnAt time.Duration // zero means unscheduled
	enabled     bool
}

func NewConvoySystem(world *engine.World) engine.System {
	s := &ConvoySystem{world: world}
	s.Init()
	return s
}

func (s *ConvoySystem) Init() {
	s.clear()
	s.nextSpawnAt = 0
	s.batch = 0
	s.enabled = true
}

func (s *ConvoySystem) Name() string { return "convoy" }

func (s *ConvoySystem) Priority() int { return constant.PriorityConvoy }

func (s *ConvoySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ConvoySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Active reports whether a batch is still on the water
func (s *ConvoySystem) Active() bool {
	return s.active
}

// NextSpawnAt exposes the batch timer
func (s *ConvoySystem) NextSpawnAt() time.Duration {
	return s.nextSpawnAt
}

func (s *ConvoySystem) Update() {
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	w := s.world
	now := w.Resources.Time.Now

	if w.Resources.Game.Segment != core.SegmentOcean {
		s.clear()
		s.nextSpawnAt = 0
		return
	}

	if !s.active {
		if s.nextSpawnAt == 0 {
			s.nextSpawnAt = now + parameter.ConvoyFirstDelay
		}
		if now >= s.nextSpawnAt {
			s.spawnBatch()
		}
	}

	dx := w.Resources.Config.WorldSpeed * w.Resources.Time.Seconds()
	for _, e := range w.Components.Boat.GetAllEntities() {
		k, ok := scrollLeft(w, e, dx)
		if ok && k.X < parameter.BoatDespawnX {
			despawn(w, e, core.KindBoat, k)
		}
	}

	if s.active && w.Components.Boat.CountEntities() == 0 {
		s.active = false
		s.nextSpawnAt = now + parameter.ConvoyRespawnMin + jitter(w.Resources.Rand, parameter.ConvoyRespawnSpan)
	}
}

func (s *ConvoySystem) spawnBatch() {
	w := s.world
	cfg := w.Resources.Config
	r := w.Resources.Rand
	d := w.Resources.Game.Difficulty()

	count := parameter.ConvoyMinBoats + r.Intn(parameter.ConvoyMaxBoats-parameter.ConvoyMinBoats+1)
	gap := r.Range(parameter.ConvoyGapMin, parameter.ConvoyGapMax)
	hp := BoatHP(d)
	s.batch++

	for i := 0; i < count; i++ {
		e := w.CreateEntity()
		w.Components.Kinetic.SetComponent(e, component.KineticComponent{
			X: cfg.Screen.Width + parameter.ConvoyOffsetX + float64(i)*gap,
			Y: cfg.OceanLineY() - parameter.BoatLift + r.Range(-parameter.ConvoyBob, parameter.ConvoyBob),
			W: parameter.BoatWidth,
			H: parameter.BoatHeight,
		})
		w.Components.Combat.SetComponent(e, component.CombatComponent{Kind: core.KindBoat, HitPoints: hp, MaxHitPoints: hp})
		w.Components.Boat.SetComponent(e, component.BoatComponent{Batch: s.batch})
	}
	s.active = true
	s.nextSpawnAt = 0
	w.Resources.Status.Ints.Get(status.KeySpawnBoat).Add(int64(count))
	log.Printf("convoy: batch %d with %d boats", s.batch, count)
}

func (s *ConvoySystem) clear() {
	for _, e := range s.world.Components.Boat.GetAllEntities() {
		s.world.DestroyEntity(e)
	}
	s.active = false
}
