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
)

// IslandSystem owns the island mass and its ground targets during ISLAND
type IslandSystem struct {
	world   *engine.World
	enabled bool
}

func NewIslandSystem(world *engine.World) engine.System {
	s := &IslandSystem{world: world}
	s.Init()
	return s
}

func (s *IslandSystem) Init() {
	s.destroy()
	s.enabled = true
}

func (s *IslandSystem) Name() string { return "island" }

func (s *IslandSystem) Priority() int { return constant.PriorityIsland }

func (s *IslandSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSegmentEnter,
		event.EventGameReset,
	}
}

func (s *IslandSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.enabled {
		return
	}
	if p, ok := ev.Payload.(*event.SegmentPayload); ok {
		if p.To == core.SegmentIsland {
			s.create()
		} else {
			s.destroy()
		}
	}
}

func (s *IslandSystem) Update() {
	if !s.enabled {
		return
	}
	dx := s.world.Resources.Config.WorldSpeed * s.world.Resources.Time.Seconds()

	for _, e := range s.world.Components.Ground.GetAllEntities() {
		k, ok := scrollLeft(s.world, e, dx)
		if !ok {
			continue
		}
		if k.X < parameter.GroundDespawnX {
			c, _ := s.world.Components.Combat.GetComponent(e)
			despawn(s.world, e, c.Kind, k)
		}
	}

	stage := s.world.Resources.Stage
	if stage.Island == 0 {
		return
	}
	k, ok := scrollLeft(s.world, stage.Island, dx)
	if !ok || k.X < parameter.IslandDespawnX {
		s.destroyBody()
		return
	}
	stage.GroundY = k.Box().Top()
}

// create replaces any island with a fresh one carrying a primary, secondaries and turrets
func (s *IslandSystem) create() {
	s.destroy()

	w := s.world
	cfg := w.Resources.Config
	r := w.Resources.Rand
	now := w.Resources.Time.Now
	d := w.Resources.Game.Difficulty()

	body := component.KineticComponent{
		X: cfg.Screen.Width + parameter.IslandOffsetX,
		Y: cfg.Screen.Height - parameter.IslandHeight/2,
		W: parameter.IslandWidth,
		H: parameter.IslandHeight,
	}
	island := w.CreateEntity()
	w.Components.Kinetic.SetComponent(island, body)
	w.Components.SetPiece.SetComponent(island, component.SetPieceComponent{Kind: core.KindIsland})
	w.Resources.Stage.Island = island
	w.Resources.Stage.GroundY = body.Box().Top()
	top := body.Box().Top()

	s.spawnTarget(core.KindPrimary, 0,
		body.X+r.Range(-parameter.PrimaryJitterX, parameter.PrimaryJitterX), top,
		parameter.PrimaryWidth, parameter.PrimaryHeight, parameter.PrimaryHP)

	secondaries := 2 + r.Intn(2)
	for i := 0; i < secondaries; i++ {
		x := body.X - parameter.SecondarySpacing + float64(i)*parameter.SecondarySpacing +
			r.Range(-parameter.SecondaryJitterX, parameter.SecondaryJitterX)
		s.spawnTarget(core.KindSecondary, i, x, top,
			parameter.SecondaryWidth, parameter.SecondaryHeight, parameter.SecondaryHP)
	}

	for i := 0; i < parameter.TurretCount; i++ {
		x := body.X - parameter.TurretSpacing + float64(i)*parameter.TurretSpacing
		e := s.spawnTarget(core.KindTurret, i, x, top,
			parameter.TurretWidth, parameter.TurretHeight, parameter.TurretHP)
		g, _ := w.Components.Ground.GetComponent(e)
		g.FireEvery = TurretFireEvery(d)
		g.FireChance = TurretFireChance(d)
		g.NextFireAt = now + parameter.TurretFirstShot + parameter.TurretStagger*time.Duration(i)
		w.Components.Ground.SetComponent(e, g)
	}

	log.Printf("island: spawned with %d secondaries at difficulty %d", secondaries, d)
}

// spawnTarget places a ground target resting on the island surface
func (s *IslandSystem) spawnTarget(kind core.Kind, index int, x, top, w, h float64, hp int) core.Entity {
	e := s.world.CreateEntity()
	s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{X: x, Y: top - h/2, W: w, H: h})
	s.world.Components.Combat.SetComponent(e, component.CombatComponent{Kind: kind, HitPoints: hp, MaxHitPoints: hp})
	s.world.Components.Ground.SetComponent(e, component.GroundComponent{Index: index})
	return e
}

// destroy removes the island and every remaining ground target
func (s *IslandSystem) destroy() {
	for _, e := range s.world.Components.Ground.GetAllEntities() {
		s.world.DestroyEntity(e)
	}
	s.destroyBody()
}

func (s *IslandSystem) destroyBody() {
	stage := s.world.Resources.Stage
	if stage.Island == 0 {
		return
	}
	s.world.DestroyEntity(stage.Island)
	stage.Island = 0
	stage.GroundY = s.world.Resources.Config.OceanLineY() + parameter.OceanGroundDrop
}
