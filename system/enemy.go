package system

import (
	"math"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

// EnemySystem moves fighters and bombers, fires their guns and despawns stragglers
type EnemySystem struct {
	world   *engine.World
	enabled bool
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		s.world.DestroyEntity(e)
	}
	s.enabled = true
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return constant.PriorityEnemy }

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *EnemySystem) Update() {
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	w := s.world
	now := w.Resources.Time.Now
	dt := w.Resources.Time.Seconds()
	nowMs := float64(now.Milliseconds())
	_, _, playerAlive := playerPosition(w)

	for _, e := range w.Components.Enemy.GetAllEntities() {
		en, ok := w.Components.Enemy.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		c, _ := w.Components.Combat.GetComponent(e)

		despawnX := parameter.FighterDespawnX
		if c.Kind == core.KindFighter {
			k.VY = parameter.FighterDriftAmplitude *
				math.Sin((nowMs+en.SpawnY*parameter.FighterDriftPhaseY)/parameter.FighterDriftPeriodMs)
		} else {
			despawnX = parameter.BomberDespawnX
		}
		k.X += k.VX * dt
		k.Y += k.VY * dt

		if k.X < despawnX {
			despawn(w, e, c.Kind, k)
			continue
		}
		w.Components.Kinetic.SetComponent(e, k)

		if playerAlive && now >= en.NextShotAt {
			en.NextShotAt = now + en.ShotEvery
			w.Components.Enemy.SetComponent(e, en)
			s.shoot(k)
		}
	}
}

// shoot fires a straight shot out of the nose toward the left edge
func (s *EnemySystem) shoot(k component.KineticComponent) {
	d := s.world.Resources.Game.Difficulty()
	s.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnPayload{
		Kind:   core.KindBullet,
		Owner:  component.OwnerEnemy,
		X:      k.X - k.W*parameter.EnemyShotNoseFactor,
		Y:      k.Y,
		VX:     -EnemyShotSpeed(d),
		Damage: parameter.EnemyShotDamage,
	})
}
