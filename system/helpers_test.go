package system

import (
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

const testStep = 100 * time.Millisecond

// newTestWorld builds a seeded world with the given systems registered
func newTestWorld(factories ...func(*engine.World) engine.System) *engine.World {
	return newTestWorldWithSinks(engine.Sinks{}, factories...)
}

func newTestWorldWithSinks(sinks engine.Sinks, factories ...func(*engine.World) engine.System) *engine.World {
	w := engine.NewWorld(parameter.Default(), 42, sinks)
	for _, f := range factories {
		w.AddSystem(f(w))
	}
	return w
}

// step advances the world clock by dt and runs one tick
func step(w *engine.World, dt time.Duration) {
	w.Resources.Time.Update(w.Resources.Time.Now+dt, dt)
	w.Update()
}

// run ticks the world for the given game time, calling check after every tick
func run(w *engine.World, total time.Duration, check func()) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += testStep {
		step(w, testStep)
		if check != nil {
			check()
		}
	}
}

// spawnHostile places a combat entity of the given kind
func spawnHostile(w *engine.World, kind core.Kind, x, y, width, height float64, hp int) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{X: x, Y: y, W: width, H: height})
	w.Components.Combat.SetComponent(e, component.CombatComponent{Kind: kind, HitPoints: hp, MaxHitPoints: hp})
	switch {
	case kind.IsAircraft():
		w.Components.Enemy.SetComponent(e, component.EnemyComponent{SpawnY: y, NextShotAt: time.Hour})
	case kind.IsGround():
		w.Components.Ground.SetComponent(e, component.GroundComponent{NextFireAt: time.Hour})
	case kind == core.KindBoat:
		w.Components.Boat.SetComponent(e, component.BoatComponent{Batch: 1})
	}
	return e
}

// spawnProjectile places a projectile without going through the weapon system
func spawnProjectile(w *engine.World, kind core.Kind, owner component.Owner, x, y, vx, vy float64, damage int) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X: x, Y: y, VX: vx, VY: vy, W: parameter.BombWidth, H: parameter.BombHeight,
	})
	proj := component.ProjectileComponent{Kind: kind, Owner: owner, Damage: damage}
	if kind == core.KindBomb {
		proj.Gravity = w.Resources.Config.Weapon.BombGravity
		proj.Drift = w.Resources.Config.WorldSpeed * w.Resources.Config.Weapon.BombDriftFactor
	}
	w.Components.Projectile.SetComponent(e, proj)
	return e
}

// hitPoints returns remaining hp, -1 once the entity is gone
func hitPoints(w *engine.World, e core.Entity) int {
	c, ok := w.Components.Combat.GetComponent(e)
	if !ok {
		return -1
	}
	return c.HitPoints
}

// recordingAudio counts played cues
type recordingAudio struct {
	engine.NopAudio
	played []core.SoundType
}

func (a *recordingAudio) Play(s core.SoundType) bool {
	a.played = append(a.played, s)
	return true
}

func (a *recordingAudio) count(s core.SoundType) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}
