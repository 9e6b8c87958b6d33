package system

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
)

// BattleshipSystem owns the single capital ship that sails during OCEAN
type BattleshipSystem struct {
	world       *engine.World
	ship        core.Entity
	nextSpawnAt time.Duration // zero means unscheduled
	enabled     bool
}

func NewBattleshipSystem(world *engine.World) engine.System {
	s := &BattleshipSystem{world: world}
	s.Init()
	return s
}

func (s *BattleshipSystem) Init() {
	if s.ship != 0 {
		s.world.DestroyEntity(s.ship)
	}
	s.ship = 0
	s.nextSpawnAt = 0
	s.enabled = true
}

func (s *BattleshipSystem) Name() string { return "battleship" }

func (s *BattleshipSystem) Priority() int { return constant.PriorityBattleship }

func (s *BattleshipSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntityDestroyed,
		event.EventGameReset,
	}
}

func (s *BattleshipSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventEntityDestroyed:
		if p, ok := ev.Payload.(*event.EntityDestroyedPayload); ok && p.Entity == s.ship && s.ship != 0 {
			s.ship = 0
			s.scheduleRespawn()
		}
	}
}

// Active reports whether a battleship is afloat
func (s *BattleshipSystem) Active() bool {
	return s.ship != 0
}

func (s *BattleshipSystem) Update() {
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	w := s.world
	now := w.Resources.Time.Now

	if w.Resources.Game.Segment != core.SegmentOcean {
		if s.ship != 0 {
			w.DestroyEntity(s.ship)
			s.ship = 0
		}
		s.nextSpawnAt = 0
		return
	}

	if s.ship != 0 && !w.Alive(s.ship) {
		// Removed outside this system, e.g. game over sweep
		s.ship = 0
		s.scheduleRespawn()
	}

	if s.ship == 0 {
		if s.nextSpawnAt == 0 {
			s.nextSpawnAt = now + w.Resources.Config.Battleship.FirstDelay
		}
		if now >= s.nextSpawnAt {
			s.spawn()
		}
		return
	}

	dx := w.Resources.Config.WorldSpeed * w.Resources.Time.Seconds()
	k, ok := scrollLeft(w, s.ship, dx)
	if !ok {
		return
	}
	if k.X < parameter.BattleshipDespawnX {
		ship := s.ship
		s.ship = 0
		despawn(w, ship, core.KindBattleship, k)
		s.scheduleRespawn()
		return
	}
	s.fire(k, now)
	s.smoke(k, now)
}

func (s *BattleshipSystem) scheduleRespawn() {
	cfg := s.world.Resources.Config.Battleship
	s.nextSpawnAt = s.world.Resources.Time.Now + cfg.RespawnMin + jitter(s.world.Resources.Rand, cfg.RespawnJitter)
}

func (s *BattleshipSystem) spawn() {
	w := s.world
	cfg := w.Resources.Config
	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X: cfg.Screen.Width + parameter.BattleshipOffsetX,
		Y: cfg.OceanLineY() - parameter.BattleshipLift,
		W: parameter.BattleshipWidth,
		H: parameter.BattleshipHeight,
	})
	w.Components.Combat.SetComponent(e, component.CombatComponent{
		Kind:         core.KindBattleship,
		HitPoints:    cfg.Battleship.HP,
		MaxHitPoints: cfg.Battleship.HP,
	})
	w.Components.Battleship.SetComponent(e, component.BattleshipComponent{
		NextFireAt: w.Resources.Time.Now + parameter.BattleshipFirstShot,
	})
	s.ship = e
	s.nextSpawnAt = 0
	w.Resources.Status.Ints.Get(status.KeySpawnShip).Add(1)
	log.Printf("battleship: spawned hp=%d", cfg.Battleship.HP)
}

// fire shoots flak at the player from one random turret
func (s *BattleshipSystem) fire(k component.KineticComponent, now time.Duration) {
	w := s.world
	bs, ok := w.Components.Battleship.GetComponent(s.ship)
	if !ok || now < bs.NextFireAt {
		return
	}
	cfg := w.Resources.Config.Battleship
	bs.NextFireAt = now + cfg.FireEvery
	w.Components.Battleship.SetComponent(s.ship, bs)

	if !w.Resources.Rand.Chance(cfg.FireChance) {
		return
	}
	turret := parameter.BattleshipTurrets[w.Resources.Rand.Intn(len(parameter.BattleshipTurrets))]
	fireFlak(w, k.X+turret[0], k.Y+turret[1])
}

// smoke emits hull smoke more often as the ship takes damage
func (s *BattleshipSystem) smoke(k component.KineticComponent, now time.Duration) {
	w := s.world
	bs, ok := w.Components.Battleship.GetComponent(s.ship)
	if !ok || now < bs.NextSmokeAt {
		return
	}
	bs.NextSmokeAt = now + parameter.SmokeCheckPeriod
	w.Components.Battleship.SetComponent(s.ship, bs)

	c, ok := w.Components.Combat.GetComponent(s.ship)
	if !ok {
		return
	}
	chance := 0.0
	switch frac := c.Fraction(); {
	case frac < 0.2:
		chance = parameter.SmokeChanceCritical
	case frac < 0.5:
		chance = parameter.SmokeChanceDamaged
	}
	if chance > 0 && w.Resources.Rand.Chance(chance) {
		r := w.Resources.Rand
		emitEffect(w, core.EffectSmoke, k.X+r.Range(-k.W/3, k.W/3), k.Box().Top(), core.EffectParams{Target: s.ship})
	}
}

// fireFlak launches a flak shell from (x, y) toward the player with angular jitter
func fireFlak(w *engine.World, x, y float64) {
	px, py, ok := playerPosition(w)
	if !ok {
		return
	}
	r := w.Resources.Rand
	d := w.Resources.Game.Difficulty()
	angle := math.Atan2(py-y, px-x) + (r.Float64()-0.5)*parameter.FlakJitter
	speed := FlakSpeed(d)
	w.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnPayload{
		Kind:   core.KindFlak,
		Owner:  component.OwnerEnemy,
		X:      x,
		Y:      y,
		VX:     math.Cos(angle)*speed - w.Resources.Config.WorldSpeed*parameter.FlakWorldDrag,
		VY:     math.Sin(angle) * speed,
		Damage: parameter.EnemyShotDamage,
	})
	emitSound(w, core.SoundFlak)
}
