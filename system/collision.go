package system

import (
	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

// CollisionSystem resolves every impact of the tick: player bullets and bombs
// against hostiles, enemy fire against the player and aircraft ramming
// It is the only writer of hit points outside bomb splash
type CollisionSystem struct {
	world   *engine.World
	enabled bool
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{world: world}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.enabled = true
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return constant.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *CollisionSystem) Update() {
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	w := s.world
	for _, e := range w.Components.Projectile.GetAllEntities() {
		proj, ok := w.Components.Projectile.GetComponent(e)
		if !ok || proj.Spent {
			continue
		}
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		switch {
		case proj.Owner == component.OwnerEnemy:
			s.enemyFire(e, proj, k)
		case proj.Kind == core.KindBomb:
			s.bomb(e, proj, k)
		default:
			s.playerBullet(e, proj, k)
		}
	}
	s.ramming()
}

// consume marks a projectile spent and removes it
func (s *CollisionSystem) consume(e core.Entity, proj component.ProjectileComponent) {
	proj.Spent = true
	s.world.Components.Projectile.SetComponent(e, proj)
	s.world.DestroyEntity(e)
}

// bulletDamage is the cannon damage table by target kind
func bulletDamage(w *engine.World, kind core.Kind) int {
	switch {
	case kind.IsAircraft():
		return parameter.CannonAirDamage
	case kind == core.KindBattleship:
		return w.Resources.Config.Battleship.BulletDamage
	default:
		return parameter.CannonGroundDamage
	}
}

// playerBullet damages the first overlapping hostile: aircraft, then battleship, boats, ground
func (s *CollisionSystem) playerBullet(e core.Entity, proj component.ProjectileComponent, k component.KineticComponent) {
	w := s.world
	target, kind, ok := s.firstHit(k)
	if !ok {
		return
	}
	s.consume(e, proj)
	ApplyDamage(w, target, bulletDamage(w, kind))
}

// firstHit finds the highest priority live hostile overlapping the box
func (s *CollisionSystem) firstHit(k component.KineticComponent) (core.Entity, core.Kind, bool) {
	w := s.world
	box := k.Box()
	var best core.Entity
	bestRank := -1
	bestKind := core.KindNone
	for _, t := range w.Components.Combat.GetAllEntities() {
		c, ok := w.Components.Combat.GetComponent(t)
		if !ok {
			continue
		}
		tk, ok := w.Components.Kinetic.GetComponent(t)
		if !ok || !box.Overlaps(tk.Box()) {
			continue
		}
		rank := hitRank(c.Kind)
		if bestRank < 0 || rank < bestRank {
			best, bestRank, bestKind = t, rank, c.Kind
		}
	}
	return best, bestKind, bestRank >= 0
}

func hitRank(kind core.Kind) int {
	switch {
	case kind.IsAircraft():
		return 0
	case kind == core.KindBattleship:
		return 1
	case kind == core.KindBoat:
		return 2
	default:
		return 3
	}
}

// bomb detonates on the first hostile it touches or on the ground proxy
// Only ground impacts splash
func (s *CollisionSystem) bomb(e core.Entity, proj component.ProjectileComponent, k component.KineticComponent) {
	w := s.world
	box := k.Box()

	for _, t := range w.Components.Combat.GetAllEntities() {
		c, ok := w.Components.Combat.GetComponent(t)
		if !ok || c.Kind.IsAircraft() {
			continue
		}
		tk, ok := w.Components.Kinetic.GetComponent(t)
		if !ok || !box.Overlaps(tk.Box()) {
			continue
		}
		s.consume(e, proj)
		switch {
		case c.Kind.IsGround():
			ApplyDamage(w, t, parameter.DirectBombGroundDmg)
			Explode(w, k.X, k.Y)
		case c.Kind == core.KindBattleship:
			ApplyDamage(w, t, w.Resources.Config.Battleship.BombDamage)
			shipHit(w, k.X, k.Y)
		case c.Kind == core.KindBoat:
			ApplyDamage(w, t, parameter.BombBoatDamage)
			shipHit(w, k.X, k.Y)
		}
		return
	}

	stage := w.Resources.Stage
	if box.Bottom() < stage.GroundY {
		return
	}
	s.consume(e, proj)
	if stage.OpenOcean() {
		emitEffect(w, core.EffectSplash, k.X, w.Resources.Config.OceanLineY(), core.EffectParams{})
		emitSound(w, core.SoundSplash)
		return
	}
	Explode(w, k.X, stage.GroundY)
}

// shipHit is the hull impact of a bomb: no splash reaches nearby targets
func shipHit(w *engine.World, x, y float64) {
	emitEffect(w, core.EffectExplosion, x, y, core.EffectParams{Scale: parameter.ExplosionEffectScale})
	emitSound(w, core.SoundExplosion)
}

// enemyFire hits the player box; landing pilots absorb the projectile without damage
func (s *CollisionSystem) enemyFire(e core.Entity, proj component.ProjectileComponent, k component.KineticComponent) {
	w := s.world
	pe := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(pe)
	if !ok || pilot.Dead {
		return
	}
	pk, ok := w.Components.Kinetic.GetComponent(pe)
	if !ok || !k.Box().Overlaps(pk.Box()) {
		return
	}
	s.consume(e, proj)
	if DamagePlayer(w, float64(proj.Damage)) {
		return
	}
	emitEffect(w, core.EffectSpark, k.X, k.Y, core.EffectParams{Target: pe})
}

// ramming applies contact damage from each overlapping aircraft at most once per contact period
func (s *CollisionSystem) ramming() {
	w := s.world
	pe := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(pe)
	if !ok || pilot.Dead || pilot.Landing {
		return
	}
	pk, ok := w.Components.Kinetic.GetComponent(pe)
	if !ok {
		return
	}
	now := w.Resources.Time.Now
	for _, e := range w.Components.Enemy.GetAllEntities() {
		enemy, ok := w.Components.Enemy.GetComponent(e)
		if !ok || now < enemy.ContactReadyAt {
			continue
		}
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok || !k.Box().Overlaps(pk.Box()) {
			continue
		}
		enemy.ContactReadyAt = now + w.Resources.Config.Player.ContactPeriod
		w.Components.Enemy.SetComponent(e, enemy)
		if DamagePlayer(w, parameter.ContactDamage) {
			return
		}
	}
}
