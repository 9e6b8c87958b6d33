package system

import (
	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
)

// WeaponSystem owns every projectile: player cannon and bomb gating,
// creation of requested enemy shots, and motion of everything in flight
type WeaponSystem struct {
	world   *engine.World
	enabled bool
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{world: world}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	for _, e := range s.world.Components.Projectile.GetAllEntities() {
		s.world.DestroyEntity(e)
	}
	s.enabled = true
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return constant.PriorityWeapon }

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileSpawnRequest,
		event.EventGameReset,
	}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	if p, ok := ev.Payload.(*event.ProjectileSpawnPayload); ok {
		s.spawn(p)
	}
}

func (s *WeaponSystem) Update() {
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	s.firePlayerWeapons()
	s.move()
}

// TryFireCannon fires when the cooldown has elapsed; returns whether a bullet left the gun
func (s *WeaponSystem) TryFireCannon() bool {
	w := s.world
	e := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(e)
	if !ok || pilot.Dead || pilot.Landing {
		return false
	}
	now := w.Resources.Time.Now
	if now < pilot.CannonReadyAt {
		return false
	}
	k, ok := w.Components.Kinetic.GetComponent(e)
	if !ok {
		return false
	}
	pilot.CannonReadyAt = now + w.Resources.Config.Weapon.CannonCooldown
	w.Components.Pilot.SetComponent(e, pilot)

	x := k.X + parameter.NoseOffset
	s.spawn(&event.ProjectileSpawnPayload{
		Kind:   core.KindBullet,
		Owner:  component.OwnerPlayer,
		X:      x,
		Y:      k.Y,
		VX:     w.Resources.Config.Weapon.BulletSpeed,
		Damage: parameter.CannonAirDamage,
	})
	emitSound(w, core.SoundGun)
	emitEffect(w, core.EffectMuzzleFlash, x, k.Y, core.EffectParams{Target: e})
	return true
}

// TryDropBomb releases a bomb when one is loaded and the bomb cooldown has elapsed
func (s *WeaponSystem) TryDropBomb() bool {
	w := s.world
	e := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(e)
	if !ok || pilot.Dead || pilot.Landing || pilot.Bombs <= 0 {
		return false
	}
	now := w.Resources.Time.Now
	if now < pilot.BombReadyAt {
		return false
	}
	k, ok := w.Components.Kinetic.GetComponent(e)
	if !ok {
		return false
	}
	cfg := w.Resources.Config.Weapon
	pilot.Bombs--
	pilot.BombReadyAt = now + cfg.BombCooldown
	w.Components.Pilot.SetComponent(e, pilot)

	s.spawn(&event.ProjectileSpawnPayload{
		Kind:  core.KindBomb,
		Owner: component.OwnerPlayer,
		X:     k.X + parameter.BombDropX,
		Y:     k.Y + parameter.BombDropY,
		VX:    cfg.BombVelocityX,
	})
	emitSound(w, core.SoundBombDrop)
	return true
}

func (s *WeaponSystem) firePlayerWeapons() {
	intent := s.world.Resources.Input.Intent
	if intent.FireHeld {
		s.TryFireCannon()
	}
	if intent.BombPressed {
		s.TryDropBomb()
	}
}

func (s *WeaponSystem) spawn(p *event.ProjectileSpawnPayload) core.Entity {
	w := s.world
	cfg := w.Resources.Config
	proj := component.ProjectileComponent{
		Kind:   p.Kind,
		Owner:  p.Owner,
		Damage: p.Damage,
	}
	width, height := parameter.BulletWidth, parameter.BulletHeight
	switch p.Kind {
	case core.KindBomb:
		width, height = parameter.BombWidth, parameter.BombHeight
		proj.Gravity = cfg.Weapon.BombGravity
		proj.Drift = cfg.WorldSpeed * cfg.Weapon.BombDriftFactor
	case core.KindFlak:
		width, height = parameter.FlakWidth, parameter.FlakHeight
		proj.ExpiresAt = w.Resources.Time.Now + parameter.FlakLifetime
	case core.KindBullet:
		if p.Owner == component.OwnerEnemy {
			width, height = parameter.EnemyShotW, parameter.EnemyShotH
		}
	}

	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X: p.X, Y: p.Y, VX: p.VX, VY: p.VY, W: width, H: height,
	})
	w.Components.Projectile.SetComponent(e, proj)
	w.Resources.Status.Ints.Get(status.KeyProjectiles).Add(1)
	return e
}

// move integrates projectile motion; bombs fall under gravity and drift back with the world
func (s *WeaponSystem) move() {
	w := s.world
	dt := w.Resources.Time.Seconds()
	now := w.Resources.Time.Now

	for _, e := range w.Components.Projectile.GetAllEntities() {
		proj, ok := w.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		if proj.ExpiresAt > 0 && now >= proj.ExpiresAt {
			w.DestroyEntity(e)
			if onScreen(w, k.X, k.Y) {
				emitEffect(w, core.EffectFlakBurst, k.X, k.Y, core.EffectParams{})
			}
			continue
		}
		if proj.Gravity != 0 {
			k.VY += proj.Gravity * dt
		}
		k.X += (k.VX - proj.Drift) * dt
		k.Y += k.VY * dt
		w.Components.Kinetic.SetComponent(e, k)
	}
}
