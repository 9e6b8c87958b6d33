package system

import (
	"math"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// GroundDamage applies the primary target's armor to small hits
func GroundDamage(kind core.Kind, amount int) int {
	if kind == core.KindPrimary && amount <= parameter.PrimaryArmorThreshold {
		return int(math.Ceil(float64(amount) * parameter.PrimaryArmorFactor))
	}
	return amount
}

// KillScore is the award for destroying an entity of the given kind
func KillScore(kind core.Kind) int {
	switch kind {
	case core.KindFighter:
		return parameter.ScoreFighter
	case core.KindBomber:
		return parameter.ScoreBomber
	case core.KindPrimary:
		return parameter.ScorePrimary
	case core.KindTurret:
		return parameter.ScoreTurret
	case core.KindSecondary:
		return parameter.ScoreSecondary
	case core.KindBoat:
		return parameter.ScoreBoat
	case core.KindBattleship:
		return parameter.ScoreBattleship
	}
	return 0
}

// ApplyDamage subtracts hp from a combat entity and destroys it on reaching zero
// Returns true only on the call that kills; entities already gone are ignored
func ApplyDamage(w *engine.World, e core.Entity, amount int) bool {
	c, ok := w.Components.Combat.GetComponent(e)
	if !ok || amount <= 0 {
		return false
	}
	if c.Kind.IsGround() {
		amount = GroundDamage(c.Kind, amount)
	}
	k, _ := w.Components.Kinetic.GetComponent(e)

	c.HitPoints -= amount
	if c.HitPoints > 0 {
		w.Components.Combat.SetComponent(e, c)
		emitEffect(w, core.EffectSpark, k.X, k.Y, core.EffectParams{Target: e})
		return false
	}

	w.DestroyEntity(e)
	w.Resources.Game.AddScore(KillScore(c.Kind))
	w.Resources.Status.Ints.Get(status.KeyKills).Add(1)
	w.PushEvent(event.EventEntityDestroyed, &event.EntityDestroyedPayload{
		Entity: e, Kind: c.Kind, X: k.X, Y: k.Y, Killed: true,
	})

	switch c.Kind {
	case core.KindBattleship, core.KindPrimary, core.KindBomber:
		emitEffect(w, core.EffectExplosionBig, k.X, k.Y, core.EffectParams{Scale: parameter.BigExplosionScale})
		emitSound(w, core.SoundExplosionBig)
	default:
		emitEffect(w, core.EffectExplosion, k.X, k.Y, core.EffectParams{Scale: parameter.ExplosionEffectScale})
		emitSound(w, core.SoundExplosion)
	}
	return true
}

// DamagePlayer lowers player health; landing and dead pilots take no damage
// Returns true on the hit that kills the player
func DamagePlayer(w *engine.World, amount float64) bool {
	e := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(e)
	if !ok || pilot.Dead || pilot.Landing || amount <= 0 {
		return false
	}
	pilot.Health -= amount
	if pilot.Health <= 0 {
		pilot.Health = 0
		pilot.Dead = true
	}
	w.Components.Pilot.SetComponent(e, pilot)
	if pilot.Dead {
		w.PushEvent(event.EventPlayerDeath, nil)
		return true
	}
	return false
}

// Explode applies bomb splash once: aircraft and ground targets within radius
func Explode(w *engine.World, x, y float64) {
	cfg := w.Resources.Config.Weapon
	emitEffect(w, core.EffectExplosionBig, x, y, core.EffectParams{Scale: parameter.BigExplosionScale})
	emitSound(w, core.SoundExplosionBig)

	for _, e := range w.Components.Enemy.GetAllEntities() {
		if k, ok := w.Components.Kinetic.GetComponent(e); ok &&
			vmath.Distance(x, y, k.X, k.Y) <= cfg.ExplosionRadius {
			ApplyDamage(w, e, cfg.SplashAirDamage)
		}
	}
	for _, e := range w.Components.Ground.GetAllEntities() {
		if k, ok := w.Components.Kinetic.GetComponent(e); ok &&
			vmath.Distance(x, y, k.X, k.Y) <= cfg.ExplosionRadius {
			ApplyDamage(w, e, cfg.SplashGroundDmg)
		}
	}
}
