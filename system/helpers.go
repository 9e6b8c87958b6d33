package system

import (
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

func emitSound(w *engine.World, sound core.SoundType) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})
}

func emitEffect(w *engine.World, kind core.EffectKind, x, y float64, params core.EffectParams) {
	w.PushEvent(event.EventEffectRequest, &event.EffectRequestPayload{Kind: kind, X: x, Y: y, Params: params})
}

// despawn removes an entity that left the screen without awarding anything
func despawn(w *engine.World, e core.Entity, kind core.Kind, k component.KineticComponent) {
	w.DestroyEntity(e)
	w.PushEvent(event.EventEntityDestroyed, &event.EntityDestroyedPayload{
		Entity: e, Kind: kind, X: k.X, Y: k.Y,
	})
}

// jitter returns a uniform duration in [0, span)
func jitter(r *vmath.FastRand, span time.Duration) time.Duration {
	return time.Duration(r.Float64() * float64(span))
}

// playerPosition returns the player center, false once the player is gone or dead
func playerPosition(w *engine.World) (float64, float64, bool) {
	e := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(e)
	if !ok || pilot.Dead {
		return 0, 0, false
	}
	k, ok := w.Components.Kinetic.GetComponent(e)
	if !ok {
		return 0, 0, false
	}
	return k.X, k.Y, true
}

// scrollLeft moves an entity with the world and returns its updated kinetic
func scrollLeft(w *engine.World, e core.Entity, dx float64) (component.KineticComponent, bool) {
	k, ok := w.Components.Kinetic.GetComponent(e)
	if !ok {
		return k, false
	}
	k.X -= dx
	w.Components.Kinetic.SetComponent(e, k)
	return k, true
}

// countKind counts live combat entities of a kind
func countKind(w *engine.World, kind core.Kind) int {
	n := 0
	for _, e := range w.Components.Combat.GetAllEntities() {
		if c, ok := w.Components.Combat.GetComponent(e); ok && c.Kind == kind {
			n++
		}
	}
	return n
}

// onScreen reports whether a point lies inside the visible playfield
func onScreen(w *engine.World, x, y float64) bool {
	scr := w.Resources.Config.Screen
	return x >= 0 && x <= scr.Width && y >= 0 && y <= scr.Height
}
