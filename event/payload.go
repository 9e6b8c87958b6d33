package event

import (
	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/core"
)

// SegmentPayload carries a phase transition
type SegmentPayload struct {
	From     core.Segment
	To       core.Segment
	Relaunch bool // LAUNCH entered after a carrier landing
}

// ProjectileSpawnPayload describes a projectile to create
type ProjectileSpawnPayload struct {
	Kind   core.Kind
	Owner  component.Owner
	X, Y   float64
	VX, VY float64
	Damage int
}

// EntityDestroyedPayload reports a removed hostile
// Killed distinguishes destruction by damage from scrolling off screen
type EntityDestroyedPayload struct {
	Entity core.Entity
	Kind   core.Kind
	X, Y   float64
	Killed bool
}

type SoundRequestPayload struct {
	Sound core.SoundType
}

type EffectRequestPayload struct {
	Kind   core.EffectKind
	X, Y   float64
	Params core.EffectParams
}
