package core

// EffectKind selects a transient visual handled by the presentation layer
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
	EffectExplosionBig
	EffectSpark
	EffectSmoke
	EffectSplash
	EffectFlakBurst
	EffectMuzzleFlash
	EffectRecoil
)

// EffectParams carries optional shaping for an effect
type EffectParams struct {
	Scale  float64
	Target Entity // Recoil/flash anchor, zero when free-standing
}
