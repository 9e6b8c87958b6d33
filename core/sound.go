package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundGun SoundType = iota
	SoundBombDrop
	SoundExplosion
	SoundExplosionBig
	SoundFlak
	SoundSplash
	SoundLanding
	SoundGameOver
)

// SoundTypeCount is the number of distinct cues, used to size caches
const SoundTypeCount = int(SoundGameOver) + 1
