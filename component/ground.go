package component

import "time"

// GroundComponent is an island installation; role comes from CombatComponent.Kind
type GroundComponent struct {
	Index int

	// Turret only
	FireEvery  time.Duration
	FireChance float64
	NextFireAt time.Duration // zero means not yet armed
}

// BoatComponent is one ship of a convoy batch
type BoatComponent struct {
	Batch int
}

// BattleshipComponent is the capital ship's fire control state
type BattleshipComponent struct {
	NextFireAt  time.Duration
	NextSmokeAt time.Duration
}
