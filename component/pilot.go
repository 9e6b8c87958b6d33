package component

import "time"

// PilotComponent is the player's combat and resource state
type PilotComponent struct {
	Health    float64
	MaxHealth float64
	Bombs     int
	MaxBombs  int

	CannonReadyAt time.Duration
	BombReadyAt   time.Duration

	Landing       bool
	LandingEndsAt time.Duration
	Dead          bool
}

// HealthPoints rounds health up for display
func (p PilotComponent) HealthPoints() int {
	h := int(p.Health)
	if float64(h) < p.Health {
		h++
	}
	return h
}
