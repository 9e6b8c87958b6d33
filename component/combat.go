package component

import "github.com/lixenwraith/pacific-fighter/core"

// CombatComponent marks a damageable hostile
// Presence in the store means alive; removal happens the tick hp reaches zero
type CombatComponent struct {
	Kind         core.Kind
	HitPoints    int
	MaxHitPoints int
}

// Fraction returns remaining hp in [0,1]
func (c CombatComponent) Fraction() float64 {
	if c.MaxHitPoints <= 0 {
		return 0
	}
	return float64(c.HitPoints) / float64(c.MaxHitPoints)
}
