package component

import (
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
)

// Owner is the faction that fired a projectile
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// ProjectileComponent is a bullet, bomb or flak shell
// Spent is set on the first hit and blocks any further damage from the same projectile
type ProjectileComponent struct {
	Kind      core.Kind
	Owner     Owner
	Damage    int
	Gravity   float64
	Drift     float64 // leftward px/s added on top of velocity
	ExpiresAt time.Duration
	Spent     bool
}
