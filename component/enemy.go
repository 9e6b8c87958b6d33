package component

import "time"

// EnemyComponent drives a fighter or bomber
type EnemyComponent struct {
	SpawnY         float64
	Ace            bool
	ShotEvery      time.Duration
	NextShotAt     time.Duration
	ContactReadyAt time.Duration // earliest time this aircraft may ram the player again
}
