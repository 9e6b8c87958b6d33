package parameter

import "time"

// Damage values
const (
	CannonAirDamage     = 26
	CannonGroundDamage  = 6
	BombBoatDamage      = 60
	EnemyShotDamage     = 6
	ContactDamage       = 16
	DirectBombGroundDmg = 999

	// Primary targets shrug off small arms
	PrimaryArmorThreshold = 20
	PrimaryArmorFactor    = 0.25
)

// Score awards
const (
	ScoreFighter    = 120
	ScoreBomber     = 260
	ScorePrimary    = 600
	ScoreTurret     = 180
	ScoreSecondary  = 120
	ScoreBoat       = 90
	ScoreBattleship = 900

	DistanceScoreRate   = 0.12
	DifficultyScoreStep = 5000
)

// Projectile shapes
const (
	BulletWidth  = 10.0
	BulletHeight = 3.0
	BombWidth    = 10.0
	BombHeight   = 10.0
	FlakWidth    = 6.0
	FlakHeight   = 6.0
	EnemyShotW   = 8.0
	EnemyShotH   = 3.0
	NoseOffset   = 28.0
	BombDropX    = 10.0
	BombDropY    = 10.0

	ExplosionEffectScale = 1.0
	BigExplosionScale    = 2.2
)

// SmokeCheckPeriod throttles damaged-hull smoke rolls
const SmokeCheckPeriod = 120 * time.Millisecond
