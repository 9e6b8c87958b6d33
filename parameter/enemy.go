package parameter

import "time"

// Fighter
const (
	FighterSpawnOffsetX    = 50.0
	FighterBandTop         = 60.0
	FighterBandBottomInset = 120.0 // band bottom is screen height minus this
	FighterBaseSpeed       = 200.0
	FighterSpeedPerLevel   = 7.0
	FighterBaseHP          = 28
	FighterHPPerLevel      = 4
	FighterDriftAmplitude  = 22.0
	FighterDriftPeriodMs   = 380.0
	FighterDriftPhaseY     = 10.0
	FighterDespawnX        = -80.0
	FighterWidth           = 44.0
	FighterHeight          = 18.0

	FighterShotBase        = 1400 * time.Millisecond
	FighterShotPerLevel    = 40 * time.Millisecond
	FighterShotFloor       = 900 * time.Millisecond
	FighterFirstShot       = 500 * time.Millisecond
	FighterFirstShotSpread = 600 * time.Millisecond

	FighterSpawnBase      = 2200 * time.Millisecond
	FighterSpawnPerLevel  = 90 * time.Millisecond
	FighterSpawnFloor     = 1100 * time.Millisecond
	FighterFirstSpawn     = 900 * time.Millisecond
	FighterBomberSlowdown = 1.25
)

// Ace variant
const (
	AceChanceBase     = 0.10
	AceChancePerLevel = 0.01
	AceChanceCap      = 0.22
	AceBonusHP        = 18
	AceShotReduction  = 140 * time.Millisecond
	AceShotFloor      = 500 * time.Millisecond
)

// Bomber
const (
	BomberSpawnOffsetX  = 80.0
	BomberBandTop       = 80.0
	BomberBandBottom    = 140.0 // distance above the ocean line
	BomberBaseSpeed     = 70.0
	BomberSpeedPerLevel = 2.0
	BomberBaseHP        = 90
	BomberHPPerLevel    = 8
	BomberDespawnX      = -160.0
	BomberWidth         = 96.0
	BomberHeight        = 34.0
	BomberLaneClearance = 120.0

	BomberShotBase     = 2600 * time.Millisecond
	BomberShotPerLevel = 50 * time.Millisecond
	BomberShotFloor    = 1600 * time.Millisecond

	BomberSpawnBase     = 9800 * time.Millisecond
	BomberSpawnPerLevel = 240 * time.Millisecond
	BomberSpawnFloor    = 5200 * time.Millisecond
	BomberFirstSpawn    = 4200 * time.Millisecond
	MaxBombers          = 1
)

// Enemy projectiles
const (
	EnemyShotBaseSpeed     = 300.0
	EnemyShotSpeedPerLevel = 6.0
	EnemyShotNoseFactor    = 0.42
	FlakBaseSpeed          = 180.0
	FlakSpeedPerLevel      = 4.0
	FlakJitter             = 0.55 // total spread in radians
	FlakWorldDrag          = 0.9
	FlakLifetime           = 4 * time.Second
)
