package parameter

import "time"

// Island
const (
	IslandWidth    = 520.0
	IslandHeight   = 160.0
	IslandOffsetX  = 260.0
	IslandDespawnX = -400.0

	PrimaryHP      = 120
	PrimaryWidth   = 62.0
	PrimaryHeight  = 34.0
	PrimaryJitterX = 60.0

	SecondaryHP      = 26
	SecondaryWidth   = 40.0
	SecondaryHeight  = 26.0
	SecondarySpacing = 170.0
	SecondaryJitterX = 18.0

	TurretCount    = 3
	TurretHP       = 22
	TurretWidth    = 26.0
	TurretHeight   = 26.0
	TurretSpacing  = 140.0
	GroundDespawnX = -80.0

	TurretFireBase       = 1550 * time.Millisecond
	TurretFirePerLevel   = 70 * time.Millisecond
	TurretFireFloor      = 900 * time.Millisecond
	TurretChanceBase     = 0.70
	TurretChancePerLevel = 0.03
	TurretChanceCap      = 0.86
	TurretFirstShot      = 400 * time.Millisecond
	TurretStagger        = 150 * time.Millisecond
	TurretLateArm        = 350 * time.Millisecond
	TurretLateArmSpread  = 450 * time.Millisecond
	TurretBarrelX        = 0.35
	TurretBarrelY        = 0.25
)

// Carrier
const (
	LaunchDeckWidth   = 320.0
	LaunchDeckXFactor = 0.35
	LaunchZoneOffset  = 40.0
	LaunchZoneWidth   = 160.0

	ReturnDeckWidth  = 340.0
	ReturnDeckOffset = 220.0
	ReturnZoneOffset = 60.0
	ReturnZoneWidth  = 180.0

	DeckHeight        = 18.0
	DeckLift          = 10.0 // deck center sits this far above the ocean line
	ZoneHeight        = 44.0
	ZoneLift          = 24.0
	DeckGroundLift    = 12.0
	OceanGroundDrop   = 8.0
	PlayerDeckOffsetX = 130.0
	PlayerDeckOffsetY = 28.0
	CarrierDespawnX   = -400.0
)

// Battleship
const (
	BattleshipOffsetX   = 220.0
	BattleshipLift      = 6.0
	BattleshipWidth     = 260.0
	BattleshipHeight    = 56.0
	BattleshipDespawnX  = -240.0
	BattleshipFirstShot = 600 * time.Millisecond
	SmokeChanceCritical = 0.16
	SmokeChanceDamaged  = 0.08
)

// BattleshipTurrets are barrel offsets from the hull center
var BattleshipTurrets = [3][2]float64{{-70, -18}, {-10, -20}, {55, -18}}

// Convoy
const (
	ConvoyMinBoats    = 2
	ConvoyMaxBoats    = 4
	ConvoyGapMin      = 110.0
	ConvoyGapMax      = 150.0
	ConvoyOffsetX     = 180.0
	ConvoyBob         = 3.0
	BoatLift          = 6.0
	BoatWidth         = 84.0
	BoatHeight        = 22.0
	BoatBaseHP        = 18
	BoatHPPerLevel    = 3
	BoatDespawnX      = -120.0
	ConvoyFirstDelay  = 1800 * time.Millisecond
	ConvoyRespawnMin  = 7 * time.Second
	ConvoyRespawnSpan = 9 * time.Second
)
