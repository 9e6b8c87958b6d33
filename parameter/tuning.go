package parameter

import "time"

// Tuning holds every value a TOML file may override
// Durations decode from strings such as "3.5s" or "820ms"
type Tuning struct {
	Screen     ScreenTuning     `toml:"screen"`
	WorldSpeed float64          `toml:"world_speed"` // px/s scroll of set-pieces and ground
	Segment    SegmentTuning    `toml:"segment"`
	Player     PlayerTuning     `toml:"player"`
	Weapon     WeaponTuning     `toml:"weapon"`
	Battleship BattleshipTuning `toml:"battleship"`
}

type ScreenTuning struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	OceanOffset float64 `toml:"ocean_offset"` // ocean line sits this far above the bottom edge
}

type SegmentTuning struct {
	Launch        time.Duration `toml:"launch"`
	Ocean         time.Duration `toml:"ocean"`
	Island        time.Duration `toml:"island"`
	CarrierReturn time.Duration `toml:"carrier_return"`
	Relaunch      time.Duration `toml:"relaunch"`
}

type PlayerTuning struct {
	MaxHealth     float64       `toml:"max_health"`
	MaxBombs      int           `toml:"max_bombs"`
	StartX        float64       `toml:"start_x"`
	StartYFactor  float64       `toml:"start_y_factor"`
	XNudge        float64       `toml:"x_nudge"`
	XSmooth       float64       `toml:"x_smooth"`
	MinY          float64       `toml:"min_y"`
	YSpeed        float64       `toml:"y_speed"`
	PointerGain   float64       `toml:"pointer_gain"`
	LandingMaxVY  float64       `toml:"landing_max_vy"`
	RepairDelay   time.Duration `toml:"repair_delay"`
	WaterDamage   float64       `toml:"water_damage"` // hp per second below the ocean line
	Width         float64       `toml:"width"`
	Height        float64       `toml:"height"`
	ContactPeriod time.Duration `toml:"contact_period"`
}

type WeaponTuning struct {
	CannonCooldown  time.Duration `toml:"cannon_cooldown"`
	BombCooldown    time.Duration `toml:"bomb_cooldown"`
	BulletSpeed     float64       `toml:"bullet_speed"`
	BombGravity     float64       `toml:"bomb_gravity"`
	BombVelocityX   float64       `toml:"bomb_velocity_x"`
	BombDriftFactor float64       `toml:"bomb_drift_factor"`
	ExplosionRadius float64       `toml:"explosion_radius"`
	SplashAirDamage int           `toml:"splash_air_damage"`
	SplashGroundDmg int           `toml:"splash_ground_damage"`
	OffscreenMargin float64       `toml:"offscreen_margin"`
}

type BattleshipTuning struct {
	HP            int           `toml:"hp"`
	BombDamage    int           `toml:"bomb_damage"`
	BulletDamage  int           `toml:"bullet_damage"`
	FireEvery     time.Duration `toml:"fire_every"`
	FireChance    float64       `toml:"fire_chance"`
	FirstDelay    time.Duration `toml:"first_delay"`
	RespawnMin    time.Duration `toml:"respawn_min"`
	RespawnJitter time.Duration `toml:"respawn_jitter"`
}

// Default returns the shipped tuning
func Default() Tuning {
	return Tuning{
		Screen: ScreenTuning{
			Width:       960,
			Height:      540,
			OceanOffset: 26,
		},
		WorldSpeed: 150,
		Segment: SegmentTuning{
			Launch:        3500 * time.Millisecond,
			Ocean:         38 * time.Second,
			Island:        24 * time.Second,
			CarrierReturn: 18 * time.Second,
			Relaunch:      2500 * time.Millisecond,
		},
		Player: PlayerTuning{
			MaxHealth:     100,
			MaxBombs:      10,
			StartX:        200,
			StartYFactor:  0.45,
			XNudge:        60,
			XSmooth:       6,
			MinY:          40,
			YSpeed:        260,
			PointerGain:   7,
			LandingMaxVY:  70,
			RepairDelay:   900 * time.Millisecond,
			WaterDamage:   8,
			Width:         56,
			Height:        22,
			ContactPeriod: 500 * time.Millisecond,
		},
		Weapon: WeaponTuning{
			CannonCooldown:  140 * time.Millisecond,
			BombCooldown:    450 * time.Millisecond,
			BulletSpeed:     720,
			BombGravity:     520,
			BombVelocityX:   120,
			BombDriftFactor: 0.35,
			ExplosionRadius: 90,
			SplashAirDamage: 55,
			SplashGroundDmg: 999,
			OffscreenMargin: 120,
		},
		Battleship: BattleshipTuning{
			HP:            240,
			BombDamage:    80,
			BulletDamage:  4,
			FireEvery:     820 * time.Millisecond,
			FireChance:    0.85,
			FirstDelay:    2400 * time.Millisecond,
			RespawnMin:    12 * time.Second,
			RespawnJitter: 9 * time.Second,
		},
	}
}

// OceanLineY is the water surface height
func (t Tuning) OceanLineY() float64 {
	return t.Screen.Height - t.Screen.OceanOffset
}

// SegmentDuration returns how long a phase lasts once entered normally
func (t Tuning) SegmentDuration(name string) time.Duration {
	switch name {
	case "LAUNCH":
		return t.Segment.Launch
	case "OCEAN":
		return t.Segment.Ocean
	case "ISLAND":
		return t.Segment.Island
	case "CARRIER_RETURN":
		return t.Segment.CarrierReturn
	}
	return t.Segment.Ocean
}
