package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset restores every system to its initial state
	// Trigger: Session restart
	// Consumer: All systems | Payload: nil
	EventGameReset EventType = iota

	// EventSegmentEnter announces a mission phase change
	// Trigger: SegmentSystem
	// Consumer: Set-piece systems, SpawnSystem, HUDSystem | Payload: *SegmentPayload
	EventSegmentEnter

	// EventLandingComplete requests a relaunch after repair
	// Trigger: PlayerSystem when the repair delay elapses
	// Consumer: SegmentSystem | Payload: nil
	EventLandingComplete

	// EventProjectileSpawnRequest asks the weapon system to create a projectile
	// Trigger: EnemySystem, SpawnSystem (turrets), BattleshipSystem
	// Consumer: WeaponSystem | Payload: *ProjectileSpawnPayload
	EventProjectileSpawnRequest

	// EventEntityDestroyed reports a hostile removed by damage or despawn
	// Trigger: CollisionSystem, CullSystem, set-piece systems
	// Consumer: BattleshipSystem, ConvoySystem, telemetry | Payload: *EntityDestroyedPayload
	EventEntityDestroyed

	// EventPlayerDeath marks the terminal game over state
	// Trigger: CollisionSystem, PlayerSystem
	// Consumer: ScoreSystem, CullSystem, HUDSystem | Payload: nil
	EventPlayerDeath

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventEffectRequest requests a transient visual
	// Trigger: Systems requiring visual feedback
	// Consumer: EffectSystem | Payload: *EffectRequestPayload
	EventEffectRequest
)

var typeNames = map[EventType]string{
	EventGameReset:              "game_reset",
	EventSegmentEnter:           "segment_enter",
	EventLandingComplete:        "landing_complete",
	EventProjectileSpawnRequest: "projectile_spawn",
	EventEntityDestroyed:        "entity_destroyed",
	EventPlayerDeath:            "player_death",
	EventSoundRequest:           "sound_request",
	EventEffectRequest:          "effect_request",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// GameEvent is a single routed event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
