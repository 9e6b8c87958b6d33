package game

import (
	"log"
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
	"github.com/lixenwraith/pacific-fighter/system"
)

// Options configures a session; zero values select defaults
type Options struct {
	Tuning       *parameter.Tuning
	Seed         uint64
	Sinks        engine.Sinks
	TimeProvider engine.TimeProvider
}

// Session owns one world, its logical clock and the ordered system set
// Hosts call Update once per frame from a single goroutine
type Session struct {
	world *engine.World
	clock *engine.PausableClock
	hud   *system.HUDSystem
	seed  uint64
}

// NewSession builds the world and registers every system in execution order
func NewSession(opts Options) *Session {
	tuning := parameter.Default()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	world := engine.NewWorld(tuning, seed, opts.Sinks)
	s := &Session{
		world: world,
		clock: engine.NewPausableClock(opts.TimeProvider, parameter.MaxFrameDelta),
		seed:  seed,
	}

	world.AddSystem(system.NewSegmentSystem(world))
	world.AddSystem(system.NewCarrierSystem(world))
	world.AddSystem(system.NewIslandSystem(world))
	world.AddSystem(system.NewBattleshipSystem(world))
	world.AddSystem(system.NewConvoySystem(world))
	world.AddSystem(system.NewSpawnSystem(world))
	world.AddSystem(system.NewPlayerSystem(world))
	world.AddSystem(system.NewEnemySystem(world))
	world.AddSystem(system.NewWeaponSystem(world))
	world.AddSystem(system.NewCollisionSystem(world))
	world.AddSystem(system.NewCullSystem(world))
	world.AddSystem(system.NewScoreSystem(world))
	world.AddSystem(system.NewEffectSystem(world))
	world.AddSystem(system.NewAudioSystem(world))
	hud := system.NewHUDSystem(world)
	world.AddSystem(hud)
	s.hud = hud.(*system.HUDSystem)

	s.restoreMute()
	log.Printf("session: started with seed %d", seed)
	return s
}

// Update advances the session by the wall time elapsed since the previous call
func (s *Session) Update(intent core.Intent) time.Duration {
	dt := s.clock.Tick()
	s.step(intent, dt)
	return dt
}

// Step advances the session by a fixed delta, used by replay and tests
func (s *Session) Step(intent core.Intent, dt time.Duration) time.Duration {
	applied := s.clock.Advance(dt)
	s.step(intent, applied)
	return applied
}

func (s *Session) step(intent core.Intent, dt time.Duration) {
	w := s.world
	if s.clock.IsPaused() {
		s.hud.Publish()
		return
	}
	start := time.Now()

	w.Resources.Input.Intent = intent
	w.Resources.Time.Update(s.clock.Now(), dt)
	w.Update()

	w.Resources.Status.Ints.Get(status.KeyTicks).Add(1)
	w.Resources.Status.Floats.Get(status.KeyTickMillis).Set(float64(time.Since(start).Microseconds()) / 1000)
}

// Pause freezes the logical clock; no timer advances until Resume
func (s *Session) Pause() {
	s.clock.Pause()
	s.world.Resources.Game.Paused = true
	s.hud.Publish()
}

// Resume continues from the paused game time
func (s *Session) Resume() {
	s.clock.Resume()
	s.world.Resources.Game.Paused = false
	s.hud.Publish()
}

// TogglePause flips pause state and returns the new state
func (s *Session) TogglePause() bool {
	if s.clock.IsPaused() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// Paused reports whether the logical clock is frozen
func (s *Session) Paused() bool {
	return s.clock.IsPaused()
}

// Restart discards the run and starts over from LAUNCH, keeping the best score
func (s *Session) Restart() {
	w := s.world
	w.Clear()
	w.Resources.Game.Reset()
	*w.Resources.Time = engine.TimeResource{}
	w.Resources.Input.Intent = core.Intent{}
	s.clock.Reset()
	if s.clock.IsPaused() {
		s.clock.Resume()
	}

	w.PushEvent(event.EventGameReset, nil)
	w.DispatchEvents()
	log.Printf("session: restarted")
}

// ToggleMute flips the audio mute flag and persists it
func (s *Session) ToggleMute() bool {
	sinks := s.world.Resources.Sinks
	muted := sinks.Audio.ToggleMute()
	value := "0"
	if muted {
		value = "1"
	}
	if err := sinks.Store.Set(engine.KeyMuted, value); err != nil {
		log.Printf("session: failed to save mute flag: %v", err)
	}
	return muted
}

func (s *Session) restoreMute() {
	sinks := s.world.Resources.Sinks
	v, ok := sinks.Store.Get(engine.KeyMuted)
	if ok && v == "1" && !sinks.Audio.IsMuted() {
		sinks.Audio.ToggleMute()
	}
}

// GameOver reports that the player is down and the run is halted
func (s *Session) GameOver() bool {
	return s.world.Resources.Game.GameOver
}

// Now returns logical game time
func (s *Session) Now() time.Duration {
	return s.clock.Now()
}

// Seed returns the random seed the session was built with
func (s *Session) Seed() uint64 {
	return s.seed
}

// World exposes the simulation state for hosts and tests
func (s *Session) World() *engine.World {
	return s.world
}

// Tuning returns the active tuning
func (s *Session) Tuning() parameter.Tuning {
	return *s.world.Resources.Config
}

// Status returns the telemetry registry
func (s *Session) Status() *status.Registry {
	return s.world.Resources.Status
}
