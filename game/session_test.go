package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
	"github.com/lixenwraith/pacific-fighter/system"
)

const frame = parameter.FrameInterval

func newMockSession(seed uint64, sinks engine.Sinks) (*Session, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s := NewSession(Options{Seed: seed, Sinks: sinks, TimeProvider: clock})
	return s, clock
}

// scriptedIntent produces a repeatable input pattern exercising every control
func scriptedIntent(i int) core.Intent {
	return core.Intent{
		Up:          (i/90)%2 == 0,
		Down:        (i/90)%2 == 1,
		FireHeld:    i%3 != 0,
		BombPressed: i%150 == 0,
	}
}

// TestPauseFreezesTimers verifies no game time passes while paused and nothing fires on resume
func TestPauseFreezesTimers(t *testing.T) {
	s, clock := newMockSession(1, engine.Sinks{})

	for i := 0; i < 10; i++ {
		clock.Advance(frame)
		s.Update(core.Intent{})
	}
	before := s.Now()
	endsAt := s.World().Resources.Game.SegmentEndsAt

	s.Pause()
	for i := 0; i < 5; i++ {
		clock.Advance(20 * time.Second)
		if dt := s.Update(core.Intent{}); dt != 0 {
			t.Fatalf("Expected zero delta while paused, got %v", dt)
		}
	}
	if s.Now() != before {
		t.Fatalf("Expected game time frozen at %v, got %v", before, s.Now())
	}
	if !s.World().Resources.Game.Paused {
		t.Error("Expected paused flag in game state")
	}

	s.Resume()
	clock.Advance(frame)
	s.Update(core.Intent{})

	if s.Now() != before+frame {
		t.Errorf("Expected game time %v after resume, got %v", before+frame, s.Now())
	}
	if s.World().Resources.Game.Segment != core.SegmentLaunch {
		t.Errorf("Expected LAUNCH to continue after resume, got %s", s.World().Resources.Game.Segment)
	}
	if s.World().Resources.Game.SegmentEndsAt != endsAt {
		t.Errorf("Expected phase end %v unchanged, got %v", endsAt, s.World().Resources.Game.SegmentEndsAt)
	}
}

// TestFrameDeltaCapped verifies a stalled host advances at most the frame cap
func TestFrameDeltaCapped(t *testing.T) {
	s, clock := newMockSession(1, engine.Sinks{})
	clock.Advance(5 * time.Second)
	if dt := s.Update(core.Intent{}); dt != parameter.MaxFrameDelta {
		t.Errorf("Expected delta capped at %v, got %v", parameter.MaxFrameDelta, dt)
	}
}

// TestTogglePause verifies the toggle reports the new state
func TestTogglePause(t *testing.T) {
	s, _ := newMockSession(1, engine.Sinks{})
	if !s.TogglePause() || !s.Paused() {
		t.Error("Expected first toggle to pause")
	}
	if s.TogglePause() || s.Paused() {
		t.Error("Expected second toggle to resume")
	}
}

// TestDeterministicReplay verifies equal seeds and inputs produce identical runs
func TestDeterministicReplay(t *testing.T) {
	a := NewSession(Options{Seed: 99})
	b := NewSession(Options{Seed: 99})

	for i := 0; i < 3000; i++ {
		a.Step(scriptedIntent(i), frame)
		b.Step(scriptedIntent(i), frame)
	}

	ga, gb := a.World().Resources.Game, b.World().Resources.Game
	if ga.Score != gb.Score || ga.Segment != gb.Segment || ga.GameOver != gb.GameOver {
		t.Fatalf("Expected identical state, got score %d/%d segment %s/%s", ga.Score, gb.Score, ga.Segment, gb.Segment)
	}
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("Expected identical snapshots")
	}
}

// TestRestartKeepsBestScore verifies restart resets the run but not the best score
func TestRestartKeepsBestScore(t *testing.T) {
	store := engine.NewMemoryStore()
	s := NewSession(Options{Seed: 5, Sinks: engine.Sinks{Store: store}})

	for i := 0; i < 200; i++ {
		s.Step(core.Intent{}, frame)
	}
	w := s.World()
	w.Resources.Game.AddScore(700)
	system.DamagePlayer(w, 1000)
	s.Step(core.Intent{}, frame)
	if !s.GameOver() {
		t.Fatal("Expected game over")
	}
	best := w.Resources.Game.BestScore

	s.Restart()

	game := w.Resources.Game
	if s.GameOver() || game.Score != 0 {
		t.Errorf("Expected fresh run, got game over %v score %d", s.GameOver(), game.Score)
	}
	if game.BestScore != best {
		t.Errorf("Expected best score %d kept, got %d", best, game.BestScore)
	}
	if s.Now() != 0 {
		t.Errorf("Expected clock reset, got %v", s.Now())
	}
	pilot, ok := w.Components.Pilot.GetComponent(game.Player)
	if !ok || pilot.Dead || pilot.Health != pilot.MaxHealth {
		t.Error("Expected a fresh player")
	}

	s.Step(core.Intent{}, frame)
	if game.Segment != core.SegmentLaunch || w.Resources.Stage.Carrier == 0 {
		t.Errorf("Expected LAUNCH with a carrier after restart, got %s", game.Segment)
	}
}

// TestMutePersisted verifies the mute flag is restored and saved
func TestMutePersisted(t *testing.T) {
	store := engine.NewMemoryStore()
	store.Set(engine.KeyMuted, "1")
	audio := &engine.NopAudio{}
	s := NewSession(Options{Seed: 1, Sinks: engine.Sinks{Audio: audio, Store: store}})

	if !audio.IsMuted() {
		t.Fatal("Expected stored mute flag restored")
	}
	if s.ToggleMute() {
		t.Error("Expected toggle to unmute")
	}
	if v, _ := store.Get(engine.KeyMuted); v != "0" {
		t.Errorf("Expected stored mute flag 0, got %q", v)
	}
}

// TestLongRunTelemetry runs several minutes of scripted play and checks counters advance
func TestLongRunTelemetry(t *testing.T) {
	s := NewSession(Options{Seed: 3})
	steps := 0
	for i := 0; i < 6000 && !s.GameOver(); i++ {
		s.Step(scriptedIntent(i), frame)
		steps++
	}

	reg := s.Status()
	if got := reg.Ints.Get(status.KeyTicks).Load(); got != int64(steps) {
		t.Errorf("Expected %d ticks, got %d", steps, got)
	}
	if reg.Ints.Get(status.KeySpawnFighter).Load() == 0 {
		t.Error("Expected fighters spawned")
	}
	if reg.Ints.Get(status.KeyProjectiles).Load() == 0 {
		t.Error("Expected projectiles fired")
	}
	if reg.Ints.Get(status.KeyPhaseChanges).Load() == 0 {
		t.Error("Expected phase changes")
	}
}

// TestSnapshotOrdering verifies the player is drawn last
func TestSnapshotOrdering(t *testing.T) {
	s := NewSession(Options{Seed: 8})
	for i := 0; i < 400; i++ {
		s.Step(core.Intent{FireHeld: true}, frame)
	}
	snap := s.Snapshot()
	if len(snap.Sprites) == 0 {
		t.Fatal("Expected sprites")
	}
	if last := snap.Sprites[len(snap.Sprites)-1]; last.Kind != core.KindPlayer {
		t.Errorf("Expected player last, got %s", last.Kind)
	}
	if snap.OceanLineY != s.Tuning().OceanLineY() {
		t.Errorf("Expected ocean line %.0f, got %.0f", s.Tuning().OceanLineY(), snap.OceanLineY)
	}
}
