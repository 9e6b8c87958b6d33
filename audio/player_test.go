package audio

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
)

var (
	_ engine.AudioPlayer    = (*Player)(nil)
	_ engine.EngineListener = (*Player)(nil)
)

// TestPlayerGracefulDegradation verifies nothing panics or plays without a speaker
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	for st := core.SoundType(0); int(st) < core.SoundTypeCount; st++ {
		if p.Play(st) {
			t.Errorf("Expected cue %d to be dropped before Initialize", st)
		}
	}
	p.SetEngineState(0.5, false)
	p.SetEngineState(1, true)
	p.Cleanup()
}

func TestMuteTogglesWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	if p.IsMuted() {
		t.Fatal("Expected player to start unmuted")
	}
	if !p.ToggleMute() || !p.IsMuted() {
		t.Error("Expected first toggle to mute")
	}
	if p.ToggleMute() || p.IsMuted() {
		t.Error("Expected second toggle to unmute")
	}
}

// TestPlayerInitialization exercises the speaker when one is available
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer()
	if err := p.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected without an audio device): %v", err)
		return
	}
	defer p.Cleanup()

	if err := p.Initialize(); err != nil {
		t.Errorf("Expected second Initialize to be a no-op, got %v", err)
	}
	if !p.Play(core.SoundGun) {
		t.Error("Expected gun cue to play")
	}
	p.ToggleMute()
	if p.Play(core.SoundGun) {
		t.Error("Expected muted player to drop cues")
	}
}

func TestEveryCueGenerates(t *testing.T) {
	for st := core.SoundType(0); int(st) < core.SoundTypeCount; st++ {
		buf := generateSound(st)
		if len(buf) == 0 {
			t.Errorf("Expected samples for cue %d", st)
			continue
		}
		peak := 0.0
		for _, v := range buf {
			if math.IsNaN(v) {
				t.Fatalf("Cue %d contains NaN", st)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		if peak < 0.99 || peak > 1.0001 {
			t.Errorf("Expected cue %d normalized to unity, got peak %v", st, peak)
		}
	}
	if generateSound(core.SoundType(core.SoundTypeCount)) != nil {
		t.Error("Expected no buffer for an unknown cue")
	}
}

func TestCueLengths(t *testing.T) {
	if got, want := len(generateSound(core.SoundGun)), samplesOf(50*time.Millisecond); got != want {
		t.Errorf("Expected gun cue %d samples, got %d", want, got)
	}
	if got, want := len(generateSound(core.SoundLanding)), 2*samplesOf(120*time.Millisecond); got != want {
		t.Errorf("Expected two-note landing chime %d samples, got %d", want, got)
	}
	small := len(generateSound(core.SoundExplosion))
	big := len(generateSound(core.SoundExplosionBig))
	if big <= small {
		t.Errorf("Expected big explosion longer than small, got %d <= %d", big, small)
	}
}

func TestCuesAreRepeatable(t *testing.T) {
	a := generateSound(core.SoundFlak)
	b := generateSound(core.SoundFlak)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical flak cue, differs at sample %d", i)
		}
	}
}

func TestCacheReturnsSameBuffer(t *testing.T) {
	c := newSoundCache()
	a := c.get(core.SoundSplash)
	b := c.get(core.SoundSplash)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("Expected cached buffer to be reused")
	}
	if c.get(core.SoundType(-1)) != nil {
		t.Error("Expected nil for an out-of-range cue")
	}
}

func TestBufferStreamerEnds(t *testing.T) {
	s := newBufferStreamer(floatBuffer{1, -1, 0.5}, 0.5)
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("Expected 2 samples, got %d ok=%v", n, ok)
	}
	if out[0][0] != 0.5 || out[1][1] != -0.5 {
		t.Errorf("Expected gain applied, got %v", out)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Errorf("Expected final sample, got %d ok=%v", n, ok)
	}
	if _, ok = s.Stream(out); ok {
		t.Error("Expected drained streamer to report end")
	}
}

func TestEnginePitchTracksHealth(t *testing.T) {
	if enginePitch(1) <= enginePitch(0.25) {
		t.Error("Expected healthy engine to sound higher than a damaged one")
	}
	if enginePitch(2) != enginePitch(1) || enginePitch(-1) != enginePitch(0) {
		t.Error("Expected pitch clamped to the health range")
	}
}
