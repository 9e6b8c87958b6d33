package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
)

var _ engine.EffectSink = (*Effects)(nil)

func TestEffectsExpire(t *testing.T) {
	f := NewEffects()
	f.SpawnEffect(core.EffectSpark, 10, 10, core.EffectParams{})
	f.SpawnEffect(core.EffectExplosionBig, 20, 20, core.EffectParams{Scale: 2})

	f.Advance(200 * time.Millisecond)
	active := f.Active()
	if len(active) != 1 {
		t.Fatalf("Expected spark expired and explosion live, got %d effects", len(active))
	}
	if active[0].Kind != core.EffectExplosionBig || active[0].Scale != 2 {
		t.Errorf("Expected scaled big explosion, got %+v", active[0])
	}
	if p := active[0].Progress(); p <= 0 || p >= 1 {
		t.Errorf("Expected partial progress, got %v", p)
	}

	f.Advance(time.Second)
	if len(f.Active()) != 0 {
		t.Errorf("Expected all effects expired, got %d", len(f.Active()))
	}
}

func TestEffectsBounded(t *testing.T) {
	f := NewEffects()
	for i := 0; i < maxEffects+10; i++ {
		f.SpawnEffect(core.EffectSmoke, float64(i), 0, core.EffectParams{})
	}
	active := f.Active()
	if len(active) != maxEffects {
		t.Fatalf("Expected %d effects, got %d", maxEffects, len(active))
	}
	if active[0].X != 10 {
		t.Errorf("Expected oldest effects dropped first, got first x %v", active[0].X)
	}
}

func TestSessionFeedsEffects(t *testing.T) {
	fx := NewEffects()
	s, _ := newMockSession(3, engine.Sinks{Effects: fx})
	for i := 0; i < 600; i++ {
		s.Step(core.Intent{FireHeld: true, Up: i < 60}, frame)
	}
	// Held fire emits a muzzle flash on every shot
	if len(fx.Active()) == 0 {
		t.Error("Expected cannon fire to leave live effects")
	}
}
