package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

// TestBattleshipOnlyInOcean verifies the capital ship appears in OCEAN and leaves with it
func TestBattleshipOnlyInOcean(t *testing.T) {
	w := newTestWorld(NewBattleshipSystem)
	sys := w.Systems()[0].(*BattleshipSystem)

	w.Resources.Game.Segment = core.SegmentIsland
	run(w, 5*time.Second, nil)
	if sys.Active() || countKind(w, core.KindBattleship) != 0 {
		t.Fatal("Expected no battleship during ISLAND")
	}

	w.Resources.Game.Segment = core.SegmentOcean
	run(w, w.Resources.Config.Battleship.FirstDelay-testStep, nil)
	if sys.Active() {
		t.Fatal("Expected battleship to wait for its first delay")
	}
	run(w, 2*testStep, nil)
	if !sys.Active() || countKind(w, core.KindBattleship) != 1 {
		t.Fatal("Expected one battleship after the first delay")
	}

	w.Resources.Game.Segment = core.SegmentCarrierReturn
	step(w, testStep)
	if sys.Active() || countKind(w, core.KindBattleship) != 0 {
		t.Error("Expected battleship removed when OCEAN ends")
	}
}

// TestBattleshipRespawnDelay verifies a sunk ship is replaced only after the respawn window
func TestBattleshipRespawnDelay(t *testing.T) {
	w := newTestWorld(NewBattleshipSystem)
	sys := w.Systems()[0].(*BattleshipSystem)
	cfg := w.Resources.Config.Battleship
	w.Resources.Game.Segment = core.SegmentOcean

	run(w, cfg.FirstDelay+testStep, nil)
	if !sys.Active() {
		t.Fatal("Expected battleship afloat")
	}
	ship := w.Components.Battleship.GetAllEntities()[0]
	if !ApplyDamage(w, ship, cfg.HP) {
		t.Fatal("Expected battleship sunk")
	}
	w.DispatchEvents()
	if w.Resources.Game.Score != parameter.ScoreBattleship {
		t.Errorf("Expected score %d, got %d", parameter.ScoreBattleship, w.Resources.Game.Score)
	}

	run(w, cfg.RespawnMin-testStep, nil)
	if sys.Active() {
		t.Fatal("Expected no respawn before the minimum delay")
	}
	run(w, cfg.RespawnJitter+testStep, nil)
	if !sys.Active() {
		t.Error("Expected respawn within the jitter window")
	}
}

// TestBattleshipFiresFlak verifies the ship shells a living player
func TestBattleshipFiresFlak(t *testing.T) {
	w := newTestWorld(NewPlayerSystem, NewBattleshipSystem, NewWeaponSystem)
	w.Resources.Game.Segment = core.SegmentOcean

	run(w, w.Resources.Config.Battleship.FirstDelay+5*time.Second, nil)

	flak := 0
	for _, e := range w.Components.Projectile.GetAllEntities() {
		if p, _ := w.Components.Projectile.GetComponent(e); p.Kind == core.KindFlak {
			flak++
		}
	}
	if flak == 0 {
		t.Error("Expected flak in the air")
	}
}

func convoyOf(w *engine.World) *ConvoySystem {
	for _, s := range w.Systems() {
		if c, ok := s.(*ConvoySystem); ok {
			return c
		}
	}
	return nil
}

// TestConvoyRespawnGating verifies a new batch waits for the last boat plus 7-16 s
func TestConvoyRespawnGating(t *testing.T) {
	w := newTestWorld(NewConvoySystem)
	sys := convoyOf(w)
	w.Resources.Game.Segment = core.SegmentOcean

	run(w, parameter.ConvoyFirstDelay+testStep, nil)
	boats := w.Components.Boat.GetAllEntities()
	if len(boats) < parameter.ConvoyMinBoats || len(boats) > parameter.ConvoyMaxBoats {
		t.Fatalf("Expected %d-%d boats, got %d", parameter.ConvoyMinBoats, parameter.ConvoyMaxBoats, len(boats))
	}

	// Partial losses keep the batch active
	ApplyDamage(w, boats[0], 999)
	step(w, testStep)
	if !sys.Active() {
		t.Fatal("Expected batch active while boats remain")
	}

	for _, e := range boats[1:] {
		ApplyDamage(w, e, 999)
	}
	step(w, testStep)
	clearedAt := w.Resources.Time.Now
	if sys.Active() {
		t.Fatal("Expected batch inactive after the last boat")
	}
	delay := sys.NextSpawnAt() - clearedAt
	if delay < parameter.ConvoyRespawnMin || delay >= parameter.ConvoyRespawnMin+parameter.ConvoyRespawnSpan {
		t.Errorf("Expected respawn delay in [7s, 16s), got %v", delay)
	}

	run(w, parameter.ConvoyRespawnMin-testStep, nil)
	if w.Components.Boat.CountEntities() != 0 {
		t.Fatal("Expected no boats before the minimum delay")
	}
	run(w, parameter.ConvoyRespawnSpan+testStep, nil)
	if w.Components.Boat.CountEntities() == 0 {
		t.Error("Expected a new batch after the delay")
	}
}

// TestConvoyClearedOutsideOcean verifies boats leave with OCEAN
func TestConvoyClearedOutsideOcean(t *testing.T) {
	w := newTestWorld(NewConvoySystem)
	w.Resources.Game.Segment = core.SegmentOcean
	run(w, parameter.ConvoyFirstDelay+testStep, nil)
	if w.Components.Boat.CountEntities() == 0 {
		t.Fatal("Expected boats in OCEAN")
	}

	w.Resources.Game.Segment = core.SegmentIsland
	step(w, testStep)
	if n := w.Components.Boat.CountEntities(); n != 0 {
		t.Errorf("Expected boats cleared outside OCEAN, got %d", n)
	}
}
