package system

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

// TestDistanceScoreCarriesFraction verifies 150 px/s at 0.12 pts/px yields 18 pts/s across small ticks
func TestDistanceScoreCarriesFraction(t *testing.T) {
	w := newTestWorld(NewPlayerSystem, NewScoreSystem)

	for i := 0; i < 60; i++ {
		step(w, 16*time.Millisecond+666*time.Microsecond)
	}

	// 60 ticks of 16.666ms is 0.99996s, just short of 18 points
	if got := w.Resources.Game.Score; got != 17 {
		t.Errorf("Expected 17 points, got %d", got)
	}
	step(w, time.Millisecond)
	if got := w.Resources.Game.Score; got != 18 {
		t.Errorf("Expected 18 points after one second, got %d", got)
	}
}

// TestGameOverPersistsBestScore verifies death saves a new best score
func TestGameOverPersistsBestScore(t *testing.T) {
	store := engine.NewMemoryStore()
	store.Set(engine.KeyBestScore, "500")
	w := newTestWorldWithSinks(engine.Sinks{Store: store}, NewPlayerSystem, NewScoreSystem)

	if w.Resources.Game.BestScore != 500 {
		t.Fatalf("Expected best score 500 loaded, got %d", w.Resources.Game.BestScore)
	}

	w.Resources.Game.AddScore(900)
	DamagePlayer(w, 1000)
	w.DispatchEvents()

	if !w.Resources.Game.GameOver {
		t.Fatal("Expected game over")
	}
	if w.Resources.Game.BestScore != 900 {
		t.Errorf("Expected best score 900, got %d", w.Resources.Game.BestScore)
	}
	if v, _ := store.Get(engine.KeyBestScore); v != "900" {
		t.Errorf("Expected stored best score 900, got %q", v)
	}
}

// TestGameOverKeepsHigherBest verifies a lower run does not overwrite the stored best
func TestGameOverKeepsHigherBest(t *testing.T) {
	store := engine.NewMemoryStore()
	store.Set(engine.KeyBestScore, "5000")
	w := newTestWorldWithSinks(engine.Sinks{Store: store}, NewPlayerSystem, NewScoreSystem)

	w.Resources.Game.AddScore(100)
	DamagePlayer(w, 1000)
	w.DispatchEvents()

	if v, _ := store.Get(engine.KeyBestScore); v != "5000" {
		t.Errorf("Expected stored best score to stay 5000, got %q", v)
	}
}

// TestDeathClearsHostiles verifies the death sweep removes hostiles and projectiles
func TestDeathClearsHostiles(t *testing.T) {
	w := newTestWorld(NewPlayerSystem, NewCullSystem, NewScoreSystem)
	spawnHostile(w, core.KindFighter, 500, 200, parameter.FighterWidth, parameter.FighterHeight, 50)
	spawnHostile(w, core.KindBoat, 600, 500, parameter.BoatWidth, parameter.BoatHeight, 50)
	spawnProjectile(w, core.KindBullet, component.OwnerEnemy, 400, 200, -300, 0, 6)

	DamagePlayer(w, 1000)
	w.DispatchEvents()

	if n := w.Components.Combat.CountEntities(); n != 0 {
		t.Errorf("Expected hostiles cleared, got %d", n)
	}
	if n := w.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected projectiles cleared, got %d", n)
	}
	if w.Resources.Game.Score != 0 {
		t.Errorf("Expected no score from the sweep, got %d", w.Resources.Game.Score)
	}
}

// TestGameOverHaltsScoring verifies distance score stops after death
func TestGameOverHaltsScoring(t *testing.T) {
	w := newTestWorld(NewPlayerSystem, NewScoreSystem)
	DamagePlayer(w, 1000)
	w.DispatchEvents()

	run(w, 5*time.Second, nil)
	if w.Resources.Game.Score != 0 {
		t.Errorf("Expected score frozen at 0, got %d", w.Resources.Game.Score)
	}
}

// TestCullOffscreenProjectiles verifies projectiles beyond the margin are removed
func TestCullOffscreenProjectiles(t *testing.T) {
	w := newTestWorld(NewCullSystem)
	cfg := w.Resources.Config
	inside := spawnProjectile(w, core.KindBullet, component.OwnerPlayer, cfg.Screen.Width+cfg.Weapon.OffscreenMargin-1, 200, 0, 0, 0)
	outside := spawnProjectile(w, core.KindBullet, component.OwnerPlayer, cfg.Screen.Width+cfg.Weapon.OffscreenMargin+1, 200, 0, 0, 0)
	below := spawnProjectile(w, core.KindBomb, component.OwnerPlayer, 300, cfg.Screen.Height+cfg.Weapon.OffscreenMargin+1, 0, 0, 0)

	step(w, testStep)

	if !w.Alive(inside) {
		t.Error("Expected projectile inside the margin to survive")
	}
	if w.Alive(outside) || w.Alive(below) {
		t.Error("Expected projectiles beyond the margin to be culled")
	}
}

// recordingHUD keeps the last published state
type recordingHUD struct {
	last    core.HUDState
	updates int
}

func (h *recordingHUD) UpdateHUD(s core.HUDState) {
	h.last = s
	h.updates++
}

// TestHUDPublishesEveryTick verifies HUD state and help text per phase
func TestHUDPublishesEveryTick(t *testing.T) {
	hud := &recordingHUD{}
	store := engine.NewMemoryStore()
	w := newTestWorldWithSinks(engine.Sinks{HUD: hud, Store: store},
		NewSegmentSystem, NewCarrierSystem, NewPlayerSystem, NewScoreSystem, NewHUDSystem)

	run(w, time.Second, nil)
	if hud.updates != 10 {
		t.Errorf("Expected 10 HUD updates, got %d", hud.updates)
	}
	if hud.last.HP != 100 || hud.last.Bombs != 10 {
		t.Errorf("Expected 100 hp and 10 bombs, got %d hp and %d bombs", hud.last.HP, hud.last.Bombs)
	}
	if hud.last.Help != tutorialHelp {
		t.Errorf("Expected tutorial on first launch, got %q", hud.last.Help)
	}

	run(w, 3*time.Second, nil)
	if hud.last.Segment != core.SegmentOcean {
		t.Fatalf("Expected OCEAN, got %s", hud.last.Segment)
	}
	if !strings.HasPrefix(hud.last.Help, "OCEAN") {
		t.Errorf("Expected OCEAN help, got %q", hud.last.Help)
	}
	if _, ok := store.Get(engine.KeyTutorialSeen); !ok {
		t.Error("Expected tutorial flag saved once OCEAN is reached")
	}

	DamagePlayer(w, 1000)
	step(w, testStep)
	if !hud.last.GameOver || hud.last.Help != gameOverHelp {
		t.Errorf("Expected game over help, got %q", hud.last.Help)
	}
}
