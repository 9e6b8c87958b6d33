package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/replay"
	"github.com/lixenwraith/pacific-fighter/system"
)

type testHost struct {
	*Host
	screen tcell.SimulationScreen
	clock  *engine.MockTimeProvider
}

func newTestHost(t *testing.T, rec *replay.Recorder) testHost {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(96, 28)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	hud := &game.HUDLatch{}
	fx := game.NewEffects()
	sess := game.NewSession(game.Options{
		Seed:         11,
		Sinks:        engine.Sinks{HUD: hud, Effects: fx},
		TimeProvider: clock,
	})
	return testHost{Host: NewHost(screen, sess, hud, fx, rec, false), screen: screen, clock: clock}
}

// advance runs n frames of 16ms on both the mock clock and the wall stamp
func (h testHost) advance(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(16 * time.Millisecond)
		h.frame(h.clock.Now())
	}
}

func (h testHost) rowText(row int) string {
	cols, _ := h.screen.Size()
	var b strings.Builder
	for c := 0; c < cols; c++ {
		r, _, _, _ := h.screen.GetContent(c, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestFrameDrawsHUD(t *testing.T) {
	h := newTestHost(t, nil)
	h.advance(3)

	_, rows := h.screen.Size()
	line := h.rowText(rows - 1)
	if !strings.Contains(line, "SCORE") || !strings.Contains(line, "LAUNCH") {
		t.Errorf("Expected HUD with score and phase, got %q", line)
	}
}

func TestFrameDrawsPlayer(t *testing.T) {
	h := newTestHost(t, nil)
	h.advance(2)

	cols, rows := h.screen.Size()
	found := false
	for row := 0; row < rows-1 && !found; row++ {
		for c := 0; c < cols; c++ {
			if r, _, _, _ := h.screen.GetContent(c, row); r == '>' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected the player glyph on screen")
	}
}

func TestPauseKeyFreezesSession(t *testing.T) {
	h := newTestHost(t, nil)
	h.advance(5)
	before := h.session.Now()

	h.handleEvent(runeKey('p'), h.clock.Now())
	h.advance(30)
	if h.session.Now() != before {
		t.Errorf("Expected game time frozen at %v, got %v", before, h.session.Now())
	}
	if !strings.Contains(h.hud.State().Help, "PAUSED") {
		t.Errorf("Expected paused help, got %q", h.hud.State().Help)
	}

	h.handleEvent(runeKey('p'), h.clock.Now())
	h.advance(5)
	if h.session.Now() <= before {
		t.Error("Expected game time to resume")
	}
}

func TestQuitKey(t *testing.T) {
	h := newTestHost(t, nil)
	if h.handleEvent(runeKey('q'), time.Now()) {
		t.Error("Expected q to end the host loop")
	}
	if !h.handleEvent(runeKey('w'), time.Now()) {
		t.Error("Expected flight keys to keep the loop running")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	var buf bytes.Buffer
	rec, err := replay.NewWriter(&buf, 11, parameter.Default())
	if err != nil {
		t.Fatal(err)
	}
	h := newTestHost(t, rec)
	h.advance(60)

	h.handleEvent(runeKey('r'), h.clock.Now())
	if h.session.Now() == 0 {
		t.Fatal("Expected restart ignored during play")
	}

	system.DamagePlayer(h.session.World(), 10000)
	h.advance(1)
	if !h.session.GameOver() {
		t.Fatal("Expected game over after lethal damage")
	}
	h.handleEvent(runeKey('r'), h.clock.Now())
	if h.session.GameOver() || h.session.Now() != 0 {
		t.Errorf("Expected fresh run after restart, got over=%v now=%v", h.session.GameOver(), h.session.Now())
	}

	rec.Close()
	rep, err := replay.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	restarts := 0
	for _, f := range rep.Frames {
		if f.Restart {
			restarts++
		}
	}
	if restarts != 1 || len(rep.Frames) != 62 {
		t.Errorf("Expected 61 ticks and 1 restart recorded, got %d frames and %d restarts", len(rep.Frames), restarts)
	}
}

func TestMouseSteersAndFires(t *testing.T) {
	h := newTestHost(t, nil)
	now := h.clock.Now()
	h.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), now)

	in := h.keys.Intent(now)
	if !in.HasPointer || !in.FireHeld {
		t.Errorf("Expected pointer steering with fire, got %+v", in)
	}
	height := h.session.Tuning().Screen.Height
	if in.PointerY <= 0 || in.PointerY >= height/2 {
		t.Errorf("Expected pointer in the upper half, got %v", in.PointerY)
	}
}

func TestHUDLineFormat(t *testing.T) {
	line := HUDLine(core.HUDState{HP: 80, MaxHP: 100, Bombs: 3, Score: 1200, BestScore: 5000, Segment: core.SegmentOcean, Help: "OCEAN: fighters inbound"})
	for _, want := range []string{"HP  80/100", "BOMBS 3", "SCORE 1200", "BEST 5000", "OCEAN", "fighters inbound"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in %q", want, line)
		}
	}
}
