// Package window runs a session in an ebiten window
package window

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/replay"
)

// Game adapts a session to ebiten.Game
// ebiten calls Update at a fixed rate, so the session is stepped by the fixed
// tick instead of the wall clock
type Game struct {
	session  *game.Session
	hud      *game.HUDLatch
	effects  *game.Effects
	recorder *replay.Recorder
	debug    bool
}

// NewGame wires a host; hud and effects must be the sinks the session was built with
// recorder may be nil
func NewGame(session *game.Session, hud *game.HUDLatch, effects *game.Effects, recorder *replay.Recorder, debug bool) *Game {
	return &Game{session: session, hud: hud, effects: effects, recorder: recorder, debug: debug}
}

// Run opens the window and blocks until it closes
func (g *Game) Run(title string) error {
	t := g.session.Tuning()
	ebiten.SetWindowSize(int(t.Screen.Width), int(t.Screen.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (g *Game) tick() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	for _, cmd := range commands(inpututil.IsKeyJustPressed) {
		if !g.command(cmd) {
			return ebiten.Termination
		}
	}

	intent := buildIntent(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed, g.pointer())
	dt := g.session.Step(intent, g.tick())
	if g.recorder != nil && !g.session.Paused() {
		if err := g.recorder.Record(dt, intent); err != nil {
			log.Printf("window: replay write failed: %v", err)
			g.recorder = nil
		}
	}
	g.effects.Advance(dt)
	return nil
}

func (g *Game) pointer() pointerState {
	x, y := ebiten.CursorPosition()
	t := g.session.Tuning()
	return pointerState{
		y:      float64(y),
		inside: x >= 0 && y >= 0 && float64(x) < t.Screen.Width && float64(y) < t.Screen.Height,
		button: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// command applies a host action; false ends the game loop
func (g *Game) command(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdPause:
		g.session.TogglePause()
	case CmdMute:
		g.session.ToggleMute()
	case CmdRestart:
		if !g.session.GameOver() {
			return true
		}
		g.session.Restart()
		g.effects.Clear()
		if g.recorder != nil {
			if err := g.recorder.RecordRestart(); err != nil {
				log.Printf("window: replay write failed: %v", err)
				g.recorder = nil
			}
		}
	case CmdDebug:
		g.debug = !g.debug
	}
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	drawWorld(screen, snap)
	drawEffects(screen, g.effects.Active())
	drawHUD(screen, snap.Width, g.hud.State())
	if g.debug {
		drawOverlay(screen, fmt.Sprintf("seed=%d t=%s tps=%.0f fps=%.0f\n%s",
			g.session.Seed(), g.session.Now().Truncate(time.Millisecond),
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.session.Status().Summary()))
	}
}

// Layout keeps the logical screen at the simulated resolution and lets ebiten scale it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	t := g.session.Tuning()
	return int(t.Screen.Width), int(t.Screen.Height)
}
