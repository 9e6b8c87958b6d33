// Package terminal runs a session in a tcell screen
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/replay"
)

// Host owns the screen and drives the session one frame per tick
type Host struct {
	screen   tcell.Screen
	session  *game.Session
	hud      *game.HUDLatch
	effects  *game.Effects
	recorder *replay.Recorder
	keys     KeyState
	renderer Renderer

	lastFrame time.Time
	fps       float64
}

// NewHost wires a host; hud and effects must be the sinks the session was built with
// recorder may be nil
func NewHost(screen tcell.Screen, session *game.Session, hud *game.HUDLatch, effects *game.Effects, recorder *replay.Recorder, debug bool) *Host {
	return &Host{
		screen:   screen,
		session:  session,
		hud:      hud,
		effects:  effects,
		recorder: recorder,
		renderer: Renderer{Debug: debug},
	}
}

// Run polls input and renders until the player quits
func (h *Host) Run() {
	h.screen.EnableMouse()
	h.screen.HideCursor()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			h.frame(now)
		}
	}
}

// handleEvent returns false when the host should exit
func (h *Host) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.command(h.keys.HandleKey(ev, now))
	case *tcell.EventMouse:
		h.handleMouse(ev, now)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse, now time.Time) {
	_, row := ev.Position()
	_, rows := h.screen.Size()
	top := 0
	if h.renderer.Debug {
		top = 1
	}
	play := rows - 1 - top
	if play < 1 || row < top || row >= top+play {
		return
	}
	height := h.session.Tuning().Screen.Height
	h.keys.Point((float64(row-top) + 0.5) * height / float64(play))
	if ev.Buttons()&tcell.Button1 != 0 {
		h.keys.press(ctlFire, now)
	}
}

func (h *Host) command(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdPause:
		h.session.TogglePause()
		h.keys.Reset()
	case CmdMute:
		h.session.ToggleMute()
	case CmdRestart:
		if !h.session.GameOver() {
			return true
		}
		h.session.Restart()
		h.effects.Clear()
		h.keys.Reset()
		if h.recorder != nil {
			if err := h.recorder.RecordRestart(); err != nil {
				log.Printf("terminal: replay write failed: %v", err)
				h.recorder = nil
			}
		}
	case CmdDebug:
		h.renderer.Debug = !h.renderer.Debug
	}
	return true
}

// frame advances the session once and redraws
func (h *Host) frame(now time.Time) {
	if !h.lastFrame.IsZero() {
		if elapsed := now.Sub(h.lastFrame).Seconds(); elapsed > 0 {
			h.fps = 0.9*h.fps + 0.1/elapsed
		}
	}
	h.lastFrame = now

	intent := h.keys.Intent(now)
	dt := h.session.Update(intent)
	if h.recorder != nil && !h.session.Paused() {
		if err := h.recorder.Record(dt, intent); err != nil {
			log.Printf("terminal: replay write failed: %v", err)
			h.recorder = nil
		}
	}
	h.effects.Advance(dt)

	overlay := ""
	if h.renderer.Debug {
		overlay = fmt.Sprintf("seed=%d t=%s fps=%.0f %s",
			h.session.Seed(), h.session.Now().Truncate(time.Millisecond), h.fps, h.session.Status().Summary())
	}
	h.renderer.Draw(h.screen, h.session.Snapshot(), h.effects.Active(), h.hud.State(), overlay)
}
