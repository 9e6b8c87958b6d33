package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pacific-fighter/core"
)

// keySet lists alternative keys for one control
type keySet []ebiten.Key

var (
	keysUp    = keySet{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyK}
	keysDown  = keySet{ebiten.KeyDown, ebiten.KeyS, ebiten.KeyJ}
	keysLeft  = keySet{ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyH}
	keysRight = keySet{ebiten.KeyRight, ebiten.KeyD, ebiten.KeyL}
	keysFire  = keySet{ebiten.KeySpace, ebiten.KeyF}
	keysBomb  = keySet{ebiten.KeyB, ebiten.KeyX}
)

func (ks keySet) any(pressed func(ebiten.Key) bool) bool {
	for _, k := range ks {
		if pressed(k) {
			return true
		}
	}
	return false
}

// pointerState is the mouse as seen in logical screen pixels
type pointerState struct {
	y      float64
	inside bool
	button bool
}

// buildIntent maps raw device state to a flight intent
// pressed reports held keys, justPressed reports keys pressed this frame
func buildIntent(pressed, justPressed func(ebiten.Key) bool, ptr pointerState) core.Intent {
	in := core.Intent{
		Up:          keysUp.any(pressed),
		Down:        keysDown.any(pressed),
		Left:        keysLeft.any(pressed),
		Right:       keysRight.any(pressed),
		FireHeld:    keysFire.any(pressed),
		BombPressed: keysBomb.any(justPressed),
	}
	if in.Up && in.Down {
		in.Up, in.Down = false, false
	}
	if in.Left && in.Right {
		in.Left, in.Right = false, false
	}
	// The pointer steers only while its button is held, so keys keep control otherwise
	if ptr.inside && ptr.button && !in.Up && !in.Down {
		in.HasPointer = true
		in.PointerY = ptr.y
		in.FireHeld = true
	}
	return in
}

// Command is a host-level action outside the flight intent
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdMute
	CmdRestart
	CmdDebug
)

var commandKeys = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CmdQuit},
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeyP, CmdPause},
	{ebiten.KeyM, CmdMute},
	{ebiten.KeyR, CmdRestart},
	{ebiten.KeyF1, CmdDebug},
	{ebiten.KeyBackquote, CmdDebug},
}

// commands returns the host commands triggered this frame in key order
func commands(justPressed func(ebiten.Key) bool) []Command {
	var out []Command
	for _, ck := range commandKeys {
		if justPressed(ck.key) {
			out = append(out, ck.cmd)
		}
	}
	return out
}
