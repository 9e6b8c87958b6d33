package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pacific-fighter/core"
)

// Terminals report presses and auto-repeats but never releases, so a held
// control stays active until its repeat stream stops
const (
	holdInitial = 550 * time.Millisecond // spans the auto-repeat delay after a first press
	holdRepeat  = 130 * time.Millisecond
)

type control int

const (
	ctlUp control = iota
	ctlDown
	ctlLeft
	ctlRight
	ctlFire
	ctlCount
)

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

// KeyState turns key press streams into a per-frame intent
type KeyState struct {
	deadline   [ctlCount]time.Time
	bomb       bool
	hasPointer bool
	pointerY   float64
}

func (k *KeyState) press(c control, now time.Time) {
	hold := holdInitial
	if now.Before(k.deadline[c]) {
		hold = holdRepeat
	}
	k.deadline[c] = now.Add(hold)

	switch c {
	case ctlUp:
		k.deadline[ctlDown] = time.Time{}
	case ctlDown:
		k.deadline[ctlUp] = time.Time{}
	case ctlLeft:
		k.deadline[ctlRight] = time.Time{}
	case ctlRight:
		k.deadline[ctlLeft] = time.Time{}
	}
	if c == ctlUp || c == ctlDown {
		k.hasPointer = false
	}
}

// HandleKey records a key event and returns any host command it carries
func (k *KeyState) HandleKey(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		k.press(ctlUp, now)
	case tcell.KeyDown:
		k.press(ctlDown, now)
	case tcell.KeyLeft:
		k.press(ctlLeft, now)
	case tcell.KeyRight:
		k.press(ctlRight, now)
	case tcell.KeyF1:
		return CmdDebug
	case tcell.KeyRune:
		return k.handleRune(ev.Rune(), now)
	}
	return CmdNone
}

func (k *KeyState) handleRune(r rune, now time.Time) Command {
	switch r {
	case 'w', 'k':
		k.press(ctlUp, now)
	case 's', 'j':
		k.press(ctlDown, now)
	case 'a', 'h':
		k.press(ctlLeft, now)
	case 'd', 'l':
		k.press(ctlRight, now)
	case ' ', 'f':
		k.press(ctlFire, now)
	case 'b', 'x':
		k.bomb = true
	case 'p', 'P':
		return CmdPause
	case 'm', 'M':
		return CmdMute
	case 'r', 'R':
		return CmdRestart
	case 'q', 'Q':
		return CmdQuit
	case '`':
		return CmdDebug
	}
	return CmdNone
}

// Point steers toward a world-space Y until the next vertical key press
func (k *KeyState) Point(y float64) {
	k.hasPointer = true
	k.pointerY = y
}

// Intent samples the held controls; the bomb press is consumed
func (k *KeyState) Intent(now time.Time) core.Intent {
	held := func(c control) bool { return now.Before(k.deadline[c]) }
	in := core.Intent{
		Up:          held(ctlUp),
		Down:        held(ctlDown),
		Left:        held(ctlLeft),
		Right:       held(ctlRight),
		FireHeld:    held(ctlFire),
		BombPressed: k.bomb,
		HasPointer:  k.hasPointer,
		PointerY:    k.pointerY,
	}
	k.bomb = false
	return in
}

// Reset releases every control
func (k *KeyState) Reset() {
	*k = KeyState{}
}
