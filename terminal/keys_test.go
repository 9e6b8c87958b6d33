package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSinglePressHoldsThroughRepeatDelay(t *testing.T) {
	var k KeyState
	t0 := time.Unix(100, 0)
	k.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), t0)

	if !k.Intent(t0.Add(400 * time.Millisecond)).Up {
		t.Error("Expected Up held before the auto-repeat starts")
	}
	if k.Intent(t0.Add(holdInitial + time.Millisecond)).Up {
		t.Error("Expected a lone press to release after the initial hold")
	}
}

func TestRepeatShortensHold(t *testing.T) {
	var k KeyState
	t0 := time.Unix(100, 0)
	k.HandleKey(runeKey(' '), t0)
	k.HandleKey(runeKey(' '), t0.Add(500*time.Millisecond))

	release := t0.Add(500*time.Millisecond + holdRepeat)
	if !k.Intent(release.Add(-time.Millisecond)).FireHeld {
		t.Error("Expected fire held within the repeat window")
	}
	if k.Intent(release).FireHeld {
		t.Error("Expected fire released once repeats stop")
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	var k KeyState
	t0 := time.Unix(100, 0)
	k.HandleKey(runeKey('w'), t0)
	k.HandleKey(runeKey('s'), t0.Add(10*time.Millisecond))

	in := k.Intent(t0.Add(20 * time.Millisecond))
	if in.Up || !in.Down {
		t.Errorf("Expected only Down held, got up=%v down=%v", in.Up, in.Down)
	}
}

func TestBombIsEdgeTriggered(t *testing.T) {
	var k KeyState
	t0 := time.Unix(100, 0)
	k.HandleKey(runeKey('b'), t0)

	if !k.Intent(t0).BombPressed {
		t.Error("Expected bomb press on the next frame")
	}
	if k.Intent(t0.Add(16 * time.Millisecond)).BombPressed {
		t.Error("Expected bomb press consumed after one frame")
	}
}

func TestPointerClearedByVerticalKey(t *testing.T) {
	var k KeyState
	t0 := time.Unix(100, 0)
	k.Point(200)
	in := k.Intent(t0)
	if !in.HasPointer || in.PointerY != 200 {
		t.Errorf("Expected pointer target 200, got %v/%v", in.HasPointer, in.PointerY)
	}
	k.HandleKey(runeKey('k'), t0)
	if k.Intent(t0).HasPointer {
		t.Error("Expected vertical key to cancel pointer steering")
	}
}

func TestCommandKeys(t *testing.T) {
	var k KeyState
	now := time.Unix(100, 0)
	cases := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{runeKey('p'), CmdPause},
		{runeKey('m'), CmdMute},
		{runeKey('r'), CmdRestart},
		{runeKey('q'), CmdQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), CmdQuit},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), CmdDebug},
		{runeKey('w'), CmdNone},
	}
	for _, c := range cases {
		if got := k.HandleKey(c.ev, now); got != c.want {
			t.Errorf("Expected command %d for %v, got %d", c.want, c.ev.Name(), got)
		}
	}
}
