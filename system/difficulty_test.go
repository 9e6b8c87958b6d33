package system

import (
	"testing"
	"time"
)

func TestFighterIntervalFloor(t *testing.T) {
	tests := []struct {
		d    int
		want time.Duration
	}{
		{0, 2200 * time.Millisecond},
		{5, 1750 * time.Millisecond},
		{12, 1120 * time.Millisecond},
		{13, 1100 * time.Millisecond},
		{50, 1100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := FighterInterval(tt.d, false); got != tt.want {
			t.Errorf("d=%d: expected %v, got %v", tt.d, tt.want, got)
		}
	}
}

func TestFighterIntervalStretchedByBomber(t *testing.T) {
	if got := FighterInterval(0, true); got != 2750*time.Millisecond {
		t.Errorf("Expected 2750ms with bomber alive, got %v", got)
	}
}

func TestBomberIntervalFloor(t *testing.T) {
	if got := BomberInterval(0); got != 9800*time.Millisecond {
		t.Errorf("Expected 9800ms, got %v", got)
	}
	if got := BomberInterval(100); got != 5200*time.Millisecond {
		t.Errorf("Expected 5200ms floor, got %v", got)
	}
}

func TestTurretFireScaling(t *testing.T) {
	if got := TurretFireEvery(0); got != 1550*time.Millisecond {
		t.Errorf("Expected 1550ms, got %v", got)
	}
	if got := TurretFireEvery(20); got != 900*time.Millisecond {
		t.Errorf("Expected 900ms floor, got %v", got)
	}
	if got := TurretFireChance(0); got != 0.70 {
		t.Errorf("Expected 0.70, got %f", got)
	}
	if got := TurretFireChance(10); got != 0.86 {
		t.Errorf("Expected 0.86 cap, got %f", got)
	}
}

func TestAceModifiers(t *testing.T) {
	if got := AceChance(50); got != 0.22 {
		t.Errorf("Expected ace chance cap 0.22, got %f", got)
	}
	if FighterHP(2, true)-FighterHP(2, false) != 18 {
		t.Error("Expected ace to carry 18 extra hp")
	}
	if FighterShotEvery(0, false)-FighterShotEvery(0, true) != 140*time.Millisecond {
		t.Error("Expected ace fire interval 140ms shorter")
	}
}

func TestFighterStatsScale(t *testing.T) {
	if FighterHP(0, false) != 28 || FighterHP(3, false) != 40 {
		t.Errorf("Expected 28 and 40, got %d and %d", FighterHP(0, false), FighterHP(3, false))
	}
	if FighterSpeed(10) != 270 {
		t.Errorf("Expected 270, got %f", FighterSpeed(10))
	}
	if FighterShotEvery(20, false) != 900*time.Millisecond {
		t.Errorf("Expected shot floor 900ms, got %v", FighterShotEvery(20, false))
	}
}
