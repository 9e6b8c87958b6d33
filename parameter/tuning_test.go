package parameter

import "testing"

// TestTuningHelpersOnValues verifies the derived helpers work on returned copies
func TestTuningHelpersOnValues(t *testing.T) {
	if got, want := Default().OceanLineY(), Default().Screen.Height-Default().Screen.OceanOffset; got != want {
		t.Errorf("Expected ocean line %.0f, got %.0f", want, got)
	}
	if got := Default().SegmentDuration("LAUNCH"); got != Default().Segment.Launch {
		t.Errorf("Expected launch duration %v, got %v", Default().Segment.Launch, got)
	}
	if got := Default().SegmentDuration("UNKNOWN"); got != Default().Segment.Ocean {
		t.Errorf("Expected ocean duration for unknown phase, got %v", got)
	}
}
