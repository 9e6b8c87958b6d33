package game

import "github.com/lixenwraith/pacific-fighter/core"

// HUDLatch is a HUDSink keeping the most recent state for the host to draw
type HUDLatch struct {
	state core.HUDState
}

func (h *HUDLatch) UpdateHUD(s core.HUDState) { h.state = s }

// State returns the last published HUD
func (h *HUDLatch) State() core.HUDState { return h.state }
