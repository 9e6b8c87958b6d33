package component

import (
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// SetPieceComponent is an island mass or carrier deck
// Landing zone is stored relative to the body center
type SetPieceComponent struct {
	Kind    core.Kind
	HasZone bool
	ZoneDX  float64
	ZoneDY  float64
	ZoneW   float64
	ZoneH   float64
}

// Zone returns the landing zone in world space for a body at k
func (s SetPieceComponent) Zone(k KineticComponent) (vmath.Box, bool) {
	if !s.HasZone {
		return vmath.Box{}, false
	}
	return vmath.Box{X: k.X + s.ZoneDX, Y: k.Y + s.ZoneDY, W: s.ZoneW, H: s.ZoneH}, true
}
