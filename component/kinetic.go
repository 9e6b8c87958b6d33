package component

import "github.com/lixenwraith/pacific-fighter/vmath"

// KineticComponent holds center position, velocity in px/s and collider size
type KineticComponent struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Box returns the collider rectangle
func (k KineticComponent) Box() vmath.Box {
	return vmath.Box{X: k.X, Y: k.Y, W: k.W, H: k.H}
}
