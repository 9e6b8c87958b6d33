package vmath

import "math"

// Box is an axis-aligned rectangle described by its center and size
type Box struct {
	X, Y float64
	W, H float64
}

func (b Box) Left() float64   { return b.X - b.W/2 }
func (b Box) Right() float64  { return b.X + b.W/2 }
func (b Box) Top() float64    { return b.Y - b.H/2 }
func (b Box) Bottom() float64 { return b.Y + b.H/2 }

// Overlaps reports strict intersection; touching edges do not count
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// Contains reports whether the point lies inside the box
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Top() && y <= b.Bottom()
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
