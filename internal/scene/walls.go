package scene

import "math"

// WallBox is an axis-aligned rectangle on the ground plane (x, z).
type WallBox struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// NewWallBox accepts any two opposite corners.
func NewWallBox(x0, z0, x1, z1 float64) WallBox {
	return WallBox{
		MinX: math.Min(x0, x1), MinZ: math.Min(z0, z1),
		MaxX: math.Max(x0, x1), MaxZ: math.Max(z0, z1),
	}
}

// Contains is inclusive on every edge.
func (b WallBox) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Walls is the static blocker list. Boxes are few, so a linear scan is enough.
type Walls []WallBox

// Collides reports whether (x, z) lies inside any box.
func (w Walls) Collides(x, z float64) bool {
	for _, b := range w {
		if b.Contains(x, z) {
			return true
		}
	}
	return false
}
