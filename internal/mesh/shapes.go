package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis.
func Cube() *Mesh {
	m := &Mesh{}
	// Each face is (normal, u, v) with u x v = normal so corners wind
	// counter-clockwise seen from outside.
	faces := [6][3]mgl32.Vec3{
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		m.quad(n.Sub(u).Sub(v), n.Add(u).Sub(v), n.Add(u).Add(v), n.Sub(u).Add(v), n)
	}
	return m
}

// Square is a unit quad in the XY plane spanning [-1, 1], facing +z.
func Square() *Mesh {
	m := &Mesh{}
	m.quad(
		mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{1, 1, 0}, mgl32.Vec3{-1, 1, 0},
		mgl32.Vec3{0, 0, 1},
	)
	return m
}

// Sphere is a unit UV sphere.
func Sphere(rings, segments int) *Mesh {
	return sphereBand(rings, segments, math.Pi)
}

// Dome is the upper half of a unit sphere closed by a floor disc.
func Dome(rings, segments int) *Mesh {
	m := sphereBand(rings, segments, math.Pi/2)
	m.disc(segments, 0, false)
	return m
}

func sphereBand(rings, segments int, maxTheta float64) *Mesh {
	m := &Mesh{}
	for i := 0; i <= rings; i++ {
		theta := maxTheta * float64(i) / float64(rings)
		st, ct := math.Sincos(theta)
		for j := 0; j <= segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			sp, cp := math.Sincos(phi)
			p := mgl32.Vec3{float32(st * sp), float32(ct), float32(st * cp)}
			m.vertex(p, p, float32(j)/float32(segments), float32(i)/float32(rings))
		}
	}
	m.grid(rings, segments, 0)
	return m
}

// grid stitches a (rows+1) x (cols+1) vertex lattice starting at base.
func (m *Mesh) grid(rows, cols int, base uint32) {
	w := uint32(cols + 1)
	for i := uint32(0); i < uint32(rows); i++ {
		for j := uint32(0); j < uint32(cols); j++ {
			a := base + i*w + j
			b := a + w
			c := b + 1
			d := a + 1
			m.tri(a, b, c)
			m.tri(a, c, d)
		}
	}
}

// disc adds a flat unit disc at height y, facing up or down.
func (m *Mesh) disc(segments int, y float32, up bool) {
	n := mgl32.Vec3{0, -1, 0}
	if up {
		n = mgl32.Vec3{0, 1, 0}
	}
	center := m.vertex(mgl32.Vec3{0, y, 0}, n, 0.5, 0.5)
	first := uint32(m.VertexCount())
	for j := 0; j <= segments; j++ {
		sp, cp := math.Sincos(2 * math.Pi * float64(j) / float64(segments))
		p := mgl32.Vec3{float32(sp), y, float32(cp)}
		m.vertex(p, n, 0.5+0.5*p[0], 0.5+0.5*p[2])
	}
	for j := uint32(0); j < uint32(segments); j++ {
		if up {
			m.tri(center, first+j, first+j+1)
		} else {
			m.tri(center, first+j+1, first+j)
		}
	}
}

// Cylinder is a capped unit-radius cylinder along y from -1 to 1.
func Cylinder(segments int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= 1; i++ {
		y := float32(1 - 2*i)
		for j := 0; j <= segments; j++ {
			sp, cp := math.Sincos(2 * math.Pi * float64(j) / float64(segments))
			n := mgl32.Vec3{float32(sp), 0, float32(cp)}
			m.vertex(mgl32.Vec3{n[0], y, n[2]}, n, float32(j)/float32(segments), float32(i))
		}
	}
	m.grid(1, segments, 0)
	m.disc(segments, 1, true)
	m.disc(segments, -1, false)
	return m
}

// flatTri adds a triangle with its own vertices and face normal.
func (m *Mesh) flatTri(a, b, c mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() > 0 {
		n = n.Normalize()
	}
	i0 := m.vertex(a, n, 0, 0)
	i1 := m.vertex(b, n, 1, 0)
	i2 := m.vertex(c, n, 0.5, 1)
	m.tri(i0, i1, i2)
}

// bipyramid is a faceted gem: a ring of sides points at height ringY joined
// to a bottom and a top apex.
func bipyramid(sides int, radius, bottomY, ringY, topY float32) *Mesh {
	m := &Mesh{}
	ring := make([]mgl32.Vec3, sides+1)
	for k := range ring {
		sp, cp := math.Sincos(2 * math.Pi * float64(k) / float64(sides))
		ring[k] = mgl32.Vec3{radius * float32(sp), ringY, radius * float32(cp)}
	}
	top := mgl32.Vec3{0, topY, 0}
	bottom := mgl32.Vec3{0, bottomY, 0}
	for k := 0; k < sides; k++ {
		m.flatTri(top, ring[k], ring[k+1])
		m.flatTri(bottom, ring[k+1], ring[k])
	}
	return m
}

// box appends a cube scaled to half-extents half around center.
func (m *Mesh) box(center, half mgl32.Vec3) {
	m.Append(Cube(), mgl32.Translate3D(center[0], center[1], center[2]).
		Mul4(mgl32.Scale3D(half[0], half[1], half[2])))
}
