package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Terrain shape, in the unit square before the scene scales it by 300.
const (
	TerrainResolution = 128
	TerrainBase       = -0.0678
	TerrainRelief     = 0.005
	TerrainRim        = 0.06
	terrainUVRepeat   = 24
)

// Crystal is a hexagonal gem standing on its lower tip.
func Crystal() *Mesh {
	return bipyramid(6, 1.0, -0.5, 1.5, 4)
}

// BrokenCrystal is a low stump ringed by shards.
func BrokenCrystal() *Mesh {
	m := bipyramid(6, 0.8, -0.5, 0.1, 0.35)
	for k := 0; k < 5; k++ {
		h := hash2D(0xC0FFEE, k, 0)
		angle := 2*math.Pi*float64(k)/5 + unit(h)*0.6
		dist := 1.1 + 0.5*unit(splitmix64(h))
		tilt := float32(0.3 + 0.6*unit(splitmix64(h+1)))
		sp, cp := math.Sincos(angle)

		shard := bipyramid(3, 0.3, -0.1, 0, 0.6)
		xf := mgl32.Translate3D(float32(dist*sp), -0.3, float32(dist*cp)).
			Mul4(mgl32.HomogRotate3DY(float32(angle))).
			Mul4(mgl32.HomogRotate3DX(tilt))
		m.Append(shard, xf)
	}
	return m
}

// RoverBody is the chassis, suspension and camera mast. Coordinates are in
// the body frame, which the scene scales by 1.5.
func RoverBody() *Mesh {
	m := &Mesh{}
	m.box(mgl32.Vec3{0.157, -0.7, 0.18}, mgl32.Vec3{0.37, 0.3, 0.87})
	m.box(mgl32.Vec3{0.157, -0.1, -0.5}, mgl32.Vec3{0.05, 0.3, 0.05})
	m.box(mgl32.Vec3{0.157, 0.25, -0.55}, mgl32.Vec3{0.18, 0.08, 0.12})

	// Rocker bars and struts down to each wheel hub.
	for _, x := range []float32{-0.73, 1.07} {
		m.box(mgl32.Vec3{x, -0.93, 0.18}, mgl32.Vec3{0.033, 0.033, 0.93})
		for _, z := range []float32{1.22, 0.3, -0.85} {
			m.box(mgl32.Vec3{x, -1.1, z}, mgl32.Vec3{0.03, 0.17, 0.03})
		}
	}
	return m
}

// SolarPanels is the flat array over the rear deck.
func SolarPanels() *Mesh {
	m := &Mesh{}
	m.box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.75, 0.02, 0.5})
	m.box(mgl32.Vec3{-1.0, -0.01, 0}, mgl32.Vec3{0.25, 0.015, 0.45})
	m.box(mgl32.Vec3{1.0, -0.01, 0}, mgl32.Vec3{0.25, 0.015, 0.45})
	m.box(mgl32.Vec3{0, -0.09, 0}, mgl32.Vec3{0.04, 0.07, 0.04})
	return m
}

// Wheel is a tyre rolling about x with its hub cap on the outer side.
// outward is -1 for the left side and +1 for the right.
func Wheel(outward float32) *Mesh {
	m := &Mesh{}
	toX := mgl32.HomogRotate3DZ(math.Pi / 2)
	m.Append(Cylinder(24), mgl32.Scale3D(0.6, 1.6, 1.6).Mul4(toX))
	m.Append(Cylinder(12), mgl32.Translate3D(0.7*outward, 0, 0).
		Mul4(mgl32.Scale3D(0.15, 0.6, 0.6)).Mul4(toX))
	return m
}

// Radio is a dish antenna on a post.
func Radio() *Mesh {
	m := &Mesh{}
	m.Append(Cylinder(20), mgl32.Translate3D(0, 0.3, 0).
		Mul4(mgl32.HomogRotate3DX(math.Pi/2)).
		Mul4(mgl32.Scale3D(1, 0.06, 1)))
	m.box(mgl32.Vec3{0, 0.3, 0.3}, mgl32.Vec3{0.05, 0.05, 0.25})
	m.box(mgl32.Vec3{0, -0.3, 0}, mgl32.Vec3{0.06, 0.4, 0.06})
	return m
}

// BasePlatform is the round landing pad under the habitat dome.
func BasePlatform() *Mesh {
	m := &Mesh{}
	m.Append(Cylinder(48), mgl32.Translate3D(0, 0.1, 0).Mul4(mgl32.Scale3D(1, 0.15, 1)))
	return m
}

// Terrain is a heightfield over [-1, 1] in x and z.
func Terrain(seed uint64, resolution int) *Mesh {
	m := &Mesh{}
	step := 2.0 / float64(resolution)
	for i := 0; i <= resolution; i++ {
		z := -1 + float64(i)*step
		for j := 0; j <= resolution; j++ {
			x := -1 + float64(j)*step
			h := TerrainHeight(seed, x, z)

			dx := TerrainHeight(seed, x+step, z) - TerrainHeight(seed, x-step, z)
			dz := TerrainHeight(seed, x, z+step) - TerrainHeight(seed, x, z-step)
			n := mgl32.Vec3{float32(-dx), float32(2 * step), float32(-dz)}.Normalize()

			u := float32(j) / float32(resolution) * terrainUVRepeat
			v := float32(i) / float32(resolution) * terrainUVRepeat
			m.vertex(mgl32.Vec3{float32(x), float32(h), float32(z)}, n, u, v)
		}
	}
	m.grid(resolution, resolution, 0)
	return m
}

// TerrainHeight is the ground height at (x, z) in terrain units. The centre
// stays below the rover wheels; the rim rises into a ridge.
func TerrainHeight(seed uint64, x, z float64) float64 {
	h := TerrainBase - TerrainRelief*fbm(seed, x*6+50, z*6+50, 4)
	if r := math.Hypot(x, z); r > 0.6 {
		t := math.Min((r-0.6)/0.4, 1)
		h += TerrainRim * smoothstep(t) * (0.6 + 0.4*fbm(seed^0xA5A5, x*3, z*3, 3))
	}
	return h
}
