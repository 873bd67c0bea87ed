package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marsrover/internal/scene"
)

// assertOutward checks that every non-degenerate triangle of a convex mesh
// around the origin winds counter-clockwise seen from outside.
func assertOutward(t *testing.T, m *Mesh, wantOut bool) {
	t.Helper()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Position(int(m.Indices[i]))
		b := m.Position(int(m.Indices[i+1]))
		c := m.Position(int(m.Indices[i+2]))
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() < 1e-6 {
			continue
		}
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if wantOut {
			require.Greater(t, n.Dot(centroid), float32(0), "triangle %d", i/3)
		} else {
			require.Less(t, n.Dot(centroid), float32(0), "triangle %d", i/3)
		}
	}
}

func assertIndicesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	require.Zero(t, len(m.Vertices)%Stride)
	require.Zero(t, len(m.Indices)%3)
	n := uint32(m.VertexCount())
	for _, idx := range m.Indices {
		require.Less(t, idx, n)
	}
}

func TestCube(t *testing.T) {
	m := Cube()
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, -1, -1}, lo)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, hi)
	assertOutward(t, m, true)
}

func TestConvexShapesWindOutward(t *testing.T) {
	tests := []struct {
		name string
		m    *Mesh
	}{
		{"sphere", Sphere(8, 16)},
		{"cylinder", Cylinder(12)},
		{"crystal", Crystal()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIndicesInRange(t, tt.m)
			assertOutward(t, tt.m, true)
		})
	}
}

func TestFlipWindingTurnsInsideOut(t *testing.T) {
	m := Sphere(8, 16)
	m.FlipWinding()
	assertOutward(t, m, false)
	assert.InDelta(t, -1, m.Normal(0).Y(), 1e-6)
}

func TestAppendTransformsAndOffsets(t *testing.T) {
	m := Square()
	before := m.VertexCount()
	m.Append(Square(), mgl32.Translate3D(0, 0, 5).Mul4(mgl32.Scale3D(2, 2, 2)))

	assert.Equal(t, 2*before, m.VertexCount())
	assert.Equal(t, uint32(before), m.Indices[6])
	p := m.Position(before)
	assert.InDelta(t, -2, p.X(), 1e-6)
	assert.InDelta(t, 5, p.Z(), 1e-6)
	assert.InDelta(t, 1, m.Normal(before).Len(), 1e-6)
}

func TestLibraryComplete(t *testing.T) {
	lib := Library(42)
	for id, m := range lib {
		require.NotNil(t, m, "mesh %d", id)
		assert.NotZero(t, m.VertexCount(), "mesh %d", id)
		assertIndicesInRange(t, m)
	}
	assertOutward(t, lib[scene.MeshSkySphere], false)
}

func TestTerrainClearsRoverAtSpawn(t *testing.T) {
	// The scene places terrain with T(0,18,0)*S(300); wheel bottoms sit at -2.3.
	for _, seed := range []uint64{1, 7, 99} {
		world := TerrainHeight(seed, 0, 0)*300 + 18
		assert.Less(t, world, -2.3)
	}
	assert.Greater(t, TerrainHeight(1, 0.99, 0), TerrainHeight(1, 0, 0))
}

func TestTerrainGrid(t *testing.T) {
	m := Terrain(3, 8)
	assert.Equal(t, 81, m.VertexCount())
	assert.Len(t, m.Indices, 8*8*6)
	for i := 0; i < m.VertexCount(); i++ {
		assert.Greater(t, m.Normal(i).Y(), float32(0))
	}
	// Seen from above, triangles wind counter-clockwise.
	a, b, c := m.Position(int(m.Indices[0])), m.Position(int(m.Indices[1])), m.Position(int(m.Indices[2]))
	assert.Greater(t, b.Sub(a).Cross(c.Sub(a)).Y(), float32(0))
}

func TestTextures(t *testing.T) {
	soil := Soil(64, 5)
	assert.Equal(t, 64, soil.Bounds().Dx())
	assert.Equal(t, soil.Pix, Soil(64, 5).Pix)
	for i := 3; i < len(soil.Pix); i += 4 {
		require.Equal(t, uint8(255), soil.Pix[i])
	}

	sky := NightSky(256, 5)
	stars := 0
	for i := 0; i < len(sky.Pix); i += 4 {
		if sky.Pix[i] > 100 {
			stars++
		}
	}
	assert.NotZero(t, stars)
	assert.Less(t, stars, 256*256/50)
}
