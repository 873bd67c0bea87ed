// Package mesh builds the procedural geometry and textures the scene draws.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of float32s per vertex: position, normal, uv.
const Stride = 8

// Mesh is an indexed triangle list with interleaved vertices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Vertices) / Stride }

func (m *Mesh) vertex(p, n mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2], u, v)
	return idx
}

func (m *Mesh) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// quad adds a flat four-corner face wound counter-clockwise from the front.
func (m *Mesh) quad(a, b, c, d, n mgl32.Vec3) {
	i0 := m.vertex(a, n, 0, 0)
	i1 := m.vertex(b, n, 1, 0)
	i2 := m.vertex(c, n, 1, 1)
	i3 := m.vertex(d, n, 0, 1)
	m.tri(i0, i1, i2)
	m.tri(i0, i2, i3)
}

// Position returns vertex i's position.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * Stride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns vertex i's normal.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*Stride + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Append merges o into m, transforming positions by xf and normals by its
// inverse transpose.
func (m *Mesh) Append(o *Mesh, xf mgl32.Mat4) {
	base := uint32(m.VertexCount())
	nm := xf.Mat3().Inv().Transpose()
	for i := 0; i < o.VertexCount(); i++ {
		p := xf.Mul4x1(o.Position(i).Vec4(1)).Vec3()
		n := nm.Mul3x1(o.Normal(i))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		uv := o.Vertices[i*Stride+6 : i*Stride+8]
		m.vertex(p, n, uv[0], uv[1])
	}
	for _, idx := range o.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// FlipWinding reverses every triangle and negates the normals, turning a
// closed shape inside out.
func (m *Mesh) FlipWinding() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		m.Indices[i+1], m.Indices[i+2] = m.Indices[i+2], m.Indices[i+1]
	}
	for i := 0; i < m.VertexCount(); i++ {
		o := i*Stride + 3
		m.Vertices[o] = -m.Vertices[o]
		m.Vertices[o+1] = -m.Vertices[o+1]
		m.Vertices[o+2] = -m.Vertices[o+2]
	}
}

// Bounds returns the axis-aligned extent of the mesh.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	min, max = m.Position(0), m.Position(0)
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return
}
