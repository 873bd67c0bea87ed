package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec3(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "component %d of %v", i, got)
	}
}

func TestTimesAppliesRightOperandFirst(t *testing.T) {
	tr := Translation(10, 0, 0)
	rot := Rotation(math.Pi/2, 0, 1, 0)

	// Rotate (1,0,0) about y to (0,0,-1), then translate.
	assertVec3(t, mgl64.Vec3{10, 0, -1}, tr.Times(rot).Point(1, 0, 0))
	// Translate to (11,0,0), then rotate.
	assertVec3(t, mgl64.Vec3{0, 0, -11}, rot.Times(tr).Point(1, 0, 0))
}

func TestRotationNormalizesAxis(t *testing.T) {
	a := Rotation(0.7, 0, 5, 0)
	b := Rotation(0.7, 0, 1, 0)
	assert.True(t, a.ApproxEqual(b, eps))
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translation(3, -2, 7).Times(Rotation(1.1, 1, 1, 0)).Times(Scale(2, 3, 4))
	assert.True(t, m.Times(m.Inverse()).ApproxEqual(Identity(), 1e-9))
}

func TestOriginAndPoint(t *testing.T) {
	m := Translation(4, 5, 6).Times(Rotation(0.3, 0, 0, 1))
	assertVec3(t, mgl64.Vec3{4, 5, 6}, m.Origin())
	assertVec3(t, m.Origin(), m.Point(0, 0, 0))
}

func TestLerp(t *testing.T) {
	a := Identity()
	b := Scale(3, 3, 3)

	assert.True(t, a.Lerp(b, 0).ApproxEqual(a, eps))
	assert.True(t, a.Lerp(b, 1).ApproxEqual(b, eps))

	half := a.Lerp(b, 0.5)
	assert.InDelta(t, 2.0, half[0], eps)
	assert.InDelta(t, 1.0, half[15], eps)
}

func TestFloat32(t *testing.T) {
	m := Translation(1.5, 2.5, 3.5)
	f := m.Float32()
	for i := range f {
		assert.InDelta(t, m[i], float64(f[i]), 1e-6)
	}
}

func TestApproxEqualIsAbsoluteNearZero(t *testing.T) {
	a := Identity()
	b := Identity()
	b[4] = 5e-17
	assert.True(t, a.ApproxEqual(b, 1e-9))

	b[4] = 1e-6
	assert.False(t, a.ApproxEqual(b, 1e-9))
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	v := LookAt(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	assertVec3(t, mgl64.Vec3{}, v.Point(0, 0, 5))
	assertVec3(t, mgl64.Vec3{0, 0, -5}, v.Point(0, 0, 0))
	assertVec3(t, mgl64.Vec3{0, 1, -5}, v.Point(0, 1, 0))
}

func TestPerspectiveElements(t *testing.T) {
	fov, aspect, near, far := math.Pi/2, 2.0, 1.0, 10.0
	p := Perspective(fov, aspect, near, far)
	f := 1 / math.Tan(fov/2)

	assert.InDelta(t, f/aspect, p[0], eps)
	assert.InDelta(t, f, p[5], eps)
	assert.InDelta(t, -1, p[11], eps)
	assert.InDelta(t, 0, p[15], eps)

	// Near and far planes land on clip depth -1 and 1.
	n := p.Apply(mgl64.Vec4{0, 0, -near, 1})
	assert.InDelta(t, -1, n[2]/n[3], 1e-9)
	fr := p.Apply(mgl64.Vec4{0, 0, -far, 1})
	assert.InDelta(t, 1, fr[2]/fr[3], 1e-9)
}
