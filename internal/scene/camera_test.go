package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCameraRigDefaults(t *testing.T) {
	c := NewCameraRig(DefaultCameraSmoothing)
	assert.Equal(t, ViewThirdPerson, c.Active)
	assert.True(t, c.Current.ApproxEqual(
		LookAt(mgl64.Vec3{0, 12, 12}, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 1, 0}), eps))
}

func TestCameraSmoothConverges(t *testing.T) {
	c := NewCameraRig(0.3)
	c.UpdateViews(NewRover(BaseLateralSpeed, BaseSpinSpeed))
	start := c.Current
	target := c.Target()

	c.Smooth()
	want := start.Lerp(target, 0.3)
	assert.True(t, c.Current.ApproxEqual(want, eps))

	for i := 0; i < 200; i++ {
		c.Smooth()
	}
	assert.True(t, c.Current.ApproxEqual(target, 1e-9))
}

func TestCameraSmoothingClamped(t *testing.T) {
	assert.Equal(t, 1.0, NewCameraRig(4).Smoothing)
	assert.Equal(t, 0.0, NewCameraRig(-1).Smoothing)
}

func TestFirstPersonViewFollowsRover(t *testing.T) {
	r := NewRover(BaseLateralSpeed, BaseSpinSpeed)
	r.X, r.Z, r.LookAngle = 5, 9, math.Pi/2

	c := NewCameraRig(1)
	c.UpdateViews(r)
	eye := c.Views[ViewFirstPerson].Inverse().Origin()
	// T(0,2,-1.5) rotated a quarter turn about y puts the eye at x-1.5.
	assertVec3(t, mgl64.Vec3{3.5, 2, 9}, eye)
}

func TestSelectIgnoresUnknownView(t *testing.T) {
	c := NewCameraRig(0.3)
	c.Select(ViewGlobal)
	c.Select(CameraView(42))
	assert.Equal(t, ViewGlobal, c.Active)
	assert.Equal(t, "global", c.Active.String())
}

func TestRadioRegion(t *testing.T) {
	c := NewCameraRig(0.3)

	r, ok := c.RadioRegion()
	assert.True(t, ok)
	assert.True(t, r.Contains(0.1, -0.5))
	assert.False(t, r.Contains(0.2, -0.5))

	c.Select(ViewSkyThirdPerson)
	r, ok = c.RadioRegion()
	assert.True(t, ok)
	assert.True(t, r.Contains(0.4, -0.3))

	for _, v := range []CameraView{ViewFirstPerson, ViewGlobal} {
		c.Select(v)
		_, ok = c.RadioRegion()
		assert.False(t, ok, v.String())
	}
}
