package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSinusoidal(t *testing.T) {
	const period = 4.0

	assert.InDelta(t, 2.0, Sinusoidal(0, 2, 6, period, true), eps)
	assert.InDelta(t, 4.0, Sinusoidal(period/4, 2, 6, period, true), eps)
	assert.InDelta(t, 6.0, Sinusoidal(period/2, 2, 6, period, true), eps)

	assert.InDelta(t, 6.0, Sinusoidal(0, 2, 6, period, false), eps)
	assert.InDelta(t, 2.0, Sinusoidal(period/2, 2, 6, period, false), eps)

	for i := 0; i < 100; i++ {
		v := Sinusoidal(float64(i)*0.137, 2, 6, period, true)
		assert.GreaterOrEqual(t, v, 2.0-eps)
		assert.LessOrEqual(t, v, 6.0+eps)
	}
}

func TestColorSinusoidal(t *testing.T) {
	c := ColorSinusoidal(0, Palette.Black, Palette.White, 2, true)
	assert.InDelta(t, 0, c.R, eps)
	assert.InDelta(t, 1, c.A, eps)
}

func TestAngularPositionIsPeriodic(t *testing.T) {
	d := NewDayCycle(DefaultSunPeriod)
	for _, tt := range []float64{0, 0.3, 2.2, 17} {
		diff := d.AngularPosition(tt+d.Period) - d.AngularPosition(tt)
		assert.InDelta(t, 2*math.Pi, diff, 1e-9)
	}
}

func TestManualPresets(t *testing.T) {
	d := NewDayCycle(DefaultSunPeriod)
	d.Toggle()
	assert.False(t, d.Cyclic)
	assert.Equal(t, SunMorningAngle, d.AngularPosition(123))

	d.SetPreset(SunDay)
	assert.Equal(t, SunDayAngle, d.AngularPosition(0))
	d.SetPreset(SunNight)
	assert.Equal(t, SunNightAngle, d.AngularPosition(0))
}

func TestAdjustPeriodIsUnguarded(t *testing.T) {
	d := NewDayCycle(1)
	d.AdjustPeriod(-1)
	d.AdjustPeriod(-1)
	assert.Equal(t, -1.0, d.Period)
}

func TestComputeLightAtNoon(t *testing.T) {
	d := NewDayCycle(DefaultSunPeriod)
	d.Toggle()
	d.SetPreset(SunDay)

	r := NewRover(BaseLateralSpeed, BaseSpinSpeed)
	r.X, r.Z = 20, -7
	r.Pose = r.Placement()

	l := d.ComputeLight(0, r)
	assertVec3(t, mgl64.Vec3{20, 1000, -7}, l.SunPosition)
	assertVec3(t, mgl64.Vec3{20, 5, -7}, l.Position)
	assertVec3(t, mgl64.Vec3{20, -12.5, -17}, l.ViewTarget)
	assert.Equal(t, LightFieldOfView, l.FieldOfView)
}

func TestToggleKeepsManualAngle(t *testing.T) {
	d := NewDayCycle(5)
	d.Toggle()
	d.SetPreset(SunNight)
	assert.Equal(t, SunNightAngle, d.AngularPosition(1.3))

	d.Toggle()
	assert.True(t, d.Cyclic)
	assert.InDelta(t, 1.3*2*math.Pi/5, d.AngularPosition(1.3), 1e-12)

	d.Toggle()
	assert.Equal(t, SunNightAngle, d.ManualAngle)
	assert.Equal(t, SunNightAngle, d.AngularPosition(1.3))
}
