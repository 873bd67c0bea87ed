package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SunPreset is a fixed sun angle selectable in manual mode.
type SunPreset int

const (
	SunMorning SunPreset = iota
	SunDay
	SunNight
)

func (p SunPreset) Angle() float64 {
	switch p {
	case SunDay:
		return SunDayAngle
	case SunNight:
		return SunNightAngle
	}
	return SunMorningAngle
}

// DayCycle drives the sun either from elapsed time or from a manual angle.
type DayCycle struct {
	Cyclic      bool
	ManualAngle float64
	// Period is seconds per revolution. Nothing stops it reaching zero or
	// going negative; the frequency then blows up or runs backwards.
	Period float64
}

func NewDayCycle(period float64) *DayCycle {
	return &DayCycle{Cyclic: true, ManualAngle: SunMorningAngle, Period: period}
}

func (d *DayCycle) Toggle()                 { d.Cyclic = !d.Cyclic }
func (d *DayCycle) SetPreset(p SunPreset)   { d.ManualAngle = p.Angle() }
func (d *DayCycle) AdjustPeriod(by float64) { d.Period += by }

// AngularPosition is the sun angle in radians at scene time t.
func (d *DayCycle) AngularPosition(t float64) float64 {
	if !d.Cyclic {
		return d.ManualAngle
	}
	return t * (2 * math.Pi / d.Period)
}

// Light is the per-frame light state. It is derived, never stored across frames.
type Light struct {
	Angle       float64
	SunPosition mgl64.Vec3 // far visual sun
	Position    mgl64.Vec3 // near shadow-casting light
	ViewTarget  mgl64.Vec3
	Color       Color
	FieldOfView float64
}

// sunPivot is the sun orbit frame: centred on the rover, rotating about z so the
// sun climbs over the horizon.
func sunPivot(angle, roverX, roverZ float64) Transform {
	return Translation(roverX, 0, roverZ).Times(Rotation(angle, 0, 0, 1))
}

// ComputeLight derives the light for this frame. The near light stands in
// for the sun in the depth pass since a point light 1000 units away leaves
// no usable depth precision.
func (d *DayCycle) ComputeLight(t float64, rover *Rover) Light {
	angle := d.AngularPosition(t)
	pivot := sunPivot(angle, rover.X, rover.Z)
	return Light{
		Angle:       angle,
		SunPosition: pivot.Times(Translation(SunFarOffset, 0, 0)).Origin(),
		Position:    pivot.Times(Translation(SunNearOffset, 0, 0)).Origin(),
		ViewTarget:  rover.Pose.Point(0, -12.5, -10),
		Color:       Palette.White,
		FieldOfView: LightFieldOfView,
	}
}

// Sinusoidal oscillates between min and max with the given period. With
// startAtMin the value is min at t=0 and climbs through the midpoint at
// period/4; otherwise it starts at max.
func Sinusoidal(t, min, max, period float64, startAtMin bool) float64 {
	freq := 2 * math.Pi / period
	offset := math.Pi / 2
	if startAtMin {
		offset = -offset
	}
	half := 0.5 * (max - min)
	return min + half + half*math.Sin(freq*t+offset)
}

// ColorSinusoidal applies Sinusoidal to every channel.
func ColorSinusoidal(t float64, min, max Color, period float64, startAtMin bool) Color {
	return Color{
		R: Sinusoidal(t, min.R, max.R, period, startAtMin),
		G: Sinusoidal(t, min.G, max.G, period, startAtMin),
		B: Sinusoidal(t, min.B, max.B, period, startAtMin),
		A: Sinusoidal(t, min.A, max.A, period, startAtMin),
	}
}
