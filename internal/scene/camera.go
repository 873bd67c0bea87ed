package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraView selects one of the fixed viewpoints.
type CameraView int

const (
	ViewFirstPerson CameraView = iota
	ViewThirdPerson
	ViewSkyThirdPerson
	ViewGlobal

	cameraViewCount
)

func (v CameraView) String() string {
	switch v {
	case ViewFirstPerson:
		return "first-person"
	case ViewThirdPerson:
		return "third-person"
	case ViewSkyThirdPerson:
		return "sky-third-person"
	case ViewGlobal:
		return "global"
	}
	return "unknown"
}

// CameraRig holds the view matrices derived from the rover and the smoothed
// matrix actually used for rendering.
type CameraRig struct {
	Active    CameraView
	Views     [cameraViewCount]Transform
	Current   Transform
	Smoothing float64
}

func NewCameraRig(smoothing float64) *CameraRig {
	c := &CameraRig{
		Active:    ViewThirdPerson,
		Current:   LookAt(mgl64.Vec3{0, 12, 12}, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 1, 0}),
		Smoothing: clampF(smoothing, 0, 1),
	}
	c.Views[ViewGlobal] = globalView()
	return c
}

func globalView() Transform {
	return Rotation(math.Pi/4, 1, 0, 0).Times(Translation(25, -500, -600))
}

// UpdateViews rebuilds the rover-relative viewpoints.
func (c *CameraRig) UpdateViews(r *Rover) {
	mt := r.Placement()
	c.Views[ViewFirstPerson] = mt.Times(Translation(0, 2, -1.5)).Inverse()
	c.Views[ViewThirdPerson] = mt.Times(Translation(0, 5, 16.5)).
		Times(Rotation(-math.Pi/32, 1, 0, 0)).Inverse()
	c.Views[ViewSkyThirdPerson] = mt.Times(Translation(-3, 0, 12)).
		Times(Rotation(1.5*math.Pi/32, 1, 0, 0)).Inverse()
	c.Views[ViewGlobal] = globalView()
}

func (c *CameraRig) Select(v CameraView) {
	if v >= 0 && v < cameraViewCount {
		c.Active = v
	}
}

// Target is the unsmoothed matrix of the active view.
func (c *CameraRig) Target() Transform { return c.Views[c.Active] }

// Smooth moves Current a fixed fraction toward the active view.
func (c *CameraRig) Smooth() {
	c.Current = c.Current.Lerp(c.Target(), c.Smoothing)
}

// ClickRegion is a rectangle in normalized device coordinates.
type ClickRegion struct {
	Left, Right, Bottom, Top float64
}

func (r ClickRegion) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// RadioRegion is where the rover radio sits on screen for the active view;
// ok is false when the active view has no clickable region.
func (c *CameraRig) RadioRegion() (ClickRegion, bool) {
	switch c.Active {
	case ViewThirdPerson:
		return ClickRegion{Left: 0, Right: 0.15, Bottom: -0.65, Top: -0.35}, true
	case ViewSkyThirdPerson:
		return ClickRegion{Left: 0.375, Right: 0.53, Bottom: -0.475, Top: -0.225}, true
	}
	return ClickRegion{}, false
}
