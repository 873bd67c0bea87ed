package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshID names a drawable mesh owned by the backend.
type MeshID int

const (
	MeshSphere MeshID = iota
	MeshSkySphere
	MeshCube
	MeshSquare2D
	MeshTerrain
	MeshCrystal
	MeshCrystalBroken
	MeshBase
	MeshBaseMiddle
	MeshRoverBody
	MeshRoverSolarPanels
	MeshRoverWheelLeft
	MeshRoverWheelRight
	MeshRoverRadio

	MeshCount
)

// Pass identifies which half of the two-pass frame is drawing.
type Pass int

const (
	PassDepth Pass = iota
	PassColor
)

// DrawCall is one mesh instance.
type DrawCall struct {
	Mesh      MeshID
	Model     Transform
	Material  Material
	DepthOnly bool
}

var (
	leftWheelOffsets  = [3]mgl64.Vec3{{-5, -7.6, 7.3}, {-4, -7.6, 1.8}, {-4, -7.6, -5.1}}
	rightWheelOffsets = [3]mgl64.Vec3{{6.9, -7.6, 7.3}, {5.9, -7.6, 1.8}, {5.9, -7.6, -5.1}}
)

// sceneDrawer threads the depth-only flag through every call so both passes
// walk exactly the same objects with exactly the same transforms.
type sceneDrawer struct {
	s         *State
	depthOnly bool
	emit      func(DrawCall)
}

func (d *sceneDrawer) draw(mesh MeshID, model Transform, full Material) {
	mat := full
	if d.depthOnly {
		mat = Materials.Pure
	}
	d.emit(DrawCall{Mesh: mesh, Model: model, Material: mat, DepthOnly: d.depthOnly})
}

// DrawScene emits the scene for one pass. The light gizmo only appears in
// the colour pass; everything else is shared.
func DrawScene(s *State, pass Pass, emit func(DrawCall)) {
	d := &sceneDrawer{s: s, depthOnly: pass == PassDepth, emit: emit}

	if pass == PassColor {
		lightMat := Materials.LightSource.WithColor(s.Light.Color)
		sun := s.Light.SunPosition
		d.draw(MeshSphere, Translation(sun.X(), sun.Y(), sun.Z()).Times(UniformScale(SunGizmoScale)), lightMat)
		if s.Debug {
			p := s.Light.Position
			d.draw(MeshSphere, Translation(p.X(), p.Y(), p.Z()).Times(UniformScale(0.5)), lightMat)
		}
	}

	d.drawRover()
	d.draw(MeshTerrain, Translation(0, 18, 0).Times(UniformScale(300)), Materials.Mars.WithColor(Palette.Mars))
	d.drawCrystals()
	d.draw(MeshSkySphere, UniformScale(1000), Materials.Sky)
	d.drawBase()
}

func (d *sceneDrawer) drawRover() {
	r := d.s.Rover
	colors := r.Colors
	mt := r.Placement()

	d.draw(MeshRoverBody, mt.Times(UniformScale(RoverBodyScale)),
		Materials.Rover.WithColor(colors[PartBody]))
	d.draw(MeshRoverSolarPanels, mt.Times(Translation(0.3, -0.4, 1.1)).Times(UniformScale(1.5)),
		Materials.Rover.WithColor(colors[PartSolarPanels]))

	wheels := mt.Times(UniformScale(WheelScale))
	wheelMat := Materials.Rover.WithColor(colors[PartWheel])
	steer := r.SteerDirection() * WheelSteerAngle
	spin := r.WheelSpin(d.s.Clock.Now())
	for side, offsets := range [2][3]mgl64.Vec3{leftWheelOffsets, rightWheelOffsets} {
		mesh := MeshRoverWheelLeft
		if side == 1 {
			mesh = MeshRoverWheelRight
		}
		for i, off := range offsets {
			m := wheels.Times(Translation(off.X(), off.Y(), off.Z()))
			if i == len(offsets)-1 {
				m = m.Times(Rotation(steer, 0, 1, 0))
			}
			if spin != 0 {
				m = m.Times(Rotation(spin, 1, 0, 0))
			}
			d.draw(mesh, m, wheelMat)
		}
	}

	radioMat := Materials.Rover.WithColor(colors[PartRadio])
	d.draw(MeshRoverRadio, mt.Times(Translation(0.95, 0.3, 0.8)).
		Times(Rotation(9*math.Pi/12, 0, 1, 0)).Times(UniformScale(0.5)), radioMat)
	d.draw(MeshCube, mt.Times(Translation(0.77, -0.1, 0.702)).
		Times(Rotation(9*math.Pi/12, 0, 1, 0)).Times(Scale(0.535, 0.5, 0.125)), radioMat)
}

func (d *sceneDrawer) drawCrystals() {
	base := Translation(0, CrystalDrop, 0)
	for _, c := range d.s.Crystals.Crystals {
		height, mesh := CrystalLiveHeight, MeshCrystal
		if !c.Live {
			height, mesh = CrystalBrokenHeight, MeshCrystalBroken
		}
		m := base.Times(Scale(CrystalWidth, height, CrystalWidth)).
			Times(Translation(c.Location.X(), c.Location.Y(), c.Location.Z()))
		d.draw(mesh, m, Materials.Crystal.WithColor(c.Color))
	}
}

func (d *sceneDrawer) drawBase() {
	b := d.s.Layout.Base
	mt := Translation(b.X(), b.Y(), b.Z())
	d.draw(MeshBase, mt.Times(Translation(0, -5, 0)).Times(UniformScale(20)), Materials.Floor)
	d.draw(MeshBaseMiddle, mt.Times(Translation(0, -1.85, 0)).Times(UniformScale(13.5)),
		Materials.Floor.WithColor(Palette.BaseMiddle))
}

// DepthOverlay places the shadow-map preview in the upper left of the screen.
// The overlay shader ignores view and projection, so Model is in clip space.
func DepthOverlay(aspect float64) DrawCall {
	return DrawCall{
		Mesh:     MeshSquare2D,
		Model:    Translation(-0.99, 0.08, 0).Times(Scale(0.5, 0.5*aspect, 1)),
		Material: Materials.DepthOverlay,
	}
}
