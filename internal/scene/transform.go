package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a 4x4 homogeneous matrix stored column-major.
// A.Times(B) applies B first, then A.
type Transform mgl64.Mat4

func Identity() Transform { return Transform(mgl64.Ident4()) }

func Translation(x, y, z float64) Transform {
	return Transform(mgl64.Translate3D(x, y, z))
}

// Rotation builds a right-handed rotation of angle radians about (ax, ay, az).
// The axis does not need to be normalized; a zero axis is undefined.
func Rotation(angle, ax, ay, az float64) Transform {
	axis := mgl64.Vec3{ax, ay, az}.Normalize()
	return Transform(mgl64.HomogRotate3D(angle, axis))
}

func Scale(sx, sy, sz float64) Transform {
	return Transform(mgl64.Scale3D(sx, sy, sz))
}

// UniformScale is Scale(s, s, s).
func UniformScale(s float64) Transform { return Scale(s, s, s) }

// LookAt returns the view matrix of an eye at eye looking toward target.
func LookAt(eye, target, up mgl64.Vec3) Transform {
	return Transform(mgl64.LookAtV(eye, target, up))
}

// Perspective returns an OpenGL-style clip-space projection.
func Perspective(fovY, aspect, near, far float64) Transform {
	return Transform(mgl64.Perspective(fovY, aspect, near, far))
}

func (t Transform) Times(o Transform) Transform {
	return Transform(mgl64.Mat4(t).Mul4(mgl64.Mat4(o)))
}

// Inverse is only meaningful for the rigid and scaled transforms the scene builds.
func (t Transform) Inverse() Transform {
	return Transform(mgl64.Mat4(t).Inv())
}

// Apply multiplies a homogeneous column vector.
func (t Transform) Apply(v mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Mat4(t).Mul4x1(v)
}

// Point transforms the point (x, y, z, 1) and drops w.
func (t Transform) Point(x, y, z float64) mgl64.Vec3 {
	return t.Apply(mgl64.Vec4{x, y, z, 1}).Vec3()
}

// Origin is where the transform places the local origin.
func (t Transform) Origin() mgl64.Vec3 {
	return mgl64.Vec3{t[12], t[13], t[14]}
}

// Lerp blends every component toward o independently. No rotation-aware
// interpolation happens here, so fast blends between orientations skew.
func (t Transform) Lerp(o Transform, f float64) Transform {
	var out Transform
	for i := range t {
		out[i] = t[i] + (o[i]-t[i])*f
	}
	return out
}

// ApproxEqual compares component-wise with an absolute tolerance eps.
func (t Transform) ApproxEqual(o Transform, eps float64) bool {
	return mgl64.Mat4(t).ApproxFuncEqual(mgl64.Mat4(o), func(a, b float64) bool {
		return math.Abs(a-b) <= eps
	})
}

// Float32 converts for GPU uniform upload.
func (t Transform) Float32() mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range t {
		out[i] = float32(v)
	}
	return out
}
