package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRover() *Rover {
	return NewRover(BaseLateralSpeed, BaseSpinSpeed)
}

func TestTurnLeftThenRightRestoresPose(t *testing.T) {
	r := newTestRover()
	r.TurnLeft()
	assert.InDelta(t, TurnStep, r.LookAngle, eps)
	r.TurnRight()

	assert.InDelta(t, 0, r.LookAngle, eps)
	assert.True(t, r.Pose.ApproxEqual(Identity(), 1e-9))
}

func TestForwardFromOrigin(t *testing.T) {
	r := newTestRover()
	require.True(t, r.Forward(nil))

	assert.InDelta(t, 0, r.X, eps)
	assert.InDelta(t, -0.15, r.Z, eps)
	assertVec3(t, r.Placement().Origin(), r.Pose.Origin())
}

func TestPoseTracksPlacement(t *testing.T) {
	r := newTestRover()
	for i := 0; i < 40; i++ {
		r.TurnLeft()
		r.Forward(nil)
	}
	for i := 0; i < 15; i++ {
		r.TurnRight()
		r.Backward(nil)
	}
	assert.True(t, r.Pose.ApproxEqual(r.Placement(), 1e-9))
}

func TestForwardBlockedByWall(t *testing.T) {
	walls := Walls{NewWallBox(-4.7, -27.6, 55, -85)}
	r := newTestRover()
	r.X, r.Z = 10, -27.5
	r.Pose = r.Placement()
	before := r.Pose

	assert.False(t, r.Forward(walls))
	assert.Equal(t, 10.0, r.X)
	assert.Equal(t, -27.5, r.Z)
	assert.Equal(t, before, r.Pose)

	// Backing away is still allowed.
	assert.True(t, r.Backward(walls))
	assert.InDelta(t, -27.35, r.Z, eps)
}

func TestIntegrateInvertsSteeringWhileReversing(t *testing.T) {
	tests := []struct {
		name     string
		left     bool
		right    bool
		backward bool
		wantLook float64
	}{
		{name: "left", left: true, wantLook: TurnStep},
		{name: "right", right: true, wantLook: -TurnStep},
		{name: "left reversing", left: true, backward: true, wantLook: -TurnStep},
		{name: "right reversing", right: true, backward: true, wantLook: TurnStep},
		{name: "both cancel", left: true, right: true, wantLook: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRover()
			r.SetIntent(IntentLeft, tt.left)
			r.SetIntent(IntentRight, tt.right)
			r.SetIntent(IntentBackward, tt.backward)
			r.Integrate(nil)
			assert.InDelta(t, tt.wantLook, r.LookAngle, eps)
		})
	}
}

func TestSpeedCommands(t *testing.T) {
	r := newTestRover()
	r.FasterLateral()
	r.FasterLateral()
	assert.InDelta(t, 1.44, r.UserLateralSpeed, eps)
	r.SlowerLateral()
	assert.InDelta(t, 1.2, r.UserLateralSpeed, eps)

	r.SlowerSpin()
	assert.InDelta(t, 1/1.2, r.UserSpinSpeed, eps)

	r.SetFastMovement()
	assert.Equal(t, FastLateralSpeed, r.UserLateralSpeed)
	assert.Equal(t, FastSpinSpeed, r.UserSpinSpeed)

	r.SetDefaultMovement()
	assert.Equal(t, 1.0, r.UserLateralSpeed)
	assert.Equal(t, 1.0, r.UserSpinSpeed)
}

func TestSpinSpeedScalesTurn(t *testing.T) {
	r := newTestRover()
	r.SetFastMovement()
	r.TurnLeft()
	assert.InDelta(t, FastSpinSpeed*math.Pi/180, r.LookAngle, eps)
}

func TestWheelAnimation(t *testing.T) {
	r := newTestRover()
	assert.Equal(t, 0.0, r.SteerDirection())
	assert.Equal(t, 0.0, r.WheelSpin(3))

	r.SetIntent(IntentLeft, true)
	r.SetIntent(IntentForward, true)
	assert.Equal(t, 1.0, r.SteerDirection())
	assert.Equal(t, -3.0, r.WheelSpin(3))

	r.SetIntent(IntentLeft, false)
	r.SetIntent(IntentForward, false)
	r.SetIntent(IntentRight, true)
	r.SetIntent(IntentBackward, true)
	assert.Equal(t, -1.0, r.SteerDirection())
	assert.Equal(t, 3.0, r.WheelSpin(3))
}

func TestFractionalTurnKeepsPoseInSync(t *testing.T) {
	r := newTestRover()
	r.Turn(0.5)
	assert.InDelta(t, TurnStep/2, r.LookAngle, eps)
	assert.True(t, r.Pose.ApproxEqual(r.Placement(), 1e-9))

	before := r.Pose
	r.Turn(0)
	assert.Equal(t, before, r.Pose)
	for _, v := range r.Pose {
		assert.False(t, math.IsNaN(v))
	}
}
