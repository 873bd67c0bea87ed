package scene

import "math"

// Intent is a held movement input.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentForward
	IntentBackward
)

// Rover is the player vehicle. Pose and (X, Z, LookAngle) describe the same
// placement; X and Z exist for collision math.
type Rover struct {
	Pose      Transform
	X, Z      float64
	LookAngle float64

	MoveLeft     bool
	MoveRight    bool
	MoveForward  bool
	MoveBackward bool

	UserLateralSpeed float64
	UserSpinSpeed    float64
	BaseLateralSpeed float64
	BaseSpinSpeed    float64

	Colors RoverColors
}

func NewRover(baseLateral, baseSpin float64) *Rover {
	return &Rover{
		Pose:             Identity(),
		UserLateralSpeed: 1,
		UserSpinSpeed:    1,
		BaseLateralSpeed: baseLateral,
		BaseSpinSpeed:    baseSpin,
		Colors:           DefaultRoverColors(),
	}
}

// SetIntent records a press (true) or release (false).
func (r *Rover) SetIntent(in Intent, held bool) {
	switch in {
	case IntentLeft:
		r.MoveLeft = held
	case IntentRight:
		r.MoveRight = held
	case IntentForward:
		r.MoveForward = held
	case IntentBackward:
		r.MoveBackward = held
	}
}

func (r *Rover) spinSpeed() float64    { return r.UserSpinSpeed * r.BaseSpinSpeed }
func (r *Rover) lateralSpeed() float64 { return r.UserLateralSpeed * r.BaseLateralSpeed }

// Turn rotates the rover by one turn step; direction +1 turns left, -1 right.
// The step is per call, so the turn rate follows the frame rate.
func (r *Rover) Turn(direction float64) {
	step := r.spinSpeed() * TurnStep
	r.LookAngle += direction * step
	r.Pose = r.Pose.Times(Rotation(direction*step, 0, 1, 0))
}

func (r *Rover) TurnLeft()  { r.Turn(1) }
func (r *Rover) TurnRight() { r.Turn(-1) }

// Translate moves along the heading; direction -1 is forward, +1 backward.
// A move that would land inside a wall is dropped entirely.
func (r *Rover) Translate(direction float64, walls Walls) bool {
	s := r.lateralSpeed()
	dx := direction * s * math.Sin(r.LookAngle)
	dz := direction * s * math.Cos(r.LookAngle)
	if r.CheckWallCollision(dx, dz, walls) {
		return false
	}
	r.X += dx
	r.Z += dz
	r.Pose = r.Pose.Times(Translation(0, 0, direction*s))
	return true
}

func (r *Rover) Forward(walls Walls) bool  { return r.Translate(-1, walls) }
func (r *Rover) Backward(walls Walls) bool { return r.Translate(1, walls) }

// CheckWallCollision tests the candidate position (X+dx, Z+dz).
func (r *Rover) CheckWallCollision(dx, dz float64, walls Walls) bool {
	return walls.Collides(r.X+dx, r.Z+dz)
}

// Integrate applies the held intents for one frame. Steering flips while
// reversing so left still swings the nose left from the driver's view.
// It returns false when a translation was blocked by a wall.
func (r *Rover) Integrate(walls Walls) bool {
	if r.MoveLeft {
		if r.MoveBackward {
			r.TurnRight()
		} else {
			r.TurnLeft()
		}
	}
	if r.MoveRight {
		if r.MoveBackward {
			r.TurnLeft()
		} else {
			r.TurnRight()
		}
	}
	moved := true
	if r.MoveForward {
		moved = r.Forward(walls) && moved
	}
	if r.MoveBackward {
		moved = r.Backward(walls) && moved
	}
	return moved
}

// Placement is the rover transform rebuilt from X, Z and LookAngle.
func (r *Rover) Placement() Transform {
	return Translation(r.X, 0, r.Z).Times(Rotation(r.LookAngle, 0, 1, 0))
}

func (r *Rover) SlowerLateral() { r.UserLateralSpeed /= SpeedStepFactor }
func (r *Rover) FasterLateral() { r.UserLateralSpeed *= SpeedStepFactor }
func (r *Rover) SlowerSpin()    { r.UserSpinSpeed /= SpeedStepFactor }
func (r *Rover) FasterSpin()    { r.UserSpinSpeed *= SpeedStepFactor }

func (r *Rover) SetFastMovement() {
	r.UserLateralSpeed = FastLateralSpeed
	r.UserSpinSpeed = FastSpinSpeed
}

func (r *Rover) SetDefaultMovement() {
	r.UserLateralSpeed = 1
	r.UserSpinSpeed = 1
}

// SteerDirection is +1 while turning left, -1 while turning right, else 0.
func (r *Rover) SteerDirection() float64 {
	switch {
	case r.MoveLeft:
		return 1
	case r.MoveRight:
		return -1
	}
	return 0
}

// WheelSpin is the wheel roll angle about x at scene time t.
func (r *Rover) WheelSpin(t float64) float64 {
	switch {
	case r.MoveForward:
		return -t
	case r.MoveBackward:
		return t
	}
	return 0
}
