package scene

import "math"

// Rover motion.
const (
	BaseLateralSpeed = 0.15
	BaseSpinSpeed    = 1.0
	TurnStep         = math.Pi / 180 // one degree per frame, not scaled by dt
	SpeedStepFactor  = 1.2
	FastLateralSpeed = 6.19
	FastSpinSpeed    = 2.99
	RoverBodyScale   = 1.5
	WheelScale       = 0.25
	WheelSteerAngle  = math.Pi / 4
)

// Sun.
const (
	DefaultSunPeriod = 5.0
	SunMorningAngle  = 5 * math.Pi / 4
	SunDayAngle      = 3 * math.Pi / 2
	SunNightAngle    = math.Pi / 2
	SunFarOffset     = -1000.0
	SunNearOffset    = -5.0
	SunGizmoScale    = 100.0
	LightFieldOfView = 130 * math.Pi / 180
	LightNear        = 0.5
	LightFar         = 1000.0
)

// Crystals.
const (
	CollisionHitbox     = 2.5
	CollisionMagicScale = 0.5
	CrystalLiveHeight   = 0.5
	CrystalBrokenHeight = 1.75
	CrystalWidth        = 0.5
	CrystalDrop         = -2.25
)

// Camera and projection.
const (
	DefaultCameraSmoothing = 0.3
	CameraFieldOfView      = math.Pi / 4
	CameraNear             = 0.5
	CameraFar              = 2000.0
)

// Shadow map.
const DefaultShadowMapSize = 1024

// PositionLogInterval is how often (scene seconds) the rover position is logged.
const PositionLogInterval = 1.0
