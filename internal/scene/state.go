package scene

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Command is a discrete user trigger.
type Command int

const (
	CmdViewFirstPerson Command = iota
	CmdViewThirdPerson
	CmdViewSkyThirdPerson
	CmdViewGlobal
	CmdRandomizeColors
	CmdResetColors
	CmdRespawnCrystals
	CmdToggleDayCycle
	CmdSunMorning
	CmdSunDay
	CmdSunNight
	CmdPeriodDown
	CmdPeriodUp
	CmdSlowerLateral
	CmdFasterLateral
	CmdSlowerSpin
	CmdFasterSpin
	CmdFastMovement
	CmdDefaultMovement
	CmdToggleDebug
	CmdToggleMusic
)

var commandNames = [...]string{
	CmdViewFirstPerson:    "view-first-person",
	CmdViewThirdPerson:    "view-third-person",
	CmdViewSkyThirdPerson: "view-sky-third-person",
	CmdViewGlobal:         "view-global",
	CmdRandomizeColors:    "randomize-colors",
	CmdResetColors:        "reset-colors",
	CmdRespawnCrystals:    "respawn-crystals",
	CmdToggleDayCycle:     "toggle-day-cycle",
	CmdSunMorning:         "sun-morning",
	CmdSunDay:             "sun-day",
	CmdSunNight:           "sun-night",
	CmdPeriodDown:         "period-down",
	CmdPeriodUp:           "period-up",
	CmdSlowerLateral:      "slower-lateral",
	CmdFasterLateral:      "faster-lateral",
	CmdSlowerSpin:         "slower-spin",
	CmdFasterSpin:         "faster-spin",
	CmdFastMovement:       "fast-movement",
	CmdDefaultMovement:    "default-movement",
	CmdToggleDebug:        "toggle-debug",
	CmdToggleMusic:        "toggle-music",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Options configures a new scene.
type Options struct {
	Layout          Layout
	SunPeriod       float64
	LateralSpeed    float64
	SpinSpeed       float64
	CameraSmoothing float64
	Debug           bool
	Seed            uint64
}

// DefaultOptions returns the stock scene settings over the given layout.
func DefaultOptions(l Layout) Options {
	return Options{
		Layout:          l,
		SunPeriod:       DefaultSunPeriod,
		LateralSpeed:    BaseLateralSpeed,
		SpinSpeed:       BaseSpinSpeed,
		CameraSmoothing: DefaultCameraSmoothing,
		Seed:            1,
	}
}

// State is the whole mutable scene. Everything runs on the frame thread.
type State struct {
	Log zerolog.Logger

	Clock    Clock
	Layout   Layout
	Rover    *Rover
	Day      *DayCycle
	Crystals *CrystalSystem
	Camera   *CameraRig
	Light    Light
	Events   *EventBus
	Rand     *Rand

	Debug        bool
	MusicPlaying bool

	nextPositionLog float64
}

func NewState(opts Options, log zerolog.Logger) *State {
	s := &State{
		Log:      log,
		Layout:   opts.Layout,
		Rover:    NewRover(opts.LateralSpeed, opts.SpinSpeed),
		Day:      NewDayCycle(opts.SunPeriod),
		Crystals: NewCrystalSystem(opts.Layout.Crystals, opts.Layout.CrystalColors),
		Camera:   NewCameraRig(opts.CameraSmoothing),
		Events:   NewEventBus(),
		Rand:     NewRand(opts.Seed),
		Debug:    opts.Debug,
	}
	s.Light = s.Day.ComputeLight(0, s.Rover)
	s.Camera.UpdateViews(s.Rover)
	return s
}

// SetIntent forwards a held movement input to the rover.
func (s *State) SetIntent(in Intent, held bool) {
	s.Rover.SetIntent(in, held)
}

// Apply runs one discrete command.
func (s *State) Apply(c Command) {
	switch c {
	case CmdViewFirstPerson:
		s.Camera.Select(ViewFirstPerson)
	case CmdViewThirdPerson:
		s.Camera.Select(ViewThirdPerson)
	case CmdViewSkyThirdPerson:
		s.Camera.Select(ViewSkyThirdPerson)
	case CmdViewGlobal:
		s.Camera.Select(ViewGlobal)
	case CmdRandomizeColors:
		s.Rover.Colors = RandomRoverColors(s.Rand)
	case CmdResetColors:
		s.Rover.Colors = DefaultRoverColors()
	case CmdRespawnCrystals:
		s.Crystals.Respawn()
	case CmdToggleDayCycle:
		s.Day.Toggle()
	case CmdSunMorning:
		s.Day.SetPreset(SunMorning)
	case CmdSunDay:
		s.Day.SetPreset(SunDay)
	case CmdSunNight:
		s.Day.SetPreset(SunNight)
	case CmdPeriodDown:
		s.Day.AdjustPeriod(-1)
	case CmdPeriodUp:
		s.Day.AdjustPeriod(1)
	case CmdSlowerLateral:
		s.Rover.SlowerLateral()
	case CmdFasterLateral:
		s.Rover.FasterLateral()
	case CmdSlowerSpin:
		s.Rover.SlowerSpin()
	case CmdFasterSpin:
		s.Rover.FasterSpin()
	case CmdFastMovement:
		s.Rover.SetFastMovement()
	case CmdDefaultMovement:
		s.Rover.SetDefaultMovement()
	case CmdToggleDebug:
		s.Debug = !s.Debug
	case CmdToggleMusic:
		s.ToggleMusic()
	default:
		return
	}
	s.Log.Debug().Stringer("cmd", c).Msg("command")
}

func (s *State) ToggleMusic() {
	s.MusicPlaying = !s.MusicPlaying
	e := Event{Type: EventMusicStopped, X: s.Rover.X, Z: s.Rover.Z}
	if s.MusicPlaying {
		e.Type = EventMusicStarted
	}
	s.Events.Emit(e)
}

// Readout summarizes the values the speed and period controls change, plus
// how many crystals are still standing.
func (s *State) Readout() string {
	return fmt.Sprintf("Day/Night Period: %.2f | Lateral Speed: %.2f | Spin Speed: %.2f | Crystals: %d/%d",
		s.Day.Period, s.Rover.UserLateralSpeed, s.Rover.UserSpinSpeed,
		s.Crystals.LiveCount(), len(s.Crystals.Crystals))
}

// Click hit-tests a pointer press in normalized device coordinates against
// the rover radio. It reports whether the radio was hit.
func (s *State) Click(x, y float64) bool {
	region, ok := s.Camera.RadioRegion()
	if !ok || !region.Contains(x, y) {
		return false
	}
	s.ToggleMusic()
	return true
}

// Advance steps the scene to time now (seconds since start).
func (s *State) Advance(now, delta float64) {
	s.Clock.Tick(now, delta)

	if !s.Rover.Integrate(s.Layout.Walls) {
		s.Log.Debug().Float64("x", s.Rover.X).Float64("z", s.Rover.Z).Msg("wall collision")
		s.Events.Emit(Event{Type: EventWallHit, X: s.Rover.X, Z: s.Rover.Z})
	}

	s.Crystals.Check(s.Rover.X, s.Rover.Z, func(i int) {
		loc := s.Crystals.Crystals[i].Location
		s.Log.Info().
			Int("crystal", i).
			Floats64("location", loc[:]).
			Int("remaining", s.Crystals.LiveCount()).
			Msg("crystal collected")
		s.Events.Emit(Event{Type: EventCrystalCollected, X: s.Rover.X, Z: s.Rover.Z, Index: i})
	})

	s.Light = s.Day.ComputeLight(now, s.Rover)

	s.Camera.UpdateViews(s.Rover)
	s.Camera.Smooth()

	if now >= s.nextPositionLog {
		s.Log.Debug().
			Float64("x", s.Rover.X).
			Float64("z", s.Rover.Z).
			Float64("look", s.Rover.LookAngle).
			Msg("rover position")
		s.nextPositionLog = now + PositionLogInterval
	}
}
