//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"marsrover/internal/scene"
)

var holdBindings = [...]struct {
	key    glfw.Key
	intent scene.Intent
}{
	{glfw.KeyJ, scene.IntentLeft},
	{glfw.KeyL, scene.IntentRight},
	{glfw.KeyI, scene.IntentForward},
	{glfw.KeyK, scene.IntentBackward},
}

// commandBindings fire once per key press. A binding with ctrl set only
// fires while a control key is held, and one without only while none is.
var commandBindings = [...]struct {
	key  glfw.Key
	ctrl bool
	cmd  scene.Command
}{
	{glfw.Key7, false, scene.CmdViewFirstPerson},
	{glfw.Key8, false, scene.CmdViewThirdPerson},
	{glfw.Key9, false, scene.CmdViewSkyThirdPerson},
	{glfw.Key0, false, scene.CmdViewGlobal},

	{glfw.KeyE, false, scene.CmdRandomizeColors},
	{glfw.KeyR, false, scene.CmdResetColors},
	{glfw.KeyU, true, scene.CmdRespawnCrystals},

	{glfw.KeyZ, false, scene.CmdToggleDayCycle},
	{glfw.KeyX, false, scene.CmdSunMorning},
	{glfw.KeyC, false, scene.CmdSunDay},
	{glfw.KeyV, false, scene.CmdSunNight},
	{glfw.KeyZ, true, scene.CmdPeriodDown},
	{glfw.KeyX, true, scene.CmdPeriodUp},

	{glfw.KeyV, true, scene.CmdSlowerLateral},
	{glfw.KeyB, true, scene.CmdFasterLateral},
	{glfw.KeyN, true, scene.CmdSlowerSpin},
	{glfw.KeyM, true, scene.CmdFasterSpin},
	{glfw.KeyC, true, scene.CmdFastMovement},
	{glfw.KeyD, true, scene.CmdDefaultMovement},

	{glfw.KeyF1, false, scene.CmdToggleDebug},
}

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool

	// edges caches this frame's JustPressed result for keys with more
	// than one binding.
	edges map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
		edges:     make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func ctrlHeld(window *glfw.Window) bool {
	return window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		window.GetKey(glfw.KeyRightControl) == glfw.Press
}

// Poll reads the keyboard and mouse and forwards them to the scene.
func (in *Input) Poll(window *glfw.Window, s *scene.State) {
	for _, b := range holdBindings {
		s.SetIntent(b.intent, window.GetKey(b.key) == glfw.Press)
	}

	ctrl := ctrlHeld(window)
	clear(in.edges)
	for _, b := range commandBindings {
		jp, seen := in.edges[b.key]
		if !seen {
			jp = in.JustPressed(window, b.key)
			in.edges[b.key] = jp
		}
		if jp && b.ctrl == ctrl {
			s.Apply(b.cmd)
		}
	}

	if in.JustClicked(window, glfw.MouseButtonLeft) {
		x, y := CursorNDC(window)
		s.Click(x, y)
	}
}

// CursorNDC converts the cursor position to normalized device coordinates,
// x right and y up in [-1, 1].
func CursorNDC(window *glfw.Window) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	fbW, fbH := window.GetFramebufferSize()
	if winW <= 0 || winH <= 0 || fbW <= 0 || fbH <= 0 {
		return 0, 0
	}
	fx := cx * float64(fbW) / float64(winW)
	fy := cy * float64(fbH) / float64(winH)
	return 2*fx/float64(fbW) - 1, 1 - 2*fy/float64(fbH)
}
