package dsp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader eases a volume toward a target over time. Call Update once per frame.
type Fader struct {
	volume float64
	target float64
	tween  *gween.Tween
}

func (f *Fader) Volume() float64 { return f.volume }
func (f *Fader) Target() float64 { return f.target }
func (f *Fader) Active() bool    { return f.tween != nil }

// Start begins a fade from the current volume. A non-positive duration jumps
// straight to the target.
func (f *Fader) Start(target, seconds float64) {
	f.target = target
	if seconds <= 0 {
		f.volume = target
		f.tween = nil
		return
	}
	f.tween = gween.New(float32(f.volume), float32(target), float32(seconds), ease.InOutQuad)
}

// Update advances the fade by dt seconds and reports whether it finished
// during this call.
func (f *Fader) Update(dt float64) bool {
	if f.tween == nil {
		return false
	}
	v, done := f.tween.Update(float32(dt))
	f.volume = float64(v)
	if done {
		f.volume = f.target
		f.tween = nil
	}
	return done
}
