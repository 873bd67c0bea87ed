package scene

// Clock caches the externally supplied frame time so every system observes
// the same timestamp during one frame.
type Clock struct {
	now   float64
	delta float64
	frame uint64
}

// Tick records the time for a new frame. now is seconds since scene start.
func (c *Clock) Tick(now, delta float64) {
	c.now = now
	c.delta = delta
	c.frame++
}

func (c *Clock) Now() float64   { return c.now }
func (c *Clock) Delta() float64 { return c.delta }

// Frame counts ticks since the scene started.
func (c *Clock) Frame() uint64 { return c.frame }
