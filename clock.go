package tornado

// DefaultTickDelta is the fixed simulation step, one 60 Hz frame.
const DefaultTickDelta = 1.0 / 60.0

// SceneClock advances global simulation time by a fixed delta per tick.
type SceneClock struct {
	delta float64
	time  float64
	ticks uint64
}

// NewSceneClock returns a clock stepping by delta seconds. A non-positive
// delta selects DefaultTickDelta.
func NewSceneClock(delta float64) *SceneClock {
	if delta <= 0 {
		delta = DefaultTickDelta
	}
	return &SceneClock{delta: delta}
}

// Advance moves time forward one tick and returns the new time.
func (c *SceneClock) Advance() float64 {
	c.ticks++
	c.time = float64(c.ticks) * c.delta
	return c.time
}

// Time returns the elapsed simulation time in seconds.
func (c *SceneClock) Time() float64 { return c.time }

// Ticks returns the number of ticks advanced so far.
func (c *SceneClock) Ticks() uint64 { return c.ticks }

// Delta returns the fixed per-tick step.
func (c *SceneClock) Delta() float64 { return c.delta }
