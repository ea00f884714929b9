package core

// FrameClock produces millisecond timestamps advancing by a fixed step. It stands
// in for the host's high-resolution frame clock when no real display drives the
// animation.
type FrameClock struct {
	step  float64
	now   float64
	ticks int
}

// NewFrameClock constructs a FrameClock targeting the given frames per second.
func NewFrameClock(fps int) *FrameClock {
	c := &FrameClock{}
	c.SetFPS(fps)
	return c
}

// SetFPS changes the step length.
func (c *FrameClock) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	c.step = 1000 / float64(fps)
}

// Step returns the frame length in milliseconds.
func (c *FrameClock) Step() float64 { return c.step }

// Now returns the current timestamp in milliseconds.
func (c *FrameClock) Now() float64 { return c.now }

// Ticks returns how many times the clock has advanced.
func (c *FrameClock) Ticks() int { return c.ticks }

// Advance moves the clock forward one frame and returns the new timestamp.
func (c *FrameClock) Advance() float64 {
	c.ticks++
	c.now = float64(c.ticks) * c.step
	return c.now
}
