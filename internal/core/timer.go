package core

// Cooldown is a tick-driven timer: Start arms it, every Tick while armed
// advances the counter, and the tick on which the counter exceeds Threshold
// disarms it and resets the counter to zero.
//
// The same primitive backs attack windows, post-attack cooldowns and
// invincibility frames.
type Cooldown struct {
	Threshold int

	active bool
	count  int
}

// NewCooldown creates a disarmed timer with the given threshold.
func NewCooldown(threshold int) Cooldown {
	return Cooldown{Threshold: threshold}
}

// Start arms the timer from zero. Restarting an armed timer rewinds it.
func (c *Cooldown) Start() {
	c.active = true
	c.count = 0
}

// Tick advances an armed timer by one tick and reports whether it expired
// on this tick. Ticking a disarmed timer does nothing.
func (c *Cooldown) Tick() bool {
	if !c.active {
		return false
	}
	c.count++
	if c.count > c.Threshold {
		c.active = false
		c.count = 0
		return true
	}
	return false
}

// Reset disarms the timer without reporting expiry.
func (c *Cooldown) Reset() {
	c.active = false
	c.count = 0
}

// Active reports whether the timer is armed.
func (c Cooldown) Active() bool {
	return c.active
}

// Count returns the ticks elapsed since Start, or zero when disarmed.
func (c Cooldown) Count() int {
	return c.count
}

// DefaultTicksPerFrame is how many simulation ticks each animation frame lasts.
const DefaultTicksPerFrame = 3

// Animator advances a sprite frame index every TicksPerFrame ticks.
type Animator struct {
	TicksPerFrame int

	frame int
	tick  int
}

// NewAnimator creates an animator starting at frame zero.
func NewAnimator(ticksPerFrame int) Animator {
	return Animator{TicksPerFrame: ticksPerFrame}
}

// Advance counts one tick. When a frame boundary is reached the frame index
// moves forward; past the last frame it wraps to zero when loop is true and
// holds on the last frame otherwise.
func (a *Animator) Advance(frameCount int, loop bool) {
	if frameCount < 1 {
		frameCount = 1
	}
	per := a.TicksPerFrame
	if per < 1 {
		per = DefaultTicksPerFrame
	}

	a.tick++
	if a.tick < per {
		return
	}
	a.tick = 0
	a.frame++
	if a.frame >= frameCount {
		if loop {
			a.frame = 0
		} else {
			a.frame = frameCount - 1
		}
	}
}

// Rewind jumps back to frame zero without touching the tick phase.
func (a *Animator) Rewind() {
	a.frame = 0
}

// Reset returns the animator to frame zero at the start of a frame.
func (a *Animator) Reset() {
	a.frame = 0
	a.tick = 0
}

// Frame returns the current frame index.
func (a Animator) Frame() int {
	return a.frame
}

// Tick returns the number of ticks spent on the current frame so far.
func (a Animator) Tick() int {
	return a.tick
}
