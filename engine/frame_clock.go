package engine

import "time"

// FrameClock invokes its callback once per loop frame while running
// Each animation owns its clock; a stopped clock does no further work and may be discarded
type FrameClock struct {
	loop       *FrameLoop
	fn         FrameFunc
	running    bool
	registered bool
	ticks      uint64
	elapsed    time.Duration
}

// Start begins invocations from the next frame
// Panics when no callback is registered: that is a wiring bug, not a runtime condition
func (c *FrameClock) Start() {
	if c.fn == nil {
		panic("engine: FrameClock started without callback")
	}
	if c.running {
		return
	}
	c.running = true

	if c.registered {
		return
	}
	c.registered = true

	if c.loop.inAdvance {
		c.loop.pending = append(c.loop.pending, c)
	} else {
		c.loop.clocks = append(c.loop.clocks, c)
	}
}

// Stop halts further invocations, safe to call repeatedly or on a nil clock
func (c *FrameClock) Stop() {
	if c == nil {
		return
	}
	c.running = false
}

// Running reports whether the clock is started
func (c *FrameClock) Running() bool {
	return c != nil && c.running
}

// Ticks returns how many frames the clock has run
func (c *FrameClock) Ticks() uint64 {
	return c.ticks
}

// Elapsed returns the summed frame deltas the clock has seen
func (c *FrameClock) Elapsed() time.Duration {
	return c.elapsed
}

func (c *FrameClock) tick(dt time.Duration) {
	c.ticks++
	c.elapsed += dt
	c.fn(dt)
}
