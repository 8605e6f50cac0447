package engine

import (
	"time"
)

// FrameFunc receives the time elapsed since the previous frame
type FrameFunc func(dt time.Duration)

// FrameLoop hosts frame clocks and delayed tasks
// Not safe for concurrent use: one goroutine owns the loop and everything it drives
type FrameLoop struct {
	clocks  []*FrameClock
	pending []*FrameClock // started during Advance, joined next frame
	tasks   []*DelayedTask

	now        time.Duration // loop time, sum of all deltas
	frame      uint64
	inAdvance  bool
	nextTaskID uint64
}

// NewFrameLoop creates an empty loop at time zero
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// NewClock creates a stopped clock bound to this loop
func (l *FrameLoop) NewClock(fn FrameFunc) *FrameClock {
	return &FrameClock{loop: l, fn: fn}
}

// After schedules fn once loop time has advanced by d
// Tasks fire on the loop goroutine after the frame's clocks ran
func (l *FrameLoop) After(d time.Duration, fn func()) *DelayedTask {
	l.nextTaskID++
	task := &DelayedTask{
		id:  l.nextTaskID,
		due: l.now + d,
		fn:  fn,
	}
	l.tasks = append(l.tasks, task)
	return task
}

// Advance runs one frame: every running clock once in start order, then due tasks
func (l *FrameLoop) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	l.frame++
	l.now += dt

	l.inAdvance = true
	for _, c := range l.clocks {
		// Clocks stopped earlier in this frame are skipped
		if c.running {
			c.tick(dt)
		}
	}
	l.inAdvance = false

	l.compact()
	l.fireTasks()
}

// fireTasks runs due tasks in scheduling order; tasks scheduled by tasks wait for a later frame
func (l *FrameLoop) fireTasks() {
	if len(l.tasks) == 0 {
		return
	}

	due := l.tasks[:0:0]
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		switch {
		case t.cancelled:
		case t.due <= l.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	// Zero the tail so dropped tasks can be collected
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = nil
	}
	l.tasks = kept

	for _, t := range due {
		if !t.cancelled {
			t.fired = true
			t.fn()
		}
	}
}

// compact drops stopped clocks and admits clocks started mid-frame
func (l *FrameLoop) compact() {
	live := l.clocks[:0]
	for _, c := range l.clocks {
		if c.running {
			live = append(live, c)
		} else {
			c.registered = false
		}
	}
	for i := len(live); i < len(l.clocks); i++ {
		l.clocks[i] = nil
	}
	l.clocks = live

	for i, c := range l.pending {
		if c.running {
			l.clocks = append(l.clocks, c)
		} else {
			c.registered = false
		}
		l.pending[i] = nil
	}
	l.pending = l.pending[:0]
}

// Now returns accumulated loop time
func (l *FrameLoop) Now() time.Duration {
	return l.now
}

// Frame returns the number of frames advanced
func (l *FrameLoop) Frame() uint64 {
	return l.frame
}

// ActiveClocks returns the number of running clocks
func (l *FrameLoop) ActiveClocks() int {
	n := 0
	for _, c := range l.clocks {
		if c.running {
			n++
		}
	}
	for _, c := range l.pending {
		if c.running {
			n++
		}
	}
	return n
}

// PendingTasks returns the number of scheduled, not yet fired tasks
func (l *FrameLoop) PendingTasks() int {
	n := 0
	for _, t := range l.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// DelayedTask is a one-shot callback scheduled on a FrameLoop
type DelayedTask struct {
	id        uint64
	due       time.Duration
	fn        func()
	fired     bool
	cancelled bool
}

// Cancel prevents a pending task from firing; no-op after it fired
func (t *DelayedTask) Cancel() {
	if t == nil || t.fired {
		return
	}
	t.cancelled = true
}

// Fired reports whether the task ran
func (t *DelayedTask) Fired() bool {
	return t != nil && t.fired
}
