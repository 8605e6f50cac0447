package engine

import "time"

// FrameTimer turns successive time readings into frame deltas
type FrameTimer struct {
	tp       TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameTimer creates a timer anchored at tp.Now()
// maxDelta caps a single delta so a stalled process does not teleport animations; 0 disables the cap
func NewFrameTimer(tp TimeProvider, maxDelta time.Duration) *FrameTimer {
	return &FrameTimer{
		tp:       tp,
		last:     tp.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns the time since the previous call and re-anchors the timer
func (ft *FrameTimer) Delta() time.Duration {
	now := ft.tp.Now()
	dt := now.Sub(ft.last)
	ft.last = now

	if dt < 0 {
		return 0
	}
	if ft.maxDelta > 0 && dt > ft.maxDelta {
		return ft.maxDelta
	}
	return dt
}

// Reset re-anchors the timer without producing a delta
func (ft *FrameTimer) Reset() {
	ft.last = ft.tp.Now()
}
