package spin

import "time"

// Session is one spin cycle; ID is a generation that only grows
type Session struct {
	ID       uint64
	Elapsed  float64 // seconds
	Duration float64 // seconds
	Started  time.Duration
	Stopped  bool // cut short by a stop request
}

// Progress returns elapsed/duration, unclamped
func (s *Session) Progress() float64 {
	if s == nil || s.Duration <= 0 {
		return 0
	}
	return s.Elapsed / s.Duration
}
