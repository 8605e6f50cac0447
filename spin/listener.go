package spin

import "github.com/lixenwraith/reel-spin/outcome"

// Listener observes the controller; callbacks run on the loop goroutine and must not block
type Listener interface {
	PhaseChanged(from, to Phase, sessionID uint64)
	OutcomeReady(o outcome.Outcome)
}

// StopListener is optionally implemented by listeners that care about forced stops
type StopListener interface {
	SpinStopped(sessionID uint64, progress float64)
}

// ListenerFuncs adapts optional funcs to Listener
type ListenerFuncs struct {
	OnPhase   func(from, to Phase, sessionID uint64)
	OnOutcome func(o outcome.Outcome)
}

func (l ListenerFuncs) PhaseChanged(from, to Phase, sessionID uint64) {
	if l.OnPhase != nil {
		l.OnPhase(from, to, sessionID)
	}
}

func (l ListenerFuncs) OutcomeReady(o outcome.Outcome) {
	if l.OnOutcome != nil {
		l.OnOutcome(o)
	}
}
