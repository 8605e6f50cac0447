package status

import (
	"sync/atomic"

	"github.com/lixenwraith/reel-spin/outcome"
	"github.com/lixenwraith/reel-spin/spin"
)

// Metric keys
const (
	KeyPhase        = "reel.phase"
	KeySpins        = "spin.started"
	KeyStops        = "spin.stopped_early"
	KeySettled      = "spin.settled"
	KeyOutcomes     = "outcome.count"
	KeyLastSymbol   = "outcome.last_symbol"
	KeyLastPayout   = "outcome.last_payout"
	KeyTotalPayout  = "outcome.total_payout"
	KeyFrames       = "engine.frames"
	KeyActiveClocks = "engine.clocks"
)

// Recorder mirrors controller events into a Registry
type Recorder struct {
	phase       *AtomicString
	spins       *atomic.Int64
	stops       *atomic.Int64
	settled     *atomic.Int64
	outcomes    *atomic.Int64
	lastSymbol  *AtomicString
	lastPayout  *AtomicFloat
	totalPayout *AtomicFloat
}

var (
	_ spin.Listener     = (*Recorder)(nil)
	_ spin.StopListener = (*Recorder)(nil)
)

// NewRecorder caches metric pointers from reg
func NewRecorder(reg *Registry) *Recorder {
	r := &Recorder{
		phase:       reg.Strings.Get(KeyPhase),
		spins:       reg.Ints.Get(KeySpins),
		stops:       reg.Ints.Get(KeyStops),
		settled:     reg.Ints.Get(KeySettled),
		outcomes:    reg.Ints.Get(KeyOutcomes),
		lastSymbol:  reg.Strings.Get(KeyLastSymbol),
		lastPayout:  reg.Floats.Get(KeyLastPayout),
		totalPayout: reg.Floats.Get(KeyTotalPayout),
	}
	r.phase.Store(spin.PhaseIdle.String())
	return r
}

// PhaseChanged counts spins and settles
func (r *Recorder) PhaseChanged(_, to spin.Phase, _ uint64) {
	r.phase.Store(to.String())
	switch to {
	case spin.PhaseSpinning:
		r.spins.Add(1)
	case spin.PhaseSettling:
		r.settled.Add(1)
	}
}

// OutcomeReady records the payout
func (r *Recorder) OutcomeReady(o outcome.Outcome) {
	r.outcomes.Add(1)
	r.lastSymbol.Store(o.Symbol)
	r.lastPayout.Set(o.Payout)
	r.totalPayout.Add(o.Payout)
}

// SpinStopped counts stop requests that cut a spin short
func (r *Recorder) SpinStopped(uint64, float64) {
	r.stops.Add(1)
}
