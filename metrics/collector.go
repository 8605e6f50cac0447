// Package metrics exports spin counters to Prometheus and serves the debug endpoint
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lixenwraith/reel-spin/outcome"
	"github.com/lixenwraith/reel-spin/spin"
)

const namespace = "reel"

// Collector is a spin.Listener backed by Prometheus metrics
type Collector struct {
	spins    prometheus.Counter
	stops    prometheus.Counter
	settles  prometheus.Counter
	outcomes *prometheus.CounterVec
	payout   prometheus.Histogram
	progress prometheus.Histogram
	phase    prometheus.Gauge
}

var (
	_ spin.Listener     = (*Collector)(nil)
	_ spin.StopListener = (*Collector)(nil)
)

// NewCollector registers the reel metrics on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		spins: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "spins_total",
			Help: "Spins started",
		}),
		stops: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "stops_total",
			Help: "Spins cut short by a stop request",
		}),
		settles: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "settles_total",
			Help: "Spins that finished alignment",
		}),
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "outcomes_total",
			Help: "Presented outcomes by winning symbol",
		}, []string{"symbol"}),
		payout: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "payout",
			Help:    "Presented payout amounts",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		progress: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "stop_progress",
			Help:    "Spin progress at which a stop request arrived",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		phase: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "phase",
			Help: "Current controller phase (0 idle, 1 spinning, 2 aligning, 3 settling)",
		}),
	}
}

// PhaseChanged updates the phase gauge and spin/settle counters
func (c *Collector) PhaseChanged(_, to spin.Phase, _ uint64) {
	c.phase.Set(float64(to))
	switch to {
	case spin.PhaseSpinning:
		c.spins.Inc()
	case spin.PhaseSettling:
		c.settles.Inc()
	}
}

// SpinStopped counts a forced stop
func (c *Collector) SpinStopped(_ uint64, progress float64) {
	c.stops.Inc()
	c.progress.Observe(progress)
}

// OutcomeReady counts the winning symbol and records the payout
func (c *Collector) OutcomeReady(o outcome.Outcome) {
	c.outcomes.WithLabelValues(o.Symbol).Inc()
	c.payout.Observe(o.Payout)
}
