// Package spin runs the reel's spin, align and settle cycle frame by frame
package spin

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/config"
	"github.com/lixenwraith/reel-spin/engine"
	"github.com/lixenwraith/reel-spin/logger"
	"github.com/lixenwraith/reel-spin/outcome"
	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/presentation"
	"github.com/lixenwraith/reel-spin/reel"
	"github.com/lixenwraith/reel-spin/vmath"
)

// Frame is the render-facing snapshot after a tick
type Frame struct {
	Phase     Phase
	SessionID uint64 // current session, or the last one while idle
	Progress  float64
	Tiles     []reel.TileView
	Feedback  presentation.View
	Outcome   *outcome.Outcome // last presented outcome, nil before the first
}

// Option customises a Controller
type Option func(*Controller)

// WithRand sets the source used for the initial reel order and the default payer
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithPayer replaces the default payer
func WithPayer(p outcome.Payer) Option {
	return func(c *Controller) { c.payer = p }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithListener registers a listener
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, l) }
}

// Controller owns the reel, the feedback state and one clock per active phase
// Not safe for concurrent use; drive it from the goroutine that advances its loop
type Controller struct {
	cfg       config.Config
	loop      *engine.FrameLoop
	reel      *reel.Reel
	eval      *outcome.Evaluator
	feedback  *presentation.Feedback
	log       *zap.Logger
	rng       *rand.Rand
	payer     outcome.Payer
	listeners []Listener

	phase      Phase
	session    *Session
	generation uint64
	lastID     uint64

	spinClock  *engine.FrameClock
	alignClock *engine.FrameClock
	settleTask *engine.DelayedTask

	alignFrames int
	last        *outcome.Outcome
}

// New builds a controller on loop; reel geometry errors wrap config.ErrInvalidConfig
// Timing settings are checked on every spin request instead
func New(cfg config.Config, loop *engine.FrameLoop, opts ...Option) (*Controller, error) {
	c := &Controller{
		cfg:  cfg,
		loop: loop,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.OrNop(c.log).Named("spin")

	r, err := reel.New(cfg.Symbols, cfg.TileSize, c.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	c.reel = r

	if c.payer == nil {
		var base outcome.Payer = outcome.NewRandomPayer(c.rng, parameter.PayoutCeiling)
		if len(cfg.Paytable) > 0 {
			base = outcome.TablePayer{Table: cfg.Paytable, Fallback: base}
		}
		c.payer = base
	}
	c.eval = outcome.NewEvaluator(cfg.Reference(), c.payer)

	c.feedback = presentation.NewFeedback(loop, cfg.RevealStep, presentation.Layout{
		IndicatorX:         parameter.IndicatorX,
		IndicatorY:         parameter.IndicatorY,
		TileSize:           cfg.TileSize,
		MessageGap:         parameter.MessageGap,
		MessageBaselineDiv: parameter.MessageBaselineDiv,
	})

	c.log.Debug("reel ready", zap.Strings("order", r.Symbols()), zap.Float64("reference", cfg.Reference()))
	return c, nil
}

// AddListener registers a listener after construction
func (c *Controller) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Trigger is the spin control: starts a spin when idle, forces the stop when spinning
// Requests during alignment are ignored; an invalid config rejects the spin and stays idle
func (c *Controller) Trigger() error {
	switch c.phase {
	case PhaseIdle:
		return c.start()
	case PhaseSpinning:
		s := c.session
		s.Stopped = true
		c.log.Debug("stop requested", zap.Uint64("session", s.ID), zap.Float64("progress", s.Progress()))
		for _, l := range c.listeners {
			if sl, ok := l.(StopListener); ok {
				sl.SpinStopped(s.ID, s.Progress())
			}
		}
		c.beginAlign()
		return nil
	default:
		c.log.Debug("spin request ignored", zap.Stringer("phase", c.phase))
		return nil
	}
}

func (c *Controller) start() error {
	if err := c.cfg.Validate(); err != nil {
		c.log.Warn("spin rejected", zap.Error(err))
		return err
	}

	// Clears message text before visibility so the last payout never shows in the next cycle
	c.feedback.Reset()

	c.generation++
	c.session = &Session{
		ID:       c.generation,
		Duration: c.cfg.SpinDuration.Seconds(),
		Started:  c.loop.Now(),
	}

	c.spinClock = c.loop.NewClock(c.spinFrame)
	c.spinClock.Start()
	c.setPhase(PhaseSpinning)
	return nil
}

// Step is the per-frame pixel step for a given progress
// Past the midpoint a boost keeps the reel visibly moving as the eased curve flattens
// Only the ease input is clamped; the boost tapers with raw progress and never reverses the reel
func Step(progress, baseSpeed float64) float64 {
	step := (1 - vmath.EaseInOutExpo(vmath.Clamp01(progress))) * baseSpeed
	if progress > parameter.SpinLateBoostThreshold {
		step = (step + parameter.SpinLateBoostOffset) * (parameter.SpinLateBoostCeiling - progress)
	}
	return max(step, 0)
}

func (c *Controller) spinFrame(dt time.Duration) {
	s := c.session
	if s == nil || c.phase != PhaseSpinning {
		return
	}

	s.Elapsed += dt.Seconds()
	progress := s.Progress()
	c.reel.Advance(Step(progress, c.cfg.BaseSpeed))

	if progress >= 1 {
		c.beginAlign()
	}
}

func (c *Controller) beginAlign() {
	c.spinClock.Stop()
	c.spinClock = nil

	c.alignFrames = 0
	c.alignClock = c.loop.NewClock(c.alignFrame)
	c.alignClock.Start()
	c.setPhase(PhaseAligning)
}

func (c *Controller) alignFrame(time.Duration) {
	if c.phase != PhaseAligning {
		return
	}

	c.alignFrames++
	if !c.reel.AlignStep(c.cfg.AlignThreshold, c.cfg.AlignRate) {
		if c.alignFrames == parameter.AlignWarnFrames {
			c.log.Warn("alignment not converging", zap.Int("frames", c.alignFrames), zap.Float64s("positions", c.reel.Positions()))
		}
		return
	}

	c.alignClock.Stop()
	c.alignClock = nil
	c.reel.Normalize()
	c.settle()
}

// settle hides the win frame, schedules the outcome for this session and returns to idle without waiting
func (c *Controller) settle() {
	c.setPhase(PhaseSettling)
	c.feedback.HideWinFrame()

	id := c.session.ID
	c.settleTask = c.loop.After(c.cfg.SettleDelay, func() { c.resolve(id) })

	c.log.Debug("settled",
		zap.Uint64("session", id),
		zap.Int("align_frames", c.alignFrames),
		zap.Bool("stopped_early", c.session.Stopped),
	)

	c.lastID = id
	c.session = nil
	c.setPhase(PhaseIdle)
}

// resolve evaluates and presents the outcome for session id unless a newer session started since
func (c *Controller) resolve(id uint64) {
	if id != c.generation {
		c.log.Debug("stale outcome dropped", zap.Uint64("session", id), zap.Uint64("current", c.generation))
		return
	}

	o, ok := c.eval.Evaluate(c.reel.Snapshot(), id)
	if !ok {
		return
	}
	c.last = &o
	c.feedback.Present(o)

	c.log.Info("outcome", zap.Uint64("session", id), zap.String("symbol", o.Symbol), zap.Float64("payout", o.Payout))
	for _, l := range c.listeners {
		l.OutcomeReady(o)
	}
}

func (c *Controller) setPhase(to Phase) {
	from := c.phase
	if !CanTransition(from, to) {
		c.log.Error("invalid phase transition", zap.Stringer("from", from), zap.Stringer("to", to))
		return
	}
	c.phase = to

	id := c.lastID
	if c.session != nil {
		id = c.session.ID
	}
	for _, l := range c.listeners {
		l.PhaseChanged(from, to, id)
	}
}

// Shutdown stops every clock and drops pending outcome work
func (c *Controller) Shutdown() {
	c.spinClock.Stop()
	c.alignClock.Stop()
	c.feedback.WinFrame().Hide()
	c.settleTask.Cancel()
	c.spinClock, c.alignClock, c.settleTask = nil, nil, nil
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns the active session, nil while idle
func (c *Controller) Session() *Session {
	return c.session
}

// Reel exposes the reel for inspection
func (c *Controller) Reel() *reel.Reel {
	return c.reel
}

// Config returns the controller's configuration
func (c *Controller) Config() config.Config {
	return c.cfg
}

// LastOutcome returns the last presented outcome
func (c *Controller) LastOutcome() (outcome.Outcome, bool) {
	if c.last == nil {
		return outcome.Outcome{}, false
	}
	return *c.last, true
}

// Snapshot copies everything a renderer needs
func (c *Controller) Snapshot() Frame {
	f := Frame{
		Phase:     c.phase,
		SessionID: c.lastID,
		Tiles:     c.reel.Snapshot(),
		Feedback:  c.feedback.View(),
	}
	if c.session != nil {
		f.SessionID = c.session.ID
		f.Progress = vmath.Clamp01(c.session.Progress())
	}
	if c.last != nil {
		o := *c.last
		f.Outcome = &o
	}
	return f
}
