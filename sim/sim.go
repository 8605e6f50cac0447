// Package sim runs many independent reels headless on a worker pool
package sim

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/config"
	"github.com/lixenwraith/reel-spin/engine"
	"github.com/lixenwraith/reel-spin/logger"
	"github.com/lixenwraith/reel-spin/outcome"
	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/spin"
)

var (
	ErrFrameBudget  = errors.New("frame budget exceeded")
	ErrGridProperty = errors.New("settled reel off grid")
	ErrNoOutcome    = errors.New("outcome not presented")
)

// Options controls a batch run
type Options struct {
	Reels      int           // independent reels
	Spins      int           // spins per reel
	Workers    int           // pool size
	StopAt     float64       // request a stop at this progress; 0 lets spins run full length
	FrameDelta time.Duration // fixed delta per frame
	MaxFrames  int           // per spin, covers align and settle delay
	Seed       uint64
}

// DefaultOptions returns a small run at the game frame rate
func DefaultOptions() Options {
	return Options{
		Reels:      16,
		Spins:      10,
		Workers:    parameter.SimDefaultWorkers,
		FrameDelta: parameter.SimFrameDelta,
		MaxFrames:  parameter.SimMaxFrames,
		Seed:       1,
	}
}

// Result aggregates every reel in a run
type Result struct {
	Spins       int
	Outcomes    int
	Stopped     int
	Failed      int
	Frames      int64
	Frequency   map[string]int
	TotalPayout float64
	MaxPayout   float64
	Elapsed     time.Duration
}

// MeanPayout returns the average presented payout
func (r Result) MeanPayout() float64 {
	if r.Outcomes == 0 {
		return 0
	}
	return r.TotalPayout / float64(r.Outcomes)
}

// Symbols returns the winning symbols in name order
func (r Result) Symbols() []string {
	return slices.Sorted(maps.Keys(r.Frequency))
}

func (r *Result) merge(o reelResult) {
	r.Spins += o.spins
	r.Stopped += o.stopped
	r.Failed += o.failed
	r.Frames += o.frames
	for _, oc := range o.outcomes {
		r.Outcomes++
		r.Frequency[oc.Symbol]++
		r.TotalPayout += oc.Payout
		r.MaxPayout = max(r.MaxPayout, oc.Payout)
	}
}

type reelResult struct {
	spins    int
	stopped  int
	failed   int
	frames   int64
	outcomes []outcome.Outcome
}

// Run drives opts.Reels controllers through opts.Spins cycles each
// Each controller and its frame loop stay on one pool goroutine
func Run(ctx context.Context, cfg config.Config, opts Options, log *zap.Logger) (Result, error) {
	log = logger.OrNop(log).Named("sim")
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Reels <= 0 || opts.Spins <= 0 {
		return Result{}, fmt.Errorf("reels and spins must be positive: %d, %d", opts.Reels, opts.Spins)
	}
	if opts.FrameDelta <= 0 {
		opts.FrameDelta = parameter.SimFrameDelta
	}
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = parameter.SimMaxFrames
	}
	if opts.Workers <= 0 {
		opts.Workers = parameter.SimDefaultWorkers
	}

	pool, err := ants.NewPool(opts.Workers)
	if err != nil {
		return Result{}, fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	res := Result{Frequency: make(map[string]int)}
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		submitErr int
	)

	for i := 0; i < opts.Reels; i++ {
		idx := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			rr := runReel(ctx, cfg, opts, idx, log)
			mu.Lock()
			res.merge(rr)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			submitErr++
		}
	}
	wg.Wait()
	res.Elapsed = time.Since(start)

	if submitErr > 0 {
		log.Warn("reels not submitted", zap.Int("count", submitErr))
	}
	log.Info("run complete",
		zap.Int("reels", opts.Reels),
		zap.Int("spins", res.Spins),
		zap.Int("outcomes", res.Outcomes),
		zap.Int("failed", res.Failed),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, ctx.Err()
}

func runReel(ctx context.Context, cfg config.Config, opts Options, idx int, log *zap.Logger) reelResult {
	var rr reelResult
	log = log.With(zap.Int("reel", idx))

	loop := engine.NewFrameLoop()
	var got *outcome.Outcome
	c, err := spin.New(cfg, loop,
		spin.WithRand(rand.New(rand.NewPCG(opts.Seed, uint64(idx)))),
		spin.WithListener(spin.ListenerFuncs{
			OnOutcome: func(o outcome.Outcome) { got = &o },
		}),
	)
	if err != nil {
		log.Error("controller", zap.Error(err))
		rr.failed = opts.Spins
		return rr
	}
	defer c.Shutdown()

	for s := 0; s < opts.Spins; s++ {
		if ctx.Err() != nil {
			return rr
		}
		got = nil
		frames, stopped, err := runSpin(c, loop, opts, func() bool { return got != nil })
		rr.spins++
		rr.frames += int64(frames)
		if stopped {
			rr.stopped++
		}
		if err == nil {
			err = CheckGrid(c.Reel().Positions(), c.Reel().Pitch(), c.Reel().Span())
		}
		if err != nil {
			rr.failed++
			log.Warn("spin failed", zap.Int("spin", s), zap.Error(err))
			continue
		}
		rr.outcomes = append(rr.outcomes, *got)
	}
	return rr
}

// runSpin triggers one cycle and advances until presented returns true
func runSpin(c *spin.Controller, loop *engine.FrameLoop, opts Options, presented func() bool) (frames int, stopped bool, err error) {
	if err := c.Trigger(); err != nil {
		return 0, false, err
	}
	for frames < opts.MaxFrames {
		loop.Advance(opts.FrameDelta)
		frames++

		if opts.StopAt > 0 && !stopped && c.Phase() == spin.PhaseSpinning {
			if s := c.Session(); s != nil && s.Progress() >= opts.StopAt {
				if err := c.Trigger(); err != nil {
					return frames, stopped, err
				}
				stopped = true
			}
		}
		if c.Phase() == spin.PhaseIdle && presented() {
			return frames, stopped, nil
		}
	}
	if c.Phase() == spin.PhaseIdle {
		return frames, stopped, fmt.Errorf("%w after %d frames", ErrNoOutcome, frames)
	}
	return frames, stopped, fmt.Errorf("%w: %d frames in %s", ErrFrameBudget, frames, c.Phase())
}

// CheckGrid verifies settled positions are distinct multiples of pitch inside [0, span)
func CheckGrid(positions []float64, pitch, span float64) error {
	seen := make(map[int]bool, len(positions))
	for i, x := range positions {
		slot := x / pitch
		if x < 0 || x >= span || slot != math.Trunc(slot) {
			return fmt.Errorf("%w: tile %d at %v", ErrGridProperty, i, x)
		}
		if seen[int(slot)] {
			return fmt.Errorf("%w: slot %d shared", ErrGridProperty, int(slot))
		}
		seen[int(slot)] = true
	}
	return nil
}
