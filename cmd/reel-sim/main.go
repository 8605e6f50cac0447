package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/config"
	"github.com/lixenwraith/reel-spin/logger"
	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/sim"
)

func main() {
	defaults := sim.DefaultOptions()
	var (
		configPath = flag.String("config", "", "YAML config file")
		reels      = flag.Int("reels", defaults.Reels, "Independent reels")
		spins      = flag.Int("spins", defaults.Spins, "Spins per reel")
		workers    = flag.Int("workers", defaults.Workers, "Worker pool size")
		stopAt     = flag.Float64("stop-at", 0, "Request a stop at this spin progress (0 runs full spins)")
		frameDelta = flag.Duration("frame", parameter.SimFrameDelta, "Fixed frame delta")
		seed       = flag.Uint64("seed", defaults.Seed, "Base seed; reel i uses (seed, i)")
		level      = flag.String("log-level", "info", "Log level")
	)
	flag.Parse()

	opts := sim.Options{
		Reels:      *reels,
		Spins:      *spins,
		Workers:    *workers,
		StopAt:     *stopAt,
		FrameDelta: *frameDelta,
		MaxFrames:  parameter.SimMaxFrames,
		Seed:       *seed,
	}
	if err := run(*configPath, *level, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "reel-sim: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, level string, opts sim.Options, out io.Writer) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	lc := cfg.Log
	lc.Console = true
	lc.File = false
	lc.Level = level
	log, err := logger.New(lc)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sim.Run(ctx, cfg, opts, log)
	report(out, res)
	if err != nil {
		return err
	}
	if res.Failed > 0 {
		log.Warn("some spins failed", zap.Int("failed", res.Failed))
		return fmt.Errorf("%d of %d spins failed", res.Failed, res.Spins)
	}
	return nil
}

func report(w io.Writer, res sim.Result) {
	fmt.Fprintf(w, "spins %d  outcomes %d  stopped %d  failed %d  frames %d  elapsed %s\n",
		res.Spins, res.Outcomes, res.Stopped, res.Failed, res.Frames, res.Elapsed)
	fmt.Fprintf(w, "payout total %.2f  mean %.2f  max %.2f\n",
		res.TotalPayout, res.MeanPayout(), res.MaxPayout)
	for _, s := range res.Symbols() {
		n := res.Frequency[s]
		fmt.Fprintf(w, "  %-8s %6d  %5.1f%%\n", s, n, 100*float64(n)/float64(max(res.Outcomes, 1)))
	}
}
