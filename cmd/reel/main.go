package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/reel-spin/audio"
	"github.com/lixenwraith/reel-spin/config"
	"github.com/lixenwraith/reel-spin/core"
	"github.com/lixenwraith/reel-spin/engine"
	"github.com/lixenwraith/reel-spin/logger"
	"github.com/lixenwraith/reel-spin/metrics"
	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/spin"
	"github.com/lixenwraith/reel-spin/status"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the log dir")
	httpAddr   = flag.String("http", "", "Serve /metrics and /status on this address")
	seedFlag   = flag.Uint64("seed", 0, "Reel shuffle seed, 0 for random")
	noAudio    = flag.Bool("no-audio", false, "Disable sound")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reel: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overlays command-line flags on the loaded config
func applyFlags(cfg *config.Config, debug bool, addr string, seed uint64, mute bool) {
	if addr != "" {
		cfg.HTTPAddr = addr
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if mute {
		cfg.Audio = false
	}
	// The screen owns stdout, so never log to the console here
	cfg.Log.Console = false
	if debug {
		cfg.Log.File = true
		cfg.Log.Level = "debug"
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(&cfg, *debugFlag, *httpAddr, *seedFlag, *noAudio)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := status.NewRegistry()
	preg := prometheus.NewRegistry()
	preg.MustRegister(collectors.NewGoCollector())

	loop := engine.NewFrameLoop()
	opts := []spin.Option{
		spin.WithLogger(log),
		spin.WithListener(status.NewRecorder(reg)),
		spin.WithListener(metrics.NewCollector(preg)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, spin.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))))
	}
	if cfg.Audio {
		sm := audio.NewSoundManager(log)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Cleanup()
			opts = append(opts, spin.WithListener(sm))
		}
	}

	ctrl, err := spin.New(cfg, loop, opts...)
	if err != nil {
		return err
	}
	defer ctrl.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	g := newGame(screen, ctrl, loop, reg, engine.NewMonotonicTimeProvider(), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.HTTPAddr != "" {
		group.Go(func() error {
			return metrics.Serve(ctx, cfg.HTTPAddr, metrics.NewRouter(preg, reg), log)
		})
	}

	events := make(chan tcell.Event, parameter.InputQueueSize)
	// Input polling uses its own goroutine as PollEvent blocks; nil means the screen was finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	group.Go(func() error {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return g.run(ctx, events, ticker.C)
	})

	err = group.Wait()
	log.Info("exit", zap.Int64("frames", g.frames.Load()))
	return err
}
