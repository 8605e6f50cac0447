package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/engine"
	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/render"
	"github.com/lixenwraith/reel-spin/spin"
	"github.com/lixenwraith/reel-spin/status"
)

// game owns the controller and the screen; every method runs on the loop goroutine
type game struct {
	screen   tcell.Screen
	ctrl     *spin.Controller
	loop     *engine.FrameLoop
	renderer *render.TerminalRenderer
	timer    *engine.FrameTimer
	reg      *status.Registry
	log      *zap.Logger

	frames *atomic.Int64
	clocks *atomic.Int64

	buttonDown bool
}

func newGame(screen tcell.Screen, ctrl *spin.Controller, loop *engine.FrameLoop, reg *status.Registry, tp engine.TimeProvider, log *zap.Logger) *game {
	cfg := ctrl.Config()
	return &game{
		screen: screen,
		ctrl:   ctrl,
		loop:   loop,
		renderer: render.NewTerminalRenderer(screen, render.Layout{
			TileSize:     cfg.TileSize,
			VisibleCount: cfg.VisibleCount,
			Reference:    cfg.Reference(),
		}),
		timer:  engine.NewFrameTimer(tp, parameter.MaxFrameDelta),
		reg:    reg,
		log:    log,
		frames: reg.Ints.Get(status.KeyFrames),
		clocks: reg.Ints.Get(status.KeyActiveClocks),
	}
}

// run selects over input and the frame ticker until quit or ctx is done
func (g *game) run(ctx context.Context, events <-chan tcell.Event, ticks <-chan time.Time) error {
	g.timer.Reset()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || g.handleEvent(ev) {
				return nil
			}
		case <-ticks:
			g.tick()
		}
	}
}

// handleEvent applies one input event and reports whether the game should quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			g.trigger()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				g.trigger()
			}
		}

	case *tcell.EventMouse:
		// Trigger on press only; a held button repeats as motion events
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.buttonDown {
			x, y := ev.Position()
			if g.renderer.ButtonHit(x, y) {
				g.trigger()
			}
		}
		g.buttonDown = down

	case *tcell.EventResize:
		w, h := ev.Size()
		g.renderer.Resize(w, h)
		g.screen.Sync()
		g.draw()
	}
	return false
}

func (g *game) trigger() {
	if err := g.ctrl.Trigger(); err != nil {
		g.log.Warn("trigger rejected", zap.Error(err))
	}
}

func (g *game) tick() {
	g.loop.Advance(g.timer.Delta())
	g.frames.Store(int64(g.loop.Frame()))
	g.clocks.Store(int64(g.loop.ActiveClocks()))
	g.draw()
}

func (g *game) draw() {
	g.renderer.RenderFrame(g.ctrl.Snapshot(), render.HUDLine(g.reg))
}
