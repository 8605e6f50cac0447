package presentation

import (
	"time"

	"github.com/lixenwraith/reel-spin/engine"
)

// revealEpsilon absorbs float drift from repeated step additions (10 * 0.1 != 1)
const revealEpsilon = 1e-9

// WinFrame is the frame drawn around the winning slot
// Reveal grows the scale by a fixed step per frame, so speed depends on frame rate
type WinFrame struct {
	loop  *engine.FrameLoop
	step  float64
	scale float64
	clock *engine.FrameClock
}

// NewWinFrame creates a hidden win frame
func NewWinFrame(loop *engine.FrameLoop, step float64) *WinFrame {
	return &WinFrame{loop: loop, step: step}
}

// Reveal restarts the grow animation from scale 0
func (w *WinFrame) Reveal() {
	w.clock.Stop()
	w.scale = 0
	w.clock = w.loop.NewClock(w.tick)
	w.clock.Start()
}

func (w *WinFrame) tick(time.Duration) {
	w.scale += w.step
	if w.scale >= 1-revealEpsilon {
		w.scale = 1
		w.clock.Stop()
		w.clock = nil
	}
}

// Hide collapses the frame immediately and cancels a running reveal
func (w *WinFrame) Hide() {
	w.clock.Stop()
	w.clock = nil
	w.scale = 0
}

// Scale returns the current scale in [0,1]
func (w *WinFrame) Scale() float64 {
	return w.scale
}

// Visible reports a non-zero scale
func (w *WinFrame) Visible() bool {
	return w.scale > 0
}

// Animating reports whether a reveal is in progress
func (w *WinFrame) Animating() bool {
	return w.clock.Running()
}
