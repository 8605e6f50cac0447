package presentation

import (
	"testing"
	"time"

	"github.com/lixenwraith/reel-spin/engine"
	"github.com/lixenwraith/reel-spin/outcome"
)

const frame = 16 * time.Millisecond

var testLayout = Layout{
	IndicatorX:         600,
	IndicatorY:         100,
	TileSize:           156,
	MessageGap:         30,
	MessageBaselineDiv: 2.5,
}

func TestWinFrameRevealSteps(t *testing.T) {
	loop := engine.NewFrameLoop()
	w := NewWinFrame(loop, 0.1)

	if w.Visible() || w.Scale() != 0 {
		t.Fatalf("new win frame Scale() = %v, want hidden", w.Scale())
	}

	w.Reveal()
	prev := 0.0
	frames := 0
	for w.Animating() {
		loop.Advance(frame)
		frames++
		if s := w.Scale(); s < prev || s > 1 {
			t.Fatalf("frame %d: Scale() = %v after %v", frames, s, prev)
		}
		prev = w.Scale()
		if frames > 50 {
			t.Fatal("reveal did not finish")
		}
	}

	if frames != 10 {
		t.Errorf("reveal took %d frames, want 10", frames)
	}
	if w.Scale() != 1 {
		t.Errorf("Scale() = %v, want exactly 1", w.Scale())
	}
	if loop.ActiveClocks() != 0 {
		t.Errorf("ActiveClocks() = %d after reveal, want 0", loop.ActiveClocks())
	}
}

func TestWinFrameRevealIgnoresDelta(t *testing.T) {
	loop := engine.NewFrameLoop()
	w := NewWinFrame(loop, 0.25)
	w.Reveal()

	// A long frame still advances one step
	loop.Advance(time.Second)
	if w.Scale() != 0.25 {
		t.Errorf("Scale() = %v, want 0.25", w.Scale())
	}
}

func TestWinFrameHideMidReveal(t *testing.T) {
	loop := engine.NewFrameLoop()
	w := NewWinFrame(loop, 0.1)
	w.Reveal()
	loop.Advance(frame)
	loop.Advance(frame)

	w.Hide()
	if w.Scale() != 0 || w.Visible() || w.Animating() {
		t.Fatalf("after Hide: Scale() = %v, Animating() = %v", w.Scale(), w.Animating())
	}

	loop.Advance(frame)
	if w.Scale() != 0 {
		t.Errorf("Scale() = %v after Hide and another frame, want 0", w.Scale())
	}
}

func TestWinFrameRevealRestarts(t *testing.T) {
	loop := engine.NewFrameLoop()
	w := NewWinFrame(loop, 0.1)
	w.Reveal()
	for i := 0; i < 5; i++ {
		loop.Advance(frame)
	}

	w.Reveal()
	if w.Scale() != 0 {
		t.Errorf("Scale() = %v right after second Reveal, want 0", w.Scale())
	}
	loop.Advance(frame)
	if loop.ActiveClocks() != 1 {
		t.Errorf("ActiveClocks() = %d, want 1 (old reveal stopped)", loop.ActiveClocks())
	}
}

func TestFeedbackPresent(t *testing.T) {
	loop := engine.NewFrameLoop()
	f := NewFeedback(loop, 0.1, testLayout)

	f.Present(outcome.Outcome{Index: 3, Symbol: "crow", Payout: 42.5})
	v := f.View()

	if v.MessageText != "wins $42.50" || !v.MessageVisible {
		t.Errorf("message = %q visible=%v, want %q visible", v.MessageText, v.MessageVisible, "wins $42.50")
	}
	if v.MessageX != 600+156+30 {
		t.Errorf("MessageX = %v, want %v", v.MessageX, 600+156+30)
	}
	wantY := testLayout.IndicatorY + testLayout.TileSize/testLayout.MessageBaselineDiv
	if v.MessageY != wantY {
		t.Errorf("MessageY = %v, want %v", v.MessageY, wantY)
	}
	if !v.IndicatorVisible || v.IndicatorSymbol != "crow" {
		t.Errorf("indicator = %q visible=%v, want crow visible", v.IndicatorSymbol, v.IndicatorVisible)
	}
	if v.IndicatorBounds != (Rect{X: 600, Y: 100, W: 156, H: 156}) {
		t.Errorf("IndicatorBounds = %+v", v.IndicatorBounds)
	}
	if v.WinFrameVisible {
		t.Error("win frame visible before any frame advanced")
	}

	for i := 0; i < 10; i++ {
		loop.Advance(frame)
	}
	if v := f.View(); v.WinFrameScale != 1 || !v.WinFrameVisible {
		t.Errorf("WinFrameScale = %v, want 1", v.WinFrameScale)
	}
}

func TestFeedbackReset(t *testing.T) {
	loop := engine.NewFrameLoop()
	f := NewFeedback(loop, 0.1, testLayout)
	f.Present(outcome.Outcome{Symbol: "ace", Payout: 3})
	loop.Advance(frame)

	f.Reset()
	v := f.View()
	if v.MessageText != "" || v.MessageVisible {
		t.Errorf("message = %q visible=%v after Reset, want empty hidden", v.MessageText, v.MessageVisible)
	}
	if v.IndicatorVisible {
		t.Error("indicator visible after Reset")
	}
	if v.WinFrameScale != 0 {
		t.Errorf("WinFrameScale = %v after Reset, want 0", v.WinFrameScale)
	}
}

func TestFeedbackHideWinFrameKeepsMessage(t *testing.T) {
	loop := engine.NewFrameLoop()
	f := NewFeedback(loop, 0.1, testLayout)
	f.Present(outcome.Outcome{Symbol: "ace", Payout: 3})
	loop.Advance(frame)

	f.HideWinFrame()
	v := f.View()
	if v.WinFrameScale != 0 {
		t.Errorf("WinFrameScale = %v, want 0", v.WinFrameScale)
	}
	if !v.MessageVisible || v.MessageText != "wins $3.00" {
		t.Errorf("message = %q visible=%v, want kept", v.MessageText, v.MessageVisible)
	}
}
