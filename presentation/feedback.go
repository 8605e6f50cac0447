// Package presentation holds the win feedback state: win frame, winning symbol indicator and payout message
// It produces plain values for a renderer and draws nothing itself
package presentation

import (
	"github.com/lixenwraith/reel-spin/engine"
	"github.com/lixenwraith/reel-spin/outcome"
)

// Layout fixes where the indicator and message sit
type Layout struct {
	IndicatorX, IndicatorY float64
	TileSize               float64
	MessageGap             float64
	MessageBaselineDiv     float64
}

// View is the render-facing feedback state after a frame
type View struct {
	WinFrameScale    float64
	WinFrameVisible  bool
	IndicatorSymbol  string
	IndicatorBounds  Rect
	IndicatorVisible bool
	MessageText      string
	MessageX         float64
	MessageY         float64
	MessageVisible   bool
}

// Feedback bundles the win presentation pieces
type Feedback struct {
	layout    Layout
	winFrame  *WinFrame
	indicator Indicator
	message   Message
}

// NewFeedback creates hidden feedback; the win frame animates on loop
func NewFeedback(loop *engine.FrameLoop, revealStep float64, layout Layout) *Feedback {
	return &Feedback{
		layout:   layout,
		winFrame: NewWinFrame(loop, revealStep),
		indicator: Indicator{
			Bounds: Rect{
				X: layout.IndicatorX,
				Y: layout.IndicatorY,
				W: layout.TileSize,
				H: layout.TileSize,
			},
		},
	}
}

// Reset clears everything for a new spin: message text first, then visibility of indicator and frame
func (f *Feedback) Reset() {
	f.message.Clear()
	f.indicator.Hide()
	f.winFrame.Hide()
}

// HideWinFrame collapses the win frame only
func (f *Feedback) HideWinFrame() {
	f.winFrame.Hide()
}

// Present reveals the win frame and shows indicator and payout message for o
func (f *Feedback) Present(o outcome.Outcome) {
	f.winFrame.Reveal()

	f.indicator.Show(o.Symbol)

	f.message.Text = o.Message()
	f.message.Place(f.indicator.Bounds, f.layout.MessageGap, f.layout.MessageBaselineDiv)
	f.message.Visible = true
}

// WinFrame exposes the win frame animation
func (f *Feedback) WinFrame() *WinFrame {
	return f.winFrame
}

// View copies the current feedback state
func (f *Feedback) View() View {
	return View{
		WinFrameScale:    f.winFrame.Scale(),
		WinFrameVisible:  f.winFrame.Visible(),
		IndicatorSymbol:  f.indicator.Symbol,
		IndicatorBounds:  f.indicator.Bounds,
		IndicatorVisible: f.indicator.Visible,
		MessageText:      f.message.Text,
		MessageX:         f.message.X,
		MessageY:         f.message.Y,
		MessageVisible:   f.message.Visible,
	}
}
