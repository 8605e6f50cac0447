// Package render draws controller snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/presentation"
	"github.com/lixenwraith/reel-spin/spin"
)

// Layout is the reel geometry in layout pixels
type Layout struct {
	TileSize     float64
	VisibleCount int
	Reference    float64 // x of the winning slot
}

// CellRect is a box in screen cells
type CellRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside the box
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TerminalRenderer converts layout pixels into cells and draws a spin.Frame
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
	width  int
	height int

	originX int // screen column of layout x = 0
	reel    CellRect
	button  CellRect
	hudY    int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, layout Layout) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, layout: layout}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes placement for a new screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height

	windowPx := r.layout.TileSize * float64(r.layout.VisibleCount)
	windowCols := pxToCol(windowPx)
	r.originX = max((width-windowCols)/2, 0)

	top := pxToRow(parameter.ReelTopPx)
	r.reel = CellRect{
		X: r.originX,
		Y: top,
		W: windowCols,
		H: pxToRow(parameter.ReelTopPx+r.layout.TileSize) - top,
	}

	bw := len(parameter.ButtonTextSpin)
	r.button = CellRect{
		X: r.reel.X + (r.reel.W-bw)/2,
		Y: r.reel.Y + r.reel.H + 1 + parameter.ButtonGapRows,
		W: bw,
		H: 1,
	}
	r.hudY = r.button.Y + 1 + parameter.HUDGapRows
}

// ReelRect returns the reel window in cells
func (r *TerminalRenderer) ReelRect() CellRect { return r.reel }

// ButtonRect returns the spin button in cells
func (r *TerminalRenderer) ButtonRect() CellRect { return r.button }

// ButtonHit reports whether a click at cell (x, y) lands on the spin button
func (r *TerminalRenderer) ButtonHit(x, y int) bool {
	return r.button.Contains(x, y)
}

// RenderFrame draws f and the hud line, then shows the screen
func (r *TerminalRenderer) RenderFrame(f spin.Frame, hud string) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	r.drawText(0, 0, parameter.TitleText, base.Foreground(RgbTitle).Bold(true))
	r.drawText(0, 1, phaseLine(f), base.Foreground(RgbHUD))

	r.drawReel(f)
	if f.Feedback.WinFrameVisible {
		r.drawWinFrame(f.Feedback.WinFrameScale)
	}
	if f.Feedback.IndicatorVisible {
		r.drawIndicator(f.Feedback.IndicatorSymbol, f.Feedback.IndicatorBounds)
	}
	if f.Feedback.MessageVisible {
		x := r.originX + pxToCol(f.Feedback.MessageX)
		y := pxToRow(f.Feedback.MessageY)
		r.drawText(x, y, f.Feedback.MessageText, base.Foreground(RgbMessage).Bold(true))
	}
	r.drawButton(f.Phase)
	r.drawText(r.reel.X, r.hudY, hud, base.Foreground(RgbHUD))

	r.screen.Show()
}

func phaseLine(f spin.Frame) string {
	if f.Phase == spin.PhaseSpinning {
		return fmt.Sprintf(" %-9s #%d  %3.0f%%", f.Phase, f.SessionID, f.Progress*100)
	}
	return fmt.Sprintf(" %-9s #%d", f.Phase, f.SessionID)
}

func (r *TerminalRenderer) drawReel(f spin.Frame) {
	panel := tcell.StyleDefault.Background(RgbReelWindow)
	for y := r.reel.Y; y < r.reel.Y+r.reel.H; y++ {
		for x := r.reel.X; x < r.reel.X+r.reel.W; x++ {
			r.set(x, y, ' ', panel)
		}
	}

	border := panel.Foreground(RgbTileBorder)
	mid := r.reel.Y + r.reel.H/2
	for _, t := range f.Tiles {
		left := r.originX + pxToCol(t.X)
		right := r.originX + pxToCol(t.X+r.layout.TileSize) // exclusive
		for y := r.reel.Y; y < r.reel.Y+r.reel.H; y++ {
			r.setClipped(left, y, '│', border)
		}
		label := fitLabel(t.Symbol, right-left-1)
		lx := left + 1 + (right-left-1-len(label))/2
		style := panel.Foreground(SymbolColor(t.Symbol)).Bold(true)
		for i, ch := range label {
			r.setClipped(lx+i, mid, ch, style)
		}
	}
}

// drawWinFrame draws a gold box around the winning slot, grown by scale from its center
func (r *TerminalRenderer) drawWinFrame(scale float64) {
	if scale <= 0 {
		return
	}
	centerPx := r.layout.Reference + r.layout.TileSize/2
	halfPx := scale * (r.layout.TileSize/2 + parameter.CellWidthPx)
	left := r.originX + pxToCol(centerPx-halfPx)
	right := r.originX + pxToCol(centerPx+halfPx)

	midY := r.reel.Y + r.reel.H/2
	halfRows := int(math.Round(scale * float64(r.reel.H/2+1)))
	top := midY - halfRows
	bottom := midY + halfRows
	if right <= left || bottom <= top {
		return
	}

	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbWinFrame)
	r.box(CellRect{X: left, Y: top, W: right - left + 1, H: bottom - top + 1}, style, true)
}

func (r *TerminalRenderer) drawIndicator(symbol string, b presentation.Rect) {
	box := CellRect{
		X: r.originX + pxToCol(b.X),
		Y: pxToRow(b.Y),
		W: pxToCol(b.X+b.W) - pxToCol(b.X),
		H: pxToRow(b.Y+b.H) - pxToRow(b.Y),
	}
	if box.W < 2 || box.H < 2 {
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbWinFrame)
	r.box(box, style, false)

	label := fitLabel(symbol, box.W-2)
	lx := box.X + (box.W-len(label))/2
	r.drawText(lx, box.Y+box.H/2, string(label), style.Foreground(SymbolColor(symbol)).Bold(true))
}

func (r *TerminalRenderer) drawButton(p spin.Phase) {
	text, color := parameter.ButtonTextBusy, RgbButtonBusy
	switch p {
	case spin.PhaseIdle:
		text, color = parameter.ButtonTextSpin, RgbButtonIdle
	case spin.PhaseSpinning:
		text, color = parameter.ButtonTextStop, RgbButtonStop
	}
	style := tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack).Bold(true)
	r.drawText(r.button.X, r.button.Y, text, style)
}

func (r *TerminalRenderer) box(b CellRect, style tcell.Style, double bool) {
	h, v, tl, tr, bl, br := '─', '│', '┌', '┐', '└', '┘'
	if double {
		h, v, tl, tr, bl, br = '═', '║', '╔', '╗', '╚', '╝'
	}
	x1, y1 := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < x1; x++ {
		r.set(x, b.Y, h, style)
		r.set(x, y1, h, style)
	}
	for y := b.Y + 1; y < y1; y++ {
		r.set(b.X, y, v, style)
		r.set(x1, y, v, style)
	}
	r.set(b.X, b.Y, tl, style)
	r.set(x1, b.Y, tr, style)
	r.set(b.X, y1, bl, style)
	r.set(x1, y1, br, style)
}

// fitLabel cuts s to at most w runes, one cell each; w <= 0 leaves s whole
func fitLabel(s string, w int) []rune {
	label := []rune(s)
	if w > 0 && len(label) > w {
		label = label[:w]
	}
	return label
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.set(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// setClipped draws only inside the reel window, the terminal form of the reel mask
func (r *TerminalRenderer) setClipped(x, y int, ch rune, style tcell.Style) {
	if !r.reel.Contains(x, y) {
		return
	}
	r.set(x, y, ch, style)
}

func pxToCol(px float64) int { return int(math.Floor(px / parameter.CellWidthPx)) }

func pxToRow(px float64) int { return int(math.Floor(px / parameter.CellHeightPx)) }
