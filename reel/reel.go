// Package reel models a horizontal strip of symbol tiles on a fixed pitch
// The strip loops: tiles leaving the left edge re-enter behind the last tile
package reel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/reel-spin/vmath"
)

var (
	ErrNoSymbols       = errors.New("reel: no symbols")
	ErrDuplicateSymbol = errors.New("reel: duplicate symbol")
	ErrInvalidPitch    = errors.New("reel: pitch must be positive")
)

// Tile is one symbol on the strip; X is the left edge in reel pixels
type Tile struct {
	Symbol string
	X      float64
}

// TileView is the render-facing copy of a tile
type TileView struct {
	Symbol string
	X      float64
}

// Reel owns its tiles for its whole lifetime; only positions change
type Reel struct {
	tiles []Tile
	pitch float64
	span  float64 // pitch * len(tiles)
}

// New builds a reel holding a random permutation of symbols laid out at i*pitch
func New(symbols []string, pitch float64, rng *rand.Rand) (*Reel, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if !(pitch > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPitch, pitch)
	}

	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		seen[s] = struct{}{}
	}

	order := make([]string, len(symbols))
	copy(order, symbols)
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	r := &Reel{
		tiles: make([]Tile, len(order)),
		pitch: pitch,
		span:  pitch * float64(len(order)),
	}
	for i, s := range order {
		r.tiles[i] = Tile{Symbol: s, X: float64(i) * pitch}
	}
	return r, nil
}

// Len returns the tile count
func (r *Reel) Len() int {
	return len(r.tiles)
}

// Pitch returns the tile pitch in pixels
func (r *Reel) Pitch() float64 {
	return r.pitch
}

// Span returns the looped strip length, pitch * tile count
func (r *Reel) Span() float64 {
	return r.span
}

// Tile returns a copy of tile i
func (r *Reel) Tile(i int) Tile {
	return r.tiles[i]
}

// Shift moves tile i left by delta
func (r *Reel) Shift(i int, delta float64) {
	r.tiles[i].X -= delta
}

// Wrap re-positions tile i behind the strip once its trailing edge passed the window's left edge
// Returns true when the tile wrapped
func (r *Reel) Wrap(i int) bool {
	if r.tiles[i].X+r.pitch < 0 {
		r.tiles[i].X += r.span
		return true
	}
	return false
}

// Advance shifts every tile left by delta and applies the wrap rule
// Returns the number of tiles that wrapped
func (r *Reel) Advance(delta float64) int {
	wrapped := 0
	for i := range r.tiles {
		r.Shift(i, delta)
		if r.Wrap(i) {
			wrapped++
		}
	}
	return wrapped
}

// AlignStep runs one alignment frame toward the nearest grid slot
// Tiles farther than threshold move by rate of their error; the rest snap exactly
// Returns true when every tile snapped in this frame
func (r *Reel) AlignStep(threshold, rate float64) bool {
	aligned := true
	for i := range r.tiles {
		x := r.tiles[i].X
		target := vmath.RoundToGrid(x, r.pitch)
		diff := target - x

		if math.Abs(diff) > threshold {
			aligned = false
			r.tiles[i].X += diff * rate
		} else {
			r.tiles[i].X = target
		}
	}
	return aligned
}

// Normalize folds positions into [0, span)
// A tile snapped one pitch past the left edge is equivalent to the last slot of the strip
func (r *Reel) Normalize() {
	for i := range r.tiles {
		x := math.Mod(r.tiles[i].X, r.span)
		if x < 0 {
			x += r.span
		}
		// -0 and float noise from Mod collapse onto the grid
		if x == 0 || r.span-x < 1e-9 {
			x = 0
		}
		r.tiles[i].X = x
	}
}

// Symbols returns tile identities in slot order
func (r *Reel) Symbols() []string {
	out := make([]string, len(r.tiles))
	for i, t := range r.tiles {
		out[i] = t.Symbol
	}
	return out
}

// Positions returns tile positions in slot order
func (r *Reel) Positions() []float64 {
	out := make([]float64, len(r.tiles))
	for i, t := range r.tiles {
		out[i] = t.X
	}
	return out
}

// Snapshot copies the tiles for rendering
func (r *Reel) Snapshot() []TileView {
	out := make([]TileView, len(r.tiles))
	for i, t := range r.tiles {
		out[i] = TileView{Symbol: t.Symbol, X: t.X}
	}
	return out
}

// SetPosition overrides tile i position; used by tools and tests that start from arbitrary offsets
func (r *Reel) SetPosition(i int, x float64) {
	r.tiles[i].X = x
}
