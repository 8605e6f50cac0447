// Package outcome picks the winning tile and prices it
package outcome

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/lixenwraith/reel-spin/reel"
)

// Outcome is the result of one spin cycle, never carried across spins
type Outcome struct {
	Index     int    // slot index into the reel, weak reference
	Symbol    string // symbol at Index when evaluated
	Payout    float64
	SessionID uint64
}

// Message returns the payout text shown to the player
func (o Outcome) Message() string {
	return FormatPayout(o.Payout)
}

// FindClosest returns the index of the tile whose X is nearest to ref
// Linear scan; a later tile replaces the current best only when strictly closer, so ties keep the earliest
// Returns -1 for an empty slice
func FindClosest(tiles []reel.TileView, ref float64) int {
	if len(tiles) == 0 {
		return -1
	}
	best := 0
	bestDist := math.Abs(tiles[0].X - ref)
	for i := 1; i < len(tiles); i++ {
		if d := math.Abs(tiles[i].X - ref); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// FormatPayout renders an amount as the win message, two decimals
func FormatPayout(amount float64) string {
	return fmt.Sprintf("wins $%.2f", amount)
}

// Payer prices a winning symbol; this is where paytable logic plugs in
type Payer interface {
	Payout(symbol string) float64
}

// PayerFunc adapts a function to Payer
type PayerFunc func(symbol string) float64

// Payout calls f
func (f PayerFunc) Payout(symbol string) float64 {
	return f(symbol)
}

// RandomPayer returns a uniform amount in [0, ceiling) regardless of symbol
type RandomPayer struct {
	mu      sync.Mutex
	rng     *rand.Rand
	ceiling float64
}

// NewRandomPayer creates a random payer; nil rng uses the global source
func NewRandomPayer(rng *rand.Rand, ceiling float64) *RandomPayer {
	return &RandomPayer{rng: rng, ceiling: ceiling}
}

// Payout returns a random amount in [0, ceiling)
func (p *RandomPayer) Payout(string) float64 {
	if p.rng == nil {
		return rand.Float64() * p.ceiling
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() * p.ceiling
}

// TablePayer prices symbols from a fixed table and defers unknown symbols to Fallback
type TablePayer struct {
	Table    map[string]float64
	Fallback Payer
}

// Payout returns the table amount, the fallback amount, or 0
func (p TablePayer) Payout(symbol string) float64 {
	if v, ok := p.Table[symbol]; ok {
		return v
	}
	if p.Fallback != nil {
		return p.Fallback.Payout(symbol)
	}
	return 0
}

// Evaluator turns a settled reel snapshot into an Outcome
type Evaluator struct {
	Reference float64
	Payer     Payer
}

// NewEvaluator creates an evaluator measuring distance to ref
func NewEvaluator(ref float64, payer Payer) *Evaluator {
	return &Evaluator{Reference: ref, Payer: payer}
}

// Evaluate finds the winning tile and prices it
// ok is false for an empty snapshot
func (e *Evaluator) Evaluate(tiles []reel.TileView, sessionID uint64) (Outcome, bool) {
	idx := FindClosest(tiles, e.Reference)
	if idx < 0 {
		return Outcome{}, false
	}
	o := Outcome{
		Index:     idx,
		Symbol:    tiles[idx].Symbol,
		SessionID: sessionID,
	}
	if e.Payer != nil {
		o.Payout = e.Payer.Payout(o.Symbol)
	}
	return o, true
}
