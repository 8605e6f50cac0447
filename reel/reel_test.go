package reel

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

var testSymbols = []string{"10", "9", "ace", "axe", "brain", "crow", "jack", "king", "queen", "rifle"}

const pitch = 156.0

func newTestReel(t *testing.T, seed uint64) *Reel {
	t.Helper()
	r, err := New(testSymbols, pitch, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func TestNewIsPermutation(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		r := newTestReel(t, seed)
		if r.Len() != len(testSymbols) {
			t.Fatalf("Len() = %d, want %d", r.Len(), len(testSymbols))
		}

		got := sortedCopy(r.Symbols())
		want := sortedCopy(testSymbols)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("seed %d: symbols %v are not a permutation of %v", seed, r.Symbols(), testSymbols)
			}
		}

		for i := 0; i < r.Len(); i++ {
			if x := r.Tile(i).X; x != float64(i)*pitch {
				t.Errorf("seed %d: tile %d X = %v, want %v", seed, i, x, float64(i)*pitch)
			}
		}
	}
}

func TestNewNilRandKeepsOrder(t *testing.T) {
	r, err := New(testSymbols, pitch, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i, s := range r.Symbols() {
		if s != testSymbols[i] {
			t.Errorf("Symbols()[%d] = %q, want %q", i, s, testSymbols[i])
		}
	}
	if r.Span() != pitch*10 {
		t.Errorf("Span() = %v, want %v", r.Span(), pitch*10)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		pitch   float64
		want    error
	}{
		{"empty", nil, pitch, ErrNoSymbols},
		{"duplicate", []string{"a", "b", "a"}, pitch, ErrDuplicateSymbol},
		{"zero pitch", []string{"a"}, 0, ErrInvalidPitch},
		{"negative pitch", []string{"a"}, -1, ErrInvalidPitch},
		{"nan pitch", []string{"a"}, math.NaN(), ErrInvalidPitch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.symbols, tt.pitch, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWrapRule(t *testing.T) {
	r := newTestReel(t, 7)
	span := r.Span()

	tests := []struct {
		start, delta float64
		wraps        bool
	}{
		{0, 100, false},         // -100 + 156 >= 0
		{0, 156, false},         // trailing edge exactly at 0
		{0, 157, true},          // -157
		{-150, 50, true},        // -200
		{10, 300, true},         // -290
		{1404, 100, false},      // 1304
		{-155.5, 99.25, true},   // fractional
		{-1.0e-9, 156.0, true},  // just past the edge
		{-156.0, 1.0e-12, true}, // trailing edge one hair below 0
	}
	for _, tt := range tests {
		r.SetPosition(0, tt.start)
		r.Shift(0, tt.delta)
		p := r.Tile(0).X
		wrapped := r.Wrap(0)

		if wrapped != tt.wraps {
			t.Errorf("start %v delta %v: wrapped = %v, want %v", tt.start, tt.delta, wrapped, tt.wraps)
			continue
		}
		got := r.Tile(0).X
		if !tt.wraps {
			if got != p {
				t.Errorf("start %v delta %v: X = %v, want unchanged %v", tt.start, tt.delta, got, p)
			}
			continue
		}
		if got != p+span {
			t.Errorf("start %v delta %v: X = %v, want %v", tt.start, tt.delta, got, p+span)
		}
		if got < 0 || got >= span {
			t.Errorf("start %v delta %v: wrapped X = %v outside [0, %v)", tt.start, tt.delta, got, span)
		}
	}
}

func TestAdvancePreservesOrderAndSpacing(t *testing.T) {
	r := newTestReel(t, 3)
	initial := r.Symbols()

	for frame := 0; frame < 500; frame++ {
		r.Advance(37.3)

		// Sorting tiles by X must yield a rotation of the initial order with constant spacing
		idx := make([]int, r.Len())
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return r.Tile(idx[a]).X < r.Tile(idx[b]).X })

		for k := 1; k < len(idx); k++ {
			gap := r.Tile(idx[k]).X - r.Tile(idx[k-1]).X
			if math.Abs(gap-pitch) > 1e-6 {
				t.Fatalf("frame %d: gap between %d and %d = %v, want %v", frame, idx[k-1], idx[k], gap, pitch)
			}
			if idx[k] != (idx[k-1]+1)%r.Len() {
				t.Fatalf("frame %d: visual order %v is not a rotation of slot order", frame, idx)
			}
		}
		for i := 0; i < r.Len(); i++ {
			if x := r.Tile(i).X; x+pitch < 0 {
				t.Fatalf("frame %d: tile %d left unwrapped at %v", frame, i, x)
			}
		}
	}

	for i, s := range r.Symbols() {
		if s != initial[i] {
			t.Fatalf("Symbols() changed at %d: %q, want %q", i, s, initial[i])
		}
	}
}

func TestAlignStepConvergence(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
	}{
		{"aligned", 0},
		{"just inside threshold", 1.9},
		{"quarter pitch", pitch / 4},
		{"just under half pitch", pitch/2 - 0.01},
		{"half pitch", pitch / 2},
		{"just over half pitch", pitch/2 + 0.01},
		{"negative half pitch", -pitch / 2},
		{"full pitch", pitch},
		{"full pitch minus hair", pitch - 0.001},
	}

	// 78 * 0.8^k <= 2 at k = 17; a couple of frames of slack for the snap frame
	const maxFrames = 20

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReel(t, 11)
			for i := 0; i < r.Len(); i++ {
				r.SetPosition(i, float64(i)*pitch+tt.offset)
			}

			frames := 0
			for !r.AlignStep(2, 0.2) {
				frames++
				if frames > maxFrames {
					t.Fatalf("not aligned after %d frames, positions %v", maxFrames, r.Positions())
				}
			}

			for i, x := range r.Positions() {
				if q := x / pitch; q != math.Trunc(q) {
					t.Errorf("tile %d at %v is not on the grid", i, x)
				}
			}
		})
	}
}

func TestAlignStepSnapsWithinThreshold(t *testing.T) {
	r := newTestReel(t, 5)
	r.SetPosition(0, 313.5)
	r.SetPosition(1, 466.0)

	r.AlignStep(2, 0.2)
	if x := r.Tile(0).X; x != 312 {
		t.Errorf("tile 0 X = %v, want 312", x)
	}
	if x := r.Tile(1).X; x != 468 {
		t.Errorf("tile 1 X = %v, want 468", x)
	}
}

func TestAlignStepMovesByRate(t *testing.T) {
	r := newTestReel(t, 5)
	for i := 0; i < r.Len(); i++ {
		r.SetPosition(i, float64(i)*pitch)
	}
	r.SetPosition(0, 50) // target 0, diff -50

	if r.AlignStep(2, 0.2) {
		t.Fatal("AlignStep() = true with tile 50px off grid")
	}
	if x := r.Tile(0).X; math.Abs(x-40) > 1e-9 {
		t.Errorf("tile 0 X = %v, want 40", x)
	}
}

func TestNormalize(t *testing.T) {
	r := newTestReel(t, 9)
	span := r.Span()
	for i := 0; i < r.Len(); i++ {
		r.SetPosition(i, float64(i-1)*pitch) // -156 .. 1248
	}
	r.Normalize()

	seen := make(map[float64]bool)
	for i, x := range r.Positions() {
		if x < 0 || x >= span {
			t.Errorf("tile %d X = %v outside [0, %v)", i, x, span)
		}
		if seen[x] {
			t.Errorf("tile %d X = %v collides with another tile", i, x)
		}
		seen[x] = true
	}
	if x := r.Tile(0).X; x != span-pitch {
		t.Errorf("tile 0 X = %v, want %v", x, span-pitch)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	r := newTestReel(t, 2)
	snap := r.Snapshot()
	snap[0].X = 9999
	if r.Tile(0).X == 9999 {
		t.Error("Snapshot() aliases reel storage")
	}
	for i, v := range r.Snapshot() {
		if v.Symbol != r.Tile(i).Symbol || v.X != r.Tile(i).X {
			t.Errorf("Snapshot()[%d] = %+v, want %+v", i, v, r.Tile(i))
		}
	}
}
