package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/lixenwraith/reel-spin/config"
)

func TestRunFullSpins(t *testing.T) {
	opts := DefaultOptions()
	opts.Reels = 4
	opts.Spins = 3
	opts.Workers = 2

	res, err := Run(context.Background(), config.Default(), opts, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Spins != 12 {
		t.Errorf("Spins = %d, want 12", res.Spins)
	}
	if res.Failed != 0 {
		t.Errorf("Failed = %d, want 0", res.Failed)
	}
	if res.Outcomes != 12 {
		t.Errorf("Outcomes = %d, want 12", res.Outcomes)
	}
	total := 0
	for _, s := range res.Symbols() {
		total += res.Frequency[s]
	}
	if total != res.Outcomes {
		t.Errorf("frequency sum = %d, want %d", total, res.Outcomes)
	}
	if res.MaxPayout >= 100 || res.MeanPayout() < 0 {
		t.Errorf("payouts out of range: max %v mean %v", res.MaxPayout, res.MeanPayout())
	}
	// 4s at 16ms per frame before alignment even starts
	if min := int64(12 * 250); res.Frames < min {
		t.Errorf("Frames = %d, want >= %d", res.Frames, min)
	}
}

func TestRunEarlyStop(t *testing.T) {
	opts := DefaultOptions()
	opts.Reels = 3
	opts.Spins = 2
	opts.StopAt = 0.25

	res, err := Run(context.Background(), config.Default(), opts, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Stopped != 6 || res.Failed != 0 || res.Outcomes != 6 {
		t.Errorf("Stopped/Failed/Outcomes = %d/%d/%d, want 6/0/6", res.Stopped, res.Failed, res.Outcomes)
	}
	// Stopping at a quarter skips most of the spin
	if max := int64(6 * 200); res.Frames > max {
		t.Errorf("Frames = %d, want <= %d", res.Frames, max)
	}
}

func TestRunPaytable(t *testing.T) {
	cfg := config.Default()
	cfg.Paytable = make(map[string]float64, len(cfg.Symbols))
	for _, s := range cfg.Symbols {
		cfg.Paytable[s] = 5
	}
	opts := DefaultOptions()
	opts.Reels = 2
	opts.Spins = 2

	res, err := Run(context.Background(), cfg, opts, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.TotalPayout != 20 {
		t.Errorf("TotalPayout = %v, want 20", res.TotalPayout)
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Reels = 3
	opts.Spins = 2
	opts.Seed = 7

	cfg := config.Default()
	cfg.Paytable = map[string]float64{"crow": 1}

	a, err := Run(context.Background(), cfg, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), cfg, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range a.Symbols() {
		if a.Frequency[s] != b.Frequency[s] {
			t.Errorf("Frequency[%s] = %d then %d, want equal", s, a.Frequency[s], b.Frequency[s])
		}
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	cfg := config.Default()
	cfg.TileSize = 0
	if _, err := Run(context.Background(), cfg, DefaultOptions(), nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Run(bad config) error = %v, want ErrInvalidConfig", err)
	}

	opts := DefaultOptions()
	opts.Reels = 0
	if _, err := Run(context.Background(), config.Default(), opts, nil); err == nil {
		t.Error("Run(0 reels) error = nil")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, config.Default(), DefaultOptions(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run(cancelled) error = %v, want context.Canceled", err)
	}
	if res.Spins != 0 {
		t.Errorf("Spins = %d, want 0", res.Spins)
	}
}

func TestRunFrameBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.Reels = 1
	opts.Spins = 1
	opts.MaxFrames = 10

	res, err := Run(context.Background(), config.Default(), opts, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Failed != 1 || res.Outcomes != 0 {
		t.Errorf("Failed/Outcomes = %d/%d, want 1/0", res.Failed, res.Outcomes)
	}
}

func TestCheckGrid(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		wantErr   bool
	}{
		{"aligned", []float64{0, 156, 312}, false},
		{"off grid", []float64{0, 157, 312}, true},
		{"negative", []float64{-156, 156, 312}, true},
		{"past span", []float64{0, 156, 468}, true},
		{"shared slot", []float64{0, 156, 156}, true},
	}
	for _, tt := range tests {
		err := CheckGrid(tt.positions, 156, 468)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: CheckGrid() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrGridProperty) {
			t.Errorf("%s: error %v does not wrap ErrGridProperty", tt.name, err)
		}
	}
}
