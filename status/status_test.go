package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/reel-spin/outcome"
	"github.com/lixenwraith/reel-spin/spin"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("spin.started")
	b := m.Get("spin.started")
	if a != b {
		t.Error("Get() returned different pointers for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Load() = %d, want 3", b.Load())
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}
	var keys []string
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Range() keys = %v, want [a b c]", keys)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Add(1)
		}()
	}
	wg.Wait()
	if got := m.Get("shared").Load(); got != 32 {
		t.Errorf("shared = %d, want 32", got)
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Fatalf("zero value = %v", f.Get())
	}
	f.Set(1.5)
	if got := f.Add(2.25); got != 3.75 {
		t.Errorf("Add() = %v, want 3.75", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Fatalf("zero value = %q", s.Load())
	}
	s.Store("a-very-long-symbol-name-that-overflows")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("len(Load()) = %d, want %d", len(got), MaxStringLen)
	}
}

func TestRecorder(t *testing.T) {
	reg := NewRegistry()
	r := NewRecorder(reg)

	if got := reg.Strings.Get(KeyPhase).Load(); got != "Idle" {
		t.Errorf("initial phase = %q, want Idle", got)
	}

	r.PhaseChanged(spin.PhaseIdle, spin.PhaseSpinning, 1)
	r.SpinStopped(1, 0.3)
	r.PhaseChanged(spin.PhaseSpinning, spin.PhaseAligning, 1)
	r.PhaseChanged(spin.PhaseAligning, spin.PhaseSettling, 1)
	r.PhaseChanged(spin.PhaseSettling, spin.PhaseIdle, 1)
	r.OutcomeReady(outcome.Outcome{Symbol: "crow", Payout: 10})
	r.OutcomeReady(outcome.Outcome{Symbol: "ace", Payout: 2.5})

	snap := reg.Snapshot()
	checks := map[string]any{
		KeyPhase:       "Idle",
		KeySpins:       int64(1),
		KeyStops:       int64(1),
		KeySettled:     int64(1),
		KeyOutcomes:    int64(2),
		KeyLastSymbol:  "ace",
		KeyLastPayout:  2.5,
		KeyTotalPayout: 12.5,
	}
	for k, want := range checks {
		if got := snap[k]; got != want {
			t.Errorf("%s = %v (%T), want %v (%T)", k, got, got, want, want)
		}
	}
}
