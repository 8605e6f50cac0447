// Package audio plays procedurally generated cues for reel events
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/reel-spin/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue identifies a sound effect
type Cue int

const (
	CueSpin   Cue = iota // Spin started
	CueStop              // Stop requested
	CueSettle            // Reel locked onto the grid
	CueWin               // Outcome presented
	cueCount
)

var cueNames = [cueCount]string{"spin", "stop", "settle", "win"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a fixed-length wave streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; 0 or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// whir is an endless low sweep played under a spinning reel
type whir struct {
	rate  beep.SampleRate
	pos   int
	cycle int
}

func newWhir(rate beep.SampleRate) *whir {
	return &whir{rate: rate, cycle: rate.N(parameter.WhirCycle)}
}

func (w *whir) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(w.pos) / float64(w.rate)
		c := float64(w.pos%w.cycle) / float64(w.cycle)
		freq := parameter.WhirLowFreq + parameter.WhirSpan*math.Sin(c*math.Pi)
		amp := parameter.WhirVolume * (0.5 + 0.5*math.Sin(c*math.Pi*2))
		v := amp * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = v
		samples[i][1] = v
		w.pos++
	}
	return len(samples), true
}

func (w *whir) Err() error { return nil }

// NewCue builds a one-shot streamer for c at the given master volume, nil for unknown cues
func NewCue(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer
	var vol float64

	switch c {
	case CueSpin:
		noise := NewOscillator(0, parameter.SpinCueDuration, WaveNoise, rate)
		s = NewEnvelope(noise, parameter.SpinCueDuration, parameter.SpinCueAttack, parameter.SpinCueRelease, rate)
		vol = parameter.SpinCueVolume
	case CueStop:
		osc := NewOscillator(parameter.StopCueFreq, parameter.StopCueDuration, WaveSaw, rate)
		s = NewEnvelope(osc, parameter.StopCueDuration, parameter.StopCueAttack, parameter.StopCueRelease, rate)
		vol = parameter.StopCueVolume
	case CueSettle:
		osc := NewOscillator(parameter.SettleCueFreq, parameter.SettleCueDuration, WaveSquare, rate)
		s = NewEnvelope(osc, parameter.SettleCueDuration, parameter.SettleCueAttack, parameter.SettleCueRelease, rate)
		vol = parameter.SettleCueVolume
	case CueWin:
		n1 := NewOscillator(parameter.WinCueNote1Freq, parameter.WinCueNote1Duration, WaveSquare, rate)
		n2 := NewOscillator(parameter.WinCueNote2Freq, parameter.WinCueNote2Duration, WaveSquare, rate)
		s = beep.Seq(
			NewEnvelope(n1, parameter.WinCueNote1Duration, parameter.WinCueAttack, parameter.WinCueNote1Release, rate),
			NewEnvelope(n2, parameter.WinCueNote2Duration, parameter.WinCueAttack, parameter.WinCueNote2Release, rate),
		)
		vol = parameter.WinCueVolume
	default:
		return nil
	}
	return newVolume(s, vol*master)
}
