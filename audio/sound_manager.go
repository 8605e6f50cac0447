package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/logger"
	"github.com/lixenwraith/reel-spin/outcome"
	"github.com/lixenwraith/reel-spin/parameter"
	"github.com/lixenwraith/reel-spin/spin"
)

// SoundManager turns controller events into sound cues
// All methods are safe without a working audio device
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	mixer       *beep.Mixer
	whir        *beep.Ctrl
	initialized bool
	played      [cueCount]int
	log         *zap.Logger
}

var (
	_ spin.Listener     = (*SoundManager)(nil)
	_ spin.StopListener = (*SoundManager)(nil)
)

// NewSoundManager creates a manager; Initialize opens the device
func NewSoundManager(log *zap.Logger) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		master: parameter.AudioMasterVolume,
		mixer:  &beep.Mixer{},
		log:    logger.OrNop(log).Named("audio"),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("speaker ready", zap.Int("rate", int(sm.rate)))
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopWhirLocked()
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues a one-shot cue
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := NewCue(c, sm.rate, sm.master)
	if s == nil {
		return
	}
	sm.played[c]++
	sm.add(s)
}

// Played returns how many times c was queued
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}

// Whirring reports whether the spin loop is audible
func (sm *SoundManager) Whirring() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.whir != nil && !sm.whir.Paused
}

func (sm *SoundManager) startWhirLocked() {
	if !sm.initialized || (sm.whir != nil && !sm.whir.Paused) {
		return
	}
	sm.whir = &beep.Ctrl{Streamer: newVolume(newWhir(sm.rate), sm.master)}
	sm.add(sm.whir)
}

func (sm *SoundManager) stopWhirLocked() {
	if sm.whir == nil {
		return
	}
	// A Ctrl with a nil streamer drains and the mixer drops it
	speaker.Lock()
	sm.whir.Paused = true
	sm.whir.Streamer = nil
	speaker.Unlock()
	sm.whir = nil
}

// add appends to the mixer under the speaker lock once the device is running
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PhaseChanged drives the whir loop and the lock tick
func (sm *SoundManager) PhaseChanged(_, to spin.Phase, _ uint64) {
	switch to {
	case spin.PhaseSpinning:
		sm.Play(CueSpin)
		sm.mu.Lock()
		sm.startWhirLocked()
		sm.mu.Unlock()
	case spin.PhaseAligning:
		sm.mu.Lock()
		sm.stopWhirLocked()
		sm.mu.Unlock()
	case spin.PhaseSettling:
		sm.Play(CueSettle)
	}
}

// SpinStopped plays the stop clunk
func (sm *SoundManager) SpinStopped(uint64, float64) {
	sm.Play(CueStop)
}

// OutcomeReady plays the win chime
func (sm *SoundManager) OutcomeReady(outcome.Outcome) {
	sm.Play(CueWin)
}
