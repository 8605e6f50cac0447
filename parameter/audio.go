package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
	AudioMasterVolume   = 0.6
)

// Spin start whoosh
const (
	SpinCueDuration = 300 * time.Millisecond
	SpinCueAttack   = 150 * time.Millisecond
	SpinCueRelease  = 150 * time.Millisecond
	SpinCueVolume   = 0.4
)

// Stop request clunk
const (
	StopCueDuration = 90 * time.Millisecond
	StopCueAttack   = 2 * time.Millisecond
	StopCueRelease  = 60 * time.Millisecond
	StopCueFreq     = 90.0 // Hz
	StopCueVolume   = 0.5
)

// Reel lock tick when alignment converges
const (
	SettleCueDuration = 40 * time.Millisecond
	SettleCueAttack   = 1 * time.Millisecond
	SettleCueRelease  = 30 * time.Millisecond
	SettleCueFreq     = 660.0 // Hz
	SettleCueVolume   = 0.3
)

// Win coin, two notes
const (
	WinCueNote1Duration = 80 * time.Millisecond
	WinCueNote2Duration = 280 * time.Millisecond
	WinCueAttack        = 5 * time.Millisecond
	WinCueNote1Release  = 40 * time.Millisecond
	WinCueNote2Release  = 200 * time.Millisecond
	WinCueNote1Freq     = 987.77  // B5
	WinCueNote2Freq     = 1318.51 // E6
	WinCueVolume        = 0.5
)

// Reel whir loop while spinning
const (
	WhirCycle   = 2 * time.Second
	WhirLowFreq = 80.0  // Hz
	WhirSpan    = 120.0 // Hz above low
	WhirVolume  = 0.15
)
