package vmath

import "math"

// EaseInOutExpo maps linear progress x in [0,1] onto an exponential in/out curve
// Slow start, sharp middle, long settle; callers clamp x before calling
func EaseInOutExpo(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return (2 - math.Pow(2, -20*x+10)) / 2
	}
}

// Clamp01 limits x to [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// RoundToGrid returns the nearest multiple of pitch, halves rounding up
func RoundToGrid(x, pitch float64) float64 {
	return math.Floor(x/pitch+0.5) * pitch
}
