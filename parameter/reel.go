package parameter

import "time"

// Reel Geometry
const (
	// TileSize is the pixel pitch between adjacent tile anchors
	TileSize = 156

	// VisibleCount is the number of tiles shown inside the reel window
	VisibleCount = 5
)

// Spin Motion
const (
	// SpinDuration is the full spin-and-decelerate time before alignment
	SpinDuration = 4 * time.Second

	// SpinBaseSpeed is the per-frame pixel step at zero progress
	SpinBaseSpeed = 100.0

	// SpinLateBoostThreshold is the progress after which the late-phase boost applies
	SpinLateBoostThreshold = 0.5

	// SpinLateBoostOffset keeps the reel visibly moving while the eased curve flattens
	SpinLateBoostOffset = 16.0

	// SpinLateBoostCeiling is the progress at which the boosted step reaches zero
	SpinLateBoostCeiling = 1.2
)

// Alignment
const (
	// AlignThreshold is the pixel distance under which a tile snaps to the grid
	AlignThreshold = 2.0

	// AlignRate is the fraction of the remaining distance corrected per frame
	AlignRate = 0.2
)

// Settle & Feedback
const (
	// SettleDelay separates alignment completion from outcome display
	SettleDelay = 500 * time.Millisecond

	// RevealStep is the win frame scale increment per frame
	RevealStep = 0.1

	// IndicatorX, IndicatorY anchor the winning symbol indicator
	IndicatorX = 600.0
	IndicatorY = 100.0

	// MessageGap is the horizontal gap between indicator and payout message
	MessageGap = 30.0

	// MessageBaselineDiv places the message at indicator height / MessageBaselineDiv
	MessageBaselineDiv = 2.5

	// PayoutCeiling bounds the random payer output [0, PayoutCeiling)
	PayoutCeiling = 100.0
)

// DefaultSymbols are the ten reel symbol keys
var DefaultSymbols = []string{
	"10", "9", "ace", "axe", "brain", "crow", "jack", "king", "queen", "rifle",
}

// AlignWarnFrames logs a liveness warning when alignment has not converged after this many frames
const AlignWarnFrames = 600
