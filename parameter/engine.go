package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame delta after stalls (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// InputQueueSize is the capacity of the terminal event channel
	InputQueueSize = 256
)

// Simulation
const (
	// SimFrameDelta is the fixed delta used by headless simulation
	SimFrameDelta = FrameUpdateInterval

	// SimMaxFrames guards headless runs against non-converging alignment
	SimMaxFrames = 10000

	// SimDefaultWorkers is the default worker pool size for batch simulation
	SimDefaultWorkers = 8
)
