package parameter

// Terminal cell geometry in layout pixels
const (
	CellWidthPx  = 14.0
	CellHeightPx = 26.0
)

// Vertical placement in layout pixels
const (
	ReelTopPx     = 312.0
	ButtonGapRows = 1 // blank rows between reel and spin button
	HUDGapRows    = 1 // blank rows between spin button and HUD
)

// Spin button labels
const (
	ButtonTextSpin = "[  SPIN  ]"
	ButtonTextStop = "[  STOP  ]"
	ButtonTextBusy = "[   ..   ]"
)

// Title shown on the first row
const TitleText = " reel-spin  space/enter: spin/stop  q: quit "
