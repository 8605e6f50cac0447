package render

import (
	"fmt"

	"github.com/lixenwraith/reel-spin/status"
)

// HUDLine formats the session counters for the bottom row
func HUDLine(reg *status.Registry) string {
	if reg == nil {
		return ""
	}
	last := reg.Strings.Get(status.KeyLastSymbol).Load()
	if last == "" {
		last = "-"
	}
	return fmt.Sprintf("spins %d  stops %d  last %s $%.2f  total $%.2f  frames %d",
		reg.Ints.Get(status.KeySpins).Load(),
		reg.Ints.Get(status.KeyStops).Load(),
		last,
		reg.Floats.Get(status.KeyLastPayout).Get(),
		reg.Floats.Get(status.KeyTotalPayout).Get(),
		reg.Ints.Get(status.KeyFrames).Load(),
	)
}
