package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbReelWindow = tcell.NewRGBColor(36, 40, 59)    // Slightly raised panel
	RgbTileBorder = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbWinFrame   = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbMessage    = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbHUD        = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbTitle      = tcell.NewRGBColor(255, 255, 255) // White
	RgbButtonIdle = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbButtonStop = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbButtonBusy = tcell.NewRGBColor(80, 80, 80)    // Dim gray
)

// symbolPalette colors tile labels; a symbol keeps its color across spins
var symbolPalette = []tcell.Color{
	tcell.NewRGBColor(122, 162, 247), // Blue
	tcell.NewRGBColor(158, 206, 106), // Green
	tcell.NewRGBColor(224, 175, 104), // Orange
	tcell.NewRGBColor(187, 154, 247), // Purple
	tcell.NewRGBColor(247, 118, 142), // Red
	tcell.NewRGBColor(125, 207, 255), // Cyan
	tcell.NewRGBColor(255, 158, 100), // Peach
	tcell.NewRGBColor(192, 202, 245), // Lavender
}

// SymbolColor returns a stable palette color for a symbol name
func SymbolColor(symbol string) tcell.Color {
	var h uint32 = 2166136261
	for i := 0; i < len(symbol); i++ {
		h ^= uint32(symbol[i])
		h *= 16777619
	}
	return symbolPalette[h%uint32(len(symbolPalette))]
}
