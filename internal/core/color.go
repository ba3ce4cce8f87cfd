package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The shade ramps are used for glow trails.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Green ramp, brightest first
	ColorMint
	ColorLime
	ColorForest
	ColorDarkGreen

	// Amber ramp
	ColorGold
	ColorAmber
	ColorBrown

	// Blue ramp
	ColorIce
	ColorSteel
	ColorNavy

	// Gray ramp
	ColorSilver
	ColorDimGray
	ColorCharcoal
)
