package theme

import "github.com/vovakirdan/matrixcode/internal/core"

// DefaultID is the theme used when none is configured.
const DefaultID = "green"

func init() {
	Register(Theme{
		ID:    "green",
		Title: "Classic green",
		Head:  core.ColorBrightWhite,
		Digit: core.ColorBrightGreen,
		Trail: []core.Color{core.ColorMint, core.ColorLime, core.ColorBrightGreen, core.ColorGreen, core.ColorForest, core.ColorDarkGreen},
	})
	Register(Theme{
		ID:    "amber",
		Title: "Amber phosphor",
		Head:  core.ColorBrightYellow,
		Digit: core.ColorGold,
		Trail: []core.Color{core.ColorGold, core.ColorAmber, core.ColorOrange, core.ColorBrown},
	})
	Register(Theme{
		ID:    "ice",
		Title: "Ice blue",
		Head:  core.ColorBrightWhite,
		Digit: core.ColorBrightCyan,
		Trail: []core.Color{core.ColorIce, core.ColorBrightCyan, core.ColorSteel, core.ColorNavy},
	})
	Register(Theme{
		ID:    "mono",
		Title: "Monochrome",
		Head:  core.ColorBrightWhite,
		Digit: core.ColorWhite,
		Trail: []core.Color{core.ColorSilver, core.ColorGray, core.ColorDimGray, core.ColorCharcoal},
	})
}
