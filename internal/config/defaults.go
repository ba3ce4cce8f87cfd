package config

import (
	_ "embed"
)

//go:embed defaults/matrixcode.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:          7,
			Cols:          9,
			BandHalfWidth: 2,
		},
		Animation: AnimationConfig{
			Frames:     7,
			SpawnBurst: 3,
		},
		Clock: ClockConfig{
			TwelveHour:     false,
			Separator:      false,
			SeparatorGlyph: ":",
		},
		Display: DisplayConfig{
			Theme:     "green",
			CellWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
