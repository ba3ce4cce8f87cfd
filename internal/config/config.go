// Package config provides YAML-based configuration loading for the
// matrixcode clock.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/matrixcode/internal/engine"
)

// ErrInvalidDisplay is returned by Validate for unusable display settings.
var ErrInvalidDisplay = errors.New("config: invalid display settings")

// Config contains all user-adjustable settings.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Clock     ClockConfig     `yaml:"clock"`
	Display   DisplayConfig   `yaml:"display"`
}

// GridConfig defines the grid geometry.
type GridConfig struct {
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	BandHalfWidth int `yaml:"band_half_width"`
}

// AnimationConfig defines the falling-glyph animation.
type AnimationConfig struct {
	Frames     int `yaml:"frames"`
	SpawnBurst int `yaml:"spawn_burst"`
}

// ClockConfig defines the clock readout.
type ClockConfig struct {
	TwelveHour     bool   `yaml:"twelve_hour"`
	Separator      bool   `yaml:"separator"`
	SeparatorGlyph string `yaml:"separator_glyph"`
}

// DisplayConfig defines how the grid is drawn in the terminal.
type DisplayConfig struct {
	Theme     string `yaml:"theme"`
	CellWidth int    `yaml:"cell_width"` // terminal columns per grid cell
}

// Use12Hour reports whether the clock uses 12-hour display.
func (c Config) Use12Hour() bool {
	return c.Clock.TwelveHour
}

// SeparatorRune returns the first rune of the separator glyph, or ':' if
// none is configured.
func (c Config) SeparatorRune() rune {
	for _, r := range c.Clock.SeparatorGlyph {
		return r
	}
	return ':'
}

// Validate checks display settings. knownTheme reports whether a theme ID
// exists; it may be nil to skip that check.
func (c Config) Validate(knownTheme func(string) bool) error {
	if c.Display.CellWidth < 1 {
		return fmt.Errorf("%w: cell_width %d", ErrInvalidDisplay, c.Display.CellWidth)
	}
	if knownTheme != nil && !knownTheme(c.Display.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidDisplay, c.Display.Theme)
	}
	return nil
}

// EngineOptions converts the grid, animation and clock sections to engine
// options.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Rows:           c.Grid.Rows,
		Cols:           c.Grid.Cols,
		Frames:         c.Animation.Frames,
		SpawnBurst:     c.Animation.SpawnBurst,
		BandHalfWidth:  c.Grid.BandHalfWidth,
		Separator:      c.Clock.Separator,
		SeparatorGlyph: c.SeparatorRune(),
	}
}
