package engine

import (
	"errors"
	"fmt"
)

// Validation errors returned by New.
var (
	ErrInvalidGrid      = errors.New("engine: invalid grid dimensions")
	ErrInvalidBand      = errors.New("engine: invalid reserved band")
	ErrInvalidAnimation = errors.New("engine: invalid animation parameters")
	ErrNilCollaborator  = errors.New("engine: nil collaborator")
)

// Options fixes the grid geometry and animation parameters for the
// lifetime of an engine.
type Options struct {
	Rows          int  // grid rows
	Cols          int  // grid columns
	Frames        int  // glow frames per animation (F)
	SpawnBurst    int  // up to this many spawn attempts per tick (K)
	BandHalfWidth int  // reserved band spans 2k+1 cells (k)
	Separator     bool // blink a separator between hours and minutes
	// SeparatorGlyph is shown on even seconds when Separator is set.
	SeparatorGlyph rune
}

// DefaultOptions returns the 7x9 layout with a 7-frame glow.
func DefaultOptions() Options {
	return Options{
		Rows:           7,
		Cols:           9,
		Frames:         7,
		SpawnBurst:     3,
		BandHalfWidth:  2,
		Separator:      false,
		SeparatorGlyph: ':',
	}
}

// Validate checks that the options describe a usable grid.
func (o Options) Validate() error {
	if o.Rows < 1 || o.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, o.Rows, o.Cols)
	}
	if o.BandHalfWidth < 2 {
		return fmt.Errorf("%w: half width %d, need at least 2", ErrInvalidBand, o.BandHalfWidth)
	}
	if width := 2*o.BandHalfWidth + 1; width > o.Cols {
		return fmt.Errorf("%w: width %d exceeds %d columns", ErrInvalidBand, width, o.Cols)
	}
	if o.Frames < 1 {
		return fmt.Errorf("%w: frames %d", ErrInvalidAnimation, o.Frames)
	}
	if o.SpawnBurst < 1 {
		return fmt.Errorf("%w: spawn burst %d", ErrInvalidAnimation, o.SpawnBurst)
	}
	return nil
}
