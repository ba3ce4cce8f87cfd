// Package engine implements the falling-code grid: per-cell decay, random
// glyph spawning and the clock readout in the reserved band. It has no
// terminal dependencies; render output goes through the Renderer interface.
package engine

import "time"

// Role distinguishes cells open to spawning from the clock band.
type Role int

const (
	RoleFree Role = iota
	RoleReserved
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleFree:
		return "Free"
	case RoleReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}

// Overlay is an index into the glow frame sequence. Frame 0 is the
// brightest.
type Overlay int

// NoOverlay means the cell shows its glyph without a glow frame.
const NoOverlay Overlay = -1

// Cell is one grid position.
type Cell struct {
	Role    Role
	Decay   int  // 0 = idle, >0 = animating, counts down each tick
	Glyph   rune // ' ' when idle
	Overlay Overlay
}

// Active reports whether the cell is running a falling-glyph animation.
func (c Cell) Active() bool {
	return c.Decay > 0
}

// Timestamp is the subset of wall-clock time the engine consumes.
type Timestamp struct {
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
	YearDay int // 1-366
}

// FromTime converts a time.Time to a Timestamp in its own location.
func FromTime(t time.Time) Timestamp {
	return Timestamp{
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		YearDay: t.YearDay(),
	}
}

// SeedValue derives a generator seed from a timestamp, counting seconds
// since the start of the year.
func SeedValue(ts Timestamp) int32 {
	return int32(ts.YearDay*86400 + ts.Hour*3600 + ts.Minute*60 + ts.Second)
}

// TimeSource supplies the current time.
type TimeSource interface {
	Now() Timestamp
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() Timestamp {
	return FromTime(time.Now())
}

// ClockFormatSource reports whether the readout uses 12-hour time.
// It is read once when the engine is created.
type ClockFormatSource interface {
	Use12Hour() bool
}

// Clock24 is a ClockFormatSource for 24-hour display.
type Clock24 struct{}

// Use12Hour always returns false.
func (Clock24) Use12Hour() bool { return false }

// Clock12 is a ClockFormatSource for 12-hour display.
type Clock12 struct{}

// Use12Hour always returns true.
func (Clock12) Use12Hour() bool { return true }

// Renderer receives per-cell drawing instructions. Implementations must not
// fail observably; the engine never reads back from them.
type Renderer interface {
	// SetGlyph shows a character in the cell.
	SetGlyph(row, col int, glyph rune)
	// SetOverlay selects a glow frame, or removes it for NoOverlay.
	SetOverlay(row, col int, frame Overlay)
	// Clear blanks the cell and removes any overlay.
	Clear(row, col int)
}

// TickResult summarizes what a single tick changed.
type TickResult struct {
	Expired          int  // cells whose animation reached 0
	Animated         int  // cells that advanced to a new glow frame
	Spawned          int  // new falling glyphs
	Wasted           int  // spawn attempts that hit an ineligible cell
	ClockUpdated     bool // digit cells were rewritten
	SeparatorUpdated bool // separator glyph changed
}
