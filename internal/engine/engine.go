package engine

import (
	"fmt"

	"github.com/vovakirdan/matrixcode/internal/prng"
)

// glyphCount is the size of the lowercase alphabet used for spawned glyphs.
const glyphCount = 26

// unknownMinute forces the first tick to render the clock digits.
const unknownMinute = -1

// separator visibility as last rendered
const (
	separatorUnknown = iota
	separatorHidden
	separatorShown
)

// Engine owns the grid and clock state. It is driven by one Tick per
// second and is not safe for concurrent use.
type Engine struct {
	opts       Options
	twelveHour bool
	rng        *prng.PRNG
	out        Renderer

	cells      []Cell // row-major, index = row*Cols + col
	bandRow    int
	bandCenter int

	last      Timestamp
	separator int
}

// New builds an engine with every cell blank. The reserved band is placed
// in the middle row, centred on the middle column. The clock format is read
// from format once.
func New(opts Options, format ClockFormatSource, rng *prng.PRNG, r Renderer) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if format == nil || rng == nil || r == nil {
		return nil, fmt.Errorf("%w: format, rng and renderer are required", ErrNilCollaborator)
	}
	if opts.SeparatorGlyph == 0 {
		opts.SeparatorGlyph = ':'
	}

	e := &Engine{
		opts:       opts,
		twelveHour: format.Use12Hour(),
		rng:        rng,
		out:        r,
		cells:      make([]Cell, opts.Rows*opts.Cols),
		bandRow:    opts.Rows / 2,
		bandCenter: opts.Cols / 2,
		last:       Timestamp{Hour: unknownMinute, Minute: unknownMinute, Second: unknownMinute},
		separator:  separatorUnknown,
	}

	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Cols; col++ {
			cell := &e.cells[e.index(row, col)]
			cell.Glyph = ' '
			cell.Overlay = NoOverlay
			if e.inBand(row, col) {
				cell.Role = RoleReserved
			}
			r.Clear(row, col)
		}
	}

	return e, nil
}

// Tick advances every animation by one step, spawns new glyphs and
// refreshes the clock readout for ts.
func (e *Engine) Tick(ts Timestamp) TickResult {
	var res TickResult

	e.decayPass(&res)
	e.spawnPass(&res)

	if ts.Minute != e.last.Minute {
		e.renderClock(ts)
		res.ClockUpdated = true
	}
	if e.opts.Separator {
		res.SeparatorUpdated = e.renderSeparator(ts.Second)
	}

	e.last = ts
	return res
}

// decayPass counts every active cell down by one, in row-major order.
func (e *Engine) decayPass(res *TickResult) {
	for row := 0; row < e.opts.Rows; row++ {
		for col := 0; col < e.opts.Cols; col++ {
			cell := &e.cells[e.index(row, col)]
			if cell.Decay <= 0 {
				continue
			}
			cell.Decay--
			if cell.Decay == 0 {
				cell.Glyph = ' '
				cell.Overlay = NoOverlay
				e.out.Clear(row, col)
				res.Expired++
				continue
			}
			cell.Overlay = e.frameFor(cell.Decay)
			e.out.SetOverlay(row, col, cell.Overlay)
			res.Animated++
		}
	}
}

// spawnPass makes 1..SpawnBurst attempts at random cells. An attempt that
// lands on a reserved or active cell is dropped, so density falls off as
// the grid fills.
func (e *Engine) spawnPass(res *TickResult) {
	attempts := 1 + e.rng.Intn(e.opts.SpawnBurst)
	for i := 0; i < attempts; i++ {
		row := e.rng.Intn(e.opts.Rows)
		col := e.rng.Intn(e.opts.Cols)

		cell := &e.cells[e.index(row, col)]
		if cell.Role != RoleFree || cell.Decay != 0 {
			res.Wasted++
			continue
		}

		cell.Decay = e.opts.Frames + 1
		cell.Glyph = rune('a' + e.rng.Intn(glyphCount))
		cell.Overlay = NoOverlay
		e.out.SetGlyph(row, col, cell.Glyph)
		e.out.SetOverlay(row, col, NoOverlay)
		res.Spawned++
	}
}

// frameFor maps remaining decay to a glow frame: decay F is frame 0, the
// brightest, and decay 1 is the last frame.
func (e *Engine) frameFor(decay int) Overlay {
	return Overlay(e.opts.Frames - decay)
}

// renderClock writes HH and MM into the four cells around the band centre.
func (e *Engine) renderClock(ts Timestamp) {
	hour := DisplayHour(ts.Hour, e.twelveHour)
	e.setReserved(e.bandCenter-2, rune('0'+hour/10))
	e.setReserved(e.bandCenter-1, rune('0'+hour%10))
	e.setReserved(e.bandCenter+1, rune('0'+ts.Minute/10))
	e.setReserved(e.bandCenter+2, rune('0'+ts.Minute%10))
}

// renderSeparator shows the separator on even seconds and hides it on odd
// ones. Returns true if the visible state changed.
func (e *Engine) renderSeparator(second int) bool {
	want := separatorHidden
	glyph := ' '
	if second%2 == 0 {
		want = separatorShown
		glyph = e.opts.SeparatorGlyph
	}
	if want == e.separator {
		return false
	}
	e.separator = want
	e.setReserved(e.bandCenter, glyph)
	return true
}

func (e *Engine) setReserved(col int, glyph rune) {
	e.cells[e.index(e.bandRow, col)].Glyph = glyph
	e.out.SetGlyph(e.bandRow, col, glyph)
}

// DisplayHour converts a 0-23 hour for display. In 12-hour mode 0 becomes
// 12 and 13-23 wrap to 1-11.
func DisplayHour(hour int, twelve bool) int {
	if !twelve {
		return hour
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return hour
}

func (e *Engine) index(row, col int) int {
	return row*e.opts.Cols + col
}

func (e *Engine) inBand(row, col int) bool {
	return row == e.bandRow &&
		col >= e.bandCenter-e.opts.BandHalfWidth &&
		col <= e.bandCenter+e.opts.BandHalfWidth
}

// InBounds reports whether (row, col) is on the grid.
func (e *Engine) InBounds(row, col int) bool {
	return row >= 0 && row < e.opts.Rows && col >= 0 && col < e.opts.Cols
}

// Cell returns a copy of the cell at (row, col).
func (e *Engine) Cell(row, col int) (Cell, bool) {
	if !e.InBounds(row, col) {
		return Cell{}, false
	}
	return e.cells[e.index(row, col)], true
}

// IsReserved reports whether (row, col) belongs to the clock band.
func (e *Engine) IsReserved(row, col int) bool {
	return e.InBounds(row, col) && e.inBand(row, col)
}

// Band returns the reserved row and its first and last columns.
func (e *Engine) Band() (row, first, last int) {
	return e.bandRow, e.bandCenter - e.opts.BandHalfWidth, e.bandCenter + e.opts.BandHalfWidth
}

// ActiveCount returns the number of cells currently animating.
func (e *Engine) ActiveCount() int {
	n := 0
	for _, c := range e.cells {
		if c.Decay > 0 {
			n++
		}
	}
	return n
}

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.opts.Rows }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.opts.Cols }

// Frames returns the number of glow frames.
func (e *Engine) Frames() int { return e.opts.Frames }

// TwelveHour reports whether the readout uses 12-hour time.
func (e *Engine) TwelveHour() bool { return e.twelveHour }

// Last returns the timestamp of the most recent tick.
func (e *Engine) Last() Timestamp { return e.last }
