package tui

import (
	"github.com/vovakirdan/matrixcode/internal/core"
	"github.com/vovakirdan/matrixcode/internal/engine"
	"github.com/vovakirdan/matrixcode/internal/theme"
)

// GridRenderer applies engine render instructions to a screen buffer,
// coloring cells from a theme. Grid rows map to screen y, columns to x.
type GridRenderer struct {
	screen *core.Screen
	theme  theme.Theme
	frames int
}

// NewGridRenderer creates a renderer drawing into screen.
func NewGridRenderer(screen *core.Screen, th theme.Theme, frames int) *GridRenderer {
	return &GridRenderer{
		screen: screen,
		theme:  th,
		frames: frames,
	}
}

// SetGlyph implements engine.Renderer.
func (g *GridRenderer) SetGlyph(row, col int, glyph rune) {
	g.screen.Set(col, row, glyph)
}

// SetOverlay implements engine.Renderer.
func (g *GridRenderer) SetOverlay(row, col int, frame engine.Overlay) {
	if frame == engine.NoOverlay {
		g.screen.SetColor(col, row, g.theme.Head)
		return
	}
	g.screen.SetColor(col, row, g.theme.FrameColor(int(frame), g.frames))
}

// Clear implements engine.Renderer.
func (g *GridRenderer) Clear(row, col int) {
	g.screen.ClearCell(col, row)
}

// PaintBand colors the reserved band with the theme's digit color. The
// engine never clears reserved cells after construction, so this is done
// once.
func (g *GridRenderer) PaintBand(e *engine.Engine) {
	row, first, last := e.Band()
	for col := first; col <= last; col++ {
		g.screen.SetColor(col, row, g.theme.Digit)
	}
}

// Screen returns the underlying buffer.
func (g *GridRenderer) Screen() *core.Screen {
	return g.screen
}
