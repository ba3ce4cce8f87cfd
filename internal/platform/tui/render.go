package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrixcode/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorMint:          lipgloss.NewStyle().Foreground(lipgloss.Color("121")),
	core.ColorLime:          lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorForest:        lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorDarkGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorAmber:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorIce:           lipgloss.NewStyle().Foreground(lipgloss.Color("195")),
	core.ColorSteel:         lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
	core.ColorNavy:          lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorSilver:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorDimGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorCharcoal:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
}

// styleFor returns the lipgloss style for a color, falling back to the
// default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each cell takes cellWidth terminal columns. Adjacent cells with the same
// color are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, cellWidth int) string {
	cellWidth = core.Max(cellWidth, 1)
	pad := strings.Repeat(" ", cellWidth-1)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*cellWidth*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				run.WriteString(pad)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// PlainScreen renders the buffer without styling, with the same cell
// spacing as RenderScreen.
func PlainScreen(s *core.Screen, cellWidth int) string {
	cellWidth = core.Max(cellWidth, 1)
	pad := strings.Repeat(" ", cellWidth-1)

	lines := make([]string, s.Height())
	for y := range s.Height() {
		var sb strings.Builder
		for x := range s.Width() {
			sb.WriteRune(s.Get(x, y))
			sb.WriteString(pad)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}
