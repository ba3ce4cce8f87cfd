// Package tui provides the Bubble Tea front end for the matrix clock.
// It owns the terminal loop, the one-second tick source and styling; all
// animation logic lives in the engine package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to advance the engine.
type TickMsg time.Time

// tickCmd returns a command that fires on the next wall-clock second
// boundary, so the clock digits change together with the system clock.
func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// immediateTick fires a tick right away so the grid is drawn on startup.
func immediateTick() tea.Msg {
	return TickMsg(time.Now())
}
