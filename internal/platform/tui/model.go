package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrixcode/internal/config"
	"github.com/vovakirdan/matrixcode/internal/core"
	"github.com/vovakirdan/matrixcode/internal/engine"
	"github.com/vovakirdan/matrixcode/internal/prng"
	"github.com/vovakirdan/matrixcode/internal/theme"
)

// Model is the Bubble Tea model running the clock.
type Model struct {
	engine    *engine.Engine
	grid      *GridRenderer
	clock     engine.TimeSource
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	cellWidth int
	width     int
	height    int
	ticks     int
	quitting  bool
}

// NewModel builds the engine and its screen from the configuration.
// A nil clock uses the system clock; a nil logger discards output.
func NewModel(cfg config.Config, rc core.RuntimeConfig, clock engine.TimeSource, logger *log.Logger) (Model, error) {
	if clock == nil {
		clock = engine.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	th, err := theme.Get(cfg.Display.Theme)
	if err != nil {
		return Model{}, err
	}

	seed := rc.Seed
	if !rc.SeedSet {
		seed = engine.SeedValue(clock.Now())
	}

	opts := cfg.EngineOptions()
	screen := core.NewScreen(opts.Cols, opts.Rows)
	grid := NewGridRenderer(screen, th, opts.Frames)

	e, err := engine.New(opts, cfg, prng.New(seed), grid)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create engine: %w", err)
	}
	grid.PaintBand(e)

	logger.Info("engine ready",
		"rows", opts.Rows, "cols", opts.Cols, "frames", opts.Frames,
		"seed", seed, "theme", th.ID, "12h", e.TwelveHour())

	h := help.New()
	h.ShowAll = false

	return Model{
		engine:    e,
		grid:      grid,
		clock:     clock,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      h,
		cellWidth: core.Max(cfg.Display.CellWidth, 1),
		width:     rc.ScreenW,
		height:    rc.ScreenH,
	}, nil
}

// Init starts the tick loop with an immediate first tick.
func (m Model) Init() tea.Cmd {
	return immediateTick
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only affect the front end.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick advances the engine with the current time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	ts := m.clock.Now()
	res := m.engine.Tick(ts)
	m.ticks++

	m.logger.Debug("tick",
		"time", fmt.Sprintf("%02d:%02d:%02d", ts.Hour, ts.Minute, ts.Second),
		"spawned", res.Spawned, "wasted", res.Wasted,
		"expired", res.Expired, "active", m.engine.ActiveCount())
	if res.ClockUpdated {
		m.logger.Info("clock updated", "hour", ts.Hour, "minute", ts.Minute)
	}

	return m, tickCmd()
}

// saveScreenshot writes the current grid as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".matrixcode", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	filename := fmt.Sprintf("matrixcode_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(PlainScreen(m.grid.Screen(), m.cellWidth)+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	grid := RenderScreen(m.grid.Screen(), m.cellWidth)
	footer := m.help.View(m.keys)

	if m.width <= 0 || m.height <= 0 {
		return grid + "\n\n" + footer
	}

	body := lipgloss.Place(m.width, core.Max(m.height-lipgloss.Height(footer), 1),
		lipgloss.Center, lipgloss.Center, grid)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// Frame returns the grid alone, styled or as plain text.
func (m Model) Frame(styled bool) string {
	if styled {
		return RenderScreen(m.grid.Screen(), m.cellWidth)
	}
	return PlainScreen(m.grid.Screen(), m.cellWidth)
}

// Engine returns the running engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Ticks returns how many ticks have been processed.
func (m Model) Ticks() int {
	return m.ticks
}

// Run starts the Bubble Tea program.
func Run(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, nil, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
