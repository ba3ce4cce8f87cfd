package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrixcode/internal/engine"
	"github.com/vovakirdan/matrixcode/internal/platform/tui"
)

var (
	flagTicks int
	flagStart string
	flagPlain bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the grid after simulated seconds",
	Long: `Run the engine without a terminal UI, feeding it a simulated clock
that starts at --start and advances one second per tick, then print the grid.

With the same --seed, --start and --ticks the output is always identical.
Without --seed the seed is derived from the start time.

Examples:
  matrixcode preview
  matrixcode preview --start 23:59:55 --ticks 10 --12h
  matrixcode preview --seed 0 --start 14:05:30 --ticks 1 --plain`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagTicks, "ticks", 10, "Number of one-second ticks to simulate")
	previewCmd.Flags().StringVar(&flagStart, "start", "", "Start time HH:MM:SS (default: now)")
	previewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

// steppingClock returns consecutive seconds starting at base.
type steppingClock struct {
	base time.Time
	step int
}

func (c *steppingClock) Now() engine.Timestamp {
	ts := engine.FromTime(c.base.Add(time.Duration(c.step) * time.Second))
	c.step++
	return ts
}

func runPreview(cmd *cobra.Command, args []string) {
	if flagTicks < 1 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must be at least 1")
		os.Exit(1)
	}

	start, err := parseStart(flagStart, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := runtimeConfig(cmd, 0, 0)
	if !rc.SeedSet {
		rc.Seed = engine.SeedValue(engine.FromTime(start))
		rc.SeedSet = true
	}

	model, err := tui.NewModel(cfg, rc, &steppingClock{base: start}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < flagTicks; i++ {
		updated, _ := model.Update(tui.TickMsg(start))
		model = updated.(tui.Model)
	}

	fmt.Println(model.Frame(!flagPlain))
}

// parseStart parses an HH:MM:SS start time on now's date. An empty value
// means now.
func parseStart(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --start %q, expected HH:MM:SS: %w", value, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
}
