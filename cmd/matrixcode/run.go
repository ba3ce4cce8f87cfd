package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrixcode/internal/core"
	"github.com/vovakirdan/matrixcode/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the clock",
	Long: `Run the falling-code clock in the terminal.

Controls:
  Ctrl+S     - Save a plain-text screenshot to ~/.matrixcode/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

The terminal is taken over by the clock, so logs go to --log-file.

Examples:
  matrixcode run
  matrixcode run --theme ice --12h
  matrixcode run --log-file /tmp/matrixcode.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runClock,
}

func runClock(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(w)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame is centred
	defaults := core.DefaultConfig()
	width, height := defaults.ScreenW, defaults.ScreenH
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	runErr := tui.Run(cfg, runtimeConfig(cmd, width, height), logger)
	if runErr != nil {
		logger.Error("clock stopped", "error", runErr)
	}

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running clock: %v\n", runErr)
		os.Exit(1)
	}
}
