// matrixcode is a terminal clock drawn over a falling-code animation.
//
// Usage:
//
//	matrixcode                          - Run the clock (same as 'run')
//	matrixcode run                      - Run the clock
//	matrixcode preview --ticks 10       - Print the grid after N simulated seconds
//	matrixcode themes                   - List color themes
//	matrixcode config                   - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.matrixcode, ./configs)
//	--seed <value>     - Generator seed (default derived from the clock)
//	--theme <id>       - Color theme
//	--12h              - 12-hour clock
//	--separator        - Blink a separator between hours and minutes
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int32
	flagTheme     string
	flagTwelve    bool
	flagSeparator bool
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matrixcode",
	Short: "Matrix Code - a falling-code clock for your terminal",
	Long: `Matrix Code draws the time in the middle of a small grid of falling
glyphs, refreshed once per second.

Available commands:
  run      - Run the clock (default)
  preview  - Print the grid after a number of simulated seconds
  themes   - List color themes
  config   - Print the default configuration

Examples:
  matrixcode
  matrixcode --12h --separator
  matrixcode --theme amber
  matrixcode preview --start 14:05:30 --ticks 20 --seed 0`,
	Run: runClock,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int32Var(&flagSeed, "seed", 0, "Generator seed (default: derived from the current time)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (see 'matrixcode themes')")
	rootCmd.PersistentFlags().BoolVar(&flagTwelve, "12h", false, "Use 12-hour clock")
	rootCmd.PersistentFlags().BoolVar(&flagSeparator, "separator", false, "Blink a separator between hours and minutes")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}
