package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrixcode/internal/config"
	"github.com/vovakirdan/matrixcode/internal/core"
	"github.com/vovakirdan/matrixcode/internal/theme"
)

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Display.Theme = flagTheme
	}
	if flags.Changed("12h") {
		cfg.Clock.TwelveHour = flagTwelve
	}
	if flags.Changed("separator") {
		cfg.Clock.Separator = flagSeparator
	}
	if cfg.Display.Theme == "" {
		cfg.Display.Theme = theme.DefaultID
	}

	if err := cfg.Validate(theme.Exists); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeConfig resolves the seed flag. Seed 0 is a valid explicit seed, so
// the flag's presence decides.
func runtimeConfig(cmd *cobra.Command, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		SeedSet: cmd.Flags().Changed("seed"),
	}
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "matrixcode",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens the --log-file target, or returns io.Discard when no
// file is set. The returned close function is always safe to call.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	return f, func() { f.Close() }, nil
}
