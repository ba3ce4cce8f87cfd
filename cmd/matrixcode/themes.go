package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrixcode/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all color themes",
	Long:  `Shows a list of all color themes that can be passed to --theme.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := theme.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print themes
	for _, t := range themes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'matrixcode --theme <id>' to use a theme.")
}
