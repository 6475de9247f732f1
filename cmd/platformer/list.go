package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any level files found in the levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Where each level came from
	source := make(map[string]string, len(allLevels))
	for _, lvl := range allLevels {
		source[lvl.ID] = "built-in"
		if lvl.FilePath != "" {
			source[lvl.ID] = lvl.FilePath
		}
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Source")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	// Print levels
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, source[g.ID])
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
