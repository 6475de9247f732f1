package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()
	opts := tui.Options{
		Store:      store,
		Logger:     logger,
		HoldWindow: holdWindow(),
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.LevelID == "" {
			break
		}

		// Every run gets a fresh simulation
		game, err := registry.Create(menuResult.LevelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
			continue
		}

		model, err := tui.RunModel(game, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
			continue
		}
		if model.IsQuitting() {
			break
		}
		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
