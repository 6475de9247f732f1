package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back (when paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Three lives, slower enemies
  normal - Config as-is
  hard   - One life, faster enemies, shorter power-ups

Examples:
  platformer play meadow
  platformer play canyon --difficulty easy
  platformer play meadow --config ./my-platformer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig sizes the runtime config to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the scores database; the game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	// Check if level exists
	if !registry.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
		os.Exit(1)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		HoldWindow: holdWindow(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
