// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer list                    - List available levels
//	platformer play <level>            - Play a level
//	platformer menu                    - Start menu to pick levels interactively
//	platformer serve                   - Start SSH server for remote play
//	platformer scores <level>          - Show high scores and run outcomes
//	platformer levels validate <file>  - Check a YAML level file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom platformer config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
//	--levels-dir <path>   - Extra level files (default: ~/.arcade/levels)
//	--sprites <path>      - Sprite atlas YAML drawn over the built-in sprites
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/assets"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagLevelsDir  string
	flagSprites    string
)

// Set up by the root command before any subcommand runs.
var (
	logger    *log.Logger
	logFile   *os.File
	gameCfg   config.PlatformerConfig
	allLevels []levels.Level
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Run, jump and stomp in your terminal",
	Long: `TUI Platformer is a side-scrolling platformer that runs in your terminal.
Collect coins, stomp enemies and reach the flag at the end of each level.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run outcomes
  levels   - Work with level files

Examples:
  platformer list
  platformer play meadow
  platformer play canyon --difficulty hard
  platformer menu
  platformer serve --ssh :2222
  platformer scores meadow
  platformer levels validate ./my-level.yaml`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra level files (default ~/.arcade/levels)")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Sprite atlas YAML overriding built-in sprites")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup builds the logger, loads the configuration and registers every level.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	logger, err = newLogger(cmd == serveCmd)
	if err != nil {
		return err
	}

	gameCfg, err = config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.ParseDifficulty(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPlatformerPreset(&gameCfg, preset)
	}

	dir := flagLevelsDir
	if dir == "" {
		if dir, err = levels.DefaultUserDir(); err != nil {
			logger.Warn("user levels unavailable", "err", err)
		}
	}

	var skipped []error
	allLevels, skipped, err = levels.Catalog(dir)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		logger.Warn("skipping level file", "err", s)
	}

	sprites, err := spriteSource()
	if err != nil {
		return err
	}

	platformer.Register(allLevels, platformer.Options{
		Config: gameCfg,
		Assets: sprites,
		Logger: logger,
	})
	return nil
}

// spriteSource returns the built-in atlas, with --sprites layered on top.
// Keys missing from the user atlas fall through to the built-in sprites.
func spriteSource() (assets.Source, error) {
	if flagSprites == "" {
		return assets.DefaultAtlas(), nil
	}
	user, err := assets.LoadAtlasFile(flagSprites)
	if err != nil {
		return nil, err
	}
	logger.Debug("sprite atlas loaded", "path", flagSprites, "sprites", user.Len())
	return assets.Layered{user, assets.DefaultAtlas()}, nil
}

// newLogger builds the process logger. The local TUI owns the terminal,
// so it only logs when --log-file is set; the SSH server logs to stderr.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = logFile
	case toStderr:
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "platformer",
	}), nil
}

// holdWindow returns how long a key press keeps movement held.
func holdWindow() time.Duration {
	return time.Duration(gameCfg.Input.HoldMs) * time.Millisecond
}
