package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Work with level files",
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files for mistakes",
	Long: `Parse each level file and report every problem found: a missing
checkpoint, platforms without width, enemies riding platforms that do not
exist and hazards that overlap.

Copy a valid file into ~/.arcade/levels to make it playable.

Examples:
  platformer levels validate ./my-level.yaml
  platformer levels validate ~/.arcade/levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func init() {
	levelsCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		if err := validateFile(path); err != nil {
			failed++
			fmt.Printf("FAIL  %s\n", path)
			printProblems(err)
			continue
		}
		fmt.Printf("ok    %s\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level files failed validation\n", failed, len(args))
		os.Exit(1)
	}
}

func validateFile(path string) error {
	lvl, err := levels.LoadFile(path)
	if err != nil {
		return err
	}
	return levels.Validate(lvl.Def, lvl.Config(gameCfg))
}

// printProblems prints one line per joined error.
func printProblems(err error) {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		fmt.Printf("      %v\n", err)
		return
	}
	for _, e := range joined.Unwrap() {
		if errors.Is(e, levels.ErrInvalidLevel) {
			continue
		}
		printProblems(e)
	}
}
