package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the top 10 scores for the specified level, followed by
how past runs ended and the most recent runs.

Examples:
  platformer scores meadow
  platformer scores canyon --recent 10`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	printOutcomes(store, levelID)
	printRecentRuns(store, levelID)
}

// printOutcomes prints how the level's runs ended.
func printOutcomes(store *storage.Store, levelID string) {
	stats, err := store.GetLevelStats(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	counts, err := store.OutcomeCounts(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving outcomes: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	fmt.Printf("Victories: %d   Falls: %d   Defeats: %d\n",
		counts[storage.OutcomeVictory], counts[storage.OutcomeFall], counts[storage.OutcomeDefeat])
	if stats.BestTime > 0 {
		fmt.Printf("Fastest victory: %s\n", stats.BestTime.Round(100*time.Millisecond))
	}
}

// printRecentRuns lists the latest runs, newest first.
func printRecentRuns(store *storage.Store, levelID string) {
	if flagRecent <= 0 {
		return
	}
	runs, err := store.RecentRuns(levelID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %s\n", "Date", "Outcome", "Score", "Lives", "Time")
	for _, run := range runs {
		fmt.Printf("  %-16s  %-8s  %-7d  %-5d  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.Outcome,
			run.Score,
			run.Lives,
			run.Duration.Round(100*time.Millisecond),
		)
	}
}
