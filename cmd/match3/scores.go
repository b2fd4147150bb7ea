package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show recorded results for a level",
	Long: `Display the top 10 results for the specified level, plus aggregate
statistics.

Examples:
  match3 scores quarry
  match3 scores orchard`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	lvl, err := levels.NewLoader(flagLevelsDir).LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'match3 levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - %s\n", lvl.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %s\n", "Rank", "Score", "Stars", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range results {
		outcome := "lost"
		if entry.Won {
			outcome = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %-7s  %s\n",
			i+1, entry.Score, strings.Repeat("*", entry.Stars), outcome, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetLevelStats(levelID); statsErr == nil && stats.Played > 0 {
		fmt.Printf("Played: %d  Wins: %d  Best: %d  Avg: %.0f\n",
			stats.Played, stats.Wins, stats.BestScore, stats.AvgScore)
	}
}
