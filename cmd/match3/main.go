// match3 is a terminal match-3 puzzle game.
//
// Usage:
//
//	match3 play              - Pick a level and play
//	match3 play <level>      - Play a specific level directly
//	match3 levels            - List available levels
//	match3 scores <level>    - Show recorded results for a level
//	match3 inventory         - Show the saved power-up inventory
//	match3 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.match3/results.db)
//	--config <path>  - Path to custom rules YAML
//	--levels <dir>   - Directory of extra level files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match Three - a tile-matching puzzle in your terminal",
	Long: `Match Three is a terminal puzzle game: swap adjacent tiles to line up
three or more of a kind, clear objectives before the moves run out, and
spend power-ups when the board fights back.

Available commands:
  play       - Play a level (or pick one from the menu)
  levels     - Show all available levels
  scores     - View recorded results for a level
  inventory  - Show the saved power-up inventory
  serve      - Start SSH server for remote play

Examples:
  match3 play
  match3 play quarry
  match3 play quarry --difficulty hard
  match3 levels
  match3 scores quarry
  match3 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(serveCmd)
}
