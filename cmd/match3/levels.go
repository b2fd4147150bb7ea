package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/levels"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows every available level: the built-ins plus any files found in
the --levels directory. A file level with the same ID replaces the
built-in.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	lvls, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Name", "Board", "Moves", "Objectives")
	fmt.Printf("  %-*s  %-20s  %-7s  %-6s  %s\n", maxIDLen, "--", "----", "-----", "-----", "----------")

	for _, lvl := range lvls {
		board := fmt.Sprintf("%dx%d", lvl.BoardWidth, lvl.BoardHeight)
		fmt.Printf("  %-*s  %-20s  %-7s  %-6d  %s\n",
			maxIDLen, lvl.ID, lvl.Name, board, lvl.MoveBudget, formatObjectives(lvl.Objectives))
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play a level.")
}

// formatObjectives renders objectives as "red:6 yellow:4", sorted by type.
func formatObjectives(objectives map[match3.TileType]int) string {
	types := make([]match3.TileType, 0, len(objectives))
	for tt := range objectives {
		types = append(types, tt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	parts := make([]string, len(types))
	for i, tt := range types {
		parts[i] = fmt.Sprintf("%s:%d", tt, objectives[tt])
	}
	return strings.Join(parts, " ")
}
