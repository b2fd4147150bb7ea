package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show the saved power-up inventory",
	Long: `Display the power-up inventory that the next session will start with.
The saved inventory persists between sessions; when nothing is saved
yet the configured starting inventory applies.`,
	Run: runInventory,
}

func runInventory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	inv, err := store.LoadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		os.Exit(1)
	}

	source := "saved"
	if len(inv) == 0 {
		cfg, cfgErr := config.Load(flagConfig)
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
			os.Exit(1)
		}
		inv = cfg.StartingInventory()
		source = "starting (nothing saved yet)"
	}

	fmt.Printf("Power-up inventory (%s):\n", source)
	fmt.Println()
	for i, kind := range match3.PowerTypes() {
		fmt.Printf("  %d. %-12s x%d\n", i+1, kind, inv[kind])
	}
}
