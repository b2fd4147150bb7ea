package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/levels"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. With a level ID the game begins immediately; without
one an interactive level picker opens first.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Select a tile, then an adjacent one to swap
  1-5          - Power-ups: hammer, bomb, color bomb, shuffle, extra moves
  Esc/B        - Cancel selection / armed power-up
  R            - Restart (after the level ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More moves, double starting power-ups
  normal - Level values as written
  hard   - Fewer moves, half starting power-ups

Examples:
  match3 play
  match3 play quarry
  match3 play quarry --difficulty easy
  match3 play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// gameSetup bundles everything the play flow needs: tuning rules, starting
// inventory, and the level list with the difficulty preset applied.
type gameSetup struct {
	cfg    config.Match3Config
	preset config.DifficultyPreset
	levels []levels.Level
}

// loadGameSetup resolves config, difficulty, and levels from the flags.
func loadGameSetup() (gameSetup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return gameSetup{}, fmt.Errorf("loading config: %w", err)
	}

	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			return gameSetup{}, err
		}
	}
	config.ApplyPreset(&cfg, preset)

	lvls, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		return gameSetup{}, fmt.Errorf("loading levels: %w", err)
	}
	for i := range lvls {
		lvls[i].MoveBudget = preset.MoveBudget(lvls[i].MoveBudget)
	}

	return gameSetup{cfg: cfg, preset: preset, levels: lvls}, nil
}

// terminalSize returns the current terminal dimensions, with a fallback.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	setup, err := loadGameSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	rules := setup.cfg.Rules()
	startInv := setup.cfg.StartingInventory()

	if len(args) == 1 {
		// Direct play of a named level
		var lvl *levels.Level
		for i := range setup.levels {
			if setup.levels[i].ID == args[0] {
				lvl = &setup.levels[i]
				break
			}
		}
		if lvl == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'match3 levels' to see available levels.")
			os.Exit(1)
		}

		inv := startInv
		if store != nil {
			if saved, invErr := store.LoadInventory(); invErr == nil && len(saved) > 0 {
				inv = saved
			}
		}

		if runErr := tui.Run(*lvl, rules, inv, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	// Menu flow: level picker, game, scoreboard
	if runErr := tui.RunSession(setup.levels, rules, startInv, store, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
