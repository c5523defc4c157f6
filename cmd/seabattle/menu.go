package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle"
	"github.com/vovakirdan/tui-seabattle/internal/platform/tui"
	"github.com/vovakirdan/tui-seabattle/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker",
	Long: `Start Sea Battle in interactive menu mode.

Pick a difficulty to start a match. After leaving a finished match with
B or Esc you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start a match
  Tab          - Scoreboard and match history
  Q            - Quit

Examples:
  seabattle menu
  seabattle menu --difficulty hard
  seabattle menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	store := openStore(logger)
	defer closeStore(logger, store)

	cfg := terminalConfig()
	current := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(seabattle.GameID, store, cfg, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(seabattle.GameID, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		current = string(menuResult.Difficulty)
		game, err := registry.Create(seabattle.GameID, registry.Options{
			ConfigPath: flagConfig,
			Difficulty: current,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fresh seed per match unless one was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
