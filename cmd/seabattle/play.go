package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle"
	"github.com/vovakirdan/tui-seabattle/internal/platform/tui"
	"github.com/vovakirdan/tui-seabattle/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a full-screen TUI",
	Long: `Start a match against the computer.

Controls:
  Arrows/WASD/HJKL - Move the cursor over the enemy grid
  Space/Enter/F    - Fire
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Leave (when paused or over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Computer fires at random, slowly
  normal - Computer fires at random
  hard   - Computer hunts down damaged ships
  fixed  - Use the config file as is

Examples:
  seabattle play
  seabattle play --difficulty hard
  seabattle play --config ./my-seabattle.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()

	game, err := registry.Create(seabattle.GameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, terminalConfig(), logger)
	closeStore(logger, store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
