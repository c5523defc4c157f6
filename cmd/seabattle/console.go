package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/platform/console"
)

var flagNoSave bool

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play with typed coordinates",
	Long: `Play a match on plain stdin/stdout, like the original text game.

Both boards are printed after every shot. Type the row and the column of
your target, counted from 1, separated by a space:

  Your turn: 3 4

Examples:
  seabattle console
  seabattle console --seed 42 --difficulty hard
  seabattle console --no-save < moves.txt`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the match")
}

func runConsole(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := config.LoadSeaBattle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplySeaBattlePreset(&cfg, preset)

	runner := &console.Runner{
		Config:     cfg,
		Difficulty: string(preset),
		Seed:       seed(),
		Out:        os.Stdout,
		Logger:     logger,
	}
	if !flagNoSave {
		runner.Store = openStore(logger)
		defer closeStore(logger, runner.Store)
	}

	if _, err := runner.Run(cmd.Context(), os.Stdin); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Println("\nGame abandoned.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
