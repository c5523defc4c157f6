// seabattle is the classic Sea Battle game against the computer, played in
// the terminal.
//
// Usage:
//
//	seabattle play           - Play in a full-screen TUI
//	seabattle console        - Play with typed "row col" targets
//	seabattle menu           - Pick a difficulty, play, repeat
//	seabattle scores         - Show high scores
//	seabattle history        - Show recent matches
//	seabattle serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible fleets
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom seabattle.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - sink the computer's fleet in your terminal",
	Long: `Sea Battle is the classic guessing game on a square grid.
You and the computer each hide seven ships; take turns firing at the other
fleet. A hit earns another shot, a miss passes the turn.

Available commands:
  play     - Full-screen game with a cursor
  console  - Line-by-line game, type "row col" to fire
  menu     - Difficulty picker, scoreboard and game in a loop
  scores   - View high scores
  history  - View recent matches
  serve    - Start SSH server for remote play

Examples:
  seabattle play --difficulty hard
  seabattle console --seed 42
  seabattle menu
  seabattle serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom seabattle.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          seabattle.GameID,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the scores database, or returns nil with a warning.
// Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(logger *log.Logger, store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "err", err)
	}
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
