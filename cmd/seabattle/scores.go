package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

var (
	flagClearScores bool
	flagLimit       int
	flagMatchID     string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and overall statistics.

Examples:
  seabattle scores
  seabattle scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display recently finished matches, newest first.

Examples:
  seabattle history
  seabattle history --limit 50
  seabattle history --id 0b7c...`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores and matches")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagMatchID, "id", "", "Show a single match by ID")
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(seabattle.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(seabattle.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Sea Battle")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'seabattle play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(seabattle.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.0f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	if stats.Wins+stats.Losses > 0 {
		fmt.Printf("Wins: %d  Losses: %d  Win rate: %.0f%%\n", stats.Wins, stats.Losses, stats.WinRate())
	}
}

func runHistory(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagMatchID != "" {
		m, err := store.MatchByID(flagMatchID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
			return
		}
		if m == nil {
			fmt.Fprintf(os.Stderr, "No match with ID %q\n", flagMatchID)
			return
		}
		printMatch(*m)
		return
	}

	matches, err := store.RecentMatches(seabattle.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Date", "Winner", "Level", "Size", "Turns", "Shots", "Acc.", "Score", "ID")
	for _, m := range matches {
		t.Row(
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Winner,
			m.Difficulty,
			fmt.Sprintf("%dx%d", m.BoardSize, m.BoardSize),
			fmt.Sprintf("%d", m.Turns),
			fmt.Sprintf("%d", m.PlayerShots),
			fmt.Sprintf("%.0f%%", m.Accuracy()),
			fmt.Sprintf("%d", m.Score),
			m.MatchID[:min(8, len(m.MatchID))],
		)
	}
	fmt.Println(t)
}

func printMatch(m storage.MatchRecord) {
	fmt.Printf("Match %s\n\n", m.MatchID)
	fmt.Printf("  Played:     %s\n", m.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Winner:     %s\n", m.Winner)
	fmt.Printf("  Difficulty: %s\n", m.Difficulty)
	fmt.Printf("  Board:      %dx%d\n", m.BoardSize, m.BoardSize)
	fmt.Printf("  Turns:      %d\n", m.Turns)
	fmt.Printf("  Duration:   %ds\n", m.Duration)
	fmt.Printf("  Score:      %d\n\n", m.Score)
	fmt.Printf("  %-9s %5s %5s %5s\n", "", "Shots", "Hits", "Sunk")
	fmt.Printf("  %-9s %5d %5d %5d\n", "You", m.PlayerShots, m.PlayerHits, m.PlayerSunk)
	fmt.Printf("  %-9s %5d %5d %5d\n", "Computer", m.CPUShots, m.CPUHits, m.CPUSunk)
}
