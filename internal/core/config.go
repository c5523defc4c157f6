package core

// RuntimeConfig is passed to games when they are created or reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig sized for a standard terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // Set together with GameOver when the player won
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Messages are short status lines produced during the tick, oldest first.
	Messages []string
}

// MatchSummary describes a finished round for the match history.
type MatchSummary struct {
	Winner      string // "player" or "computer"
	Turns       int
	BoardSize   int
	Difficulty  string
	PlayerShots int
	PlayerHits  int
	PlayerSunk  int
	CPUShots    int
	CPUHits     int
	CPUSunk     int
	Ticks       int // Simulation ticks the round lasted
}
