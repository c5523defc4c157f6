// Package config provides YAML-based configuration loading and difficulty
// presets for Sea Battle.
package config

// SeaBattleConfig contains all configuration for a Sea Battle match.
type SeaBattleConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Placement PlacementConfig `yaml:"placement"`
	Opponent  OpponentConfig  `yaml:"opponent"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Symbols   SymbolsConfig   `yaml:"symbols"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Size int `yaml:"size"` // Side length of both square boards
}

// PlacementConfig bounds the random fleet placement.
type PlacementConfig struct {
	MaxAttempts     int `yaml:"max_attempts"`      // Candidates per ship before restarting the board
	MaxBoardRetries int `yaml:"max_board_retries"` // 0 retries forever
}

// OpponentConfig defines how the computer plays.
type OpponentConfig struct {
	Targeting  string `yaml:"targeting"`   // "random" or "hunt"
	ThinkTicks int    `yaml:"think_ticks"` // Ticks the computer waits before each shot
}

// ScoringConfig defines the points awarded to the player.
type ScoringConfig struct {
	Hit      int `yaml:"hit"`
	Sink     int `yaml:"sink"`
	WinBonus int `yaml:"win_bonus"`
}

// Score totals the points for a finished or running match.
func (s ScoringConfig) Score(hits, sunk int, won bool) int {
	total := hits*s.Hit + sunk*s.Sink
	if won {
		total += s.WinBonus
	}
	return total
}

// SymbolsConfig defines the glyph drawn for each cell state.
type SymbolsConfig struct {
	Empty    string `yaml:"empty"`
	Ship     string `yaml:"ship"`
	Hit      string `yaml:"hit"`
	Miss     string `yaml:"miss"`
	Revealed string `yaml:"revealed"`
}

// Board size limits accepted by Validate.
const (
	MinBoardSize = 6
	MaxBoardSize = 10
)
