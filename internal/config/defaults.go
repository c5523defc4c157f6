package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultSeaBattleYAML []byte

// DefaultSeaBattleConfig returns the classic 6x6 configuration.
func DefaultSeaBattleConfig() SeaBattleConfig {
	return SeaBattleConfig{
		Board: BoardConfig{
			Size: 6,
		},
		Placement: PlacementConfig{
			MaxAttempts:     2000,
			MaxBoardRetries: 0,
		},
		Opponent: OpponentConfig{
			Targeting:  "random",
			ThinkTicks: 15,
		},
		Scoring: ScoringConfig{
			Hit:      10,
			Sink:     25,
			WinBonus: 100,
		},
		Symbols: SymbolsConfig{
			Empty:    "·",
			Ship:     "■",
			Hit:      "X",
			Miss:     "T",
			Revealed: "~",
		},
	}
}
