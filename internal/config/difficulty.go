package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Keep whatever the config file says
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Description returns a one-line summary of the preset for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Computer fires at random, slowly"
	case DifficultyNormal:
		return "Computer fires at random"
	case DifficultyHard:
		return "Computer hunts down damaged ships"
	default:
		return "Use the config file as is"
	}
}

// ApplySeaBattlePreset adjusts the opponent and scoring for a preset.
func ApplySeaBattlePreset(cfg *SeaBattleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Opponent.Targeting = "random"
		cfg.Opponent.ThinkTicks = 30
		cfg.Scoring.WinBonus = 50
	case DifficultyNormal:
		cfg.Opponent.Targeting = "random"
		cfg.Opponent.ThinkTicks = 15
		cfg.Scoring.WinBonus = 100
	case DifficultyHard:
		cfg.Opponent.Targeting = "hunt"
		cfg.Opponent.ThinkTicks = 10
		cfg.Scoring.WinBonus = 250
	}
}
