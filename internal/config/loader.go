package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadSeaBattle loads Sea Battle configuration.
// Search order: customPath -> ~/.arcade/configs/seabattle.yaml -> ./configs/seabattle.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. The result is validated.
func LoadSeaBattle(customPath string) (SeaBattleConfig, error) {
	cfg := DefaultSeaBattleConfig()

	// Custom path errors are reported, the fallbacks fail silently
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("seabattle.yaml"), filepath.Join("configs", "seabattle.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	if err := yaml.Unmarshal(defaultSeaBattleYAML, &cfg); err != nil {
		return DefaultSeaBattleConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSeaBattleConfig(), nil
	}
	return cfg, nil
}

// tryLoad decodes and validates an optional config file.
func tryLoad(path string) (SeaBattleConfig, bool) {
	cfg := DefaultSeaBattleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that every value is usable.
func (c SeaBattleConfig) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board.size %d outside %d..%d", ErrInvalidConfig, c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Placement.MaxAttempts < 1 {
		return fmt.Errorf("%w: placement.max_attempts must be positive", ErrInvalidConfig)
	}
	if c.Placement.MaxBoardRetries < 0 {
		return fmt.Errorf("%w: placement.max_board_retries must not be negative", ErrInvalidConfig)
	}
	switch c.Opponent.Targeting {
	case "random", "hunt":
	default:
		return fmt.Errorf("%w: opponent.targeting %q (want random or hunt)", ErrInvalidConfig, c.Opponent.Targeting)
	}
	if c.Opponent.ThinkTicks < 0 {
		return fmt.Errorf("%w: opponent.think_ticks must not be negative", ErrInvalidConfig)
	}
	if c.Scoring.Hit < 0 || c.Scoring.Sink < 0 || c.Scoring.WinBonus < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
	}
	for name, s := range map[string]string{
		"empty":    c.Symbols.Empty,
		"ship":     c.Symbols.Ship,
		"hit":      c.Symbols.Hit,
		"miss":     c.Symbols.Miss,
		"revealed": c.Symbols.Revealed,
	} {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: symbols.%s must be a single character, got %q", ErrInvalidConfig, name, s)
		}
	}
	return nil
}

// Rune returns the first rune of a symbol, or fallback if it is empty.
func Rune(symbol string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(symbol)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
