package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a preset name to a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// MoveBudget scales a level's base move budget for the preset. Easy grants
// half again as many moves, hard trims a quarter; the result never drops
// below one move.
func (p DifficultyPreset) MoveBudget(base int) int {
	var budget int
	switch p {
	case DifficultyEasy:
		budget = base + base/2
	case DifficultyHard:
		budget = base - base/4
	default:
		budget = base
	}
	if budget < 1 {
		budget = 1
	}
	return budget
}

// ApplyPreset adjusts the starting inventory for a difficulty preset. Easy
// doubles the configured counts; hard halves them.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		for name, count := range cfg.Powerups.Starting {
			cfg.Powerups.Starting[name] = count * 2
		}
	case DifficultyHard:
		for name, count := range cfg.Powerups.Starting {
			cfg.Powerups.Starting[name] = count / 2
		}
	}
}
