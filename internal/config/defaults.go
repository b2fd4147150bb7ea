package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultConfig returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func DefaultConfig() Match3Config {
	return Match3Config{
		Scoring: ScoringConfig{
			BaseUnitValue:      10,
			ComboBonusValue:    5,
			HammerUnitValue:    15,
			BombUnitValue:      20,
			ColorBombUnitValue: 25,
		},
		Fill: FillConfig{
			MaxPasses: 16,
		},
		Stars: StarsConfig{
			GenerousMoves: 10,
			TightMoves:    5,
		},
		Powerups: PowerupsConfig{
			ExtraMovesGrant: 5,
			Starting: map[string]int{
				"hammer":      3,
				"bomb":        1,
				"color_bomb":  1,
				"shuffle":     2,
				"extra_moves": 1,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, for the config dump
// command.
func GetDefaultYAML() []byte {
	return defaultMatch3YAML
}
