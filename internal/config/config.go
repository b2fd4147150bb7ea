// Package config provides YAML-based rule configuration loading and
// difficulty presets for the match-3 engine.
package config

import (
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Match3Config contains all tunable rules for a match-3 session.
type Match3Config struct {
	Scoring  ScoringConfig  `yaml:"scoring"`
	Fill     FillConfig     `yaml:"fill"`
	Stars    StarsConfig    `yaml:"stars"`
	Powerups PowerupsConfig `yaml:"powerups"`
}

// ScoringConfig defines the per-tile score rates.
type ScoringConfig struct {
	BaseUnitValue      int `yaml:"base_unit_value"`
	ComboBonusValue    int `yaml:"combo_bonus_value"`
	HammerUnitValue    int `yaml:"hammer_unit_value"`
	BombUnitValue      int `yaml:"bomb_unit_value"`
	ColorBombUnitValue int `yaml:"color_bomb_unit_value"`
}

// FillConfig defines board fill parameters.
type FillConfig struct {
	MaxPasses int `yaml:"max_passes"` // Retry ceiling for match-avoidance fills
}

// StarsConfig defines the moves-left thresholds for the star rating.
type StarsConfig struct {
	GenerousMoves int `yaml:"generous_moves"` // At or above: 3 stars
	TightMoves    int `yaml:"tight_moves"`    // At or below: 1 star
}

// PowerupsConfig defines power-up tuning and the starting inventory.
type PowerupsConfig struct {
	ExtraMovesGrant int            `yaml:"extra_moves_grant"`
	Starting        map[string]int `yaml:"starting"` // Keyed by power-up name
}

// Rules converts the config into engine rules. Missing or non-positive
// fields fall back to the engine defaults, so a partial YAML file only
// overrides what it names.
func (c Match3Config) Rules() match3.Rules {
	r := match3.DefaultRules()
	if c.Scoring.BaseUnitValue > 0 {
		r.BaseUnitValue = c.Scoring.BaseUnitValue
	}
	if c.Scoring.ComboBonusValue > 0 {
		r.ComboBonusValue = c.Scoring.ComboBonusValue
	}
	if c.Scoring.HammerUnitValue > 0 {
		r.HammerUnitValue = c.Scoring.HammerUnitValue
	}
	if c.Scoring.BombUnitValue > 0 {
		r.BombUnitValue = c.Scoring.BombUnitValue
	}
	if c.Scoring.ColorBombUnitValue > 0 {
		r.ColorBombUnitValue = c.Scoring.ColorBombUnitValue
	}
	if c.Powerups.ExtraMovesGrant > 0 {
		r.ExtraMovesGrant = c.Powerups.ExtraMovesGrant
	}
	if c.Stars.GenerousMoves > 0 {
		r.GenerousMoves = c.Stars.GenerousMoves
	}
	if c.Stars.TightMoves > 0 {
		r.TightMoves = c.Stars.TightMoves
	}
	if c.Fill.MaxPasses > 0 {
		r.MaxFillPasses = c.Fill.MaxPasses
	}
	return r
}

// StartingInventory converts the configured starting counts into an engine
// inventory. Unknown power-up names and non-positive counts are skipped.
func (c Match3Config) StartingInventory() match3.Inventory {
	inv := make(match3.Inventory)
	for name, count := range c.Powerups.Starting {
		if count <= 0 {
			continue
		}
		kind, err := match3.ParsePowerType(name)
		if err != nil {
			continue
		}
		inv[kind] = count
	}
	return inv
}
