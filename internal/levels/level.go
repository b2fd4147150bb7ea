// Package levels provides level file loading for the match-3 game.
// This package depends on match3 but match3 does not depend on levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Board      yamlBoard      `yaml:"board"`
	Moves      int            `yaml:"moves"`
	TileTypes  []string       `yaml:"tile_types"`
	Objectives map[string]int `yaml:"objectives"`
	Layout     []string       `yaml:"layout,omitempty"`
}

// yamlBoard represents grid dimensions.
type yamlBoard struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level is a parsed level ready for play.
type Level struct {
	match3.LevelConfig
	FilePath string // empty for built-in levels
}

// ParseYAML parses a YAML level file into a validated level config. Unlike
// the engine, which falls back to the default level on a malformed config,
// the loader is strict: a broken level file is an error the author should
// see.
func ParseYAML(data []byte) (match3.LevelConfig, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return match3.LevelConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lc := match3.LevelConfig{
		ID:          yl.ID,
		Name:        yl.Name,
		BoardWidth:  yl.Board.W,
		BoardHeight: yl.Board.H,
		MoveBudget:  yl.Moves,
		Layout:      yl.Layout,
	}

	for _, name := range yl.TileTypes {
		tt, err := match3.ParseTileType(name)
		if err != nil {
			return match3.LevelConfig{}, fmt.Errorf("level %s: %w", yl.ID, err)
		}
		lc.TileTypes = append(lc.TileTypes, tt)
	}

	if len(yl.Objectives) > 0 {
		lc.Objectives = make(map[match3.TileType]int, len(yl.Objectives))
		for name, count := range yl.Objectives {
			tt, err := match3.ParseTileType(name)
			if err != nil {
				return match3.LevelConfig{}, fmt.Errorf("level %s: objective: %w", yl.ID, err)
			}
			lc.Objectives[tt] = count
		}
	}

	if lc.ID == "" {
		return match3.LevelConfig{}, fmt.Errorf("level file has no id")
	}
	if err := lc.Validate(); err != nil {
		return match3.LevelConfig{}, fmt.Errorf("level %s: %w", lc.ID, err)
	}
	return lc, nil
}
