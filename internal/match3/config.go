package match3

import "fmt"

// Rules holds the tuning values of the session: scoring rates, star
// thresholds, power-up grants, and board retry ceilings. Business logic
// never hard-codes these; the platform loads them from YAML.
type Rules struct {
	// Scoring. Power-up removals pay a higher per-tile rate than a normal
	// match, reflecting their larger area of effect; the color bomb rate is
	// the highest.
	BaseUnitValue      int
	ComboBonusValue    int
	HammerUnitValue    int
	BombUnitValue      int
	ColorBombUnitValue int

	// ExtraMovesGrant is added to the move budget by the extra-moves
	// power-up.
	ExtraMovesGrant int

	// Star thresholds on remaining moves at the moment of winning:
	// >= GenerousMoves earns 3 stars, > TightMoves earns 2, else 1.
	GenerousMoves int
	TightMoves    int

	// MaxFillPasses bounds the match-avoidance re-roll loop.
	MaxFillPasses int
}

// DefaultRules returns the reference tuning values.
func DefaultRules() Rules {
	return Rules{
		BaseUnitValue:      10,
		ComboBonusValue:    5,
		HammerUnitValue:    15,
		BombUnitValue:      20,
		ColorBombUnitValue: 25,
		ExtraMovesGrant:    5,
		GenerousMoves:      10,
		TightMoves:         5,
		MaxFillPasses:      DefaultMaxFillPasses,
	}
}

// LevelConfig describes one playable level, supplied by the level-data
// collaborator at StartLevel.
type LevelConfig struct {
	ID          string
	Name        string
	BoardWidth  int
	BoardHeight int
	MoveBudget  int
	TileTypes   []TileType
	Objectives  map[TileType]int

	// Layout optionally pins the starting grid (one glyph per tile). When
	// set, the board is filled from it verbatim and the match-avoidance
	// pass is skipped.
	Layout []string
}

// DefaultLevelConfig is the built-in fallback level used when a malformed
// config is submitted.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		ID:          "default",
		Name:        "Free Play",
		BoardWidth:  8,
		BoardHeight: 8,
		MoveBudget:  20,
		TileTypes:   []TileType{TileRed, TileGreen, TileBlue, TileYellow, TilePurple},
		Objectives: map[TileType]int{
			TileRed:  10,
			TileBlue: 10,
		},
	}
}

// Validate reports why the config is unusable, or nil.
func (lc LevelConfig) Validate() error {
	if lc.BoardWidth < 3 || lc.BoardHeight < 3 {
		return fmt.Errorf("match3: board %dx%d is smaller than 3x3", lc.BoardWidth, lc.BoardHeight)
	}
	if lc.MoveBudget <= 0 {
		return fmt.Errorf("match3: move budget must be positive, got %d", lc.MoveBudget)
	}
	if len(lc.TileTypes) < 3 {
		return fmt.Errorf("match3: need at least 3 tile types, got %d", len(lc.TileTypes))
	}
	if len(lc.Objectives) == 0 {
		return fmt.Errorf("match3: level has no objectives")
	}
	allowed := make(map[TileType]bool, len(lc.TileTypes))
	for _, t := range lc.TileTypes {
		allowed[t] = true
	}
	for t, n := range lc.Objectives {
		if !allowed[t] {
			return fmt.Errorf("match3: objective type %s not in the level's tile set", t)
		}
		if n <= 0 {
			return fmt.Errorf("match3: objective count for %s must be positive, got %d", t, n)
		}
	}
	if len(lc.Layout) > 0 && len(lc.Layout) != lc.BoardHeight {
		return fmt.Errorf("match3: layout has %d rows, board has %d", len(lc.Layout), lc.BoardHeight)
	}
	return nil
}

// normalized returns the config itself when valid, or the built-in default
// level. The silent fallback mirrors the original behavior; level files are
// validated strictly at load time so this path only covers direct API
// misuse.
func (lc LevelConfig) normalized() LevelConfig {
	if err := lc.Validate(); err != nil {
		return DefaultLevelConfig()
	}
	return lc
}
