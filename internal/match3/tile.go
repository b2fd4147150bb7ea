// Package match3 implements the match-3 puzzle core: the tile grid with
// match scanning, gravity and refill, the power-up resolver, and the
// session state machine that orchestrates turns, scoring and objectives.
// It contains pure game logic with no external dependencies (especially no
// Bubble Tea); the platform handles input mapping, timing, and rendering.
package match3

import "fmt"

// TileType is the color tag of a tile.
type TileType int

const (
	TileRed TileType = iota
	TileGreen
	TileBlue
	TileYellow
	TilePurple
	TileOrange
	tileTypeCount // Sentinel for counting types
)

// String returns the name of the tile type.
func (t TileType) String() string {
	switch t {
	case TileRed:
		return "red"
	case TileGreen:
		return "green"
	case TileBlue:
		return "blue"
	case TileYellow:
		return "yellow"
	case TilePurple:
		return "purple"
	case TileOrange:
		return "orange"
	default:
		return "?"
	}
}

// Glyph returns the single-character code for a tile type, used by board
// dumps and level layouts.
func (t TileType) Glyph() rune {
	switch t {
	case TileRed:
		return 'r'
	case TileGreen:
		return 'g'
	case TileBlue:
		return 'b'
	case TileYellow:
		return 'y'
	case TilePurple:
		return 'p'
	case TileOrange:
		return 'o'
	default:
		return '?'
	}
}

// ParseTileType converts a name ("red") or glyph ("r") to a TileType.
func ParseTileType(s string) (TileType, error) {
	for t := TileType(0); t < tileTypeCount; t++ {
		if s == t.String() || s == string(t.Glyph()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("match3: unknown tile type %q", s)
}

// SpecialKind marks a tile carrying a special effect. A tile holds at most
// one kind at a time.
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialBomb
	SpecialLineHorizontal
	SpecialLineVertical
	SpecialColorBomb
)

// String returns the name of the special kind.
func (k SpecialKind) String() string {
	switch k {
	case SpecialNone:
		return "none"
	case SpecialBomb:
		return "bomb"
	case SpecialLineHorizontal:
		return "line_horizontal"
	case SpecialLineVertical:
		return "line_vertical"
	case SpecialColorBomb:
		return "color_bomb"
	default:
		return "?"
	}
}

// Position identifies a board cell by column and row. Row 0 is the top row.
type Position struct {
	Col int
	Row int
}

// IsAdjacentTo returns true iff the Manhattan distance between the two
// positions is exactly 1 (rook adjacency, never diagonal).
func (p Position) IsAdjacentTo(other Position) bool {
	return abs(p.Col-other.Col)+abs(p.Row-other.Row) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Tile is a single grid occupant: a color type, an optional special kind,
// and its grid position. A tile's (Col, Row) always equals its slot in the
// board grid once the board is quiescent.
type Tile struct {
	ID      uint64
	Type    TileType
	Special SpecialKind
	Col     int
	Row     int
}

// Pos returns the tile's grid position.
func (t *Tile) Pos() Position {
	return Position{Col: t.Col, Row: t.Row}
}

// IsSpecial returns true if the tile carries a special kind.
func (t *Tile) IsSpecial() bool {
	return t.Special != SpecialNone
}

// MakeSpecial assigns a special kind. Reassigning overwrites the previous
// kind; a tile never holds more than one.
func (t *Tile) MakeSpecial(kind SpecialKind) {
	t.Special = kind
}

// Matches returns true iff both tiles exist, are non-special, and share the
// same type. Two special tiles, or a special and a normal tile, never
// compare equal for matching purposes.
func (t *Tile) Matches(other *Tile) bool {
	if t == nil || other == nil {
		return false
	}
	if t.IsSpecial() || other.IsSpecial() {
		return false
	}
	return t.Type == other.Type
}

// IsAdjacentTo is the rook-adjacency test on grid coordinates, used for the
// player-swap precondition.
func (t *Tile) IsAdjacentTo(other *Tile) bool {
	if t == nil || other == nil {
		return false
	}
	return t.Pos().IsAdjacentTo(other.Pos())
}
