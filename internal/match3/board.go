package match3

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultMaxFillPasses bounds the match-avoidance re-roll loop used by the
// initial fill and by shuffles. Hitting the ceiling accepts the residual
// board rather than looping forever; a match-free result is best effort,
// not guaranteed.
const DefaultMaxFillPasses = 16

// Board owns the rectangular tile grid and the pure grid algorithms:
// adjacency, match scanning, gravity compaction, and refill. It knows
// nothing about scoring or objectives.
type Board struct {
	width  int
	height int
	grid   [][]*Tile // grid[row][col]; nil = empty cell
	types  []TileType
	rng    *rand.Rand
	nextID uint64

	// pick supplies the type for every newly created tile. Defaults to a
	// uniform draw over types; tests script it for deterministic refills.
	pick func() TileType

	maxFillPasses int
}

// NewBoard creates an empty board. Call Init or InitFromLayout to populate
// it.
func NewBoard(width, height int, types []TileType, seed int64) *Board {
	b := &Board{
		width:         width,
		height:        height,
		types:         append([]TileType(nil), types...),
		rng:           rand.New(rand.NewSource(seed)),
		maxFillPasses: DefaultMaxFillPasses,
	}
	b.pick = func() TileType {
		return b.types[b.rng.Intn(len(b.types))]
	}
	b.grid = make([][]*Tile, height)
	for row := range b.grid {
		b.grid[row] = make([]*Tile, width)
	}
	return b
}

// SetMaxFillPasses overrides the match-avoidance retry ceiling.
func (b *Board) SetMaxFillPasses(n int) {
	if n > 0 {
		b.maxFillPasses = n
	}
}

// Width returns the board width in columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < b.width && p.Row >= 0 && p.Row < b.height
}

// TileAt returns the tile at the position, or nil for empty/out-of-bounds.
func (b *Board) TileAt(p Position) *Tile {
	if !b.InBounds(p) {
		return nil
	}
	return b.grid[p.Row][p.Col]
}

// SetTile places a tile at the position, updating the tile's coordinates.
// A nil tile empties the cell.
func (b *Board) SetTile(p Position, t *Tile) {
	if !b.InBounds(p) {
		return
	}
	if t != nil {
		t.Col = p.Col
		t.Row = p.Row
	}
	b.grid[p.Row][p.Col] = t
}

// NewTile allocates a fresh tile of the given type at the position and
// places it on the board.
func (b *Board) NewTile(p Position, tt TileType) *Tile {
	b.nextID++
	t := &Tile{ID: b.nextID, Type: tt, Col: p.Col, Row: p.Row}
	b.grid[p.Row][p.Col] = t
	return t
}

// Init fills every cell with a randomly typed tile, then re-rolls cells
// belonging to a match until no match remains or the retry ceiling is hit.
func (b *Board) Init() {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			b.NewTile(Position{Col: col, Row: row}, b.pick())
		}
	}
	b.clearResidualMatches()
}

// InitFromLayout fills the board from an ASCII layout, one glyph per tile
// type ('r', 'g', 'b', 'y', 'p', 'o'). The layout must cover the full grid.
// Layout boards skip the match-avoidance pass: a pinned layout means the
// level author wanted exactly that grid.
func (b *Board) InitFromLayout(lines []string) error {
	if len(lines) != b.height {
		return fmt.Errorf("match3: layout has %d rows, board has %d", len(lines), b.height)
	}
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != b.width {
			return fmt.Errorf("match3: layout row %d has %d cells, board has %d", row, len(runes), b.width)
		}
		for col, r := range runes {
			tt, err := ParseTileType(string(r))
			if err != nil {
				return fmt.Errorf("match3: layout row %d col %d: %w", row, col, err)
			}
			b.NewTile(Position{Col: col, Row: row}, tt)
		}
	}
	return nil
}

// clearResidualMatches re-rolls the type of every matched tile, repeating
// until the board is quiescent or maxFillPasses is exhausted.
func (b *Board) clearResidualMatches() {
	for pass := 0; pass < b.maxFillPasses; pass++ {
		groups := b.FindMatches()
		if len(groups) == 0 {
			return
		}
		for _, g := range groups {
			for _, t := range g.Tiles {
				t.Type = b.pick()
			}
		}
	}
}

// IsAdjacent returns true iff the Manhattan distance between the positions
// is exactly 1.
func (b *Board) IsAdjacent(a, c Position) bool {
	return a.IsAdjacentTo(c)
}

// Swap exchanges the tiles at the two positions unconditionally (both must
// be in bounds). It returns the tiles previously at a and c so the caller
// can judge and revert the swap; calling Swap again with the same pair
// restores the board exactly.
func (b *Board) Swap(a, c Position) (prevA, prevC *Tile) {
	prevA = b.TileAt(a)
	prevC = b.TileAt(c)
	b.SetTile(a, prevC)
	b.SetTile(c, prevA)
	return prevA, prevC
}

// Remove empties the cell at the position.
func (b *Board) Remove(p Position) {
	if b.InBounds(p) {
		b.grid[p.Row][p.Col] = nil
	}
}

// RemoveMatches empties every cell covered by the match groups. It does not
// trigger gravity or scoring; that is the session's job.
func (b *Board) RemoveMatches(groups []MatchGroup) {
	for _, g := range groups {
		for _, t := range g.Tiles {
			// Only clear the cell if it still holds this tile; overlapping
			// groups may have cleared it already.
			if b.grid[t.Row][t.Col] == t {
				b.grid[t.Row][t.Col] = nil
			}
		}
	}
}

// ApplyGravity compacts every column independently: occupied cells keep
// their relative vertical order and slide to the bottom, leaving the
// empties at the top. No tile ever passes another in the same column.
func (b *Board) ApplyGravity() {
	for col := 0; col < b.width; col++ {
		writeRow := b.height - 1
		for row := b.height - 1; row >= 0; row-- {
			t := b.grid[row][col]
			if t == nil {
				continue
			}
			if row != writeRow {
				b.grid[writeRow][col] = t
				b.grid[row][col] = nil
				t.Row = writeRow
			}
			writeRow--
		}
	}
}

// Refill creates a new randomly typed tile in every empty cell. Refills are
// not constrained against forming new matches; that is exactly how cascades
// continue.
func (b *Board) Refill() {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.grid[row][col] == nil {
				b.NewTile(Position{Col: col, Row: row}, b.pick())
			}
		}
	}
}

// Shuffle randomly permutes the occupied tiles among the occupied cells,
// then repairs any matches by swapping matched tiles to random cells until
// the board is quiescent or the retry ceiling is hit. Unlike the initial
// fill, clearing works by moving tiles rather than re-rolling types, so the
// multiset of tile types is always preserved.
func (b *Board) Shuffle() {
	var tiles []*Tile
	var cells []Position
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if t := b.grid[row][col]; t != nil {
				tiles = append(tiles, t)
				cells = append(cells, Position{Col: col, Row: row})
			}
		}
	}
	if len(tiles) == 0 {
		return
	}

	b.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	for i, p := range cells {
		b.SetTile(p, tiles[i])
	}

	for pass := 0; pass < b.maxFillPasses; pass++ {
		groups := b.FindMatches()
		if len(groups) == 0 {
			return
		}
		for _, g := range groups {
			for _, t := range g.Tiles {
				other := cells[b.rng.Intn(len(cells))]
				b.Swap(t.Pos(), other)
			}
		}
	}
}

// TypeCounts returns the multiset of tile types currently on the board.
func (b *Board) TypeCounts() map[TileType]int {
	counts := make(map[TileType]int)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if t := b.grid[row][col]; t != nil {
				counts[t.Type]++
			}
		}
	}
	return counts
}

// String dumps the grid as one glyph per cell, '.' for empty. Special tiles
// render as the uppercase glyph. Used by snapshots and tests.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < b.width; col++ {
			t := b.grid[row][col]
			switch {
			case t == nil:
				sb.WriteRune('.')
			case t.IsSpecial():
				sb.WriteRune(t.Type.Glyph() - 'a' + 'A')
			default:
				sb.WriteRune(t.Type.Glyph())
			}
		}
	}
	return sb.String()
}
