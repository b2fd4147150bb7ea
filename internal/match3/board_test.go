package match3

import (
	"strings"
	"testing"
)

// boardFromLayout builds a board with the exact given grid.
func boardFromLayout(t *testing.T, lines []string) *Board {
	t.Helper()
	b := NewBoard(len([]rune(lines[0])), len(lines), []TileType{TileRed, TileGreen, TileBlue, TileYellow, TilePurple, TileOrange}, 1)
	if err := b.InitFromLayout(lines); err != nil {
		t.Fatalf("InitFromLayout: %v", err)
	}
	return b
}

// quietLayout8 is an 8x8 grid with no matches except row 0 cols 0-2 (red).
var quietLayout8 = []string{
	"rrrbgbrg",
	"gbrgbrgb",
	"brgbrgbr",
	"rgbrgbrg",
	"gbrgbrgb",
	"brgbrgbr",
	"rgbrgbrg",
	"gbrgbrgb",
}

func TestFindMatchesSeededRow(t *testing.T) {
	b := boardFromLayout(t, quietLayout8)

	groups := b.FindMatches()
	if len(groups) != 1 {
		t.Fatalf("FindMatches() returned %d groups, expected 1: %+v", len(groups), groups)
	}

	g := groups[0]
	if g.Orientation != Horizontal {
		t.Errorf("Orientation = %v, expected horizontal", g.Orientation)
	}
	if g.Len() != 3 {
		t.Fatalf("group length = %d, expected 3", g.Len())
	}
	for i, tile := range g.Tiles {
		if tile.Type != TileRed {
			t.Errorf("tile %d type = %v, expected red", i, tile.Type)
		}
		if tile.Row != 0 || tile.Col != i {
			t.Errorf("tile %d at (%d,%d), expected (%d,0)", i, tile.Col, tile.Row, i)
		}
	}
}

func TestFindMatchesRunBrokenBySpecial(t *testing.T) {
	b := boardFromLayout(t, quietLayout8)

	// The middle tile of the red run becomes special: the run no longer
	// matches, even though all three share a type.
	b.TileAt(Position{Col: 1, Row: 0}).MakeSpecial(SpecialBomb)

	if groups := b.FindMatches(); len(groups) != 0 {
		t.Errorf("FindMatches() = %d groups, expected none through a special tile", len(groups))
	}
}

func TestFindMatchesVertical(t *testing.T) {
	b := boardFromLayout(t, []string{
		"gbrgb",
		"grgbr",
		"gbyrg",
		"ygbgr",
		"rybgb",
	})

	groups := b.FindMatches()
	if len(groups) != 1 {
		t.Fatalf("FindMatches() returned %d groups, expected 1", len(groups))
	}
	g := groups[0]
	if g.Orientation != Vertical || g.Len() != 3 {
		t.Fatalf("got %v group of %d, expected vertical of 3", g.Orientation, g.Len())
	}
	for i, tile := range g.Tiles {
		if tile.Col != 0 || tile.Row != i || tile.Type != TileGreen {
			t.Errorf("tile %d = %v at (%d,%d)", i, tile.Type, tile.Col, tile.Row)
		}
	}
}

func TestIsAdjacent(t *testing.T) {
	b := NewBoard(5, 5, []TileType{TileRed, TileGreen, TileBlue}, 1)

	if !b.IsAdjacent(Position{1, 1}, Position{1, 2}) {
		t.Error("vertically adjacent cells not adjacent")
	}
	if !b.IsAdjacent(Position{1, 1}, Position{2, 1}) {
		t.Error("horizontally adjacent cells not adjacent")
	}
	if b.IsAdjacent(Position{1, 1}, Position{2, 2}) {
		t.Error("diagonal cells reported adjacent")
	}
	if b.IsAdjacent(Position{1, 1}, Position{1, 1}) {
		t.Error("cell reported adjacent to itself")
	}
}

func TestSwapAndRevert(t *testing.T) {
	b := boardFromLayout(t, quietLayout8)
	before := b.String()

	a, c := Position{Col: 0, Row: 0}, Position{Col: 0, Row: 1}
	tileA := b.TileAt(a)
	tileC := b.TileAt(c)

	prevA, prevC := b.Swap(a, c)
	if prevA != tileA || prevC != tileC {
		t.Error("Swap did not return the previous tiles")
	}
	if b.TileAt(a) != tileC || b.TileAt(c) != tileA {
		t.Error("Swap did not exchange the tiles")
	}
	if tileC.Col != 0 || tileC.Row != 0 {
		t.Error("swapped tile's coordinates not updated")
	}

	// Swapping again restores the board exactly
	b.Swap(a, c)
	if b.String() != before {
		t.Errorf("revert mismatch:\n%s\nvs\n%s", b.String(), before)
	}
	if b.TileAt(a) != tileA {
		t.Error("revert did not restore the original tile")
	}
}

func TestApplyGravityOrderPreserved(t *testing.T) {
	b := boardFromLayout(t, []string{
		"rgbgr",
		"gbryg",
		"byrgb",
		"ygbry",
		"rybgr",
	})

	// Record the surviving tiles of column 2, top to bottom, then punch
	// holes into the column.
	col := 2
	b.Remove(Position{Col: col, Row: 1})
	b.Remove(Position{Col: col, Row: 3})
	var survivors []uint64
	for row := 0; row < b.Height(); row++ {
		if tile := b.TileAt(Position{Col: col, Row: row}); tile != nil {
			survivors = append(survivors, tile.ID)
		}
	}

	b.ApplyGravity()

	// Empties at the top
	for row := 0; row < 2; row++ {
		if b.TileAt(Position{Col: col, Row: row}) != nil {
			t.Errorf("row %d of column %d not empty after gravity", row, col)
		}
	}

	// Relative order preserved below
	var after []uint64
	for row := 2; row < b.Height(); row++ {
		tile := b.TileAt(Position{Col: col, Row: row})
		if tile == nil {
			t.Fatalf("hole left below surviving tiles at row %d", row)
		}
		if tile.Row != row {
			t.Errorf("tile coordinates stale after gravity: has row %d, at row %d", tile.Row, row)
		}
		after = append(after, tile.ID)
	}
	if len(after) != len(survivors) {
		t.Fatalf("survivor count changed: %d vs %d", len(after), len(survivors))
	}
	for i := range survivors {
		if survivors[i] != after[i] {
			t.Errorf("column order changed at index %d: %d vs %d", i, survivors[i], after[i])
		}
	}

	// Untouched columns stay put
	if b.TileAt(Position{Col: 0, Row: 0}) == nil {
		t.Error("gravity disturbed a full column")
	}
}

func TestRefillFillsEveryEmptyCell(t *testing.T) {
	b := boardFromLayout(t, quietLayout8)
	b.Remove(Position{Col: 0, Row: 0})
	b.Remove(Position{Col: 7, Row: 7})
	b.Remove(Position{Col: 3, Row: 4})

	b.Refill()

	if strings.ContainsRune(b.String(), '.') {
		t.Errorf("empty cells remain after refill:\n%s", b.String())
	}
}

func TestInitQuiescent(t *testing.T) {
	types := []TileType{TileRed, TileGreen, TileBlue, TileYellow, TilePurple}
	for _, seed := range []int64{1, 7, 42, 1234, 99999} {
		b := NewBoard(8, 8, types, seed)
		b.Init()

		if strings.ContainsRune(b.String(), '.') {
			t.Errorf("seed %d: empty cells after Init", seed)
		}
		if groups := b.FindMatches(); len(groups) != 0 {
			t.Errorf("seed %d: %d residual matches after Init:\n%s", seed, len(groups), b.String())
		}
	}
}

func TestShufflePreservesMultisetAndQuiescence(t *testing.T) {
	types := []TileType{TileRed, TileGreen, TileBlue, TileYellow}
	for _, seed := range []int64{3, 17, 2024} {
		b := NewBoard(8, 8, types, seed)
		b.Init()
		before := b.TypeCounts()

		b.Shuffle()

		after := b.TypeCounts()
		for tt, n := range before {
			if after[tt] != n {
				t.Errorf("seed %d: type %v count %d -> %d", seed, tt, n, after[tt])
			}
		}
		if groups := b.FindMatches(); len(groups) != 0 {
			t.Errorf("seed %d: %d matches after shuffle", seed, len(groups))
		}
	}
}

func TestInitFromLayoutErrors(t *testing.T) {
	b := NewBoard(3, 3, []TileType{TileRed, TileGreen, TileBlue}, 1)

	if err := b.InitFromLayout([]string{"rgb", "gbr"}); err == nil {
		t.Error("accepted a layout with too few rows")
	}
	if err := b.InitFromLayout([]string{"rgb", "gb", "brg"}); err == nil {
		t.Error("accepted a ragged layout")
	}
	if err := b.InitFromLayout([]string{"rgb", "gxr", "brg"}); err == nil {
		t.Error("accepted an unknown glyph")
	}
}
