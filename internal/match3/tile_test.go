package match3

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Tile
		expected bool
	}{
		{
			name:     "same type normal tiles",
			a:        &Tile{Type: TileRed},
			b:        &Tile{Type: TileRed},
			expected: true,
		},
		{
			name:     "different types",
			a:        &Tile{Type: TileRed},
			b:        &Tile{Type: TileBlue},
			expected: false,
		},
		{
			name:     "special never matches normal of same type",
			a:        &Tile{Type: TileRed, Special: SpecialBomb},
			b:        &Tile{Type: TileRed},
			expected: false,
		},
		{
			name:     "two specials of same type never match",
			a:        &Tile{Type: TileRed, Special: SpecialBomb},
			b:        &Tile{Type: TileRed, Special: SpecialColorBomb},
			expected: false,
		},
		{
			name:     "nil other",
			a:        &Tile{Type: TileRed},
			b:        nil,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Matches(tc.b); got != tc.expected {
				t.Errorf("Matches() = %v, expected %v", got, tc.expected)
			}
			// Matching is symmetric
			if tc.b != nil {
				if got := tc.b.Matches(tc.a); got != tc.expected {
					t.Errorf("Matches() (reversed) = %v, expected %v", got, tc.expected)
				}
			}
		})
	}
}

func TestMakeSpecialOverwrites(t *testing.T) {
	tile := &Tile{Type: TileGreen}

	tile.MakeSpecial(SpecialBomb)
	if tile.Special != SpecialBomb {
		t.Fatalf("Special = %v, expected bomb", tile.Special)
	}

	// Reassigning overwrites; a tile holds at most one kind
	tile.MakeSpecial(SpecialColorBomb)
	if tile.Special != SpecialColorBomb {
		t.Errorf("Special = %v, expected color_bomb after reassignment", tile.Special)
	}
}

func TestIsAdjacentTo(t *testing.T) {
	center := &Tile{Col: 3, Row: 3}

	tests := []struct {
		name     string
		col, row int
		expected bool
	}{
		{"left", 2, 3, true},
		{"right", 4, 3, true},
		{"above", 3, 2, true},
		{"below", 3, 4, true},
		{"diagonal", 4, 4, false},
		{"same cell", 3, 3, false},
		{"two apart", 5, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := &Tile{Col: tc.col, Row: tc.row}
			if got := center.IsAdjacentTo(other); got != tc.expected {
				t.Errorf("IsAdjacentTo(%d,%d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
			}
		})
	}
}

func TestParseTileType(t *testing.T) {
	for tt := TileType(0); tt < tileTypeCount; tt++ {
		byName, err := ParseTileType(tt.String())
		if err != nil || byName != tt {
			t.Errorf("ParseTileType(%q) = %v, %v", tt.String(), byName, err)
		}
		byGlyph, err := ParseTileType(string(tt.Glyph()))
		if err != nil || byGlyph != tt {
			t.Errorf("ParseTileType(%q) = %v, %v", string(tt.Glyph()), byGlyph, err)
		}
	}

	if _, err := ParseTileType("mauve"); err == nil {
		t.Error("ParseTileType accepted an unknown type")
	}
}
