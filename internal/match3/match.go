package match3

// Orientation is the axis of a match group.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the axis name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MatchGroup is a run of three or more same-type, non-special, line-adjacent
// tiles found by a scan. Groups are transient: produced by FindMatches and
// consumed within the same resolving pass, never persisted.
type MatchGroup struct {
	Orientation Orientation
	Tiles       []*Tile // In scan order: left-to-right or top-to-bottom
}

// Len returns the number of tiles in the group.
func (m MatchGroup) Len() int {
	return len(m.Tiles)
}

// FindMatches scans every row left-to-right and every column top-to-bottom
// independently. Within each line a run of consecutive, mutually matching
// tiles is tracked; whenever the run terminates (type change, special tile,
// empty cell, or line end) with length >= 3 it is recorded as a MatchGroup.
// Special tiles never extend a run, so matches never chain through them.
func (b *Board) FindMatches() []MatchGroup {
	var groups []MatchGroup

	flush := func(run []*Tile, o Orientation) []*Tile {
		if len(run) >= 3 {
			groups = append(groups, MatchGroup{
				Orientation: o,
				Tiles:       append([]*Tile(nil), run...),
			})
		}
		return run[:0]
	}

	// Rows
	for row := 0; row < b.height; row++ {
		var run []*Tile
		for col := 0; col < b.width; col++ {
			t := b.grid[row][col]
			if len(run) > 0 && t.Matches(run[len(run)-1]) {
				run = append(run, t)
				continue
			}
			run = flush(run, Horizontal)
			if t != nil && !t.IsSpecial() {
				run = append(run, t)
			}
		}
		flush(run, Horizontal)
	}

	// Columns
	for col := 0; col < b.width; col++ {
		var run []*Tile
		for row := 0; row < b.height; row++ {
			t := b.grid[row][col]
			if len(run) > 0 && t.Matches(run[len(run)-1]) {
				run = append(run, t)
				continue
			}
			run = flush(run, Vertical)
			if t != nil && !t.IsSpecial() {
				run = append(run, t)
			}
		}
		flush(run, Vertical)
	}

	return groups
}
