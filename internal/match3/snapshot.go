package match3

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick       uint64
	State      State
	Phase      Phase
	Score      int
	MovesLeft  int
	Combo      int
	Stars      int
	Objectives map[TileType]int
	Board      string // glyph dump, '.' = empty, uppercase = special
}

// Snapshot returns the current session snapshot.
func (e *Engine) Snapshot() Snapshot {
	board := ""
	if e.board != nil {
		board = e.board.String()
	}
	return Snapshot{
		Tick:       e.tick,
		State:      e.state,
		Phase:      e.phase,
		Score:      e.score,
		MovesLeft:  e.moveBudget,
		Combo:      e.combo,
		Stars:      e.stars,
		Objectives: e.ObjectivesRemaining(),
		Board:      board,
	}
}
