package match3

// Listener receives session events, fired on state change. The presentation,
// economy, and analytics collaborators consume the session exclusively
// through this interface; the core never references any UI surface.
type Listener interface {
	// ScoreChanged fires whenever the session score changes.
	ScoreChanged(score int)

	// ObjectivesChanged fires with the remaining per-type counts whenever
	// any objective decreases.
	ObjectivesChanged(remaining map[TileType]int)

	// MovesChanged fires whenever the move budget changes.
	MovesChanged(remaining int)

	// Won fires once on entering the Won state.
	Won(stars int, score int)

	// Lost fires once on entering the Lost state.
	Lost()

	// TileRemoved fires for every tile leaving the board, for
	// animation/analytics hooks.
	TileRemoved(pos Position, tileType TileType)
}

// NopListener is a Listener that ignores every event. Embed it to implement
// only the callbacks you care about.
type NopListener struct{}

func (NopListener) ScoreChanged(int)                   {}
func (NopListener) ObjectivesChanged(map[TileType]int) {}
func (NopListener) MovesChanged(int)                   {}
func (NopListener) Won(int, int)                       {}
func (NopListener) Lost()                              {}
func (NopListener) TileRemoved(Position, TileType)     {}

var _ Listener = NopListener{}
