package match3

// State is the top-level session state.
type State int

const (
	NotStarted State = iota
	AwaitingInput
	Resolving
	Won
	Lost
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case AwaitingInput:
		return "awaiting_input"
	case Resolving:
		return "resolving"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "?"
	}
}

// Phase is the sub-state of Resolving. The cascade advances one phase per
// host tick so a presentation layer can animate removal, falling, and
// refill without the core depending on wall-clock timers.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRemoving
	PhaseFalling
	PhaseRefilling
	PhaseRescanning
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRemoving:
		return "removing"
	case PhaseFalling:
		return "falling"
	case PhaseRefilling:
		return "refilling"
	case PhaseRescanning:
		return "rescanning"
	default:
		return "?"
	}
}

// SwapResult is the outcome of SubmitSwap.
type SwapResult int

const (
	// SwapRejected means the swap was a no-op: session busy, positions out
	// of bounds, or not adjacent. No state changed.
	SwapRejected SwapResult = iota

	// SwapReverted means the tiles were swapped, produced no match, and
	// were swapped back. Board and move budget are untouched.
	SwapReverted

	// SwapAccepted means the swap produced at least one match; a move was
	// consumed and the session entered Resolving.
	SwapAccepted
)

// Engine owns the move budget, score, objectives, and the session state
// machine. It drives the Board and the power-up resolver and emits events
// consumed by presentation/economy/analytics collaborators. The engine is
// single-actor: the state guard is the entire mutual-exclusion discipline.
type Engine struct {
	rules    Rules
	listener Listener

	board *Board
	level LevelConfig

	state State
	phase Phase
	tick  uint64

	moveBudget int
	score      int
	combo      int
	stars      int
	objectives map[TileType]int

	pending      []MatchGroup
	cascadeIters int

	power powerResolver
}

// New creates an engine with the given rules. Events go nowhere until
// SetListener is called.
func New(rules Rules) *Engine {
	return &Engine{
		rules:    rules,
		listener: NopListener{},
		power:    newPowerResolver(),
	}
}

// SetListener installs the event consumer. A nil listener silences events.
func (e *Engine) SetListener(l Listener) {
	if l == nil {
		e.listener = NopListener{}
		return
	}
	e.listener = l
}

// StartLevel resets the board, objectives, move budget, score, and combo
// counter, and transitions to AwaitingInput. A malformed config falls back
// to the built-in default level. The previous board, if any, is discarded.
func (e *Engine) StartLevel(lc LevelConfig, seed int64) {
	lc = lc.normalized()
	e.level = lc

	e.board = NewBoard(lc.BoardWidth, lc.BoardHeight, lc.TileTypes, seed)
	e.board.SetMaxFillPasses(e.rules.MaxFillPasses)
	if len(lc.Layout) > 0 {
		if err := e.board.InitFromLayout(lc.Layout); err != nil {
			// Layout problems were either caught by Validate or indicate a
			// ragged layout; fall back to a random fill.
			e.board.Init()
		}
	} else {
		e.board.Init()
	}

	e.objectives = make(map[TileType]int, len(lc.Objectives))
	for t, n := range lc.Objectives {
		e.objectives[t] = n
	}

	e.moveBudget = lc.MoveBudget
	e.score = 0
	e.combo = 0
	e.stars = 0
	e.pending = nil
	e.cascadeIters = 0
	e.power.disarm()

	e.state = AwaitingInput
	e.phase = PhaseIdle

	e.listener.ScoreChanged(e.score)
	e.listener.MovesChanged(e.moveBudget)
	e.listener.ObjectivesChanged(e.ObjectivesRemaining())
}

// SubmitSwap attempts a player swap of two adjacent cells. A swap producing
// no match is reverted in place and costs nothing.
func (e *Engine) SubmitSwap(a, b Position) SwapResult {
	if e.state != AwaitingInput {
		return SwapRejected
	}
	if !e.board.InBounds(a) || !e.board.InBounds(b) {
		return SwapRejected
	}
	if !e.board.IsAdjacent(a, b) {
		return SwapRejected
	}

	e.board.Swap(a, b)
	matches := e.board.FindMatches()
	if len(matches) == 0 {
		e.board.Swap(a, b)
		return SwapReverted
	}

	e.moveBudget--
	e.listener.MovesChanged(e.moveBudget)
	e.combo = 0
	e.cascadeIters = 0
	e.pending = matches
	e.state = Resolving
	e.phase = PhaseRemoving
	return SwapAccepted
}

// Tick advances the session by one logical step. Outside Resolving it does
// nothing: the engine performs no background work, so pausing is simply not
// delivering ticks.
func (e *Engine) Tick() {
	e.tick++
	if e.state != Resolving {
		return
	}

	switch e.phase {
	case PhaseRemoving:
		e.removePending()
		e.phase = PhaseFalling

	case PhaseFalling:
		e.board.ApplyGravity()
		e.phase = PhaseRefilling

	case PhaseRefilling:
		e.board.Refill()
		e.phase = PhaseRescanning

	case PhaseRescanning:
		matches := e.board.FindMatches()
		e.cascadeIters++
		// The iteration cap keeps the cascade bounded by the cell count
		// even under pathological refill rolls.
		if len(matches) > 0 && e.cascadeIters < e.board.Width()*e.board.Height() {
			e.pending = matches
			e.phase = PhaseRemoving
			return
		}
		e.finishResolving()
	}
}

// Resolve drains the cascade synchronously, for headless callers that do
// not animate phases.
func (e *Engine) Resolve() {
	for e.state == Resolving {
		e.Tick()
	}
}

// removePending applies one cascade iteration's bookkeeping: scoring,
// objective decrements, special upgrades, and cell removal.
func (e *Engine) removePending() {
	groups := e.pending
	e.pending = nil

	// A match of 4 upgrades its first tile to a line special oriented
	// across the match; 5 or more upgrades it to a color bomb. The upgraded
	// tile stays on the board.
	kept := make(map[*Tile]bool)
	for _, g := range groups {
		kind := specialForMatch(g)
		if kind == SpecialNone {
			continue
		}
		keeper := g.Tiles[0]
		if !kept[keeper] {
			keeper.MakeSpecial(kind)
			kept[keeper] = true
		}
	}

	// Overlapping row/column groups may share tiles; remove each tile once.
	removed := make(map[*Tile]bool)
	count := 0
	for _, g := range groups {
		for _, t := range g.Tiles {
			if kept[t] || removed[t] {
				continue
			}
			removed[t] = true
			e.removeTile(t)
			count++
		}
	}

	e.score += count*e.rules.BaseUnitValue + e.combo*e.rules.ComboBonusValue
	e.combo++

	e.listener.ScoreChanged(e.score)
	e.listener.ObjectivesChanged(e.ObjectivesRemaining())
}

// specialForMatch returns the special kind a match group earns, or
// SpecialNone for plain 3-matches.
func specialForMatch(g MatchGroup) SpecialKind {
	switch {
	case g.Len() >= 5:
		return SpecialColorBomb
	case g.Len() == 4 && g.Orientation == Horizontal:
		return SpecialLineVertical
	case g.Len() == 4:
		return SpecialLineHorizontal
	default:
		return SpecialNone
	}
}

// removeTile clears the tile's cell and updates objective bookkeeping.
func (e *Engine) removeTile(t *Tile) {
	pos := t.Pos()
	if e.board.TileAt(pos) == t {
		e.board.Remove(pos)
	}
	if n, ok := e.objectives[t.Type]; ok && n > 0 {
		e.objectives[t.Type] = n - 1
	}
	e.listener.TileRemoved(pos, t.Type)
}

// finishResolving evaluates the terminal conditions after the cascade.
func (e *Engine) finishResolving() {
	e.phase = PhaseIdle

	if e.objectivesMet() {
		e.state = Won
		e.stars = e.starRating()
		e.listener.Won(e.stars, e.score)
		return
	}
	if e.moveBudget == 0 {
		e.state = Lost
		e.listener.Lost()
		return
	}
	e.state = AwaitingInput
}

// starRating maps the remaining move budget to a three-tier rating.
func (e *Engine) starRating() int {
	switch {
	case e.moveBudget >= e.rules.GenerousMoves:
		return 3
	case e.moveBudget > e.rules.TightMoves:
		return 2
	default:
		return 1
	}
}

func (e *Engine) objectivesMet() bool {
	for _, n := range e.objectives {
		if n > 0 {
			return false
		}
	}
	return true
}

// ActivatePower triggers a power-up. Targeted kinds arm the resolver and
// await ResolvePowerTarget; instantaneous kinds apply immediately. Fails
// closed with PowerUnavailable when inventory is empty or the session is
// not awaiting input. Power-up use never consumes a move.
func (e *Engine) ActivatePower(kind PowerType) PowerResult {
	if e.state != AwaitingInput || !e.power.available(kind) {
		return PowerUnavailable
	}

	if kind.Targeted() {
		e.power.arm(kind)
		return PowerArmed
	}

	e.power.consume(kind)
	switch kind {
	case PowerShuffle:
		e.board.Shuffle()
	case PowerExtraMoves:
		e.moveBudget += e.rules.ExtraMovesGrant
		e.listener.MovesChanged(e.moveBudget)
	}
	return PowerApplied
}

// CancelPower disarms a pending targeted power-up without consuming it.
func (e *Engine) CancelPower() {
	e.power.disarm()
}

// ArmedPower returns the armed kind, if any.
func (e *Engine) ArmedPower() (PowerType, bool) {
	return e.power.armed, e.power.isArmed
}

// ResolvePowerTarget executes the armed power-up at the target cell,
// consumes one inventory, and runs a cascade pass exactly as if a player
// match had occurred, but without decrementing the move budget or resetting
// the combo counter. An invalid target leaves the resolver armed.
func (e *Engine) ResolvePowerTarget(pos Position) PowerResult {
	if e.state != AwaitingInput || !e.power.isArmed {
		return PowerUnavailable
	}
	if e.board.TileAt(pos) == nil {
		return PowerUnavailable
	}

	kind := e.power.armed
	e.power.disarm()
	e.power.consume(kind)
	e.applyPowerEffect(kind, pos)
	return PowerApplied
}

// applyPowerEffect removes the affected tiles and enters the cascade at the
// falling phase (removal already happened). Special tiles destroyed along
// the way detonate, chaining through a worklist.
func (e *Engine) applyPowerEffect(kind PowerType, pos Position) {
	queue := e.powerTargets(kind, pos)
	count := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		t := e.board.TileAt(p)
		if t == nil {
			continue
		}
		special := t.Special
		tileType := t.Type
		e.removeTile(t)
		count++
		if special != SpecialNone {
			queue = append(queue, e.detonationTargets(special, p, tileType)...)
		}
	}

	e.score += count * e.powerUnitValue(kind)
	e.listener.ScoreChanged(e.score)
	e.listener.ObjectivesChanged(e.ObjectivesRemaining())

	e.cascadeIters = 0
	e.state = Resolving
	e.phase = PhaseFalling
}

// powerTargets returns the initial removal set for a targeted power-up.
func (e *Engine) powerTargets(kind PowerType, pos Position) []Position {
	switch kind {
	case PowerHammer:
		return []Position{pos}
	case PowerBomb:
		return e.neighborhood3x3(pos)
	case PowerColorBomb:
		t := e.board.TileAt(pos)
		if t == nil {
			return nil
		}
		return e.positionsOfType(t.Type)
	default:
		return nil
	}
}

// detonationTargets returns the cells cleared by a destroyed special tile.
func (e *Engine) detonationTargets(kind SpecialKind, pos Position, tileType TileType) []Position {
	switch kind {
	case SpecialBomb:
		return e.neighborhood3x3(pos)
	case SpecialLineHorizontal:
		cells := make([]Position, 0, e.board.Width())
		for col := 0; col < e.board.Width(); col++ {
			cells = append(cells, Position{Col: col, Row: pos.Row})
		}
		return cells
	case SpecialLineVertical:
		cells := make([]Position, 0, e.board.Height())
		for row := 0; row < e.board.Height(); row++ {
			cells = append(cells, Position{Col: pos.Col, Row: row})
		}
		return cells
	case SpecialColorBomb:
		return e.positionsOfType(tileType)
	default:
		return nil
	}
}

// neighborhood3x3 returns the in-bounds cells of the 3x3 area around pos.
func (e *Engine) neighborhood3x3(pos Position) []Position {
	cells := make([]Position, 0, 9)
	for row := pos.Row - 1; row <= pos.Row+1; row++ {
		for col := pos.Col - 1; col <= pos.Col+1; col++ {
			p := Position{Col: col, Row: row}
			if e.board.InBounds(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// positionsOfType returns the positions of every tile with the given type.
func (e *Engine) positionsOfType(tt TileType) []Position {
	var cells []Position
	for row := 0; row < e.board.Height(); row++ {
		for col := 0; col < e.board.Width(); col++ {
			p := Position{Col: col, Row: row}
			if t := e.board.TileAt(p); t != nil && t.Type == tt {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// powerUnitValue returns the per-tile score rate for a power-up removal.
func (e *Engine) powerUnitValue(kind PowerType) int {
	switch kind {
	case PowerHammer:
		return e.rules.HammerUnitValue
	case PowerBomb:
		return e.rules.BombUnitValue
	case PowerColorBomb:
		return e.rules.ColorBombUnitValue
	default:
		return e.rules.BaseUnitValue
	}
}

// SetInventory installs the persisted power-up counts at session start.
// Negative counts are clamped to zero.
func (e *Engine) SetInventory(inv Inventory) {
	e.power.inventory = make(Inventory, len(inv))
	for k, v := range inv {
		if v > 0 {
			e.power.inventory[k] = v
		}
	}
}

// Inventory returns a copy of the current power-up counts, for the
// persistence collaborator to save.
func (e *Engine) Inventory() Inventory {
	return e.power.inventory.Clone()
}

// State returns the session state.
func (e *Engine) State() State {
	return e.state
}

// Phase returns the current resolving sub-phase (PhaseIdle outside
// Resolving).
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the session score.
func (e *Engine) Score() int {
	return e.score
}

// MovesLeft returns the remaining move budget.
func (e *Engine) MovesLeft() int {
	return e.moveBudget
}

// Combo returns the cascade iteration counter of the current action.
func (e *Engine) Combo() int {
	return e.combo
}

// Stars returns the star rating (set on Won, 0 otherwise).
func (e *Engine) Stars() int {
	return e.stars
}

// Board returns the live board. Callers must treat it as read-only while
// the session runs.
func (e *Engine) Board() *Board {
	return e.board
}

// Level returns the active level config.
func (e *Engine) Level() LevelConfig {
	return e.level
}

// ObjectivesRemaining returns a copy of the remaining per-type counts.
func (e *Engine) ObjectivesRemaining() map[TileType]int {
	out := make(map[TileType]int, len(e.objectives))
	for t, n := range e.objectives {
		out[t] = n
	}
	return out
}
