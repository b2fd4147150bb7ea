package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/levels"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

const feedCapacity = 4

// eventFeed collects session events into a short message log shown under
// the board. It implements match3.Listener; the model also pushes input
// feedback ("no match", "hammer armed") into it directly.
type eventFeed struct {
	match3.NopListener
	lines []string
}

func (f *eventFeed) push(line string) {
	f.lines = append(f.lines, line)
	if len(f.lines) > feedCapacity {
		f.lines = f.lines[len(f.lines)-feedCapacity:]
	}
}

func (f *eventFeed) Won(stars, score int) {
	f.push(fmt.Sprintf("Level complete! %d points, %s", score, strings.Repeat("*", stars)))
}

func (f *eventFeed) Lost() {
	f.push("Out of moves.")
}

// GameModel is the Bubble Tea model for playing one level.
type GameModel struct {
	engine    *match3.Engine
	level     levels.Level
	store     *storage.Store
	config    core.RuntimeConfig
	screen    *core.Screen
	keyMapper *KeyMapper
	feed      *eventFeed

	cursor   match3.Position
	selected *match3.Position

	startInv    match3.Inventory
	resultSaved bool
	quitting    bool
	backToMenu  bool
}

// NewGameModel creates a model that plays the given level.
func NewGameModel(level levels.Level, rules match3.Rules, inv match3.Inventory, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	feed := &eventFeed{}
	engine := match3.New(rules)
	engine.SetListener(feed)

	return GameModel{
		engine:    engine,
		level:     level,
		store:     store,
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper: NewKeyMapper(),
		feed:      feed,
		startInv:  inv.Clone(),
	}
}

// Init starts the level and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.engine.StartLevel(m.level.LevelConfig, m.config.Seed)
	m.engine.SetInventory(m.startInv)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveInventory()
		m.quitting = true
		return m, tea.Quit
	}

	board := m.engine.Board()
	switch action {
	case core.ActionUp:
		m.cursor.Row = core.Max(0, m.cursor.Row-1)
	case core.ActionDown:
		m.cursor.Row = core.Min(board.Height()-1, m.cursor.Row+1)
	case core.ActionLeft:
		m.cursor.Col = core.Max(0, m.cursor.Col-1)
	case core.ActionRight:
		m.cursor.Col = core.Min(board.Width()-1, m.cursor.Col+1)

	case core.ActionSelect:
		m.applySelect()

	case core.ActionBack:
		if _, armed := m.engine.ArmedPower(); armed {
			m.engine.CancelPower()
			m.feed.push("Power-up cancelled.")
		} else if m.selected != nil {
			m.selected = nil
		} else if m.isFinished() {
			m.saveInventory()
			m.backToMenu = true
			// The session model intercepts BackToMenu and swallows the
			// quit; standalone runs exit here.
			return m, tea.Quit
		}

	case core.ActionRestart:
		if m.isFinished() {
			m.restart()
		}

	case core.ActionHammer, core.ActionBomb, core.ActionColorBomb, core.ActionShuffle, core.ActionMoves:
		m.activatePower(action)
	}

	return m, nil
}

// applySelect handles the select key: fire an armed power-up, pick a cell,
// or attempt a swap with the previously picked cell.
func (m *GameModel) applySelect() {
	if m.isFinished() {
		return
	}

	if kind, armed := m.engine.ArmedPower(); armed {
		switch m.engine.ResolvePowerTarget(m.cursor) {
		case match3.PowerApplied:
			m.feed.push(fmt.Sprintf("%s fired at (%d,%d).", kind, m.cursor.Col, m.cursor.Row))
		default:
			m.feed.push("Invalid target.")
		}
		return
	}

	if m.selected == nil {
		sel := m.cursor
		m.selected = &sel
		return
	}
	if *m.selected == m.cursor {
		m.selected = nil
		return
	}

	if m.engine.Board().IsAdjacent(*m.selected, m.cursor) {
		switch m.engine.SubmitSwap(*m.selected, m.cursor) {
		case match3.SwapReverted:
			m.feed.push("No match. Swap reverted.")
		case match3.SwapRejected:
			m.feed.push("Can't swap right now.")
		}
		m.selected = nil
		return
	}

	// Not adjacent: move the selection instead
	sel := m.cursor
	m.selected = &sel
}

// activatePower triggers the power-up bound to the action key.
func (m *GameModel) activatePower(action core.Action) {
	if m.isFinished() {
		return
	}

	kind, ok := powerForAction(action)
	if !ok {
		return
	}

	switch m.engine.ActivatePower(kind) {
	case match3.PowerArmed:
		m.feed.push(fmt.Sprintf("%s armed. Move the cursor and press space.", kind))
	case match3.PowerApplied:
		m.feed.push(fmt.Sprintf("%s used.", kind))
	case match3.PowerUnavailable:
		m.feed.push(fmt.Sprintf("%s not available.", kind))
	}
}

// powerForAction maps a power-up action key to the engine power type.
func powerForAction(a core.Action) (match3.PowerType, bool) {
	switch a {
	case core.ActionHammer:
		return match3.PowerHammer, true
	case core.ActionBomb:
		return match3.PowerBomb, true
	case core.ActionColorBomb:
		return match3.PowerColorBomb, true
	case core.ActionShuffle:
		return match3.PowerShuffle, true
	case core.ActionMoves:
		return match3.PowerExtraMoves, true
	default:
		return 0, false
	}
}

// handleTick advances the cascade one phase per tick so removal, falling,
// and refill are visible as separate frames.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Tick()

	if m.isFinished() && !m.resultSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(m.level.ID, m.engine.Score(), m.engine.Stars(), m.engine.State() == match3.Won)
		}
		m.saveInventory()
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh session of the same level. The remaining power-up
// inventory carries over.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.engine.StartLevel(m.level.LevelConfig, m.config.Seed)
	m.cursor = match3.Position{}
	m.selected = nil
	m.resultSaved = false
	m.feed.push("New attempt.")
}

func (m GameModel) isFinished() bool {
	state := m.engine.State()
	return state == match3.Won || state == match3.Lost
}

func (m GameModel) saveInventory() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveInventory(m.engine.Inventory())
}

// View renders the session.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// render draws the board, HUD, and message feed into the screen buffer.
func (m GameModel) render() {
	s := m.screen
	s.Clear()

	board := m.engine.Board()
	w, h := board.Width(), board.Height()

	// Title
	s.DrawTextColored(1, 0, m.level.Name, core.ColorBrightWhite)
	s.DrawTextColored(1+len(m.level.Name)+2, 0, statusLine(m.engine), core.ColorGray)

	// Board box. Tiles are spaced two columns apart so cursor and selection
	// markers fit between them.
	boxX, boxY := 1, 1
	box := core.NewRect(boxX, boxY, w*2+3, h+2)
	s.DrawBox(box)

	tileX := func(col int) int { return boxX + 2 + col*2 }
	tileY := func(row int) int { return boxY + 1 + row }

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			t := board.TileAt(match3.Position{Col: col, Row: row})
			if t == nil {
				s.SetColored(tileX(col), tileY(row), '.', core.ColorGray)
				continue
			}
			glyph := t.Type.Glyph()
			if t.IsSpecial() {
				glyph = glyph - 'a' + 'A'
			}
			s.SetColored(tileX(col), tileY(row), glyph, tileColor(t))
		}
	}

	// Selection parentheses, then cursor brackets on top
	if m.selected != nil {
		x, y := tileX(m.selected.Col), tileY(m.selected.Row)
		s.SetColored(x-1, y, '(', core.ColorWhite)
		s.SetColored(x+1, y, ')', core.ColorWhite)
	}
	cx, cy := tileX(m.cursor.Col), tileY(m.cursor.Row)
	s.SetColored(cx-1, cy, '[', core.ColorBrightWhite)
	s.SetColored(cx+1, cy, ']', core.ColorBrightWhite)

	m.renderHUD(box.Right()+2, boxY)

	// Message feed below the board
	feedY := box.Bottom() + 1
	for i, line := range m.feed.lines {
		s.DrawTextColored(1, feedY+i, line, core.ColorGray)
	}

	// Controls footer
	controls := "arrows/wasd move | space select | 1-5 power-ups | esc cancel | q quit"
	if m.isFinished() {
		controls = "r restart | esc back | q quit"
	}
	s.DrawTextColored(1, s.Height()-1, controls, core.ColorGray)
}

// renderHUD draws score, moves, objectives, and the inventory column.
func (m GameModel) renderHUD(x, y int) {
	s := m.screen
	e := m.engine

	s.DrawText(x, y, fmt.Sprintf("Score  %d", e.Score()))
	s.DrawText(x, y+1, fmt.Sprintf("Moves  %d", e.MovesLeft()))
	if e.Combo() > 1 {
		s.DrawTextColored(x, y+2, fmt.Sprintf("Combo  x%d", e.Combo()), core.ColorBrightYellow)
	}

	// Objectives, sorted by type for a stable display
	oy := y + 4
	s.DrawTextColored(x, oy, "Objectives", core.ColorBrightWhite)
	remaining := e.ObjectivesRemaining()
	types := make([]match3.TileType, 0, len(remaining))
	for tt := range remaining {
		types = append(types, tt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for i, tt := range types {
		line := fmt.Sprintf("%-7s %d", tt, remaining[tt])
		color := tileColors[tt]
		if remaining[tt] == 0 {
			color = core.ColorGray
		}
		s.DrawTextColored(x, oy+1+i, line, color)
	}

	// Inventory with key bindings
	iy := oy + len(types) + 2
	s.DrawTextColored(x, iy, "Power-ups", core.ColorBrightWhite)
	armedKind, armed := e.ArmedPower()
	inv := e.Inventory()
	for i, kind := range match3.PowerTypes() {
		line := fmt.Sprintf("%d %-11s x%d", i+1, kind, inv[kind])
		color := core.ColorDefault
		if inv[kind] == 0 {
			color = core.ColorGray
		}
		if armed && kind == armedKind {
			line += "  <armed>"
			color = core.ColorBrightYellow
		}
		s.DrawTextColored(x, iy+1+i, line, color)
	}
}

// statusLine summarizes the session state for the title row.
func statusLine(e *match3.Engine) string {
	switch e.State() {
	case match3.Won:
		return fmt.Sprintf("WON  %s", strings.Repeat("*", e.Stars()))
	case match3.Lost:
		return "LOST"
	case match3.Resolving:
		return "resolving..."
	default:
		return ""
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single level as a standalone Bubble Tea program.
func Run(level levels.Level, rules match3.Rules, inv match3.Inventory, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(level, rules, inv, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
