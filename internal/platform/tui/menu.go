package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)

	menuBestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// menuItem pairs a level with its best stored result, if any.
type menuItem struct {
	level levels.Level
	best  *storage.ResultEntry
}

// MenuModel is the level selection menu.
type MenuModel struct {
	items     []menuItem
	cursor    int
	keyMapper *KeyMapper

	width  int
	height int

	selected       *levels.Level
	wantScoreboard bool
	quitting       bool
}

// NewMenuModel builds a menu from the loaded levels. Best results are read
// from the store when one is provided.
func NewMenuModel(lvls []levels.Level, store *storage.Store) MenuModel {
	items := make([]menuItem, 0, len(lvls))
	for _, lvl := range lvls {
		item := menuItem{level: lvl}
		if store != nil {
			if best, err := store.BestResult(lvl.ID); err == nil {
				item.best = best
			}
		}
		items = append(items, item)
	}
	return MenuModel{
		items:     items,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				lvl := m.items[m.cursor].level
				m.selected = &lvl
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.wantScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting || m.selected != nil || m.wantScoreboard {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("MATCH THREE"))
	sb.WriteString("\n\n")

	if len(m.items) == 0 {
		sb.WriteString(menuItemStyle.Render("No levels found."))
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%-20s %2d moves  %dx%d",
			item.level.Name,
			item.level.MoveBudget,
			item.level.BoardWidth, item.level.BoardHeight)

		if i == m.cursor {
			sb.WriteString(menuSelectedStyle.Render("> " + line))
		} else {
			sb.WriteString(menuItemStyle.Render("  " + line))
		}

		if item.best != nil {
			best := fmt.Sprintf("  best %d %s", item.best.Score, strings.Repeat("*", item.best.Stars))
			sb.WriteString(menuBestStyle.Render(best))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(menuHelpStyle.Render("\nup/down select | enter play | tab scores | q quit"))

	content := sb.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// WantsScoreboard returns true if the user asked for the scoreboard view.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantScoreboard
}

// IsQuitting returns true if the user chose to exit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu displays the level menu and returns the final model state.
func RunMenu(lvls []levels.Level, store *storage.Store) (MenuModel, error) {
	p := tea.NewProgram(NewMenuModel(lvls, store), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuModel{}, err
	}
	return final.(MenuModel), nil
}
