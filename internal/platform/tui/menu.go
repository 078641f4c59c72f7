package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// MenuChoice is what a menu entry leads to.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScoreboard
	ChoiceQuit
)

// MenuItem represents a selectable entry in the start menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
	GameID string // Set for ChoicePlay
}

// DefaultMenuItems returns the start menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Start", Choice: ChoicePlay, GameID: "tetris2048"},
		{Label: "Endless", Choice: ChoicePlay, GameID: "tetris2048_endless"},
		{Label: "High Scores", Choice: ChoiceScoreboard},
		{Label: "Quit", Choice: ChoiceQuit},
	}
}

// Rows above the first menu entry in View: blank, title, blank, best, blank.
const menuItemsTop = 5

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	best      int
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(m.items[0].GameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
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
		return m.choose(m.cursor)

	case MenuActionScoreboard:
		return m.choose(m.indexOf(ChoiceScoreboard))
	}

	return m, nil
}

// handleMouse selects the entry under a left click.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	i := m.itemAt(msg.X, msg.Y)
	if i < 0 {
		return m, nil
	}
	m.cursor = i
	return m.choose(i)
}

// itemAt returns the entry drawn at screen cell (x, y), or -1.
func (m MenuModel) itemAt(x, y int) int {
	i := y - menuItemsTop
	if i < 0 || i >= len(m.items) {
		return -1
	}
	label := m.itemLabel(i)
	left := (m.width - lipgloss.Width(label)) / 2
	if left < 0 {
		left = 0
	}
	if x < left || x >= left+lipgloss.Width(label) {
		return -1
	}
	return i
}

func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.items) {
		return m, nil
	}
	item := m.items[i]
	if item.Choice == ChoiceQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.selected = &item
	return m, tea.Quit
}

func (m MenuModel) indexOf(c MenuChoice) int {
	for i, item := range m.items {
		if item.Choice == c {
			return i
		}
	}
	return -1
}

func (m MenuModel) itemLabel(i int) string {
	return "[ " + m.items[i].Label + " ]"
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("T E T R I S   2 0 4 8", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(bestLine(m.best), m.width))
	b.WriteString("\n\n")

	for i := range m.items {
		label := m.itemLabel(i)
		pad := centerPad(label, m.width)
		if i == m.cursor {
			label = menuSelectedStyle.Render(label)
		}
		b.WriteString(pad + label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Up/Down: Navigate  |  Enter/Click: Select  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

func bestLine(best int) string {
	if best <= 0 {
		return "Merge falling tiles to reach 2048"
	}
	return fmt.Sprintf("Best: %d", best)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerPad(text, width) + text
}

func centerPad(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return ""
	}
	return strings.Repeat(" ", (width-w)/2)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.quitting || m.selected == nil:
		result.Quit = true
	case m.selected.Choice == ChoiceScoreboard:
		result.WantsScoreboard = true
	default:
		result.GameID = m.selected.GameID
	}
	return result
}
