package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/core"
)

func newTestMenu() MenuModel {
	return NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	require.IsType(t, MenuModel{}, next)
	return next.(MenuModel)
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMenuEnterStartsClassic(t *testing.T) {
	m := updateMenu(t, newTestMenu(), tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	assert.False(t, res.Quit)
	assert.Equal(t, "tetris2048", res.GameID)
}

func TestMenuNavigate(t *testing.T) {
	m := newTestMenu()
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "tetris2048_endless", m.Result().GameID)
}

func TestMenuClickStart(t *testing.T) {
	m := newTestMenu()
	label := "[ Start ]"
	x := (80-len(label))/2 + 1

	m = updateMenu(t, m, click(x, menuItemsTop))
	assert.Equal(t, "tetris2048", m.Result().GameID)
}

func TestMenuClickMisses(t *testing.T) {
	m := newTestMenu()

	tests := []tea.MouseMsg{
		click(40, 0),
		click(0, menuItemsTop),
		click(40, menuItemsTop+len(m.items)),
		{X: 40, Y: menuItemsTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 40, Y: menuItemsTop, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}

	for _, msg := range tests {
		got := updateMenu(t, m, msg)
		assert.Nil(t, got.Selected(), "mouse %+v", msg)
		assert.False(t, got.IsQuitting(), "mouse %+v", msg)
	}
}

func TestMenuClickQuit(t *testing.T) {
	m := newTestMenu()
	label := "[ Quit ]"
	x := (80-len(label))/2 + 2

	m = updateMenu(t, m, click(x, menuItemsTop+3))
	assert.True(t, m.IsQuitting())
	assert.True(t, m.Result().Quit)
}

func TestMenuTabOpensScoreboard(t *testing.T) {
	m := updateMenu(t, newTestMenu(), tea.KeyMsg{Type: tea.KeyTab})

	assert.True(t, m.Result().WantsScoreboard)
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := updateMenu(t, newTestMenu(), tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 30, m.Config().ScreenH)
}

func TestMenuView(t *testing.T) {
	view := newTestMenu().View()

	for _, want := range []string{"T E T R I S", "[ Start ]", "[ Endless ]", "[ High Scores ]", "[ Quit ]"} {
		assert.Contains(t, view, want)
	}

	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), menuItemsTop)
	assert.Contains(t, lines[menuItemsTop], "Start")
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab", centerText("ab", 6))
	assert.Equal(t, "toolong", centerText("toolong", 3), "text wider than the screen is unchanged")
}
