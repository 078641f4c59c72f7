package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/storage"
)

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	require.IsType(t, ScoreboardModel{}, next)
	return next.(ScoreboardModel)
}

func TestScoreboardShowsResults(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.RunResult{
		{GameID: "tetris2048", Score: 900, MaxTile: 256, Level: 3, Outcome: storage.OutcomeLost},
		{GameID: "tetris2048", Score: 4100, MaxTile: 2048, Level: 7, Outcome: storage.OutcomeWon},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30)
	require.Equal(t, "tetris2048", m.CurrentMode(), "first registered mode")

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "4100", "2048", "won", "Played 2", "Won 1"} {
		assert.Contains(t, view, want)
	}
	assert.Less(t, strings.Index(view, "4100"), strings.Index(view, "900 "), "higher score listed first")
}

func TestScoreboardSwitchesModes(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveScore("tetris2048_endless", 777)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	require.NotContains(t, m.View(), "777", "classic tab")

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "tetris2048_endless", m.CurrentMode())
	assert.Contains(t, m.View(), "777")

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "tetris2048", m.CurrentMode(), "Tab wraps around")

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "tetris2048_endless", m.CurrentMode(), "Shift+Tab wraps backwards")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	assert.Contains(t, m.View(), "No score database")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := updateScoreboard(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())

	m = updateScoreboard(t, NewScoreboardModel(nil, 80, 24), runeKey('q'))
	assert.True(t, m.IsQuitting())
}
