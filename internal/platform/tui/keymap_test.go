package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetris2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"space", runeKey(' '), core.ActionHardDrop, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"h", runeKey('h'), core.ActionHold, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"f", runeKey('f'), core.ActionSpeedUp, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.expected, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	km.MapKeyToFrame(runeKey('h'), &frame)

	assert.Equal(t, core.ActionLeft, frame.First())
	assert.True(t, frame.Has(core.ActionHold))

	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame), "q requests quit")
	assert.False(t, frame.Has(core.ActionQuit), "quit is not queued as a game action")
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, km.MapKeyToMenuAction(tt.msg), tt.msg.String())
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	for _, b := range keys.ShortHelp() {
		assert.NotEmpty(t, b.Help().Key, "binding %v", b.Keys())
	}
	assert.Len(t, keys.FullHelp(), 3)
}
