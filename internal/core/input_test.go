package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	assert.Equal(t, ActionNone, f.First())

	f.Set(ActionRotate)
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	assert.Equal(t, ActionRotate, f.First())
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionRotate))

	clone := f.Clone()
	f.Clear()

	assert.False(t, f.Has(ActionLeft), "cleared frame")
	assert.Equal(t, ActionNone, f.First())
	assert.True(t, clone.Has(ActionLeft), "clone survives Clear")
	assert.Equal(t, ActionRotate, clone.First())
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionHardDrop, "HardDrop"},
		{ActionHold, "Hold"},
		{ActionSpeedUp, "SpeedUp"},
		{Action(999), "Unknown"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.action.String(), "Action(%d)", tc.action)
	}
}
