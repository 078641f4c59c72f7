package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 15}

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   int
		w, h     int
		expected Rect
	}{
		{"odd size", 10, 10, 5, 3, Rect{X: 8, Y: 9, W: 5, H: 3}},
		{"even size", 10, 10, 4, 2, Rect{X: 8, Y: 9, W: 4, H: 2}},
		{"at origin", 0, 0, 2, 2, Rect{X: -1, Y: -1, W: 2, H: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CenteredRect(tc.cx, tc.cy, tc.w, tc.h))
		})
	}
}
