package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorValid(t *testing.T) {
	for c := ColorDefault; c < ColorCount; c++ {
		assert.True(t, c.Valid(), "Color(%d)", c)
	}
	assert.False(t, ColorCount.Valid())
	assert.False(t, Color(200).Valid())
}
