package tetris2048

import "math/rand"

// DefaultSpawn4Probability is the chance that a new tile carries 4 instead of 2.
const DefaultSpawn4Probability = 0.10

// Tile is a single numbered square. The zero value is an empty cell.
type Tile struct {
	Value int
}

// NewTile returns a tile valued 4 with probability spawn4Prob, otherwise 2.
func NewTile(rng *rand.Rand, spawn4Prob float64) Tile {
	if rng.Float64() < spawn4Prob {
		return Tile{Value: 4}
	}
	return Tile{Value: 2}
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Position is a grid coordinate. Row 0 is the floor; y grows upward.
type Position struct {
	X int
	Y int
}

// Translate returns the position shifted by (dx, dy).
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
