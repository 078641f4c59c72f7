package tetris2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vertical builds a one-column block at (x, y) from values listed bottom-up.
func vertical(x, y int, values ...int) Block {
	tiles := newMatrix(len(values), 1)
	for i, v := range values {
		tiles[len(values)-1-i][0] = Tile{Value: v}
	}
	return Block{Tiles: tiles, Anchor: Position{X: x, Y: y}}
}

// column returns the values of column x from the floor up to the first gap.
func column(g *Grid, x int) []int {
	var out []int
	for y := range g.Height() {
		t := g.At(x, y)
		if t.Empty() {
			break
		}
		out = append(out, t.Value)
	}
	return out
}

func fill(g *Grid, y int, values ...int) {
	for x, v := range values {
		if v != 0 {
			g.set(x, y, Tile{Value: v})
		}
	}
}

func TestCommitPlacesBlock(t *testing.T) {
	g := NewGrid(Dimensions{Width: 6, Height: 8})
	r := g.Commit(vertical(2, 0, 2, 4, 8))

	assert.Equal(t, []int{2, 4, 8}, column(g, 2))
	assert.Equal(t, 3, r.Placed)
	assert.Zero(t, r.Points())
	assert.False(t, r.GameOver)
}

func TestCommitOutOfBoundsContinuesPlacement(t *testing.T) {
	g := NewGrid(Dimensions{Width: 6, Height: 8})
	r := g.Commit(vertical(0, 7, 2, 4))

	assert.True(t, r.GameOver)
	assert.True(t, g.GameOver())
	assert.Equal(t, 1, r.OutOfBounds)
	assert.Equal(t, 1, r.Placed)
	// The placed tile floats at the top row and is pruned
	assert.Equal(t, 1, r.Pruned)
	assert.Equal(t, 2, g.Score())
}

func TestCommitOverwritesOccupiedCell(t *testing.T) {
	g := NewGrid(Dimensions{Width: 6, Height: 8})
	g.set(0, 0, Tile{Value: 8})

	r := g.Commit(vertical(0, 0, 2))
	assert.False(t, r.GameOver)
	assert.False(t, g.GameOver())
	assert.Equal(t, 1, r.Overwritten)
	assert.Equal(t, 1, r.Placed)
	assert.Equal(t, 2, g.At(0, 0).Value)
	assert.Equal(t, 1, g.TileCount())
}

// A piece can slide down through an overhang because only the leading edge
// of each column is checked. Locking on top of it keeps the game running.
func TestLockThroughOverhangKeepsPlaying(t *testing.T) {
	dims := Dimensions{Width: 6, Height: 8}
	g := NewGrid(dims)
	for y := range dims.Height {
		g.set(0, y, Tile{Value: 2 << (y % 2)})
	}
	g.set(1, 7, Tile{Value: 8})
	g.set(2, 5, Tile{Value: 2})

	p, err := NewPiece(ShapeO, dims, rand.New(rand.NewSource(1)), 0)
	require.NoError(t, err)
	p.Matrix = [][]Tile{{{Value: 16}, {Value: 32}}, {{Value: 64}, {Value: 128}}}
	p.Anchor = Position{X: 1, Y: 7}

	require.True(t, p.Move(DirDown, g))
	require.False(t, p.Move(DirDown, g))

	r := g.Commit(p.Bounded())
	assert.False(t, r.GameOver)
	assert.False(t, g.GameOver())
	assert.Zero(t, r.OutOfBounds)
	assert.Equal(t, 1, r.Overwritten)
	assert.Equal(t, 4, r.Placed)
	assert.Equal(t, 16, g.At(1, 7).Value)
	assert.Equal(t, 128, g.At(2, 6).Value)
}

func TestGameOverIsSticky(t *testing.T) {
	g := NewGrid(Dimensions{Width: 6, Height: 8})
	g.Commit(vertical(0, 8, 2))
	require.True(t, g.GameOver())

	r := g.Commit(vertical(3, 0, 4))
	assert.True(t, r.GameOver)
}

func TestMergeSequences(t *testing.T) {
	tests := []struct {
		name  string
		stack []int
		want  []int
		score int
	}{
		{"three twos", []int{2, 2, 2}, []int{4, 2}, 4},
		{"four twos merge pairwise", []int{2, 2, 2, 2}, []int{4, 4}, 8},
		{"cascade into eight", []int{2, 2, 4}, []int{8}, 12},
		{"no step back after upper merge", []int{4, 2, 2}, []int{4, 4}, 4},
		{"no equal neighbours", []int{2, 4, 2}, []int{2, 4, 2}, 0},
		{"single tile", []int{16}, []int{16}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(Dimensions{Width: 4, Height: 8})
			r := g.Commit(vertical(1, 0, tc.stack...))

			assert.Equal(t, tc.want, column(g, 1))
			assert.Equal(t, tc.score, g.Score())
			assert.Equal(t, tc.score, r.MergePoints)
			assert.Equal(t, len(tc.stack)-len(tc.want), r.Merges)
		})
	}
}

func TestMergeStableWithoutPairs(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 8})
	g.Commit(vertical(0, 0, 2, 2, 4))
	require.Equal(t, []int{8}, column(g, 0))
	score := g.Score()

	var r CommitReport
	g.mergeColumns(&r)
	assert.Zero(t, r.Merges)
	assert.Equal(t, score, g.Score())
	assert.Equal(t, []int{8}, column(g, 0))
}

func TestMergePairsOnePerPass(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 8})
	g.Commit(vertical(0, 0, 2, 2, 2, 2))
	require.Equal(t, []int{4, 4}, column(g, 0))

	// The new 4-4 pair only merges on a later pass
	var r CommitReport
	g.mergeColumns(&r)
	assert.Equal(t, 1, r.Merges)
	assert.Equal(t, []int{8}, column(g, 0))
}

func TestMergeCollapsesColumnAbove(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 8})
	g.Commit(vertical(2, 0, 8, 8, 2, 16, 32))
	assert.Equal(t, []int{16, 2, 16, 32}, column(g, 2))
	assert.True(t, g.At(2, 4).Empty())
}

func TestMergeColumnsIndependent(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 8})
	fill(g, 0, 2, 2, 0, 0)
	g.Commit(vertical(0, 1, 2))

	assert.Equal(t, []int{4}, column(g, 0))
	assert.Equal(t, []int{2}, column(g, 1))
}

func TestClearFullRows(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 8})
	fill(g, 0, 2, 4, 8, 0)
	fill(g, 1, 4, 8, 16, 0)
	fill(g, 2, 128, 0, 0, 0)

	r := g.Commit(vertical(3, 0, 16, 64))

	assert.Equal(t, 2, r.RowsCleared, "both full rows cleared, none skipped")
	assert.Equal(t, 2+4+8+16+4+8+16+64, r.ClearPoints)
	assert.Equal(t, 128, g.At(0, 0).Value, "row above shifted down twice")
	assert.Equal(t, 1, g.TileCount())
	assert.Zero(t, r.Pruned)
}

func TestPruneKeepsFloorRow(t *testing.T) {
	g := NewGrid(Dimensions{Width: 6, Height: 8})
	fill(g, 0, 2, 0, 4, 0, 0, 8) // isolated floor tiles
	fill(g, 1, 0, 0, 4, 0, 0, 0)
	fill(g, 3, 0, 16, 32, 0, 0, 0) // floating pair
	fill(g, 4, 0, 0, 0, 0, 64, 0)

	var r CommitReport
	g.pruneFloating(&r)

	assert.Equal(t, 3, r.Pruned)
	assert.Equal(t, 16+32+64, r.PrunePoints)
	assert.Equal(t, []int{2}, column(g, 0))
	assert.Equal(t, []int{4, 4}, column(g, 2))
	assert.Equal(t, []int{8}, column(g, 5))
	assert.True(t, g.At(1, 3).Empty())
}

func TestPruneFollowsWindingPath(t *testing.T) {
	g := NewGrid(Dimensions{Width: 6, Height: 8})
	fill(g, 0, 2, 0, 0, 0, 0, 0)
	fill(g, 1, 4, 8, 16, 0, 0, 0)
	fill(g, 2, 0, 0, 32, 0, 0, 0)
	fill(g, 3, 128, 256, 64, 0, 0, 0) // an arm reaching back over the gap

	var r CommitReport
	g.pruneFloating(&r)
	assert.Zero(t, r.Pruned)
	assert.Equal(t, 8, g.TileCount())
}

func TestScenarioOPieceOnEmptyFloor(t *testing.T) {
	t.Run("no stacked pair", func(t *testing.T) {
		g := NewGrid(testDims)
		b := Block{
			Tiles:  [][]Tile{{{Value: 4}, {Value: 4}}, {{Value: 2}, {Value: 2}}},
			Anchor: Position{X: 5, Y: 0},
		}
		r := g.Commit(b)

		assert.Zero(t, r.Merges)
		assert.Equal(t, 4, g.TileCount())
		assert.Equal(t, []int{2, 4}, column(g, 5))
		assert.Equal(t, []int{2, 4}, column(g, 6))
		assert.Zero(t, g.Score())
	})

	t.Run("all twos", func(t *testing.T) {
		g := NewGrid(testDims)
		b := Block{
			Tiles:  [][]Tile{{{Value: 2}, {Value: 2}}, {{Value: 2}, {Value: 2}}},
			Anchor: Position{X: 5, Y: 0},
		}
		r := g.Commit(b)

		// Each column holds an equal vertical pair
		assert.Equal(t, 2, r.Merges)
		assert.Equal(t, []int{4}, column(g, 5))
		assert.Equal(t, []int{4}, column(g, 6))
		assert.Equal(t, 8, g.Score())
	})
}

func TestScenarioFourthTwoOnStack(t *testing.T) {
	g := NewGrid(testDims)

	g.Commit(vertical(3, 0, 2, 2, 2))
	require.Equal(t, []int{4, 2}, column(g, 3))

	r := g.Commit(vertical(3, 2, 2))
	assert.Equal(t, 1, r.Merges)
	assert.Equal(t, []int{4, 4}, column(g, 3), "the new 4 is not re-merged with the one below")
	assert.Equal(t, 8, g.Score())
}

func TestScenarioRowClearShiftsRowAbove(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 6})
	fill(g, 0, 2, 4, 8, 0)
	fill(g, 1, 0, 32, 0, 0)

	r := g.Commit(vertical(3, 0, 16))

	assert.Equal(t, 1, r.RowsCleared)
	assert.Equal(t, 2+4+8+16, g.Score())
	assert.Equal(t, 32, g.At(1, 0).Value)
	assert.Equal(t, 1, g.TileCount())
}

func TestScenarioPruneAfterClear(t *testing.T) {
	g := NewGrid(Dimensions{Width: 4, Height: 8})
	fill(g, 0, 2, 0, 0, 0)
	fill(g, 1, 4, 8, 16, 0)
	fill(g, 2, 0, 0, 32, 0)
	fill(g, 3, 0, 0, 64, 0)
	fill(g, 4, 0, 0, 128, 0)

	r := g.Commit(vertical(3, 1, 256))

	assert.Equal(t, 1, r.RowsCleared)
	assert.Equal(t, 4+8+16+256, r.ClearPoints)
	assert.Equal(t, 3, r.Pruned, "the column above the cleared row lost its support")
	assert.Equal(t, 32+64+128, r.PrunePoints)
	assert.Equal(t, r.Points(), g.Score())
	assert.Equal(t, 1, g.TileCount())
	assert.Equal(t, 2, g.At(0, 0).Value)
}
