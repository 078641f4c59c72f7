package tetris2048

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned for boards too small to hold every shape.
var ErrInvalidDimensions = errors.New("tetris2048: invalid grid dimensions")

// minSide is the smallest board edge that fits the I piece.
const minSide = 4

// Dimensions is the size of the playfield in cells.
type Dimensions struct {
	Width  int
	Height int
}

// Validate checks that every shape can spawn inside the board.
func (d Dimensions) Validate() error {
	if d.Width < minSide || d.Height < minSide {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimensions, d.Width, d.Height, minSide, minSide)
	}
	return nil
}

// Grid holds the committed tiles. Cells are indexed [y][x] with y = 0 at the floor.
type Grid struct {
	dims     Dimensions
	cells    [][]Tile
	score    int
	gameOver bool
}

// NewGrid returns an empty board of the given size.
func NewGrid(dims Dimensions) *Grid {
	return &Grid{
		dims:  dims,
		cells: newMatrix(dims.Height, dims.Width),
	}
}

// Dims returns the board size.
func (g *Grid) Dims() Dimensions { return g.dims }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.dims.Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.dims.Height }

// IsInside reports whether (x, y) lies on the board.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.dims.Width && y >= 0 && y < g.dims.Height
}

// IsOccupied reports whether (x, y) holds a tile. Off-board cells are free.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.IsInside(x, y) {
		return false
	}
	return !g.cells[y][x].Empty()
}

// At returns the tile at (x, y), or an empty tile off the board.
func (g *Grid) At(x, y int) Tile {
	if !g.IsInside(x, y) {
		return Tile{}
	}
	return g.cells[y][x]
}

func (g *Grid) set(x, y int, t Tile) {
	g.cells[y][x] = t
}

// Score returns the points accumulated by every commit so far.
func (g *Grid) Score() int { return g.score }

// GameOver reports whether a tile has ever been committed off the board.
func (g *Grid) GameOver() bool { return g.gameOver }

// MaxTile returns the highest tile value on the board.
func (g *Grid) MaxTile() int {
	best := 0
	for _, row := range g.cells {
		for _, t := range row {
			best = max(best, t.Value)
		}
	}
	return best
}

// Values returns a copy of the board as plain numbers, row 0 first.
func (g *Grid) Values() [][]int {
	out := make([][]int, len(g.cells))
	for y, row := range g.cells {
		out[y] = make([]int, len(row))
		for x, t := range row {
			out[y][x] = t.Value
		}
	}
	return out
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for _, row := range g.cells {
		for _, t := range row {
			if !t.Empty() {
				n++
			}
		}
	}
	return n
}
