package tetris2048

import "math/rand"

// Direction is a one-cell translation a piece may attempt.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Occupancy answers placement queries about a board. Cells outside the
// board are never occupied.
type Occupancy interface {
	IsInside(x, y int) bool
	IsOccupied(x, y int) bool
}

// kickOffsets are the horizontal shifts tried, in order, when a rotation collides.
var kickOffsets = [...]int{0, -1, 1}

// Piece is a falling tetromino. Matrix is square with row 0 at the top;
// Anchor is the grid position of the matrix's bottom-left cell.
type Piece struct {
	Shape  Shape
	Matrix [][]Tile
	Anchor Position
	dims   Dimensions
}

// PlacedTile is a tile together with its absolute grid position.
type PlacedTile struct {
	Position
	Tile
}

// Block is a trimmed tile matrix and the grid position of its bottom-left cell.
type Block struct {
	Tiles  [][]Tile
	Anchor Position
}

// NewPiece builds the canonical pattern for shape with freshly rolled tiles.
// The piece starts with its bottom row on the top grid row at a random column.
// It fails with ErrUnknownShape or ErrInvalidDimensions.
func NewPiece(shape Shape, dims Dimensions, rng *rand.Rand, spawn4Prob float64) (*Piece, error) {
	def, err := lookupShape(shape)
	if err != nil {
		return nil, err
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	matrix := newMatrix(def.side, def.side)
	for _, c := range def.cells {
		matrix[c.row][c.col] = NewTile(rng, spawn4Prob)
	}

	return &Piece{
		Shape:  shape,
		Matrix: matrix,
		Anchor: Position{
			X: rng.Intn(dims.Width - def.side + 1),
			Y: dims.Height - 1,
		},
		dims: dims,
	}, nil
}

func newMatrix(rows, cols int) [][]Tile {
	m := make([][]Tile, rows)
	for i := range m {
		m[i] = make([]Tile, cols)
	}
	return m
}

// Side returns the side length of the local matrix.
func (p *Piece) Side() int {
	return len(p.Matrix)
}

// CellPosition maps a local matrix index to grid coordinates.
func (p *Piece) CellPosition(row, col int) Position {
	return Position{
		X: p.Anchor.X + col,
		Y: p.Anchor.Y + (p.Side() - 1 - row),
	}
}

// Cells returns every occupied cell of the piece in grid coordinates.
func (p *Piece) Cells() []PlacedTile {
	var out []PlacedTile
	for row, line := range p.Matrix {
		for col, t := range line {
			if t.Empty() {
				continue
			}
			out = append(out, PlacedTile{Position: p.CellPosition(row, col), Tile: t})
		}
	}
	return out
}

// Bounded returns a copy of the occupied part of the matrix with empty
// border rows and columns trimmed, anchored at its own bottom-left cell.
func (p *Piece) Bounded() Block {
	n := p.Side()
	minRow, maxRow, minCol, maxCol := n, -1, n, -1
	for row := range n {
		for col := range n {
			if p.Matrix[row][col].Empty() {
				continue
			}
			minRow = min(minRow, row)
			maxRow = max(maxRow, row)
			minCol = min(minCol, col)
			maxCol = max(maxCol, col)
		}
	}
	if maxRow < 0 {
		return Block{Anchor: p.Anchor}
	}

	tiles := newMatrix(maxRow-minRow+1, maxCol-minCol+1)
	for row := minRow; row <= maxRow; row++ {
		copy(tiles[row-minRow], p.Matrix[row][minCol:maxCol+1])
	}

	return Block{
		Tiles:  tiles,
		Anchor: p.Anchor.Translate(minCol, n-1-maxRow),
	}
}

// CanMove reports whether the piece may shift one cell in dir. Only the
// leading occupied cell of each row (left/right) or column (down) is checked.
func (p *Piece) CanMove(dir Direction, occ Occupancy) bool {
	n := p.Side()
	switch dir {
	case DirLeft, DirRight:
		for row := range n {
			for i := range n {
				col := i
				if dir == DirRight {
					col = n - 1 - i
				}
				if p.Matrix[row][col].Empty() {
					continue
				}
				pos := p.CellPosition(row, col)
				if dir == DirLeft && (pos.X == 0 || occ.IsOccupied(pos.X-1, pos.Y)) {
					return false
				}
				if dir == DirRight && (pos.X == p.dims.Width-1 || occ.IsOccupied(pos.X+1, pos.Y)) {
					return false
				}
				break
			}
		}
	case DirDown:
		for col := range n {
			for row := n - 1; row >= 0; row-- {
				if p.Matrix[row][col].Empty() {
					continue
				}
				pos := p.CellPosition(row, col)
				if pos.Y == 0 || occ.IsOccupied(pos.X, pos.Y-1) {
					return false
				}
				break
			}
		}
	default:
		return false
	}
	return true
}

// Move shifts the piece one cell in dir if legal and reports whether it moved.
func (p *Piece) Move(dir Direction, occ Occupancy) bool {
	if !p.CanMove(dir, occ) {
		return false
	}
	switch dir {
	case DirLeft:
		p.Anchor.X--
	case DirRight:
		p.Anchor.X++
	case DirDown:
		p.Anchor.Y--
	}
	return true
}

// Rotate turns the piece 90 degrees clockwise, trying each kick offset in
// turn. It reports whether the rotation was applied. O pieces never rotate.
func (p *Piece) Rotate(occ Occupancy) bool {
	if p.Shape == ShapeO {
		return false
	}

	n := p.Side()
	rotated := newMatrix(n, n)
	for row := range n {
		for col := range n {
			rotated[col][n-1-row] = p.Matrix[row][col]
		}
	}

	for _, dx := range kickOffsets {
		if p.fits(rotated, dx, occ) {
			p.Matrix = rotated
			p.Anchor.X += dx
			return true
		}
	}
	return false
}

// fits reports whether every occupied cell of m, shifted by dx, lands inside
// the board on an empty cell.
func (p *Piece) fits(m [][]Tile, dx int, occ Occupancy) bool {
	for row, line := range m {
		for col, t := range line {
			if t.Empty() {
				continue
			}
			pos := p.CellPosition(row, col).Translate(dx, 0)
			if !occ.IsInside(pos.X, pos.Y) || occ.IsOccupied(pos.X, pos.Y) {
				return false
			}
		}
	}
	return true
}

// Ghost returns a copy of the piece dropped as far as it can fall.
func (p *Piece) Ghost(occ Occupancy) Piece {
	ghost := p.Clone()
	for ghost.Move(DirDown, occ) {
	}
	return ghost
}

// Clone returns a deep copy that shares no state with p.
func (p *Piece) Clone() Piece {
	matrix := make([][]Tile, len(p.Matrix))
	for i, line := range p.Matrix {
		matrix[i] = append([]Tile(nil), line...)
	}
	return Piece{
		Shape:  p.Shape,
		Matrix: matrix,
		Anchor: p.Anchor,
		dims:   p.dims,
	}
}

// Respawn moves the piece back to the top grid row keeping its column.
func (p *Piece) Respawn() {
	p.Anchor.Y = p.dims.Height - 1
}
