package tetris2048

import (
	"errors"
	"fmt"
)

// ErrUnknownShape is returned when a piece is requested for a shape outside the seven tetrominoes.
var ErrUnknownShape = errors.New("tetris2048: unknown shape")

// Shape names a tetromino type.
type Shape string

const (
	ShapeI Shape = "I"
	ShapeO Shape = "O"
	ShapeZ Shape = "Z"
	ShapeS Shape = "S"
	ShapeT Shape = "T"
	ShapeL Shape = "L"
	ShapeJ Shape = "J"
)

// Shapes lists every tetromino in the order random spawns choose from.
var Shapes = []Shape{ShapeI, ShapeO, ShapeZ, ShapeT, ShapeS, ShapeL, ShapeJ}

// cell is a (col, row) index into a local piece matrix. Row 0 is the top.
type cell struct {
	col, row int
}

type shapeDef struct {
	side  int
	cells []cell
}

var shapeDefs = map[Shape]shapeDef{
	ShapeI: {side: 4, cells: []cell{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
	ShapeO: {side: 2, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeZ: {side: 3, cells: []cell{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
	ShapeS: {side: 3, cells: []cell{{1, 1}, {2, 1}, {0, 2}, {1, 2}}},
	ShapeT: {side: 3, cells: []cell{{0, 1}, {1, 1}, {2, 1}, {1, 2}}},
	ShapeL: {side: 3, cells: []cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
	ShapeJ: {side: 3, cells: []cell{{1, 0}, {1, 1}, {1, 2}, {0, 2}}},
}

func lookupShape(s Shape) (shapeDef, error) {
	def, ok := shapeDefs[s]
	if !ok {
		return shapeDef{}, fmt.Errorf("%w: %q", ErrUnknownShape, string(s))
	}
	return def, nil
}

// Side returns the side length of the shape's local matrix, or 0 for an unknown shape.
func (s Shape) Side() int {
	return shapeDefs[s].side
}
