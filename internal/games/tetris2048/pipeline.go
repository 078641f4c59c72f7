package tetris2048

import "github.com/kamstrup/intmap"

// CommitReport summarises what one lock did to the board.
type CommitReport struct {
	Placed      int
	OutOfBounds int
	Overwritten int

	Merges      int
	MergePoints int

	RowsCleared int
	ClearPoints int

	Pruned      int
	PrunePoints int

	GameOver bool
}

// Points returns the total score gained by the commit.
func (r CommitReport) Points() int {
	return r.MergePoints + r.ClearPoints + r.PrunePoints
}

// Commit locks b into the grid and runs merge, row clear and prune in that
// order. Any tile landing off the board ends the game; a tile landing on an
// occupied cell replaces it.
func (g *Grid) Commit(b Block) CommitReport {
	var r CommitReport
	g.place(b, &r)
	g.mergeColumns(&r)
	g.clearFullRows(&r)
	g.pruneFloating(&r)
	r.GameOver = g.gameOver
	return r
}

func (g *Grid) place(b Block, r *CommitReport) {
	rows := len(b.Tiles)
	for row, line := range b.Tiles {
		for col, t := range line {
			if t.Empty() {
				continue
			}
			x := b.Anchor.X + col
			y := b.Anchor.Y + (rows - 1 - row)
			if !g.IsInside(x, y) {
				r.OutOfBounds++
				g.gameOver = true
				continue
			}
			if g.IsOccupied(x, y) {
				r.Overwritten++
			}
			g.set(x, y, t)
			r.Placed++
		}
	}
}

// mergeColumns folds equal vertical pairs bottom-up. After a merge the same
// row is examined again because the column above has dropped by one.
func (g *Grid) mergeColumns(r *CommitReport) {
	h := g.dims.Height
	for x := range g.dims.Width {
		y := 0
		for y < h-1 {
			lower, upper := g.cells[y][x], g.cells[y+1][x]
			if lower.Empty() || upper.Empty() || lower.Value != upper.Value {
				y++
				continue
			}
			merged := Tile{Value: lower.Value * 2}
			g.cells[y][x] = merged
			for k := y + 1; k < h-1; k++ {
				g.cells[k][x] = g.cells[k+1][x]
			}
			g.cells[h-1][x] = Tile{}
			g.score += merged.Value
			r.Merges++
			r.MergePoints += merged.Value
		}
	}
}

func (g *Grid) rowFull(y int) bool {
	for _, t := range g.cells[y] {
		if t.Empty() {
			return false
		}
	}
	return true
}

// clearFullRows removes full rows from the floor up. The row that slides into
// a cleared index is checked before moving on.
func (g *Grid) clearFullRows(r *CommitReport) {
	h := g.dims.Height
	y := 0
	for y < h {
		if !g.rowFull(y) {
			y++
			continue
		}
		for _, t := range g.cells[y] {
			g.score += t.Value
			r.ClearPoints += t.Value
		}
		cleared := g.cells[y]
		copy(g.cells[y:], g.cells[y+1:])
		for i := range cleared {
			cleared[i] = Tile{}
		}
		g.cells[h-1] = cleared
		r.RowsCleared++
	}
}

// pruneFloating deletes every tile with no 4-neighbour path to an occupied
// floor cell and scores its value.
func (g *Grid) pruneFloating(r *CommitReport) {
	w, h := g.dims.Width, g.dims.Height
	reached := intmap.New[int, struct{}](w * h)
	queue := make([]Position, 0, w*h)

	for x := range w {
		if g.cells[0][x].Empty() {
			continue
		}
		reached.Put(x, struct{}{})
		queue = append(queue, Position{X: x})
	}

	neighbours := [...]Position{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1}, {X: 1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			n := p.Translate(d.X, d.Y)
			if !g.IsOccupied(n.X, n.Y) {
				continue
			}
			key := n.Y*w + n.X
			if _, seen := reached.Get(key); seen {
				continue
			}
			reached.Put(key, struct{}{})
			queue = append(queue, n)
		}
	}

	for y := range h {
		for x := range w {
			t := g.cells[y][x]
			if t.Empty() {
				continue
			}
			if _, ok := reached.Get(y*w + x); ok {
				continue
			}
			g.cells[y][x] = Tile{}
			g.score += t.Value
			r.Pruned++
			r.PrunePoints += t.Value
		}
	}
}
