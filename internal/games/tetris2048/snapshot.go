package tetris2048

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
// Uses primitive types only.
type Snapshot struct {
	Tick      uint64
	Mode      string
	State     string
	Score     int
	MaxTile   int
	Level     int
	FallDelay time.Duration
	Locks     int

	Board [][]int // Row 0 is the floor

	Current     string // Shape of the falling piece, empty between pieces
	CurrentX    int
	CurrentY    int
	CurrentData []int // Flattened local matrix values
	Next        string
	Held        string
	CanHold     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		State:     s.State().String(),
		Score:     s.Score(),
		MaxTile:   s.Grid().MaxTile(),
		Level:     s.Level(),
		FallDelay: s.FallDelay(),
		Locks:     s.Locks(),
		Board:     s.Grid().Values(),
		CanHold:   s.CanHold(),
	}

	if cur := s.Current(); cur != nil {
		snap.Current = string(cur.Shape)
		snap.CurrentX = cur.Anchor.X
		snap.CurrentY = cur.Anchor.Y
		for _, line := range cur.Matrix {
			for _, t := range line {
				snap.CurrentData = append(snap.CurrentData, t.Value)
			}
		}
	}
	if next := s.Next(); next != nil {
		snap.Next = string(next.Shape)
	}
	if held := s.Held(); held != nil {
		snap.Held = string(held.Shape)
	}
	return snap
}
