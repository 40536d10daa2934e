package tetris

// Snapshot captures the primitive game state for determinism tests.
type Snapshot struct {
	Score      int
	Level      int
	Lines      int
	PieceKind  PieceKind
	PieceX     int
	PieceY     int
	PieceRot   int
	FilledRows int
	HasHeld    bool
	Held       PieceKind
}

// Snapshot returns the current state snapshot. FilledRows counts rows
// with at least one occupied cell.
func (g *Game) Snapshot() Snapshot {
	filled := 0
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if g.grid[y][x] != 0 {
				filled++
				break
			}
		}
	}
	return Snapshot{
		Score:      g.Score(),
		Level:      g.Level(),
		Lines:      g.linesTotal,
		PieceKind:  g.current.Kind,
		PieceX:     g.current.X,
		PieceY:     g.current.Y,
		PieceRot:   g.current.Rot,
		FilledRows: filled,
		HasHeld:    g.hasHeld,
		Held:       g.held,
	}
}
