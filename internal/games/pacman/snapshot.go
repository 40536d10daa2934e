package pacman

// Snapshot captures the primitive game state for determinism tests.
type Snapshot struct {
	Score      int
	Lives      int
	Level      int
	DotsLeft   int
	PacX, PacY int
	Mode       Mode
	FrightLeft int
	EatenCount int
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	eaten := 0
	for i := range g.ghosts {
		if g.ghosts[i].Eaten {
			eaten++
		}
	}
	return Snapshot{
		Score:      g.Score(),
		Lives:      g.Lives(),
		Level:      g.Level(),
		DotsLeft:   g.maze.DotsLeft,
		PacX:       g.pacCellV.X,
		PacY:       g.pacCellV.Y,
		Mode:       g.mode,
		FrightLeft: g.frightLeft,
		EatenCount: eaten,
	}
}
