package invaders

// Snapshot captures the primitive game state for determinism tests.
type Snapshot struct {
	Score        int
	Lives        int
	Level        int
	AliveAliens  int
	FormX        float64
	FormY        float64
	FormDir      float64
	PlayerX      float64
	PlayerBullet bool
	AlienBullets int
	ShieldBlocks int
	UFOLive      bool
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	count := 0
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if g.alive[r][c] {
				count++
			}
		}
	}
	return Snapshot{
		Score:        g.Score(),
		Lives:        g.Lives(),
		Level:        g.Level(),
		AliveAliens:  count,
		FormX:        g.formX,
		FormY:        g.formY,
		FormDir:      g.formDir,
		PlayerX:      g.playerX,
		PlayerBullet: g.playerBullet != nil,
		AlienBullets: len(g.alienBullets),
		ShieldBlocks: len(g.shields),
		UFOLive:      g.ufoLive,
	}
}
