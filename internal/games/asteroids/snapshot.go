package asteroids

// Snapshot captures the primitive game state for determinism tests.
type Snapshot struct {
	Score     int
	Lives     int
	Level     int
	ShipX     float64
	ShipY     float64
	Heading   float64
	Asteroids int
	Bullets   int
	Invuln    int
	UFOLive   bool
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:     g.Score(),
		Lives:     g.Lives(),
		Level:     g.Level(),
		ShipX:     g.shipX,
		ShipY:     g.shipY,
		Heading:   g.heading,
		Asteroids: len(g.asteroids),
		Bullets:   len(g.bullets),
		Invuln:    g.invuln,
		UFOLive:   g.ufoLive,
	}
}
