package breakout

// Snapshot captures the primitive game state for determinism tests.
type Snapshot struct {
	Score       int
	Lives       int
	Level       int
	Bricks      int
	Balls       int
	PowerUps    int
	PaddleX     float64
	PaddleWidth int
	BallX       float64
	BallY       float64
}

// Snapshot returns the current state snapshot. The ball coordinates are
// those of the first ball, if any.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:       g.Score(),
		Lives:       g.Lives(),
		Level:       g.Level(),
		Bricks:      len(g.bricks),
		Balls:       len(g.balls),
		PowerUps:    len(g.powerups),
		PaddleX:     g.paddleX,
		PaddleWidth: g.paddleWidth,
	}
	if len(g.balls) > 0 {
		s.BallX = g.balls[0].X
		s.BallY = g.balls[0].Y
	}
	return s
}
