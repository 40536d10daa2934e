package snake

// Snapshot contains the primitive game state used by determinism tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	HeadX     int
	HeadY     int
	DirX      int
	DirY      int
	FoodX     int
	FoodY     int
	HasFood   bool
	FoodEaten int
	Interval  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.Score(),
		Length:    len(g.snake),
		DirX:      g.dir.X,
		DirY:      g.dir.Y,
		HasFood:   g.hasFood,
		FoodEaten: g.foodEaten,
		Interval:  g.moveInterval,
	}
	if len(g.snake) > 0 {
		snap.HeadX = g.snake[0].X
		snap.HeadY = g.snake[0].Y
	}
	if g.hasFood {
		snap.FoodX = g.food.X
		snap.FoodY = g.food.Y
	}
	return snap
}
