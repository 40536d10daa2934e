package rogue

// Snapshot captures the primitive game state for determinism tests.
type Snapshot struct {
	Score    int
	Floor    int
	HP       int
	PlayerX  int
	PlayerY  int
	Enemies  int
	Items    int
	Explored int
}

// Snapshot returns the current state snapshot. Explored counts cells
// ever seen on the current floor.
func (g *Game) Snapshot() Snapshot {
	explored := 0
	for y := range g.floor.explored {
		for x := range g.floor.explored[y] {
			if g.floor.explored[y][x] {
				explored++
			}
		}
	}
	return Snapshot{
		Score:    g.Score(),
		Floor:    g.floorNum,
		HP:       g.hp,
		PlayerX:  g.playerPos.X,
		PlayerY:  g.playerPos.Y,
		Enemies:  len(g.enemies),
		Items:    len(g.items),
		Explored: explored,
	}
}
