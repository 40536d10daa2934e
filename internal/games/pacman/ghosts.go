package pacman

import "github.com/termcade/termcade/internal/core"

// GhostKind identifies one of the four ghosts.
type GhostKind int

const (
	Blinky GhostKind = iota
	Pinky
	Inky
	Clyde

	ghostCount
)

// ghostColors maps kind to render color.
var ghostColors = [ghostCount]core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// decisionOrder is the tie-break order for ghost direction choices.
var decisionOrder = []core.Vec{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// Ghost is one pursuer. Cell is the snapped grid position; Progress is
// the fraction travelled toward Cell+Dir.
type Ghost struct {
	Kind       GhostKind
	Cell       core.Vec
	Dir        core.Vec
	Progress   float64
	Frightened bool
	Eaten      bool
	corner     core.Vec
}

// scatterCorner returns the ghost's fixed scatter target.
func scatterCorner(k GhostKind, m *Maze) core.Vec {
	switch k {
	case Blinky:
		return core.Vec{X: m.W - 2, Y: 1}
	case Pinky:
		return core.Vec{X: 1, Y: 1}
	case Inky:
		return core.Vec{X: m.W - 2, Y: m.H - 2}
	default: // Clyde
		return core.Vec{X: 1, Y: m.H - 2}
	}
}

// chaseTarget computes the ghost's chase-mode target cell.
func (g *Game) chaseTarget(gh *Ghost) core.Vec {
	pac := g.pacCell()
	switch gh.Kind {
	case Blinky:
		return pac

	case Pinky:
		return pac.Add(g.pacDir.Scale(4))

	case Inky:
		// Reflect the point two ahead of Pac-Man through Blinky
		ahead := pac.Add(g.pacDir.Scale(2))
		blinky := g.ghosts[Blinky].Cell
		return core.Vec{
			X: 2*ahead.X - blinky.X,
			Y: 2*ahead.Y - blinky.Y,
		}

	default: // Clyde
		if core.Manhattan(gh.Cell, pac) > 8 {
			return pac
		}
		return gh.corner
	}
}

// ghostTarget picks the target for the ghost's current state.
func (g *Game) ghostTarget(gh *Ghost) core.Vec {
	if gh.Eaten {
		return g.maze.GhostHome
	}
	if g.mode == ModeScatter {
		return gh.corner
	}
	return g.chaseTarget(gh)
}

// decideDirection picks the ghost's next direction at a cell center:
// among non-reversing directions into walkable cells, the one minimizing
// Manhattan distance to the target. Ties resolve in decision order.
// Frightened (non-eaten) ghosts pick randomly among the legal options.
func (g *Game) decideDirection(gh *Ghost) core.Vec {
	var legal []core.Vec
	for _, d := range decisionOrder {
		if d.IsOpposite(gh.Dir) {
			continue
		}
		if !g.maze.Walkable(gh.Cell.Add(d)) {
			continue
		}
		legal = append(legal, d)
	}
	if len(legal) == 0 {
		// Dead end: reversing is the only way out
		return core.Vec{X: -gh.Dir.X, Y: -gh.Dir.Y}
	}

	if gh.Frightened && !gh.Eaten {
		return legal[g.rng.Intn(len(legal))]
	}

	target := g.ghostTarget(gh)
	best := legal[0]
	bestDist := core.Manhattan(g.maze.WrapCell(gh.Cell.Add(best)), target)
	for _, d := range legal[1:] {
		dist := core.Manhattan(g.maze.WrapCell(gh.Cell.Add(d)), target)
		if dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// ghostSpeed returns the fraction of a cell the ghost covers per tick.
func (g *Game) ghostSpeed(gh *Ghost) float64 {
	switch {
	case gh.Eaten:
		return eatenSpeed
	case gh.Frightened:
		return frightSpeed
	case g.maze.TileAt(gh.Cell) == TileTunnel:
		return tunnelSpeed
	default:
		return baseGhostSpeed + 0.005*float64(g.Level()-1)
	}
}

// updateGhosts advances every ghost one tick.
func (g *Game) updateGhosts() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]

		gh.Progress += g.ghostSpeed(gh)
		for gh.Progress >= 1 {
			gh.Progress -= 1
			gh.Cell = g.maze.WrapCell(gh.Cell.Add(gh.Dir))

			// Home arrival revives an eaten ghost
			if gh.Eaten && gh.Cell == g.maze.GhostHome {
				gh.Eaten = false
				gh.Frightened = false
			}

			gh.Dir = g.decideDirection(gh)
		}
	}
}

// reverseGhosts flips every non-eaten ghost's direction in place.
func (g *Game) reverseGhosts() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Eaten {
			continue
		}
		gh.Dir = core.Vec{X: -gh.Dir.X, Y: -gh.Dir.Y}
	}
}
