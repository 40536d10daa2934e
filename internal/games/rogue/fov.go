package rogue

import (
	"math"

	"github.com/termcade/termcade/internal/core"
)

// computeFOV recomputes visibility by angular ray casting: one ray per
// degree out to the fixed radius, stopping at and including the first
// wall. Explored accumulates and never clears within a floor. The corner
// leak past thin diagonal walls is accepted behavior.
func (f *Floor) computeFOV(origin core.Vec, radius int) {
	for y := range f.visible {
		for x := range f.visible[y] {
			f.visible[y][x] = false
		}
	}

	f.reveal(origin)

	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180
		dx := math.Cos(rad)
		dy := math.Sin(rad)

		for step := 1; step <= radius; step++ {
			c := core.Vec{
				X: origin.X + int(math.Round(dx*float64(step))),
				Y: origin.Y + int(math.Round(dy*float64(step))),
			}
			if c.X < 0 || c.X >= f.W || c.Y < 0 || c.Y >= f.H {
				break
			}
			f.reveal(c)
			if f.tiles[c.Y][c.X] == TileWall {
				break
			}
		}
	}
}

func (f *Floor) reveal(c core.Vec) {
	f.visible[c.Y][c.X] = true
	f.explored[c.Y][c.X] = true
}
