// Package pacman implements maze-chase logic with the four classic ghost
// personalities. One global mode drives all ghosts: scatter and chase
// alternate on a fixed timer table, and frightened (from a power pellet)
// preempts both. Ghosts choose directions only at cell centers.
package pacman

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	dotPoints    = 10
	pelletPoints = 50

	pacSpeed       = 0.12
	baseGhostSpeed = 0.11
	frightSpeed    = 0.07
	eatenSpeed     = 0.25
	tunnelSpeed    = 0.06

	frightTicks        = 420
	collisionThreshold = 0.9
)

// ghostChain scores successive ghosts eaten under one pellet.
var ghostChain = [4]int{200, 400, 800, 1600}

// Mode is the global ghost behavior mode.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
)

// modeTable alternates scatter and chase; the last chase lasts forever.
var modeTable = []struct {
	mode  Mode
	ticks int
}{
	{ModeScatter, 420},
	{ModeChase, 1200},
	{ModeScatter, 420},
	{ModeChase, 1200},
	{ModeScatter, 300},
	{ModeChase, -1},
}

// Game implements the Pac-Man game logic.
type Game struct {
	engine.Base

	rng  *rand.Rand
	maze *Maze

	pacCellV    core.Vec
	pacDir      core.Vec
	pacDesired  core.Vec
	pacProgress float64

	ghosts [ghostCount]Ghost

	mode       Mode
	modeIndex  int
	modeTimer  int
	frightLeft int
	chainIdx   int

	runtime core.RuntimeConfig
}

// New creates a new Pac-Man game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.maze = ParseMaze(defaultLayout)
	g.Restart(3)
	g.resetActors()
}

// resetActors re-seats Pac-Man and the ghosts and restarts the mode
// table. Dot state is untouched.
func (g *Game) resetActors() {
	g.pacCellV = g.maze.PlayerHome
	g.pacDir = core.Vec{X: -1, Y: 0}
	g.pacDesired = g.pacDir
	g.pacProgress = 0

	for k := GhostKind(0); k < ghostCount; k++ {
		home := g.maze.GhostHome
		if k == Blinky {
			// Blinky starts outside the house
			home = core.Vec{X: g.maze.GhostHome.X, Y: g.maze.GhostHome.Y - 1}
		}
		g.ghosts[k] = Ghost{
			Kind:   k,
			Cell:   home,
			Dir:    core.Vec{X: 0, Y: -1},
			corner: scatterCorner(k, g.maze),
		}
	}

	g.mode = ModeScatter
	g.modeIndex = 0
	g.modeTimer = modeTable[0].ticks
	g.frightLeft = 0
	g.chainIdx = 0
}

// pacCell returns Pac-Man's snapped grid cell.
func (g *Game) pacCell() core.Vec {
	return g.pacCellV
}

// pacPos returns Pac-Man's fractional position.
func (g *Game) pacPos() (float64, float64) {
	return float64(g.pacCellV.X) + float64(g.pacDir.X)*g.pacProgress,
		float64(g.pacCellV.Y) + float64(g.pacDir.Y)*g.pacProgress
}

// ghostPos returns a ghost's fractional position.
func ghostPos(gh *Ghost) (float64, float64) {
	return float64(gh.Cell.X) + float64(gh.Dir.X)*gh.Progress,
		float64(gh.Cell.Y) + float64(gh.Dir.Y)*gh.Progress
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.JustPressed(core.ActionRestart) && g.Over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return g.Result()
	}

	if in.JustPressed(core.ActionPause) {
		g.TogglePause()
	}

	if !g.Running() {
		return g.Result()
	}

	if d := in.Direction(); d.X != 0 || d.Y != 0 {
		// Diagonals resolve to the horizontal axis
		if d.X != 0 {
			d.Y = 0
		}
		g.pacDesired = d
	}

	g.updateMode()
	g.movePacman()
	g.updateGhosts()
	g.resolveCollisions()

	if g.maze.DotsLeft == 0 {
		g.NextLevel()
		g.maze = ParseMaze(defaultLayout)
		g.resetActors()
	}

	return g.Result()
}

// updateMode ticks the global mode machine. Frightened expiry resumes
// chase with the scatter/chase table restarted fresh.
func (g *Game) updateMode() {
	if g.mode == ModeFrightened {
		g.frightLeft--
		if g.frightLeft <= 0 {
			for i := range g.ghosts {
				g.ghosts[i].Frightened = false
			}
			g.setChaseFresh()
		}
		return
	}

	if g.modeTimer < 0 {
		return // final chase runs forever
	}
	g.modeTimer--
	if g.modeTimer <= 0 {
		g.modeIndex++
		if g.modeIndex >= len(modeTable) {
			g.modeIndex = len(modeTable) - 1
		}
		g.mode = modeTable[g.modeIndex].mode
		g.modeTimer = modeTable[g.modeIndex].ticks
	}
}

// setChaseFresh enters chase mode with its full table duration.
func (g *Game) setChaseFresh() {
	g.mode = ModeChase
	g.modeIndex = 1
	g.modeTimer = modeTable[1].ticks
}

// enterFrightened switches the global mode, reverses every non-eaten
// ghost, and resets the eat chain.
func (g *Game) enterFrightened() {
	g.mode = ModeFrightened
	g.frightLeft = frightTicks
	g.chainIdx = 0
	for i := range g.ghosts {
		if !g.ghosts[i].Eaten {
			g.ghosts[i].Frightened = true
		}
	}
	g.reverseGhosts()
	g.Play(core.SoundPowerUp)
}

// movePacman advances Pac-Man, applying the buffered direction at cell
// centers and eating whatever the new cell holds.
func (g *Game) movePacman() {
	// Blocked and not yet moving between cells: try the desired turn
	if g.pacProgress == 0 {
		if g.maze.Walkable(g.pacCellV.Add(g.pacDesired)) {
			g.pacDir = g.pacDesired
		}
		if !g.maze.Walkable(g.pacCellV.Add(g.pacDir)) {
			return
		}
	}

	g.pacProgress += pacSpeed
	if g.pacProgress < 1 {
		return
	}
	g.pacProgress = 0
	g.pacCellV = g.maze.WrapCell(g.pacCellV.Add(g.pacDir))

	points, pellet := g.maze.EatAt(g.pacCellV)
	if points > 0 {
		g.AddScore(points)
		g.Play(core.SoundScore)
	}
	if pellet {
		g.enterFrightened()
	}

	// Turn or keep going; a wall ahead stops at the center
	if g.maze.Walkable(g.pacCellV.Add(g.pacDesired)) {
		g.pacDir = g.pacDesired
	}
}

// resolveCollisions checks Pac-Man against every ghost using Manhattan
// distance on fractional positions.
func (g *Game) resolveCollisions() {
	px, py := g.pacPos()
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Eaten {
			continue
		}
		gx, gy := ghostPos(gh)
		if absF(px-gx)+absF(py-gy) >= collisionThreshold {
			continue
		}

		if gh.Frightened {
			gh.Eaten = true
			idx := core.Min(g.chainIdx, len(ghostChain)-1)
			g.AddScore(ghostChain[idx])
			g.chainIdx++
			g.Play(core.SoundExplosion)
			continue
		}

		if g.LoseLife() {
			g.resetActors()
		}
		return
	}
}

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Render draws the maze, dots, actors, and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := (dst.Width() - g.maze.W*2) / 2
	offY := core.Max((dst.Height()-g.maze.H)/2, 1)

	for y := 0; y < g.maze.H; y++ {
		for x := 0; x < g.maze.W; x++ {
			c := core.Vec{X: x, Y: y}
			sx := offX + x*2
			switch {
			case g.maze.TileAt(c) == TileWall:
				dst.SetColored(sx, offY+y, '█', core.ColorBlue)
				dst.SetColored(sx+1, offY+y, '█', core.ColorBlue)
			case g.maze.DotAt(c):
				dst.Set(sx, offY+y, '·')
			case g.maze.PelletAt(c):
				dst.SetColored(sx, offY+y, '●', core.ColorBrightWhite)
			}
		}
	}

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gx, gy := ghostPos(gh)
		ch := 'M'
		color := ghostColors[gh.Kind]
		if gh.Eaten {
			ch = '"'
			color = core.ColorGray
		} else if gh.Frightened {
			color = core.ColorBrightBlue
			if g.frightLeft < 120 && (g.frightLeft/10)%2 == 0 {
				color = core.ColorWhite // flash before expiry
			}
		}
		dst.SetColored(offX+int(gx+0.5)*2, offY+int(gy+0.5), ch, color)
	}

	px, py := g.pacPos()
	dst.SetColored(offX+int(px+0.5)*2, offY+int(py+0.5), 'C', core.ColorBrightYellow)

	dst.DrawText(2, 0, fmt.Sprintf("Score: %d  Lives: %d  Level: %d",
		g.Score(), g.Lives(), g.Level()))

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}
	if g.Over() {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("GAME OVER - Score: %d - Press R to restart", g.Score()))
	}
}
