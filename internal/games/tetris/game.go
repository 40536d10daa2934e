// Package tetris implements falling-block puzzle logic on a 10x20 well.
// Rotation tries the naive turn first, then the wall-kick offsets
// -1, +1, -2, +2 in order; the first placement that fits wins, otherwise
// the rotation is silently rejected.
package tetris

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	GridW = 10
	GridH = 20

	queueLen      = 3
	baseGravity   = 48 // ticks per row at level 1
	lockDelay     = 30 // ticks of grace after grounding
	softDropEvery = 3
	dasDelay      = 6 // held-key repeat interval

	BlockChar = '█'
	GhostChar = '░'
)

// lineScores indexes score by rows cleared at once; multiplied by level.
var lineScores = [5]int{0, 100, 300, 500, 800}

// wallKicks are the horizontal offsets tried after a failed naive rotation.
var wallKicks = [4]int{-1, +1, -2, +2}

// Game implements the Tetris game logic.
type Game struct {
	engine.Base

	rng *rand.Rand

	// grid[y][x]; ColorDefault means empty.
	grid [GridH][GridW]core.Color

	current  Piece
	queue    []PieceKind
	held     PieceKind
	hasHeld  bool
	holdUsed bool

	gravityAcc float64
	lockTimer  int
	grounded   bool

	linesTotal int
	dasLeft    int
	dasRight   int
	dasDown    int

	runtime core.RuntimeConfig
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	for y := range g.grid {
		for x := range g.grid[y] {
			g.grid[y][x] = core.ColorDefault
		}
	}

	g.queue = nil
	for i := 0; i < queueLen; i++ {
		g.queue = append(g.queue, PieceKind(g.rng.Intn(int(pieceCount))))
	}
	g.hasHeld = false
	g.holdUsed = false
	g.linesTotal = 0
	g.gravityAcc = 0

	g.Restart(1)
	g.spawnPiece()
}

// gravityInterval returns ticks per row for the current level.
func (g *Game) gravityInterval() float64 {
	return baseGravity * math.Pow(0.85, float64(g.Level()-1))
}

// spawnPiece pulls the next piece from the queue. Spawning into an
// occupied position tops the well out and ends the game.
func (g *Game) spawnPiece() {
	kind := g.queue[0]
	g.queue = append(g.queue[1:], PieceKind(g.rng.Intn(int(pieceCount))))

	g.current = Piece{Kind: kind, X: (GridW - boxSize(kind)) / 2, Y: 0}
	g.grounded = false
	g.lockTimer = 0
	g.gravityAcc = 0

	if g.collides(g.current) {
		g.GameOver()
	}
}

// collides reports whether the piece overlaps the walls, the floor, or
// occupied cells.
func (g *Game) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= GridW || c.Y < 0 || c.Y >= GridH {
			return true
		}
		if g.grid[c.Y][c.X] != core.ColorDefault {
			return true
		}
	}
	return false
}

// tryMove shifts the piece if the target placement is free.
func (g *Game) tryMove(dx, dy int) bool {
	moved := g.current
	moved.X += dx
	moved.Y += dy
	if g.collides(moved) {
		return false
	}
	g.current = moved
	if g.grounded && dy == 0 {
		g.lockTimer = 0 // successful adjustment restarts the grace window
	}
	return true
}

// tryRotate turns the piece clockwise, trying the naive rotation and then
// each wall-kick offset. The O piece never rotates.
func (g *Game) tryRotate() bool {
	if g.current.Kind == PieceO {
		return false
	}

	turned := g.current
	turned.Rot = (turned.Rot + 1) & 3

	if !g.collides(turned) {
		g.current = turned
		if g.grounded {
			g.lockTimer = 0
		}
		return true
	}
	for _, kick := range wallKicks {
		kicked := turned
		kicked.X += kick
		if !g.collides(kicked) {
			g.current = kicked
			if g.grounded {
				g.lockTimer = 0
			}
			return true
		}
	}
	return false
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

	g.handleShift(in)

	if in.JustPressed(core.ActionUp) {
		g.tryRotate()
	}
	if in.JustPressed(core.ActionAlt) {
		g.holdPiece()
	}
	if in.JustPressed(core.ActionFire) {
		g.hardDrop()
		return g.Result()
	}

	g.applyGravity(in.Pressed(core.ActionDown))

	return g.Result()
}

// handleShift moves left/right on press, repeating while held.
func (g *Game) handleShift(in core.InputFrame) {
	if in.JustPressed(core.ActionLeft) {
		g.tryMove(-1, 0)
		g.dasLeft = 0
	} else if in.Pressed(core.ActionLeft) {
		g.dasLeft++
		if g.dasLeft >= dasDelay {
			g.tryMove(-1, 0)
			g.dasLeft = 0
		}
	}

	if in.JustPressed(core.ActionRight) {
		g.tryMove(1, 0)
		g.dasRight = 0
	} else if in.Pressed(core.ActionRight) {
		g.dasRight++
		if g.dasRight >= dasDelay {
			g.tryMove(1, 0)
			g.dasRight = 0
		}
	}
}

// applyGravity drops the piece by accumulated gravity, handling the lock
// delay once grounded. Holding down soft-drops faster.
func (g *Game) applyGravity(softDrop bool) {
	interval := g.gravityInterval()
	if softDrop {
		interval = softDropEvery
	}

	g.gravityAcc++
	for g.gravityAcc >= interval {
		g.gravityAcc -= interval
		if !g.tryMove(0, 1) {
			break
		}
	}

	// Grounded when the cell below is blocked
	probe := g.current
	probe.Y++
	if g.collides(probe) {
		if !g.grounded {
			g.grounded = true
			g.lockTimer = 0
		}
		g.lockTimer++
		if g.lockTimer >= lockDelay {
			g.lockPiece()
		}
	} else {
		g.grounded = false
	}
}

// hardDrop slams the piece to the bottom and locks immediately.
func (g *Game) hardDrop() {
	for g.tryMove(0, 1) {
	}
	g.lockPiece()
}

// holdPiece swaps the current piece with the hold slot, once per piece
// lifetime.
func (g *Game) holdPiece() {
	if g.holdUsed {
		return
	}
	g.holdUsed = true

	kind := g.current.Kind
	if g.hasHeld {
		g.current = Piece{Kind: g.held, X: (GridW - boxSize(g.held)) / 2, Y: 0}
		g.held = kind
		g.grounded = false
		g.lockTimer = 0
		if g.collides(g.current) {
			g.GameOver()
		}
		return
	}

	g.hasHeld = true
	g.held = kind
	g.spawnPiece()
}

// lockPiece freezes the current piece into the grid, clears lines, and
// spawns the next piece. The hold flag resets here.
func (g *Game) lockPiece() {
	for _, c := range g.current.Cells() {
		if c.Y >= 0 && c.Y < GridH && c.X >= 0 && c.X < GridW {
			g.grid[c.Y][c.X] = pieceColors[g.current.Kind]
		}
	}
	g.Play(core.SoundHit)

	cleared := g.clearLines()
	if cleared > 0 {
		g.AddScore(lineScores[cleared] * g.Level())
		g.Play(core.SoundScore)

		g.linesTotal += cleared
		for g.linesTotal/10+1 > g.Level() {
			g.NextLevel()
		}
	}

	g.holdUsed = false
	g.spawnPiece()
}

// clearLines removes full rows, scanning bottom-to-top and re-checking
// the same index after each removal since rows shift down into it.
func (g *Game) clearLines() int {
	cleared := 0
	for y := GridH - 1; y >= 0; y-- {
		full := true
		for x := 0; x < GridW; x++ {
			if g.grid[y][x] == core.ColorDefault {
				full = false
				break
			}
		}
		if !full {
			continue
		}

		cleared++
		for yy := y; yy > 0; yy-- {
			g.grid[yy] = g.grid[yy-1]
		}
		for x := 0; x < GridW; x++ {
			g.grid[0][x] = core.ColorDefault
		}
		y++ // the shifted-down row lands at the same index
	}
	return cleared
}

// ghostPiece returns where the current piece would land on a hard drop.
func (g *Game) ghostPiece() Piece {
	ghost := g.current
	for {
		probe := ghost
		probe.Y++
		if g.collides(probe) {
			return ghost
		}
		ghost = probe
	}
}

// Render draws the well, the falling piece, its ghost, and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offsetX := (dst.Width() - GridW*2) / 2
	offsetY := core.Max((dst.Height()-GridH)/2, 1)

	dst.DrawBox(core.NewRect(offsetX-1, offsetY-1, GridW*2+2, GridH+2))

	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if c := g.grid[y][x]; c != core.ColorDefault {
				g.drawCell(dst, offsetX, offsetY, x, y, BlockChar, c)
			}
		}
	}

	if !g.Over() {
		for _, c := range g.ghostPiece().Cells() {
			g.drawCell(dst, offsetX, offsetY, c.X, c.Y, GhostChar, core.ColorGray)
		}
		for _, c := range g.current.Cells() {
			g.drawCell(dst, offsetX, offsetY, c.X, c.Y, BlockChar, pieceColors[g.current.Kind])
		}
	}

	panelX := offsetX + GridW*2 + 3
	dst.DrawText(panelX, offsetY, fmt.Sprintf("Score: %d", g.Score()))
	dst.DrawText(panelX, offsetY+1, fmt.Sprintf("Level: %d", g.Level()))
	dst.DrawText(panelX, offsetY+2, fmt.Sprintf("Lines: %d", g.linesTotal))

	dst.DrawText(panelX, offsetY+4, "Next:")
	for i, k := range g.queue {
		for _, c := range cellsFor(k, 0) {
			dst.SetColored(panelX+c.X*2, offsetY+5+i*3+c.Y, BlockChar, pieceColors[k])
			dst.SetColored(panelX+c.X*2+1, offsetY+5+i*3+c.Y, BlockChar, pieceColors[k])
		}
	}

	if g.hasHeld {
		dst.DrawText(panelX, offsetY+14, "Hold:")
		for _, c := range cellsFor(g.held, 0) {
			dst.SetColored(panelX+c.X*2, offsetY+15+c.Y, BlockChar, pieceColors[g.held])
			dst.SetColored(panelX+c.X*2+1, offsetY+15+c.Y, BlockChar, pieceColors[g.held])
		}
	}

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}
	if g.Over() {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("GAME OVER - Score: %d - Press R to restart", g.Score()))
	}
}

// drawCell paints one grid cell as two screen columns.
func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	dst.SetColored(ox+x*2, oy+y, r, c)
	dst.SetColored(ox+x*2+1, oy+y, r, c)
}
