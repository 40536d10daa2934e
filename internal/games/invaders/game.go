// Package invaders implements a fixed-shooter against a marching alien
// formation. The whole formation shares one horizontal direction; when any
// alive alien would cross a screen edge the formation reverses and drops a
// row. The player has at most one bullet in flight.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	GridCols = 11
	GridRows = 5

	alienSpacingX = 4
	alienSpacingY = 2

	playerChar      = '▲'
	playerBulletCh  = '|'
	alienBulletCh   = '¡'
	ufoChar         = '◄'
	shieldChar      = '#'
	maxAlienBullets = 3

	ufoInterval = 900 // ticks between UFO passes
	ufoPoints   = 100
	ufoSpeed    = 0.3
)

// rowPoints maps formation row (0 = top) to score value.
var rowPoints = [GridRows]int{30, 20, 20, 10, 10}

// rowGlyphs maps formation row to its alien glyph.
var rowGlyphs = [GridRows]rune{'Y', 'X', 'X', 'W', 'W'}

// Bullet is a projectile in flight. DY is +1 for alien shots, -1 for the
// player's.
type Bullet struct {
	X, Y float64
	DY   float64
}

// Game implements the Space Invaders game logic.
type Game struct {
	engine.Base

	rng *rand.Rand

	alive [GridRows][GridCols]bool

	// Formation position of the top-left grid slot
	formX, formY float64
	formDir      float64 // +1 or -1
	formSpeed    float64

	playerX      float64
	playerBullet *Bullet
	alienBullets []Bullet

	shields []core.Vec // destructible blocks, removed on hit
	ufoX    float64
	ufoLive bool
	ufoTick int

	shieldRow int
	runtime   core.RuntimeConfig
	tick      int
}

// New creates a new Invaders game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.playerX = float64(runtime.ScreenW) / 2.0
	g.shieldRow = runtime.ScreenH - 5
	g.tick = 0
	g.ufoLive = false
	g.ufoTick = 0

	g.Restart(3)
	g.spawnWave()
	g.buildShields()
}

// spawnWave resets the formation for the current level. Higher levels
// march faster.
func (g *Game) spawnWave() {
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			g.alive[r][c] = true
		}
	}
	g.formX = float64(g.runtime.ScreenW-GridCols*alienSpacingX) / 2.0
	g.formY = 2
	g.formDir = 1
	g.formSpeed = 0.08 + 0.04*float64(g.Level()-1)
	g.playerBullet = nil
	g.alienBullets = nil
}

// buildShields places four blocks of destructible shield cells above the
// player row.
func (g *Game) buildShields() {
	g.shields = nil
	blockW := 5
	gap := (g.runtime.ScreenW - 4*blockW) / 5
	for b := 0; b < 4; b++ {
		x0 := gap + b*(blockW+gap)
		for dx := 0; dx < blockW; dx++ {
			for dy := 0; dy < 2; dy++ {
				g.shields = append(g.shields, core.Vec{X: x0 + dx, Y: g.shieldRow + dy})
			}
		}
	}
}

// alienPos returns the screen cell of the alien at (row, col).
func (g *Game) alienPos(row, col int) (int, int) {
	return int(g.formX) + col*alienSpacingX, int(g.formY) + row*alienSpacingY
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

	g.tick++

	if in.Pressed(core.ActionLeft) {
		g.playerX -= 0.6
	}
	if in.Pressed(core.ActionRight) {
		g.playerX += 0.6
	}
	g.playerX = core.ClampF(g.playerX, 1, float64(g.runtime.ScreenW-2))

	if in.JustPressed(core.ActionFire) && g.playerBullet == nil {
		g.playerBullet = &Bullet{X: g.playerX, Y: float64(g.runtime.ScreenH - 3), DY: -1}
		g.Play(core.SoundHit)
	}

	g.moveFormation()
	g.alienFire()
	g.updateBullets()
	g.updateUFO()

	if g.waveCleared() {
		g.NextLevel()
		g.spawnWave()
	}

	return g.Result()
}

// moveFormation marches the formation horizontally; when any alive alien
// would leave the screen, the whole formation reverses and drops one row.
func (g *Game) moveFormation() {
	next := g.formX + g.formDir*g.formSpeed

	reverse := false
	for r := 0; r < GridRows && !reverse; r++ {
		for c := 0; c < GridCols; c++ {
			if !g.alive[r][c] {
				continue
			}
			x := next + float64(c*alienSpacingX)
			if x < 1 || x > float64(g.runtime.ScreenW-2) {
				reverse = true
				break
			}
		}
	}

	if reverse {
		g.formDir = -g.formDir
		g.formY++
	} else {
		g.formX = next
	}

	// Any alive alien reaching the shield row ends the game
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if !g.alive[r][c] {
				continue
			}
			if _, y := g.alienPos(r, c); y >= g.shieldRow {
				g.GameOver()
				return
			}
		}
	}
}

// alienFire lets random bottom-most alive aliens shoot, bounded by the
// bullet pool size.
func (g *Game) alienFire() {
	if len(g.alienBullets) >= maxAlienBullets {
		return
	}
	if g.rng.Intn(60) != 0 {
		return
	}

	shooters := g.bottomAliens()
	if len(shooters) == 0 {
		return
	}
	pick := shooters[g.rng.Intn(len(shooters))]
	x, y := g.alienPos(pick.Y, pick.X)
	g.alienBullets = append(g.alienBullets, Bullet{X: float64(x), Y: float64(y + 1), DY: 1})
}

// bottomAliens returns the (col, row) of the lowest alive alien per column.
func (g *Game) bottomAliens() []core.Vec {
	var out []core.Vec
	for c := 0; c < GridCols; c++ {
		for r := GridRows - 1; r >= 0; r-- {
			if g.alive[r][c] {
				out = append(out, core.Vec{X: c, Y: r})
				break
			}
		}
	}
	return out
}

// updateBullets advances all projectiles and resolves their hits.
func (g *Game) updateBullets() {
	if b := g.playerBullet; b != nil {
		b.Y += b.DY * 0.8
		if b.Y < 0 || g.resolvePlayerBullet(b) {
			g.playerBullet = nil
		}
	}

	alive := g.alienBullets[:0]
	for i := range g.alienBullets {
		b := g.alienBullets[i]
		b.Y += b.DY * 0.3

		if b.Y >= float64(g.runtime.ScreenH) {
			continue
		}
		if g.hitShield(int(b.X), int(b.Y)) {
			continue
		}
		if int(b.Y) == g.runtime.ScreenH-2 && core.Abs(int(b.X)-int(g.playerX)) <= 1 {
			g.playerHit()
			continue
		}
		alive = append(alive, b)
	}
	g.alienBullets = alive
}

// resolvePlayerBullet returns true when the bullet hit something and is spent.
func (g *Game) resolvePlayerBullet(b *Bullet) bool {
	if g.hitShield(int(b.X), int(b.Y)) {
		return true
	}

	if g.ufoLive && int(b.Y) == 0 && core.Abs(int(b.X)-int(g.ufoX)) <= 1 {
		g.ufoLive = false
		g.AddScore(ufoPoints)
		g.Play(core.SoundExplosion)
		return true
	}

	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if !g.alive[r][c] {
				continue
			}
			x, y := g.alienPos(r, c)
			if int(b.Y) == y && core.Abs(int(b.X)-x) <= 1 {
				g.alive[r][c] = false
				g.AddScore(rowPoints[r])
				g.Play(core.SoundExplosion)
				return true
			}
		}
	}
	return false
}

// hitShield removes a shield block at (x, y) if present.
func (g *Game) hitShield(x, y int) bool {
	for i, s := range g.shields {
		if s.X == x && s.Y == y {
			g.shields = append(g.shields[:i], g.shields[i+1:]...)
			return true
		}
	}
	return false
}

// playerHit loses a life and recenters the cannon.
func (g *Game) playerHit() {
	if g.LoseLife() {
		g.playerX = float64(g.runtime.ScreenW) / 2.0
	}
}

// updateUFO schedules and moves the bonus saucer across the top row.
func (g *Game) updateUFO() {
	if !g.ufoLive {
		g.ufoTick++
		if g.ufoTick >= ufoInterval {
			g.ufoTick = 0
			g.ufoLive = true
			g.ufoX = float64(g.runtime.ScreenW - 1)
		}
		return
	}
	g.ufoX -= ufoSpeed
	if g.ufoX < 0 {
		g.ufoLive = false
	}
}

// waveCleared reports whether every alien is dead.
func (g *Game) waveCleared() bool {
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if g.alive[r][c] {
				return false
			}
		}
	}
	return true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ufoLive {
		dst.SetColored(int(g.ufoX), 0, ufoChar, core.ColorBrightRed)
	}

	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if !g.alive[r][c] {
				continue
			}
			x, y := g.alienPos(r, c)
			dst.SetColored(x, y, rowGlyphs[r], core.ColorBrightGreen)
		}
	}

	for _, s := range g.shields {
		dst.SetColored(s.X, s.Y, shieldChar, core.ColorBrightCyan)
	}

	if g.playerBullet != nil {
		dst.Set(int(g.playerBullet.X), int(g.playerBullet.Y), playerBulletCh)
	}
	for _, b := range g.alienBullets {
		dst.SetColored(int(b.X), int(b.Y), alienBulletCh, core.ColorBrightRed)
	}

	dst.SetColored(int(g.playerX), g.runtime.ScreenH-2, playerChar, core.ColorBrightYellow)

	dst.DrawText(2, g.runtime.ScreenH-1,
		fmt.Sprintf("Score: %d  Lives: %d  Wave: %d", g.Score(), g.Lives(), g.Level()))

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}
	if g.Over() {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("GAME OVER - Score: %d - Press R to restart", g.Score()))
	}
}
