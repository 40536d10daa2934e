// Package breakout implements a brick-breaking game with powerups.
// The paddle keeps one attached ball while waiting to launch; extra
// balls from the multiball powerup fly free. A life is lost only when
// the last ball falls past the bottom edge.
package breakout

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '▒'

	ballRadius = 0.5
	brickW     = 4
	brickH     = 1
)

// Package-level overrides set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Ball is a single ball in flight or attached to the paddle.
type Ball struct {
	X, Y     float64
	VX, VY   float64
	Attached bool
}

// Brick is one destructible cell of the wall.
type Brick struct {
	X, Y   int // top-left in screen cells
	W, H   int
	Points int
	Color  core.Color
}

// Game implements the Breakout game logic.
type Game struct {
	engine.Base

	cfg config.BreakoutConfig
	rng *rand.Rand

	paddleX     float64
	paddleWidth int
	paddleY     int

	balls    []Ball
	bricks   []Brick
	powerups []PowerUp

	runtime core.RuntimeConfig
	victory bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.paddleWidth = cfg.Paddle.Width
	g.paddleY = runtime.ScreenH - 2
	g.paddleX = float64(runtime.ScreenW-g.paddleWidth) / 2.0

	g.powerups = nil
	g.victory = false

	g.Restart(cfg.Gameplay.Lives)
	g.buildLevel()
	g.attachBall()
}

// attachBall replaces all balls with a single ball resting on the paddle.
func (g *Game) attachBall() {
	g.balls = []Ball{{
		X:        g.paddleX + float64(g.paddleWidth)/2.0,
		Y:        float64(g.paddleY) - 1,
		Attached: true,
	}}
}

// launchBall releases the attached ball upward with a slight random angle.
func (g *Game) launchBall() {
	for i := range g.balls {
		if !g.balls[i].Attached {
			continue
		}
		g.balls[i].Attached = false
		angle := (g.rng.Float64() - 0.5) * 0.8
		speed := g.cfg.Physics.BallSpeed
		g.balls[i].VX = speed * angle
		g.balls[i].VY = -speed
		normalizeEnergy(&g.balls[i], speed)
	}
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

	// Paddle movement
	if in.Pressed(core.ActionLeft) {
		g.paddleX -= g.cfg.Physics.PaddleSpeed
	}
	if in.Pressed(core.ActionRight) {
		g.paddleX += g.cfg.Physics.PaddleSpeed
	}
	g.paddleX = core.ClampF(g.paddleX, 1, float64(g.runtime.ScreenW-g.paddleWidth-1))

	if in.JustPressed(core.ActionFire) {
		g.launchBall()
	}

	g.updateBalls()
	g.updatePowerUps()

	if len(g.balls) == 0 {
		if !g.LoseLife() {
			return g.Result()
		}
		g.attachBall()
	}

	if len(g.bricks) == 0 {
		g.advanceLevel()
	}

	return g.Result()
}

// advanceLevel moves to the next brick pattern or ends in victory.
func (g *Game) advanceLevel() {
	if g.Level() >= g.cfg.Gameplay.VictoryAtLevel {
		g.victory = true
		g.GameOver()
		return
	}
	g.NextLevel()
	g.powerups = nil
	g.buildLevel()
	g.attachBall()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))

	for _, b := range g.bricks {
		for dx := 0; dx < b.W; dx++ {
			dst.SetColored(b.X+dx, b.Y, BrickChar, b.Color)
		}
	}

	for _, p := range g.powerups {
		dst.SetColored(int(p.X), int(p.Y), p.Type.Glyph(), core.ColorBrightGreen)
	}

	for i := 0; i < g.paddleWidth; i++ {
		dst.SetColored(int(g.paddleX)+i, g.paddleY, PaddleChar, core.ColorBrightCyan)
	}

	for _, b := range g.balls {
		dst.SetColored(int(b.X), int(b.Y), BallChar, core.ColorBrightYellow)
	}

	hud := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d ", g.Score(), g.Lives(), g.Level())
	dst.DrawText(2, 0, hud)

	if g.State().Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.Over() {
		if g.victory {
			g.drawCenteredMessage(dst, "YOU WIN!",
				fmt.Sprintf("Score: %d  |  Press R to restart", g.Score()))
		} else {
			g.drawCenteredMessage(dst, "GAME OVER",
				fmt.Sprintf("Score: %d  |  Press R to restart", g.Score()))
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
