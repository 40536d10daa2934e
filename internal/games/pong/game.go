// Package pong implements a classic Pong game with CPU opponent.
// The player controls the left paddle, the CPU controls the right paddle.
// The ball carries a speed scalar separate from its direction; speed is
// clamped to [base, max] and grows after every paddle bounce.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
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

// Game implements the Pong game logic.
type Game struct {
	engine.Base

	cfg config.PongConfig
	rng *rand.Rand

	// Paddles
	paddle1Y float64 // Player (left)
	paddle2Y float64 // CPU (right)

	// Ball. dirX/dirY is a unit direction; speed is the scalar magnitude.
	ballX, ballY float64
	dirX, dirY   float64
	speed        float64

	// Scores
	score1 int
	score2 int

	winner     int // 1 or 2
	serving    bool
	serveDelay int

	runtime      core.RuntimeConfig
	paddleHeight int
	cpuSkill     float64
	tickCount    int
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Adjust paddle height based on screen size
	g.paddleHeight = core.Clamp(runtime.ScreenH/5, 3, cfg.Paddles.Height)

	centerY := float64(runtime.ScreenH) / 2.0
	g.paddle1Y = centerY - float64(g.paddleHeight)/2.0
	g.paddle2Y = centerY - float64(g.paddleHeight)/2.0

	g.score1 = 0
	g.score2 = 0
	g.winner = 0
	g.tickCount = 0
	g.cpuSkill = cfg.CPU.MinSkill

	g.Restart(1)
	g.startServe(1)
}

// startServe prepares to serve the ball toward the player scored against.
func (g *Game) startServe(server int) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.ServeDelay

	g.ballX = float64(g.runtime.ScreenW) / 2.0
	g.ballY = float64(g.runtime.ScreenH) / 2.0

	g.speed = g.cfg.Physics.BallSpeed

	dx := 1.0
	if server == 1 {
		dx = -1.0
	}
	// Random vertical angle in [-0.3, 0.3]
	dy := (g.rng.Float64() - 0.5) * 0.6
	g.setDirection(dx, dy)
}

// setDirection normalizes (dx, dy) into the unit direction vector.
func (g *Game) setDirection(dx, dy float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		dx, dy, mag = 1, 0, 1
	}
	g.dirX = dx / mag
	g.dirY = dy / mag
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

	g.tickCount++

	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
		}
		// Paddles still move during serve
	}

	// Player paddle
	if in.Pressed(core.ActionUp) {
		g.paddle1Y -= g.cfg.Physics.PaddleSpeed
	}
	if in.Pressed(core.ActionDown) {
		g.paddle1Y += g.cfg.Physics.PaddleSpeed
	}

	maxY := float64(g.runtime.ScreenH - g.paddleHeight - 1)
	g.paddle1Y = core.ClampF(g.paddle1Y, 1, maxY)

	g.updateCPU()

	if !g.serving {
		g.updateBall()
	}

	// CPU sharpens over time
	if g.tickCount%600 == 0 && g.cpuSkill < g.cfg.CPU.MaxSkill {
		g.cpuSkill += 0.02
	}

	return g.Result()
}

// updateCPU handles CPU paddle movement.
func (g *Game) updateCPU() {
	targetY := g.ballY - float64(g.paddleHeight)/2.0
	diff := targetY - g.paddle2Y

	// Only react while the ball approaches
	if g.dirX > 0 {
		moveSpeed := g.cfg.Physics.PaddleSpeed * g.cpuSkill
		if math.Abs(diff) > moveSpeed {
			if diff > 0 {
				g.paddle2Y += moveSpeed
			} else {
				g.paddle2Y -= moveSpeed
			}
		}
	}

	maxY := float64(g.runtime.ScreenH - g.paddleHeight - 1)
	g.paddle2Y = core.ClampF(g.paddle2Y, 1, maxY)
}

// updateBall handles ball physics, paddle bounces, and scoring.
func (g *Game) updateBall() {
	g.ballX += g.dirX * g.speed
	g.ballY += g.dirY * g.speed

	// Bounce off top/bottom walls
	if g.ballY <= 1 {
		g.ballY = 1
		g.dirY = -g.dirY
	}
	if g.ballY >= float64(g.runtime.ScreenH-2) {
		g.ballY = float64(g.runtime.ScreenH - 2)
		g.dirY = -g.dirY
	}

	paddleW := float64(g.cfg.Paddles.Width)
	paddle1X := float64(g.cfg.Paddles.Offset)
	paddle2X := float64(g.runtime.ScreenW-g.cfg.Paddles.Offset) - paddleW

	// Left paddle
	if g.ballX <= paddle1X+paddleW && g.dirX < 0 {
		if g.ballY >= g.paddle1Y && g.ballY <= g.paddle1Y+float64(g.paddleHeight) {
			g.ballX = paddle1X + paddleW
			g.bounceOffPaddle(g.paddle1Y, 1)
		}
	}

	// Right paddle
	if g.ballX >= paddle2X && g.dirX > 0 {
		if g.ballY >= g.paddle2Y && g.ballY <= g.paddle2Y+float64(g.paddleHeight) {
			g.ballX = paddle2X - 1
			g.bounceOffPaddle(g.paddle2Y, -1)
		}
	}

	// Scoring: ball passed a paddle
	if g.ballX < 0 {
		g.score2++
		g.Play(core.SoundScore)
		g.afterPoint(2)
	} else if g.ballX > float64(g.runtime.ScreenW) {
		g.score1++
		g.AddScore(1)
		g.Play(core.SoundScore)
		g.afterPoint(1)
	}
}

// bounceOffPaddle reflects the ball horizontally, applies spin from the hit
// position, and grows the speed scalar within its clamp.
func (g *Game) bounceOffPaddle(paddleY float64, outX float64) {
	hitPos := (g.ballY - paddleY) / float64(g.paddleHeight)
	spin := (hitPos - 0.5) * g.cfg.Physics.SpinFactor

	g.setDirection(outX, g.dirY+spin)

	g.speed = core.ClampF(
		g.speed+g.cfg.Physics.SpeedGrowth,
		g.cfg.Physics.BallSpeed,
		g.cfg.Physics.MaxBallSpeed,
	)
	g.Play(core.SoundHit)
}

// afterPoint checks the win condition and serves the next point.
func (g *Game) afterPoint(scorer int) {
	if g.score1 >= g.cfg.Gameplay.WinScore {
		g.winner = 1
		g.GameOver()
		return
	}
	if g.score2 >= g.cfg.Gameplay.WinScore {
		g.winner = 2
		g.GameOver()
		return
	}
	g.startServe(scorer)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.Set(centerX, y, NetChar)
	}

	paddle1X := g.cfg.Paddles.Offset
	paddle2X := dst.Width() - g.cfg.Paddles.Offset - g.cfg.Paddles.Width

	for i := 0; i < g.paddleHeight; i++ {
		dst.SetColored(paddle1X, int(g.paddle1Y)+i, PaddleChar, core.ColorBrightCyan)
		dst.SetColored(paddle2X, int(g.paddle2Y)+i, PaddleChar, core.ColorBrightMagenta)
	}

	// Blink during serve
	if !g.serving || (g.serveDelay/10)%2 == 0 {
		dst.SetColored(int(g.ballX), int(g.ballY), BallChar, core.ColorBrightYellow)
	}

	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", g.score1))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.score2))
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-4, 0, "CPU")

	if g.State().Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.Over() {
		msg := "CPU WINS!"
		if g.winner == 1 {
			msg = "YOU WIN!"
		}
		g.drawCenteredMessage(dst, msg,
			fmt.Sprintf("%d - %d  |  Press R to restart", g.score1, g.score2))
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
