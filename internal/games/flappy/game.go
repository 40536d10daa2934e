// Package flappy implements a one-button side scroller. Gravity pulls the
// bird down every tick; the fire action applies an upward impulse. Pipe
// pairs scroll left and score when passed.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	BirdChar = '>'
	PipeChar = '█'

	gravity      = 0.04
	flapImpulse  = -0.45
	maxFallSpeed = 0.8
	scrollSpeed  = 0.35
	pipeSpacing  = 24
	baseGapSize  = 7
	minGapSize   = 4
)

// Pipe is one vertical pair with a gap. GapY is the top row of the gap.
type Pipe struct {
	X      float64
	GapY   int
	GapH   int
	Passed bool
}

// Game implements the Flappy game logic.
type Game struct {
	engine.Base

	rng  *rand.Rand
	diff *config.DifficultyManager

	birdX int
	birdY float64
	velY  float64

	pipes   []Pipe
	runtime core.RuntimeConfig
	started bool
}

// New creates a new Flappy game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.diff = config.NewDifficultyManager(config.DifficultyConfig{
		Enabled:      true,
		Progression:  config.ProgressionConfig{Type: "score", MaxAt: 30},
		Scaling:      config.ScalingConfig{SpeedMultiplier: 0.5},
		InitialLevel: 0,
	})

	g.birdX = runtime.ScreenW / 4
	g.birdY = float64(runtime.ScreenH) / 2.0
	g.velY = 0
	g.started = false

	g.pipes = nil
	for i := 0; i < 3; i++ {
		g.spawnPipe(float64(runtime.ScreenW + i*pipeSpacing))
	}

	g.Restart(1)
}

// gapSize returns the current gap height, narrowing as the score grows.
func (g *Game) gapSize() int {
	level := g.diff.Level(g.Score(), 0)
	return core.Clamp(baseGapSize-int(level*float64(baseGapSize-minGapSize)),
		minGapSize, baseGapSize)
}

// spawnPipe adds a pipe pair at x with a random gap position.
func (g *Game) spawnPipe(x float64) {
	gapH := g.gapSize()
	maxTop := g.runtime.ScreenH - gapH - 3
	g.pipes = append(g.pipes, Pipe{
		X:    x,
		GapY: 2 + g.rng.Intn(core.Max(maxTop-1, 1)),
		GapH: gapH,
	})
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

	// The world holds still until the first flap
	if !g.started {
		if in.JustPressed(core.ActionFire) {
			g.started = true
			g.velY = flapImpulse
		}
		return g.Result()
	}

	if in.JustPressed(core.ActionFire) {
		g.velY = flapImpulse
		g.Play(core.SoundHit)
	}

	g.velY += gravity
	if g.velY > maxFallSpeed {
		g.velY = maxFallSpeed
	}
	g.birdY += g.velY

	// Floor and ceiling are fatal
	if g.birdY <= 0 || g.birdY >= float64(g.runtime.ScreenH-1) {
		g.die()
		return g.Result()
	}

	g.updatePipes()

	return g.Result()
}

// updatePipes scrolls pipes left, scores passes, recycles off-screen pairs,
// and checks collision.
func (g *Game) updatePipes() {
	speed := g.diff.Speed(scrollSpeed, g.Score(), 0)

	for i := range g.pipes {
		p := &g.pipes[i]
		p.X -= speed

		if !p.Passed && p.X < float64(g.birdX) {
			p.Passed = true
			g.AddScore(1)
			g.Play(core.SoundScore)
		}

		// Collision: bird column overlaps the pipe column and is outside the gap
		if int(p.X) == g.birdX {
			y := int(g.birdY)
			if y < p.GapY || y >= p.GapY+p.GapH {
				g.die()
				return
			}
		}
	}

	if len(g.pipes) > 0 && g.pipes[0].X < -1 {
		g.pipes = g.pipes[1:]
		g.spawnPipe(g.pipes[len(g.pipes)-1].X + pipeSpacing)
	}
}

func (g *Game) die() {
	g.LoseLife()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, p := range g.pipes {
		x := int(p.X)
		for y := 0; y < dst.Height(); y++ {
			if y >= p.GapY && y < p.GapY+p.GapH {
				continue
			}
			dst.SetColored(x, y, PipeChar, core.ColorBrightGreen)
		}
	}

	dst.SetColored(g.birdX, int(g.birdY), BirdChar, core.ColorBrightYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.Score()))

	if !g.started && !g.Over() {
		dst.DrawTextCentered(dst.Height()/2+3, "Press SPACE to flap")
	}

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}

	if g.Over() {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("GAME OVER - Score: %d - Press R to restart", g.Score()))
	}
}
