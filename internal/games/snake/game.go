// Package snake implements the classic grid snake game. Movement is gated
// by a tick interval that shortens as food is eaten; walls either wrap or
// kill depending on configuration.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

// Points awarded per food item.
const foodPoints = 10

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

// Game implements the Snake game.
type Game struct {
	engine.Base

	cfg config.SnakeConfig
	rng *rand.Rand

	tick         uint64
	foodEaten    int
	moveInterval int // Ticks between moves
	moveTicker   int

	// Snake state. Head at index 0.
	snake   []core.Vec
	dir     core.Vec
	nextDir core.Vec

	food    core.Vec
	hasFood bool

	gridW, gridH int
	offsetX      int
	offsetY      int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new Snake game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.foodEaten = 0
	g.moveInterval = cfg.Speed.MoveEveryTicks
	g.moveTicker = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.gridW = cfg.Grid.Width
	g.gridH = cfg.Grid.Height

	hudHeight := 2
	requiredW := g.gridW + 2
	requiredH := g.gridH + hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.offsetX = (g.screenW - g.gridW) / 2
	g.offsetY = hudHeight + 1

	// Snake starts at the grid center heading right.
	cx, cy := g.gridW/2, g.gridH/2
	g.snake = []core.Vec{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.dir = core.Vec{X: 1, Y: 0}
	g.nextDir = g.dir

	g.Restart(1)
	g.spawnFood()
}

// SetStart overrides the snake's head position and direction. Test hook for
// scripted scenarios.
func (g *Game) SetStart(head, dir core.Vec) {
	g.snake = []core.Vec{
		head,
		head.Add(dir.Scale(-1)),
		head.Add(dir.Scale(-2)),
	}
	g.dir = dir
	g.nextDir = dir
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.JustPressed(core.ActionRestart) && g.Over() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.Result()
	}

	if in.JustPressed(core.ActionPause) {
		g.TogglePause()
	}

	if !g.Running() || g.tooSmall {
		return g.Result()
	}

	g.queueDirection(in)

	g.moveTicker++
	if g.moveTicker >= g.moveInterval {
		g.moveTicker = 0
		g.move()
	}

	return g.Result()
}

// queueDirection buffers the most recent non-reversing direction input.
func (g *Game) queueDirection(in core.InputFrame) {
	want := in.Direction()
	if want == (core.Vec{}) || (want.X != 0 && want.Y != 0) {
		return
	}
	if g.dir.IsOpposite(want) {
		return
	}
	g.nextDir = want
}

// move advances the snake one cell in its current direction.
func (g *Game) move() {
	if len(g.snake) == 0 {
		return
	}

	// Apply the buffered direction; the reversal check runs again here in
	// case the direction changed since the input was queued.
	if !g.dir.IsOpposite(g.nextDir) {
		g.dir = g.nextDir
	}

	newHead := g.snake[0].Add(g.dir)

	if g.cfg.Grid.WrapWalls {
		newHead.X = core.Wrap(newHead.X, g.gridW)
		newHead.Y = core.Wrap(newHead.Y, g.gridH)
	} else if newHead.X < 0 || newHead.X >= g.gridW || newHead.Y < 0 || newHead.Y >= g.gridH {
		g.GameOver()
		return
	}

	growing := g.hasFood && newHead == g.food

	// Self collision, checked before growth. The tail cell is excluded when
	// it is about to move out of the way this tick.
	checkLen := len(g.snake)
	if !growing && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.GameOver()
			return
		}
	}

	g.snake = append([]core.Vec{newHead}, g.snake...)

	if growing {
		g.AddScore(foodPoints)
		g.Play(core.SoundScore)
		g.foodEaten++
		if g.cfg.Speed.SpeedUpEvery > 0 && g.foodEaten%g.cfg.Speed.SpeedUpEvery == 0 {
			g.moveInterval = core.Max(g.cfg.Speed.MinMoveTicks, g.moveInterval-1)
		}
		g.spawnFood()
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// spawnFood places food at a uniformly random empty cell. With no empty
// cell left the food is simply not placed.
func (g *Game) spawnFood() {
	occupied := make(map[core.Vec]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	var empty []core.Vec
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			p := core.Vec{X: x, Y: y}
			if !occupied[p] {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		g.hasFood = false
		return
	}

	g.food = empty[g.rng.Intn(len(empty))]
	g.hasFood = true
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(p core.Vec) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	// Border around the playfield
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.gridW+2, g.gridH+2))

	if g.hasFood {
		dst.SetColored(g.offsetX+g.food.X, g.offsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	for i, seg := range g.snake {
		ch := 'o'
		if i == 0 {
			ch = 'O'
		}
		dst.SetColored(g.offsetX+seg.X, g.offsetY+seg.Y, ch, core.ColorBrightGreen)
	}

	switch {
	case g.Over():
		g.drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.Score()))
	case g.State().Paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	mode := "walls"
	if g.cfg.Grid.WrapWalls {
		mode = "wrap"
	}
	hud := fmt.Sprintf(" Score: %d  Length: %d  Mode: %s", g.Score(), len(g.snake), mode)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered message box.
func (g *Game) drawOverlay(dst *core.Screen, title, subtitle string) {
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
