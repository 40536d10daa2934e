// Package rogue implements a turn-based dungeon crawl. Turns strictly
// alternate between the player and the enemies, gated by asymmetric tick
// cooldowns; a blocked, targetless player action consumes no turn.
package rogue

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
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

// turnOwner tracks whose half-turn is pending.
type turnOwner int

const (
	turnPlayer turnOwner = iota
	turnEnemies
)

// Game implements the dungeon crawler logic.
type Game struct {
	engine.Base

	cfg  config.RogueConfig
	rng  *rand.Rand
	diff *config.DifficultyManager

	floor    *Floor
	floorNum int

	playerPos core.Vec
	hp, maxHP int
	attack    int
	defense   int

	enemies []Enemy
	items   []Item

	turn        turnOwner
	playerTimer int
	enemyTimer  int

	victory bool
	runtime core.RuntimeConfig
}

// New creates a new dungeon crawler instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("rogue", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rogue"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dungeon"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRogue(configPath)
	if err != nil {
		cfg = config.DefaultRogueConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRoguePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.hp = cfg.Player.HP
	g.maxHP = cfg.Player.HP
	g.attack = cfg.Player.Attack
	g.defense = cfg.Player.Defense
	g.victory = false
	g.floorNum = 0

	g.Restart(1)
	g.descend()
}

// descend generates the next floor and places everything on it.
func (g *Game) descend() {
	g.floorNum++
	g.floor = generateFloor(g.cfg.Map, g.rng)
	g.playerPos = g.floor.Start

	g.spawnEnemies(g.rng)
	g.spawnItems(g.rng)

	g.turn = turnPlayer
	g.playerTimer = 0
	g.enemyTimer = 0

	g.floor.computeFOV(g.playerPos, g.cfg.Map.FOVRadius)

	if g.floorNum > 1 {
		g.NextLevel()
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

	switch g.turn {
	case turnPlayer:
		if g.playerTimer > 0 {
			g.playerTimer--
			break
		}
		if g.playerAct(in) {
			g.turn = turnEnemies
			g.enemyTimer = g.cfg.Turns.EnemyCooldown
			g.floor.computeFOV(g.playerPos, g.cfg.Map.FOVRadius)
		}

	case turnEnemies:
		if g.enemyTimer > 0 {
			g.enemyTimer--
			break
		}
		g.enemyTurn()
		g.turn = turnPlayer
		g.playerTimer = g.cfg.Turns.PlayerCooldown
	}

	return g.Result()
}

// playerAct consumes one player half-turn. It returns false when nothing
// happened: no input, or a blocked move with no target.
func (g *Game) playerAct(in core.InputFrame) bool {
	d := in.Direction()
	if d.X != 0 && d.Y != 0 {
		d.Y = 0 // no diagonal moves
	}
	if d.X == 0 && d.Y == 0 {
		return false
	}

	dest := g.playerPos.Add(d)

	// Moving into an enemy attacks instead
	if i := g.enemyAt(dest); i >= 0 {
		g.playerAttack(i)
		return true
	}

	if !g.floor.Walkable(dest) {
		return false
	}

	g.playerPos = dest
	g.pickupAt(dest)

	if g.floor.TileAt(dest) == TileStairs {
		if g.floorNum >= g.cfg.Map.Floors {
			// The stairs on the boss floor lead nowhere; the boss
			// must fall
			return true
		}
		g.AddScore(100)
		g.Play(core.SoundLevelUp)
		g.descend()
	}
	return true
}

// Render draws the explored dungeon, visible actors, and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := core.Max((dst.Width()-g.floor.W)/2, 0)
	offY := core.Max((dst.Height()-g.floor.H-1)/2, 1)

	for y := 0; y < g.floor.H; y++ {
		for x := 0; x < g.floor.W; x++ {
			c := core.Vec{X: x, Y: y}
			if !g.floor.Explored(c) {
				continue
			}

			var ch rune
			color := core.ColorGray
			switch g.floor.TileAt(c) {
			case TileWall:
				ch = '#'
			case TileStairs:
				ch = '>'
				color = core.ColorBrightYellow
			default:
				ch = '.'
			}
			if g.floor.Visible(c) && color == core.ColorGray {
				color = core.ColorWhite
			}
			dst.SetColored(offX+x, offY+y, ch, color)
		}
	}

	for _, it := range g.items {
		if !g.floor.Visible(it.Pos) {
			continue
		}
		glyph := '!'
		if it.Kind == ItemWeapon {
			glyph = '/'
		} else if it.Kind == ItemArmor {
			glyph = ']'
		}
		dst.SetColored(offX+it.Pos.X, offY+it.Pos.Y, glyph, core.ColorBrightCyan)
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !g.floor.Visible(e.Pos) {
			continue
		}
		stats := enemyStats[e.Kind]
		dst.SetColored(offX+e.Pos.X, offY+e.Pos.Y, stats.Glyph, stats.Color)
	}

	dst.SetColored(offX+g.playerPos.X, offY+g.playerPos.Y, '@', core.ColorBrightGreen)

	dst.DrawText(2, dst.Height()-1, fmt.Sprintf(
		"HP: %d/%d  Atk: %d  Def: %d  Floor: %d  Score: %d",
		g.hp, g.maxHP, g.attack, g.defense, g.floorNum, g.Score()))

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}
	if g.Over() {
		msg := "YOU DIED"
		if g.victory {
			msg = "THE DUNGEON LORD FALLS - YOU WIN"
		}
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("%s - Score: %d - Press R to restart", msg, g.Score()))
	}
}
