// Package frogger implements a lane-crossing game. The frog hops across
// road lanes of vehicles, then rides logs and turtles over river lanes to
// fill five home slots. Water without a platform underneath is fatal, as
// is being carried off screen.
package frogger

import (
	"fmt"
	"math/rand"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	FrogChar    = '@'
	CarChar     = '■'
	TruckChar   = '▬'
	LogChar     = '='
	TurtleChar  = 'o'
	HomeChar    = '∩'
	FilledHome  = '@'
	WaterChar   = '~'
	homeCount   = 5
	attemptTime = 60 * 30 // ticks per attempt at 60Hz
	homePoints  = 50
	hopPoints   = 1
	allHomesWon = 250
)

// LaneKind tells how a lane treats the frog.
type LaneKind int

const (
	LaneSafe  LaneKind = iota // grass, no hazards
	LaneRoad                  // vehicles kill on contact
	LaneRiver                 // platforms carry, bare water kills
)

// Entity is a vehicle or platform sliding along a lane.
type Entity struct {
	X     float64
	Width int
}

// Lane is one horizontal strip of the playfield.
type Lane struct {
	Kind     LaneKind
	Y        int
	Speed    float64 // sign is direction
	Glyph    rune
	Entities []Entity
}

// Game implements the Frogger game logic.
type Game struct {
	engine.Base

	rng *rand.Rand

	frogX    float64
	frogY    int
	maxY     int // deepest row reached this attempt, for hop scoring
	lanes    []Lane
	homes    [homeCount]bool
	timer    int
	homeRow  int
	startRow int

	runtime core.RuntimeConfig
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("frogger", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.homeRow = 1
	g.startRow = runtime.ScreenH - 2
	for i := range g.homes {
		g.homes[i] = false
	}

	g.Restart(3)
	g.buildLanes()
	g.respawn()
}

// buildLanes lays out the playfield: homes, river, median, road, start.
// Lane speed scales with level.
func (g *Game) buildLanes() {
	g.lanes = nil
	mult := 1.0 + 0.25*float64(g.Level()-1)

	mid := (g.homeRow + g.startRow) / 2

	// River lanes between home row and median
	dir := 1.0
	for y := g.homeRow + 1; y < mid; y++ {
		glyph := LogChar
		width := 4 + g.rng.Intn(3)
		if g.rng.Intn(2) == 0 {
			glyph = TurtleChar
			width = 2 + g.rng.Intn(2)
		}
		lane := Lane{
			Kind:  LaneRiver,
			Y:     y,
			Speed: dir * (0.08 + 0.04*g.rng.Float64()) * mult,
			Glyph: glyph,
		}
		g.fillLane(&lane, width, 3)
		g.lanes = append(g.lanes, lane)
		dir = -dir
	}

	// Road lanes between median and start row
	for y := mid + 1; y < g.startRow; y++ {
		glyph := CarChar
		width := 2
		if g.rng.Intn(3) == 0 {
			glyph = TruckChar
			width = 4
		}
		lane := Lane{
			Kind:  LaneRoad,
			Y:     y,
			Speed: dir * (0.1 + 0.06*g.rng.Float64()) * mult,
			Glyph: glyph,
		}
		g.fillLane(&lane, width, 2+g.rng.Intn(2))
		g.lanes = append(g.lanes, lane)
		dir = -dir
	}
}

// fillLane spreads count entities of the given width evenly with random
// phase.
func (g *Game) fillLane(lane *Lane, width, count int) {
	spacing := float64(g.runtime.ScreenW) / float64(count)
	phase := g.rng.Float64() * spacing
	for i := 0; i < count; i++ {
		lane.Entities = append(lane.Entities, Entity{
			X:     phase + float64(i)*spacing,
			Width: width,
		})
	}
}

// respawn puts the frog back on the start row and restarts the attempt
// timer.
func (g *Game) respawn() {
	g.frogX = float64(g.runtime.ScreenW) / 2.0
	g.frogY = g.startRow
	g.maxY = g.startRow
	g.timer = attemptTime
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

	g.timer--
	if g.timer <= 0 {
		g.die()
		return g.Result()
	}

	g.handleHop(in)
	g.updateLanes()
	g.resolveFrog()

	return g.Result()
}

// handleHop moves the frog one cell per key press. Hopping deeper than
// ever before this attempt scores a point.
func (g *Game) handleHop(in core.InputFrame) {
	if in.JustPressed(core.ActionUp) && g.frogY > g.homeRow {
		g.frogY--
		if g.frogY < g.maxY {
			g.maxY = g.frogY
			g.AddScore(hopPoints)
		}
	}
	if in.JustPressed(core.ActionDown) && g.frogY < g.startRow {
		g.frogY++
	}
	if in.JustPressed(core.ActionLeft) {
		g.frogX--
	}
	if in.JustPressed(core.ActionRight) {
		g.frogX++
	}
	g.frogX = core.ClampF(g.frogX, 0, float64(g.runtime.ScreenW-1))

	if g.frogY == g.homeRow {
		g.enterHome()
	}
}

// enterHome fills the nearest empty home slot or kills the frog on a miss.
func (g *Game) enterHome() {
	slot := g.homeSlotAt(int(g.frogX))
	if slot < 0 || g.homes[slot] {
		g.die()
		return
	}

	g.homes[slot] = true
	g.AddScore(homePoints + g.timer/60)
	g.Play(core.SoundScore)

	if g.allHomesFilled() {
		g.AddScore(allHomesWon)
		g.NextLevel()
		for i := range g.homes {
			g.homes[i] = false
		}
		g.buildLanes()
	}
	g.respawn()
}

// homeX returns the screen column of home slot i.
func (g *Game) homeX(i int) int {
	spacing := g.runtime.ScreenW / (homeCount + 1)
	return (i + 1) * spacing
}

// homeSlotAt returns the slot index at column x, or -1 between slots.
func (g *Game) homeSlotAt(x int) int {
	for i := 0; i < homeCount; i++ {
		if core.Abs(x-g.homeX(i)) <= 1 {
			return i
		}
	}
	return -1
}

func (g *Game) allHomesFilled() bool {
	for _, h := range g.homes {
		if !h {
			return false
		}
	}
	return true
}

// updateLanes slides every entity along its lane, wrapping around the
// screen edges.
func (g *Game) updateLanes() {
	w := float64(g.runtime.ScreenW)
	for li := range g.lanes {
		lane := &g.lanes[li]
		for ei := range lane.Entities {
			e := &lane.Entities[ei]
			e.X += lane.Speed
			if e.X > w {
				e.X -= w + float64(e.Width)
			}
			if e.X < -float64(e.Width) {
				e.X += w + float64(e.Width)
			}
		}
	}
}

// resolveFrog applies the current lane's effect: vehicles kill, river
// platforms carry, bare water kills.
func (g *Game) resolveFrog() {
	lane := g.laneAt(g.frogY)
	if lane == nil {
		return
	}

	switch lane.Kind {
	case LaneRoad:
		if g.onEntity(lane) != nil {
			g.die()
		}
	case LaneRiver:
		e := g.onEntity(lane)
		if e == nil {
			g.die()
			return
		}
		g.frogX += lane.Speed
		if g.frogX < 0 || g.frogX >= float64(g.runtime.ScreenW) {
			g.die() // carried off screen
		}
	}
}

// laneAt returns the lane occupying row y, or nil.
func (g *Game) laneAt(y int) *Lane {
	for i := range g.lanes {
		if g.lanes[i].Y == y {
			return &g.lanes[i]
		}
	}
	return nil
}

// onEntity returns the entity under the frog, or nil.
func (g *Game) onEntity(lane *Lane) *Entity {
	for i := range lane.Entities {
		e := &lane.Entities[i]
		if g.frogX >= e.X-0.5 && g.frogX < e.X+float64(e.Width)+0.5 {
			return e
		}
	}
	return nil
}

// die loses a life and respawns the frog if lives remain.
func (g *Game) die() {
	if g.LoseLife() {
		g.respawn()
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Home row
	for i := 0; i < homeCount; i++ {
		ch := HomeChar
		if g.homes[i] {
			ch = FilledHome
		}
		dst.SetColored(g.homeX(i), g.homeRow, ch, core.ColorBrightGreen)
	}

	for _, lane := range g.lanes {
		if lane.Kind == LaneRiver {
			for x := 0; x < dst.Width(); x++ {
				dst.SetColored(x, lane.Y, WaterChar, core.ColorBrightBlue)
			}
		}
		color := core.ColorBrightRed
		if lane.Kind == LaneRiver {
			color = core.ColorBrightYellow
		}
		for _, e := range lane.Entities {
			for dx := 0; dx < e.Width; dx++ {
				dst.SetColored(int(e.X)+dx, lane.Y, lane.Glyph, color)
			}
		}
	}

	dst.SetColored(int(g.frogX), g.frogY, FrogChar, core.ColorBrightGreen)

	dst.DrawText(2, g.runtime.ScreenH-1, fmt.Sprintf(
		"Score: %d  Lives: %d  Level: %d  Time: %d",
		g.Score(), g.Lives(), g.Level(), g.timer/60))

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}
	if g.Over() {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("GAME OVER - Score: %d - Press R to restart", g.Score()))
	}
}
