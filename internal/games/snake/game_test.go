package snake

import (
	"testing"

	"github.com/termcade/termcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 30,
	}
}

// step runs n ticks with empty input.
func step(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		in.Shift()
		g.Step(in)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	in1 := core.NewInputFrame()
	in2 := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		in1.Shift()
		in2.Shift()
		if i == 20 {
			in1.Set(core.ActionDown)
			in2.Set(core.ActionDown)
		}
		if i == 60 {
			in1.Set(core.ActionLeft)
			in2.Set(core.ActionLeft)
		}
		g1.Step(in1)
		g2.Step(in2)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Initial direction is right; left is the exact opposite.
	if (g.dir != core.Vec{X: 1, Y: 0}) {
		t.Fatalf("expected initial direction right, got %+v", g.dir)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if (g.nextDir == core.Vec{X: -1, Y: 0}) {
		t.Error("reversal into the snake's own body must be rejected")
	}

	in.Shift()
	in.Set(core.ActionDown)
	g.Step(in)

	if (g.nextDir != core.Vec{X: 0, Y: 1}) {
		t.Errorf("expected buffered direction down, got %+v", g.nextDir)
	}
}

func TestHeadMovesOneCellPerMoveTick(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	prev := g.snake[0]
	for i := 0; i < 200 && !g.Over(); i++ {
		step(g, 1)
		head := g.snake[0]
		dist := core.Manhattan(prev, head)
		if dist > 1 {
			t.Fatalf("head jumped %d cells in one tick: %+v -> %+v", dist, prev, head)
		}
		prev = head
	}
}

func TestGrowthNeverShrinks(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	prevLen := len(g.snake)
	for i := 0; i < 400 && !g.Over(); i++ {
		step(g, 1)
		if len(g.snake) < prevLen {
			t.Fatalf("snake shrank from %d to %d", prevLen, len(g.snake))
		}
		prevLen = len(g.snake)
	}
}

func TestUpTurnScenario(t *testing.T) {
	// From (10,10) heading right, an up input turns 90 degrees; after two
	// move ticks the head sits at (10,8).
	g := New()
	g.Reset(testConfig())
	g.SetStart(core.Vec{X: 10, Y: 10}, core.Vec{X: 1, Y: 0})

	// Park the food away from the path so growth doesn't interfere.
	g.food = core.Vec{X: 0, Y: 0}

	in := core.NewInputFrame()
	in.Set(core.ActionUp)

	ticksPerMove := g.moveInterval
	for i := 0; i < ticksPerMove*2; i++ {
		g.Step(in)
		in.Shift()
		in.Set(core.ActionUp)
	}

	head := g.snake[0]
	if (head != core.Vec{X: 10, Y: 8}) {
		t.Errorf("expected head at (10,8) after two up moves, got %+v", head)
	}
	if (g.dir != core.Vec{X: 0, Y: -1}) {
		t.Errorf("expected direction up, got %+v", g.dir)
	}
}

func TestFoodSpawnsOnEmptyCell(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := 0; i < 100; i++ {
		g.spawnFood()
		if !g.hasFood {
			t.Fatal("board is not full, food must be placed")
		}
		if g.isSnakeAt(g.food) {
			t.Errorf("food spawned on snake at %+v", g.food)
		}
		if g.food.X < 0 || g.food.X >= g.gridW || g.food.Y < 0 || g.food.Y >= g.gridH {
			t.Errorf("food out of bounds at %+v", g.food)
		}
	}
}

func TestFullBoardLeavesFoodUnplaced(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Occupy every cell.
	g.snake = g.snake[:0]
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			g.snake = append(g.snake, core.Vec{X: x, Y: y})
		}
	}

	g.spawnFood()
	if g.hasFood {
		t.Error("food must not be placed on a full board")
	}
}

func TestWallCollisionFatalWithoutWrap(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.cfg.Grid.WrapWalls = false
	g.SetStart(core.Vec{X: g.gridW - 1, Y: 5}, core.Vec{X: 1, Y: 0})
	g.food = core.Vec{X: 0, Y: 0}

	g.move()

	if !g.Over() {
		t.Error("moving off a non-wrapping board must end the game")
	}
}

func TestWallWrapsWhenEnabled(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.cfg.Grid.WrapWalls = true
	g.SetStart(core.Vec{X: g.gridW - 1, Y: 5}, core.Vec{X: 1, Y: 0})
	g.food = core.Vec{X: 3, Y: 0}

	g.move()

	if g.Over() {
		t.Fatal("wrap mode must not kill at the edge")
	}
	if (g.snake[0] != core.Vec{X: 0, Y: 5}) {
		t.Errorf("expected wrapped head (0,5), got %+v", g.snake[0])
	}
}

func TestSelfCollisionFatal(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Build a snake that is about to run into its own body.
	g.snake = []core.Vec{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.dir = core.Vec{X: 1, Y: 0}
	g.nextDir = g.dir
	g.food = core.Vec{X: 0, Y: 0}

	g.move() // Head moves to (6,5), an occupied body cell

	if !g.Over() {
		t.Error("self collision must end the game")
	}
}

func TestSpeedIncreasesEveryFifthFood(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	start := g.moveInterval
	for i := 0; i < g.cfg.Speed.SpeedUpEvery; i++ {
		// Place food directly ahead and move onto it.
		g.food = g.snake[0].Add(g.dir)
		g.hasFood = true
		g.move()
	}

	if g.moveInterval != start-1 {
		t.Errorf("expected interval %d after %d food, got %d",
			start-1, g.cfg.Speed.SpeedUpEvery, g.moveInterval)
	}
}

func TestIntervalFloor(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.moveInterval = g.cfg.Speed.MinMoveTicks

	for i := 0; i < g.cfg.Speed.SpeedUpEvery*3; i++ {
		g.food = g.snake[0].Add(g.dir)
		g.hasFood = true
		g.move()
		if g.Over() {
			break
		}
	}

	if g.moveInterval < g.cfg.Speed.MinMoveTicks {
		t.Errorf("interval %d dropped below floor %d", g.moveInterval, g.cfg.Speed.MinMoveTicks)
	}
}
