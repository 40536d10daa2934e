package pacman

import (
	"testing"

	"github.com/termcade/termcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  60,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(13)
	g2 := newTestGame(13)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 1500; i++ {
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMazeParsing(t *testing.T) {
	m := ParseMaze(defaultLayout)

	if m.W != 19 || m.H != 15 {
		t.Errorf("maze size = %dx%d, want 19x15", m.W, m.H)
	}
	if m.DotsLeft == 0 {
		t.Fatal("maze should contain dots")
	}
	if m.TileAt(core.Vec{X: 0, Y: 0}) != TileWall {
		t.Error("corner should be a wall")
	}
	if m.TileAt(core.Vec{X: 0, Y: 8}) != TileTunnel {
		t.Error("row 8 left edge should be a tunnel")
	}
	if m.TileAt(m.GhostHome) != TileHouse {
		t.Error("ghost home should be a house tile")
	}
	if !m.Walkable(m.PlayerHome) {
		t.Error("player home should be walkable")
	}
}

func TestTunnelWraps(t *testing.T) {
	m := ParseMaze(defaultLayout)

	left := m.WrapCell(core.Vec{X: -1, Y: 8})
	if left.X != m.W-1 {
		t.Errorf("wrapped X = %d, want %d", left.X, m.W-1)
	}
	right := m.WrapCell(core.Vec{X: m.W, Y: 8})
	if right.X != 0 {
		t.Errorf("wrapped X = %d, want 0", right.X)
	}
}

func TestEatingDotScoresOnce(t *testing.T) {
	m := ParseMaze(defaultLayout)
	cell := core.Vec{X: 1, Y: 3}
	if !m.DotAt(cell) {
		t.Fatal("expected a dot at (1,3)")
	}

	before := m.DotsLeft
	points, pellet := m.EatAt(cell)
	if points != dotPoints || pellet {
		t.Errorf("EatAt = (%d,%v), want (%d,false)", points, pellet, dotPoints)
	}
	if m.DotsLeft != before-1 {
		t.Error("DotsLeft should decrement")
	}

	points, _ = m.EatAt(cell)
	if points != 0 {
		t.Error("eaten dot scored twice")
	}
}

func TestSingleGlobalMode(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		g.Step(in)
		switch g.mode {
		case ModeScatter, ModeChase, ModeFrightened:
		default:
			t.Fatalf("invalid mode %d at tick %d", g.mode, i)
		}
	}
}

func TestScatterChaseAlternation(t *testing.T) {
	g := newTestGame(1)

	if g.mode != ModeScatter {
		t.Fatalf("initial mode = %d, want scatter", g.mode)
	}

	g.modeTimer = 1
	g.updateMode()
	if g.mode != ModeChase {
		t.Errorf("mode = %d, want chase after the first scatter expires", g.mode)
	}
}

func TestFrightenedPreemptsAndReverses(t *testing.T) {
	g := newTestGame(1)
	for i := range g.ghosts {
		g.ghosts[i].Dir = core.Vec{X: 1, Y: 0}
	}

	g.enterFrightened()

	if g.mode != ModeFrightened {
		t.Fatalf("mode = %d, want frightened", g.mode)
	}
	for i := range g.ghosts {
		if !g.ghosts[i].Frightened {
			t.Errorf("ghost %d not frightened", i)
		}
		if g.ghosts[i].Dir.X != -1 {
			t.Errorf("ghost %d not reversed", i)
		}
	}
}

func TestFrightenedExpiryResumesChaseFresh(t *testing.T) {
	g := newTestGame(1)
	g.enterFrightened()
	g.frightLeft = 1

	g.updateMode()

	if g.mode != ModeChase {
		t.Errorf("mode = %d, want chase after frightened expiry", g.mode)
	}
	if g.modeTimer != modeTable[1].ticks {
		t.Errorf("modeTimer = %d, want a fresh %d", g.modeTimer, modeTable[1].ticks)
	}
	for i := range g.ghosts {
		if g.ghosts[i].Frightened {
			t.Errorf("ghost %d still frightened", i)
		}
	}
}

func TestEatenGhostNotReversedOrFrightened(t *testing.T) {
	g := newTestGame(1)
	g.ghosts[Pinky].Eaten = true
	g.ghosts[Pinky].Dir = core.Vec{X: 1, Y: 0}

	g.enterFrightened()

	if g.ghosts[Pinky].Frightened {
		t.Error("eaten ghost should not be frightened")
	}
	if g.ghosts[Pinky].Dir.X != 1 {
		t.Error("eaten ghost should not reverse")
	}
}

func TestBlinkyTargetsPacman(t *testing.T) {
	g := newTestGame(1)
	g.mode = ModeChase

	target := g.ghostTarget(&g.ghosts[Blinky])
	if target != g.pacCell() {
		t.Errorf("blinky target = %v, want %v", target, g.pacCell())
	}
}

func TestPinkyTargetsFourAhead(t *testing.T) {
	g := newTestGame(1)
	g.mode = ModeChase
	g.pacDir = core.Vec{X: 1, Y: 0}

	target := g.ghostTarget(&g.ghosts[Pinky])
	want := g.pacCell().Add(core.Vec{X: 4, Y: 0})
	if target != want {
		t.Errorf("pinky target = %v, want %v", target, want)
	}
}

func TestInkyReflectsThroughBlinky(t *testing.T) {
	g := newTestGame(1)
	g.mode = ModeChase
	g.pacDir = core.Vec{X: 1, Y: 0}
	g.ghosts[Blinky].Cell = core.Vec{X: 5, Y: 5}

	ahead := g.pacCell().Add(core.Vec{X: 2, Y: 0})
	want := core.Vec{X: 2*ahead.X - 5, Y: 2*ahead.Y - 5}
	if target := g.ghostTarget(&g.ghosts[Inky]); target != want {
		t.Errorf("inky target = %v, want %v", target, want)
	}
}

func TestClydeSwitchesByDistance(t *testing.T) {
	g := newTestGame(1)
	g.mode = ModeChase
	clyde := &g.ghosts[Clyde]

	clyde.Cell = g.pacCell().Add(core.Vec{X: 10, Y: 3}) // far: chases
	if target := g.ghostTarget(clyde); target != g.pacCell() {
		t.Errorf("far clyde target = %v, want pac cell", target)
	}

	clyde.Cell = g.pacCell().Add(core.Vec{X: 2, Y: 1}) // near: corner
	if target := g.ghostTarget(clyde); target != clyde.corner {
		t.Errorf("near clyde target = %v, want corner %v", target, clyde.corner)
	}
}

func TestDecisionNeverReverses(t *testing.T) {
	g := newTestGame(1)
	gh := &g.ghosts[Blinky]
	gh.Cell = core.Vec{X: 9, Y: 3} // open corridor
	gh.Dir = core.Vec{X: 1, Y: 0}

	for i := 0; i < 50; i++ {
		d := g.decideDirection(gh)
		if d.IsOpposite(gh.Dir) {
			t.Fatal("ghost reversed outside a dead end")
		}
	}
}

func TestEatenGhostRevivesAtHome(t *testing.T) {
	g := newTestGame(1)
	gh := &g.ghosts[Blinky]
	gh.Eaten = true
	gh.Frightened = true
	gh.Cell = core.Vec{X: g.maze.GhostHome.X, Y: g.maze.GhostHome.Y - 1}
	gh.Dir = core.Vec{X: 0, Y: 1}
	gh.Progress = 0.99

	g.updateGhosts()

	if gh.Eaten || gh.Frightened {
		t.Error("ghost should revive on home arrival")
	}
}

func TestGhostEatChain(t *testing.T) {
	g := newTestGame(1)
	g.enterFrightened()

	px, py := g.pacPos()
	want := 0
	for i := 0; i < 4; i++ {
		g.ghosts[i].Cell = core.Vec{X: int(px), Y: int(py)}
		g.ghosts[i].Progress = 0
		g.resolveCollisions()
		want += ghostChain[i]
	}

	if g.Score() != want {
		t.Errorf("score = %d, want %d for a full chain", g.Score(), want)
	}
}

func TestNormalGhostContactCostsLife(t *testing.T) {
	g := newTestGame(1)
	lives := g.Lives()

	g.ghosts[Blinky].Cell = g.pacCell()
	g.ghosts[Blinky].Progress = 0
	g.resolveCollisions()

	if g.Lives() != lives-1 {
		t.Errorf("lives = %d, want %d after ghost contact", g.Lives(), lives-1)
	}
}

func TestEatenOnlySetWhileFrightened(t *testing.T) {
	g := newTestGame(1)
	g.ghosts[Blinky].Cell = g.pacCell()
	g.ghosts[Blinky].Progress = 0

	g.resolveCollisions() // normal contact: death, not eat

	if g.ghosts[Blinky].Eaten {
		t.Error("ghost marked eaten outside frightened mode")
	}
}
