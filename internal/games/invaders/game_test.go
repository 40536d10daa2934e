package invaders

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
	g1 := newTestGame(11)
	g2 := newTestGame(11)

	in := core.NewInputFrame()
	for i := 0; i < 1000; i++ {
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestFormationReversesAtEdge(t *testing.T) {
	g := newTestGame(1)
	g.formDir = 1
	// Park the rightmost alive column one step from the edge
	g.formX = float64(g.runtime.ScreenW-2-(GridCols-1)*alienSpacingX) - 0.01

	startY := g.formY
	g.moveFormation()

	if g.formDir != -1 {
		t.Errorf("formDir = %f, want -1 after edge reverse", g.formDir)
	}
	if g.formY != startY+1 {
		t.Errorf("formY = %f, want %f (dropped a row)", g.formY, startY+1)
	}
}

func TestDeadColumnDoesNotTriggerReverse(t *testing.T) {
	g := newTestGame(1)
	// Kill the rightmost column entirely
	for r := 0; r < GridRows; r++ {
		g.alive[r][GridCols-1] = false
	}
	g.formDir = 1
	// Would reverse if the dead column counted
	g.formX = float64(g.runtime.ScreenW-2-(GridCols-1)*alienSpacingX) - 0.01

	g.moveFormation()

	if g.formDir != 1 {
		t.Error("dead column should not trigger a reverse")
	}
}

func TestSinglePlayerBullet(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.playerBullet == nil {
		t.Fatal("fire should spawn a bullet")
	}
	firstY := g.playerBullet.Y

	in.Shift()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.playerBullet == nil {
		t.Fatal("bullet disappeared unexpectedly")
	}
	if g.playerBullet.Y >= firstY {
		t.Error("second fire press replaced the bullet in flight")
	}
}

func TestBulletKillsAlienAndScoresByRow(t *testing.T) {
	g := newTestGame(1)

	x, y := g.alienPos(0, 0)
	b := &Bullet{X: float64(x), Y: float64(y), DY: -1}

	if !g.resolvePlayerBullet(b) {
		t.Fatal("bullet should hit the alien")
	}
	if g.alive[0][0] {
		t.Error("alien should be dead")
	}
	if g.Score() != rowPoints[0] {
		t.Errorf("score = %d, want %d for a top-row kill", g.Score(), rowPoints[0])
	}
}

func TestShieldBlockAbsorbsHitOnce(t *testing.T) {
	g := newTestGame(1)
	s := g.shields[0]
	total := len(g.shields)

	if !g.hitShield(s.X, s.Y) {
		t.Fatal("expected shield hit")
	}
	if len(g.shields) != total-1 {
		t.Errorf("shield count = %d, want %d", len(g.shields), total-1)
	}
	if g.hitShield(s.X, s.Y) {
		t.Error("destroyed block absorbed a second hit")
	}
}

func TestAliensReachingShieldsEndsGame(t *testing.T) {
	g := newTestGame(1)
	g.formY = float64(g.shieldRow)

	g.moveFormation()

	if !g.Over() {
		t.Error("aliens at the shield row should end the game")
	}
}

func TestWaveClearAdvancesLevel(t *testing.T) {
	g := newTestGame(1)
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			g.alive[r][c] = false
		}
	}

	speed := g.formSpeed
	in := core.NewInputFrame()
	g.Step(in)

	if g.Level() != 2 {
		t.Errorf("level = %d, want 2 after wave clear", g.Level())
	}
	if !g.alive[0][0] {
		t.Error("new wave should respawn aliens")
	}
	if g.formSpeed <= speed {
		t.Error("new wave should march faster")
	}
}

func TestBottomAliensPerColumn(t *testing.T) {
	g := newTestGame(1)
	g.alive[GridRows-1][3] = false

	shooters := g.bottomAliens()
	if len(shooters) != GridCols {
		t.Fatalf("shooters = %d, want %d", len(shooters), GridCols)
	}
	for _, s := range shooters {
		if s.X == 3 && s.Y != GridRows-2 {
			t.Errorf("column 3 shooter row = %d, want %d", s.Y, GridRows-2)
		}
	}
}
