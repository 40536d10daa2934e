package pong

import (
	"testing"

	"github.com/termcade/termcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(99)
	g2 := newTestGame(99)

	in := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		g1.Step(in)
		g2.Step(in)
	}

	if g1.ballX != g2.ballX || g1.ballY != g2.ballY {
		t.Errorf("ball diverged: (%f,%f) vs (%f,%f)", g1.ballX, g1.ballY, g2.ballX, g2.ballY)
	}
	if g1.score1 != g2.score1 || g1.score2 != g2.score2 {
		t.Errorf("scores diverged: %d-%d vs %d-%d", g1.score1, g1.score2, g2.score1, g2.score2)
	}
}

func TestServeDelayHoldsBall(t *testing.T) {
	g := newTestGame(1)

	startX := g.ballX
	startY := g.ballY

	in := core.NewInputFrame()
	for i := 0; i < g.cfg.Gameplay.ServeDelay-1; i++ {
		g.Step(in)
	}

	if g.ballX != startX || g.ballY != startY {
		t.Errorf("ball moved during serve delay: (%f,%f) -> (%f,%f)",
			startX, startY, g.ballX, g.ballY)
	}
	if !g.serving {
		t.Error("serve should still be pending")
	}
}

func TestBounceGrowsSpeedWithinClamp(t *testing.T) {
	g := newTestGame(1)
	g.serving = false

	base := g.cfg.Physics.BallSpeed
	max := g.cfg.Physics.MaxBallSpeed

	before := g.speed
	g.bounceOffPaddle(g.paddle1Y, 1)
	if g.speed <= before {
		t.Errorf("speed did not grow after bounce: %f -> %f", before, g.speed)
	}

	for i := 0; i < 1000; i++ {
		g.bounceOffPaddle(g.paddle1Y, 1)
	}
	if g.speed > max {
		t.Errorf("speed %f exceeds max %f", g.speed, max)
	}
	if g.speed < base {
		t.Errorf("speed %f below base %f", g.speed, base)
	}
}

func TestDirectionStaysUnit(t *testing.T) {
	g := newTestGame(7)

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		g.Step(in)
		mag := g.dirX*g.dirX + g.dirY*g.dirY
		if mag < 0.99 || mag > 1.01 {
			t.Fatalf("direction not unit length at tick %d: |d|^2=%f", i, mag)
		}
	}
}

func TestPlayerMissGivesCPUPoint(t *testing.T) {
	g := newTestGame(1)
	g.serving = false
	g.ballX = 0.2
	g.ballY = 1 // far from any paddle
	g.paddle1Y = 15
	g.setDirection(-1, 0)

	g.updateBall()

	if g.score2 != 1 {
		t.Errorf("expected CPU point, got score %d-%d", g.score1, g.score2)
	}
	if !g.serving {
		t.Error("expected a new serve after point")
	}
}

func TestWinEndsMatch(t *testing.T) {
	g := newTestGame(1)
	g.score1 = g.cfg.Gameplay.WinScore - 1

	g.score1++
	g.afterPoint(1)

	if !g.Over() {
		t.Error("match should be over at win score")
	}
	if g.winner != 1 {
		t.Errorf("winner = %d, want 1", g.winner)
	}
}

func TestPauseFreezesBall(t *testing.T) {
	g := newTestGame(1)
	g.serving = false

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	x, y := g.ballX, g.ballY
	in.Shift()
	for i := 0; i < 50; i++ {
		g.Step(in)
	}

	if g.ballX != x || g.ballY != y {
		t.Error("ball moved while paused")
	}
}

func TestWallBounceReflectsVertical(t *testing.T) {
	g := newTestGame(1)
	g.serving = false
	g.ballX = 40
	g.ballY = 1.2
	g.setDirection(0.5, -1)
	dyBefore := g.dirY

	g.updateBall()

	if g.dirY <= 0 || g.dirY != -dyBefore {
		t.Errorf("dirY = %f after top wall, want %f", g.dirY, -dyBefore)
	}
}
