package tetris

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

// fillRow fills row y completely except for the given columns.
func fillRow(g *Game, y int, except ...int) {
	for x := 0; x < GridW; x++ {
		g.grid[y][x] = core.ColorWhite
	}
	for _, x := range except {
		g.grid[y][x] = core.ColorDefault
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(21)
	g2 := newTestGame(21)

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		in.Shift()
		switch i % 40 {
		case 0:
			in.Set(core.ActionLeft)
		case 10:
			in.Set(core.ActionUp)
		case 20:
			in.Set(core.ActionFire)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestClearSingleRow(t *testing.T) {
	g := newTestGame(1)
	g.grid[18][0] = core.ColorRed // marker above the full row
	fillRow(g, 19)

	cleared := g.clearLines()

	if cleared != 1 {
		t.Fatalf("cleared = %d, want 1", cleared)
	}
	if g.grid[19][0] != core.ColorRed {
		t.Error("row above should shift down into the cleared row")
	}
	if g.grid[18][0] != core.ColorDefault {
		t.Error("shifted row's old position should be empty")
	}
}

func TestClearRescanCatchesStackedRows(t *testing.T) {
	g := newTestGame(1)
	fillRow(g, 19)
	fillRow(g, 18)
	fillRow(g, 16) // gap at 17

	cleared := g.clearLines()

	if cleared != 3 {
		t.Errorf("cleared = %d, want 3", cleared)
	}
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if g.grid[y][x] != core.ColorDefault {
				t.Fatalf("cell (%d,%d) not empty after clearing all rows", x, y)
			}
		}
	}
}

func TestOPieceLockCompletesBottomRow(t *testing.T) {
	g := newTestGame(1)
	fillRow(g, 19, 4, 5)
	fillRow(g, 18, 4, 5)

	g.current = Piece{Kind: PieceO, X: 4, Y: 18}
	g.lockPiece()

	if g.Score() != lineScores[2]*1 {
		t.Errorf("score = %d, want %d for a double at level 1", g.Score(), lineScores[2])
	}
	if g.linesTotal != 2 {
		t.Errorf("linesTotal = %d, want 2", g.linesTotal)
	}
	for x := 0; x < GridW; x++ {
		if g.grid[19][x] != core.ColorDefault {
			t.Fatal("bottom row should be empty after the clear")
		}
	}
}

func TestSingleClearScore(t *testing.T) {
	g := newTestGame(1)
	fillRow(g, 19, 2, 3, 4, 5)
	g.current = Piece{Kind: PieceI, X: 2, Y: 18} // horizontal, fills x 2..5 at y 19

	g.lockPiece()

	if g.Score() != lineScores[1] {
		t.Errorf("score = %d, want %d for a single at level 1", g.Score(), lineScores[1])
	}
}

func TestTetrisClearScore(t *testing.T) {
	g := newTestGame(1)
	for y := 16; y <= 19; y++ {
		fillRow(g, y, 4)
	}
	g.current = Piece{Kind: PieceI, X: 2, Y: 16, Rot: 1} // vertical, fills x=4, y 16..19

	g.lockPiece()

	if g.Score() != lineScores[4] {
		t.Errorf("score = %d, want %d for a tetris at level 1", g.Score(), lineScores[4])
	}
	if g.linesTotal != 4 {
		t.Errorf("linesTotal = %d, want 4", g.linesTotal)
	}
}

func TestONeverRotates(t *testing.T) {
	g := newTestGame(1)
	g.current = Piece{Kind: PieceO, X: 4, Y: 5}

	if g.tryRotate() {
		t.Error("O piece rotated")
	}
	if g.current.Rot != 0 {
		t.Errorf("Rot = %d, want 0", g.current.Rot)
	}
}

func TestWallKickRescuesRotation(t *testing.T) {
	g := newTestGame(1)
	// Vertical I hugging the right wall: the naive horizontal rotation
	// pokes past x=9 and needs a -1 kick.
	g.current = Piece{Kind: PieceI, X: 7, Y: 5, Rot: 1}

	if !g.tryRotate() {
		t.Fatal("rotation should succeed via wall kick")
	}
	if g.current.X != 6 {
		t.Errorf("X = %d, want 6 after the -1 kick", g.current.X)
	}
	if g.current.Rot != 2 {
		t.Errorf("Rot = %d, want 2", g.current.Rot)
	}
}

func TestBlockedRotationIsSilentlyRejected(t *testing.T) {
	g := newTestGame(1)
	// Wall in the I piece's vertical column on both sides, beyond kick reach
	g.current = Piece{Kind: PieceI, X: 3, Y: 5, Rot: 1}
	for y := 4; y <= 9; y++ {
		fillRow(g, y, 5) // only the piece's own column x=5 stays free
	}

	if g.tryRotate() {
		t.Error("rotation should be rejected")
	}
	if g.current.Rot != 1 || g.current.X != 3 {
		t.Error("piece state should be unchanged after rejection")
	}
}

func TestHoldOncePerPieceLifetime(t *testing.T) {
	g := newTestGame(1)
	first := g.current.Kind

	g.holdPiece()
	if !g.hasHeld || g.held != first {
		t.Fatal("first hold should stash the current piece")
	}

	second := g.current.Kind
	g.holdPiece()
	if g.current.Kind != second {
		t.Error("second hold before locking should be a no-op")
	}

	g.hardDrop() // locking resets the hold flag
	if g.holdUsed {
		t.Error("holdUsed should reset on lock")
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	g := newTestGame(1)

	g.hardDrop()

	occupied := 0
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if g.grid[y][x] != core.ColorDefault {
				occupied++
			}
		}
	}
	if occupied != 4 {
		t.Errorf("occupied cells = %d, want 4 after hard drop", occupied)
	}
	if g.current.Y != 0 {
		t.Error("a fresh piece should spawn at the top")
	}
}

func TestLevelUpEveryTenLines(t *testing.T) {
	g := newTestGame(1)
	g.linesTotal = 9
	fillRow(g, 19, 4, 5)
	g.current = Piece{Kind: PieceO, X: 4, Y: 18}

	g.lockPiece()

	if g.linesTotal != 10 {
		t.Fatalf("linesTotal = %d, want 10", g.linesTotal)
	}
	if g.Level() != 2 {
		t.Errorf("level = %d, want 2 at 10 lines", g.Level())
	}
}

func TestGravitySpeedsUpWithLevel(t *testing.T) {
	g := newTestGame(1)
	slow := g.gravityInterval()
	g.NextLevel()
	fast := g.gravityInterval()

	if fast >= slow {
		t.Errorf("gravity interval did not shrink: %f -> %f", slow, fast)
	}
}
