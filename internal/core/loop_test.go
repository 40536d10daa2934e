package core

import (
	"testing"
	"time"
)

func TestLoopAccumulatesWholeSteps(t *testing.T) {
	l := NewLoop(60)
	start := time.Unix(0, 0)
	l.Start(start)

	step := l.Step()

	// Half a step owes nothing.
	if got := l.Advance(start.Add(step / 2)); got != 0 {
		t.Errorf("Advance(half step) = %d, expected 0", got)
	}

	// The second half completes the first step.
	if got := l.Advance(start.Add(step)); got != 1 {
		t.Errorf("Advance(full step) = %d, expected 1", got)
	}

	// Exactly three more steps.
	if got := l.Advance(start.Add(4 * step)); got != 3 {
		t.Errorf("Advance(+3 steps) = %d, expected 3", got)
	}
}

func TestLoopDeterministicAcrossDeliveryPatterns(t *testing.T) {
	// The same total elapsed time must produce the same total step count
	// regardless of how it is sliced into Advance calls.
	deliver := func(slices []time.Duration) int {
		l := NewLoop(60)
		now := time.Unix(0, 0)
		l.Start(now)

		total := 0
		for _, d := range slices {
			now = now.Add(d)
			total += l.Advance(now)
		}
		return total
	}

	step := time.Second / 60
	even := deliver([]time.Duration{step, step, step, step})
	lumpy := deliver([]time.Duration{step / 2, step / 2, 3 * step})
	fine := deliver([]time.Duration{step / 4, step / 4, step / 4, step / 4, 3 * step})

	if even != 4 || lumpy != 4 || fine != 4 {
		t.Errorf("step counts diverged: even=%d lumpy=%d fine=%d, expected 4 each", even, lumpy, fine)
	}
}

func TestLoopBacklogCap(t *testing.T) {
	l := NewLoop(60)
	start := time.Unix(0, 0)
	l.Start(start)

	// A long stall owes far more than the cap; the excess is dropped.
	if got := l.Advance(start.Add(time.Second)); got != MaxStepsPerAdvance {
		t.Errorf("Advance(1s stall) = %d, expected cap %d", got, MaxStepsPerAdvance)
	}

	// The dropped backlog must not leak into the next call.
	if got := l.Advance(start.Add(time.Second + l.Step()/2)); got != 0 {
		t.Errorf("Advance after capped call = %d, expected 0", got)
	}
}

func TestLoopResumeReAnchors(t *testing.T) {
	l := NewLoop(60)
	start := time.Unix(0, 0)
	l.Start(start)

	l.Pause(start.Add(time.Millisecond))
	if l.Running() {
		t.Error("loop should not report running while paused")
	}
	if got := l.Advance(start.Add(10 * time.Second)); got != 0 {
		t.Errorf("Advance while paused = %d, expected 0", got)
	}

	// A long pause must not be replayed as catch-up steps.
	resumeAt := start.Add(time.Minute)
	l.Resume(resumeAt)
	if got := l.Advance(resumeAt.Add(l.Step() / 2)); got != 0 {
		t.Errorf("Advance just after resume = %d, expected 0", got)
	}
	if got := l.Advance(resumeAt.Add(l.Step())); got != 1 {
		t.Errorf("Advance one step after resume = %d, expected 1", got)
	}
}

func TestLoopLifecycleNoOps(t *testing.T) {
	l := NewLoop(60)
	start := time.Unix(0, 0)

	// Pause and resume before Start are no-ops.
	l.Pause(start)
	l.Resume(start)
	if l.Running() {
		t.Error("loop should not run before Start")
	}

	l.Start(start)
	if !l.Running() {
		t.Error("loop should run after Start")
	}

	// Starting a running loop does not re-anchor.
	l.Advance(start.Add(l.Step() / 2))
	l.Start(start.Add(time.Hour))
	if got := l.Advance(start.Add(l.Step())); got != 1 {
		t.Errorf("Advance after redundant Start = %d, expected 1", got)
	}

	// Resume while running is a no-op.
	l.Resume(start.Add(time.Hour))
	if !l.Running() {
		t.Error("loop should still run after redundant Resume")
	}

	l.Stop()
	if l.Running() {
		t.Error("loop should not run after Stop")
	}
	if got := l.Advance(start.Add(2 * time.Hour)); got != 0 {
		t.Errorf("Advance after Stop = %d, expected 0", got)
	}
}

func TestLoopZeroTickRateDefaults(t *testing.T) {
	l := NewLoop(0)
	if l.Step() != time.Second/60 {
		t.Errorf("Step() = %v, expected %v", l.Step(), time.Second/60)
	}
}
