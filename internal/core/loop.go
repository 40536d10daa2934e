package core

import "time"

// MaxStepsPerAdvance caps how many simulation steps a single Advance call
// may return, so a long stall never produces a burst of catch-up steps.
const MaxStepsPerAdvance = 5

// Loop implements a fixed-timestep accumulator. Real elapsed time is drained
// in constant increments so that the same input trace always produces the
// same state trajectory regardless of how frames are delivered.
type Loop struct {
	step    time.Duration
	acc     time.Duration
	anchor  time.Time
	running bool
	paused  bool
}

// NewLoop creates a loop that steps tickRate times per second.
func NewLoop(tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed step duration.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Running reports whether the loop has been started and not paused.
func (l *Loop) Running() bool {
	return l.running && !l.paused
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// Start anchors the loop clock. Starting an already running loop is a no-op.
func (l *Loop) Start(now time.Time) {
	if l.running {
		return
	}
	l.running = true
	l.paused = false
	l.acc = 0
	l.anchor = now
}

// Pause halts accumulation. Pausing while not running is a no-op.
func (l *Loop) Pause(now time.Time) {
	if !l.running || l.paused {
		return
	}
	l.paused = true
}

// Resume re-anchors the clock so the paused duration is not replayed as a
// backlog of catch-up steps. Resuming while not paused is a no-op.
func (l *Loop) Resume(now time.Time) {
	if !l.running || !l.paused {
		return
	}
	l.paused = false
	l.anchor = now
	l.acc = 0
}

// Advance drains elapsed time since the last call and returns the number of
// fixed steps owed, capped at MaxStepsPerAdvance. Returns 0 while paused or
// stopped.
func (l *Loop) Advance(now time.Time) int {
	if !l.running || l.paused {
		return 0
	}

	elapsed := now.Sub(l.anchor)
	if elapsed < 0 {
		elapsed = 0
	}
	l.anchor = now
	l.acc += elapsed

	steps := 0
	for l.acc >= l.step && steps < MaxStepsPerAdvance {
		l.acc -= l.step
		steps++
	}

	// Drop any backlog beyond the cap instead of replaying it.
	if l.acc >= l.step {
		l.acc = l.acc % l.step
	}

	return steps
}

// Stop halts the loop entirely.
func (l *Loop) Stop() {
	l.running = false
	l.paused = false
	l.acc = 0
}
