// Package engine provides the shared lifecycle and bookkeeping base that
// every arcade game embeds: phase transitions, score, lives, level, and
// sound-event emission. Games own their entity state; the base owns the
// bookkeeping the shell displays and persists.
package engine

import "github.com/termcade/termcade/internal/core"

// Phase is the lifecycle state of a game instance.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Base holds the bookkeeping common to all games. Embed it by value and call
// Restart from Reset.
type Base struct {
	score  int
	lives  int
	level  int
	phase  Phase
	sounds []core.Sound
}

// Restart returns the base to a fresh running state with the given lives.
func (b *Base) Restart(lives int) {
	b.score = 0
	b.lives = lives
	b.level = 1
	b.phase = PhaseRunning
	b.sounds = b.sounds[:0]
}

// Score returns the current score.
func (b *Base) Score() int { return b.score }

// Lives returns the remaining lives.
func (b *Base) Lives() int { return b.lives }

// Level returns the current level, 1-based.
func (b *Base) Level() int { return b.level }

// Phase returns the current lifecycle phase.
func (b *Base) Phase() Phase { return b.phase }

// Running reports whether the simulation should advance this tick.
func (b *Base) Running() bool { return b.phase == PhaseRunning }

// Over reports whether the game has reached its terminal state.
func (b *Base) Over() bool { return b.phase == PhaseGameOver }

// AddScore adds points to the score. Negative values are ignored.
func (b *Base) AddScore(points int) {
	if points <= 0 {
		return
	}
	b.score += points
}

// LoseLife decrements lives. Returns true if play continues; when the last
// life is lost the game transitions to gameover and false is returned.
func (b *Base) LoseLife() bool {
	if b.phase != PhaseRunning {
		return false
	}
	b.lives--
	if b.lives <= 0 {
		b.lives = 0
		b.GameOver()
		return false
	}
	b.Play(core.SoundDeath)
	return true
}

// GainLife grants an extra life while the game is running.
func (b *Base) GainLife() {
	if b.phase != PhaseRunning {
		return
	}
	b.lives++
}

// NextLevel advances to the next level.
func (b *Base) NextLevel() {
	b.level++
	b.Play(core.SoundLevelUp)
}

// GameOver drives the running -> gameover transition. Calling it in any
// other phase is a no-op.
func (b *Base) GameOver() {
	if b.phase == PhaseGameOver {
		return
	}
	b.phase = PhaseGameOver
	b.Play(core.SoundGameOver)
}

// TogglePause flips between running and paused. In any other phase it is
// a no-op.
func (b *Base) TogglePause() {
	switch b.phase {
	case PhaseRunning:
		b.phase = PhasePaused
	case PhasePaused:
		b.phase = PhaseRunning
	}
}

// Pause transitions running -> paused; a no-op otherwise.
func (b *Base) Pause() {
	if b.phase == PhaseRunning {
		b.phase = PhasePaused
	}
}

// Resume transitions paused -> running; a no-op otherwise.
func (b *Base) Resume() {
	if b.phase == PhasePaused {
		b.phase = PhaseRunning
	}
}

// Play queues a fire-and-forget sound event for this tick.
func (b *Base) Play(s core.Sound) {
	b.sounds = append(b.sounds, s)
}

// TakeSounds drains and returns the sounds queued since the last call.
func (b *Base) TakeSounds() []core.Sound {
	if len(b.sounds) == 0 {
		return nil
	}
	out := make([]core.Sound, len(b.sounds))
	copy(out, b.sounds)
	b.sounds = b.sounds[:0]
	return out
}

// State assembles the platform-facing game state.
func (b *Base) State() core.GameState {
	return core.GameState{
		Score:    b.score,
		Lives:    b.lives,
		Level:    b.level,
		GameOver: b.phase == PhaseGameOver,
		Paused:   b.phase == PhasePaused,
	}
}

// Result packages State and drained sounds into a StepResult.
func (b *Base) Result() core.StepResult {
	return core.StepResult{
		State:  b.State(),
		Sounds: b.TakeSounds(),
	}
}
