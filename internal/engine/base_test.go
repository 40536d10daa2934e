package engine

import (
	"testing"

	"github.com/termcade/termcade/internal/core"
)

func TestRestartResetsBookkeeping(t *testing.T) {
	var b Base
	b.Restart(3)
	b.AddScore(100)
	b.NextLevel()
	b.GameOver()

	b.Restart(3)

	if b.Score() != 0 || b.Lives() != 3 || b.Level() != 1 {
		t.Errorf("after Restart: score=%d lives=%d level=%d, expected 0/3/1",
			b.Score(), b.Lives(), b.Level())
	}
	if b.Phase() != PhaseRunning {
		t.Errorf("after Restart phase = %v, expected running", b.Phase())
	}
	if got := b.TakeSounds(); got != nil {
		t.Errorf("Restart should drop queued sounds, got %v", got)
	}
}

func TestAddScoreIgnoresNonPositive(t *testing.T) {
	var b Base
	b.Restart(1)

	b.AddScore(10)
	b.AddScore(0)
	b.AddScore(-5)

	if b.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", b.Score())
	}
}

func TestLoseLifeContinuesUntilLast(t *testing.T) {
	var b Base
	b.Restart(3)

	if !b.LoseLife() {
		t.Error("LoseLife with 3 lives should continue play")
	}
	if b.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", b.Lives())
	}
	if !b.LoseLife() {
		t.Error("LoseLife with 2 lives should continue play")
	}

	// Last life: transitions to gameover.
	if b.LoseLife() {
		t.Error("LoseLife on the last life should end play")
	}
	if !b.Over() {
		t.Error("game should be over after the last life")
	}
	if b.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", b.Lives())
	}

	// Further calls are no-ops once over.
	if b.LoseLife() {
		t.Error("LoseLife after gameover should report no play")
	}
	if b.Lives() != 0 {
		t.Errorf("Lives() after extra LoseLife = %d, expected 0", b.Lives())
	}
}

func TestGainLifeOnlyWhileRunning(t *testing.T) {
	var b Base
	b.GainLife()
	if b.Lives() != 0 {
		t.Error("GainLife before Restart should be a no-op")
	}

	b.Restart(2)
	b.GainLife()
	if b.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", b.Lives())
	}

	b.Pause()
	b.GainLife()
	if b.Lives() != 3 {
		t.Error("GainLife while paused should be a no-op")
	}
}

func TestPauseResumeNoOps(t *testing.T) {
	var b Base

	// Idle: neither pause nor resume changes phase.
	b.Pause()
	if b.Phase() != PhaseIdle {
		t.Error("Pause while idle should be a no-op")
	}
	b.Resume()
	if b.Phase() != PhaseIdle {
		t.Error("Resume while idle should be a no-op")
	}

	b.Restart(1)
	b.Resume()
	if b.Phase() != PhaseRunning {
		t.Error("Resume while running should be a no-op")
	}

	b.Pause()
	if b.Phase() != PhasePaused {
		t.Error("Pause while running should pause")
	}
	b.Pause()
	if b.Phase() != PhasePaused {
		t.Error("Pause while paused should be a no-op")
	}
	b.Resume()
	if b.Phase() != PhaseRunning {
		t.Error("Resume while paused should run")
	}

	// Gameover is terminal for pause and resume.
	b.GameOver()
	b.Pause()
	b.Resume()
	if b.Phase() != PhaseGameOver {
		t.Error("pause/resume after gameover should be no-ops")
	}
}

func TestTogglePause(t *testing.T) {
	var b Base
	b.TogglePause()
	if b.Phase() != PhaseIdle {
		t.Error("TogglePause while idle should be a no-op")
	}

	b.Restart(1)
	b.TogglePause()
	if b.Phase() != PhasePaused {
		t.Error("TogglePause while running should pause")
	}
	b.TogglePause()
	if b.Phase() != PhaseRunning {
		t.Error("TogglePause while paused should resume")
	}
}

func TestGameOverIdempotent(t *testing.T) {
	var b Base
	b.Restart(1)

	b.GameOver()
	b.TakeSounds()
	b.GameOver()

	if got := b.TakeSounds(); got != nil {
		t.Errorf("second GameOver should not queue another sound, got %v", got)
	}
}

func TestSoundsDrainOnce(t *testing.T) {
	var b Base
	b.Restart(1)

	b.Play(core.SoundScore)
	b.Play(core.SoundHit)

	got := b.TakeSounds()
	if len(got) != 2 || got[0] != core.SoundScore || got[1] != core.SoundHit {
		t.Errorf("TakeSounds() = %v, expected [score hit] in order", got)
	}

	if again := b.TakeSounds(); again != nil {
		t.Errorf("second TakeSounds() = %v, expected nil", again)
	}
}

func TestStateReflectsPhase(t *testing.T) {
	var b Base
	b.Restart(2)
	b.AddScore(50)
	b.NextLevel()

	st := b.State()
	if st.Score != 50 || st.Lives != 2 || st.Level != 2 {
		t.Errorf("State() = %+v, expected score=50 lives=2 level=2", st)
	}
	if st.GameOver || st.Paused {
		t.Error("running state should report neither gameover nor paused")
	}

	b.Pause()
	if !b.State().Paused {
		t.Error("State() should report paused")
	}

	b.Resume()
	b.GameOver()
	if !b.State().GameOver {
		t.Error("State() should report gameover")
	}
}

func TestResultDrainsSounds(t *testing.T) {
	var b Base
	b.Restart(1)
	b.Play(core.SoundPowerUp)

	res := b.Result()
	if len(res.Sounds) != 1 || res.Sounds[0] != core.SoundPowerUp {
		t.Errorf("Result().Sounds = %v, expected [powerup]", res.Sounds)
	}
	if res.State.Score != 0 || res.State.GameOver {
		t.Errorf("Result().State = %+v, expected fresh running state", res.State)
	}

	if again := b.Result(); again.Sounds != nil {
		t.Errorf("second Result() should carry no sounds, got %v", again.Sounds)
	}
}
