package core

// Sound identifies a fire-and-forget audio event emitted by a game.
// The platform decides how (or whether) to play it; simulation code never
// waits on playback and never observes a failure.
type Sound string

const (
	SoundScore     Sound = "score"
	SoundHit       Sound = "hit"
	SoundExplosion Sound = "explosion"
	SoundPowerUp   Sound = "powerup"
	SoundDeath     Sound = "death"
	SoundGameOver  Sound = "gameover"
	SoundLevelUp   Sound = "levelup"
)
