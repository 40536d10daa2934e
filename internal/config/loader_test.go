package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := writeConfig(t, "snake.yaml", `
grid:
  width: 30
  height: 15
  wrap_walls: true
speed:
  move_every_ticks: 5
  min_move_ticks: 2
  speed_up_every: 3
`)

	cfg, err := LoadSnake(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Grid.Width)
	assert.Equal(t, 15, cfg.Grid.Height)
	assert.True(t, cfg.Grid.WrapWalls)
	assert.Equal(t, 5, cfg.Speed.MoveEveryTicks)
}

func TestLoadBadCustomPathFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "an explicit path that cannot be read is an error")

	// The returned config is still usable.
	def := DefaultSnakeConfig()
	assert.Equal(t, def.Grid.Width, cfg.Grid.Width)
	assert.Equal(t, def.Speed.MoveEveryTicks, cfg.Speed.MoveEveryTicks)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "rogue.yaml", "map: [this is not\n  a mapping")

	_, err := LoadRogue(path)
	assert.Error(t, err)
}

func TestLoadRogueCustomPath(t *testing.T) {
	path := writeConfig(t, "rogue.yaml", `
map:
  width: 60
  height: 30
  min_rooms: 6
  max_rooms: 10
  min_room_size: 4
  max_room_size: 9
  room_margin: 1
  floors: 3
  fov_radius: 5
player:
  hp: 12
  attack: 3
  defense: 0
turns:
  player_cooldown: 4
  enemy_cooldown: 2
`)

	cfg, err := LoadRogue(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Map.Width)
	assert.Equal(t, 3, cfg.Map.Floors)
	assert.Equal(t, 12, cfg.Player.HP)
	assert.Equal(t, 4, cfg.Turns.PlayerCooldown)
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	// The embedded YAML must agree with the hand-written defaults on the
	// fields games depend on.
	var snake SnakeConfig
	require.NoError(t, load("", "does-not-exist-anywhere.yaml", defaultSnakeYAML, &snake))
	assert.Equal(t, DefaultSnakeConfig().Grid.Width, snake.Grid.Width)

	var rogue RogueConfig
	require.NoError(t, load("", "does-not-exist-anywhere.yaml", defaultRogueYAML, &rogue))
	assert.Equal(t, DefaultRogueConfig().Map.Floors, rogue.Map.Floors)
	assert.Positive(t, rogue.Map.FOVRadius)

	var pong PongConfig
	require.NoError(t, load("", "does-not-exist-anywhere.yaml", defaultPongYAML, &pong))
	assert.Positive(t, pong.Physics.BallSpeed)
	assert.Positive(t, pong.Gameplay.WinScore)

	var breakout BreakoutConfig
	require.NoError(t, load("", "does-not-exist-anywhere.yaml", defaultBreakoutYAML, &breakout))
	assert.Positive(t, breakout.Gameplay.Lives)
	assert.Positive(t, breakout.Gameplay.VictoryAtLevel)

	var arcade ArcadeConfig
	require.NoError(t, load("", "does-not-exist-anywhere.yaml", defaultArcadeYAML, &arcade))
	assert.Equal(t, DefaultArcadeConfig().TickRate, arcade.TickRate)
	assert.Equal(t, DefaultArcadeConfig().DBPath, arcade.DBPath)
}

func TestLoadArcadeCustomPath(t *testing.T) {
	path := writeConfig(t, "arcade.yaml", `
tick_rate: 30
db_path: /tmp/arcade-test.db
difficulty: hard
`)

	cfg, err := LoadArcade(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "/tmp/arcade-test.db", cfg.DBPath)
	assert.Equal(t, "hard", cfg.Difficulty)
}

func TestPresets(t *testing.T) {
	t.Run("fixed disables progression", func(t *testing.T) {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, DifficultyFixed)
		assert.False(t, cfg.Difficulty.Enabled)
	})

	t.Run("easy and hard adjust pacing", func(t *testing.T) {
		easy := DefaultSnakeConfig()
		ApplySnakePreset(&easy, DifficultyEasy)
		hard := DefaultSnakeConfig()
		ApplySnakePreset(&hard, DifficultyHard)

		assert.Greater(t, easy.Speed.MoveEveryTicks, hard.Speed.MoveEveryTicks,
			"easy should move slower than hard")
		assert.Equal(t, 0.0, easy.Difficulty.InitialLevel)
		assert.Equal(t, 0.7, hard.Difficulty.InitialLevel)
	})

	t.Run("pong presets shape the CPU", func(t *testing.T) {
		easy := DefaultPongConfig()
		ApplyPongPreset(&easy, DifficultyEasy)
		hard := DefaultPongConfig()
		ApplyPongPreset(&hard, DifficultyHard)

		assert.Less(t, easy.CPU.MaxSkill, hard.CPU.MaxSkill)
	})

	t.Run("breakout presets trade lives for speed", func(t *testing.T) {
		easy := DefaultBreakoutConfig()
		ApplyBreakoutPreset(&easy, DifficultyEasy)
		hard := DefaultBreakoutConfig()
		ApplyBreakoutPreset(&hard, DifficultyHard)

		assert.Greater(t, easy.Gameplay.Lives, hard.Gameplay.Lives)
		assert.Less(t, easy.Physics.BallSpeed, hard.Physics.BallSpeed)
	})

	t.Run("rogue presets scale player HP", func(t *testing.T) {
		easy := DefaultRogueConfig()
		ApplyRoguePreset(&easy, DifficultyEasy)
		hard := DefaultRogueConfig()
		ApplyRoguePreset(&hard, DifficultyHard)

		assert.Greater(t, easy.Player.HP, hard.Player.HP)
	})
}

func TestDifficultyManagerLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	assert.Equal(t, 0.0, dm.Level(0, 0))
	assert.InDelta(t, 0.5, dm.Level(50, 0), 0.001)
	assert.Equal(t, 1.0, dm.Level(100, 0))
	assert.Equal(t, 1.0, dm.Level(5000, 0), "level saturates at max")
}

func TestDifficultyManagerInitialLevelInterpolates(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	dm.SetInitialLevel(0.5)

	assert.InDelta(t, 0.5, dm.Level(0, 0), 0.001)
	assert.InDelta(t, 0.75, dm.Level(50, 0), 0.001)
	assert.InDelta(t, 1.0, dm.Level(100, 0), 0.001)
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	assert.Equal(t, 0.3, dm.Level(1000, 0), "disabled manager holds the initial level")
	assert.False(t, dm.IsEnabled())
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, ExtraEnemies: 4},
	})

	assert.InDelta(t, 0.5, dm.Level(0, 300), 0.001)

	// Speed multiplies up from the base, extra enemies scale linearly.
	assert.InDelta(t, 1.25, dm.Speed(1.0, 0, 300), 0.001)
	assert.Equal(t, 2, dm.ExtraEnemies(0, 300))
	assert.Equal(t, 4, dm.ExtraEnemies(0, 600))
}
