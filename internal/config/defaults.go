package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/rogue.yaml
var defaultRogueYAML []byte

// DefaultArcadeConfig returns the default shell configuration.
func DefaultArcadeConfig() ArcadeConfig {
	return ArcadeConfig{
		TickRate:   60,
		DBPath:     "~/.termcade/scores.db",
		Difficulty: "",
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:     20,
			Height:    20,
			WrapWalls: false,
		},
		Speed: SnakeSpeed{
			MoveEveryTicks: 8,
			MinMoveTicks:   3,
			SpeedUpEvery:   5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.5,
			MaxBallSpeed: 1.5,
			SpeedGrowth:  0.04,
			PaddleSpeed:  1.0,
			SpinFactor:   0.3,
		},
		Paddles: PongPaddles{
			Height: 5,
			Width:  1,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 60,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    0.45,
			MinBallSpeed: 0.2,
			MaxBallSpeed: 1.0,
			PaddleSpeed:  0.9,
		},
		Paddle: BreakoutPaddle{
			Width:    8,
			MinWidth: 4,
			MaxWidth: 14,
		},
		Gameplay: BreakoutGameplay{
			Lives:            3,
			PowerUpChance:    20,
			MaxExtraBalls:    2,
			VictoryAtLevel:   6,
			PaddleGrowAmount: 3,
		},
		PowerUps: BreakoutPowerUps{
			SlowFactor: 0.7,
			FastFactor: 1.3,
			FallSpeed:  0.15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultRogueConfig returns the default dungeon crawler configuration.
func DefaultRogueConfig() RogueConfig {
	return RogueConfig{
		Map: RogueMap{
			Width:       48,
			Height:      20,
			MinRooms:    5,
			MaxRooms:    9,
			MinRoomSize: 4,
			MaxRoomSize: 8,
			RoomMargin:  2,
			Floors:      5,
			FOVRadius:   7,
		},
		Player: RoguePlayer{
			HP:      20,
			Attack:  4,
			Defense: 1,
		},
		Turns: RogueTurns{
			PlayerCooldown: 8,
			EnemyCooldown:  3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				ExtraEnemies: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game family.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "pong":
		return defaultPongYAML
	case "breakout":
		return defaultBreakoutYAML
	case "rogue":
		return defaultRogueYAML
	default:
		return nil
	}
}
