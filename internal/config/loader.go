package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termcade", "configs", filename)
}

// load resolves a config using the standard search order:
// customPath -> ~/.termcade/configs/<name> -> ./configs/<name> -> embedded default.
// A bad custom path is an error; every other failure falls through silently.
func load(customPath, name string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// LoadArcade loads the shell-wide configuration.
func LoadArcade(customPath string) (ArcadeConfig, error) {
	var cfg ArcadeConfig
	if err := load(customPath, "arcade.yaml", defaultArcadeYAML, &cfg); err != nil {
		return DefaultArcadeConfig(), err
	}
	return cfg, nil
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := load(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	var cfg PongConfig
	if err := load(customPath, "pong.yaml", defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), err
	}
	return cfg, nil
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	var cfg BreakoutConfig
	if err := load(customPath, "breakout.yaml", defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), err
	}
	return cfg, nil
}

// LoadRogue loads dungeon crawler configuration.
func LoadRogue(customPath string) (RogueConfig, error) {
	var cfg RogueConfig
	if err := load(customPath, "rogue.yaml", defaultRogueYAML, &cfg); err != nil {
		return DefaultRogueConfig(), err
	}
	return cfg, nil
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveEveryTicks = 10
	case DifficultyHard:
		cfg.Speed.MoveEveryTicks = 6
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.CPU.MaxSkill = 0.7
	case DifficultyHard:
		cfg.CPU.MinSkill = 0.75
		cfg.CPU.MaxSkill = 0.95
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 0.35
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 0.6
	}
}

// ApplyRoguePreset modifies the config based on a difficulty preset.
func ApplyRoguePreset(cfg *RogueConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.HP = 28
	case DifficultyHard:
		cfg.Player.HP = 14
		cfg.Difficulty.Scaling.ExtraEnemies = 4
	}
}
