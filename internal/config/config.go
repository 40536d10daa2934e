// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// ArcadeConfig contains shell-wide defaults applied when the matching CLI
// flag is not given on the command line.
type ArcadeConfig struct {
	TickRate   int    `yaml:"tick_rate"`
	DBPath     string `yaml:"db_path"`
	Difficulty string `yaml:"difficulty"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines board parameters for Snake.
type SnakeGrid struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	WrapWalls bool `yaml:"wrap_walls"`
}

// SnakeSpeed defines movement pacing for Snake.
type SnakeSpeed struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Ticks between moves at start
	MinMoveTicks   int `yaml:"min_move_ticks"`   // Floor for the move interval
	SpeedUpEvery   int `yaml:"speed_up_every"`   // Food items per interval decrement
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines ball and paddle motion parameters.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`     // Base ball speed, cells per tick
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // Speed scalar clamp ceiling
	SpeedGrowth  float64 `yaml:"speed_growth"`   // Added to speed per paddle bounce
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	SpinFactor   float64 `yaml:"spin_factor"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"`
}

// PongCPU defines the CPU opponent's skill envelope.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	PowerUps   BreakoutPowerUps `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines ball and paddle motion parameters.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	MinBallSpeed float64 `yaml:"min_ball_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
}

// BreakoutPaddle defines paddle geometry limits.
type BreakoutPaddle struct {
	Width    int `yaml:"width"`
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`
}

// BreakoutGameplay defines lives and powerup odds.
type BreakoutGameplay struct {
	Lives            int `yaml:"lives"`
	PowerUpChance    int `yaml:"powerup_chance"` // Percent per destroyed brick
	MaxExtraBalls    int `yaml:"max_extra_balls"`
	VictoryAtLevel   int `yaml:"victory_at_level"`
	PaddleGrowAmount int `yaml:"paddle_grow_amount"`
}

// BreakoutPowerUps defines powerup speed multipliers.
type BreakoutPowerUps struct {
	SlowFactor float64 `yaml:"slow_factor"` // Ball speed multiplier for "slow"
	FastFactor float64 `yaml:"fast_factor"` // Ball speed multiplier for "fast"
	FallSpeed  float64 `yaml:"fall_speed"`
}

// RogueConfig contains all configuration for the dungeon crawler.
type RogueConfig struct {
	Map        RogueMap         `yaml:"map"`
	Player     RoguePlayer      `yaml:"player"`
	Turns      RogueTurns       `yaml:"turns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RogueMap defines dungeon generation parameters.
type RogueMap struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MinRooms    int `yaml:"min_rooms"`
	MaxRooms    int `yaml:"max_rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`
	RoomMargin  int `yaml:"room_margin"` // Overlap rejection margin in tiles
	Floors      int `yaml:"floors"`      // Boss floor is the last one
	FOVRadius   int `yaml:"fov_radius"`
}

// RoguePlayer defines the player's starting stats.
type RoguePlayer struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
}

// RogueTurns defines the turn pacing in ticks.
type RogueTurns struct {
	PlayerCooldown int `yaml:"player_cooldown"` // Throttle between player half-turns
	EnemyCooldown  int `yaml:"enemy_cooldown"`  // Faster enemy half-turn resolution
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Extra spawns at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
