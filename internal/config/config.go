// Package config provides YAML-based configuration loading for the stealth
// game: world dimensions, entity tuning and per-level progression.
package config

// StealthConfig contains all configuration for the stealth game.
type StealthConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Guard       GuardConfig       `yaml:"guard"`
	Scroll      ScrollConfig      `yaml:"scroll"`
	Progression ProgressionConfig `yaml:"progression"`
}

// WorldConfig is the options set every level is generated from.
type WorldConfig struct {
	TileSize     int `yaml:"tile_size"`
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	MaxLevels    int `yaml:"max_levels"`
	TickRate     int `yaml:"tick_rate"`
	// TransitionSeconds is how long the level-complete banner stays up.
	TransitionSeconds float64 `yaml:"transition_seconds"`
}

// GridSize returns the level grid dimensions in cells.
func (w WorldConfig) GridSize() (int, int) {
	return w.ScreenWidth / w.TileSize, w.ScreenHeight / w.TileSize
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size             int     `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	FootstepInterval int     `yaml:"footstep_interval"` // Ticks between footstep cues while moving
}

// GuardConfig defines guard perception and movement.
type GuardConfig struct {
	Size              int     `yaml:"size"`
	BaseSpeed         float64 `yaml:"base_speed"`
	VisionRange       float64 `yaml:"vision_range"`
	VisionAngle       float64 `yaml:"vision_angle"` // Full cone width in degrees
	PauseTicks        int     `yaml:"pause_ticks"`
	AlertTicks        int     `yaml:"alert_ticks"`
	PursuitTicks      int     `yaml:"pursuit_ticks"`
	PursuitMultiplier float64 `yaml:"pursuit_multiplier"`
}

// ScrollConfig defines collectible parameters.
type ScrollConfig struct {
	Size         int `yaml:"size"`
	PickupRadius int `yaml:"pickup_radius"` // Center-to-center distance per axis, exclusive
}

// ProgressionConfig controls how levels get harder.
type ProgressionConfig struct {
	BaseScrolls          int     `yaml:"base_scrolls"`
	MaxExtraScrolls      int     `yaml:"max_extra_scrolls"`
	BaseGuards           int     `yaml:"base_guards"`
	MaxExtraGuards       int     `yaml:"max_extra_guards"`
	LevelsPerStep        int     `yaml:"levels_per_step"` // Levels between extra scroll/guard steps
	MaxMovingWalls       int     `yaml:"max_moving_walls"`
	GuardSpeedPerLevel   float64 `yaml:"guard_speed_per_level"`
	MaxGuardSpeedFactor  float64 `yaml:"max_guard_speed_factor"`
	MovingWallMinSpeed   float64 `yaml:"moving_wall_min_speed"`
	MovingWallSpeedRange float64 `yaml:"moving_wall_speed_range"`
}
