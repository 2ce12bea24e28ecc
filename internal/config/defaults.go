package config

import (
	_ "embed"
)

//go:embed defaults/stealth.yaml
var defaultStealthYAML []byte

// DefaultStealthConfig returns the built-in configuration.
func DefaultStealthConfig() StealthConfig {
	return StealthConfig{
		World: WorldConfig{
			TileSize:          32,
			ScreenWidth:       800,
			ScreenHeight:      600,
			MaxLevels:         10,
			TickRate:          60,
			TransitionSeconds: 2,
		},
		Player: PlayerConfig{
			Size:             24,
			Speed:            2,
			FootstepInterval: 20,
		},
		Guard: GuardConfig{
			Size:              24,
			BaseSpeed:         0.6,
			VisionRange:       100,
			VisionAngle:       70,
			PauseTicks:        60,
			AlertTicks:        30,
			PursuitTicks:      180,
			PursuitMultiplier: 1.5,
		},
		Scroll: ScrollConfig{
			Size:         16,
			PickupRadius: 12,
		},
		Progression: ProgressionConfig{
			BaseScrolls:          3,
			MaxExtraScrolls:      2,
			BaseGuards:           1,
			MaxExtraGuards:       2,
			LevelsPerStep:        3,
			MaxMovingWalls:       5,
			GuardSpeedPerLevel:   0.03,
			MaxGuardSpeedFactor:  1.3,
			MovingWallMinSpeed:   0.3,
			MovingWallSpeedRange: 0.4,
		},
	}
}

// Validate fills zero or out-of-range fields from the defaults so a partial
// YAML file still yields a playable configuration.
func (c *StealthConfig) Validate() {
	d := DefaultStealthConfig()

	fillInt(&c.World.TileSize, d.World.TileSize)
	fillInt(&c.World.ScreenWidth, d.World.ScreenWidth)
	fillInt(&c.World.ScreenHeight, d.World.ScreenHeight)
	fillInt(&c.World.MaxLevels, d.World.MaxLevels)
	fillInt(&c.World.TickRate, d.World.TickRate)
	fillFloat(&c.World.TransitionSeconds, d.World.TransitionSeconds)

	fillInt(&c.Player.Size, d.Player.Size)
	fillFloat(&c.Player.Speed, d.Player.Speed)
	fillInt(&c.Player.FootstepInterval, d.Player.FootstepInterval)

	fillInt(&c.Guard.Size, d.Guard.Size)
	fillFloat(&c.Guard.BaseSpeed, d.Guard.BaseSpeed)
	fillFloat(&c.Guard.VisionRange, d.Guard.VisionRange)
	fillFloat(&c.Guard.VisionAngle, d.Guard.VisionAngle)
	fillInt(&c.Guard.PauseTicks, d.Guard.PauseTicks)
	fillInt(&c.Guard.AlertTicks, d.Guard.AlertTicks)
	fillInt(&c.Guard.PursuitTicks, d.Guard.PursuitTicks)
	fillFloat(&c.Guard.PursuitMultiplier, d.Guard.PursuitMultiplier)

	fillInt(&c.Scroll.Size, d.Scroll.Size)
	fillInt(&c.Scroll.PickupRadius, d.Scroll.PickupRadius)

	// Progression fields may legitimately be zero, except the ones that
	// would make every level empty or guards frozen.
	fillInt(&c.Progression.BaseScrolls, d.Progression.BaseScrolls)
	fillInt(&c.Progression.BaseGuards, d.Progression.BaseGuards)
	fillFloat(&c.Progression.MaxGuardSpeedFactor, d.Progression.MaxGuardSpeedFactor)
	fillFloat(&c.Progression.MovingWallMinSpeed, d.Progression.MovingWallMinSpeed)

	// Entities must fit inside a tile.
	c.Player.Size = min(c.Player.Size, c.World.TileSize)
	c.Guard.Size = min(c.Guard.Size, c.World.TileSize)
	c.Scroll.Size = min(c.Scroll.Size, c.World.TileSize)
	c.Guard.VisionAngle = min(c.Guard.VisionAngle, 360)
}

func fillInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func fillFloat(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
