package config

// LevelParams are the derived per-level entity counts and speeds.
type LevelParams struct {
	Level            int
	Scrolls          int
	Guards           int
	MovingWalls      int
	GuardSpeedFactor float64
}

// Params computes the progression for a 1-indexed level number.
func (p ProgressionConfig) Params(level int) LevelParams {
	step := 0
	if p.LevelsPerStep > 0 {
		step = level / p.LevelsPerStep
	}
	return LevelParams{
		Level:            level,
		Scrolls:          p.BaseScrolls + min(p.MaxExtraScrolls, step),
		Guards:           p.BaseGuards + min(p.MaxExtraGuards, step),
		MovingWalls:      max(0, min(level, p.MaxMovingWalls)),
		GuardSpeedFactor: min(p.MaxGuardSpeedFactor, 1+float64(level)*p.GuardSpeedPerLevel),
	}
}

// Table returns the params of levels 1..n.
func (p ProgressionConfig) Table(n int) []LevelParams {
	out := make([]LevelParams, 0, max(0, n))
	for level := 1; level <= n; level++ {
		out = append(out, p.Params(level))
	}
	return out
}
