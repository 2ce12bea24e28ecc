package stealth

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateLevelComplete GameStateType = "level_complete"
	StateGameOver      GameStateType = "game_over"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// GuardSnapshot is one guard's observable state.
type GuardSnapshot struct {
	X, Y   float64
	Facing float64
	Speed  float64
	State  GuardState
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int
	State       GameStateType
	TotalStars  int
	Stars       int
	ScrollsLeft int
	LevelTicks  int
	PlayerX     float64
	PlayerY     float64
	Hidden      bool
	Guards      []GuardSnapshot
	WallCount   int
	Walls       []float64 // Moving wall X, Y pairs
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.phase == PhaseGameOver:
		state = StateGameOver
	case g.phase == PhaseLevelComplete:
		state = StateLevelComplete
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:        g.tick,
		Level:       g.levelNum,
		State:       state,
		TotalStars:  g.totalStars,
		Stars:       g.stars,
		ScrollsLeft: len(g.level.Scrolls),
		LevelTicks:  g.levelTicks,
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		Hidden:      g.player.Hidden,
		WallCount:   g.level.WallCount(),
	}
	for _, gd := range g.level.Guards {
		s.Guards = append(s.Guards, GuardSnapshot{X: gd.Pos.X, Y: gd.Pos.Y, Facing: gd.Facing, Speed: gd.Speed(), State: gd.State})
	}
	for _, m := range g.level.Moving {
		s.Walls = append(s.Walls, m.Pos.X, m.Pos.Y)
	}
	return s
}
