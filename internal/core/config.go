package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has been lost
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventPickup EventKind = iota + 1
	EventLevelComplete
	EventCaptured
)

func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventLevelComplete:
		return "level_complete"
	case EventCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// Event describes a state transition the platform may want to record.
type Event struct {
	Kind  EventKind
	Level int // 1-indexed level number
	Stars int // Stars earned (EventLevelComplete only)
	Ticks int // Ticks spent in the level so far
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
