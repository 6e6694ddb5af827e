package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display ticks per second driven by the platform (default 60)
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

// GameState is the summary the platform needs after each tick.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level
	Playing  bool // Whether a run is in progress
	GameOver bool // Whether the last run has ended
	Paused   bool // Whether the run is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStart EventKind = iota
	EventFruit
	EventHit
	EventLevelUp
	EventGameOver
	EventMenu
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventFruit:
		return "fruit"
	case EventHit:
		return "hit"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation. Value carries the kind-specific payload:
// the new score for fruit, remaining health for hits, the new level for level-ups
// and the final score for game over.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
