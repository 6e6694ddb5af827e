// Package temple implements a temple-themed endless runner.
// The player runs, double-jumps across platforms, collects fruit and dodges
// spikes, fire and flying enemies while the scroll speed ramps up.
package temple

import (
	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/core"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game drives the menu -> playing -> game over cycle around a World.
type Game struct {
	cfg     config.RunnerConfig
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig

	phase  Phase
	paused bool
	world  *World
}

// New creates a game for the given tuning and preset label.
// The config is expected to have the preset already applied.
func New(cfg config.RunnerConfig, preset config.DifficultyPreset) *Game {
	return &Game{
		cfg:    cfg,
		preset: preset,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "temple"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Temple Run"
}

// Mode returns the difficulty preset this game was created with.
func (g *Game) Mode() string {
	return string(g.preset)
}

// Reset reseeds the world and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, runtime.Seed)
	g.phase = PhaseMenu
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(g.runtime)
	}

	var events []core.Event

	switch g.phase {
	case PhaseMenu:
		if startTriggered(in) {
			g.world.Start()
			g.phase = PhasePlaying
			g.paused = false
			events = append(events, core.Event{Kind: core.EventStart})
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		events = g.world.Tick(in)
		if g.world.Over() {
			g.phase = PhaseGameOver
		}

	case PhaseGameOver:
		if startTriggered(in) {
			g.phase = PhaseMenu
			events = append(events, core.Event{Kind: core.EventMenu, Value: g.world.Score()})
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// startTriggered covers both start (menu) and acknowledge (game over).
func startTriggered(in core.InputFrame) bool {
	return in.Has(core.ActionConfirm) || in.Has(core.ActionJump)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Playing:  g.phase == PhasePlaying,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
	if g.world != nil {
		st.Score = g.world.Score()
		st.Level = g.world.PeakLevel()
	}
	return st
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of ticks the current (or last) run lasted.
func (g *Game) Ticks() uint64 {
	if g.world == nil {
		return 0
	}
	return g.world.Ticks()
}
