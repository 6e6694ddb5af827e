package temple

import (
	"math/rand"

	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/core"
)

// World owns every piece of simulation state for one run.
type World struct {
	cfg     config.RunnerConfig
	rng     *rand.Rand
	groundY float64

	player    *Player
	platforms []Platform
	obstacles []Obstacle
	fruits    []Fruit
	enemies   []Enemy

	speed   *SpeedController
	spawner *Spawner

	score     int
	tick      uint64
	over      bool
	peakLevel int
}

// NewWorld creates a world seeded for deterministic replay and starts a run.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	w := &World{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		groundY: cfg.World.GroundY(),
	}
	w.speed = NewSpeedController(cfg.Speed, cfg.Timing)
	w.spawner = NewSpawner(&w.cfg, w.rng)
	w.Start()
	return w
}

// Start resets score, speed, player, platforms, collections and timers.
// The RNG keeps its sequence so consecutive runs differ.
func (w *World) Start() {
	w.player = NewPlayer(w.cfg.Player, w.cfg.Timing.Ticks(w.cfg.Player.InvulnerableSeconds), w.groundY)

	w.platforms = w.platforms[:0]
	for _, spec := range w.cfg.Platforms.Initial {
		w.platforms = append(w.platforms, Platform{
			X: spec.X,
			Y: w.groundY - spec.Rise,
			W: spec.Width,
			H: spec.Height,
		})
	}

	w.obstacles = w.obstacles[:0]
	w.fruits = w.fruits[:0]
	w.enemies = w.enemies[:0]

	w.speed.Reset()
	w.spawner.Reset()

	w.score = 0
	w.tick = 0
	w.over = false
	w.peakLevel = w.speed.Level()
}

// Tick advances the run by one frame and returns what happened.
// A finished run ignores further ticks.
func (w *World) Tick(in core.InputFrame) []core.Event {
	if w.over {
		return nil
	}

	var events []core.Event
	w.tick++

	if w.speed.Advance() {
		level := w.speed.Level()
		if level > w.peakLevel {
			w.peakLevel = level
		}
		events = append(events, w.event(core.EventLevelUp, level))
	}

	if in.Has(core.ActionJump) {
		w.player.Jump()
	}
	w.player.Update(in.Direction(), w.platforms, w.cfg.World.Width, w.groundY)

	w.updatePlatforms()

	spawns := w.spawner.Tick(w.speed.Level())
	if spawns.Obstacle != nil {
		w.obstacles = append(w.obstacles, *spawns.Obstacle)
	}
	if spawns.Fruit != nil {
		w.fruits = append(w.fruits, *spawns.Fruit)
	}
	if spawns.Enemy != nil {
		w.enemies = append(w.enemies, *spawns.Enemy)
	}

	events = w.updateObstacles(events)
	events = w.updateFruits(events)
	events = w.updateEnemies(events)

	return events
}

// updatePlatforms scrolls platforms at a fraction of the speed and recycles
// the ones that left the screen.
func (w *World) updatePlatforms() {
	dx := w.speed.Speed() * w.cfg.Platforms.ScrollFactor
	for i := range w.platforms {
		p := &w.platforms[i]
		p.X -= dx
		if p.X < -p.W {
			w.spawner.RecyclePlatform(p)
		}
	}
}

// The update passes below decide liveness and consequences for each entity,
// then compact survivors in place.

func (w *World) updateObstacles(events []core.Event) []core.Event {
	speed := w.speed.Speed()
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		alive := o.Update(speed)
		if w.player.Rect().Intersects(o.Rect()) {
			events = w.hit(events)
		}
		if alive {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept
	return events
}

func (w *World) updateFruits(events []core.Event) []core.Event {
	speed := w.speed.Speed()
	kept := w.fruits[:0]
	for _, f := range w.fruits {
		alive := f.Update(speed, w.cfg.Fruits.BobStep)
		if !w.over && !f.Collected && w.player.Rect().Intersects(f.Rect()) {
			f.Collected = true
			w.score += w.cfg.Fruits.Points
			events = append(events, w.event(core.EventFruit, w.score))
		}
		if alive && !f.Collected {
			kept = append(kept, f)
		}
	}
	w.fruits = kept
	return events
}

func (w *World) updateEnemies(events []core.Event) []core.Event {
	speed := w.speed.Speed()
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		alive := e.Update(speed)
		if w.player.Rect().Intersects(e.Rect()) {
			events = w.hit(events)
		}
		if alive {
			kept = append(kept, e)
		}
	}
	w.enemies = kept
	return events
}

// hit applies a damage attempt and ends the run when health runs out.
func (w *World) hit(events []core.Event) []core.Event {
	if w.over || !w.player.TakeDamage() {
		return events
	}
	events = append(events, w.event(core.EventHit, w.player.Health))
	if w.player.Dead() {
		w.over = true
		events = append(events, w.event(core.EventGameOver, w.score))
	}
	return events
}

func (w *World) event(kind core.EventKind, value int) core.Event {
	return core.Event{Kind: kind, Tick: w.tick, Value: value}
}

// Over reports whether the player has died.
func (w *World) Over() bool {
	return w.over
}

// Score returns the points collected this run.
func (w *World) Score() int {
	return w.score
}

// Level returns the current difficulty level.
func (w *World) Level() int {
	return w.speed.Level()
}

// PeakLevel returns the highest level reached this run.
func (w *World) PeakLevel() int {
	return w.peakLevel
}

// Ticks returns the number of ticks simulated this run.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Player returns the player.
func (w *World) Player() *Player {
	return w.player
}
