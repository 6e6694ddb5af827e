package temple

import (
	"math"
	"testing"

	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/core"
)

// quietConfig disables all spawning so tests control every entity.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	for _, sc := range []*config.SpawnConfig{&cfg.Obstacles.Spawn, &cfg.Fruits.Spawn, &cfg.Enemies.Spawn} {
		sc.Base = 1e9
		sc.Min = 1e9
	}
	return cfg
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestWorldStartState(t *testing.T) {
	w := NewWorld(config.DefaultRunnerConfig(), 42)

	if w.Score() != 0 || w.Over() || w.Ticks() != 0 {
		t.Errorf("fresh world: score %d over %v ticks %d", w.Score(), w.Over(), w.Ticks())
	}
	if w.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", w.Level())
	}

	p := w.Player()
	if p.X != 100 || p.Y != 420 || p.Health != 5 {
		t.Errorf("player at (%v, %v) health %d, expected (100, 420) health 5", p.X, p.Y, p.Health)
	}

	want := []Platform{
		{X: 300, Y: 330, W: 200, H: 20},
		{X: 600, Y: 280, W: 150, H: 20},
		{X: 900, Y: 380, W: 180, H: 20},
	}
	if len(w.platforms) != len(want) {
		t.Fatalf("got %d platforms, expected %d", len(w.platforms), len(want))
	}
	for i := range want {
		if w.platforms[i] != want[i] {
			t.Errorf("platform %d = %+v, expected %+v", i, w.platforms[i], want[i])
		}
	}
}

func TestWorldFruitCollection(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.fruits = append(w.fruits, Fruit{X: 110, Y: 430, W: 20, H: 20})

	events := w.Tick(core.InputFrame{})

	if w.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", w.Score())
	}
	if len(w.fruits) != 0 {
		t.Errorf("collected fruit should be removed, %d left", len(w.fruits))
	}
	if !hasEvent(events, core.EventFruit) {
		t.Error("expected a fruit event")
	}
}

func TestWorldFruitBobs(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.fruits = append(w.fruits, Fruit{X: 800, Y: 100, W: 20, H: 20})

	w.Tick(core.InputFrame{})
	w.Tick(core.InputFrame{})

	if math.Abs(w.fruits[0].Bob-0.2) > 1e-9 {
		t.Errorf("Bob = %v, expected 0.2 after two ticks", w.fruits[0].Bob)
	}
	if w.fruits[0].Y != 100 {
		t.Errorf("bobbing should not move the hitbox, Y = %v", w.fruits[0].Y)
	}
}

func TestWorldObstacleHit(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.obstacles = append(w.obstacles, Obstacle{X: 110, Y: 440, W: 30, H: 30, Kind: ObstacleSpike})

	events := w.Tick(core.InputFrame{})

	p := w.Player()
	if p.Health != 4 || !p.Invulnerable {
		t.Errorf("health %d invulnerable %v, expected 4 and true", p.Health, p.Invulnerable)
	}
	if !hasEvent(events, core.EventHit) {
		t.Error("expected a hit event")
	}
	if len(w.obstacles) != 1 {
		t.Error("obstacles are not consumed by a hit")
	}

	// Still overlapping next tick, but invulnerable.
	w.Tick(core.InputFrame{})
	if p.Health != 4 {
		t.Errorf("Health = %d, expected no second hit during cooldown", p.Health)
	}
}

func TestWorldEnemyHit(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.enemies = append(w.enemies, Enemy{X: 115, Y: 430, W: 35, H: 35, Speed: 2})

	w.Tick(core.InputFrame{})

	if w.Player().Health != 4 {
		t.Errorf("Health = %d, expected an enemy to deal one damage", w.Player().Health)
	}
	if got := w.enemies[0].X; math.Abs(got-(115-5.001-2)) > 1e-9 {
		t.Errorf("enemy X = %v, expected to move by speed plus its own speed", got)
	}
}

func TestWorldGameOverSameTick(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.player.Health = 1
	w.obstacles = append(w.obstacles, Obstacle{X: 110, Y: 440, W: 30, H: 30})
	w.fruits = append(w.fruits, Fruit{X: 110, Y: 430, W: 20, H: 20})

	events := w.Tick(core.InputFrame{})

	if !w.Over() {
		t.Fatal("run should end on the tick health reaches 0")
	}
	if !hasEvent(events, core.EventGameOver) {
		t.Error("expected a game over event")
	}
	if w.Player().Health != 0 {
		t.Errorf("Health = %d, expected 0", w.Player().Health)
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, fruit after death should not score", w.Score())
	}

	ticks := w.Ticks()
	x := w.obstacles[0].X
	for i := 0; i < 10; i++ {
		if ev := w.Tick(core.Input(core.ActionJump, core.ActionRight)); ev != nil {
			t.Fatalf("finished run emitted %v", ev)
		}
	}
	if w.Ticks() != ticks || w.obstacles[0].X != x {
		t.Error("finished run should not update")
	}
}

func TestWorldCullsOffscreen(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.obstacles = append(w.obstacles,
		Obstacle{X: -25, Y: 440, W: 30, H: 30},
		Obstacle{X: -20, Y: 440, W: 30, H: 30},
	)
	w.enemies = append(w.enemies, Enemy{X: -30, Y: 100, W: 35, H: 35, Speed: 2})
	w.fruits = append(w.fruits, Fruit{X: -16, Y: 100, W: 20, H: 20})

	w.Tick(core.InputFrame{})

	if len(w.obstacles) != 1 || w.obstacles[0].X > -24 {
		t.Errorf("expected only the second obstacle to survive, got %+v", w.obstacles)
	}
	if len(w.enemies) != 0 {
		t.Errorf("enemy at or past -width should be removed, got %+v", w.enemies)
	}
	if len(w.fruits) != 0 {
		t.Errorf("fruit at or past -width should be removed, got %+v", w.fruits)
	}
}

func TestWorldPlatformsScrollAndRecycle(t *testing.T) {
	w := NewWorld(quietConfig(), 5)

	w.Tick(core.InputFrame{})
	if got := w.platforms[0].X; math.Abs(got-(300-5.001*0.4)) > 1e-9 {
		t.Errorf("platform X = %v, expected to scroll at 0.4x speed", got)
	}

	w.platforms[0].X = -199
	w.Tick(core.InputFrame{})
	if w.platforms[0].X < 1100 {
		t.Errorf("platform past -width should be recycled, X = %v", w.platforms[0].X)
	}

	for i := 0; i < 5000; i++ {
		w.Tick(core.InputFrame{})
		if len(w.platforms) != 3 {
			t.Fatalf("platform count changed to %d", len(w.platforms))
		}
	}
}

func TestWorldSpeedScenario(t *testing.T) {
	w := NewWorld(quietConfig(), 9)

	var levelUps int
	for i := 0; i < 600; i++ {
		if hasEvent(w.Tick(core.InputFrame{}), core.EventLevelUp) {
			levelUps++
		}
	}

	if w.speed.Stepped() != 5.5 || w.Level() != 2 {
		t.Errorf("stepped %v level %d, expected 5.5 and 2", w.speed.Stepped(), w.Level())
	}
	if levelUps != 0 {
		t.Errorf("got %d level-up events, expected none", levelUps)
	}
	if w.Over() {
		t.Error("no entities means no damage")
	}
}

func TestWorldHealthStaysInRange(t *testing.T) {
	inputs := []core.InputFrame{
		{},
		core.Input(core.ActionJump),
		core.Input(core.ActionRight),
		core.Input(core.ActionLeft, core.ActionJump),
	}

	for seed := int64(0); seed < 5; seed++ {
		w := NewWorld(config.DefaultRunnerConfig(), seed)
		for tick := 0; tick < 20000 && !w.Over(); tick++ {
			w.Tick(inputs[(tick/37)%len(inputs)])

			p := w.Player()
			if p.Health < 0 || p.Health > p.MaxHealth {
				t.Fatalf("seed %d tick %d: Health = %d", seed, tick, p.Health)
			}
			if w.Over() != (p.Health == 0) {
				t.Fatalf("seed %d tick %d: over %v with health %d", seed, tick, w.Over(), p.Health)
			}
			if w.speed.Speed() > 12 {
				t.Fatalf("seed %d tick %d: speed %v over cap", seed, tick, w.speed.Speed())
			}
		}
	}
}

func TestWorldStartResets(t *testing.T) {
	w := NewWorld(config.DefaultRunnerConfig(), 3)
	for i := 0; i < 2000; i++ {
		w.Tick(core.InputFrame{})
	}

	w.Start()

	if w.Score() != 0 || w.Ticks() != 0 || w.Over() {
		t.Error("Start should reset score, ticks and game over")
	}
	if len(w.obstacles)+len(w.fruits)+len(w.enemies) != 0 {
		t.Error("Start should clear all entities")
	}
	if w.speed.Speed() != 5 {
		t.Errorf("speed = %v, expected 5", w.speed.Speed())
	}
	o, f, e := w.spawner.Timers()
	if o != 0 || f != 0 || e != 0 {
		t.Errorf("spawn timers = %d/%d/%d, expected zero", o, f, e)
	}
}
