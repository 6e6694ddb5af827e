package temple

import (
	"math/rand"

	"github.com/vovakirdan/temple-run/internal/config"
)

// Spawns holds whatever the spawner created this tick.
type Spawns struct {
	Obstacle *Obstacle
	Fruit    *Fruit
	Enemy    *Enemy
}

// Spawner runs the three independent category timers.
type Spawner struct {
	cfg     *config.RunnerConfig
	rng     *rand.Rand
	groundY float64

	obstacleTimer int
	fruitTimer    int
	enemyTimer    int
}

// NewSpawner creates a spawner sharing the world's RNG.
func NewSpawner(cfg *config.RunnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:     cfg,
		rng:     rng,
		groundY: cfg.World.GroundY(),
	}
}

// Reset zeroes all category timers.
func (s *Spawner) Reset() {
	s.obstacleTimer = 0
	s.fruitTimer = 0
	s.enemyTimer = 0
}

// Timers returns the obstacle, fruit and enemy timers.
func (s *Spawner) Timers() (obstacle, fruit, enemy int) {
	return s.obstacleTimer, s.fruitTimer, s.enemyTimer
}

// Tick advances every timer once and spawns each category whose timer
// exceeded its jittered threshold for the given level.
func (s *Spawner) Tick(level int) Spawns {
	var out Spawns

	s.obstacleTimer++
	if s.due(s.obstacleTimer, s.cfg.Obstacles.Spawn, level) {
		o := s.SpawnObstacle()
		out.Obstacle = &o
		s.obstacleTimer = 0
	}

	s.fruitTimer++
	if s.due(s.fruitTimer, s.cfg.Fruits.Spawn, level) {
		f := s.SpawnFruit()
		out.Fruit = &f
		s.fruitTimer = 0
	}

	s.enemyTimer++
	if s.due(s.enemyTimer, s.cfg.Enemies.Spawn, level) {
		e := s.SpawnEnemy()
		out.Enemy = &e
		s.enemyTimer = 0
	}

	return out
}

// due draws fresh jitter on every check.
func (s *Spawner) due(timer int, sc config.SpawnConfig, level int) bool {
	return float64(timer) > sc.Threshold(level)+s.rng.Float64()*sc.Jitter
}

// SpawnObstacle creates a spike or fire hazard at the right edge.
func (s *Spawner) SpawnObstacle() Obstacle {
	oc := s.cfg.Obstacles
	kind, rise := ObstacleSpike, oc.SpikeRise
	if s.rng.Float64() >= 0.5 {
		kind, rise = ObstacleFire, oc.FireRise
	}
	return Obstacle{
		X:    s.cfg.World.Width,
		Y:    s.groundY - rise,
		W:    oc.Width,
		H:    oc.Height,
		Kind: kind,
	}
}

// SpawnFruit creates a fruit at the right edge within the fruit band.
func (s *Spawner) SpawnFruit() Fruit {
	fc := s.cfg.Fruits
	return Fruit{
		X: s.cfg.World.Width,
		Y: s.bandY(fc.Band),
		W: fc.Width,
		H: fc.Height,
	}
}

// SpawnEnemy creates an enemy at the right edge within the enemy band.
func (s *Spawner) SpawnEnemy() Enemy {
	ec := s.cfg.Enemies
	return Enemy{
		X:     s.cfg.World.Width,
		Y:     s.bandY(ec.Band),
		W:     ec.Width,
		H:     ec.Height,
		Speed: ec.Speed,
	}
}

// RecyclePlatform teleports a platform that scrolled off the left edge to a
// new position past the right edge.
func (s *Spawner) RecyclePlatform(p *Platform) {
	pc := s.cfg.Platforms
	p.X = s.cfg.World.Width + pc.RecycleGap + s.rng.Float64()*pc.RecycleJitter
	p.Y = s.bandY(pc.Band)
}

// bandY picks a top-edge y uniformly in [ground-MaxRise, ground-MinRise).
func (s *Spawner) bandY(b config.Band) float64 {
	return s.groundY - b.MaxRise + s.rng.Float64()*(b.MaxRise-b.MinRise)
}
