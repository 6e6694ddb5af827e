// Package config provides YAML/TOML-based runner configuration loading,
// difficulty presets and tick/time conversion.
package config

import (
	"errors"
	"fmt"
	"math"
)

// RunnerConfig contains all tuning for the runner simulation.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world" toml:"world"`
	Timing    TimingConfig   `yaml:"timing" toml:"timing"`
	Player    PlayerConfig   `yaml:"player" toml:"player"`
	Speed     SpeedConfig    `yaml:"speed" toml:"speed"`
	Platforms PlatformConfig `yaml:"platforms" toml:"platforms"`
	Obstacles ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Fruits    FruitConfig    `yaml:"fruits" toml:"fruits"`
	Enemies   EnemyConfig    `yaml:"enemies" toml:"enemies"`
}

// WorldConfig defines the simulated play field in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	GroundOffset float64 `yaml:"ground_offset" toml:"ground_offset"` // Ground line distance from the bottom edge
}

// GroundY returns the y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// TimingConfig fixes the simulation rate used to turn seconds into ticks.
// It is independent of the rate at which the platform delivers ticks.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second" toml:"ticks_per_second"`
}

// Ticks converts a duration in seconds into a whole number of simulation ticks.
func (t TimingConfig) Ticks(seconds float64) int {
	return int(math.Round(seconds * float64(t.TicksPerSecond)))
}

// PlayerConfig defines the player's body and physics.
type PlayerConfig struct {
	X                   float64 `yaml:"x" toml:"x"`
	Width               float64 `yaml:"width" toml:"width"`
	Height              float64 `yaml:"height" toml:"height"`
	MoveSpeed           float64 `yaml:"move_speed" toml:"move_speed"`
	Gravity             float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse         float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MaxJumps            int     `yaml:"max_jumps" toml:"max_jumps"`
	MaxHealth           int     `yaml:"max_health" toml:"max_health"`
	InvulnerableSeconds float64 `yaml:"invulnerable_seconds" toml:"invulnerable_seconds"`
}

// SpeedConfig defines the scroll speed ramp.
type SpeedConfig struct {
	Start       float64 `yaml:"start" toml:"start"`
	Cap         float64 `yaml:"cap" toml:"cap"`
	Drift       float64 `yaml:"drift" toml:"drift"`               // Added every tick
	StepAmount  float64 `yaml:"step_amount" toml:"step_amount"`   // Added every step interval
	StepSeconds float64 `yaml:"step_seconds" toml:"step_seconds"` // Step interval
	LevelDiv    float64 `yaml:"level_divisor" toml:"level_divisor"`
	MaxLevel    int     `yaml:"max_level" toml:"max_level"`
	Progression bool    `yaml:"progression" toml:"progression"` // false freezes speed at Start
}

// Band is a vertical spawn range expressed as heights above the ground line.
// A spawned entity's top edge lies in [ground-MaxRise, ground-MinRise).
type Band struct {
	MinRise float64 `yaml:"min_rise" toml:"min_rise"`
	MaxRise float64 `yaml:"max_rise" toml:"max_rise"`
}

// SpawnConfig defines a category spawn threshold:
// max(Min, Base - level*PerLevel) + rand*Jitter ticks.
type SpawnConfig struct {
	Base     float64 `yaml:"base" toml:"base"`
	PerLevel float64 `yaml:"per_level" toml:"per_level"`
	Min      float64 `yaml:"min" toml:"min"`
	Jitter   float64 `yaml:"jitter" toml:"jitter"`
}

// Threshold returns the jitter-free threshold for the given level.
func (s SpawnConfig) Threshold(level int) float64 {
	return math.Max(s.Min, s.Base-float64(level)*s.PerLevel)
}

// PlatformSpec places one platform of the initial pool.
type PlatformSpec struct {
	X      float64 `yaml:"x" toml:"x"`
	Rise   float64 `yaml:"rise" toml:"rise"` // Top edge height above ground
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlatformConfig defines the recycled platform pool.
type PlatformConfig struct {
	ScrollFactor  float64        `yaml:"scroll_factor" toml:"scroll_factor"`
	RecycleGap    float64        `yaml:"recycle_gap" toml:"recycle_gap"`       // Minimum distance past the right edge
	RecycleJitter float64        `yaml:"recycle_jitter" toml:"recycle_jitter"` // Random extra distance
	Band          Band           `yaml:"band" toml:"band"`
	Initial       []PlatformSpec `yaml:"initial" toml:"initial"`
}

// ObstacleConfig defines ground hazards.
type ObstacleConfig struct {
	Width     float64     `yaml:"width" toml:"width"`
	Height    float64     `yaml:"height" toml:"height"`
	SpikeRise float64     `yaml:"spike_rise" toml:"spike_rise"`
	FireRise  float64     `yaml:"fire_rise" toml:"fire_rise"`
	Spawn     SpawnConfig `yaml:"spawn" toml:"spawn"`
}

// FruitConfig defines collectible fruit.
type FruitConfig struct {
	Width   float64     `yaml:"width" toml:"width"`
	Height  float64     `yaml:"height" toml:"height"`
	Points  int         `yaml:"points" toml:"points"`
	BobStep float64     `yaml:"bob_step" toml:"bob_step"`
	Band    Band        `yaml:"band" toml:"band"`
	Spawn   SpawnConfig `yaml:"spawn" toml:"spawn"`
}

// EnemyConfig defines flying enemies.
type EnemyConfig struct {
	Width  float64     `yaml:"width" toml:"width"`
	Height float64     `yaml:"height" toml:"height"`
	Speed  float64     `yaml:"speed" toml:"speed"` // Added to the scroll speed
	Band   Band        `yaml:"band" toml:"band"`
	Spawn  SpawnConfig `yaml:"spawn" toml:"spawn"`
}

// Validate reports the first setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return errors.New("config: world dimensions must be positive")
	case c.World.GroundOffset < 0 || c.World.GroundOffset >= c.World.Height:
		return fmt.Errorf("config: ground_offset %.1f outside world height", c.World.GroundOffset)
	case c.Timing.TicksPerSecond <= 0:
		return errors.New("config: ticks_per_second must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("config: player size must be positive")
	case c.Player.MaxHealth <= 0:
		return errors.New("config: max_health must be positive")
	case c.Player.MaxJumps < 1:
		return errors.New("config: max_jumps must be at least 1")
	case c.Speed.Start <= 0 || c.Speed.Cap < c.Speed.Start:
		return fmt.Errorf("config: speed start %.2f / cap %.2f invalid", c.Speed.Start, c.Speed.Cap)
	case c.Speed.LevelDiv <= 0:
		return errors.New("config: level_divisor must be positive")
	case c.Speed.Progression && c.Timing.Ticks(c.Speed.StepSeconds) <= 0:
		return errors.New("config: step_seconds must be at least one tick")
	}

	for name, b := range map[string]Band{
		"platforms": c.Platforms.Band,
		"fruits":    c.Fruits.Band,
		"enemies":   c.Enemies.Band,
	} {
		if b.MaxRise < b.MinRise {
			return fmt.Errorf("config: %s band max_rise below min_rise", name)
		}
	}
	return nil
}
