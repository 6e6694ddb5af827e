package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        1000,
			Height:       600,
			GroundOffset: 120,
		},
		Timing: TimingConfig{
			TicksPerSecond: 60,
		},
		Player: PlayerConfig{
			X:                   100,
			Width:               40,
			Height:              60,
			MoveSpeed:           6,
			Gravity:             0.8,
			JumpImpulse:         -15,
			MaxJumps:            2,
			MaxHealth:           5,
			InvulnerableSeconds: 2, // 120 ticks at 60 ticks/s
		},
		Speed: SpeedConfig{
			Start:       5,
			Cap:         12,
			Drift:       0.001,
			StepAmount:  0.5,
			StepSeconds: 10, // 600 ticks at 60 ticks/s
			LevelDiv:    2,
			MaxLevel:    6,
			Progression: true,
		},
		Platforms: PlatformConfig{
			ScrollFactor:  0.4,
			RecycleGap:    100,
			RecycleJitter: 300,
			Band:          Band{MinRise: 40, MaxRise: 250},
			Initial: []PlatformSpec{
				{X: 300, Rise: 150, Width: 200, Height: 20},
				{X: 600, Rise: 200, Width: 150, Height: 20},
				{X: 900, Rise: 100, Width: 180, Height: 20},
			},
		},
		Obstacles: ObstacleConfig{
			Width:     30,
			Height:    30,
			SpikeRise: 40,
			FireRise:  30,
			Spawn:     SpawnConfig{Base: 120, PerLevel: 10, Min: 60, Jitter: 60},
		},
		Fruits: FruitConfig{
			Width:   20,
			Height:  20,
			Points:  10,
			BobStep: 0.1,
			Band:    Band{MinRise: 20, MaxRise: 200},
			Spawn:   SpawnConfig{Base: 150, PerLevel: 8, Min: 90, Jitter: 90},
		},
		Enemies: EnemyConfig{
			Width:  35,
			Height: 35,
			Speed:  2,
			Band:   Band{MinRise: 35, MaxRise: 380},
			Spawn:  SpawnConfig{Base: 200, PerLevel: 15, Min: 120, Jitter: 120},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
