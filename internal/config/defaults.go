package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is the fallback if the embed is unusable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:            1000,
			Height:           340,
			BaseSpeed:        10,
			StepMs:           1000.0 / 60.0,
			CloudSpeed:       0.5,
			CloudWrapOffset:  30,
			GroundStartWidth: 88,
			RolloutGrowth:    25,
		},
		Physics: PhysicsConfig{
			Gravity:         5000,
			JumpImpulse:     -1600,
			RolloutVelocity: 80,
		},
		Spawn: SpawnConfig{
			CactusWeight:    6,
			BirdWeight:      1,
			IntervalMs:      1500,
			MinGapFactor:    0.6,
			MaxGapFactor:    0.9,
			BirdLaneOffsets: []float64{20, 70},
			CactusSizes: []Size{
				{W: 34, H: 70},
				{W: 68, H: 70},
				{W: 102, H: 70},
				{W: 50, H: 100},
				{W: 100, H: 100},
				{W: 150, H: 100},
			},
			BirdSize: Size{W: 92, H: 77},
		},
		Score: ScoreConfig{
			IntervalMs:     100,
			MilestoneStep:  100,
			SpeedIncrement: 0.2,
		},
		Player: PlayerConfig{
			StartX:       0,
			SpawnHeight:  100,
			TallWidth:    44,
			TallHeight:   92,
			TallOffsetX:  20,
			TallOffsetY:  0,
			ShortHeight:  58,
			ShortOffsetX: 60,
			ShortOffsetY: 34,
		},
		Trigger: TriggerConfig{
			TopY: 10,
			Size: 32,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
