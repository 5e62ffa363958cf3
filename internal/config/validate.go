package config

import (
	"fmt"
	"math"
)

// ConfigError reports a configuration value that makes a session impossible.
// It is a programmer/config error and is returned before any session starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// MaxSpawnWeight bounds cactus_weight + bird_weight so the weighted draw
// stays within the range of the random source.
const MaxSpawnWeight = math.MaxInt32

// Validate checks the config and returns the first problem as a *ConfigError.
func (c RunnerConfig) Validate() error {
	positiveInts := []struct {
		field string
		value int
	}{
		{"spawn.cactus_weight", c.Spawn.CactusWeight},
		{"spawn.bird_weight", c.Spawn.BirdWeight},
		{"spawn.interval_ms", c.Spawn.IntervalMs},
		{"score.interval_ms", c.Score.IntervalMs},
		{"score.milestone_step", c.Score.MilestoneStep},
	}
	for _, p := range positiveInts {
		if p.value <= 0 {
			return &ConfigError{Field: p.field, Reason: fmt.Sprintf("must be > 0, got %d", p.value)}
		}
	}

	if c.Spawn.CactusWeight > MaxSpawnWeight-c.Spawn.BirdWeight {
		return &ConfigError{
			Field:  "spawn.bird_weight",
			Reason: fmt.Sprintf("cactus_weight + bird_weight must not exceed %d", MaxSpawnWeight),
		}
	}

	gaps := []struct {
		field string
		value float64
	}{
		{"spawn.min_gap_factor", c.Spawn.MinGapFactor},
		{"spawn.max_gap_factor", c.Spawn.MaxGapFactor},
	}
	for _, g := range gaps {
		if math.IsNaN(g.value) || math.IsInf(g.value, 0) {
			return &ConfigError{Field: g.field, Reason: fmt.Sprintf("must be a finite number, got %g", g.value)}
		}
	}

	if c.Spawn.MaxGapFactor <= c.Spawn.MinGapFactor {
		return &ConfigError{
			Field:  "spawn.max_gap_factor",
			Reason: fmt.Sprintf("must be greater than min_gap_factor (%g <= %g)", c.Spawn.MaxGapFactor, c.Spawn.MinGapFactor),
		}
	}
	if c.Spawn.MinGapFactor < 0 {
		return &ConfigError{Field: "spawn.min_gap_factor", Reason: "must not be negative"}
	}
	if len(c.Spawn.BirdLaneOffsets) == 0 {
		return &ConfigError{Field: "spawn.bird_lane_offsets", Reason: "at least one lane is required"}
	}
	if len(c.Spawn.CactusSizes) == 0 {
		return &ConfigError{Field: "spawn.cactus_sizes", Reason: "at least one size is required"}
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return &ConfigError{Field: "world", Reason: "width and height must be > 0"}
	}
	if c.World.RolloutGrowth <= 0 {
		return &ConfigError{Field: "world.rollout_growth", Reason: "must be > 0"}
	}
	if c.World.StepMs <= 0 {
		return &ConfigError{Field: "world.step_ms", Reason: "must be > 0"}
	}
	return nil
}
