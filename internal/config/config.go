// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the runner.
package config

// RunnerConfig contains all tunables of a runner session.
// A session copies it on construction and never mutates it afterwards.
type RunnerConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Score   ScoreConfig   `yaml:"score"`
	Player  PlayerConfig  `yaml:"player"`
	Trigger TriggerConfig `yaml:"trigger"`
}

// WorldConfig defines the playfield and scrolling parameters.
type WorldConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BaseSpeed        float64 `yaml:"base_speed"`         // Pixels per normalized step at multiplier 1.0
	StepMs           float64 `yaml:"step_ms"`            // Delta that counts as one normalized step
	CloudSpeed       float64 `yaml:"cloud_speed"`        // Pixels per normalized step, independent of multiplier
	CloudWrapOffset  float64 `yaml:"cloud_wrap_offset"`  // Clouds re-enter at Width + offset
	GroundStartWidth float64 `yaml:"ground_start_width"` // Ground width while in Intro
	RolloutGrowth    float64 `yaml:"rollout_growth"`     // Ground width added per Rollout tick
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`          // px/s²
	JumpImpulse     float64 `yaml:"jump_impulse"`     // px/s, negative is up
	RolloutVelocity float64 `yaml:"rollout_velocity"` // px/s forward during Rollout
}

// Size is a width/height pair in pixels.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// SpawnConfig defines obstacle spawning.
type SpawnConfig struct {
	CactusWeight    int       `yaml:"cactus_weight"`
	BirdWeight      int       `yaml:"bird_weight"`
	IntervalMs      int       `yaml:"interval_ms"`
	MinGapFactor    float64   `yaml:"min_gap_factor"`
	MaxGapFactor    float64   `yaml:"max_gap_factor"`
	BirdLaneOffsets []float64 `yaml:"bird_lane_offsets"` // Lanes at Height - offset
	CactusSizes     []Size    `yaml:"cactus_sizes"`      // Indexed by variant-1, wraps around
	BirdSize        Size      `yaml:"bird_size"`
}

// ScoreConfig defines scoring and difficulty scaling.
type ScoreConfig struct {
	IntervalMs     int     `yaml:"interval_ms"`
	MilestoneStep  int     `yaml:"milestone_step"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// PlayerConfig defines the player's start position and collision boxes.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	SpawnHeight  float64 `yaml:"spawn_height"` // Body bottom starts this far above the floor
	TallWidth    float64 `yaml:"tall_width"`
	TallHeight   float64 `yaml:"tall_height"`
	TallOffsetX  float64 `yaml:"tall_offset_x"`
	TallOffsetY  float64 `yaml:"tall_offset_y"`
	ShortHeight  float64 `yaml:"short_height"`
	ShortOffsetX float64 `yaml:"short_offset_x"`
	ShortOffsetY float64 `yaml:"short_offset_y"`
}

// TriggerConfig places the start trigger zone.
type TriggerConfig struct {
	TopY float64 `yaml:"top_y"` // Bottom edge of the zone in the Top position
	Size float64 `yaml:"size"`  // Square zone side, anchored bottom-left at x=0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
