package config

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.IntervalMs = 1800
		cfg.Spawn.MinGapFactor = 0.7
		cfg.Spawn.MaxGapFactor = 1.0
		cfg.Score.SpeedIncrement = 0.1
	case DifficultyHard:
		cfg.World.BaseSpeed = 12
		cfg.Spawn.IntervalMs = 1200
		cfg.Spawn.BirdWeight = 2
		cfg.Score.SpeedIncrement = 0.3
	case DifficultyFixed:
		// No milestone speed-up: the world keeps its base speed forever.
		cfg.Score.SpeedIncrement = 0
	}
}
