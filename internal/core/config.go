package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the host-facing summary of a game.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score seen by this process
	Phase     string // Human-readable session phase
	GameOver  bool   // Whether the run has ended
	Paused    bool   // Whether the host has paused the game

	RunTime time.Duration // Time spent in the current (or just ended) run
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
