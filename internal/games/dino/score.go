package dino

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// ScoreTracker turns running time into score and applies milestone speed-ups.
type ScoreTracker struct {
	cfg             config.ScoreConfig
	score           int
	accumulator     float64
	speedMultiplier float64
}

// NewScoreTracker creates a tracker at score 0 and multiplier 1.0.
func NewScoreTracker(cfg config.ScoreConfig) *ScoreTracker {
	return &ScoreTracker{cfg: cfg, speedMultiplier: 1.0}
}

// Score returns the current score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// SpeedMultiplier returns the current world speed factor.
func (t *ScoreTracker) SpeedMultiplier() float64 {
	return t.speedMultiplier
}

// Accumulator returns the time accumulated towards the next point.
func (t *ScoreTracker) Accumulator() float64 {
	return t.accumulator
}

// Update accumulates deltaMs. When the interval is reached the score grows by
// exactly one and the accumulator restarts at zero, discarding any excess.
// milestone is the new level (score / step) when this increment landed on a
// multiple of the step, otherwise 0.
func (t *ScoreTracker) Update(deltaMs float64) (scored bool, milestone int) {
	t.accumulator += deltaMs
	if t.accumulator < float64(t.cfg.IntervalMs) {
		return false, 0
	}
	t.accumulator = 0
	t.score++

	if t.score%t.cfg.MilestoneStep == 0 {
		t.speedMultiplier += t.cfg.SpeedIncrement
		return true, t.score / t.cfg.MilestoneStep
	}
	return true, 0
}

// Reset zeroes score and accumulator and restores the multiplier to 1.0.
func (t *ScoreTracker) Reset() {
	t.score = 0
	t.accumulator = 0
	t.speedMultiplier = 1.0
}

// FormatScore renders a score zero-padded to five digits.
func FormatScore(score int) string {
	return fmt.Sprintf("%05d", score)
}

// HighScoreLabel renders the high-score label, e.g. "HI 00100".
func HighScoreLabel(highScore int) string {
	return "HI " + FormatScore(highScore)
}
