package dino

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestScoreTrackerIncrements(t *testing.T) {
	tr := NewScoreTracker(config.ScoreConfig{IntervalMs: 100, MilestoneStep: 100, SpeedIncrement: 0.2})

	tests := []struct {
		delta  float64
		scored bool
		score  int
	}{
		{50, false, 0},
		{49.9, false, 0},
		{0.1, true, 1},
		{250, true, 2}, // Excess discarded
		{99, false, 2},
	}

	for i, tc := range tests {
		scored, _ := tr.Update(tc.delta)
		if scored != tc.scored || tr.Score() != tc.score {
			t.Errorf("step %d: scored=%v score=%d, expected %v %d", i, scored, tr.Score(), tc.scored, tc.score)
		}
	}
}

func TestScoreTrackerMilestones(t *testing.T) {
	tr := NewScoreTracker(config.ScoreConfig{IntervalMs: 10, MilestoneStep: 5, SpeedIncrement: 0.5})

	var levels []int
	for i := 0; i < 12; i++ {
		if _, level := tr.Update(10); level > 0 {
			levels = append(levels, level)
		}
	}

	if len(levels) != 2 || levels[0] != 1 || levels[1] != 2 {
		t.Errorf("milestones = %v, expected [1 2]", levels)
	}
	if math.Abs(tr.SpeedMultiplier()-2.0) > 1e-9 {
		t.Errorf("speed multiplier = %v, expected 2.0", tr.SpeedMultiplier())
	}

	tr.Reset()
	if tr.Score() != 0 || tr.Accumulator() != 0 || tr.SpeedMultiplier() != 1.0 {
		t.Errorf("after reset: score=%d acc=%v mult=%v", tr.Score(), tr.Accumulator(), tr.SpeedMultiplier())
	}
}

func TestScoreFormatting(t *testing.T) {
	tests := []struct {
		score int
		want  string
		label string
	}{
		{0, "00000", "HI 00000"},
		{42, "00042", "HI 00042"},
		{100, "00100", "HI 00100"},
		{123456, "123456", "HI 123456"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.want)
		}
		if got := HighScoreLabel(tc.score); got != tc.label {
			t.Errorf("HighScoreLabel(%d) = %q, expected %q", tc.score, got, tc.label)
		}
	}
}
