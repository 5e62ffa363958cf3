package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// TriggerPosition is one of the two fixed start-trigger spots.
type TriggerPosition int

const (
	TriggerTop TriggerPosition = iota
	TriggerBottom
)

// String returns "Top" or "Bottom".
func (p TriggerPosition) String() string {
	if p == TriggerBottom {
		return "Bottom"
	}
	return "Top"
}

// StartTrigger is the overlap zone gating the start of a run.
// The zone is anchored bottom-left at (0, y) where y depends on Position.
type StartTrigger struct {
	Position TriggerPosition
	Enabled  bool
	topY     float64
	bottomY  float64
	size     float64
}

// NewStartTrigger creates an enabled trigger at Top.
func NewStartTrigger(cfg config.RunnerConfig) *StartTrigger {
	return &StartTrigger{
		Position: TriggerTop,
		Enabled:  true,
		topY:     cfg.Trigger.TopY,
		bottomY:  cfg.World.Height,
		size:     cfg.Trigger.Size,
	}
}

// Y returns the bottom edge of the zone at its current position.
func (t StartTrigger) Y() float64 {
	if t.Position == TriggerBottom {
		return t.bottomY
	}
	return t.topY
}

// Box returns the zone's bounds.
func (t StartTrigger) Box() core.Box {
	return core.NewBox(0, t.Y()-t.size, t.size, t.size)
}

// TriggerOutcome is the result of feeding one overlap to the trigger.
type TriggerOutcome int

const (
	TriggerIgnored TriggerOutcome = iota // Disabled or no overlap
	TriggerMoved                         // Top overlap, zone moved to Bottom
	TriggerFired                         // Bottom overlap, zone disabled, run starts
)

// Hit advances the two-stage handshake for one overlap event.
func (t *StartTrigger) Hit() TriggerOutcome {
	if !t.Enabled {
		return TriggerIgnored
	}
	if t.Position == TriggerTop {
		t.Position = TriggerBottom
		return TriggerMoved
	}
	t.Enabled = false
	return TriggerFired
}
