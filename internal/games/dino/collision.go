package dino

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Overlapper is the physics capability testing two boxes for overlap.
// An error means the capability is unavailable for this call.
type Overlapper interface {
	Overlaps(a, b core.Box) (bool, error)
}

// OverlapFunc adapts an infallible test to Overlapper.
type OverlapFunc func(a, b core.Box) bool

// Overlaps implements Overlapper.
func (f OverlapFunc) Overlaps(a, b core.Box) (bool, error) {
	return f(a, b), nil
}

// AABB is the default overlap test.
var AABB Overlapper = OverlapFunc(core.Box.Intersects)

// CollisionResolver cross-checks the player against obstacles and the start trigger.
type CollisionResolver struct {
	overlap Overlapper
	logger  *log.Logger
}

// NewCollisionResolver creates a resolver. A nil overlapper disables detection.
func NewCollisionResolver(overlap Overlapper, logger *log.Logger) *CollisionResolver {
	return &CollisionResolver{overlap: overlap, logger: logger}
}

// FirstHit returns the first live obstacle overlapping player, or nil.
// A missing collection or a failing overlap test yields nil for the whole
// tick: the frame loop keeps running as if nothing was hit.
func (r *CollisionResolver) FirstHit(player core.Box, set *ObstacleSet) *Obstacle {
	if set == nil || r.overlap == nil {
		return nil
	}

	var hit *Obstacle
	for _, o := range set.items {
		if !o.Alive {
			continue
		}
		ok, err := r.overlap.Overlaps(player, o.Box())
		if err != nil {
			r.logger.Warn("overlap test unavailable, skipping collision check", "obstacle", o.ID, "error", err)
			return nil
		}
		if ok {
			hit = o
			break
		}
	}
	return hit
}

// CheckTrigger feeds a player/trigger overlap, if any, to the trigger.
func (r *CollisionResolver) CheckTrigger(player core.Box, trigger *StartTrigger) TriggerOutcome {
	if trigger == nil || !trigger.Enabled || r.overlap == nil {
		return TriggerIgnored
	}
	ok, err := r.overlap.Overlaps(player, trigger.Box())
	if err != nil {
		r.logger.Warn("overlap test unavailable, skipping trigger check", "error", err)
		return TriggerIgnored
	}
	if !ok {
		return TriggerIgnored
	}
	return trigger.Hit()
}
