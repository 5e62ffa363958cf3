package dino

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const frameMs = 1000.0 / 60.0

// overlapMode selects how testOverlap answers.
type overlapMode int

const (
	overlapAABB overlapMode = iota
	overlapNever
	overlapAlways
	overlapFail
)

// testOverlap is a switchable physics capability.
type testOverlap struct {
	mode  overlapMode
	calls int
}

func (o *testOverlap) Overlaps(a, b core.Box) (bool, error) {
	o.calls++
	switch o.mode {
	case overlapNever:
		return false, nil
	case overlapAlways:
		return true, nil
	case overlapFail:
		return false, errors.New("physics offline")
	default:
		return a.Intersects(b), nil
	}
}

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) sink(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) reset() {
	r.events = nil
}

func (r *recorder) milestones() []int {
	var levels []int
	for _, e := range r.events {
		if m, ok := e.(MilestoneReached); ok {
			levels = append(levels, m.Level)
		}
	}
	return levels
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, e := range r.events {
		if match(e) {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T, cfg config.RunnerConfig, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, opts...)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// runToRunning jumps at every opportunity until the start handshake and
// rollout have completed.
func runToRunning(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 2000 && s.Phase() != PhaseRunning; i++ {
		s.Jump()
		s.Update(frameMs)
	}
	if s.Phase() != PhaseRunning {
		t.Fatalf("session never reached Running, phase = %v", s.Phase())
	}
}
