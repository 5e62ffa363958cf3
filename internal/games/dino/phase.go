package dino

// Phase is the session-level state gating which components run.
type Phase int

const (
	PhaseIntro    Phase = iota // World static, only the start trigger listens
	PhaseRollout               // Ground widens, no input accepted
	PhaseRunning               // Everything active
	PhaseGameOver              // World frozen until restart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseRollout:
		return "Rollout"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PhaseController owns the session phase and enforces the transition graph
// Intro -> Rollout -> Running -> GameOver -> Running.
type PhaseController struct {
	phase    Phase
	onChange func(Phase)
}

// NewPhaseController starts in Intro. onChange may be nil.
func NewPhaseController(onChange func(Phase)) *PhaseController {
	return &PhaseController{phase: PhaseIntro, onChange: onChange}
}

// Phase returns the current phase.
func (c *PhaseController) Phase() Phase {
	return c.phase
}

// CanTransition reports whether to is a legal successor of the current phase.
func (c *PhaseController) CanTransition(to Phase) bool {
	switch c.phase {
	case PhaseIntro:
		return to == PhaseRollout
	case PhaseRollout:
		return to == PhaseRunning
	case PhaseRunning:
		return to == PhaseGameOver
	case PhaseGameOver:
		return to == PhaseRunning
	}
	return false
}

// Transition moves to the given phase if the edge exists.
// Illegal requests are dropped and reported as false.
func (c *PhaseController) Transition(to Phase) bool {
	if !c.CanTransition(to) {
		return false
	}
	c.phase = to
	if c.onChange != nil {
		c.onChange(to)
	}
	return true
}

// WorldMoves reports whether the scroller advances in this phase.
func (c *PhaseController) WorldMoves() bool {
	return c.phase == PhaseRollout || c.phase == PhaseRunning
}

// Interactive reports whether player commands are accepted.
func (c *PhaseController) Interactive() bool {
	return c.phase == PhaseIntro || c.phase == PhaseRunning
}

// RolloutProgress is the per-tick ground-growth counter driving Rollout.
type RolloutProgress struct {
	Width  float64 // Current ground width
	Target float64 // Width at which Rollout completes
	Growth float64 // Width added per tick
}

// Advance grows the ground by one increment and reports completion.
// The width never exceeds the target.
func (r *RolloutProgress) Advance() bool {
	r.Width += r.Growth
	if r.Width >= r.Target {
		r.Width = r.Target
		return true
	}
	return false
}
