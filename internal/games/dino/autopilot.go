package dino

// AutoPilot is a scripted player for headless runs. It performs the start
// handshake, jumps over ground-level obstacles, ducks under high birds and
// restarts after a collision.
type AutoPilot struct {
	// LeadMs is how far ahead, in milliseconds of world travel, the pilot
	// reacts to an obstacle.
	LeadMs float64

	ducking bool
}

// NewAutoPilot returns a pilot with a reaction lead tuned to the default
// jump arc.
func NewAutoPilot() *AutoPilot {
	return &AutoPilot{LeadMs: 180}
}

// Drive issues this frame's commands to s. It returns true when it
// restarted the session.
func (a *AutoPilot) Drive(s *Session) bool {
	switch s.Phase() {
	case PhaseIntro:
		s.Jump()
		return false
	case PhaseGameOver:
		a.ducking = false
		return s.Restart()
	case PhaseRunning:
	default:
		return false
	}

	p := s.Player()
	body := p.Box()
	pxPerMs := s.cfg.World.BaseSpeed * s.SpeedMultiplier() / s.cfg.World.StepMs
	reach := body.Right() + pxPerMs*a.LeadMs

	var next *Obstacle
	for _, o := range s.Obstacles() {
		o := o
		if o.Box().Right() < body.Left() || o.X > reach {
			continue
		}
		if next == nil || o.X < next.X {
			next = &o
		}
	}

	wantDuck := false
	wantJump := false
	if next != nil {
		tallTop := s.cfg.World.Height - s.cfg.Player.TallHeight - s.cfg.Player.TallOffsetY
		shortTop := s.cfg.World.Height - s.cfg.Player.ShortHeight
		ob := next.Box()
		switch {
		case ob.Bottom() <= tallTop:
			// Passes overhead
		case next.Kind.IsBird() && ob.Bottom() < shortTop:
			wantDuck = true
		default:
			wantJump = true
		}
	}

	switch {
	case wantJump:
		if a.ducking {
			s.DuckRelease()
			a.ducking = false
		}
		s.Jump()
	case wantDuck && !a.ducking:
		if s.Player().Grounded() {
			s.Duck()
			a.ducking = true
		}
	case !wantDuck && a.ducking:
		s.DuckRelease()
		a.ducking = false
	}
	return false
}
