package dino

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// milestonePulseMs is how long the score display blinks after a milestone.
const milestonePulseMs = 800

// Game adapts a Session to a frame-driven host: it maps edge-triggered
// input actions onto session commands, converts frame time to deltaMs and
// draws the session into a character screen.
type Game struct {
	cfg     config.RunnerConfig
	opts    []Option
	logger  *log.Logger
	session *Session
	runtime core.RuntimeConfig
	paused  bool
	ducking bool    // Duck key held, as last reported by the host
	pulseMs float64 // Remaining milestone blink time
	animMs  float64 // Running animation clock
}

// New creates a game for cfg. Options are forwarded to every session the
// game creates. The config is validated up front.
func New(cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, opts: opts, logger: log.New(io.Discard)}
	for _, opt := range opts {
		var o sessionOptions
		opt(&o)
		if o.logger != nil {
			g.logger = o.logger
		}
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset starts a fresh session in Intro. The high score survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	highScore := 0
	if g.session != nil {
		highScore = g.session.HighScore()
	}

	opts := make([]Option, 0, len(g.opts)+3)
	opts = append(opts, g.opts...)
	opts = append(opts,
		WithSeed(runtime.Seed),
		WithHighScore(highScore),
		WithEventSink(g.onEvent),
	)

	s, err := NewSession(g.cfg, opts...)
	if err != nil {
		// Config was validated in New; keep the previous session if any.
		g.logger.Error("cannot create session", "error", err)
		return
	}
	g.session = s
	g.paused = false
	g.ducking = false
	g.pulseMs = 0
	g.animMs = 0
}

// Resize updates the screen size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) onEvent(e Event) {
	if _, ok := e.(MilestoneReached); ok {
		g.pulseMs = milestonePulseMs
	}
}

// Step applies this frame's input and advances the session by dt.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.Phase() != PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Restart()
	}
	if in.Has(core.ActionDuckRelease) {
		g.ducking = false
	}
	if in.Has(core.ActionDuck) {
		g.ducking = true
	}
	g.syncDuck()
	if in.Has(core.ActionJump) {
		g.session.Jump()
	}

	deltaMs := float64(dt) / float64(time.Millisecond)
	g.session.Update(deltaMs)

	g.animMs += deltaMs
	if g.pulseMs > 0 {
		g.pulseMs -= deltaMs
	}

	return core.StepResult{State: g.State()}
}

// syncDuck reconciles the held duck key with the player box. Duck commands
// only apply on the ground, so a key pressed or released mid-air takes
// effect on landing.
func (g *Game) syncDuck() {
	switch st := g.session.Player().State; {
	case g.ducking && st == StateGrounded:
		g.session.Duck()
	case !g.ducking && st == StateDucking:
		g.session.DuckRelease()
	}
}

// State returns the host-facing summary. While in GameOver, Score is the
// final score of the run that just ended.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Phase:     g.session.Phase().String(),
		Paused:    g.paused,
		RunTime:   time.Duration(g.session.ElapsedRunning() * float64(time.Millisecond)),
	}
	if g.session.Phase() == PhaseGameOver {
		st.GameOver = true
		st.Score = g.session.LastScore()
	}
	return st
}
