// Package dino implements a Chrome Dino-style endless runner.
// The player auto-runs, jumps or ducks past procedurally spawned obstacles,
// and score and speed scale with survival time. Everything advances from a
// single per-frame time delta; there are no wall-clock timers.
package dino

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Session is one game session: phase, score, high score and every component.
// It is single-threaded: Update and the command methods must be called from
// the same goroutine.
type Session struct {
	cfg      config.RunnerConfig
	logger   *log.Logger
	sinks    []EventSink
	phase    *PhaseController
	rollout  RolloutProgress
	trigger  *StartTrigger
	player   *PlayerMotion
	set      *ObstacleSet
	spawner  *ObstacleSpawner
	score    *ScoreTracker
	scroller *WorldScroller
	resolver *CollisionResolver

	highScore      int
	lastScore      int // Score at the most recent collision
	elapsedRunning float64
	cosmetics      bool // Score display and clouds visible
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	rng       Rand
	seed      int64
	logger    *log.Logger
	sinks     []EventSink
	overlap   Overlapper
	sensor    FloorSensor
	highScore int
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(o *sessionOptions) { o.seed = seed }
}

// WithRand injects the spawner's random source. It overrides WithSeed.
func WithRand(r Rand) Option {
	return func(o *sessionOptions) { o.rng = r }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) { o.logger = l }
}

// WithEventSink adds an event sink. Sinks are called in registration order.
func WithEventSink(sink EventSink) Option {
	return func(o *sessionOptions) { o.sinks = append(o.sinks, sink) }
}

// WithOverlapper replaces the AABB overlap capability. nil disables collisions.
func WithOverlapper(ov Overlapper) Option {
	return func(o *sessionOptions) { o.overlap = ov }
}

// WithFloorSensor replaces the floor-contact capability.
func WithFloorSensor(fs FloorSensor) Option {
	return func(o *sessionOptions) { o.sensor = fs }
}

// WithHighScore carries a high score over from a previous session.
func WithHighScore(score int) Option {
	return func(o *sessionOptions) {
		if score > 0 {
			o.highScore = score
		}
	}
}

// NewSession validates cfg and builds a session in the Intro phase.
// An invalid config yields a *config.ConfigError and no session.
func NewSession(cfg config.RunnerConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{overlap: AABB}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(o.seed))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:       cfg,
		logger:    o.logger,
		sinks:     o.sinks,
		trigger:   NewStartTrigger(cfg),
		player:    NewPlayerMotion(cfg, o.sensor),
		set:       &ObstacleSet{},
		score:     NewScoreTracker(cfg.Score),
		scroller:  NewWorldScroller(cfg.World),
		resolver:  NewCollisionResolver(o.overlap, o.logger),
		highScore: o.highScore,
		rollout: RolloutProgress{
			Width:  cfg.World.GroundStartWidth,
			Target: cfg.World.Width,
			Growth: cfg.World.RolloutGrowth,
		},
	}
	s.spawner = NewObstacleSpawner(cfg, o.rng, s.set)
	s.phase = NewPhaseController(func(p Phase) {
		s.logger.Debug("phase changed", "phase", p)
		s.emit(PhaseChanged{Phase: p})
	})
	return s, nil
}

func (s *Session) emit(e Event) {
	for _, sink := range s.sinks {
		sink(e)
	}
}

// Update advances the session by one frame of deltaMs milliseconds.
// Non-positive or non-finite deltas are ignored.
func (s *Session) Update(deltaMs float64) {
	if !(deltaMs > 0) || math.IsInf(deltaMs, 0) {
		return
	}

	if s.phase.Phase() == PhaseGameOver {
		// Frozen until Restart
		return
	}
	if s.phase.Phase() == PhaseRunning {
		s.elapsedRunning += deltaMs
	}
	s.player.Integrate(deltaMs)

	if s.phase.WorldMoves() {
		for _, id := range s.scroller.Update(deltaMs, s.score.SpeedMultiplier(), s.set) {
			s.emit(ObstacleCulled{ID: id})
		}
	}

	switch s.phase.Phase() {
	case PhaseIntro:
		if s.resolver.CheckTrigger(s.player.Box(), s.trigger) == TriggerFired {
			s.startRollout()
		}

	case PhaseRollout:
		if s.rollout.Advance() {
			s.finishRollout()
		}

	case PhaseRunning:
		s.tickRunning(deltaMs)
	}
}

func (s *Session) startRollout() {
	s.logger.Info("start trigger fired, rolling out")
	s.phase.Transition(PhaseRollout)
	s.player.SetForwardVelocity(s.cfg.Physics.RolloutVelocity)
}

func (s *Session) finishRollout() {
	s.player.SetForwardVelocity(0)
	s.cosmetics = true
	s.phase.Transition(PhaseRunning)
}

// tickRunning runs the spawn, score and collision part of a Running frame.
// Update has already scrolled and culled, so a freshly spawned obstacle is
// never considered for culling in its own tick.
func (s *Session) tickRunning(deltaMs float64) {
	if o, ok := s.spawner.Update(deltaMs); ok {
		s.logger.Debug("obstacle spawned", "id", o.ID, "kind", o.Kind, "x", o.X, "lane", o.Lane)
		s.emit(ObstacleSpawned{ID: o.ID, Kind: o.Kind, X: o.X, Lane: o.Lane})
	}

	if scored, level := s.score.Update(deltaMs); scored {
		s.emit(ScoreChanged{Value: s.score.Score()})
		if level > 0 {
			s.logger.Debug("milestone reached", "level", level, "speed", s.score.SpeedMultiplier())
			s.emit(MilestoneReached{Level: level})
		}
	}

	if hit := s.resolver.FirstHit(s.player.Box(), s.set); hit != nil {
		s.gameOver(hit)
	}
}

// gameOver freezes the world after an obstacle collision.
func (s *Session) gameOver(hit *Obstacle) {
	final := s.score.Score()
	s.lastScore = final
	if final > s.highScore {
		s.highScore = final
	}

	s.player.Kill()
	s.spawner.ResetTimer()
	s.score.Reset()

	s.logger.Info("player died", "obstacle", hit.Kind, "score", final, "high_score", s.highScore)
	s.emit(PlayerDied{})
	s.emit(ScoreChanged{Value: 0})
	s.phase.Transition(PhaseGameOver)
}

// Jump issues a JumpCommand edge.
func (s *Session) Jump() {
	if s.phase.Interactive() {
		s.player.Jump()
	}
}

// Duck issues a DuckCommand edge.
func (s *Session) Duck() {
	if s.phase.Interactive() {
		s.player.Duck()
	}
}

// DuckRelease issues a DuckRelease edge.
func (s *Session) DuckRelease() {
	if s.phase.Interactive() {
		s.player.DuckRelease()
	}
}

// Restart issues a RestartCommand. It is honoured only in GameOver and
// returns to Running directly, without replaying Rollout.
func (s *Session) Restart() bool {
	if s.phase.Phase() != PhaseGameOver {
		return false
	}
	s.set.Clear()
	s.player.Revive()
	s.elapsedRunning = 0

	s.logger.Info("game restarted", "high_score", s.highScore)
	s.emit(GameRestarted{})
	s.phase.Transition(PhaseRunning)
	return true
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase.Phase()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score.Score()
}

// LastScore returns the score at the most recent collision.
func (s *Session) LastScore() int {
	return s.lastScore
}

// HighScore returns the best score of this session and any carried-over one.
func (s *Session) HighScore() int {
	return s.highScore
}

// SpeedMultiplier returns the current world speed factor.
func (s *Session) SpeedMultiplier() float64 {
	return s.score.SpeedMultiplier()
}

// SpawnAccumulator returns the time accumulated towards the next spawn.
func (s *Session) SpawnAccumulator() float64 {
	return s.spawner.Accumulator()
}

// ScoreAccumulator returns the time accumulated towards the next point.
func (s *Session) ScoreAccumulator() float64 {
	return s.score.Accumulator()
}

// ElapsedRunning returns milliseconds spent Running since the last (re)start.
func (s *Session) ElapsedRunning() float64 {
	return s.elapsedRunning
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player.Player()
}

// Obstacles returns copies of the live obstacles.
func (s *Session) Obstacles() []Obstacle {
	return s.set.Snapshot()
}

// Clouds returns copies of the cloud pool.
func (s *Session) Clouds() []Cloud {
	return s.scroller.Clouds()
}

// Trigger returns a copy of the start trigger.
func (s *Session) Trigger() StartTrigger {
	return *s.trigger
}

// GroundWidth returns the visible ground width.
func (s *Session) GroundWidth() float64 {
	return s.rollout.Width
}

// GroundOffset returns the accumulated ground scroll offset.
func (s *Session) GroundOffset() float64 {
	return s.scroller.GroundOffset()
}

// CosmeticsVisible reports whether clouds and the score display are shown.
func (s *Session) CosmeticsVisible() bool {
	return s.cosmetics
}

// Config returns the session configuration.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// World returns the playfield bounds.
func (s *Session) World() core.Box {
	return core.NewBox(0, 0, s.cfg.World.Width, s.cfg.World.Height)
}
