package dino

// Event is a fire-and-forget notification for the presentation layer.
// The simulation never waits on, or reads anything back from, a sink.
type Event interface {
	event()
}

// EventSink receives events synchronously, in emission order, from inside Update
// and the command methods. Sinks must not call back into the session.
type EventSink func(Event)

// PhaseChanged is emitted after every phase transition.
type PhaseChanged struct {
	Phase Phase
}

func (PhaseChanged) event() {}

// ObstacleSpawned is emitted when the spawner inserts an obstacle.
type ObstacleSpawned struct {
	ID   int
	Kind ObstacleKind
	X    float64
	Lane float64
}

func (ObstacleSpawned) event() {}

// ObstacleCulled is emitted when an obstacle scrolls past the left boundary.
type ObstacleCulled struct {
	ID int
}

func (ObstacleCulled) event() {}

// ScoreChanged is emitted whenever the score value changes, including the
// reset to zero on game over.
type ScoreChanged struct {
	Value int
}

func (ScoreChanged) event() {}

// MilestoneReached is emitted once per crossing of a milestone multiple.
// Level is score / milestone step.
type MilestoneReached struct {
	Level int
}

func (MilestoneReached) event() {}

// PlayerDied is emitted when an obstacle collision kills the player.
type PlayerDied struct{}

func (PlayerDied) event() {}

// GameRestarted is emitted when a restart command is honoured.
type GameRestarted struct{}

func (GameRestarted) event() {}
