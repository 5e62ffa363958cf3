package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimIdle     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI, driven by a scripted player.

The run is fully deterministic for a given --seed, --fps and config: the
same inputs always produce the same scores. The scripted player jumps over
cacti and low birds, ducks under high birds, and restarts after every
collision until the simulated duration is used up.

Examples:
  runner sim --seed 42
  runner sim --seed 7 --duration 10m --difficulty hard
  runner sim --idle --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", time.Minute, "Simulated time to run")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Only start the run, never dodge")
}

// simCounts tallies emitted events.
type simCounts struct {
	spawned    int
	culled     int
	milestones int
	deaths     int
	restarts   int
}

func (c *simCounts) sink(e dino.Event) {
	switch e.(type) {
	case dino.ObstacleSpawned:
		c.spawned++
	case dino.ObstacleCulled:
		c.culled++
	case dino.MilestoneReached:
		c.milestones++
	case dino.PlayerDied:
		c.deaths++
	case dino.GameRestarted:
		c.restarts++
	}
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	counts := &simCounts{}
	var runStart float64
	session, err := dino.NewSession(cfg,
		dino.WithSeed(seed),
		dino.WithLogger(logger),
		dino.WithEventSink(counts.sink),
	)
	if err != nil {
		return err
	}

	pilot := dino.NewAutoPilot()
	frameMs := 1000 / float64(fps)
	frames := int(flagSimDuration.Seconds() * float64(fps))
	simMs := 0.0

	for i := 0; i < frames; i++ {
		if flagSimIdle {
			if session.Phase() == dino.PhaseIntro {
				session.Jump()
			} else if session.Phase() == dino.PhaseGameOver {
				session.Restart()
			}
		} else {
			pilot.Drive(session)
		}

		before := session.Phase()
		session.Update(frameMs)
		simMs += frameMs

		if before != dino.PhaseGameOver && session.Phase() == dino.PhaseGameOver {
			elapsed := time.Duration(session.ElapsedRunning() * float64(time.Millisecond))
			if _, err := store.SaveRun("autopilot", string(preset), session.LastScore(), elapsed); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
		if before == dino.PhaseRollout && session.Phase() == dino.PhaseRunning {
			runStart = simMs
		}
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("seed:        %d\n", seed)
	fmt.Printf("difficulty:  %s\n", preset)
	fmt.Printf("simulated:   %s (%d frames at %d fps)\n", flagSimDuration, frames, fps)
	if runStart > 0 {
		fmt.Printf("run started: %.0fms\n", runStart)
	}
	fmt.Printf("phase:       %s\n", session.Phase())
	fmt.Printf("score:       %s\n", dino.FormatScore(session.Score()))
	fmt.Printf("high score:  %s\n", dino.HighScoreLabel(session.HighScore()))
	fmt.Printf("speed:       x%.2f\n", session.SpeedMultiplier())
	fmt.Printf("runs ended:  %d (avg score %.1f)\n", stats.Runs, stats.AvgScore)
	fmt.Printf("events:      spawned=%d culled=%d milestones=%d deaths=%d restarts=%d\n",
		counts.spawned, counts.culled, counts.milestones, counts.deaths, counts.restarts)

	top, err := store.TopRuns(5)
	if err != nil {
		return err
	}
	for i, r := range top {
		fmt.Printf("  #%d  %s  %6.1fs\n", i+1, dino.FormatScore(r.Score), float64(r.DurationMs)/1000)
	}
	return nil
}
