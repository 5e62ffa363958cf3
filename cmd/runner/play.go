package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up/W  - Jump
  Down/S      - Duck (hold)
  P/Esc       - Pause
  R           - Restart (after game over)
  Tab         - Scoreboard for this session
  Ctrl+S      - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower spawns, gentler speed-up
  normal - Default tuning
  hard   - Faster start, more birds, steeper speed-up
  fixed  - No speed-up

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal: logs go to --log-file or nowhere.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := dino.New(cfg, dino.WithLogger(logger))
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.ModelOptions{
		Player:     currentUser(),
		Difficulty: string(preset),
		Logger:     logger,
	}
	if err := tui.Run(game, store, rt, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}
