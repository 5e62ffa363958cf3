package dino

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const frame = time.Second / 60

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(config.DefaultRunnerConfig(), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = 7
	g.Reset(rt)
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.BirdWeight = -1

	_, err := New(cfg)
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New() error = %v, expected *config.ConfigError", err)
	}
	if cfgErr.Field != "spawn.bird_weight" {
		t.Errorf("field = %q", cfgErr.Field)
	}
}

func TestGameMetadata(t *testing.T) {
	g := newTestGame(t)
	if g.ID() != "dino" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() should not be empty")
	}
	if st := g.State(); st.Phase != "Intro" || st.GameOver {
		t.Errorf("initial state = %+v", st)
	}
}

func TestGameStepDrivesSession(t *testing.T) {
	ov := &testOverlap{}
	g := newTestGame(t, WithOverlapper(ov))

	for i := 0; i < 2000 && g.Session().Phase() != PhaseRunning; i++ {
		g.Step(frame, input(core.ActionJump))
	}
	if g.Session().Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected Running", g.Session().Phase())
	}

	ov.mode = overlapNever
	for i := 0; i < 30; i++ {
		g.Step(100*time.Millisecond, input())
	}
	if st := g.State(); st.Score != 30 {
		t.Errorf("score = %d, expected 30", st.Score)
	}

	ov.mode = overlapAlways
	res := g.Step(time.Millisecond, input())
	if !res.State.GameOver || res.State.Score != 30 || res.State.HighScore != 30 {
		t.Errorf("game over state = %+v", res.State)
	}

	res = g.Step(frame, input(core.ActionRestart))
	if res.State.GameOver || res.State.Phase != "Running" {
		t.Errorf("state after restart = %+v", res.State)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame, input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Session().Player()
	for i := 0; i < 10; i++ {
		g.Step(frame, input(core.ActionJump))
	}
	if g.Session().Player() != before {
		t.Error("session advanced while paused")
	}

	g.Step(frame, input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameDuckAndRelease(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 60; i++ {
		g.Step(frame, input())
	}

	g.Step(frame, input(core.ActionDuck))
	if g.Session().Player().State != StateDucking {
		t.Fatalf("state = %v, expected Ducking", g.Session().Player().State)
	}
	g.Step(frame, input(core.ActionDuckRelease))
	if g.Session().Player().State != StateGrounded {
		t.Errorf("state = %v, expected Grounded", g.Session().Player().State)
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	ov := &testOverlap{}
	g := newTestGame(t, WithOverlapper(ov))
	for i := 0; i < 2000 && g.Session().Phase() != PhaseRunning; i++ {
		g.Step(frame, input(core.ActionJump))
	}
	ov.mode = overlapNever
	for i := 0; i < 200 && len(g.Session().Obstacles()) == 0; i++ {
		g.Step(100*time.Millisecond, input())
	}
	if len(g.Session().Obstacles()) == 0 {
		t.Fatal("no obstacle spawned")
	}
	final := g.Session().Score()
	if final == 0 {
		t.Fatal("score should have advanced before the collision")
	}

	ov.mode = overlapAlways
	g.Step(time.Millisecond, input())
	if g.Session().Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected GameOver", g.Session().Phase())
	}

	g.Reset(core.DefaultConfig())
	if g.Session().Phase() != PhaseIntro {
		t.Errorf("phase after reset = %v", g.Session().Phase())
	}
	if g.State().HighScore != final {
		t.Errorf("high score after reset = %d, expected %d", g.State().HighScore, final)
	}
}

func TestGameRender(t *testing.T) {
	ov := &testOverlap{}
	g := newTestGame(t, WithOverlapper(ov))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("intro frame should draw the ground")
	}
	if !strings.ContainsRune(out, DinoBody) {
		t.Error("intro frame should draw the dino")
	}
	if strings.Contains(out, "HI ") {
		t.Error("score display should be hidden before the run starts")
	}

	for i := 0; i < 2000 && g.Session().Phase() != PhaseRunning; i++ {
		g.Step(frame, input(core.ActionJump))
	}
	ov.mode = overlapNever
	for i := 0; i < 40; i++ {
		g.Step(100*time.Millisecond, input())
	}

	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "HI 00000  00040") {
		t.Errorf("HUD missing from frame:\n%s", out)
	}
	if !strings.ContainsRune(out, CloudChar) {
		t.Error("clouds should be visible while running")
	}

	ov.mode = overlapAlways
	g.Step(time.Millisecond, input())
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over frame should show the banner")
	}
	if !strings.Contains(out, "HI 00040") {
		t.Error("game over frame should show the new high score")
	}
}

func TestRenderSmallScreen(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(10, 4)
	// Must not panic on tiny terminals
	g.Render(screen)
}
