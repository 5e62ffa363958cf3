package dino

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// landedPlayer returns a player that has settled on the floor.
func landedPlayer(t *testing.T, cfg config.RunnerConfig) *PlayerMotion {
	t.Helper()
	m := NewPlayerMotion(cfg, nil)
	for i := 0; i < 120 && !m.Player().Grounded(); i++ {
		m.Integrate(frameMs)
	}
	if m.Player().State != StateGrounded {
		t.Fatalf("player never landed, state = %v", m.Player().State)
	}
	return m
}

func TestPlayerSpawnsAirborne(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := NewPlayerMotion(cfg, nil)

	p := m.Player()
	if p.State != StateAirborne {
		t.Errorf("state = %v, expected Airborne", p.State)
	}
	if got := p.Box().Bottom(); got != cfg.World.Height-cfg.Player.SpawnHeight {
		t.Errorf("spawn bottom = %v", got)
	}

	m = landedPlayer(t, cfg)
	if got := m.Box().Bottom(); got != cfg.World.Height {
		t.Errorf("landed bottom = %v, expected floor %v", got, cfg.World.Height)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := landedPlayer(t, cfg)

	if !m.Jump() {
		t.Fatal("jump from the ground should take effect")
	}
	if m.Player().VY != cfg.Physics.JumpImpulse || m.Player().State != StateAirborne {
		t.Errorf("after jump: %+v", m.Player())
	}

	m.Integrate(frameMs)
	vy := m.Player().VY
	if m.Jump() {
		t.Error("jump while airborne must be ignored")
	}
	if m.Player().VY != vy {
		t.Errorf("airborne jump changed velocity from %v to %v", vy, m.Player().VY)
	}
}

func TestJumpReachesApexAndLands(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := landedPlayer(t, cfg)
	m.Jump()

	minTop := m.Box().Top()
	for i := 0; i < 120 && m.Player().State == StateAirborne; i++ {
		m.Integrate(frameMs)
		if top := m.Box().Top(); top < minTop {
			minTop = top
		}
	}

	if m.Player().State != StateGrounded {
		t.Fatalf("player did not land, state = %v", m.Player().State)
	}
	if minTop > cfg.Trigger.TopY {
		t.Errorf("apex top = %v, should reach the top trigger at %v", minTop, cfg.Trigger.TopY)
	}
}

func TestDuckBoxes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := landedPlayer(t, cfg)

	tall := Body{W: 44, H: 92, OffsetX: 20, OffsetY: 0}
	short := Body{W: 44, H: 58, OffsetX: 60, OffsetY: 34}

	if m.Player().Body != tall {
		t.Fatalf("initial body = %+v, expected %+v", m.Player().Body, tall)
	}

	if !m.Duck() {
		t.Fatal("duck from the ground should take effect")
	}
	if m.Player().Body != short || m.Player().State != StateDucking {
		t.Errorf("ducking: body=%+v state=%v", m.Player().Body, m.Player().State)
	}
	if got := m.Box().Bottom(); got != cfg.World.Height {
		t.Errorf("ducked box bottom = %v, expected floor", got)
	}

	// Ducking keeps the player grounded across frames
	m.Integrate(frameMs)
	if m.Player().State != StateDucking {
		t.Errorf("state after integrate = %v, expected Ducking", m.Player().State)
	}

	if !m.DuckRelease() {
		t.Fatal("duck release should take effect")
	}
	if m.Player().Body != tall || m.Player().State != StateGrounded {
		t.Errorf("released: body=%+v state=%v", m.Player().Body, m.Player().State)
	}
}

func TestDuckIgnoredWhileAirborne(t *testing.T) {
	m := NewPlayerMotion(config.DefaultRunnerConfig(), nil)
	body := m.Player().Body

	if m.Duck() || m.DuckRelease() {
		t.Error("duck commands must be ignored while airborne")
	}
	if m.Player().Body != body {
		t.Error("airborne duck changed the body")
	}
}

func TestJumpFromDuck(t *testing.T) {
	m := landedPlayer(t, config.DefaultRunnerConfig())
	m.Duck()
	if !m.Jump() {
		t.Error("a ducking player is grounded and may jump")
	}
}

func TestDeadPlayerIsFrozen(t *testing.T) {
	m := landedPlayer(t, config.DefaultRunnerConfig())
	m.Jump()
	m.Integrate(frameMs)
	m.Kill()

	before := m.Player()
	m.Integrate(frameMs)
	if m.Player().Y != before.Y || m.Player().VY != 0 {
		t.Error("dead player moved")
	}
	if m.Jump() || m.Duck() {
		t.Error("dead player accepted a command")
	}
	m.SetForwardVelocity(100)
	if m.Player().VX != 0 {
		t.Error("dead player accepted forward velocity")
	}

	m.Revive()
	p := m.Player()
	if p.State != StateGrounded || p.VX != 0 || p.VY != 0 {
		t.Errorf("revived player = %+v", p)
	}
}

func TestFloorSensorDrivesState(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	contact := false
	sensor := func(core.Box) bool { return contact }

	m := NewPlayerMotion(cfg, sensor)
	m.Integrate(frameMs)
	if m.Player().State != StateAirborne {
		t.Fatalf("state = %v without floor contact", m.Player().State)
	}

	contact = true
	m.Integrate(frameMs)
	if m.Player().State != StateGrounded {
		t.Errorf("state = %v with floor contact, expected Grounded", m.Player().State)
	}

	contact = false
	m.Integrate(frameMs)
	if m.Player().State != StateAirborne {
		t.Errorf("state = %v after losing contact, expected Airborne", m.Player().State)
	}
}
