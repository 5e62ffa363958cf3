package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// MotionState is the player's movement state.
type MotionState int

const (
	StateGrounded MotionState = iota
	StateAirborne
	StateDucking // Grounded with the short box
	StateDead
)

// String returns a human-readable state name.
func (s MotionState) String() string {
	switch s {
	case StateGrounded:
		return "Grounded"
	case StateAirborne:
		return "Airborne"
	case StateDucking:
		return "Ducking"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Body is a collision box size plus its offset from the player origin.
type Body struct {
	W, H             float64
	OffsetX, OffsetY float64
}

// Player is the plain data of the single player instance.
// X/Y is the sprite origin (top-left); the collision box is Body applied to it.
type Player struct {
	X, Y  float64
	VX    float64
	VY    float64
	State MotionState
	Body  Body
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X+p.Body.OffsetX, p.Y+p.Body.OffsetY, p.Body.W, p.Body.H)
}

// Grounded reports whether the player stands on the floor (ducking or not).
func (p Player) Grounded() bool {
	return p.State == StateGrounded || p.State == StateDucking
}

// FloorSensor reports floor contact for the player's collision box.
// It is consulted once per integration step.
type FloorSensor func(body core.Box) bool

// PlayerMotion drives the player state machine and gravity integration.
type PlayerMotion struct {
	player  Player
	tall    Body
	short   Body
	gravity float64
	impulse float64
	floorY  float64
	sensor  FloorSensor
}

// NewPlayerMotion places the player above the floor, airborne, with the tall box.
// A nil sensor uses the floor line of the world.
func NewPlayerMotion(cfg config.RunnerConfig, sensor FloorSensor) *PlayerMotion {
	pc := cfg.Player
	tall := Body{W: pc.TallWidth, H: pc.TallHeight, OffsetX: pc.TallOffsetX, OffsetY: pc.TallOffsetY}
	short := Body{W: pc.TallWidth, H: pc.ShortHeight, OffsetX: pc.ShortOffsetX, OffsetY: pc.ShortOffsetY}

	floorY := cfg.World.Height
	if sensor == nil {
		sensor = func(body core.Box) bool {
			return body.Bottom() >= floorY
		}
	}

	bottom := floorY - pc.SpawnHeight
	return &PlayerMotion{
		player: Player{
			X:     pc.StartX,
			Y:     bottom - tall.OffsetY - tall.H,
			State: StateAirborne,
			Body:  tall,
		},
		tall:    tall,
		short:   short,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.JumpImpulse,
		floorY:  floorY,
		sensor:  sensor,
	}
}

// Player returns a copy of the player data.
func (m *PlayerMotion) Player() Player {
	return m.player
}

// Box returns the current collision box.
func (m *PlayerMotion) Box() core.Box {
	return m.player.Box()
}

// Jump launches the player if grounded. Returns whether it took effect.
func (m *PlayerMotion) Jump() bool {
	if !m.player.Grounded() {
		return false
	}
	m.player.VY = m.impulse
	m.player.State = StateAirborne
	return true
}

// Duck switches to the short box if grounded.
func (m *PlayerMotion) Duck() bool {
	if !m.player.Grounded() {
		return false
	}
	m.player.Body = Body{
		W:       m.player.Body.W,
		H:       m.short.H,
		OffsetX: m.short.OffsetX,
		OffsetY: m.short.OffsetY,
	}
	m.player.State = StateDucking
	return true
}

// DuckRelease restores the tall box if grounded.
func (m *PlayerMotion) DuckRelease() bool {
	if !m.player.Grounded() {
		return false
	}
	m.player.Body = m.tall
	m.player.State = StateGrounded
	return true
}

// SetForwardVelocity sets the horizontal velocity (used by Rollout).
func (m *PlayerMotion) SetForwardVelocity(vx float64) {
	if m.player.State == StateDead {
		return
	}
	m.player.VX = vx
}

// Kill freezes the player in the Dead state.
func (m *PlayerMotion) Kill() {
	m.player.State = StateDead
	m.player.VX = 0
	m.player.VY = 0
}

// Revive returns a dead player to Grounded with zero velocity and the tall box.
func (m *PlayerMotion) Revive() {
	m.player.VX = 0
	m.player.VY = 0
	m.player.Body = m.tall
	m.player.State = StateGrounded
}

// Integrate advances the player by deltaMs under gravity, clamps the body
// to the floor and updates the grounded/airborne state from the sensor.
// A dead player does not move.
func (m *PlayerMotion) Integrate(deltaMs float64) {
	p := &m.player
	if p.State == StateDead {
		p.VX = 0
		p.VY = 0
		return
	}

	dt := deltaMs / 1000
	p.Y += p.VY*dt + 0.5*m.gravity*dt*dt
	p.VY += m.gravity * dt
	p.X += p.VX * dt

	if p.Box().Bottom() > m.floorY {
		p.Y = m.floorY - p.Body.OffsetY - p.Body.H
		if p.VY > 0 {
			p.VY = 0
		}
	}

	onFloor := m.sensor(p.Box())
	switch {
	case onFloor && p.State == StateAirborne:
		if p.Body.H == m.short.H && p.Body.OffsetY == m.short.OffsetY {
			p.State = StateDucking
		} else {
			p.State = StateGrounded
		}
	case !onFloor && p.Grounded():
		p.State = StateAirborne
	}
}
