// Package tui provides the Bubble Tea host for the runner.
// It handles the terminal UI loop, input mapping, the scoreboard view and
// SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps the time fed to the game in one tick, so a stalled terminal
// does not produce one huge physics step.
const maxFrame = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameClock turns tick timestamps into frame durations.
type frameClock struct {
	last     time.Time
	fallback time.Duration
}

func newFrameClock(tickRate int) frameClock {
	return frameClock{fallback: tickInterval(tickRate)}
}

// Advance returns the time elapsed since the previous tick, clamped to
// (0, maxFrame]. The first tick uses the nominal interval.
func (c *frameClock) Advance(now time.Time) time.Duration {
	dt := c.fallback
	if !c.last.IsZero() {
		dt = now.Sub(c.last)
	}
	c.last = now

	if dt <= 0 {
		dt = c.fallback
	}
	if dt > maxFrame {
		dt = maxFrame
	}
	return dt
}
