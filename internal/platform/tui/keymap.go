package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Jump       key.Binding
	Duck       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Pause, k.Restart, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck, k.Pause, k.Restart},
		{k.Scores, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down", "duck"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Screenshot and Scores are host keys and map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Duck):
		return core.ActionDuck
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Duck hold windows. Terminals report no key-up, only auto-repeat; the
// first repeat arrives after the OS repeat delay, later ones much faster.
const (
	duckFirstHold  = 500 * time.Millisecond
	duckRepeatHold = 150 * time.Millisecond
)

// DuckHold synthesises DuckRelease from key repeats: the key counts as held
// until no repeat has arrived for the hold window.
type DuckHold struct {
	held     bool
	repeated bool
	idle     time.Duration
}

// Press records a duck key event. It returns true on the initial press,
// false for auto-repeats of a key already held.
func (d *DuckHold) Press() bool {
	d.idle = 0
	if d.held {
		d.repeated = true
		return false
	}
	d.held = true
	d.repeated = false
	return true
}

// Tick advances the hold timer and returns true when the key is considered
// released.
func (d *DuckHold) Tick(dt time.Duration) bool {
	if !d.held {
		return false
	}
	d.idle += dt

	window := duckFirstHold
	if d.repeated {
		window = duckRepeatHold
	}
	if d.idle < window {
		return false
	}
	d.held = false
	d.repeated = false
	d.idle = 0
	return true
}

// Held reports whether the duck key is considered down.
func (d *DuckHold) Held() bool {
	return d.held
}
