package tui

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the frame-driven contract the host drives. *dino.Game implements it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(dt time.Duration, in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}
