package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Cloud sprite size in world pixels.
const (
	cloudWidth  = 92
	cloudHeight = 27
)

// Cloud is a decorative background element. Clouds are a fixed pool that
// wraps around instead of being destroyed.
type Cloud struct {
	X, Y float64
}

// Box returns the cloud's bounds.
func (c Cloud) Box() core.Box {
	return core.NewBox(c.X, c.Y, cloudWidth, cloudHeight)
}

// WorldScroller moves ground, obstacles and clouds leftwards.
type WorldScroller struct {
	cfg          config.WorldConfig
	groundOffset float64
	clouds       []Cloud
}

// NewWorldScroller places the cloud pool at its starting positions.
func NewWorldScroller(cfg config.WorldConfig) *WorldScroller {
	w, h := cfg.Width, cfg.Height
	return &WorldScroller{
		cfg: cfg,
		clouds: []Cloud{
			{X: w * 0.5, Y: h * 0.5},
			{X: w - 80, Y: h * 0.25},
			{X: w * 0.3, Y: 100},
		},
	}
}

// GroundOffset returns the accumulated ground texture offset.
func (ws *WorldScroller) GroundOffset() float64 {
	return ws.groundOffset
}

// Clouds returns a copy of the cloud pool.
func (ws *WorldScroller) Clouds() []Cloud {
	out := make([]Cloud, len(ws.clouds))
	copy(out, ws.clouds)
	return out
}

// Step returns the world distance covered in deltaMs at the given multiplier.
func (ws *WorldScroller) Step(deltaMs, speedMultiplier float64) float64 {
	return ws.cfg.BaseSpeed * speedMultiplier * (deltaMs / ws.cfg.StepMs)
}

// Update advances the ground, moves every obstacle in set left by the same
// distance and drifts clouds at their own fixed rate. It returns the IDs of
// obstacles culled past the left boundary. set may be nil.
func (ws *WorldScroller) Update(deltaMs, speedMultiplier float64, set *ObstacleSet) []int {
	dx := ws.Step(deltaMs, speedMultiplier)
	ws.groundOffset += dx

	cloudDx := ws.cfg.CloudSpeed * (deltaMs / ws.cfg.StepMs)
	for i := range ws.clouds {
		c := &ws.clouds[i]
		c.X -= cloudDx
		if c.Box().Right() < 0 {
			c.X = ws.cfg.Width + ws.cfg.CloudWrapOffset
		}
	}

	if set == nil {
		return nil
	}
	set.Each(func(o *Obstacle) {
		o.X -= dx
	})
	return set.Cull()
}
