package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoDead   = '✕'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	BirdWing   = '▼'
	BirdBody   = '≈'
	CloudChar  = '░'
	GroundChar = '═'
	GroundBump = '╧'
)

// viewport maps world pixels to screen cells. Row 0 is the HUD; the floor
// line sits on the last row.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, world core.Box) viewport {
	h := dst.Height()
	rows := float64(core.Max(h-2, 1))
	return viewport{
		sx: float64(dst.Width()) / world.W,
		sy: rows / world.H,
		w:  dst.Width(),
		h:  h,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y*v.sy))
}

// rect converts a world box to a cell rectangle at least one cell in size.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := v.col(b.X)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := v.row(b.Y)
	y1 := 1 + int(math.Round(b.Bottom()*v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	s := g.session
	vp := newViewport(dst, s.World())

	if s.CosmeticsVisible() {
		for _, c := range s.Clouds() {
			dst.DrawRect(vp.rect(c.Box()), CloudChar, core.ColorDarkGray)
		}
	}

	g.drawGround(dst, vp)

	for _, o := range s.Obstacles() {
		g.drawObstacle(dst, vp, o)
	}

	g.drawDino(dst, vp)
	g.drawHUD(dst)

	switch {
	case s.Phase() == PhaseIntro:
		dst.DrawTextColored(2, vp.h/2, "Press SPACE to jump and start the run", core.ColorGray)
	case s.Phase() == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.LastScore()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawGround(dst *core.Screen, vp viewport) {
	y := vp.h - 1
	width := core.Clamp(int(math.Ceil(g.session.GroundWidth()*vp.sx)), 1, vp.w)
	shift := int(g.session.GroundOffset() * vp.sx)
	for x := 0; x < width; x++ {
		r := GroundChar
		if (x+shift)%11 == 0 {
			r = GroundBump
		}
		dst.SetColored(x, y, r, core.ColorGray)
	}
}

func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	r := vp.rect(o.Box())
	if !o.Kind.IsBird() {
		dst.DrawRect(r, CactusChar, core.ColorGreen)
		return
	}
	dst.DrawRect(r, BirdBody, core.ColorYellow)
	// Wings flap every 150ms
	wingRow := r.Y
	if int(g.animMs/150)%2 == 1 {
		wingRow = r.Bottom() - 1
	}
	dst.DrawHLine(r.X, wingRow, r.W, BirdWing, core.ColorYellow)
}

// drawDino renders the player's collision box as a small dino.
func (g *Game) drawDino(dst *core.Screen, vp viewport) {
	p := g.session.Player()
	r := vp.rect(p.Box())
	color := core.ColorBrightWhite
	if p.State == StateDead {
		color = core.ColorRed
	}

	dst.DrawRect(r, DinoBody, color)

	head := DinoHead
	if p.State == StateDead {
		head = DinoDead
	}
	dst.SetColored(r.Right()-1, r.Y, head, color)

	if r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	switch {
	case p.State == StateAirborne:
		dst.SetColored(r.X, legs, DinoLeg1, color)
		dst.SetColored(r.X+1, legs, DinoLeg2, color)
	case p.Grounded() && int(g.animMs/100)%2 == 0:
		dst.SetColored(r.X, legs, DinoLeg1, color)
		dst.SetColored(r.Right()-1, legs, DinoLeg2, color)
	case p.Grounded():
		dst.SetColored(r.X, legs, DinoLeg2, color)
		dst.SetColored(r.Right()-1, legs, DinoLeg1, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	if !s.CosmeticsVisible() && s.HighScore() == 0 {
		return
	}

	hi := HighScoreLabel(s.HighScore())
	score := FormatScore(s.Score())
	if s.Phase() == PhaseGameOver {
		score = FormatScore(s.LastScore())
	}
	text := hi + "  " + score
	x := dst.Width() - len(text) - 2
	dst.DrawTextColored(x, 0, hi, core.ColorGray)

	// Blink the score four times after a milestone
	if g.pulseMs > 0 && int(g.pulseMs/100)%2 == 1 {
		score = "     "
	}
	dst.DrawTextColored(x+len(hi)+2, 0, score, core.ColorWhite)

	if s.Phase() == PhaseRunning {
		dst.DrawTextColored(2, 0, fmt.Sprintf("x%.1f", s.SpeedMultiplier()), core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
