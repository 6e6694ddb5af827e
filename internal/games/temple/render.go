package temple

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/temple-run/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody    = '█'
	PlayerHead    = '◉'
	PlatformChar  = '▀'
	SpikeChar     = '▲'
	FireChar      = '▓'
	FruitChar     = '●'
	EnemyChar     = '◆'
	GroundTopChar = '═'
	GroundChar    = '░'
	HeartFull     = '♥'
	HeartEmpty    = '♡'
)

// hudRows is the number of screen rows reserved above the play field.
const hudRows = 1

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / g.cfg.World.Width,
		sy: float64(dst.Height()-hudRows) / g.cfg.World.Height,
	}
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := r.Scale(v.sx, v.sy)
	dst.FillRect(x, y+hudRows, w, h, ch, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	v := g.viewport(dst)

	g.drawGround(dst, v, snap)

	switch snap.Phase {
	case PhaseMenu:
		g.drawMenu(dst)
	case PhasePlaying:
		g.drawWorld(dst, v, snap)
		g.drawHUD(dst, snap)
		if snap.Paused {
			drawCenteredMessage(dst, []string{"PAUSED", "", "Press P to resume"})
		}
	case PhaseGameOver:
		g.drawWorld(dst, v, snap)
		g.drawHUD(dst, snap)
		drawCenteredMessage(dst, []string{
			"THE TEMPLE CLAIMS YOU",
			"",
			fmt.Sprintf("Final score: %d", snap.Score),
			fmt.Sprintf("Highest level: %d", snap.PeakLevel),
			"",
			"Press Space or Enter to return",
		})
	}
}

func (g *Game) drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	groundRow := int(math.Floor(snap.GroundY*v.sy)) + hudRows
	dst.DrawHLine(0, groundRow, dst.Width(), GroundTopChar, core.ColorBrown)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGray)
	}
}

func (g *Game) drawWorld(dst *core.Screen, v viewport, snap Snapshot) {
	for _, p := range snap.Platforms {
		v.fill(dst, p, PlatformChar, core.ColorGray)
	}

	for _, o := range snap.Obstacles {
		switch o.Kind {
		case ObstacleSpike:
			v.fill(dst, o.Rect, SpikeChar, core.ColorBrightWhite)
		case ObstacleFire:
			v.fill(dst, o.Rect, FireChar, core.ColorOrange)
		}
	}

	for _, f := range snap.Fruits {
		r := f.Rect
		r.Y += math.Sin(f.Bob) * 5
		v.fill(dst, r, FruitChar, core.ColorBrightRed)
	}

	for _, e := range snap.Enemies {
		v.fill(dst, e, EnemyChar, core.ColorMagenta)
	}

	g.drawPlayer(dst, v, snap)
}

// drawPlayer renders the runner, tinted while blinking after a hit.
func (g *Game) drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	body := core.ColorBrown
	if snap.Flashing {
		body = core.ColorCyan
	}

	x, y, w, h := snap.Player.Scale(v.sx, v.sy)
	y += hudRows
	dst.FillRect(x, y, w, h, PlayerBody, body)
	dst.SetColored(x+w/2, y, PlayerHead, core.ColorBrightYellow)
}

// drawHUD renders hearts, score and level on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hearts := strings.Repeat(string(HeartFull), snap.Health) +
		strings.Repeat(string(HeartEmpty), core.Max(0, snap.MaxHealth-snap.Health))
	dst.DrawTextColored(1, 0, hearts, core.ColorRed)

	right := fmt.Sprintf(" Score: %d  Level: %d  Spd: %.1f ", snap.Score, snap.Level, snap.Speed)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorBrightWhite)
}

func (g *Game) drawMenu(dst *core.Screen) {
	drawCenteredMessage(dst, []string{
		"T E M P L E   R U N",
		"",
		"Left/Right or A/D  run",
		"Space              jump, double jump",
		"P                  pause",
		"",
		"Collect fruit, avoid spikes, fire and bats",
		"",
		fmt.Sprintf("Difficulty: %s", g.preset),
		"Press Space or Enter to begin",
	})
}

// drawCenteredMessage draws a boxed block of lines in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorYellow)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}
