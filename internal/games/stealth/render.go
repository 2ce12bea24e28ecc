package stealth

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/games/stealth/maze"
)

// Screen layout: each tile is two columns wide and one row tall, under a
// HUD line and a separator.
const (
	cellCols = 2
	hudRows  = 2
)

const (
	wallGlyph     = '█'
	hideGlyph     = '░'
	exitGlyph     = '▒'
	movingGlyph   = '▓'
	visionGlyph   = '·'
	scrollGlyph   = '§'
	guardGlyph    = 'G'
	playerGlyph   = '@'
	separatorRune = '─'
)

var guardColors = map[GuardState]core.Color{
	GuardPatrol:    core.ColorRed,
	GuardAlerted:   core.ColorYellow,
	GuardPursuing:  core.ColorBrightRed,
	GuardReturning: core.ColorOrange,
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.level == nil {
		return
	}
	if g.tooSmall {
		gw, gh := g.cfg.World.GridSize()
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", gw*cellCols, gh+hudRows))
		return
	}

	ox, oy := g.mapOrigin(dst)
	g.drawHUD(dst)
	g.drawTiles(dst, ox, oy)
	g.drawVision(dst, ox, oy)
	g.drawEntities(dst, ox, oy)

	switch {
	case g.phase == PhaseLevelComplete:
		renderOverlay(dst, fmt.Sprintf("Level %d Complete!", g.levelNum),
			"Stars: "+strings.Repeat("*", g.stars))
	case g.phase == PhaseGameOver:
		renderOverlay(dst, g.reason, "R to retry  |  Esc for menu")
	case g.paused:
		renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) mapOrigin(dst *core.Screen) (int, int) {
	gw, _ := g.cfg.World.GridSize()
	return max(0, (dst.Width()-gw*cellCols)/2), hudRows
}

// toScreen converts a pixel position to a screen cell.
func (g *Game) toScreen(px, py, ox, oy int) (int, int) {
	t := g.level.Tile
	return ox + px*cellCols/t, oy + py/t
}

func (g *Game) drawHUD(dst *core.Screen) {
	secs := g.levelTicks / max(1, g.tickRate)
	sound := "on"
	if !g.sink.Enabled() {
		sound = "off"
	}

	hud := fmt.Sprintf(" Level %d/%d  Scrolls %d  Time %02d:%02d  Stars %d  Sound %s ",
		g.levelNum, g.cfg.World.MaxLevels, len(g.level.Scrolls), secs/60, secs%60, g.totalStars, sound)
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)

	if g.player.Hidden {
		dst.DrawTextColor(dst.Width()-9, 0, " HIDDEN ", core.ColorGreen)
	}

	for x := range dst.Width() {
		dst.SetColor(x, 1, separatorRune, core.ColorDarkGray)
	}
}

func (g *Game) drawTiles(dst *core.Screen, ox, oy int) {
	lvl := g.level
	for y := range lvl.Grid.H {
		for x := range lvl.Grid.W {
			r, c := ' ', core.ColorDefault
			switch lvl.Cell(x, y) {
			case maze.Wall:
				r, c = wallGlyph, core.ColorGray
			case maze.HideSpot:
				r, c = hideGlyph, core.ColorGreen
			case maze.Exit:
				r, c = exitGlyph, core.ColorBrightYellow
			}
			for i := range cellCols {
				dst.SetColor(ox+x*cellCols+i, oy+y, r, c)
			}
		}
	}
}

// drawVision marks the floor cells each guard can currently see.
func (g *Game) drawVision(dst *core.Screen, ox, oy int) {
	lvl := g.level
	t := lvl.Tile
	half := t / cellCols

	for _, guard := range lvl.Guards {
		color := core.ColorRed
		if guard.State != GuardPatrol {
			color = core.ColorYellow
		}

		gx, gy := guard.Rect().Center()
		reach := int(guard.tuning.VisionRange)
		c0 := core.Clamp((gx-reach)/half, 0, lvl.Grid.W*cellCols-1)
		c1 := core.Clamp((gx+reach)/half, 0, lvl.Grid.W*cellCols-1)
		r0 := core.Clamp((gy-reach)/t, 0, lvl.Grid.H-1)
		r1 := core.Clamp((gy+reach)/t, 0, lvl.Grid.H-1)

		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				if lvl.Cell(col/cellCols, row) != maze.Empty {
					continue
				}
				px, py := col*half+half/2, row*t+t/2
				if guard.Sees(lvl, px, py) {
					dst.SetColor(ox+col, oy+row, visionGlyph, color)
				}
			}
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen, ox, oy int) {
	lvl := g.level

	for _, m := range lvl.Moving {
		x, y := g.toScreen(m.Rect().X, m.Rect().Y, ox, oy)
		for i := range cellCols {
			dst.SetColor(x+i, y, movingGlyph, core.ColorOrange)
		}
	}

	for _, s := range lvl.Scrolls {
		cx, cy := s.Rect().Center()
		x, y := g.toScreen(cx, cy, ox, oy)
		dst.SetColor(x, y, scrollGlyph, core.ColorBrightYellow)
	}

	for _, guard := range lvl.Guards {
		cx, cy := guard.Rect().Center()
		x, y := g.toScreen(cx, cy, ox, oy)
		dst.SetColor(x, y, guardGlyph, guardColors[guard.State])
	}

	p := g.player
	color := core.ColorCyan
	switch {
	case p.Hidden:
		color = core.ColorDarkGray
	case p.Crouching:
		color = core.ColorBlue
	}
	cx, cy := p.Rect().Center()
	x, y := g.toScreen(cx, cy, ox, oy)
	dst.SetColor(x, y, playerGlyph, color)
}

// renderOverlay draws a bordered two-line message box in the middle of the screen.
func renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorGray)
}
