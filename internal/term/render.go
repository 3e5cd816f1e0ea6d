package term

import (
	"fmt"
	"math"

	"cloutchase/internal/game"
)

// Each column covers cellPx virtual pixels and each row twice that, since
// terminal cells are roughly twice as tall as wide.
const (
	cellPx     = 10.0
	cellAspect = 2.0
)

var (
	dimText   = game.RGB{R: 150, G: 150, B: 165}
	brightTxt = game.RGB{R: 255, G: 255, B: 255}
	divider   = game.RGB{R: 60, G: 60, B: 70}
)

// pane is a rectangle of terminal cells showing one player's view.
type pane struct {
	col0, cols, rows int
}

func (p pane) viewport() game.Viewport {
	return game.Viewport{
		X: float64(p.col0) * cellPx,
		W: float64(p.cols) * cellPx,
		H: float64(p.rows) * cellPx * cellAspect,
	}
}

// toCell maps a world point to a cell. ok is false outside the pane.
func (p pane) toCell(cam game.Camera, w game.Vec2) (int, int, bool) {
	s := cam.WorldToScreen(p.viewport(), w)
	x := int(math.Floor(s.X / cellPx))
	y := int(math.Floor(s.Y / (cellPx * cellAspect)))
	ok := x >= p.col0 && x < p.col0+p.cols && y >= 0 && y < p.rows
	return x, y, ok
}

// cellCenter is the world point at the centre of cell (x, y).
func (p pane) cellCenter(cam game.Camera, x, y int) game.Vec2 {
	return cam.ScreenToWorld(p.viewport(), (float64(x)+0.5)*cellPx, (float64(y)+0.5)*cellPx*cellAspect)
}

// splitPanes divides the terminal into two panes above a status line, with
// a one-column divider between them.
func splitPanes(w, h int) (snake, chaser pane, divCol int) {
	rows := h - 1
	if rows < 0 {
		rows = 0
	}
	half := (w - 1) / 2
	if half < 0 {
		half = 0
	}
	snake = pane{col0: 0, cols: half, rows: rows}
	divCol = half
	chaser = pane{col0: half + 1, cols: w - half - 1, rows: rows}
	if chaser.cols < 0 {
		chaser.cols = 0
	}
	return snake, chaser, divCol
}

// drawFrame composes the whole terminal frame.
func drawFrame(c *canvas, snap *game.Snapshot) {
	c.clear()
	sp, cp, div := splitPanes(c.w, c.h)
	drawPane(c, snap, game.RoleSnake, sp)
	drawPane(c, snap, game.RoleChaser, cp)
	for y := 0; y < sp.rows; y++ {
		c.set(div, y, '│', divider)
	}
	drawStatus(c, snap)
}

func drawPane(c *canvas, snap *game.Snapshot, role game.Role, p pane) {
	if p.cols <= 0 || p.rows <= 0 {
		return
	}
	view := snap.View(role)
	cam := view.Camera

	drawArena(c, snap.WorldRadius, cam, p)

	vp := p.viewport()
	for _, f := range snap.VisibleFoods(cam.VisibleRect(vp.W, vp.H, 0)) {
		if x, y, ok := p.toCell(cam, f.Pos()); ok {
			r := '·'
			if f.Radius >= 5 {
				r = '•'
			}
			c.set(x, y, r, game.FoodColors[f.Color])
		}
	}

	s := snap.Snake
	for i := len(s.Points) - 1; i >= 1; i-- {
		if x, y, ok := p.toCell(cam, s.Points[i].Pos()); ok {
			c.set(x, y, 'o', s.Color)
		}
	}
	if x, y, ok := p.toCell(cam, s.Head()); ok {
		c.set(x, y, '@', brightTxt)
	}

	ch := snap.Chaser
	if x, y, ok := p.toCell(cam, ch.Pos()); ok {
		c.set(x, y, chaserGlyph(ch.Heading, ch.Mouth()), game.Palette.Chaser)
	}

	ind := view.Indicator
	if x, y, ok := p.toCell(cam, game.Vec2{X: ind.X, Y: ind.Y}); ok {
		if c.at(x, y).r == ' ' {
			c.set(x, y, arrowGlyph(ind.Angle), ind.Color)
		}
	}

	if snap.Outcome != game.InProgress && snap.Fade > 0 {
		drawOutcome(c, snap, p)
	}
}

// drawArena marks the arena edge and a sparse grid, cell by cell.
func drawArena(c *canvas, radius float64, cam game.Camera, p pane) {
	cellWorld := cellPx / cam.Zoom
	for y := 0; y < p.rows; y++ {
		for x := p.col0; x < p.col0+p.cols; x++ {
			w := p.cellCenter(cam, x, y)
			d := w.Len()
			switch {
			case math.Abs(d-radius) <= cellWorld*0.75:
				c.set(x, y, '░', game.Palette.Edge)
			case d < radius && onGrid(w, cellWorld):
				c.set(x, y, '.', game.Palette.Grid)
			}
		}
	}
}

// onGrid reports whether a cell of the given world width contains a grid
// intersection.
func onGrid(w game.Vec2, cellWorld float64) bool {
	const spacing = 60.0
	gx := math.Abs(math.Remainder(w.X, spacing))
	gy := math.Abs(math.Remainder(w.Y, spacing))
	return gx < cellWorld/2 && gy < cellWorld*cellAspect/2
}

// chaserGlyph picks a character whose opening faces the heading.
func chaserGlyph(heading, mouth float64) rune {
	if mouth < 0.2 {
		return 'O'
	}
	// Screen y grows downward, so a heading of +π/2 faces down.
	switch ((octant(heading) + 1) % 8) / 2 {
	case 0:
		return 'C'
	case 1:
		return 'n'
	case 2:
		return 'Ↄ'
	default:
		return 'U'
	}
}

// arrowGlyph points along angle in screen space (y down).
func arrowGlyph(angle float64) rune {
	return [...]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}[octant(angle)]
}

// octant rounds an angle to one of eight compass sectors, 0 = +X, counted
// toward +Y.
func octant(angle float64) int {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return int(math.Round(a/(math.Pi/4))) % 8
}

func drawOutcome(c *canvas, snap *game.Snapshot, p pane) {
	title, col := "SNAKE WINS", game.Palette.Snake
	if snap.Outcome == game.ChaserWins {
		title, col = "PACMAN WINS", game.Palette.Chaser
	}
	mid := p.rows / 2
	c.centerText(p.col0, p.cols, mid-1, title, col)
	c.centerText(p.col0, p.cols, mid+1, "Press R to restart", dimText)
}

func drawStatus(c *canvas, snap *game.Snapshot) {
	if c.h <= 0 {
		return
	}
	line := fmt.Sprintf(" score %d  length %d  %s  |  snake: A/D turn W/S speed SPACE boost  chaser: arrows  |  R restart  Esc quit",
		snap.Score, snap.Length, snap.Outcome)
	c.text(0, c.h-1, line, dimText)
}
