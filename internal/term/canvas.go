package term

import (
	"github.com/gdamore/tcell/v2"

	"cloutchase/internal/game"
)

type cell struct {
	r  rune
	fg game.RGB
}

// canvas is an off-screen character grid. Frames are composed here and
// copied to the screen in one pass.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{}
	c.resize(w, h)
	return c
}

func (c *canvas) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	if cap(c.cells) < w*h {
		c.cells = make([]cell, w*h)
	}
	c.cells = c.cells[:w*h]
	c.clear()
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

func (c *canvas) set(x, y int, r rune, fg game.RGB) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, fg: fg}
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{}
	}
	return c.cells[y*c.w+x]
}

func (c *canvas) text(x, y int, s string, fg game.RGB) {
	for _, r := range s {
		c.set(x, y, r, fg)
		x++
	}
}

// centerText writes s centred within columns [x0, x0+w).
func (c *canvas) centerText(x0, w, y int, s string, fg game.RGB) {
	n := len([]rune(s))
	c.text(x0+(w-n)/2, y, s, fg)
}

func toColor(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c *canvas) blit(s tcell.Screen) {
	bg := toColor(game.Palette.Background)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			style := tcell.StyleDefault.Background(bg).Foreground(toColor(cl.fg))
			s.SetContent(x, y, cl.r, nil, style)
		}
	}
}
