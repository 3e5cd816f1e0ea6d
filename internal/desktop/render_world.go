//go:build !android

package desktop

import (
	"math"

	"cloutchase/internal/game"
)

const (
	starCount   = 250
	gridSpacing = 60.0
	edgeStep    = 8.0
)

var (
	starColor  = game.RGB{R: 180, G: 200, B: 255}
	white      = game.RGB{R: 255, G: 255, B: 255}
	black      = game.RGB{}
	pupilColor = game.RGB{R: 0x0b, G: 0x10, B: 0x24}
	dividerRGB = game.RGB{R: 25, G: 25, B: 27} // 6% white over the background
)

type star struct {
	x, y, r, a float64
}

// scene holds per-window render state: decorative stars and reusable sprite
// buffers. Buffers are cleared and refilled for every viewport.
type scene struct {
	stars []star

	glowBuf   []float32
	spriteBuf []float32
	chaserBuf []float32
	arrowBuf  []float32
}

func newScene(seed uint64, radius float64) *scene {
	rng := game.NewRand(seed ^ 0x57A125)
	sc := &scene{stars: make([]star, starCount)}
	for i := range sc.stars {
		sc.stars[i] = star{
			x: rng.RangeF(-radius*2, radius*2),
			y: rng.RangeF(-radius*2, radius*2),
			r: rng.RangeF(0.6, 1.8),
			a: rng.RangeF(0.25, 0.7),
		}
	}
	return sc
}

func pushSprite(buf []float32, x, y, size float64, c game.RGB, a, rot float64) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(a),
		float32(rot),
	)
}

func mixRGB(a, b game.RGB, t float64) game.RGB {
	t = math.Max(0, math.Min(1, t))
	return game.RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func inRect(r game.RectF, x, y, pad float64) bool {
	return x >= r.X0-pad && x <= r.X1+pad && y >= r.Y0-pad && y <= r.Y1+pad
}

// drawView renders one player's pane. The role picks the camera and the
// enemy indicator; nothing else differs between the panes.
func (sc *scene) drawView(r *Renderer, snap *game.Snapshot, role game.Role, vp game.Viewport, fbH int) {
	view := snap.View(role)
	cam := view.Camera
	visible := cam.VisibleRect(vp.W, vp.H, 8)

	r.BeginViewport(vp, fbH)
	defer r.EndViewport()

	sc.drawBackground(r, snap.WorldRadius, cam, visible)
	sc.drawFoods(r, snap, cam, visible)
	sc.drawSnake(r, snap, cam, visible)
	sc.drawChaser(r, snap, cam)

	ind := view.Indicator
	sc.arrowBuf = pushSprite(sc.arrowBuf[:0], ind.X, ind.Y, 2*ind.Size/0.78, ind.Color, 0.95, ind.Angle)
	r.DrawArrows(sc.arrowBuf, cam)

	if snap.Outcome != game.InProgress {
		sc.drawOutcome(r, snap, cam)
	}
}

func (sc *scene) drawBackground(r *Renderer, radius float64, cam game.Camera, visible game.RectF) {
	buf := sc.spriteBuf[:0]
	for _, s := range sc.stars {
		if inRect(visible, s.x, s.y, s.r) {
			buf = pushSprite(buf, s.x, s.y, 2*s.r, starColor, s.a, 0)
		}
	}

	// Grid dots inside the arena.
	x0 := math.Floor(math.Max(visible.X0, -radius)/gridSpacing) * gridSpacing
	y0 := math.Floor(math.Max(visible.Y0, -radius)/gridSpacing) * gridSpacing
	x1 := math.Min(visible.X1, radius)
	y1 := math.Min(visible.Y1, radius)
	for y := y0; y <= y1; y += gridSpacing {
		for x := x0; x <= x1; x += gridSpacing {
			if x*x+y*y <= radius*radius {
				buf = pushSprite(buf, x, y, 2.5, game.Palette.Grid, 0.35, 0)
			}
		}
	}

	// Arena edge: only the visible arc.
	glow := sc.glowBuf[:0]
	steps := int(2 * math.Pi * radius / edgeStep)
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		x, y := math.Cos(a)*radius, math.Sin(a)*radius
		if !inRect(visible, x, y, 30) {
			continue
		}
		buf = pushSprite(buf, x, y, 4, game.Palette.Edge, 0.4, 0)
		if i%5 == 0 {
			glow = pushSprite(glow, x, y, 60, game.Palette.Edge, 0.05, 0)
		}
	}
	sc.glowBuf = glow
	sc.spriteBuf = buf
	r.DrawGlowSprites(glow, cam)
	r.DrawSprites(buf, cam)
}

func (sc *scene) drawFoods(r *Renderer, snap *game.Snapshot, cam game.Camera, visible game.RectF) {
	glow := sc.glowBuf[:0]
	buf := sc.spriteBuf[:0]
	for _, f := range snap.VisibleFoods(visible) {
		c := game.FoodColors[f.Color]
		// Fresh pellets fade in over half a second.
		a := math.Min(1, f.Age/0.5+0.2)
		glow = pushSprite(glow, f.X, f.Y, f.Radius*7, c, 0.8*a, 0)
		buf = pushSprite(buf, f.X, f.Y, f.Radius*2, c, a, 0)
	}
	sc.glowBuf, sc.spriteBuf = glow, buf
	r.DrawGlowSprites(glow, cam)
	r.DrawSprites(buf, cam)
}

func (sc *scene) drawSnake(r *Renderer, snap *game.Snapshot, cam game.Camera, visible game.RectF) {
	s := snap.Snake
	if len(s.Points) == 0 {
		return
	}
	rad := s.Radius
	glow := sc.glowBuf[:0]
	buf := sc.spriteBuf[:0]
	// Tail first so the head ends up on top.
	for i := len(s.Points) - 1; i >= 0; i-- {
		p := s.Points[i]
		if !inRect(visible, p.X, p.Y, rad*2) {
			continue
		}
		if i%3 == 0 {
			glow = pushSprite(glow, p.X, p.Y, rad*3.2, s.Color, 0.12, 0)
		}
		c := mixRGB(s.Color, white, math.Exp(-float64(i)/6)*0.8)
		buf = pushSprite(buf, p.X, p.Y, rad*2, c, 1, 0)
	}

	head := s.Points[0]
	fwd := game.FromAngle(s.Heading)
	side := game.Vec2{X: -fwd.Y, Y: fwd.X}
	buf = pushSprite(buf, head.X, head.Y, (rad+1.5)*2, white, 0.35, 0)
	for _, k := range []float64{-1, 1} {
		eye := head.Pos().Add(fwd.Scale(4.5)).Add(side.Scale(3.2 * k))
		buf = pushSprite(buf, eye.X, eye.Y, 5.2, white, 1, 0)
		pupil := head.Pos().Add(fwd.Scale(5.3)).Add(side.Scale(3.2 * k))
		buf = pushSprite(buf, pupil.X, pupil.Y, 2.6, pupilColor, 1, 0)
	}
	if s.Boosting {
		glow = pushSprite(glow, head.X, head.Y, rad*8, s.Color, 0.35, 0)
	}
	sc.glowBuf, sc.spriteBuf = glow, buf
	r.DrawGlowSprites(glow, cam)
	r.DrawSprites(buf, cam)
}

func (sc *scene) drawChaser(r *Renderer, snap *game.Snapshot, cam game.Camera) {
	c := snap.Chaser
	sc.glowBuf = pushSprite(sc.glowBuf[:0], c.X, c.Y, c.Radius*5, game.Palette.Chaser, 0.55, 0)
	r.DrawGlowSprites(sc.glowBuf, cam)
	sc.chaserBuf = pushSprite(sc.chaserBuf[:0], c.X, c.Y, c.Radius*2, game.Palette.Chaser, 1, c.Heading)
	r.DrawChaser(sc.chaserBuf, cam, c.Mouth())
}

// drawOutcome darkens the pane as the round result fades in and puts a
// pulsing emblem in the winner's colour at the pane centre.
func (sc *scene) drawOutcome(r *Renderer, snap *game.Snapshot, cam game.Camera) {
	t := snap.Fade
	r.DrawOverlay(0.25+0.35*t, 0.6*t, black)

	winner := game.Palette.Snake
	if snap.Outcome == game.ChaserWins {
		winner = game.Palette.Chaser
	}
	pulse := 1 + 0.08*math.Sin(snap.OutcomeTimer*6)
	size := 140 / cam.Zoom * pulse
	sc.glowBuf = pushSprite(sc.glowBuf[:0], cam.X, cam.Y, size*2.2, winner, 0.6*t, 0)
	r.DrawGlowSprites(sc.glowBuf, cam)
	sc.spriteBuf = pushSprite(sc.spriteBuf[:0], cam.X, cam.Y, size*0.5, winner, 0.9*t, 0)
	r.DrawSprites(sc.spriteBuf, cam)
}

// splitViewports divides the framebuffer into the snake pane (left) and the
// chaser pane (right).
func splitViewports(fbW, fbH int) (snake, chaser game.Viewport) {
	half := float64(fbW / 2)
	snake = game.Viewport{X: 0, Y: 0, W: half, H: float64(fbH)}
	chaser = game.Viewport{X: half, Y: 0, W: float64(fbW) - half, H: float64(fbH)}
	return snake, chaser
}
