package game

import "math"

// Camera follows one entity for one viewport.
type Camera struct {
	X, Y float64 // world-space camera centre
	Zoom float64 // screen pixels per world unit
}

func NewCamera(at Vec2) Camera {
	return Camera{X: at.X, Y: at.Y, Zoom: 1}
}

// Follow eases the camera toward a target position and zoom. posK and zoomK
// are per-reference-frame smoothing factors.
func (c *Camera) Follow(target Vec2, zoom, posK, zoomK, frames float64) {
	pk := easeFactor(posK, frames)
	c.X = lerp(c.X, target.X, pk)
	c.Y = lerp(c.Y, target.Y, pk)
	c.Zoom = lerp(c.Zoom, zoom, easeFactor(zoomK, frames))
	c.Clamp()
}

func (c *Camera) Clamp() {
	c.Zoom = clampF(c.Zoom, MinZoom, MaxZoom)
}

// Viewport is a screen-space rectangle in pixels.
type Viewport struct {
	X, Y, W, H float64
}

// WorldToScreen projects a world point into the viewport.
func (c Camera) WorldToScreen(vp Viewport, p Vec2) Vec2 {
	return Vec2{
		X: vp.X + vp.W/2 + (p.X-c.X)*c.Zoom,
		Y: vp.Y + vp.H/2 + (p.Y-c.Y)*c.Zoom,
	}
}

// ScreenToWorld maps a viewport pixel back into world space.
func (c Camera) ScreenToWorld(vp Viewport, sx, sy float64) Vec2 {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	return Vec2{
		X: (sx-vp.X-vp.W/2)/z + c.X,
		Y: (sy-vp.Y-vp.H/2)/z + c.Y,
	}
}

// SnakeZoom is the zoom the snake camera settles at: it pulls out as the
// snake grows and a little more while boosting.
func SnakeZoom(lengthTarget float64, boosting bool) float64 {
	z := clampF(MaxZoom-math.Min(ZoomLengthMax, lengthTarget/ZoomLengthScale), MinZoom, MaxZoom)
	if boosting {
		z *= BoostZoomFactor
	}
	return z
}
