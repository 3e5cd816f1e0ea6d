package game

import (
	"math"
	"testing"
	"time"
)

func TestSnakeZoom(t *testing.T) {
	cases := []struct {
		length float64
		boost  bool
		want   float64
	}{
		{0, false, MaxZoom},
		{1200, false, 0.6},
		{10000, false, 0.6},
		{10000, true, 0.6 * BoostZoomFactor},
	}
	for _, c := range cases {
		if got := SnakeZoom(c.length, c.boost); !approx(got, c.want, 1e-12) {
			t.Errorf("SnakeZoom(%v, %v) = %v, want %v", c.length, c.boost, got, c.want)
		}
	}
}

func TestCameraFollowConverges(t *testing.T) {
	c := NewCamera(Vec2{})
	target := Vec2{X: 300, Y: -200}
	for i := 0; i < 600; i++ {
		c.Follow(target, 0.7, CameraLerp, CameraLerp, 1)
	}
	if !approx(c.X, target.X, 1e-6) || !approx(c.Y, target.Y, 1e-6) || !approx(c.Zoom, 0.7, 1e-6) {
		t.Fatalf("camera = %+v, want centred on %v at zoom 0.7", c, target)
	}

	c.Follow(target, 5, 1, 1, 1)
	if c.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want clamp at %v", c.Zoom, MaxZoom)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := Camera{X: 120, Y: -40, Zoom: 0.8}
	vp := Viewport{X: 640, Y: 0, W: 640, H: 720}
	p := Vec2{X: 250, Y: 10}
	s := c.WorldToScreen(vp, p)
	back := c.ScreenToWorld(vp, s.X, s.Y)
	if !approx(back.X, p.X, 1e-9) || !approx(back.Y, p.Y, 1e-9) {
		t.Fatalf("round trip %v -> %v -> %v", p, s, back)
	}
	centre := c.WorldToScreen(vp, Vec2{X: c.X, Y: c.Y})
	if centre.X != vp.X+vp.W/2 || centre.Y != vp.Y+vp.H/2 {
		t.Fatalf("camera centre maps to %v", centre)
	}
}

func TestViewIndicatorPointsAtOpponent(t *testing.T) {
	snap := Snapshot{
		Snake:  SnakeState{Points: []PathPoint{{X: 0, Y: 0}}, Radius: 6},
		Chaser: ChaserState{X: 0, Y: 100, Radius: ChaserRadius},
	}
	v := snap.View(RoleSnake)
	if !approx(v.Indicator.Angle, math.Pi/2, 1e-12) || !approx(v.Indicator.Y, 6+IndicatorPadding, 1e-9) {
		t.Fatalf("snake indicator = %+v", v.Indicator)
	}
	if v.Indicator.Size != 10 || v.Indicator.Color != Palette.SnakeArrow {
		t.Fatalf("snake indicator style = %+v", v.Indicator)
	}

	v = snap.View(RoleChaser)
	if !approx(v.Indicator.Angle, -math.Pi/2, 1e-12) || !approx(v.Indicator.Y, 100-ChaserRadius-IndicatorPadding, 1e-9) {
		t.Fatalf("chaser indicator = %+v", v.Indicator)
	}
	if v.Role != RoleChaser || v.Indicator.Color != Palette.ChaserArrow {
		t.Fatalf("chaser view = %+v", v)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSession(DefaultConfig())
	snap := s.Snapshot()
	head := snap.Snake.Head()
	food := snap.Foods[0]
	for i := 0; i < 30; i++ {
		s.Step(Input{}, tick)
	}
	s.World.Foods[0].X += 50
	if snap.Snake.Head() != head || snap.Foods[0] != food {
		t.Fatalf("snapshot changed with the session")
	}
}

func TestFrameClock(t *testing.T) {
	var fc FrameClock
	t0 := time.Unix(100, 0)
	if dt := fc.Tick(t0); dt != 0 {
		t.Fatalf("first tick = %v", dt)
	}
	if dt := fc.Tick(t0.Add(10 * time.Millisecond)); !approx(dt, 0.01, 1e-12) {
		t.Fatalf("dt = %v, want 0.01", dt)
	}
	if dt := fc.Tick(t0.Add(2 * time.Second)); dt != MaxFrameDelta {
		t.Fatalf("dt = %v, want clamp at %v", dt, MaxFrameDelta)
	}
	if dt := ClampDelta(-1); dt != 0 {
		t.Fatalf("negative dt = %v", dt)
	}
}
