package game

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestRaySegmentHit(t *testing.T) {
	right := Vec2{X: 1}
	tests := []struct {
		name   string
		a, b   Vec2
		radius float64
		wantS  float64
		wantOK bool
	}{
		{"perpendicular crossing", Vec2{X: 10, Y: -5}, Vec2{X: 10, Y: 5}, 1, 10, true},
		{"segment beside ray", Vec2{X: 10, Y: 5}, Vec2{X: 10, Y: 15}, 1, 0, false},
		{"endpoint within radius", Vec2{X: 10, Y: 5}, Vec2{X: 10, Y: 15}, 6, 10, true},
		{"behind origin", Vec2{X: -10, Y: -5}, Vec2{X: -10, Y: 5}, 1, 0, false},
		{"parallel offset", Vec2{X: 5, Y: 0.5}, Vec2{X: 15, Y: 0.5}, 1, 5, true},
		{"parallel reversed", Vec2{X: 15, Y: 0.5}, Vec2{X: 5, Y: 0.5}, 1, 5, true},
		{"parallel too far", Vec2{X: 5, Y: 3}, Vec2{X: 15, Y: 3}, 1, 0, false},
		{"zero length ahead", Vec2{X: 7, Y: 0.5}, Vec2{X: 7, Y: 0.5}, 1, 7, true},
		{"zero length behind", Vec2{X: -7}, Vec2{X: -7}, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := RaySegmentHit(Vec2{}, right, tt.a, tt.b, tt.radius)
			if ok != tt.wantOK {
				t.Fatalf("hit = %v, want %v (s=%v)", ok, tt.wantOK, s)
			}
			if !ok {
				if !math.IsInf(s, 1) {
					t.Fatalf("miss returned s=%v, want +Inf", s)
				}
				return
			}
			if !approx(s, tt.wantS, 1e-9) {
				t.Fatalf("s = %v, want %v", s, tt.wantS)
			}
		})
	}
}

func TestRaySegmentHitNeverNaN(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 5000; i++ {
		origin := Vec2{X: r.RangeF(-100, 100), Y: r.RangeF(-100, 100)}
		dir := FromAngle(r.RangeF(-math.Pi, math.Pi))
		a := Vec2{X: r.RangeF(-100, 100), Y: r.RangeF(-100, 100)}
		b := a
		if i%3 != 0 {
			b = Vec2{X: r.RangeF(-100, 100), Y: r.RangeF(-100, 100)}
		}
		s, ok := RaySegmentHit(origin, dir, a, b, r.RangeF(0, 20))
		if math.IsNaN(s) {
			t.Fatalf("NaN for origin=%v dir=%v a=%v b=%v", origin, dir, a, b)
		}
		if ok && s < 0 {
			t.Fatalf("negative s=%v", s)
		}
	}
}

func TestPointSegDist(t *testing.T) {
	a, b := Vec2{}, Vec2{X: 10}
	cases := []struct {
		p    Vec2
		want float64
	}{
		{Vec2{X: 5, Y: 3}, 3},
		{Vec2{X: -4, Y: 3}, 5},
		{Vec2{X: 13, Y: 4}, 5},
	}
	for _, c := range cases {
		if got := PointSegDist(c.p, a, b); !approx(got, c.want, 1e-9) {
			t.Errorf("PointSegDist(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	if got := PointSegDist(Vec2{X: 3, Y: 4}, a, a); !approx(got, 5, 1e-9) {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestAngDiffWraps(t *testing.T) {
	if d := angDiff(3, -3); !approx(d, 2*math.Pi-6, 1e-12) {
		t.Fatalf("angDiff(3,-3) = %v", d)
	}
	if d := angDiff(0, 2.5*math.Pi); !approx(d, 0.5*math.Pi, 1e-12) {
		t.Fatalf("angDiff(0,2.5π) = %v", d)
	}
}
