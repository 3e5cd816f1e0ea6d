package game

import "math"

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }

func (v Vec2) Dist2(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

func (v Vec2) Dist(o Vec2) float64 { return math.Sqrt(v.Dist2(o)) }

// FromAngle returns the unit vector pointing along angle a.
func FromAngle(a float64) Vec2 { return Vec2{X: math.Cos(a), Y: math.Sin(a)} }

// Normalize returns the unit vector of v, or the zero vector when v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// parallelEpsilon is the determinant below which the ray and segment are
// treated as parallel (or the segment as a point).
const parallelEpsilon = 1e-6

// RaySegmentHit returns the smallest ray parameter s >= 0 at which the ray
// origin+s*dir passes within radius of segment [a, b]. dir must be a unit
// vector. A miss returns (+Inf, false).
func RaySegmentHit(origin, dir, a, b Vec2, radius float64) (float64, bool) {
	e := b.Sub(a)
	r0 := origin.Sub(a)

	// A = dir·dir = 1 for a unit direction.
	bb := dir.Dot(e)
	c := e.Dot(e)
	d := dir.Dot(r0)
	ee := e.Dot(r0)
	denom := c - bb*bb

	var s, t float64
	if denom > parallelEpsilon {
		s = (bb*ee - c*d) / denom
		t = (ee - bb*d) / denom
		if t < 0 || t > 1 || s < 0 {
			// Fix the violated parameter at its bound and re-solve the other.
			t = clampF(t, 0, 1)
			s = math.Max(0, t*bb-d)
			t = clampF((ee+s*bb)/c, 0, 1)
		}
	} else {
		// Parallel or zero-length: project the endpoints onto the ray.
		sa := a.Sub(origin).Dot(dir)
		sb := b.Sub(origin).Dot(dir)
		s = math.Max(0, math.Min(sa, sb))
		p := origin.Add(dir.Scale(s))
		den := c
		if den == 0 {
			den = 1
		}
		t = clampF(p.Sub(a).Dot(e)/den, 0, 1)
	}

	q := origin.Add(dir.Scale(s))
	cp := a.Add(e.Scale(t))
	if q.Dist2(cp) <= radius*radius {
		return s, true
	}
	return math.Inf(1), false
}

// PointSegDist returns the distance from p to segment [a, b].
func PointSegDist(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den <= 1e-9 {
		return p.Dist(a)
	}
	t := clampF(p.Sub(a).Dot(ab)/den, 0, 1)
	return p.Dist(a.Add(ab.Scale(t)))
}
