package game

import "math"

// encircleThreshold is the number of blocked rays needed to call the chaser
// surrounded.
var encircleThreshold = int(math.Ceil(EncircleRays * EncircleFraction))

var encircleDirs = func() [EncircleRays]Vec2 {
	var dirs [EncircleRays]Vec2
	for k := range dirs {
		dirs[k] = FromAngle(float64(k) / EncircleRays * 2 * math.Pi)
	}
	return dirs
}()

// IsEncircled reports whether the body surrounds p. It casts EncircleRays
// rays from p and counts the ones blocked by the body within
// EncircleMaxDist; p is surrounded when at least EncircleFraction of them
// are blocked.
//
// This is an approximation rather than an exact point-in-polygon test: only
// every other segment is sampled and a few rays may slip through gaps in a
// closed loop, which the fraction tolerates.
func IsEncircled(p Vec2, body *Path, thickness, lengthTarget float64) bool {
	if lengthTarget < EncircleMinLength || body.Len() < 3 {
		return false
	}
	blocked := 0
	for k, dir := range encircleDirs {
		if rayBlocked(p, dir, body, thickness) {
			blocked++
		}
		// Stop early once the threshold can no longer be reached.
		if blocked+(EncircleRays-1-k) < encircleThreshold {
			return false
		}
	}
	return blocked >= encircleThreshold
}

func rayBlocked(origin, dir Vec2, body *Path, thickness float64) bool {
	for i := 2; i < body.Len(); i += 2 {
		s, ok := RaySegmentHit(origin, dir, body.At(i-1).Pos(), body.At(i).Pos(), thickness)
		if ok && s < EncircleMaxDist {
			return true
		}
	}
	return false
}

// SnakeEncircles runs the encirclement test for the snake around c.
func SnakeEncircles(s *Snake, c *Chaser) bool {
	return IsEncircled(c.Pos(), s.Path, s.BlockingRadius(), s.LengthTarget)
}
