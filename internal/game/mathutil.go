package game

import "math"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeFactor turns a per-reference-frame smoothing factor into the factor for
// f frames, so easing converges at the same rate regardless of frame rate.
func easeFactor(k, f float64) float64 {
	if f <= 0 {
		return 0
	}
	return 1 - math.Pow(1-clampF(k, 0, 1), f)
}

// angDiff returns b-a wrapped into (-π, π].
func angDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// normAngle wraps a into (-π, π].
func normAngle(a float64) float64 {
	return angDiff(0, a)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// InDisc returns a point uniformly distributed over the disc area.
func (r *Rand) InDisc(radius float64) Vec2 {
	ang := r.Float64() * 2 * math.Pi
	d := math.Sqrt(r.Float64()) * radius
	return Vec2{X: math.Cos(ang) * d, Y: math.Sin(ang) * d}
}
