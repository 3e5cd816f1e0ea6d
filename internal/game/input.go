package game

import (
	"math"
	"time"
)

// Input is the per-frame control state produced by a front end.
type Input struct {
	// Snake.
	TurnLeft, TurnRight bool
	SpeedUp, SpeedDown  bool
	Boost               bool

	// Absolute heading for pointer steering; overrides the turn keys.
	HasPointer     bool
	PointerHeading float64

	// Chaser direction; zero means keep going the current way.
	ChaserDirX, ChaserDirY float64

	Restart bool
}

// ChaserDir builds a chaser direction from four key states.
func ChaserDir(left, right, up, down bool) (float64, float64) {
	var x, y float64
	if left {
		x--
	}
	if right {
		x++
	}
	if up {
		y--
	}
	if down {
		y++
	}
	if x != 0 && y != 0 {
		x /= math.Sqrt2
		y /= math.Sqrt2
	}
	return x, y
}

// FrameClock converts monotonic timestamps into clamped frame deltas.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick returns the seconds since the previous call, clamped to
// [0, MaxFrameDelta]. The first call returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// ClampDelta bounds a frame delta so a long stall never turns into one huge
// step that could tunnel through the wall or skip contact checks.
func ClampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
