package game

import "math"

// Chaser is the player-two entity: a disc that moves freely and turns
// instantly.
type Chaser struct {
	X, Y       float64
	Heading    float64
	Speed      float64
	Radius     float64
	MouthPhase float64
}

func NewChaser(pos Vec2, heading float64) *Chaser {
	return &Chaser{
		X:       pos.X,
		Y:       pos.Y,
		Heading: heading,
		Speed:   ChaserSpeed,
		Radius:  ChaserRadius,
	}
}

// SpawnChaser picks a random start near the centre, preferring spots well
// away from the snake head.
func SpawnChaser(r *Rand, snakeHead Vec2) *Chaser {
	var pos Vec2
	for i := 0; i < ChaserSpawnTries; i++ {
		pos = Vec2{
			X: r.RangeF(-ChaserSpawnSpread, ChaserSpawnSpread),
			Y: r.RangeF(-ChaserSpawnSpread, ChaserSpawnSpread),
		}
		if pos.Dist(snakeHead) > ChaserSpawnClear {
			break
		}
	}
	return NewChaser(pos, r.RangeF(0, 2*math.Pi))
}

func (c *Chaser) Pos() Vec2 { return Vec2{X: c.X, Y: c.Y} }

// Update moves the chaser by dt seconds. A non-zero input direction replaces
// the heading immediately; otherwise the chaser keeps moving the way it faces.
func (c *Chaser) Update(in Input, dt, arena float64) {
	frames := FrameScale(dt)
	if frames <= 0 {
		return
	}
	if dir := (Vec2{X: in.ChaserDirX, Y: in.ChaserDirY}).Normalize(); dir != (Vec2{}) {
		c.Heading = dir.Angle()
	}
	c.X += math.Cos(c.Heading) * c.Speed * frames
	c.Y += math.Sin(c.Heading) * c.Speed * frames
	c.contain(arena)
	c.MouthPhase += ChaserMouthRate * frames
}

// contain clamps the chaser onto the arena edge and turns it to run along
// the wall.
func (c *Chaser) contain(arena float64) {
	limit := arena * WorldEdgeRatio
	dist := math.Hypot(c.X, c.Y)
	if dist <= limit {
		return
	}
	nx, ny := c.X/dist, c.Y/dist
	c.X = nx * limit
	c.Y = ny * limit
	// (ny, -nx) is the tangent at the clamp point.
	c.Heading = math.Atan2(-nx, ny)
}
