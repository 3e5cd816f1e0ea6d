package game

import "math"

// Snake is the player-one entity: a variable-length, variable-thickness
// polyline that steers with a limited turn rate.
type Snake struct {
	Path *Path // recent head positions, index 0 = newest

	LengthTarget float64 // grows when food is eaten
	LengthActual float64 // measured path length after trimming
	Heading      float64 // current direction in radians
	Speed        float64 // base speed after speed-up / speed-down
	Boosting     bool

	RadiusActual float64
	RadiusTarget float64

	Color RGB
}

// NewSnake returns a snake whose head is at head and whose straight tail
// trails behind it against heading.
func NewSnake(head Vec2, heading float64) *Snake {
	s := &Snake{
		Path:         NewPath(SnakePathCap),
		LengthTarget: SnakeStartLength,
		LengthActual: SnakeStartLength,
		Heading:      heading,
		Speed:        SnakeBaseSpeed,
		RadiusActual: SnakeBaseRadius,
		RadiusTarget: SnakeBaseRadius,
		Color:        Palette.Snake,
	}
	for d := 0.0; d < s.LengthTarget; d += SnakeSegmentSpacing {
		s.Path.PushBack(PathPoint{
			X:       head.X - math.Cos(heading)*d,
			Y:       head.Y - math.Sin(heading)*d,
			Heading: heading,
		})
	}
	return s
}

// SpawnSnake places a new snake near the arena centre with a random heading.
func SpawnSnake(r *Rand) *Snake {
	head := Vec2{
		X: r.RangeF(-SnakeSpawnSpread, SnakeSpawnSpread),
		Y: r.RangeF(-SnakeSpawnSpread, SnakeSpawnSpread),
	}
	return NewSnake(head, r.RangeF(0, 2*math.Pi))
}

// Head returns the current head position.
func (s *Snake) Head() Vec2 {
	if s.Path.Len() == 0 {
		return Vec2{}
	}
	return s.Path.At(0).Pos()
}

// Steer turns toward targetAngle by at most SnakeTurnRate per reference
// frame, along the shortest arc.
func (s *Snake) Steer(targetAngle, frames float64) {
	diff := angDiff(s.Heading, targetAngle)
	s.Heading = normAngle(s.Heading + clampF(diff, -SnakeTurnRate, SnakeTurnRate)*frames)
}

// steerTarget derives the desired heading from player input.
func (s *Snake) steerTarget(in Input, frames float64) float64 {
	if in.HasPointer {
		return in.PointerHeading
	}
	target := s.Heading
	reach := SnakeTurnRate * frames * SnakeKeyTurnReach
	if in.TurnLeft {
		target -= reach
	}
	if in.TurnRight {
		target += reach
	}
	return target
}

// EffectiveSpeed is the distance covered per reference frame.
func (s *Snake) EffectiveSpeed() float64 {
	if s.Boosting {
		return s.Speed * SnakeBoostMult
	}
	return s.Speed
}

// Update advances the snake by dt seconds inside an arena of the given
// radius.
func (s *Snake) Update(in Input, dt, arena float64) {
	frames := FrameScale(dt)
	if frames <= 0 {
		return
	}

	s.Steer(s.steerTarget(in, frames), frames)

	// Speed modifiers persist until the other one is pressed.
	if in.SpeedUp {
		s.Speed = SnakeBaseSpeed * SnakeSpeedUpMult
	}
	if in.SpeedDown {
		s.Speed = SnakeBaseSpeed * SnakeSpeedDownMult
	}
	s.Boosting = in.Boost

	next := s.Head().Add(FromAngle(s.Heading).Scale(s.EffectiveSpeed() * frames))
	s.Path.PushFront(PathPoint{X: next.X, Y: next.Y, Heading: s.Heading})
	s.Path.TrimTo(s.LengthTarget)

	s.containHead(arena)
	s.LengthActual = s.Path.Length()
	s.easeRadius(frames)
}

// containHead keeps the head inside the arena by sliding it along the wall:
// the outward component of the heading is removed (plus a small inward bias)
// instead of stopping or bouncing.
func (s *Snake) containHead(arena float64) {
	head := s.Path.At(0)
	pos := head.Pos()
	dist := pos.Len()
	if dist <= arena*WorldEdgeRatio {
		return
	}
	n := pos.Scale(1 / dist)
	pos = n.Scale(arena*WorldEdgeRatio - SnakeWallInset)

	v := FromAngle(s.Heading)
	out := v.Dot(n) + SnakeWallBias
	slide := v.Sub(n.Scale(out))
	if l := slide.Len(); l > 0 {
		slide = slide.Scale(1 / l)
	} else {
		slide = Vec2{X: -n.Y, Y: n.X}
	}
	pos = pos.Add(slide.Scale(SnakeWallStep))

	s.Heading = slide.Angle()
	head.X, head.Y, head.Heading = pos.X, pos.Y, s.Heading
	s.Path.SetHead(head)
}

func (s *Snake) easeRadius(frames float64) {
	growth := math.Max(0, s.LengthTarget-SnakeStartLength)
	s.RadiusTarget = clampF(SnakeBaseRadius+growth*SnakeRadiusGrowth, SnakeBaseRadius, SnakeMaxRadius)
	s.RadiusActual = lerp(s.RadiusActual, s.RadiusTarget, easeFactor(SnakeRadiusEase, frames))
	s.RadiusActual = clampF(s.RadiusActual, SnakeBaseRadius, SnakeMaxRadius)
}

// Grow applies the length reward for a consumed pellet.
func (s *Snake) Grow(f Food) {
	s.LengthTarget += FoodGrowthBase + f.Radius*FoodGrowthPerSize
}

// EatReach is the distance at which the head consumes a pellet.
func (s *Snake) EatReach() float64 {
	return s.RadiusActual + SnakeEatMargin
}

// ContactRadius is the body radius the chaser must stay clear of at path
// index i. The head uses the full radius; the rest of the body is more
// lenient.
func (s *Snake) ContactRadius(i int) float64 {
	r := s.RadiusActual
	if i != 0 {
		r *= ContactBodyLeniency
	}
	return math.Max(r, SnakeBaseRadius)
}

// BlockingRadius is the ray-blocking thickness used by the encirclement test.
func (s *Snake) BlockingRadius() float64 {
	return math.Max(s.RadiusActual*EncircleThickness, SnakeBaseRadius)
}
