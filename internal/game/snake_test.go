package game

import (
	"math"
	"testing"
)

const tick = 1.0 / 60

func TestPathRingGrowsAndKeepsOrder(t *testing.T) {
	p := NewPath(4)
	for i := 0; i < 10; i++ {
		p.PushFront(PathPoint{X: float64(i)})
	}
	if p.Len() != 10 {
		t.Fatalf("Len = %d, want 10", p.Len())
	}
	for i := 0; i < p.Len(); i++ {
		if got := p.At(i).X; got != float64(9-i) {
			t.Fatalf("At(%d).X = %v, want %v", i, got, 9-i)
		}
	}
	p.Truncate(0)
	if p.Len() != 1 || p.At(0).X != 9 {
		t.Fatalf("Truncate(0) should keep the head, got len %d head %v", p.Len(), p.At(0))
	}
}

func TestPathTrimTo(t *testing.T) {
	p := NewPath(8)
	for i := 0; i < 100; i++ {
		p.PushBack(PathPoint{X: -float64(i)})
	}
	p.TrimTo(20.5)
	if p.Len() != 22 {
		t.Fatalf("Len = %d, want 22", p.Len())
	}
	if l := p.Length(); l > 20.5+1 {
		t.Fatalf("Length = %v exceeds target plus one segment", l)
	}
}

func TestSnakeTrimInvariant(t *testing.T) {
	s := NewSnake(Vec2{}, 0)
	in := Input{TurnLeft: true}
	for i := 0; i < 600; i++ {
		// Alternate straight runs, turns and boosts, growing now and then.
		in.TurnLeft = i%90 < 30
		in.Boost = i%50 < 10
		if i%40 == 0 {
			s.Grow(Food{Radius: 3})
		}
		s.Update(in, tick, WorldRadius)
		if s.Path.Len() < 1 {
			t.Fatalf("tick %d: path emptied", i)
		}
		if s.LengthActual > s.LengthTarget+SnakeSegmentSpacing {
			t.Fatalf("tick %d: length %v exceeds target %v plus one segment", i, s.LengthActual, s.LengthTarget)
		}
	}
}

func TestNewSnakeStraightTail(t *testing.T) {
	s := NewSnake(Vec2{X: 10, Y: 20}, math.Pi/2)
	if s.Path.Len() != 11 {
		t.Fatalf("initial points = %d, want 11", s.Path.Len())
	}
	if s.LengthTarget != SnakeStartLength {
		t.Fatalf("LengthTarget = %v", s.LengthTarget)
	}
	tail := s.Path.At(s.Path.Len() - 1)
	if !approx(tail.X, 10, 1e-9) || !approx(tail.Y, 20-65, 1e-9) {
		t.Fatalf("tail = (%v,%v), want (10,-45)", tail.X, tail.Y)
	}
}

func TestSnakeMovesAndTurns(t *testing.T) {
	s := NewSnake(Vec2{}, 0)
	s.Update(Input{}, tick, WorldRadius)
	if h := s.Head(); !approx(h.X, SnakeBaseSpeed, 1e-9) || !approx(h.Y, 0, 1e-9) {
		t.Fatalf("head = %v, want (%v,0)", h, SnakeBaseSpeed)
	}

	s = NewSnake(Vec2{}, 0)
	s.Update(Input{TurnRight: true}, tick, WorldRadius)
	if !approx(s.Heading, SnakeTurnRate, 1e-9) {
		t.Fatalf("heading after one right turn = %v, want %v", s.Heading, SnakeTurnRate)
	}

	s = NewSnake(Vec2{}, 0)
	s.Update(Input{HasPointer: true, PointerHeading: -math.Pi / 2}, tick, WorldRadius)
	if !approx(s.Heading, -SnakeTurnRate, 1e-9) {
		t.Fatalf("heading toward pointer = %v, want %v", s.Heading, -SnakeTurnRate)
	}
}

func TestSnakeSpeedModifiersPersist(t *testing.T) {
	s := NewSnake(Vec2{}, 0)
	s.Update(Input{SpeedUp: true}, tick, WorldRadius)
	s.Update(Input{}, tick, WorldRadius)
	if !approx(s.Speed, SnakeBaseSpeed*SnakeSpeedUpMult, 1e-12) {
		t.Fatalf("speed = %v after releasing speed-up", s.Speed)
	}
	s.Update(Input{Boost: true}, tick, WorldRadius)
	if !approx(s.EffectiveSpeed(), SnakeBaseSpeed*SnakeSpeedUpMult*SnakeBoostMult, 1e-12) {
		t.Fatalf("boosted speed = %v", s.EffectiveSpeed())
	}
	s.Update(Input{SpeedDown: true}, tick, WorldRadius)
	if s.Boosting || !approx(s.Speed, SnakeBaseSpeed*SnakeSpeedDownMult, 1e-12) {
		t.Fatalf("speed-down: speed=%v boosting=%v", s.Speed, s.Boosting)
	}
}

func TestSnakeContainment(t *testing.T) {
	s := NewSnake(Vec2{X: WorldRadius - 100}, 0)
	limit := WorldRadius*WorldEdgeRatio + 1e-9
	for i := 0; i < 600; i++ {
		s.Update(Input{HasPointer: true, PointerHeading: s.Head().Angle(), Boost: true}, tick, WorldRadius)
		if d := s.Head().Len(); d > limit || math.IsNaN(d) {
			t.Fatalf("tick %d: head at distance %v, limit %v", i, d, limit)
		}
	}
}

func TestSnakeRadiusEasing(t *testing.T) {
	a := NewSnake(Vec2{}, 0)
	b := NewSnake(Vec2{}, 0)
	a.LengthTarget = SnakeStartLength + 500
	b.LengthTarget = a.LengthTarget
	prev := a.RadiusActual
	for i := 0; i < 60; i++ {
		a.Update(Input{}, tick, WorldRadius)
		if a.RadiusActual < prev {
			t.Fatalf("radius shrank while growing: %v -> %v", prev, a.RadiusActual)
		}
		prev = a.RadiusActual
	}
	for i := 0; i < 30; i++ {
		b.Update(Input{}, 2*tick, WorldRadius)
	}
	if want := 16.0; a.RadiusTarget != want {
		t.Fatalf("RadiusTarget = %v, want %v", a.RadiusTarget, want)
	}
	if !approx(a.RadiusActual, b.RadiusActual, 1e-9) {
		t.Fatalf("easing depends on frame rate: %v at 60Hz, %v at 30Hz", a.RadiusActual, b.RadiusActual)
	}
}

func TestSnakeGrowAndReach(t *testing.T) {
	s := NewSnake(Vec2{}, 0)
	s.Grow(Food{Radius: 3})
	if s.LengthTarget != SnakeStartLength+26 {
		t.Fatalf("LengthTarget = %v, want %v", s.LengthTarget, SnakeStartLength+26)
	}
	if s.EatReach() != SnakeBaseRadius+SnakeEatMargin {
		t.Fatalf("EatReach = %v", s.EatReach())
	}
	if s.ContactRadius(0) != SnakeBaseRadius || s.ContactRadius(2) != SnakeBaseRadius {
		t.Fatalf("contact radius should floor at the base radius")
	}
}
