package game

import (
	"math"
	"testing"
)

func TestChaserInstantTurn(t *testing.T) {
	c := NewChaser(Vec2{}, 0)
	x, y := ChaserDir(false, true, false, true)
	c.Update(Input{ChaserDirX: x, ChaserDirY: y}, tick, WorldRadius)
	if !approx(c.Heading, math.Pi/4, 1e-12) {
		t.Fatalf("heading = %v, want π/4", c.Heading)
	}
	if d := c.Pos().Len(); !approx(d, ChaserSpeed, 1e-9) {
		t.Fatalf("moved %v, want %v", d, ChaserSpeed)
	}

	// No input keeps the last heading.
	c.Update(Input{}, tick, WorldRadius)
	if !approx(c.Heading, math.Pi/4, 1e-12) {
		t.Fatalf("heading drifted to %v", c.Heading)
	}
	if c.MouthPhase <= 0 {
		t.Fatalf("mouth phase did not advance")
	}
}

func TestChaserContainment(t *testing.T) {
	limit := WorldRadius * WorldEdgeRatio
	for _, ang := range []float64{0, 1, 2.5, -2} {
		dir := FromAngle(ang)
		c := NewChaser(dir.Scale(limit-50), ang)
		for i := 0; i < 200; i++ {
			c.Update(Input{ChaserDirX: dir.X, ChaserDirY: dir.Y}, tick, WorldRadius)
			if d := c.Pos().Len(); d > limit+1e-9 {
				t.Fatalf("angle %v tick %d: distance %v beyond %v", ang, i, d, limit)
			}
		}
	}
}

func TestChaserWallTurnsTangential(t *testing.T) {
	limit := WorldRadius * WorldEdgeRatio
	c := NewChaser(Vec2{X: limit - 1}, 0)
	c.Update(Input{}, tick, WorldRadius)
	if !approx(c.X, limit, 1e-9) {
		t.Fatalf("x = %v, want clamp at %v", c.X, limit)
	}
	n := c.Pos().Normalize()
	if dot := FromAngle(c.Heading).Dot(n); math.Abs(dot) > 1e-9 {
		t.Fatalf("heading not tangential, dot with normal = %v", dot)
	}
}

func TestSpawnChaserAwayFromSnake(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 50; i++ {
		c := SpawnChaser(r, Vec2{})
		if math.Abs(c.X) > ChaserSpawnSpread || math.Abs(c.Y) > ChaserSpawnSpread {
			t.Fatalf("spawn %v outside the spawn square", c.Pos())
		}
	}
}
