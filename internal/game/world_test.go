package game

import (
	"math"
	"testing"
)

func newTestWorld(n int) *World {
	cfg := DefaultConfig()
	cfg.FoodCount = n
	return NewWorld(cfg, NewRand(11))
}

func TestWorldInitialField(t *testing.T) {
	w := newTestWorld(FoodCount)
	if len(w.Foods) != FoodCount {
		t.Fatalf("foods = %d, want %d", len(w.Foods), FoodCount)
	}
	for _, f := range w.Foods {
		if f.Pos().Len() > w.Radius*FoodSpawnRatio {
			t.Fatalf("pellet %v outside the spawn disc", f.Pos())
		}
		if f.Radius < FoodRadiusMin || f.Radius > FoodRadiusMax {
			t.Fatalf("pellet radius %v out of range", f.Radius)
		}
		if f.Color < 0 || f.Color >= len(FoodColors) {
			t.Fatalf("pellet colour %d out of range", f.Color)
		}
	}
}

func TestInDiscIsAreaUniform(t *testing.T) {
	r := NewRand(5)
	const n = 20000
	inner := 0
	for i := 0; i < n; i++ {
		if r.InDisc(100).Len() < 50 {
			inner++
		}
	}
	// Half the radius covers a quarter of the area.
	if frac := float64(inner) / n; math.Abs(frac-0.25) > 0.02 {
		t.Fatalf("inner fraction = %v, want about 0.25", frac)
	}
}

func TestEatNearOnlyWithinReach(t *testing.T) {
	w := newTestWorld(0)
	w.Foods = append(w.Foods,
		Food{X: 3, Radius: 2},
		Food{X: 10, Radius: 2},
		Food{X: -4, Y: 2, Radius: 4},
	)
	w.indexDirty = true

	eaten := w.EatNear(Vec2{}, 5)
	if len(eaten) != 2 {
		t.Fatalf("eaten = %d, want 2", len(eaten))
	}
	if len(w.Foods) != 1 || w.Foods[0].X != 10 {
		t.Fatalf("remaining = %+v", w.Foods)
	}
	if w.Pending() != 2 {
		t.Fatalf("pending respawns = %d, want 2", w.Pending())
	}
}

func TestFoodConservation(t *testing.T) {
	const n = 120
	w := newTestWorld(n)
	eaten := w.EatNear(Vec2{}, 2*w.Radius)
	if len(eaten) != n || len(w.Foods) != 0 {
		t.Fatalf("ate %d, %d left", len(eaten), len(w.Foods))
	}

	w.Advance(FoodRespawnDelay - 0.1)
	if len(w.Foods) != 0 {
		t.Fatalf("%d pellets respawned before the minimum delay", len(w.Foods))
	}

	// Tick at 60Hz until every respawn fired.
	for i := 0; i < 4*60; i++ {
		w.Advance(tick)
	}
	if len(w.Foods) != n || w.Pending() != 0 {
		t.Fatalf("foods = %d pending = %d, want %d and 0", len(w.Foods), w.Pending(), n)
	}
}

func TestFoodConservationWhileGrazing(t *testing.T) {
	const n = 200
	w := newTestWorld(n)
	s := NewSnake(Vec2{}, 0)
	for i := 0; i < 3000; i++ {
		s.Update(Input{TurnLeft: i%200 < 100}, tick, w.Radius)
		w.Advance(tick)
		w.EatNear(s.Head(), s.EatReach())
		if len(w.Foods)+w.Pending() != n {
			t.Fatalf("tick %d: %d live + %d pending != %d", i, len(w.Foods), w.Pending(), n)
		}
	}
	for i := 0; i < 7*60; i++ {
		w.Advance(tick)
	}
	if len(w.Foods) != n {
		t.Fatalf("foods = %d after respawns settled, want %d", len(w.Foods), n)
	}
}

func TestWorldResetClearsPending(t *testing.T) {
	w := newTestWorld(40)
	w.EatNear(Vec2{}, 2*w.Radius)
	w.Reset()
	if len(w.Foods) != 40 || w.Pending() != 0 {
		t.Fatalf("after reset: foods=%d pending=%d", len(w.Foods), w.Pending())
	}
	for i := 0; i < 10*60; i++ {
		w.Advance(tick)
	}
	if len(w.Foods) != 40 {
		t.Fatalf("stale respawns fired after reset: %d foods", len(w.Foods))
	}
}

func TestFoodsInMatchesScan(t *testing.T) {
	w := newTestWorld(FoodCount)
	r := RectF{X0: -800, Y0: -400, X1: 300, Y1: 900}
	got := len(w.FoodsIn(r))
	want := 0
	for _, f := range w.Foods {
		if RectAround(f.Pos(), f.Radius).Intersects(r) {
			want++
		}
	}
	if got != want {
		t.Fatalf("FoodsIn = %d, scan = %d", got, want)
	}
}
