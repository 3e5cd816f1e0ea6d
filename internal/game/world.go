package game

import "math"

// Food is a pellet the snake eats to grow.
type Food struct {
	X, Y   float64
	Radius float64
	Color  int     // index into FoodColors
	Age    float64 // seconds since spawn
}

func (f Food) Pos() Vec2 { return Vec2{X: f.X, Y: f.Y} }

// World is the circular arena and its food field.
type World struct {
	Radius    float64
	FoodCount int // steady-state pellet count
	Foods     []Food

	clock    float64 // seconds of simulated time
	rng      *Rand
	respawns respawnQueue

	index      *QuadNode
	indexDirty bool
	scratch    []int
}

func NewWorld(cfg Config, rng *Rand) *World {
	cfg = cfg.normalized()
	w := &World{
		Radius:    cfg.WorldRadius,
		FoodCount: cfg.FoodCount,
		Foods:     make([]Food, 0, cfg.FoodCount),
		rng:       rng,
	}
	w.Reset()
	return w
}

// Reset refills the food field and forgets every pending respawn.
func (w *World) Reset() {
	w.Foods = w.Foods[:0]
	w.respawns.clear()
	for i := 0; i < w.FoodCount; i++ {
		w.SpawnFood()
	}
}

// Clock returns the world's simulated time in seconds.
func (w *World) Clock() float64 { return w.clock }

// Pending returns the number of scheduled respawns.
func (w *World) Pending() int { return w.respawns.Len() }

// SpawnFood adds one pellet at a point sampled uniformly over the inner disc.
func (w *World) SpawnFood() {
	p := w.rng.InDisc(w.Radius * FoodSpawnRatio)
	w.Foods = append(w.Foods, Food{
		X:      p.X,
		Y:      p.Y,
		Radius: w.rng.RangeF(FoodRadiusMin, FoodRadiusMax),
		Color:  w.rng.Intn(len(FoodColors)),
	})
	w.indexDirty = true
}

// Advance moves the world clock forward, ages pellets and fires every
// respawn that has come due.
func (w *World) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	w.clock += dt
	for i := range w.Foods {
		w.Foods[i].Age += dt
	}
	for n := w.respawns.due(w.clock); n > 0; n-- {
		w.SpawnFood()
	}
}

// EatNear removes every pellet closer than reach to p, schedules one respawn
// per pellet and returns the consumed pellets.
func (w *World) EatNear(p Vec2, reach float64) []Food {
	var eaten []Food
	for _, idx := range w.query(RectAround(p, reach)) {
		f := w.Foods[idx]
		if f.Pos().Dist2(p) < reach*reach {
			eaten = append(eaten, f)
			w.Foods[idx].Radius = -1
		}
	}
	if len(eaten) == 0 {
		return nil
	}
	kept := w.Foods[:0]
	for _, f := range w.Foods {
		if f.Radius >= 0 {
			kept = append(kept, f)
		}
	}
	w.Foods = kept
	w.indexDirty = true
	for range eaten {
		w.respawns.schedule(w.clock + FoodRespawnDelay + w.rng.Float64()*FoodRespawnJitter)
	}
	return eaten
}

// FoodsIn returns copies of the pellets overlapping r.
func (w *World) FoodsIn(r RectF) []Food {
	idx := w.query(r)
	out := make([]Food, 0, len(idx))
	for _, i := range idx {
		out = append(out, w.Foods[i])
	}
	return out
}

func (w *World) query(r RectF) []int {
	if w.index == nil || w.indexDirty {
		w.rebuildIndex()
	}
	w.scratch = w.scratch[:0]
	w.index.Query(r, &w.scratch)
	return w.scratch
}

func (w *World) rebuildIndex() {
	w.index = NewQuadNode(RectAround(Vec2{}, w.Radius), 0)
	for i, f := range w.Foods {
		w.index.Insert(i, RectAround(f.Pos(), f.Radius))
	}
	w.indexDirty = false
}

// Inside reports whether p lies within the containment radius.
func (w *World) Inside(p Vec2) bool {
	return math.Hypot(p.X, p.Y) <= w.Radius*WorldEdgeRatio
}
