package game

// PathPoint is one recorded head position of the snake.
type PathPoint struct {
	X, Y    float64
	Heading float64
}

func (p PathPoint) Pos() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Path is a ring buffer of head positions, index 0 = newest. Pushing a new
// head and truncating the tail are both O(1); the buffer only grows when it
// is full.
type Path struct {
	buf  []PathPoint
	head int
	n    int
}

func NewPath(capacity int) *Path {
	if capacity < 1 {
		capacity = 1
	}
	return &Path{buf: make([]PathPoint, capacity)}
}

// Len returns the number of active points.
func (p *Path) Len() int { return p.n }

// At returns the i-th point from the head. i must be in [0, Len()).
func (p *Path) At(i int) PathPoint {
	return p.buf[(p.head+i)%len(p.buf)]
}

// PushFront inserts a new head.
func (p *Path) PushFront(pt PathPoint) {
	if p.n == len(p.buf) {
		p.grow()
	}
	p.head = (p.head - 1 + len(p.buf)) % len(p.buf)
	p.buf[p.head] = pt
	p.n++
}

// SetHead replaces the newest point. It is a no-op on an empty path.
func (p *Path) SetHead(pt PathPoint) {
	if p.n == 0 {
		return
	}
	p.buf[p.head] = pt
}

// PushBack appends a point behind the current tail.
func (p *Path) PushBack(pt PathPoint) {
	if p.n == len(p.buf) {
		p.grow()
	}
	p.buf[(p.head+p.n)%len(p.buf)] = pt
	p.n++
}

// Truncate keeps the first n points. The head is never dropped.
func (p *Path) Truncate(n int) {
	if n < 1 {
		n = 1
	}
	if n < p.n {
		p.n = n
	}
}

// Reset empties the path without releasing its storage.
func (p *Path) Reset() {
	p.head = 0
	p.n = 0
}

func (p *Path) grow() {
	next := make([]PathPoint, len(p.buf)*2)
	for i := 0; i < p.n; i++ {
		next[i] = p.At(i)
	}
	p.buf = next
	p.head = 0
}

// Points copies the active points, head first.
func (p *Path) Points() []PathPoint {
	out := make([]PathPoint, p.n)
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// Length returns the summed distance between consecutive points.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 1; i < p.n; i++ {
		total += p.At(i - 1).Pos().Dist(p.At(i).Pos())
	}
	return total
}

// TrimTo drops every point past the first one at which the accumulated
// length exceeds target. That boundary point is kept so the tail does not
// visibly jump; the retained length is therefore at most target plus one
// segment.
func (p *Path) TrimTo(target float64) {
	acc := 0.0
	for i := 1; i < p.n; i++ {
		acc += p.At(i - 1).Pos().Dist(p.At(i).Pos())
		if acc > target {
			p.Truncate(i + 1)
			return
		}
	}
}
