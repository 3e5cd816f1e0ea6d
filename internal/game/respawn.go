package game

import "container/heap"

// respawnQueue is a min-heap of world-clock times at which a pellet is due.
type respawnQueue []float64

func (q respawnQueue) Len() int           { return len(q) }
func (q respawnQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q respawnQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *respawnQueue) Push(x any) { *q = append(*q, x.(float64)) }

func (q *respawnQueue) Pop() any {
	old := *q
	n := len(old)
	v := old[n-1]
	*q = old[:n-1]
	return v
}

func (q *respawnQueue) schedule(at float64) {
	heap.Push(q, at)
}

// due pops every entry scheduled at or before now and returns how many.
func (q *respawnQueue) due(now float64) int {
	n := 0
	for q.Len() > 0 && (*q)[0] <= now {
		heap.Pop(q)
		n++
	}
	return n
}

func (q *respawnQueue) clear() {
	*q = (*q)[:0]
}
