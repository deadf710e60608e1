package sweepqueue

import (
	"container/heap"

	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

// Queue is a min-priority queue of *Event ordered by (X, Point.Y), with
// epsilon-tolerant comparison on X. It wraps the internal eventHeap so
// callers never touch container/heap directly.
type Queue struct {
	h eventHeap
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{h: make(eventHeap, 0)}
}

// Len returns the number of events currently queued (including any not
// yet discovered to be invalid).
func (q *Queue) Len() int {
	return len(q.h)
}

// Push schedules e.
func (q *Queue) Push(e *Event) {
	heap.Push(&q.h, e)
}

// Pop removes and returns the minimum event, or nil if the queue is
// empty. It does not skip invalid events — callers discard those
// themselves (see the sweep driver's main loop), matching the lazy
// invalidation design: no decrease-key, no mid-heap removal.
func (q *Queue) Pop() *Event {
	if len(q.h) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*Event)
}

// eventHeap is a min-heap of *Event ordered by (X, Point.Y). Pushing a
// new circle event for an arc that already has one scheduled leaves the
// stale entry in the heap; it is discarded when popped because its
// Valid flag was flipped false. This is the same lazy-decrease-key
// strategy the teacher's dijkstra package documents for its own nodePQ.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if !geom.NearEqual(a.X, b.X) {
		return a.X < b.X
	}
	return a.Point.Y < b.Point.Y
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push is called by heap.Push; x must be of type *Event.
func (h *eventHeap) Push(x interface{}) {
	e := x.(*Event)
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop is called by heap.Pop; returns interface{} that must be cast to
// *Event.
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
