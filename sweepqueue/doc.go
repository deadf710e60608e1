// Package sweepqueue implements the sweep's min-priority event queue:
// a plain container/heap over site and circle events, keyed by
// (x, point.y) with epsilon-tolerant tie-breaking on x.
//
// Invalidation is lazy, mirroring the teacher's dijkstra package, which
// documents the identical trick for its own heap: rather than removing a
// stale circle event when an arc it would remove is itself consumed or
// split, callers flip that Event's Valid flag to false. The Queue still
// returns invalid events from Pop; the sweep driver discards them as it
// pops them. No decrease-key or
// arbitrary-element removal is implemented — the queue stays a plain
// binary heap.
//
// Event.Arc is an opaque interface{} back-reference rather than a
// concrete *beachline.Arc: beachline.Arc itself holds a *sweepqueue.Event
// (so it can invalidate its own scheduled removal), and Go does not allow
// that pair of concrete types to reference each other across an import
// cycle. The sweep driver, which imports both packages, performs the one
// type assertion back to *beachline.Arc when it pops a circle event.
package sweepqueue
