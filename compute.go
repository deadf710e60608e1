package voronoi

import (
	"fmt"
	"math"

	"github.com/SCAnas2005/SAE-Voronoi-P/beachline"
	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
	"github.com/SCAnas2005/SAE-Voronoi-P/sweepqueue"
)

// Compute builds the Voronoi diagram of sites by Fortune's sweep: a
// priority queue of site and circle events drives a beach line of
// parabolic arcs, recording the emerging planar subdivision in a
// half-edge mesh. It returns an error only if a site has a non-finite
// coordinate; every other situation §4 calls "recoverable" (a collinear
// triple, a degenerate parabola intersection, empty input) is handled by
// internal control flow and never surfaces as an error.
//
// Compute is not safe to call from multiple goroutines on overlapping
// site slices that alias the same backing array concurrently mutated
// elsewhere, but two independent calls — independent diagrams — share no
// state and may run concurrently.
func Compute(sites []geom.Point) (*dcel.Diagram, error) {
	for i, s := range sites {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
			return nil, fmt.Errorf("%w: site %d = %v", ErrNonFiniteSite, i, s)
		}
	}

	sw := &sweep{
		diagram: dcel.NewDiagram(),
		queue:   sweepqueue.NewQueue(),
	}
	sw.seed(sites)
	sw.run()
	sw.finalize()

	return sw.diagram, nil
}

// sweep holds the mutable state of a single Compute call: the event
// queue, the beach line, and the diagram under construction. Per §5 it
// is exclusively owned by one Compute invocation and never shared.
type sweep struct {
	diagram *dcel.Diagram
	queue   *sweepqueue.Queue
	beach   beachline.List
}

// seed pushes one site event per input site, in the allocation order the
// caller supplied them, wrapping each coordinate pair in a fresh
// *geom.Site so that duplicate-coordinate sites remain distinct by
// identity (§3's Face bijection requirement).
func (sw *sweep) seed(sites []geom.Point) {
	for _, p := range sites {
		site := &geom.Site{Point: p}
		sw.queue.Push(sweepqueue.NewSiteEvent(site))
	}
}

// run drains the event queue, dispatching each valid event to the site
// or circle event handler, per §4.5.
func (sw *sweep) run() {
	for sw.queue.Len() > 0 {
		ev := sw.queue.Pop()
		if !ev.Valid {
			continue
		}
		if ev.IsSiteEvent() {
			sw.handleSite(ev)
		} else {
			sw.handleCircle(ev)
		}
	}
}

// handleSite implements §4.4's "Site event on site at sweep sx".
func (sw *sweep) handleSite(ev *sweepqueue.Event) {
	site := ev.Site
	sx := ev.X

	if sw.beach.IsEmpty() {
		sw.beach.InsertFirst(site)
		return
	}

	arc := sw.beach.FindAbove(site.Point.Y, sx)
	arc.InvalidateEvent()

	created, duplicate := sw.beach.Split(arc, site)

	// Breakpoint (arc.site, site): he borders arc on its Next side,
	// het borders created on its Prev side.
	he, het := sw.diagram.NewEdge(arc.Site, site)
	arc.S1 = he
	created.S0 = het

	// Breakpoint (site, arc.site again): borders created's Next side
	// and duplicate's Prev side.
	he2, het2 := sw.diagram.NewEdge(site, arc.Site)
	created.S1 = he2
	duplicate.S0 = het2

	sw.check(arc)
	sw.check(duplicate)
}

// handleCircle implements §4.4's "Circle event on arc A with center v".
// By the time a valid circle event fires, arc.Prev and arc.Next are
// guaranteed non-nil (scheduling one in check requires both), but every
// step below still guards on them individually, matching the defensive
// style of the original implementation this spec was distilled from.
func (sw *sweep) handleCircle(ev *sweepqueue.Event) {
	arc := ev.Arc.(*beachline.Arc)
	v := sw.diagram.NewVertex(ev.Point)

	if arc.Prev != nil {
		arc.Prev.InvalidateEvent()
	}
	if arc.Next != nil {
		arc.Next.InvalidateEvent()
	}

	if arc.S0 != nil {
		arc.S0.Origin = v
	}
	if arc.S1 != nil {
		arc.S1.Origin = v
	}
	if arc.Prev != nil && arc.Prev.S1 != nil {
		arc.Prev.S1.Origin = v
	}
	if arc.Next != nil && arc.Next.S0 != nil {
		arc.Next.S0.Origin = v
	}

	if arc.Prev != nil && arc.Next != nil {
		he, het := sw.diagram.NewEdge(arc.Prev.Site, arc.Next.Site)
		he.Origin, het.Origin = v, v
		arc.Prev.S1 = he
		arc.Next.S0 = het
	}

	prev, next := arc.Prev, arc.Next
	sw.beach.Remove(arc)

	if prev != nil {
		sw.check(prev)
	}
	if next != nil {
		sw.check(next)
	}
}

// check implements §4.4's Check(A): schedule a circle event for arc if
// its neighbors exist, the triplet is convex in the sweep direction, and
// the three sites are not collinear.
func (sw *sweep) check(arc *beachline.Arc) {
	if arc == nil || arc.Prev == nil || arc.Next == nil {
		return
	}
	a, b, c := arc.Prev.Site.Point, arc.Site.Point, arc.Next.Site.Point

	// Signed area of (b-a) x (c-a); non-negative means the triplet is
	// not turning the way a converging circle event requires.
	area := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if area >= 0 {
		return
	}

	center, ok := geom.Circumcenter(a, b, c)
	if !ok {
		return
	}
	r := center.Sub(b.Vector).Norm()

	ev := sweepqueue.NewCircleEvent(center.X+r, center, arc)
	arc.Event = ev
	sw.queue.Push(ev)
}
