package beachline

import (
	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
	"github.com/SCAnas2005/SAE-Voronoi-P/sweepqueue"
)

// Arc is one parabolic arc currently visible on the beach line.
//
// S0 is the half-edge bordering the arc on the Prev side, S1 on the
// Next side; both are filled in at the site event that created this
// arc's neighboring breakpoint, and have their Origin assigned once that
// breakpoint's circle event fires. Event is the currently scheduled
// circle event that would remove this arc, or nil; at most one is ever
// live per arc (a new one invalidates the old).
type Arc struct {
	Site *geom.Site
	Prev *Arc
	Next *Arc
	Event *sweepqueue.Event

	S0, S1 *dcel.HalfEdge
}

// NewArc returns a detached arc with focus site and no neighbors.
func NewArc(site *geom.Site) *Arc {
	return &Arc{Site: site}
}

// InvalidateEvent marks a's scheduled circle event (if any) invalid and
// clears the back-reference, per the "at most one circle event live per
// arc" invariant.
func (a *Arc) InvalidateEvent() {
	if a == nil || a.Event == nil {
		return
	}
	a.Event.Invalidate()
	a.Event = nil
}
