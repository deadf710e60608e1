package sweepqueue

import "github.com/SCAnas2005/SAE-Voronoi-P/geom"

// Event is a site or circle event. A site event has Arc == nil and Site
// set to the site being swept; a circle event has Arc set to the
// beachline arc it would remove and Point set to the predicted circle's
// center. X is the sweep coordinate at which the event fires:
// site.x for a site event, center.x + radius for a circle event.
type Event struct {
	X     float64
	Point geom.Point
	Site  *geom.Site  // non-nil for site events
	Arc   interface{} // non-nil for circle events; concrete type is *beachline.Arc
	Valid bool

	index int // heap index, maintained by Queue
}

// NewSiteEvent builds the event that fires when the sweep line reaches
// site.
func NewSiteEvent(site *geom.Site) *Event {
	return &Event{
		X:     site.Point.X,
		Point: site.Point,
		Site:  site,
		Valid: true,
	}
}

// NewCircleEvent builds the event that fires when the circle centered at
// center and passing through arc's site reaches its bottom point
// (center.x + radius), predicting the removal of arc.
func NewCircleEvent(x float64, center geom.Point, arc interface{}) *Event {
	return &Event{
		X:     x,
		Point: center,
		Arc:   arc,
		Valid: true,
	}
}

// IsSiteEvent reports whether e is a site event (as opposed to a circle
// event).
func (e *Event) IsSiteEvent() bool {
	return e.Arc == nil
}

// Invalidate marks e so the queue discards it on pop without acting on
// it. Safe to call on an already-invalid or nil event.
func (e *Event) Invalidate() {
	if e == nil {
		return
	}
	e.Valid = false
}
