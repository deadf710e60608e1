package beachline

import "github.com/SCAnas2005/SAE-Voronoi-P/geom"

// List is the beach line: a doubly-linked sequence of arcs, head-pointer
// held by the sweep driver via this struct. The zero value is an empty
// beach line.
type List struct {
	Head *Arc
}

// IsEmpty reports whether the beach line has no arcs yet.
func (l *List) IsEmpty() bool {
	return l.Head == nil
}

// InsertFirst installs the single arc for the first site event, when the
// beach line is empty.
func (l *List) InsertFirst(site *geom.Site) *Arc {
	a := NewArc(site)
	l.Head = a
	return a
}

// FindAbove walks the beach line from Head looking for the arc A such
// that siteY is strictly above A's upper break with A.Next at sweep
// coordinate sx — i.e. the arc the new site lands under. If no such arc
// is found (the site is below every breakpoint), the last arc in the
// sequence is returned.
func (l *List) FindAbove(siteY, sx float64) *Arc {
	arc := l.Head
	for arc.Next != nil {
		if siteY < geom.ParabolaY(arc.Site.Point, arc.Next.Site.Point, sx)-geom.EPS {
			break
		}
		arc = arc.Next
	}
	return arc
}

// Split inserts a new arc with focus newSite under arc, per §4.4 step 4:
// arc's circle event (if any) is the caller's responsibility to
// invalidate before calling Split. The order becomes
// … arc — created — duplicate — (old arc.Next) …
// duplicate is a fresh arc sharing arc's site, standing in for the
// right half of the arc the new site split in two; arc itself becomes
// the left half and is left in place. Both returned arcs have nil S0/S1;
// the caller wires the two new breakpoints' half-edges itself.
func (l *List) Split(arc *Arc, newSite *geom.Site) (created, duplicate *Arc) {
	duplicate = NewArc(arc.Site)
	created = NewArc(newSite)

	duplicate.Next = arc.Next
	if arc.Next != nil {
		arc.Next.Prev = duplicate
	}
	duplicate.Prev = created

	created.Next = duplicate
	created.Prev = arc

	arc.Next = created

	return created, duplicate
}

// Remove unlinks arc from the beach line, per §4.4's circle-event step 5.
// arc's own Prev/Next are left untouched so callers can still read its
// former neighbors immediately after the call.
func (l *List) Remove(arc *Arc) {
	if arc.Prev != nil {
		arc.Prev.Next = arc.Next
	} else {
		l.Head = arc.Next
	}
	if arc.Next != nil {
		arc.Next.Prev = arc.Prev
	}
}
