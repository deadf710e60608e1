package voronoi

import (
	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

// finalize implements §4.6: after the sweep drains, every remaining
// adjacent pair (A, A.Next) in the beach line traces a breakpoint that
// never converged to a circle event, i.e. an edge unbounded in the
// direction the sweep was heading. Such a half-edge carries its faces
// and twin already (wired by handleSite) but has no Origin yet; this
// pass gives it a provisional anchor and a direction so the clipper has
// something to clip against.
//
// The anchor is built directly as a *dcel.Vertex, not through
// sw.diagram.NewVertex: §3 reserves Diagram.Vertices for the vertices a
// circle event actually produces, and this anchor is never one of
// those — it is a provisional point on the bisector, discarded once
// clipping resolves the ray to a finite segment.
func (sw *sweep) finalize() {
	for arc := sw.beach.Head; arc != nil && arc.Next != nil; arc = arc.Next {
		he := arc.S1
		if he == nil || he.Origin != nil {
			continue
		}

		a, b := arc.Site.Point, arc.Next.Site.Point
		he.Origin = &dcel.Vertex{Point: geom.Midpoint(a, b)}

		dir := geom.Pt(-(b.Y - a.Y), b.X-a.X)
		he.Direction = &dir
	}
}
