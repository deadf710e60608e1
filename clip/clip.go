package clip

import (
	"math"

	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

// degenerateTol and minSegmentLen match the original implementation's
// tuning: edges whose two origins coincide within degenerateTol are
// dropped before clipping, and clipped results shorter than
// minSegmentLen are dropped after, since either is visually and
// geometrically indistinguishable from a point.
const (
	degenerateTol = 1e-12
	minSegmentLen = 1e-9
)

// Segments implements §4.7/§6's collect_segments: every edge pair in d
// is resolved to a finite (p1, p2) pair — extending unbounded edges by
// far along their recorded direction — then clipped against box. far
// should usually be DefaultFar; a caller with a much larger or smaller
// scene may pass its own.
func Segments(d *dcel.Diagram, box Box, far float64) []Segment {
	var out []Segment
	for _, pair := range d.Edges {
		p1, p2, ok := resolveEndpoints(pair, far)
		if !ok {
			continue
		}
		s1, s2, ok := box.clipSegment(p1, p2)
		if !ok {
			continue
		}
		if s1.Sub(s2.Vector).Norm() > minSegmentLen {
			out = append(out, Segment{P1: s1, P2: s2})
		}
	}
	return out
}

// resolveEndpoints turns one edge pair into a finite (p1, p2) pair, or
// ok=false if the edge has no usable geometry at all: both origins
// absent, a zero-length unbounded direction, or two coincident origins.
func resolveEndpoints(pair dcel.EdgePair, far float64) (p1, p2 geom.Point, ok bool) {
	he, het := pair.HE, pair.Twin
	o1, o2 := he.Origin, het.Origin

	if o1 == nil && o2 == nil {
		return geom.Point{}, geom.Point{}, false
	}

	if o1 != nil && o2 != nil {
		if math.Abs(o1.Point.X-o2.Point.X) < degenerateTol && math.Abs(o1.Point.Y-o2.Point.Y) < degenerateTol {
			return geom.Point{}, geom.Point{}, false
		}
		return o1.Point, o2.Point, true
	}

	edge, anchor := he, o1
	if o1 == nil {
		edge, anchor = het, o2
	}
	dir := edge.Direction
	if dir == nil {
		dir = edge.Twin.Direction
	}
	if dir == nil {
		return geom.Point{}, geom.Point{}, false
	}
	n := dir.Norm()
	if n < geom.EPS {
		return geom.Point{}, geom.Point{}, false
	}

	p1 = anchor.Point
	p2 = geom.Pt(p1.X+dir.X/n*far, p1.Y+dir.Y/n*far)
	return p1, p2, true
}

// clipSegment implements the Cohen–Sutherland loop of §4.7 step 5: up
// to 20 refinements against whichever outcode bit is violated, one
// endpoint at a time, until both outcodes are zero (accept) or both
// share a violated bit (trivial reject).
func (b Box) clipSegment(p1, p2 geom.Point) (geom.Point, geom.Point, bool) {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y

	for i := 0; i < 20; i++ {
		c1 := b.outcode(geom.Pt(x1, y1))
		c2 := b.outcode(geom.Pt(x2, y2))

		if c1|c2 == 0 {
			return geom.Pt(x1, y1), geom.Pt(x2, y2), true
		}
		if c1&c2 != 0 {
			return geom.Point{}, geom.Point{}, false
		}

		c := c1
		if c == 0 {
			c = c2
		}

		var x, y float64
		switch {
		case c&codeTop != 0:
			x = x1 + (x2-x1)*(b.YMax-y1)/(y2-y1+geom.EPS)
			y = b.YMax
		case c&codeBottom != 0:
			x = x1 + (x2-x1)*(b.YMin-y1)/(y2-y1+geom.EPS)
			y = b.YMin
		case c&codeRight != 0:
			y = y1 + (y2-y1)*(b.XMax-x1)/(x2-x1+geom.EPS)
			x = b.XMax
		default:
			y = y1 + (y2-y1)*(b.XMin-x1)/(x2-x1+geom.EPS)
			x = b.XMin
		}

		if c == c1 {
			x1, y1 = x, y
		} else {
			x2, y2 = x, y
		}
	}
	return geom.Point{}, geom.Point{}, false
}
