package clip

import "github.com/SCAnas2005/SAE-Voronoi-P/geom"

// DefaultFar is the distance an unbounded edge is extended along its
// direction before clipping, per §4.7's F=1e5 default.
const DefaultFar = 1e5

// Box is the rectangular viewport segments are clipped against.
type Box struct {
	XMin, XMax, YMin, YMax float64
}

// Segment is one clipped, finite piece of a diagram edge.
type Segment struct {
	P1, P2 geom.Point
}

// outcode bits for Cohen–Sutherland: left, right, bottom, top.
const (
	codeLeft   = 1
	codeRight  = 2
	codeBottom = 4
	codeTop    = 8
)

func (b Box) outcode(p geom.Point) int {
	c := 0
	if p.X < b.XMin {
		c |= codeLeft
	}
	if p.X > b.XMax {
		c |= codeRight
	}
	if p.Y < b.YMin {
		c |= codeBottom
	}
	if p.Y > b.YMax {
		c |= codeTop
	}
	return c
}
