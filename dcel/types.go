package dcel

import "github.com/SCAnas2005/SAE-Voronoi-P/geom"

// Vertex is a point equidistant from three or more sites, produced by a
// circle event. It is never mutated after creation.
type Vertex struct {
	Point geom.Point
}

// HalfEdge is one directed half of an undirected edge. Face is the cell
// whose site lies to the left of the directed edge. Origin stays nil
// until the breakpoint this half-edge traces collapses at a circle
// event, or until the finalizer anchors an unbounded edge. Direction is
// set only for half-edges that remain unbounded after the sweep.
type HalfEdge struct {
	Origin    *Vertex
	Twin      *HalfEdge
	Face      *Face
	Direction *geom.Point
}

// Face is the Voronoi cell of a single site.
type Face struct {
	Site *geom.Site
}

// EdgePair is one undirected edge of the diagram, represented by its two
// twinned half-edges.
type EdgePair struct {
	HE, Twin *HalfEdge
}

// Diagram is the aggregate output of the sweep: every vertex, edge pair,
// and face discovered. Once Compute returns, a Diagram is read-only.
type Diagram struct {
	Vertices []*Vertex
	Edges    []EdgePair
	Faces    []*Face

	faceOf map[*geom.Site]*Face
}

// NewDiagram returns an empty diagram ready to be populated by a sweep.
func NewDiagram() *Diagram {
	return &Diagram{
		faceOf: make(map[*geom.Site]*Face),
	}
}
