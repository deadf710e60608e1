package dcel

import "github.com/SCAnas2005/SAE-Voronoi-P/geom"

// FaceOf returns the face whose site is site, creating and appending it
// to the diagram if it does not exist yet. Comparison is by pointer
// identity, so two sites at the same coordinates still get distinct
// faces.
func (d *Diagram) FaceOf(site *geom.Site) *Face {
	if f, ok := d.faceOf[site]; ok {
		return f
	}
	f := &Face{Site: site}
	d.faceOf[site] = f
	d.Faces = append(d.Faces, f)
	return f
}

// NewEdge allocates two twinned half-edges tracing the breakpoint
// between leftSite and rightSite, assigns their faces, appends the pair
// to the diagram, and returns both half-edges with undefined origins.
func (d *Diagram) NewEdge(leftSite, rightSite *geom.Site) (he, twin *HalfEdge) {
	he = &HalfEdge{}
	twin = &HalfEdge{}
	he.Twin = twin
	twin.Twin = he
	he.Face = d.FaceOf(leftSite)
	twin.Face = d.FaceOf(rightSite)
	d.Edges = append(d.Edges, EdgePair{HE: he, Twin: twin})
	return he, twin
}

// NewVertex appends v to the diagram's vertex list and returns it.
// Circle-event handling is the only caller: §3 reserves Diagram.Vertices
// for vertices a valid circle event actually produces.
func (d *Diagram) NewVertex(p geom.Point) *Vertex {
	v := &Vertex{Point: p}
	d.Vertices = append(d.Vertices, v)
	return v
}
