package dcel_test

import (
	"testing"

	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
	"github.com/stretchr/testify/require"
)

func TestFaceOf_CreatesAndCaches(t *testing.T) {
	d := dcel.NewDiagram()
	s := geom.NewSite(1, 2)

	f1 := d.FaceOf(s)
	f2 := d.FaceOf(s)

	require.Same(t, f1, f2, "FaceOf must return the same face for the same site")
	require.Len(t, d.Faces, 1)
	require.Same(t, s, f1.Site)
}

func TestFaceOf_DuplicateCoordinatesDistinctSites(t *testing.T) {
	d := dcel.NewDiagram()
	a := geom.NewSite(1, 1)
	b := geom.NewSite(1, 1)

	fa := d.FaceOf(a)
	fb := d.FaceOf(b)

	require.NotSame(t, fa, fb)
	require.Len(t, d.Faces, 2)
}

func TestNewEdge(t *testing.T) {
	d := dcel.NewDiagram()
	left := geom.NewSite(0, 0)
	right := geom.NewSite(10, 0)

	he, twin := d.NewEdge(left, right)

	require.Same(t, twin, he.Twin)
	require.Same(t, he, twin.Twin)
	require.Same(t, left, he.Face.Site)
	require.Same(t, right, twin.Face.Site)
	require.Nil(t, he.Origin)
	require.Nil(t, twin.Origin)
	require.Len(t, d.Edges, 1)
	require.Same(t, he, d.Edges[0].HE)
	require.Same(t, twin, d.Edges[0].Twin)
}

func TestNewVertex(t *testing.T) {
	d := dcel.NewDiagram()
	v1 := d.NewVertex(geom.Pt(1, 1))
	v2 := d.NewVertex(geom.Pt(2, 2))

	require.Equal(t, []*dcel.Vertex{v1, v2}, d.Vertices)
}
