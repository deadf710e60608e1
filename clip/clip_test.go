package clip_test

import (
	"testing"

	"github.com/SCAnas2005/SAE-Voronoi-P/clip"
	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
	"github.com/stretchr/testify/require"
)

var unitBox = clip.Box{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

func newBoundedEdge(t *testing.T, d *dcel.Diagram, a, b geom.Point) dcel.EdgePair {
	t.Helper()
	siteA, siteB := geom.NewSite(0, 0), geom.NewSite(1, 1)
	he, het := d.NewEdge(siteA, siteB)
	he.Origin = d.NewVertex(a)
	het.Origin = d.NewVertex(b)
	return dcel.EdgePair{HE: he, Twin: het}
}

func TestSegments_FullyInside(t *testing.T) {
	d := dcel.NewDiagram()
	newBoundedEdge(t, d, geom.Pt(-1, -1), geom.Pt(1, 1))

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Len(t, segs, 1)
	require.Equal(t, geom.Pt(-1, -1), segs[0].P1)
	require.Equal(t, geom.Pt(1, 1), segs[0].P2)
}

func TestSegments_BothOriginsAbsentSkipped(t *testing.T) {
	d := dcel.NewDiagram()
	siteA, siteB := geom.NewSite(0, 0), geom.NewSite(1, 1)
	d.NewEdge(siteA, siteB)

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Empty(t, segs)
}

func TestSegments_DegenerateSkipped(t *testing.T) {
	d := dcel.NewDiagram()
	newBoundedEdge(t, d, geom.Pt(0, 0), geom.Pt(0, 0))

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Empty(t, segs)
}

func TestSegments_EntirelyOutsideSkipped(t *testing.T) {
	d := dcel.NewDiagram()
	newBoundedEdge(t, d, geom.Pt(100, 100), geom.Pt(200, 200))

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Empty(t, segs)
}

func TestSegments_ClippedToViewport(t *testing.T) {
	d := dcel.NewDiagram()
	newBoundedEdge(t, d, geom.Pt(-100, 0), geom.Pt(100, 0))

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Len(t, segs, 1)
	require.InDelta(t, -10, segs[0].P1.X, 1e-9)
	require.InDelta(t, 10, segs[0].P2.X, 1e-9)
	require.InDelta(t, 0, segs[0].P1.Y, 1e-9)
	require.InDelta(t, 0, segs[0].P2.Y, 1e-9)
}

func TestSegments_UnboundedEdgeExtendedAlongDirection(t *testing.T) {
	d := dcel.NewDiagram()
	siteA, siteB := geom.NewSite(0, -1), geom.NewSite(0, 1)
	he, het := d.NewEdge(siteA, siteB)
	he.Origin = d.NewVertex(geom.Pt(0, 0))
	dir := geom.Pt(1, 0)
	he.Direction = &dir

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Len(t, segs, 1)
	require.InDelta(t, 0, segs[0].P1.X, 1e-9)
	require.InDelta(t, 10, segs[0].P2.X, 1e-9)
}

func TestSegments_UnboundedEdgeWithNoDirectionSkipped(t *testing.T) {
	d := dcel.NewDiagram()
	siteA, siteB := geom.NewSite(0, -1), geom.NewSite(0, 1)
	he, het := d.NewEdge(siteA, siteB)
	he.Origin = d.NewVertex(geom.Pt(0, 0))
	_ = het

	segs := clip.Segments(d, unitBox, clip.DefaultFar)
	require.Empty(t, segs)
}
