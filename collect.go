package voronoi

import (
	"github.com/SCAnas2005/SAE-Voronoi-P/clip"
	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
)

// CollectSegments is §6's collect_segments: it clips d's edges against
// the rectangular viewport (xmin, xmax, ymin, ymax), extending any edge
// left unbounded by the sweep out to far along its recorded direction.
// It is a thin re-export of clip.Segments so that a caller who only
// imports the root package still gets the whole public surface §6
// names.
func CollectSegments(d *dcel.Diagram, xmin, xmax, ymin, ymax, far float64) []clip.Segment {
	return clip.Segments(d, clip.Box{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}, far)
}
