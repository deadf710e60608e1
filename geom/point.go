package geom

import (
	"fmt"

	"github.com/blevesearch/geo/r2"
)

// EPS is the single global tolerance governing every near-zero or
// near-equal test in the sweep. 1e-9 is the operating point the
// original implementation was tuned against; lower values expose
// sensitivity in ParabolaY, higher values fuse nearby vertices.
const EPS = 1e-9

// Point is a 2D position. It embeds r2.Vector so callers get the usual
// vector algebra (Add, Sub, Mul, Dot, Cross, Norm) for free; geom only
// adds the epsilon-aware comparisons and Voronoi-specific predicates.
type Point struct {
	r2.Vector
}

// Pt constructs a Point from raw coordinates.
func Pt(x, y float64) Point {
	return Point{r2.Vector{X: x, Y: y}}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Pt((p.X+q.X)/2, (p.Y+q.Y)/2)
}

// NearEqual reports whether the scalars a and b are within EPS of each
// other.
func NearEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < EPS
}

// Site is an input generator of the diagram. Two sites at identical
// coordinates remain distinct: identity is by pointer, never by value,
// so the caller is never required to pre-deduplicate for the core to
// behave (though the spec leaves duplicate-site output unspecified).
type Site struct {
	Point
}

// NewSite allocates a Site at (x, y).
func NewSite(x, y float64) *Site {
	return &Site{Point: Pt(x, y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
