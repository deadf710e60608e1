package geom

// Circumcenter returns the point equidistant from a, b and c — the
// Voronoi vertex the three sites would share — or ok=false if the
// three points are collinear (within EPS).
//
// The computation translates so that c sits at the origin, which keeps
// the determinant and both numerators free of the (generally large)
// absolute site coordinates.
func Circumcenter(a, b, c Point) (center Point, ok bool) {
	ax, ay := a.X-c.X, a.Y-c.Y
	bx, by := b.X-c.X, b.Y-c.Y

	d := 2 * (ax*by - ay*bx)
	if d > -EPS && d < EPS {
		return Point{}, false
	}

	aNorm2 := ax*ax + ay*ay
	bNorm2 := bx*bx + by*by

	ux := (by*aNorm2-ay*bNorm2)/d + c.X
	uy := (ax*bNorm2-bx*aNorm2)/d + c.Y

	return Pt(ux, uy), true
}
