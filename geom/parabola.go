package geom

import "math"

// ParabolaY returns the y-coordinate of the intersection (breakpoint)
// between the two parabolas with foci p1, p2 and common directrix
// x = sx. Together with Circumcenter it holds the geometric EPS tests;
// the beach line's FindAbove, the event queue's ordering and the clipper
// also use EPS.
//
// Three degenerate cases fall back to an exact answer instead of
// solving the quadratic:
//
//   - p1 sits on the directrix: the parabola with focus p1 degenerates
//     to the vertical line x = p1.x, so the breakpoint is p1.y.
//   - symmetrically for p2.
//   - p1 and p2 share the same x: the two parabolas are congruent and
//     cross exactly halfway between their foci.
//
// Otherwise the quadratic a·y² + b·y + c = 0 (derived from equating the
// two parabolas' x as functions of y) is solved directly; a negative
// discriminant is clamped to zero rather than treated as an error, and
// of the two roots the one selected is y1 when p1.x < p2.x, else y2 —
// the convention that keeps the returned breakpoint moving monotonically
// as sx decreases (see DESIGN.md for the Open Question this resolves).
func ParabolaY(p1, p2 Point, sx float64) float64 {
	d1 := 2 * (p1.X - sx)
	d2 := 2 * (p2.X - sx)

	if d1 > -EPS && d1 < EPS {
		return p1.Y
	}
	if d2 > -EPS && d2 < EPS {
		return p2.Y
	}
	if NearEqual(p1.X, p2.X) {
		return (p1.Y + p2.Y) / 2
	}

	a := 1/d1 - 1/d2
	b := -2 * (p1.Y/d1 - p2.Y/d2)
	c := (p1.Y*p1.Y+p1.X*p1.X-sx*sx)/d1 - (p2.Y*p2.Y+p2.X*p2.X-sx*sx)/d2

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	y1 := (-b + sq) / (2 * a)
	y2 := (-b - sq) / (2 * a)

	if p1.X < p2.X {
		return y1
	}
	return y2
}
