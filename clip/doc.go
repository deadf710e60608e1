// Package clip turns a diagram's half-edges into a flat list of line
// segments bounded to a rectangular viewport, per §4.7: both-finite
// edges are clipped as-is, and edges left with only one endpoint after
// the sweep (§4.6 gave them an Origin and a Direction, not a second
// endpoint) are first extended a far distance F along that direction.
//
// The clipper itself is the textbook Cohen–Sutherland algorithm: each
// endpoint gets a 4-bit outcode against the viewport's four half-planes,
// trivial accept/reject short-circuit the common cases, and the
// remaining segments are walked against one violated edge at a time
// until both outcodes are zero or a bounded number of refinements is
// exhausted.
package clip
