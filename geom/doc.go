// Package geom defines the 2D primitives shared by the rest of the
// Voronoi sweep: a vector-backed Point and Site type, a single global
// tolerance EPS, and the two predicates whose numerics the whole
// construction depends on — Circumcenter and ParabolaY.
//
// What:
//
//   - Point embeds github.com/blevesearch/geo/r2.Vector, reusing its
//     Add/Sub/Dot/Cross/Norm instead of hand-rolling vector algebra.
//   - Site is an identity-bearing wrapper around a Point: two sites at
//     the same coordinates are still distinct sites (compared by pointer),
//     matching the "comparison is by identity" rule for faces.
//   - EPS and NearEqual centralize the tolerance used everywhere a
//     floating-point "near enough" decision is made.
//   - Circumcenter and ParabolaY hold the module's geometric epsilon
//     tests. Outside geom, EPS also appears in the beach line's
//     breakpoint comparison, the event queue's tie-breaking on x, and
//     the clipper's direction-length and division guards.
//
// Why:
//
//   - Keeping the fragile numerics in one small, heavily-tested package
//     means the sweep driver, beach line, and clipper can be reasoned
//     about as exact logic over the predicates' outputs.
package geom
