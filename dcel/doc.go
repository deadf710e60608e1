// Package dcel implements the half-edge mesh that records the planar
// subdivision as the sweep discovers it: vertices, twinned half-edges,
// and faces.
//
// What:
//
//   - Vertex is a 2D position. The vertices listed in Diagram.Vertices
//     are created by circle events; the finalizer also creates anchor
//     vertices for unbounded edges, which are not listed there.
//   - HalfEdge is one direction of an undirected edge; it carries an
//     optional Origin (absent until a circle event or the finalizer
//     fills it in), a mandatory Twin, the Face to its left, and an
//     optional Direction used only while the edge remains unbounded.
//   - Face is one per site, created on demand and looked up by the
//     identity of its *geom.Site.
//   - Diagram is the aggregate: ordered Vertices, ordered twin-pair
//     Edges, and ordered Faces — exactly what a caller may read once
//     the sweep hands the diagram back.
//
// Mutation surface is intentionally narrow: FaceOf, NewEdge and
// NewVertex are the only operations exposed. Everything else (assigning
// an Origin or a Direction) is a direct field write performed by the
// sweep driver, which is the only caller that ever holds a *Diagram
// under construction.
//
// Grounded on the teacher's core.Graph append-on-create allocation
// style, but without sentinel errors (no operation here can fail) and
// without core.Graph's sync.RWMutex fields — the sweep is
// single-threaded and synchronous by
// specification (§5), so replicating core's concurrency guarantees here
// would protect an invariant nothing in this module needs.
package dcel
