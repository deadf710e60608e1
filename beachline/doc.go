// Package beachline implements the beach line: a doubly-linked sequence
// of parabolic arcs, ordered by the y-coordinate of their breakpoints at
// the current sweep position.
//
// What:
//
//   - Arc is one visible parabola, with Prev/Next links, a back-reference
//     to its currently scheduled removal Event (if any), and S0/S1, the
//     two half-edges whose Origin this arc will assign when it is
//     removed.
//   - List holds the Head pointer and the three structural operations
//     the sweep driver needs: InsertFirst (empty beach line), Split
//     (insert a new arc under the one it lands on, spawning the
//     duplicate described in §4.4), and Remove (unlink an arc consumed
//     by a circle event).
//   - FindAbove performs the linear walk that locates the arc a new site
//     lands under, using geom.ParabolaY for the breakpoint test.
//
// This is deliberately a plain linked list, not a balanced tree: the
// specification's invariants are structural, not representational, and
// the teacher's own traversal idiom (bfs/dfs: explicit Prev/Next pointer
// walks, no augmented tree) is the one this package follows. A balanced
// structure keyed by breakpoint y is a valid drop-in for O(n log n)
// worst case but is not required here.
//
// Scheduling circle events (the Check procedure of §4.4) is not part of
// this package: it needs the live event queue the sweep driver owns, so
// it lives alongside the rest of invariant maintenance in the voronoi
// package's sweep driver (see DESIGN.md).
package beachline
