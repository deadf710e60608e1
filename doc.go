// Package voronoi computes the Voronoi diagram of a finite set of 2D
// sites via Fortune's sweep, and clips its edge skeleton against a
// rectangular viewport.
//
// 🚀 What is this module?
//
//	A small, single-purpose library that builds:
//
//	  • A half-edge mesh (package dcel) of vertices, twinned half-edges
//	    and faces, one per site.
//	  • The event-driven sweep itself (package voronoi, this one): site
//	    and circle events drive a beach line of parabolic arcs
//	    (package beachline) through a lazily-invalidated priority queue
//	    (package sweepqueue).
//	  • A Cohen–Sutherland clipper (package clip) that turns the mesh's
//	    dangling rays and finite edges into a flat list of segments
//	    inside a viewport.
//
// Under the hood:
//
//	geom/       — Point, Site, EPS, Circumcenter, ParabolaY
//	dcel/       — half-edge mesh: Vertex, HalfEdge, Face, Diagram
//	sweepqueue/ — lazily-invalidated min-priority event queue
//	beachline/  — doubly-linked sequence of parabolic arcs
//	clip/       — Cohen–Sutherland viewport clipping
//	pointsrc/   — the point-file loader collaborator (§6)
//	render/     — an example PNG rasterizer of the clipped output
//
// The core is strictly single-threaded and synchronous: Compute owns its
// event queue, beach line, and diagram exclusively for the duration of
// one call; on return, the diagram is the caller's to read and is never
// mutated again. Two independent Compute calls share no state and may
// run concurrently.
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// specification this module implements and the grounding ledger behind
// each package's design.
package voronoi
