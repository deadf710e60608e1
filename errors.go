package voronoi

import "errors"

// Sentinel errors returned by Compute.
var (
	// ErrNonFiniteSite indicates a site with a NaN or infinite
	// coordinate was supplied. The sweep's numerics (circumcenter,
	// parabola intersection, the event queue's ordering) all assume
	// finite, reasonably-scaled coordinates; this is the one
	// precondition violation the core surfaces to the caller instead
	// of propagating as silent NaN corruption.
	ErrNonFiniteSite = errors.New("voronoi: site has a non-finite coordinate")
)
