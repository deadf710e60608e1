package geom_test

import (
	"testing"

	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
	"github.com/stretchr/testify/require"
)

func TestParabolaY_Degenerate(t *testing.T) {
	p1 := geom.Pt(5, 3)
	p2 := geom.Pt(7, 9)

	// p1 sits on the directrix: breakpoint is p1.y.
	require.Equal(t, p1.Y, geom.ParabolaY(p1, p2, p1.X))
	// p2 sits on the directrix: breakpoint is p2.y.
	require.Equal(t, p2.Y, geom.ParabolaY(p1, p2, p2.X))
}

func TestParabolaY_SameX(t *testing.T) {
	p1 := geom.Pt(4, 1)
	p2 := geom.Pt(4, 9)
	got := geom.ParabolaY(p1, p2, 0)
	require.InDelta(t, 5.0, got, 1e-12)
}

func TestParabolaY_Symmetric(t *testing.T) {
	// Two foci symmetric about the x-axis: the breakpoint at any
	// directrix to their left must sit on y=0 by symmetry.
	p1 := geom.Pt(0, 5)
	p2 := geom.Pt(0, -5)
	got := geom.ParabolaY(p1, p2, -10)
	require.InDelta(t, 0.0, got, 1e-9)
}

func TestParabolaY_Monotone(t *testing.T) {
	// As the directrix sweeps from high x to low x, the breakpoint
	// between two fixed foci must move monotonically in one direction
	// (per the Open Question resolved in DESIGN.md) — it must never
	// reverse course partway through the sweep.
	p1 := geom.Pt(0, 0)
	p2 := geom.Pt(10, 10)

	ys := make([]float64, 0, 19)
	for sx := -1.0; sx > -20; sx -= 1 {
		ys = append(ys, geom.ParabolaY(p1, p2, sx))
	}

	increasing, decreasing := true, true
	for i := 1; i < len(ys); i++ {
		if ys[i] < ys[i-1] {
			increasing = false
		}
		if ys[i] > ys[i-1] {
			decreasing = false
		}
	}
	require.True(t, increasing || decreasing, "breakpoint trajectory must be monotone as sx decreases, got %v", ys)
}
