package geom_test

import (
	"testing"

	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
	"github.com/stretchr/testify/require"
)

func TestCircumcenter(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    geom.Point
		wantOK     bool
		wantCenter geom.Point
	}{
		{
			name: "right triangle",
			a:    geom.Pt(0, 0), b: geom.Pt(4, 0), c: geom.Pt(0, 4),
			wantOK: true, wantCenter: geom.Pt(2, 2),
		},
		{
			name: "collinear points",
			a:    geom.Pt(0, 0), b: geom.Pt(1, 0), c: geom.Pt(2, 0),
			wantOK: false,
		},
		{
			name: "nearly collinear within EPS",
			a:    geom.Pt(0, 0), b: geom.Pt(1, 0), c: geom.Pt(2, geom.EPS/10),
			wantOK: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			center, ok := geom.Circumcenter(tc.a, tc.b, tc.c)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				require.InDelta(t, tc.wantCenter.X, center.X, 1e-9)
				require.InDelta(t, tc.wantCenter.Y, center.Y, 1e-9)
				require.InDelta(t, center.Sub(tc.a.Vector).Norm(), center.Sub(tc.b.Vector).Norm(), 1e-9)
				require.InDelta(t, center.Sub(tc.b.Vector).Norm(), center.Sub(tc.c.Vector).Norm(), 1e-9)
			}
		})
	}
}
