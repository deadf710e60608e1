package dcel_test

import (
	"fmt"

	"github.com/SCAnas2005/SAE-Voronoi-P/dcel"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

func ExampleDiagram_NewEdge() {
	d := dcel.NewDiagram()
	left := geom.NewSite(0, 0)
	right := geom.NewSite(10, 0)

	he, twin := d.NewEdge(left, right)
	fmt.Println(he.Twin == twin, len(d.Faces), len(d.Edges))
	// Output: true 2 1
}
