package beachline_test

import (
	"fmt"

	"github.com/SCAnas2005/SAE-Voronoi-P/beachline"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

func ExampleList_Split() {
	var l beachline.List
	a := l.InsertFirst(geom.NewSite(0, 0))
	created, duplicate := l.Split(a, geom.NewSite(5, 3))

	fmt.Println(a.Next == created, created.Next == duplicate, duplicate.Next == nil)
	// Output: true true true
}
