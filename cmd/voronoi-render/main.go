// Command voronoi-render reads sites from a point file, computes their
// Voronoi diagram, clips it to a viewport, and writes the result as a
// PNG — wiring pointsrc, the core sweep, clip, and render into one
// runnable path.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SCAnas2005/SAE-Voronoi-P"
	"github.com/SCAnas2005/SAE-Voronoi-P/clip"
	"github.com/SCAnas2005/SAE-Voronoi-P/pointsrc"
	"github.com/SCAnas2005/SAE-Voronoi-P/render"
)

func main() {
	in := flag.String("in", "", "point file to read sites from (required)")
	out := flag.String("out", "diagram.png", "PNG file to write")
	xmin := flag.Float64("xmin", 0, "viewport left edge")
	xmax := flag.Float64("xmax", 100, "viewport right edge")
	ymin := flag.Float64("ymin", 0, "viewport bottom edge")
	ymax := flag.Float64("ymax", 100, "viewport top edge")
	scale := flag.Float64("scale", 4, "pixels per unit")
	flag.Parse()

	if err := run(*in, *out, *xmin, *xmax, *ymin, *ymax, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "voronoi-render:", err)
		os.Exit(1)
	}
}

func run(in, out string, xmin, xmax, ymin, ymax, scale float64) error {
	if in == "" {
		return fmt.Errorf("-in is required")
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	sites, err := pointsrc.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	diagram, err := voronoi.Compute(sites)
	if err != nil {
		return err
	}

	box := clip.Box{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
	segs := voronoi.CollectSegments(diagram, box.XMin, box.XMax, box.YMin, box.YMax, clip.DefaultFar)

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	return render.PNG(w, segs, sites, box, scale)
}
