package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/SCAnas2005/SAE-Voronoi-P/clip"
	"github.com/SCAnas2005/SAE-Voronoi-P/geom"
)

// lineHalfWidth is the half-thickness, in destination pixels, of a
// rasterized edge; siteRadius is the half-width of a site marker.
const (
	lineHalfWidth = 0.5
	siteRadius    = 2.5
)

// PNG rasterizes segs and sites into a box.XMax-box.XMin by
// box.YMax-box.YMin scene, scaled by scale pixels per unit, and writes
// it to w as a grayscale PNG. Edges are stroked as thin quads and sites
// drawn as small filled squares, both scan-converted by
// golang.org/x/image/vector's polygon rasterizer rather than a
// hand-rolled Bresenham walk.
func PNG(w io.Writer, segs []clip.Segment, sites []geom.Point, box clip.Box, scale float64) error {
	width := int((box.XMax-box.XMin)*scale) + 1
	height := int((box.YMax-box.YMin)*scale) + 1
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	project := func(p geom.Point) (float32, float32) {
		x := (p.X - box.XMin) * scale
		y := (box.YMax - p.Y) * scale
		return float32(x), float32(y)
	}

	z := vector.NewRasterizer(width, height)
	for _, s := range segs {
		x1, y1 := project(s.P1)
		x2, y2 := project(s.P2)
		addStroke(z, x1, y1, x2, y2, lineHalfWidth)
	}
	for _, p := range sites {
		x, y := project(p)
		addSquare(z, x, y, siteRadius)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})

	return png.Encode(w, img)
}

// addStroke appends the thin rectangular quad tracing the segment
// (x1,y1)-(x2,y2) at half-width hw as one closed subpath.
func addStroke(z *vector.Rasterizer, x1, y1, x2, y2, hw float32) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		addSquare(z, x1, y1, hw)
		return
	}
	nx, ny := -dy/length*hw, dx/length*hw

	z.MoveTo(x1+nx, y1+ny)
	z.LineTo(x2+nx, y2+ny)
	z.LineTo(x2-nx, y2-ny)
	z.LineTo(x1-nx, y1-ny)
	z.ClosePath()
}

// addSquare appends a small axis-aligned square centered on (x, y) as
// one closed subpath, marking a site.
func addSquare(z *vector.Rasterizer, x, y, r float32) {
	z.MoveTo(x-r, y-r)
	z.LineTo(x+r, y-r)
	z.LineTo(x+r, y+r)
	z.LineTo(x-r, y+r)
	z.ClosePath()
}
