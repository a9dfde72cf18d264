// Demo of arc-polygon shrinking. Generates a random arc polygon from a
// seed, offsets it inward, and renders the original (green) and the
// resulting offset polygons (blue) to a PNG.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"arcshrink"
	"arcshrink/gen"
	"arcshrink/geom"
)

var (
	seed     = kingpin.Flag("seed", "Generator seed.").Default("0").Int64()
	vertices = kingpin.Flag("vertices", "Segment count of the generated polygon.").Default("5").Int()
	radius   = kingpin.Flag("radius", "Radius of the vertex circle.").Default("200").Float64()
	noise    = kingpin.Flag("noise", "Vertex jitter radius.").Default("30").Float64()
	bendMin  = kingpin.Flag("bend-min", "Minimum edge bend.").Default("0.4").Float64()
	bendMax  = kingpin.Flag("bend-max", "Maximum edge bend.").Default("0.5").Float64()
	shrink   = kingpin.Flag("shrink", "Inward offset amount.").Default("30").Float64()
	out      = kingpin.Flag("out", "Output PNG path.").Default("/tmp/arcdemo.png").String()
	show     = kingpin.Flag("show", "Preview the PNG in the terminal (iTerm2).").Bool()
)

const padding = 40

func main() {
	kingpin.Parse()

	params := gen.Params{
		Vertices:    *vertices,
		Radius:      *radius,
		OffsetNoise: *noise,
		BendMin:     *bendMin,
		BendMax:     *bendMax,
	}
	poly := gen.Generate(*seed, params)

	result, err := arcshrink.Shrink(poly, *shrink)
	if err != nil {
		fmt.Printf("%s %v\n", aurora.Red("shrink failed:"), err)
		os.Exit(1)
	}

	fmt.Printf("%s %d segments, offset by %g\n",
		aurora.Green("input:"), poly.Len(), *shrink)
	if len(result) == 0 {
		fmt.Printf("%s polygon collapsed entirely\n", aurora.Yellow("output:"))
	}
	for i, p := range result {
		fmt.Printf("%s #%d with %d segments\n", aurora.Blue("output:"), i, p.Len())
	}

	if err := render(poly, result, *out); err != nil {
		fmt.Printf("%s %v\n", aurora.Red("render failed:"), err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
	if *show {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func render(original geom.ArcPoly, shrunken []geom.ArcPoly, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, a := range original.Arcs() {
		for _, p := range []geom.Coord{a.StartPoint(), a.EndPoint(), a.MidPoint()} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(maxX-minX) + padding*2
	height := int(maxY-minY) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetLineWidth(2)

	// Model space is y-up; the image is y-down, so angles are mirrored.
	at := func(p geom.Coord) (float64, float64) {
		return padding + p.X - minX, float64(height) - padding - (p.Y - minY)
	}
	drawPoly := func(p geom.ArcPoly) {
		for _, a := range p.Arcs() {
			if !a.Valid() {
				continue
			}
			x, y := at(a.Center)
			c.DrawArc(x, y, math.Abs(a.Radius), -a.StartAngle(), -a.EndAngle())
			c.Stroke()
		}
	}

	c.SetRGB(0, 0.8, 0)
	drawPoly(original)
	c.SetRGB(0.3, 0.5, 1)
	for _, p := range shrunken {
		drawPoly(p)
	}
	return c.SavePNG(path)
}
