package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

var dbgPalette = [][3]float64{
	{0, 1, 1},
	{1, 0.5, 0},
	{0.5, 1, 0},
	{1, 0, 1},
	{1, 1, 0},
	{0.3, 0.6, 1},
}

func dbgColor(c *gg.Context, i int) {
	rgb := dbgPalette[CircularIndex(i, len(dbgPalette))]
	c.SetRGB(rgb[0], rgb[1], rgb[2])
}

func dbgContext(arcs []Arc, scale float64) (*gg.Context, func(Coord) (float64, float64)) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	expand := func(p Coord) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, a := range arcs {
		expand(a.StartPoint())
		expand(a.EndPoint())
		expand(a.MidPoint())
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Map model space to image space with the origin at the bottom left.
	at := func(p Coord) (float64, float64) {
		return dbgDrawPadding + scale*(p.X-minX), float64(height) - dbgDrawPadding - scale*(p.Y-minY)
	}
	return c, at
}

func dbgDrawArc(c *gg.Context, at func(Coord) (float64, float64), a Arc, scale float64) {
	if !a.Valid() {
		return
	}
	x, y := at(a.Center)
	// The image y axis points down, so angles are mirrored.
	c.DrawArc(x, y, scale*math.Abs(a.Radius), -a.StartAngle(), -a.EndAngle())
	c.Stroke()
}

func (ap ArcPoly) dbgDraw(scale float64) {
	dbgDrawPolys([]ArcPoly{ap}, scale)
}

func dbgDrawPolys(polys []ArcPoly, scale float64) {
	var arcs []Arc
	for _, p := range polys {
		arcs = append(arcs, p.Arcs()...)
	}
	c, at := dbgContext(arcs, scale)
	c.SetLineWidth(2)
	for i, p := range polys {
		dbgColor(c, i)
		for _, a := range p.Arcs() {
			dbgDrawArc(c, at, a, scale)
		}
		for _, s := range p.Segs {
			x, y := at(s.Initial)
			c.DrawCircle(x, y, 3)
			c.Fill()
		}
	}
	c.SavePNG("/tmp/arc_poly.png")
	imgcat.CatFile("/tmp/arc_poly.png", os.Stdout)
}

func (g *ArcGraph) dbgDraw(scale float64) {
	c, at := dbgContext(g.Nodes, scale)
	c.SetLineWidth(2)
	for i, a := range g.Nodes {
		dbgColor(c, i)
		dbgDrawArc(c, at, a, scale)
	}
	for _, e := range g.Edges {
		x, y := at(e.At)
		dbgColor(c, e.A)
		c.DrawCircle(x, y, 4)
		c.Stroke()
		dbgColor(c, e.B)
		c.DrawCircle(x, y, 6)
		c.Stroke()
	}
	c.SavePNG("/tmp/arc_graph.png")
	imgcat.CatFile("/tmp/arc_graph.png", os.Stdout)
}
