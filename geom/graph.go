package geom

import "math"

// ArcGraph is a graph with Arc nodes and Point-labeled edges: the label is
// the junction point shared by the two incident arcs. Nodes live in an
// arena and are addressed by index; edges are an adjacency list of
// (index, index, point) triples.
//
// Graphs are built bottom-up and combined with Sum; nothing mutates in
// place once built. Within a single shape's offset the edges are
// effectively undirected, but Sum orients new edges (by the order of A and
// B) so that traversal keeps a consistent winding.
type ArcGraph struct {
	Nodes []Arc
	Edges []GraphEdge
}

// GraphEdge connects Nodes[A] to Nodes[B] at the junction point At.
type GraphEdge struct {
	A, B int
	At   Coord
}

// AddNode appends an arc and returns its index.
func (g *ArcGraph) AddNode(a Arc) int {
	g.Nodes = append(g.Nodes, a)
	return len(g.Nodes) - 1
}

func (g *ArcGraph) AddEdge(a, b int, at Coord) {
	g.Edges = append(g.Edges, GraphEdge{A: a, B: b, At: at})
}

// Neighbors returns the indices adjacent to node i, in edge order.
func (g *ArcGraph) Neighbors(i int) []int {
	var out []int
	for _, e := range g.Edges {
		switch i {
		case e.A:
			out = append(out, e.B)
		case e.B:
			out = append(out, e.A)
		}
	}
	return out
}

// MinkowskiArc returns the boundary of arc offset by the signed radius r,
// as a closed loop of arcs.
//
// When |r| < |arc.Radius| the boundary has four pieces: the outer arc
// (radius grown by r), the inner arc (radius shrunk by r, span reversed),
// and two semicircular caps around the arc's endpoints. When the offset
// radius reaches the arc's own radius that construction self-intersects;
// what remains is a lens bounded by the outer arc and two cap arcs meeting
// at the single surviving intersection of the two cap circles, picked on
// the side selected by the winding of the arc.
func MinkowskiArc(arc Arc, r float64) *ArcGraph {
	g := &ArcGraph{}
	sign := math.Copysign(1, arc.Span)
	outer := g.AddNode(arc.WithRadius(arc.Radius + r))

	if math.Abs(r) < math.Abs(arc.Radius) {
		endCap := Arc{
			Mid:    arc.EndAngle() + sign*math.Pi/2,
			Span:   sign * math.Pi,
			Radius: r,
			Center: arc.EndPoint(),
		}
		startCap := Arc{
			Mid:    arc.StartAngle() - sign*math.Pi/2,
			Span:   sign * math.Pi,
			Radius: r,
			Center: arc.StartPoint(),
		}
		end := g.AddNode(endCap)
		inner := g.AddNode(arc.WithRadius(arc.Radius - r).WithSpan(-arc.Span))
		start := g.AddNode(startCap)
		g.AddEdge(outer, end, endCap.StartPoint())
		g.AddEdge(end, inner, endCap.EndPoint())
		g.AddEdge(inner, start, startCap.StartPoint())
		g.AddEdge(start, outer, startCap.EndPoint())
		return g
	}

	ps := NewCircle(r, arc.StartPoint()).Intersect(NewCircle(r, arc.EndPoint()))
	// The two cap circles intersect on both sides of the chord; only the
	// point on the winding side closes the lens. The deterministic order of
	// Intersect makes this an index pick.
	idx := int((sign + 1) / 2)
	if idx >= len(ps) {
		return g
	}
	p := ps[idx]

	fromAngles := ArcFromAnglesCCW
	if arc.Span < 0 {
		fromAngles = ArcFromAnglesCW
	}
	endArc := fromAngles(arc.EndAngle(), AngleOf(p.Minus(arc.EndPoint())), r, arc.EndPoint())
	startArc := fromAngles(AngleOf(p.Minus(arc.StartPoint())), arc.StartAngle(), r, arc.StartPoint())
	end := g.AddNode(endArc)
	start := g.AddNode(startArc)
	g.AddEdge(outer, end, endArc.StartPoint())
	g.AddEdge(end, start, endArc.EndPoint())
	g.AddEdge(start, outer, startArc.EndPoint())
	return g
}

// Sum returns a new graph containing both operands, stitched together with
// an edge at every arc-arc intersection between them. The orientation of
// each new edge follows the sign of the determinant of the two arcs' radius
// vectors at the intersection, scaled by their span signs, so that the
// combined boundary keeps a consistent winding. Up to that bookkeeping the
// operation is commutative and associative.
func (g *ArcGraph) Sum(other *ArcGraph) *ArcGraph {
	out := &ArcGraph{
		Nodes: append([]Arc(nil), g.Nodes...),
		Edges: append([]GraphEdge(nil), g.Edges...),
	}
	offset := len(out.Nodes)
	out.Nodes = append(out.Nodes, other.Nodes...)
	for _, e := range other.Edges {
		out.AddEdge(e.A+offset, e.B+offset, e.At)
	}
	for i, a := range g.Nodes {
		for j, b := range other.Nodes {
			for _, p := range a.Intersect(b) {
				d := Det(p.Minus(a.Center), p.Minus(b.Center)) *
					math.Copysign(1, a.Span) * math.Copysign(1, b.Span)
				if d > 0 {
					out.AddEdge(i, offset+j, p)
				} else {
					out.AddEdge(offset+j, i, p)
				}
			}
		}
	}
	return out
}

// Minkowski returns the outer silhouette of the union of each arc's offset
// boundary: the per-arc offsets are summed, then every junction that ended
// up strictly inside some input arc's offset band is pruned away. What
// remains are the edges of the combined shape's outer boundary.
func Minkowski(arcs []Arc, r float64) *ArcGraph {
	sum := &ArcGraph{}
	for _, a := range arcs {
		sum = sum.Sum(MinkowskiArc(a, r))
	}
	pruned := make([]GraphEdge, 0, len(sum.Edges))
	for _, e := range sum.Edges {
		interior := false
		for _, a := range arcs {
			if a.DistanceToPoint(e.At) < math.Abs(r)-Tolerance {
				interior = true
				break
			}
		}
		if !interior {
			pruned = append(pruned, e)
		}
	}
	sum.Edges = pruned
	return sum
}
