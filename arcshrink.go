// A 2D computational-geometry kernel for shapes bounded by circular arcs.
//
// This package lets you offset arc-bounded shapes: compute the Minkowski
// sum of a collection of arcs with a disc, and shrink a closed arc polygon
// inward by a given amount with the self-intersections that uniform
// shrinking produces resolved correctly (opposite-edge pinches, collapsing
// neighbor triples, arcs shrinking away).
package arcshrink

import "arcshrink/geom"

type Coord = geom.Coord
type Circle = geom.Circle
type Arc = geom.Arc
type Segment = geom.Segment
type ArcPoly = geom.ArcPoly
type ArcGraph = geom.ArcGraph
type Collision = geom.Collision

// Shrink computes the inward offset of a closed arc polygon by amount,
// returning the forest of disjoint offset polygons that remain. An empty
// result means the polygon collapsed entirely before reaching amount.
//
// Geometric degeneracies never escape as panics; the kernel panics only on
// logic defects, which are recovered here and returned as errors.
func Shrink(poly ArcPoly, amount float64) (result []ArcPoly, err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return poly.Shrunk(amount), nil
}

// Minkowski computes the outer boundary of the given arcs offset by the
// signed radius r, as a graph of arcs joined at junction points.
func Minkowski(arcs []Arc, r float64) (result *ArcGraph, err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return geom.Minkowski(arcs, r), nil
}
