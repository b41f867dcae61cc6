// Package index provides a bounding-box broad-phase filter so the
// compiler's pairwise shape-clipping passes only run exact geometry on
// candidates whose boxes already overlap. Adapted from the grid-based
// nearest-road spatial index the map tooling this compiler grew out of
// used for snapping query points to edges, generalized here from a
// lat/lon grid to an R-tree over arbitrary planar bounding boxes.
package index

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// Box is an axis-aligned bounding box in the plane.
type Box struct {
	Min, Max orb.Point
}

// Bound returns b as an orb.Bound.
func (b Box) Bound() orb.Bound {
	return orb.Bound{Min: b.Min, Max: b.Max}
}

// BoxOf computes the bounding box of a set of points.
func BoxOf(xs, ys []float64) Box {
	if len(xs) == 0 {
		return Box{}
	}
	box := Box{Min: orb.Point{xs[0], ys[0]}, Max: orb.Point{xs[0], ys[0]}}
	for i := 1; i < len(xs); i++ {
		if xs[i] < box.Min[0] {
			box.Min[0] = xs[i]
		}
		if xs[i] > box.Max[0] {
			box.Max[0] = xs[i]
		}
		if ys[i] < box.Min[1] {
			box.Min[1] = ys[i]
		}
		if ys[i] > box.Max[1] {
			box.Max[1] = ys[i]
		}
	}
	return box
}

// Index is a broad-phase spatial index over integer-keyed bounding boxes.
type Index struct {
	tree rtree.RTreeG[int]
}

// New builds an empty Index.
func New() *Index {
	return &Index{}
}

// Insert adds key with bounding box box to the index.
func (ix *Index) Insert(key int, box Box) {
	bound := box.Bound()
	ix.tree.Insert([2]float64{bound.Min[0], bound.Min[1]}, [2]float64{bound.Max[0], bound.Max[1]}, key)
}

// Query returns every inserted key whose box overlaps box, in no
// particular order.
func (ix *Index) Query(box Box) []int {
	bound := box.Bound()
	var hits []int
	ix.tree.Search(
		[2]float64{bound.Min[0], bound.Min[1]},
		[2]float64{bound.Max[0], bound.Max[1]},
		func(_, _ [2]float64, key int) bool {
			hits = append(hits, key)
			return true
		},
	)
	return hits
}
