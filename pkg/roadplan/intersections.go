package roadplan

import (
	"github.com/azybler/roadplan/pkg/geom"
	"github.com/azybler/roadplan/pkg/geom/index"
	"github.com/azybler/roadplan/pkg/prototype"
)

// pavement is one gesture's compiled pavement outline, carried alongside
// its source path and lane counts for end-cap construction.
type pavement struct {
	shape      geom.Shape
	path       geom.Path
	nFwd, nBwd uint8
}

// buildIntersections runs the pairwise pavement clip, adds an end cap at
// every gesture extremity, and unions overlapping regions into maximal
// disjoint intersection prototypes.
func buildIntersections(pavements []pavement) []*prototype.IntersectionPrototype {
	var shapes []geom.Shape
	shapes = append(shapes, pairwisePavementIntersections(pavements)...)
	for _, p := range pavements {
		shapes = append(shapes, endCap(p, true), endCap(p, false))
	}

	shapes = unionIntersectionShapes(shapes)

	out := make([]*prototype.IntersectionPrototype, len(shapes))
	for i, s := range shapes {
		out[i] = prototype.NewIntersectionPrototype(s)
	}
	return out
}

// pairwisePavementIntersections clips every ordered pair of distinct
// pavement shapes, using a bounding-box index to skip pairs that cannot
// possibly overlap. Clipper failures are a logged degradation: the erring
// pair contributes no shape.
func pairwisePavementIntersections(pavements []pavement) []geom.Shape {
	ix := index.New()
	for i, p := range pavements {
		minX, minY, maxX, maxY := p.shape.Outline().Bounds()
		ix.Insert(i, index.BoxOf([]float64{minX, maxX}, []float64{minY, maxY}))
	}

	var shapes []geom.Shape
	for i, p := range pavements {
		minX, minY, maxX, maxY := p.shape.Outline().Bounds()
		for _, j := range ix.Query(index.BoxOf([]float64{minX, maxX}, []float64{minY, maxY})) {
			if j == i {
				continue
			}
			clipped, err := geom.Clip(geom.ClipIntersection, p.shape, pavements[j].shape)
			if err != nil {
				logDegradation("pavement intersection", err)
				continue
			}
			shapes = append(shapes, clipped...)
		}
	}
	return shapes
}

// endCap builds the rectangular intersection region at one extremity of a
// gesture's path, oriented to the path's tangent there, END_INTERSECTION_DEPTH
// long and as wide as the gesture's pavement.
func endCap(p pavement, atStart bool) geom.Shape {
	var point geom.Point
	var travelDir, outwardDir geom.Vector
	if atStart {
		point = p.path.Start()
		travelDir = p.path.StartDirection()
		outwardDir = travelDir.Neg()
	} else {
		point = p.path.End()
		travelDir = p.path.EndDirection()
		outwardDir = travelDir
	}

	rightWidth := geom.N(p.nFwd)*LaneDistance + 0.4*LaneDistance
	leftWidth := geom.N(p.nBwd)*LaneDistance + 0.4*LaneDistance
	right := travelDir.Orthogonal()

	halfDepth := EndIntersectionDepth / 2
	backCenter := point.Add(outwardDir.Neg().Scaled(halfDepth))
	frontCenter := point.Add(outwardDir.Scaled(halfDepth))

	backLeft := backCenter.Add(right.Scaled(-leftWidth))
	backRight := backCenter.Add(right.Scaled(rightWidth))
	frontRight := frontCenter.Add(right.Scaled(rightWidth))
	frontLeft := frontCenter.Add(right.Scaled(-leftWidth))

	outline, ok := geom.NewPath(rectangleSegments(backLeft, backRight, frontRight, frontLeft))
	invariant(ok, "end-cap rectangle failed to connect")
	shape, ok := geom.NewShape(outline)
	invariant(ok, "end-cap rectangle is not closed")
	return shape
}

func rectangleSegments(a, b, c, d geom.Point) []geom.Segment {
	pts := []geom.Point{a, b, c, d, a}
	segs := make([]geom.Segment, 0, 4)
	for i := 0; i+1 < len(pts); i++ {
		seg, ok := geom.Line(pts[i], pts[i+1])
		invariant(ok, "end-cap rectangle has a degenerate edge")
		segs = append(segs, seg)
	}
	return segs
}

// unionIntersectionShapes iteratively merges overlapping shapes into
// maximal disjoint regions. Per the source this compiler preserves (see
// DESIGN.md), when a union yields more than one shape only the first is
// kept and the rest of that pair's geometry is discarded.
//
// Unlike the descartes clipper this compiler was distilled from, this
// pack's Clip(ClipUnion, ...) returns both input contours, unmerged, for
// disjoint shapes rather than an empty result, so a non-empty union alone
// cannot signal "these actually overlap." shapesOverlap checks that
// directly via ClipIntersection before a union is trusted as a merge.
func unionIntersectionShapes(shapes []geom.Shape) []geom.Shape {
	i := 0
	for i < len(shapes) {
		merged := false
		for j := i + 1; j < len(shapes); j++ {
			overlap, err := shapesOverlap(shapes[i], shapes[j])
			if err != nil {
				logDegradation("intersection overlap check", err)
				continue
			}
			if !overlap {
				continue
			}
			results, err := geom.Clip(geom.ClipUnion, shapes[i], shapes[j])
			if err != nil {
				logDegradation("intersection union", err)
				continue
			}
			if len(results) == 0 {
				continue
			}
			shapes[i] = results[0]
			shapes = append(shapes[:j], shapes[j+1:]...)
			merged = true
			break
		}
		if !merged {
			i++
		}
	}
	return shapes
}

// shapesOverlap reports whether two shapes' interiors actually intersect,
// used to gate unionIntersectionShapes's merge decision.
func shapesOverlap(a, b geom.Shape) (bool, error) {
	results, err := geom.Clip(geom.ClipIntersection, a, b)
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}
