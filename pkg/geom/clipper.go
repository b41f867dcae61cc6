package geom

import (
	"fmt"
	"math"

	clipper "github.com/CWBudde/Go-Clipper2"
)

// clipperScale converts between this package's float coordinates and the
// fixed-point integers Go-Clipper2 operates on. Our compiled geometry
// never spans more than a few thousand units, so three decimal digits of
// precision (scale 1000) is comfortably inside int64 range.
const clipperScale = 1000.0

func toPoint64(p Point) clipper.Point64 {
	return clipper.Point64{X: int64(math.Round(p.X * clipperScale)), Y: int64(math.Round(p.Y * clipperScale))}
}

func fromPoint64(p clipper.Point64) Point {
	return Point{X: N(p.X) / clipperScale, Y: N(p.Y) / clipperScale}
}

func toPath64(pts []Point) clipper.Path64 {
	out := make(clipper.Path64, len(pts))
	for i, p := range pts {
		out[i] = toPoint64(p)
	}
	return out
}

func fromPath64(path clipper.Path64) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = fromPoint64(p)
	}
	return out
}

// segmentIntersection reports the single crossing point of line segments
// a1-a2 and b1-b2, ground on Go-Clipper2's exact integer segment
// intersection primitive (SegmentIntersection) so curve flattening and
// clipping agree on where two edges cross.
func segmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	pt, kind, err := clipper.SegmentIntersection(toPoint64(a1), toPoint64(a2), toPoint64(b1), toPoint64(b2))
	if err != nil || kind == clipper.NoIntersection {
		return Point{}, false
	}
	return fromPoint64(pt), true
}

// pointInPolygon reports whether point lies inside (or on the boundary of)
// the closed polygon described by outline.
func pointInPolygon(point Point, outline []Point) (inside, onBoundary bool) {
	loc := clipper.PointInPolygon(toPoint64(point), toPath64(outline), clipper.NonZero)
	return loc == clipper.Inside || loc == clipper.OnBoundary, loc == clipper.OnBoundary
}

// ClipMode selects the boolean operation Clip (via clipPolygons) performs.
type ClipMode int

const (
	// ClipIntersection keeps the overlap of the two shapes.
	ClipIntersection ClipMode = iota
	// ClipUnion keeps everything covered by either shape.
	ClipUnion
)

// clipPolygons runs the boolean operation named by mode between subject and
// clip (each a single closed polygon's point list) and returns zero or more
// resulting closed polygons.
func clipPolygons(mode ClipMode, subject, clipPoly []Point) ([][]Point, error) {
	var ct clipper.ClipType
	switch mode {
	case ClipIntersection:
		ct = clipper.Intersection
	case ClipUnion:
		ct = clipper.Union
	default:
		return nil, fmt.Errorf("geom: unknown clip mode %d", mode)
	}

	solution, _, err := clipper.BooleanOp64(ct, clipper.NonZero,
		clipper.Paths64{toPath64(subject)}, nil, clipper.Paths64{toPath64(clipPoly)})
	if err != nil {
		return nil, err
	}

	out := make([][]Point, 0, len(solution))
	for _, p := range solution {
		if len(p) < 3 {
			continue
		}
		out = append(out, fromPath64(p))
	}
	return out, nil
}

// inflatePolyline buffers an open polyline by halfWidth on both sides,
// producing its closed boundary outline, via Go-Clipper2's round-jointed
// offsetting.
func inflatePolyline(pts []Point, halfWidth N) ([]Point, error) {
	result, err := clipper.InflatePaths64(
		clipper.Paths64{toPath64(pts)},
		halfWidth*clipperScale,
		clipper.JoinRound,
		clipper.EndRound,
		clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: 0.25 * clipperScale},
	)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("geom: band offset produced no outline")
	}
	// An open path inflates to a single closed loop; take the largest by
	// point count in the (practically impossible) case of more than one.
	best := result[0]
	for _, p := range result[1:] {
		if len(p) > len(best) {
			best = p
		}
	}
	return fromPath64(best), nil
}
