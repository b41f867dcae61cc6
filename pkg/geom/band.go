package geom

import "math"

// Band is a thick strip around a path: the region within halfWidth of the
// centerline, used to find where two lane paths run close and parallel.
type Band struct {
	centerline Path
	halfWidth  N
	outline    Path
}

// NewBand builds a Band of the given half-width around path. It panics if
// the offsetting geometry collaborator cannot produce a valid boundary —
// per spec.md, a malformed outline here is a bug, not a user error.
func NewBand(path Path, halfWidth N) Band {
	pts, err := inflatePolyline(path.flattenPoints(), halfWidth)
	invariant(err == nil, "band outline offset failed: "+errString(err))
	outline, ok := closedPolylinePath(pts)
	invariant(ok, "band outline is not a valid closed path")
	return Band{centerline: path, halfWidth: halfWidth, outline: outline}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Outline returns the band's closed boundary.
func (b Band) Outline() Path { return b.outline }

// OutlineDistanceToPathDistance maps an arc-distance along the band's
// outline to the arc-distance of the nearest point on its centerline.
func (b Band) OutlineDistanceToPathDistance(s N) N {
	p := b.outline.Along(s)
	return nearestPathDistance(b.centerline, p)
}

// nearestPathDistance returns the arc-distance along path of the point on
// path closest to target.
func nearestPathDistance(path Path, target Point) N {
	bestDist := math.Inf(1)
	bestAlong := N(0)
	segStart := N(0)
	for _, seg := range path.segments {
		local, dist := closestPointOnSegment(seg, target)
		if dist < bestDist {
			bestDist = dist
			bestAlong = segStart + local
		}
		segStart += seg.Length()
	}
	return bestAlong
}

// closestPointOnSegment returns the local arc-distance into seg of the
// closest point to target, and the distance to it. For arcs this samples
// the flattened approximation, which is accurate to flattenTolerance.
func closestPointOnSegment(seg Segment, target Point) (local, dist N) {
	if !seg.IsArc() {
		d, ratio := pointToSegmentDistance(target, seg.Start(), seg.End())
		return seg.Length() * ratio, d
	}
	pts := seg.flatten([]Point{seg.Start()}, flattenTolerance)
	bestDist := math.Inf(1)
	bestAlong := N(0)
	travelled := N(0)
	for i := 0; i+1 < len(pts); i++ {
		segLen := pts[i+1].Sub(pts[i]).Length()
		d, ratio := pointToSegmentDistance(target, pts[i], pts[i+1])
		if d < bestDist {
			bestDist = d
			bestAlong = travelled + segLen*ratio
		}
		travelled += segLen
	}
	return bestAlong, bestDist
}
