package geom

import "math"

// flattenTolerance bounds the chord error when a Path's arcs are sampled
// into polylines for clipping, offsetting, and intersection queries.
const flattenTolerance N = 0.05

// Path is an ordered sequence of connected segments.
type Path struct {
	segments []Segment
	// cumLength[i] is the arc-distance from the path's start to the start
	// of segments[i]; cumLength[len(segments)] is the total length.
	cumLength []N
}

// NewPath builds a Path from connected segments. It returns false if the
// segment list is empty or segments are not end-to-start connected within
// tolerance.
func NewPath(segments []Segment) (Path, bool) {
	if len(segments) == 0 {
		return Path{}, false
	}
	cum := make([]N, len(segments)+1)
	for i, seg := range segments {
		if i > 0 && !seg.Start().RoughlyEqual(segments[i-1].End(), 1e-6) {
			return Path{}, false
		}
		cum[i+1] = cum[i] + seg.Length()
	}
	return Path{segments: append([]Segment(nil), segments...), cumLength: cum}, true
}

// Segments returns the path's segments.
func (p Path) Segments() []Segment { return p.segments }

// Length returns the path's total arc length.
func (p Path) Length() N {
	if len(p.cumLength) == 0 {
		return 0
	}
	return p.cumLength[len(p.cumLength)-1]
}

// Bounds returns the axis-aligned bounding box of the path's flattened
// approximation, for broad-phase spatial indexing.
func (p Path) Bounds() (minX, minY, maxX, maxY N) {
	pts := p.flattenPoints()
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X, pts[0].Y
	for _, pt := range pts[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return
}

// Start returns the path's first point.
func (p Path) Start() Point { return p.segments[0].Start() }

// End returns the path's last point.
func (p Path) End() Point { return p.segments[len(p.segments)-1].End() }

// StartDirection returns the unit tangent at the path's start.
func (p Path) StartDirection() Vector { return p.segments[0].StartDirection() }

// EndDirection returns the unit tangent at the path's end.
func (p Path) EndDirection() Vector { return p.segments[len(p.segments)-1].EndDirection() }

// segmentAt returns the index of the segment containing arc-distance d,
// and d's offset into that segment.
func (p Path) segmentAt(d N) (int, N) {
	if d <= 0 {
		return 0, 0
	}
	n := p.Length()
	if d >= n {
		return len(p.segments) - 1, p.segments[len(p.segments)-1].Length()
	}
	// Linear scan: paths in this compiler are short (single gestures / lanes).
	for i := len(p.segments) - 1; i >= 0; i-- {
		if d >= p.cumLength[i] {
			return i, d - p.cumLength[i]
		}
	}
	return 0, 0
}

// Along returns the point at arc-distance d along the path, clamped to
// [0, Length()].
func (p Path) Along(d N) Point {
	i, local := p.segmentAt(d)
	return p.segments[i].Along(local)
}

// DirectionAlong returns the unit tangent at arc-distance d along the path.
func (p Path) DirectionAlong(d N) Vector {
	i, local := p.segmentAt(d)
	return p.segments[i].DirectionAlong(local)
}

// Reverse returns the path traversed in the opposite direction.
func (p Path) Reverse() Path {
	rev := make([]Segment, len(p.segments))
	for i, seg := range p.segments {
		rev[len(p.segments)-1-i] = seg.reversed()
	}
	out, ok := NewPath(rev)
	invariant(ok, "reversed path failed to reconnect")
	return out
}

// Subsection returns the portion of the path between arc-distances a and b
// (a may be greater than b's natural order only in that both are clamped
// into range; a must be < b after clamping or subsection is empty). It
// returns false if the resulting subsection would be empty or degenerate.
func (p Path) Subsection(a, b N) (Path, bool) {
	n := p.Length()
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	if b-a <= 1e-9 {
		return Path{}, false
	}

	startIdx, startLocal := p.segmentAt(a)
	endIdx, endLocal := p.segmentAt(b)

	var out []Segment
	if startIdx == endIdx {
		seg, ok := p.segments[startIdx].sub(startLocal, endLocal)
		if !ok {
			return Path{}, false
		}
		out = append(out, seg)
	} else {
		first, ok := p.segments[startIdx].sub(startLocal, p.segments[startIdx].Length())
		if ok {
			out = append(out, first)
		}
		for i := startIdx + 1; i < endIdx; i++ {
			out = append(out, p.segments[i])
		}
		last, ok := p.segments[endIdx].sub(0, endLocal)
		if ok {
			out = append(out, last)
		}
	}
	if len(out) == 0 {
		return Path{}, false
	}
	return NewPath(out)
}

// sub returns the portion of a single segment between local arc-distances
// a and b.
func (s Segment) sub(a, b N) (Segment, bool) {
	if b-a <= 1e-9 {
		return Segment{}, false
	}
	start := s.Along(a)
	end := s.Along(b)
	if !s.isArc {
		return Line(start, end)
	}
	return Arc(start, end, s.center, s.clockwise)
}

// Concat joins p and other end-to-start, returning false if their endpoints
// don't meet within tolerance.
func (p Path) Concat(other Path) (Path, bool) {
	if !p.End().RoughlyEqual(other.Start(), 1e-3) {
		return Path{}, false
	}
	combined := append(append([]Segment(nil), p.segments...), other.segments...)
	return NewPath(combined)
}

// ShiftOrthogonally returns the path offset laterally by offset (positive
// shifts to the path's right, matching Vector.Orthogonal's convention). It
// returns false if the shift collapses the path (e.g. an inward shift past
// the path's own curvature radius).
func (p Path) ShiftOrthogonally(offset N) (Path, bool) {
	var out []Segment
	for _, seg := range p.segments {
		shifted, ok := seg.shiftOrthogonally(offset)
		if !ok {
			return Path{}, false
		}
		out = append(out, shifted)
	}
	// Reconnect consecutive shifted segments whose endpoints drifted apart
	// at joints (shifting each segment independently can open small gaps
	// or create overlaps at corners); bridge them with short lines so the
	// path stays validly connected.
	var bridged []Segment
	for i, seg := range out {
		if i > 0 && !seg.Start().RoughlyEqual(bridged[len(bridged)-1].End(), 1e-6) {
			if bridge, ok := Line(bridged[len(bridged)-1].End(), seg.Start()); ok {
				bridged = append(bridged, bridge)
			}
		}
		bridged = append(bridged, seg)
	}
	return NewPath(bridged)
}

// shiftOrthogonally offsets a single segment by offset, failing if an arc
// would invert (offset magnitude exceeds its radius on the concave side).
func (s Segment) shiftOrthogonally(offset N) (Segment, bool) {
	if !s.isArc {
		shift := s.StartDirection().Orthogonal().Scaled(offset)
		return Line(s.start.Add(shift), s.end.Add(shift))
	}
	// A clockwise arc's center lies to its right, so a positive (rightward)
	// shift moves toward the center; a counter-clockwise arc's lies to its
	// left, so a positive shift moves away from it.
	sign := N(-1)
	if s.clockwise {
		sign = 1
	}
	newRadius := s.radius - sign*offset
	if newRadius <= 1e-6 {
		return Segment{}, false
	}
	newStart := s.center.Add(s.start.Sub(s.center).Normalized().Scaled(newRadius))
	newEnd := s.center.Add(s.end.Sub(s.center).Normalized().Scaled(newRadius))
	return Arc(newStart, newEnd, s.center, s.clockwise)
}

// flattenPoints returns a polyline approximation of the whole path,
// including the start point.
func (p Path) flattenPoints() []Point {
	pts := make([]Point, 0, len(p.segments)+1)
	pts = append(pts, p.Start())
	for _, seg := range p.segments {
		pts = seg.flatten(pts, flattenTolerance)
	}
	return pts
}

// IntersectionPoint is one intersection between two curves.
type IntersectionPoint struct {
	AlongA N
	AlongB N
	Point  Point
}

// Intersect returns every point where a and b cross, each tagged with its
// arc-distance along each curve.
func Intersect(a, b Path) []IntersectionPoint {
	return intersectFlattened(a.flattenPoints(), a.cumLength, b.flattenPoints(), b.cumLength)
}

// polylineLengths returns the cumulative arc-length at each point of a
// flattened polyline (pts[0] at 0).
func polylineLengths(pts []Point) []N {
	cum := make([]N, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i].Sub(pts[i-1]).Length()
	}
	return cum
}

func intersectFlattened(aPts []Point, _ []N, bPts []Point, _ []N) []IntersectionPoint {
	aCum := polylineLengths(aPts)
	bCum := polylineLengths(bPts)
	var out []IntersectionPoint
	for i := 0; i+1 < len(aPts); i++ {
		for j := 0; j+1 < len(bPts); j++ {
			pt, ok := segmentIntersection(aPts[i], aPts[i+1], bPts[j], bPts[j+1])
			if !ok {
				continue
			}
			alongA := aCum[i] + pt.Sub(aPts[i]).Length()
			alongB := bCum[j] + pt.Sub(bPts[j]).Length()
			out = append(out, IntersectionPoint{AlongA: alongA, AlongB: alongB, Point: pt})
		}
	}
	return dedupIntersections(out)
}

// dedupIntersections merges intersection points that land within tolerance
// of each other (adjacent flattened segments sharing a near-identical
// crossing point produce duplicates at the polyline joints).
func dedupIntersections(pts []IntersectionPoint) []IntersectionPoint {
	const tol = 1e-6
	var out []IntersectionPoint
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if math.Abs(p.AlongA-q.AlongA) < tol && math.Abs(p.AlongB-q.AlongB) < tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
