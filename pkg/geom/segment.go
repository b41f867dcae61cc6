package geom

import "math"

// Segment is a line or circular-arc span between two points with a start
// tangent, matching spec.md's primitive geometry contract.
type Segment struct {
	start, end Point
	isArc      bool
	// Arc-only fields.
	center    Point
	radius    N
	clockwise bool
}

// Line builds a straight segment from a to b. It returns false if a and b
// coincide (a degenerate line has no direction).
func Line(a, b Point) (Segment, bool) {
	if a.RoughlyEqual(b, 1e-9) {
		return Segment{}, false
	}
	return Segment{start: a, end: b}, true
}

// Arc builds a circular-arc segment from start to end around center, in the
// given winding direction. It returns false if start and end are not
// equidistant from center within tolerance.
func Arc(start, end, center Point, clockwise bool) (Segment, bool) {
	r1 := start.Sub(center).Length()
	r2 := end.Sub(center).Length()
	if math.Abs(r1-r2) > 1e-6*math.Max(1, r1) {
		return Segment{}, false
	}
	return Segment{start: start, end: end, isArc: true, center: center, radius: r1, clockwise: clockwise}, true
}

// Start returns the segment's starting point.
func (s Segment) Start() Point { return s.start }

// End returns the segment's ending point.
func (s Segment) End() Point { return s.end }

// IsArc reports whether the segment is a circular arc (as opposed to a line).
func (s Segment) IsArc() bool { return s.isArc }

func (s Segment) startAngle() N { return math.Atan2(s.start.Y-s.center.Y, s.start.X-s.center.X) }
func (s Segment) endAngle() N   { return math.Atan2(s.end.Y-s.center.Y, s.end.X-s.center.X) }

// sweptAngle returns the signed (by winding) angular span traversed along
// the arc, always in [0, 2*pi).
func (s Segment) sweptAngle() N {
	a0, a1 := s.startAngle(), s.endAngle()
	var d N
	if s.clockwise {
		d = a0 - a1
	} else {
		d = a1 - a0
	}
	for d < 0 {
		d += 2 * math.Pi
	}
	for d >= 2*math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// Length returns the segment's arc length.
func (s Segment) Length() N {
	if !s.isArc {
		return s.end.Sub(s.start).Length()
	}
	return s.radius * s.sweptAngle()
}

// StartDirection returns the unit tangent at the segment's start.
func (s Segment) StartDirection() Vector {
	if !s.isArc {
		return s.end.Sub(s.start).Normalized()
	}
	radial := s.start.Sub(s.center).Normalized()
	if s.clockwise {
		return Vector{radial.Y, -radial.X}
	}
	return Vector{-radial.Y, radial.X}
}

// EndDirection returns the unit tangent at the segment's end.
func (s Segment) EndDirection() Vector {
	if !s.isArc {
		return s.end.Sub(s.start).Normalized()
	}
	radial := s.end.Sub(s.center).Normalized()
	if s.clockwise {
		return Vector{radial.Y, -radial.X}
	}
	return Vector{-radial.Y, radial.X}
}

// Along returns the point at arc-distance d from the segment's start,
// clamped to [0, Length()].
func (s Segment) Along(d N) Point {
	l := s.Length()
	if d <= 0 {
		return s.start
	}
	if d >= l {
		return s.end
	}
	if !s.isArc {
		return s.start.Add(s.end.Sub(s.start).Normalized().Scaled(d))
	}
	a0 := s.startAngle()
	delta := d / s.radius
	if s.clockwise {
		delta = -delta
	}
	a := a0 + delta
	return Point{s.center.X + s.radius*math.Cos(a), s.center.Y + s.radius*math.Sin(a)}
}

// DirectionAlong returns the unit tangent at arc-distance d from the start.
func (s Segment) DirectionAlong(d N) Vector {
	if !s.isArc {
		return s.StartDirection()
	}
	l := s.Length()
	if d < 0 {
		d = 0
	}
	if d > l {
		d = l
	}
	a0 := s.startAngle()
	delta := d / s.radius
	if s.clockwise {
		delta = -delta
	}
	a := a0 + delta
	radial := Vector{math.Cos(a), math.Sin(a)}
	if s.clockwise {
		return Vector{radial.Y, -radial.X}
	}
	return Vector{-radial.Y, radial.X}
}

// reversed returns the segment traversed in the opposite direction.
func (s Segment) reversed() Segment {
	if !s.isArc {
		return Segment{start: s.end, end: s.start}
	}
	return Segment{start: s.end, end: s.start, isArc: true, center: s.center, radius: s.radius, clockwise: !s.clockwise}
}

// flatten appends a polyline approximation of the segment to pts, sampling
// arcs finely enough that the chord error stays under tolerance. It never
// appends the segment's own start point (the caller is expected to own
// that from the previous segment's end).
func (s Segment) flatten(pts []Point, tolerance N) []Point {
	if !s.isArc {
		return append(pts, s.end)
	}
	swept := s.sweptAngle()
	if swept == 0 {
		return append(pts, s.end)
	}
	// Chord error for a half-angle step theta/2 is r*(1-cos(theta/2)).
	// Solve for the largest step keeping error <= tolerance.
	maxStep := 2 * math.Acos(math.Max(-1, 1-tolerance/math.Max(s.radius, 1e-6)))
	if maxStep <= 0 || math.IsNaN(maxStep) {
		maxStep = math.Pi / 16
	}
	n := int(math.Ceil(swept / maxStep))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		pts = append(pts, s.Along(s.Length()*N(i)/N(n)))
	}
	return pts
}
