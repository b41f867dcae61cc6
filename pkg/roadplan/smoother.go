package roadplan

import (
	"math"

	"github.com/azybler/roadplan/pkg/geom"
)

// filletRadiusFraction is how much of the shorter adjacent segment a
// corner's smoothing arc is allowed to consume.
const filletRadiusFraction geom.N = 0.25

// maxFilletTangentFraction caps the fillet's tangent length so two
// adjacent corners on a short segment can never overlap.
const maxFilletTangentFraction geom.N = 0.45

// smoothPath turns a gesture's ordered control points into a single
// smooth, oriented path: straight runs between points, with each interior
// corner rounded by a circular arc tangent to both adjacent runs. The
// result is deterministic for a fixed point sequence. It returns false if
// fewer than two distinct points remain.
func smoothPath(points []geom.Point) (geom.Path, bool) {
	points = dedupConsecutive(points)
	if len(points) < 2 {
		return geom.Path{}, false
	}
	if len(points) == 2 {
		line, ok := geom.Line(points[0], points[1])
		if !ok {
			return geom.Path{}, false
		}
		return geom.NewPath([]geom.Segment{line})
	}

	fillets := make([]filletCorner, len(points))
	for i := 1; i < len(points)-1; i++ {
		fillets[i] = computeFillet(points[i-1], points[i], points[i+1])
	}

	var segs []geom.Segment
	for i := 0; i < len(points)-1; i++ {
		start := points[i]
		if i > 0 && fillets[i].has {
			start = fillets[i].exit
		}
		end := points[i+1]
		if i+1 <= len(points)-2 && fillets[i+1].has {
			end = fillets[i+1].entry
		}
		if !start.RoughlyEqual(end, 1e-9) {
			if line, ok := geom.Line(start, end); ok {
				segs = append(segs, line)
			}
		}
		if i+1 <= len(points)-2 && fillets[i+1].has {
			segs = append(segs, fillets[i+1].arc)
		}
	}
	if len(segs) == 0 {
		return geom.Path{}, false
	}
	return geom.NewPath(segs)
}

type filletCorner struct {
	has         bool
	entry, exit geom.Point
	arc         geom.Segment
}

// computeFillet builds the rounding arc at the corner point between prev
// and next, or the zero value if the corner is too sharp/short to round
// (the path then passes straight through it).
func computeFillet(prev, corner, next geom.Point) filletCorner {
	lenPrev := corner.Sub(prev).Length()
	lenNext := next.Sub(corner).Length()
	if lenPrev < 1e-9 || lenNext < 1e-9 {
		return filletCorner{}
	}

	u1 := corner.Sub(prev).Normalized()
	u2 := next.Sub(corner).Normalized()
	turn := u1.Angle(u2)
	if math.Abs(turn) < 1e-6 {
		return filletCorner{}
	}

	radius := filletRadiusFraction * math.Min(lenPrev, lenNext)
	if radius < 1e-9 {
		return filletCorner{}
	}

	t := radius / math.Tan(math.Abs(turn)/2)
	if maxT := maxFilletTangentFraction * math.Min(lenPrev, lenNext); t > maxT {
		t = maxT
		radius = t * math.Tan(math.Abs(turn)/2)
	}

	entry := corner.Add(u1.Neg().Scaled(t))
	exit := corner.Add(u2.Scaled(t))

	clockwise := turn < 0
	var perp geom.Vector
	if turn > 0 {
		perp = geom.Vector{X: -u1.Y, Y: u1.X}
	} else {
		perp = u1.Orthogonal()
	}
	center := entry.Add(perp.Scaled(radius))

	arc, ok := geom.Arc(entry, exit, center, clockwise)
	if !ok {
		return filletCorner{}
	}
	return filletCorner{has: true, entry: entry, exit: exit, arc: arc}
}

func dedupConsecutive(points []geom.Point) []geom.Point {
	var out []geom.Point
	for _, p := range points {
		if len(out) == 0 || !out[len(out)-1].RoughlyEqual(p, 1e-9) {
			out = append(out, p)
		}
	}
	return out
}
