package roadplan

import "github.com/azybler/roadplan/pkg/geom"

// buildPavementOutline builds the closed Shape covering a smoothed path's
// full paved width, given its forward and backward lane counts.
func buildPavementOutline(path geom.Path, nFwd, nBwd uint8) geom.Shape {
	right := pavementRightEdge(path, nFwd)
	left := pavementLeftEdge(path, nBwd)

	var segs []geom.Segment
	segs = append(segs, left.Segments()...)
	if bridge, ok := geom.Line(left.End(), right.Start()); ok {
		segs = append(segs, bridge)
	}
	segs = append(segs, right.Segments()...)
	if bridge, ok := geom.Line(right.End(), left.Start()); ok {
		segs = append(segs, bridge)
	}

	outline, ok := geom.NewPath(segs)
	invariant(ok, "pavement outline failed to connect")
	shape, ok := geom.NewShape(outline)
	invariant(ok, "pavement outline is not closed")
	return shape
}

// pavementRightEdge is the path's right boundary: shifted out by the
// forward lanes' width plus a margin of 0.4 LaneDistance, then reversed so the
// outline traversal stays consistent. Left unchanged (and unreversed) when
// there are no forward lanes.
func pavementRightEdge(path geom.Path, nFwd uint8) geom.Path {
	if nFwd == 0 {
		return path
	}
	offset := geom.N(nFwd)*LaneDistance + 0.4*LaneDistance
	shifted, ok := path.ShiftOrthogonally(offset)
	if !ok {
		shifted = path
	}
	return shifted.Reverse()
}

// pavementLeftEdge is the path's left boundary: shifted out by the
// backward lanes' width plus a margin of 0.4 LaneDistance. Left unchanged when there
// are no backward lanes.
func pavementLeftEdge(path geom.Path, nBwd uint8) geom.Path {
	if nBwd == 0 {
		return path
	}
	offset := -(geom.N(nBwd)*LaneDistance + 0.4*LaneDistance)
	shifted, ok := path.ShiftOrthogonally(offset)
	if !ok {
		shifted = path
	}
	return shifted
}
