package geom

// Shape is a closed simple polygon.
type Shape struct {
	outline Path
}

// NewShape wraps a closed Path as a Shape. It returns false if the path
// does not close on itself within tolerance.
func NewShape(outline Path) (Shape, bool) {
	if !outline.Start().RoughlyEqual(outline.End(), 1e-3) {
		return Shape{}, false
	}
	return Shape{outline: outline}, true
}

// Outline returns the shape's boundary as a closed Path.
func (s Shape) Outline() Path { return s.outline }

// Contains reports whether point lies within the shape's interior or on
// its boundary.
func (s Shape) Contains(point Point) bool {
	inside, _ := pointInPolygon(point, s.outline.flattenPoints())
	return inside
}

// Clip runs the boolean operation named by mode between a and b, returning
// zero or more resulting shapes. A clipping-library failure is returned as
// an error rather than panicking: per spec, clip errors are a logged
// degradation, not a bug.
func Clip(mode ClipMode, a, b Shape) ([]Shape, error) {
	polys, err := clipPolygons(mode, a.outline.flattenPoints(), b.outline.flattenPoints())
	if err != nil {
		return nil, err
	}
	shapes := make([]Shape, 0, len(polys))
	for _, poly := range polys {
		path, ok := closedPolylinePath(poly)
		if !ok {
			continue
		}
		shape, ok := NewShape(path)
		if !ok {
			continue
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// closedPolylinePath builds a Path of line segments from a closed point
// loop (as returned by the clipping library), re-closing it if the last
// point doesn't already coincide with the first.
func closedPolylinePath(pts []Point) (Path, bool) {
	if len(pts) < 3 {
		return Path{}, false
	}
	if !pts[0].RoughlyEqual(pts[len(pts)-1], 1e-6) {
		pts = append(pts, pts[0])
	}
	var segs []Segment
	for i := 0; i+1 < len(pts); i++ {
		seg, ok := Line(pts[i], pts[i+1])
		if !ok {
			continue
		}
		segs = append(segs, seg)
	}
	if len(segs) < 3 {
		return Path{}, false
	}
	return NewPath(segs)
}
