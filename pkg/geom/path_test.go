package geom

import "testing"

func straightPath(t *testing.T, from, to Point) Path {
	t.Helper()
	line, ok := Line(from, to)
	if !ok {
		t.Fatalf("Line(%v, %v) failed", from, to)
	}
	path, ok := NewPath([]Segment{line})
	if !ok {
		t.Fatalf("NewPath failed")
	}
	return path
}

func TestNewPathRejectsDisconnectedSegments(t *testing.T) {
	a, _ := Line(Point{0, 0}, Point{1, 0})
	b, _ := Line(Point{5, 5}, Point{6, 5})
	if _, ok := NewPath([]Segment{a, b}); ok {
		t.Errorf("NewPath should reject disconnected segments")
	}
}

func TestPathAlongAndLength(t *testing.T) {
	path := straightPath(t, Point{0, 0}, Point{10, 0})
	if got := path.Length(); got != 10 {
		t.Errorf("Length() = %v, want 10", got)
	}
	if got := path.Along(4); got != (Point{4, 0}) {
		t.Errorf("Along(4) = %v, want (4,0)", got)
	}
	if got := path.Along(100); got != (Point{10, 0}) {
		t.Errorf("Along(100) should clamp to end, got %v", got)
	}
}

func TestPathReverse(t *testing.T) {
	path := straightPath(t, Point{0, 0}, Point{10, 0})
	rev := path.Reverse()
	if rev.Start() != path.End() || rev.End() != path.Start() {
		t.Errorf("Reverse() did not swap endpoints")
	}
	if rev.Length() != path.Length() {
		t.Errorf("Reverse() changed length")
	}
}

func TestPathSubsection(t *testing.T) {
	path := straightPath(t, Point{0, 0}, Point{10, 0})
	sub, ok := path.Subsection(2, 7)
	if !ok {
		t.Fatalf("Subsection failed")
	}
	if sub.Start() != (Point{2, 0}) || sub.End() != (Point{7, 0}) {
		t.Errorf("Subsection(2,7) = [%v,%v], want [(2,0),(7,0)]", sub.Start(), sub.End())
	}
	if _, ok := path.Subsection(5, 5); ok {
		t.Errorf("degenerate subsection should fail")
	}
}

func TestPathConcat(t *testing.T) {
	a := straightPath(t, Point{0, 0}, Point{5, 0})
	b := straightPath(t, Point{5, 0}, Point{10, 0})
	joined, ok := a.Concat(b)
	if !ok {
		t.Fatalf("Concat failed")
	}
	if joined.Length() != 10 {
		t.Errorf("Concat length = %v, want 10", joined.Length())
	}

	c := straightPath(t, Point{0, 0}, Point{5, 0})
	d := straightPath(t, Point{99, 99}, Point{100, 99})
	if _, ok := c.Concat(d); ok {
		t.Errorf("Concat of non-adjacent paths should fail")
	}
}

func TestPathShiftOrthogonallyLine(t *testing.T) {
	path := straightPath(t, Point{0, 0}, Point{10, 0})
	shifted, ok := path.ShiftOrthogonally(2)
	if !ok {
		t.Fatalf("ShiftOrthogonally failed")
	}
	if !shifted.Start().RoughlyEqual(Point{0, -2}, 1e-9) {
		t.Errorf("ShiftOrthogonally(2).Start() = %v, want (0,-2)", shifted.Start())
	}
}

func TestIntersectCrossingLines(t *testing.T) {
	a := straightPath(t, Point{-5, 0}, Point{5, 0})
	b := straightPath(t, Point{0, -5}, Point{0, 5})
	points := Intersect(a, b)
	if len(points) != 1 {
		t.Fatalf("Intersect found %d points, want 1", len(points))
	}
	if !points[0].Point.RoughlyEqual(Point{0, 0}, 1e-6) {
		t.Errorf("crossing point = %v, want (0,0)", points[0].Point)
	}
	if points[0].AlongA < 4.9 || points[0].AlongA > 5.1 {
		t.Errorf("AlongA = %v, want ~5", points[0].AlongA)
	}
}

func TestIntersectParallelLinesNone(t *testing.T) {
	a := straightPath(t, Point{0, 0}, Point{10, 0})
	b := straightPath(t, Point{0, 5}, Point{10, 5})
	if points := Intersect(a, b); len(points) != 0 {
		t.Errorf("parallel lines should not intersect, got %d points", len(points))
	}
}
