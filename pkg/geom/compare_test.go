package geom

import "testing"

func TestPathsRoughlyWithinIdentical(t *testing.T) {
	line, _ := Line(Point{0, 0}, Point{100, 0})
	path, _ := NewPath([]Segment{line})
	if !PathsRoughlyWithin(path, path, 0.05) {
		t.Errorf("a path should be roughly within itself")
	}
}

func TestPathsRoughlyWithinSmallOffset(t *testing.T) {
	a, _ := NewPath([]Segment{mustLine(t, Point{0, 0}, Point{100, 0})})
	b, _ := NewPath([]Segment{mustLine(t, Point{0, 0.02}, Point{100, 0.02})})
	if !PathsRoughlyWithin(a, b, 0.05) {
		t.Errorf("paths 0.02 apart should be within tolerance 0.05")
	}
}

func TestPathsRoughlyWithinLargeOffset(t *testing.T) {
	a, _ := NewPath([]Segment{mustLine(t, Point{0, 0}, Point{100, 0})})
	b, _ := NewPath([]Segment{mustLine(t, Point{0, 5}, Point{100, 5})})
	if PathsRoughlyWithin(a, b, 0.05) {
		t.Errorf("paths 5 units apart should not be within tolerance 0.05")
	}
}

func mustLine(t *testing.T, a, b Point) Segment {
	t.Helper()
	seg, ok := Line(a, b)
	if !ok {
		t.Fatalf("Line(%v, %v) failed", a, b)
	}
	return seg
}
