package geom

import "testing"

func square(t *testing.T, minX, minY, maxX, maxY N) Shape {
	t.Helper()
	pts := []Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY}}
	var segs []Segment
	for i := 0; i+1 < len(pts); i++ {
		seg, ok := Line(pts[i], pts[i+1])
		if !ok {
			t.Fatalf("degenerate square edge")
		}
		segs = append(segs, seg)
	}
	path, ok := NewPath(segs)
	if !ok {
		t.Fatalf("NewPath failed")
	}
	shape, ok := NewShape(path)
	if !ok {
		t.Fatalf("NewShape failed")
	}
	return shape
}

func TestShapeContains(t *testing.T) {
	s := square(t, 0, 0, 10, 10)
	if !s.Contains(Point{5, 5}) {
		t.Errorf("expected (5,5) inside the 10x10 square")
	}
	if s.Contains(Point{50, 50}) {
		t.Errorf("expected (50,50) outside the 10x10 square")
	}
}

func TestClipIntersectionOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)
	results, err := Clip(ClipIntersection, a, b)
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 overlap shape, got %d", len(results))
	}
	if !results[0].Contains(Point{7, 7}) {
		t.Errorf("expected overlap region to contain (7,7)")
	}
	if results[0].Contains(Point{1, 1}) {
		t.Errorf("overlap region should not contain (1,1), outside the overlap")
	}
}

func TestClipIntersectionDisjointSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 100, 100, 110, 110)
	results, err := Clip(ClipIntersection, a, b)
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no overlap, got %d shapes", len(results))
	}
}

func TestClipUnionOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)
	results, err := Clip(ClipUnion, a, b)
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected union of overlapping squares to be 1 shape, got %d", len(results))
	}
	if !results[0].Contains(Point{1, 1}) || !results[0].Contains(Point{14, 14}) {
		t.Errorf("union shape should contain both original squares' corners")
	}
}
