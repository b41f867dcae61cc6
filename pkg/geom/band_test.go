package geom

import "testing"

func TestNewBandOutlineDistanceRoundTrip(t *testing.T) {
	line, _ := Line(Point{0, 0}, Point{100, 0})
	path, _ := NewPath([]Segment{line})
	band := NewBand(path, 2)

	// The point halfway around the band's outline should map back to an
	// arc-distance within the centerline's own range.
	s := band.Outline().Length() / 2
	along := band.OutlineDistanceToPathDistance(s)
	if along < 0 || along > path.Length() {
		t.Errorf("OutlineDistanceToPathDistance(%v) = %v, out of centerline range [0,%v]", s, along, path.Length())
	}
}

func TestDistanceToSegmentProjection(t *testing.T) {
	d, ratio := pointToSegmentDistance(Point{5, 3}, Point{0, 0}, Point{10, 0})
	if d != 3 {
		t.Errorf("distance = %v, want 3", d)
	}
	if ratio != 0.5 {
		t.Errorf("ratio = %v, want 0.5", ratio)
	}
}

func TestDistanceToSegmentClampsRatio(t *testing.T) {
	d, ratio := pointToSegmentDistance(Point{-5, 0}, Point{0, 0}, Point{10, 0})
	if ratio != 0 {
		t.Errorf("ratio = %v, want 0 (clamped before segment start)", ratio)
	}
	if d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
}
