package prototype

import (
	"testing"

	"github.com/azybler/roadplan/pkg/geom"
)

func straightPath(t *testing.T, from, to geom.Point) geom.Path {
	t.Helper()
	line, ok := geom.Line(from, to)
	if !ok {
		t.Fatalf("Line failed")
	}
	path, ok := geom.NewPath([]geom.Segment{line})
	if !ok {
		t.Fatalf("NewPath failed")
	}
	return path
}

func TestGestureSideIDEncoding(t *testing.T) {
	if got := ForwardSide(0); got != 1 {
		t.Errorf("ForwardSide(0) = %v, want 1", got)
	}
	if got := BackwardSide(0); got != -1 {
		t.Errorf("BackwardSide(0) = %v, want -1", got)
	}
	if got := ForwardSide(3); got != 4 {
		t.Errorf("ForwardSide(3) = %v, want 4", got)
	}
	if got := BackwardSide(3); got != -4 {
		t.Errorf("BackwardSide(3) = %v, want -4", got)
	}
}

func TestLanePrototypeMorphableFrom(t *testing.T) {
	a := LanePrototype{Path: straightPath(t, geom.Point{0, 0}, geom.Point{100, 0})}
	b := LanePrototype{Path: straightPath(t, geom.Point{0, 0.01}, geom.Point{100, 0.01})}
	c := LanePrototype{Path: straightPath(t, geom.Point{0, 5}, geom.Point{100, 5})}

	if !a.MorphableFrom(b) {
		t.Errorf("lanes 0.01 apart should be morphable within 0.05")
	}
	if a.MorphableFrom(c) {
		t.Errorf("lanes 5 apart should not be morphable")
	}
}

func TestLanePrototypeMorphableFromRequiresEqualTimings(t *testing.T) {
	path := straightPath(t, geom.Point{0, 0}, geom.Point{10, 0})
	a := LanePrototype{Path: path, Timings: []bool{true, false}}
	b := LanePrototype{Path: path, Timings: []bool{true, true}}
	if a.MorphableFrom(b) {
		t.Errorf("lanes with different timings should not be morphable")
	}
}

func TestIntersectionPrototypeMorphableFrom(t *testing.T) {
	square := func(cx, cy geom.N) geom.Shape {
		pts := []geom.Point{{cx, cy}, {cx + 10, cy}, {cx + 10, cy + 10}, {cx, cy + 10}, {cx, cy}}
		var segs []geom.Segment
		for i := 0; i+1 < len(pts); i++ {
			seg, _ := geom.Line(pts[i], pts[i+1])
			segs = append(segs, seg)
		}
		path, _ := geom.NewPath(segs)
		shape, ok := geom.NewShape(path)
		if !ok {
			t.Fatalf("NewShape failed")
		}
		return shape
	}

	a := NewIntersectionPrototype(square(0, 0))
	b := NewIntersectionPrototype(square(0.02, 0.02))
	c := NewIntersectionPrototype(square(50, 50))

	if !a.MorphableFrom(b) {
		t.Errorf("intersections 0.02 apart should be morphable within 0.1")
	}
	if a.MorphableFrom(c) {
		t.Errorf("distant intersections should not be morphable")
	}
}

func TestPrototypeMorphableFromDifferentKinds(t *testing.T) {
	path := straightPath(t, geom.Point{0, 0}, geom.Point{10, 0})
	lane := Prototype{Kind: KindLane, Lane: LanePrototype{Path: path}}
	transfer := Prototype{Kind: KindTransferLane, TransferLane: TransferLanePrototype{Path: path}}
	if lane.MorphableFrom(transfer) {
		t.Errorf("prototypes of different kinds should never be morphable")
	}
}

func TestConnectionRoleStartsAllFalse(t *testing.T) {
	c := NewIntersectionConnector(geom.Point{0, 0}, geom.Vector{1, 0})
	if c.Role != (ConnectionRole{}) {
		t.Errorf("ConnectionRole should start at its zero value, got %+v", c.Role)
	}
}
