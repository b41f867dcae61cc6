package geom

import "testing"

func TestVectorOrthogonal(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Vector
	}{
		{"unit x", Vector{1, 0}, Vector{0, -1}},
		{"unit y", Vector{0, 1}, Vector{1, 0}},
		{"diagonal", Vector{1, 1}, Vector{1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Orthogonal()
			if got != tt.want {
				t.Errorf("Orthogonal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorNormalizedDegenerate(t *testing.T) {
	got := Vector{}.Normalized()
	if got != (Vector{}) {
		t.Errorf("Normalized() of zero vector = %v, want zero vector", got)
	}
}

func TestVectorAngle(t *testing.T) {
	right := Vector{1, 0}
	up := Vector{0, 1}
	if a := right.Angle(up); a <= 0 {
		t.Errorf("Angle(right, up) = %v, want positive", a)
	}
	if a := right.Angle(right); a != 0 {
		t.Errorf("Angle(right, right) = %v, want 0", a)
	}
}

func TestPointRoughlyEqual(t *testing.T) {
	p := Point{1, 1}
	if !p.RoughlyEqual(Point{1.0001, 1}, 0.01) {
		t.Errorf("expected points within tolerance to be roughly equal")
	}
	if p.RoughlyEqual(Point{2, 2}, 0.01) {
		t.Errorf("expected distant points not to be roughly equal")
	}
}
