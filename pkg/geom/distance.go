package geom

// pointToSegmentDistance computes the perpendicular distance from point p
// to segment ab, and returns the projection ratio along ab (clamped to
// [0,1]). Adapted from the great-circle point-to-segment projection the
// map tooling this compiler grew out of used for snapping query points to
// roads, simplified here to flat Euclidean distance since this package
// works in an editor's planar coordinate system rather than lat/lon.
func pointToSegmentDistance(p, a, b Point) (dist N, ratio N) {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)

	if lenSq == 0 {
		return p.Sub(a).Length(), 0
	}

	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := a.Add(ab.Scaled(t))
	return p.Sub(closest).Length(), t
}
