package roadplan

import (
	"github.com/azybler/roadplan/pkg/geom"
	"github.com/azybler/roadplan/pkg/prototype"
)

// connectorControlFraction is how far along each connector's own tangent
// its synthetic control point sits, as a fraction of the straight-line
// span between the two connectors.
const connectorControlFraction geom.N = 1.0 / 3.0

// connectingCurve builds a smooth path from one intersection connector to
// another by routing through two synthetic control points, placed along
// each connector's own tangent, and handing the four-point sequence to the
// same corner-smoothing the path smoother uses. This guarantees the result
// starts and ends exactly on the declared positions and tangents. Returns
// false when the connectors coincide or no valid path results — the
// degenerate case this stage is required to skip rather than emit.
func connectingCurve(from, to prototype.IntersectionConnector) (geom.Path, bool) {
	span := to.Position.Sub(from.Position).Length()
	if span < 1e-6 {
		return geom.Path{}, false
	}
	d := span * connectorControlFraction

	p0 := from.Position
	p1 := p0.Add(from.Direction.Normalized().Scaled(d))
	p3 := to.Position
	p2 := p3.Add(to.Direction.Normalized().Neg().Scaled(d))

	return smoothPath([]geom.Point{p0, p1, p2, p3})
}
