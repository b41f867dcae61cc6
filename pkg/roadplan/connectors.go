package roadplan

import "github.com/azybler/roadplan/pkg/prototype"

// buildConnectingLanes synthesizes, for every intersection and every pair
// of distinct sides registered on it, the connecting lane centerlines
// joining each outgoing connector of one side to each incoming connector
// of the other, and records them under that (from, to) pair. A pair with
// no viable connecting geometry gets no entry rather than an empty one.
func buildConnectingLanes(intersections []*prototype.IntersectionPrototype) {
	for _, isect := range intersections {
		for fromSide, outs := range isect.Outgoing {
			for toSide, ins := range isect.Incoming {
				if fromSide == toSide {
					continue
				}
				var lanes []prototype.LanePrototype
				for _, og := range outs {
					for _, ic := range ins {
						if path, ok := connectingCurve(og, ic); ok {
							lanes = append(lanes, prototype.LanePrototype{Path: path})
						}
					}
				}
				if len(lanes) > 0 {
					isect.ConnectingLanes[prototype.ConnectionKey{From: fromSide, To: toSide}] = lanes
				}
			}
		}
	}
}
