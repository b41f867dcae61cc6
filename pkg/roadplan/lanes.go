package roadplan

import (
	"sort"

	"github.com/azybler/roadplan/pkg/geom"
	"github.com/azybler/roadplan/pkg/prototype"
)

// rawLane is an uncut lane centerline, before it has been sliced against
// any intersection region.
type rawLane struct {
	side prototype.GestureSideID
	path geom.Path
}

// inSegmentLane is a surviving portion of a raw lane that lies between (not
// inside) intersection regions.
type inSegmentLane struct {
	side prototype.GestureSideID
	path geom.Path
}

// buildRawLanesForGesture generates the forward and backward lane
// centerlines for one gesture by orthogonal shifting. Lanes whose shift
// fails are silently dropped.
func buildRawLanesForGesture(gestureIndex int, path geom.Path, nFwd, nBwd uint8) []rawLane {
	var lanes []rawLane
	for k := uint8(0); k < nFwd; k++ {
		offset := CenterLaneDistance/2 + geom.N(k)*LaneDistance
		if shifted, ok := path.ShiftOrthogonally(offset); ok {
			lanes = append(lanes, rawLane{side: prototype.ForwardSide(gestureIndex), path: shifted})
		}
	}
	for k := uint8(0); k < nBwd; k++ {
		offset := -(CenterLaneDistance/2 + geom.N(k)*LaneDistance)
		if shifted, ok := path.ShiftOrthogonally(offset); ok {
			lanes = append(lanes, rawLane{side: prototype.BackwardSide(gestureIndex), path: shifted.Reverse()})
		}
	}
	return lanes
}

// laneCut is one trimmed span, in the raw lane's own arc-distance, that
// must be excised because the lane crosses or touches an intersection
// there: (entry, exit) are the arc-distances bounding the portion consumed
// by that intersection.
type laneCut struct {
	entry, exit geom.N
}

// cutRawLane intersects a raw lane against every intersection region,
// registering incoming/outgoing connectors on the intersections it
// crosses or touches, and returns the in-segment subsections that survive
// outside all of them.
func cutRawLane(lane rawLane, intersections []*prototype.IntersectionPrototype) []inSegmentLane {
	startTrim := geom.N(0)
	endTrim := lane.path.Length()
	var cuts []laneCut

	for _, isect := range intersections {
		points := geom.Intersect(lane.path, isect.Shape.Outline())
		switch {
		case len(points) >= 2:
			entry, exit := points[0].AlongA, points[0].AlongA
			for _, pt := range points[1:] {
				if pt.AlongA < entry {
					entry = pt.AlongA
				}
				if pt.AlongA > exit {
					exit = pt.AlongA
				}
			}
			isect.Incoming[lane.side] = append(isect.Incoming[lane.side],
				prototype.NewIntersectionConnector(lane.path.Along(entry), lane.path.DirectionAlong(entry)))
			isect.Outgoing[lane.side] = append(isect.Outgoing[lane.side],
				prototype.NewIntersectionConnector(lane.path.Along(exit), lane.path.DirectionAlong(exit)))
			cuts = append(cuts, laneCut{entry: entry, exit: exit})

		case len(points) == 1:
			at := points[0].AlongA
			switch {
			case isect.Shape.Contains(lane.path.Start()):
				isect.Outgoing[lane.side] = append(isect.Outgoing[lane.side],
					prototype.NewIntersectionConnector(lane.path.Along(at), lane.path.DirectionAlong(at)))
				if at > startTrim {
					startTrim = at
				}
			case isect.Shape.Contains(lane.path.End()):
				isect.Incoming[lane.side] = append(isect.Incoming[lane.side],
					prototype.NewIntersectionConnector(lane.path.Along(at), lane.path.DirectionAlong(at)))
				if at < endTrim {
					endTrim = at
				}
			}
		}
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].entry < cuts[j].entry })

	extended := make([]laneCut, 0, len(cuts)+2)
	extended = append(extended, laneCut{entry: -1, exit: startTrim})
	extended = append(extended, cuts...)
	extended = append(extended, laneCut{entry: endTrim, exit: lane.path.Length() + 1})

	var out []inSegmentLane
	for i := 0; i+1 < len(extended); i++ {
		if sub, ok := lane.path.Subsection(extended[i].exit, extended[i+1].entry); ok {
			out = append(out, inSegmentLane{side: lane.side, path: sub})
		}
	}
	return out
}
