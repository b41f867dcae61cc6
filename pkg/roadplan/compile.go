package roadplan

import (
	"github.com/azybler/roadplan/pkg/geom"
	"github.com/azybler/roadplan/pkg/plan"
	"github.com/azybler/roadplan/pkg/prototype"
)

// roadGesture is a plan gesture that carried a Road intent and smoothed
// successfully, retained with its original Plan index so GestureSideIDs
// stay stable regardless of which other gestures in the plan are roads.
type roadGesture struct {
	gestureIndex int
	path         geom.Path
	nFwd, nBwd   uint8
}

// Compile turns a plan into its compiled road-network prototypes. It is a
// single-threaded, synchronous, pure function of the plan alone: result is
// accepted for caller convenience, mirroring the upstream planning API,
// and is otherwise unused.
func Compile(p plan.Plan, result plan.Result) []prototype.Prototype {
	roads := collectRoadGestures(p)

	pavements := make([]pavement, len(roads))
	for i, r := range roads {
		pavements[i] = pavement{
			shape: buildPavementOutline(r.path, r.nFwd, r.nBwd),
			path:  r.path,
			nFwd:  r.nFwd,
			nBwd:  r.nBwd,
		}
	}

	intersections := buildIntersections(pavements)

	var inSegment []inSegmentLane
	for _, r := range roads {
		for _, raw := range buildRawLanesForGesture(r.gestureIndex, r.path, r.nFwd, r.nBwd) {
			inSegment = append(inSegment, cutRawLane(raw, intersections)...)
		}
	}

	buildConnectingLanes(intersections)

	transferLanes := buildTransferLanes(buildTransferCandidates(inSegment))

	return assemble(intersections, inSegment, transferLanes, pavements)
}

func collectRoadGestures(p plan.Plan) []roadGesture {
	var roads []roadGesture
	for i, g := range p.Gestures {
		if g.Intent.Kind != plan.IntentRoad {
			continue
		}
		path, ok := smoothPath(g.Points)
		if !ok {
			continue
		}
		roads = append(roads, roadGesture{
			gestureIndex: i,
			path:         path,
			nFwd:         g.Intent.Road.NLanesForward,
			nBwd:         g.Intent.Road.NLanesBackward,
		})
	}
	return roads
}

// assemble concatenates, in order: every intersection prototype, every
// in-segment lane, every transfer lane, every pavement shape.
func assemble(
	intersections []*prototype.IntersectionPrototype,
	inSegment []inSegmentLane,
	transferLanes []prototype.TransferLanePrototype,
	pavements []pavement,
) []prototype.Prototype {
	out := make([]prototype.Prototype, 0, len(intersections)+len(inSegment)+len(transferLanes)+len(pavements))

	for _, isect := range intersections {
		out = append(out, prototype.Prototype{Kind: prototype.KindIntersection, Intersection: isect})
	}
	for _, lane := range inSegment {
		out = append(out, prototype.Prototype{
			Kind: prototype.KindLane,
			Lane: prototype.LanePrototype{Path: lane.path},
		})
	}
	for _, t := range transferLanes {
		out = append(out, prototype.Prototype{Kind: prototype.KindTransferLane, TransferLane: t})
	}
	for _, pv := range pavements {
		out = append(out, prototype.Prototype{Kind: prototype.KindPavedArea, PavedArea: prototype.PavedArea{Shape: pv.shape}})
	}

	return out
}
