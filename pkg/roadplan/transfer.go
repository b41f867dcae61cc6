package roadplan

import (
	"sort"

	"github.com/azybler/roadplan/pkg/geom"
	"github.com/azybler/roadplan/pkg/prototype"
)

// transferCandidate is one in-segment lane together with the two bands
// (right-side and left-side lane-change offsets) built from it, each of
// which may be absent if its orthogonal shift failed.
type transferCandidate struct {
	centerline        geom.Path
	rightBand         geom.Band
	leftBand          geom.Band
	hasRight, hasLeft bool
}

// buildTransferCandidates builds the right/left lane-change bands for
// every in-segment lane, dropping whichever side's offset fails.
func buildTransferCandidates(lanes []inSegmentLane) []transferCandidate {
	out := make([]transferCandidate, len(lanes))
	for i, lane := range lanes {
		out[i].centerline = lane.path
		if shifted, ok := lane.path.ShiftOrthogonally(0.5 * LaneDistance); ok {
			out[i].rightBand = geom.NewBand(shifted, TransferLaneDistanceTolerance)
			out[i].hasRight = true
		}
		if shifted, ok := lane.path.ShiftOrthogonally(-0.5 * LaneDistance); ok {
			out[i].leftBand = geom.NewBand(shifted, TransferLaneDistanceTolerance)
			out[i].hasLeft = true
		}
	}
	return out
}

// buildTransferLanes runs the full cartesian product of right-band /
// left-band pairs, including a lane paired with itself — the source this
// compiler preserves does not filter self-pairs (see DESIGN.md) — and
// emits a transfer lane for every accepted lane-change window.
func buildTransferLanes(candidates []transferCandidate) []prototype.TransferLanePrototype {
	var out []prototype.TransferLanePrototype
	for x := range candidates {
		if !candidates[x].hasRight {
			continue
		}
		for y := range candidates {
			if !candidates[y].hasLeft {
				continue
			}
			out = append(out, transferLanesBetween(candidates[x], candidates[y])...)
		}
	}
	return out
}

// transferLanesBetween finds lane-change windows between one lane's right
// band and another's left band, per spec.md's sliding-window proximity
// test, and coalesces adjacent accepted windows into single lanes.
func transferLanesBetween(right, left transferCandidate) []prototype.TransferLanePrototype {
	points := geom.Intersect(right.rightBand.Outline(), left.leftBand.Outline())
	if len(points) < 2 {
		return nil
	}
	sort.Slice(points, func(i, j int) bool {
		return right.rightBand.OutlineDistanceToPathDistance(points[i].AlongA) <
			right.rightBand.OutlineDistanceToPathDistance(points[j].AlongA)
	})

	var fragments []geom.Path
	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		s0r := right.rightBand.OutlineDistanceToPathDistance(p0.AlongA)
		s1r := right.rightBand.OutlineDistanceToPathDistance(p1.AlongA)
		s0l := left.leftBand.OutlineDistanceToPathDistance(p0.AlongB)
		s1l := left.leftBand.OutlineDistanceToPathDistance(p1.AlongB)
		if !(s0l < s1l) {
			continue
		}

		rightMid := right.centerline.Along((s0r + s1r) / 2)
		leftMid := left.centerline.Along((s0l + s1l) / 2)
		if rightMid.Sub(leftMid).Length() > TransferLaneDistanceTolerance {
			continue
		}

		if frag, ok := right.centerline.Subsection(s0r, s1r); ok {
			fragments = append(fragments, frag)
		}
	}

	return coalesceTransferFragments(fragments)
}

// coalesceTransferFragments merges consecutive fragments whose end and
// start concatenate successfully, keeping the rest separate.
func coalesceTransferFragments(fragments []geom.Path) []prototype.TransferLanePrototype {
	var out []prototype.TransferLanePrototype
	var current geom.Path
	have := false
	for _, frag := range fragments {
		if !have {
			current, have = frag, true
			continue
		}
		if joined, ok := current.Concat(frag); ok {
			current = joined
			continue
		}
		out = append(out, prototype.TransferLanePrototype{Path: current})
		current = frag
	}
	if have {
		out = append(out, prototype.TransferLanePrototype{Path: current})
	}
	return out
}
