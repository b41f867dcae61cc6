// Package prototype is the outbound model this compiler produces: the
// pavement, lane, transfer-lane, and intersection prototypes that make up
// a compiled road network, plus the morphability relation callers use to
// diff two compilations.
package prototype

import "github.com/azybler/roadplan/pkg/geom"

// GestureSideID identifies one travel direction of one gesture: the
// forward side of gesture index i is encoded as i+1, the backward side as
// -(i+1). Zero is never used, so the zero value is never a valid ID.
type GestureSideID int

// ForwardSide returns the GestureSideID of gesture index i's forward side.
func ForwardSide(gestureIndex int) GestureSideID {
	return GestureSideID(gestureIndex + 1)
}

// BackwardSide returns the GestureSideID of gesture index i's backward side.
func BackwardSide(gestureIndex int) GestureSideID {
	return GestureSideID(-(gestureIndex + 1))
}

// LaneMorphTolerance is how far apart two lane centerlines may be,
// everywhere, and still be considered the same lane across a
// recompilation.
const LaneMorphTolerance geom.N = 0.05

// IntersectionMorphTolerance is the equivalent tolerance for intersection
// outlines.
const IntersectionMorphTolerance geom.N = 0.1

// LanePrototype is a lane centerline plus an opaque timing sequence (the
// meaning of which is defined by a downstream consumer this core never
// inspects; it is always produced empty).
type LanePrototype struct {
	Path    geom.Path
	Timings []bool
}

// MorphableFrom reports whether l is the same lane as other across a
// recompilation: their paths track within LaneMorphTolerance everywhere
// and their timing sequences match exactly.
func (l LanePrototype) MorphableFrom(other LanePrototype) bool {
	return pathsRoughlyWithin(l.Path, other.Path, LaneMorphTolerance) && boolsEqual(l.Timings, other.Timings)
}

// TransferLanePrototype is a lane-change centerline between two adjacent
// same-direction in-segment lanes.
type TransferLanePrototype struct {
	Path geom.Path
}

// MorphableFrom reports whether t is the same transfer lane as other.
func (t TransferLanePrototype) MorphableFrom(other TransferLanePrototype) bool {
	return pathsRoughlyWithin(t.Path, other.Path, LaneMorphTolerance)
}

// ConnectionRole classifies how a connecting lane relates its incoming and
// outgoing sides. All four flags start false; per the Open Question this
// compiler preserves from its source (see DESIGN.md), nothing in this core
// writes them.
type ConnectionRole struct {
	Straight  bool
	UTurn     bool
	InnerTurn bool
	OuterTurn bool
}

// IntersectionConnector is a position and tangent at which a lane enters
// or exits an intersection region.
type IntersectionConnector struct {
	Position  geom.Point
	Direction geom.Vector
	Role      ConnectionRole
}

// NewIntersectionConnector builds a connector with its role flags at their
// zero value.
func NewIntersectionConnector(position geom.Point, direction geom.Vector) IntersectionConnector {
	return IntersectionConnector{Position: position, Direction: direction}
}

// ConnectionKey identifies one ordered (from, to) side pair across an
// intersection's connecting lanes.
type ConnectionKey struct {
	From, To GestureSideID
}

// IntersectionPrototype is an intersection region together with the
// connectors lanes register on it and the connecting lanes synthesized
// between them.
type IntersectionPrototype struct {
	Shape           geom.Shape
	Incoming        map[GestureSideID][]IntersectionConnector
	Outgoing        map[GestureSideID][]IntersectionConnector
	ConnectingLanes map[ConnectionKey][]LanePrototype
}

// NewIntersectionPrototype seeds an intersection prototype from its shape,
// with empty connector maps and no connecting lanes yet.
func NewIntersectionPrototype(shape geom.Shape) *IntersectionPrototype {
	return &IntersectionPrototype{
		Shape:           shape,
		Incoming:        make(map[GestureSideID][]IntersectionConnector),
		Outgoing:        make(map[GestureSideID][]IntersectionConnector),
		ConnectingLanes: make(map[ConnectionKey][]LanePrototype),
	}
}

// MorphableFrom reports whether i is the same intersection as other,
// judged solely by outline proximity — the connector/connecting-lane
// structure is derived, not independently identifying.
func (i *IntersectionPrototype) MorphableFrom(other *IntersectionPrototype) bool {
	return pathsRoughlyWithin(i.Shape.Outline(), other.Shape.Outline(), IntersectionMorphTolerance)
}

// PavedArea is the paved surface covering a gesture's full road width.
type PavedArea struct {
	Shape geom.Shape
}

// Kind discriminates the Prototype sum type.
type Kind int

const (
	KindIntersection Kind = iota
	KindLane
	KindTransferLane
	KindPavedArea
)

// Prototype is the tagged union of every output variant this compiler
// produces.
type Prototype struct {
	Kind         Kind
	Intersection *IntersectionPrototype
	Lane         LanePrototype
	TransferLane TransferLanePrototype
	PavedArea    PavedArea
}

// MorphableFrom reports whether p is the same prototype as other across a
// recompilation. Prototypes of different kinds are never morphable into
// one another, and paved areas have no morphability check: two PavedArea
// prototypes are never reported morphable.
func (p Prototype) MorphableFrom(other Prototype) bool {
	if p.Kind != other.Kind {
		return false
	}
	switch p.Kind {
	case KindIntersection:
		return p.Intersection.MorphableFrom(other.Intersection)
	case KindLane:
		return p.Lane.MorphableFrom(other.Lane)
	case KindTransferLane:
		return p.TransferLane.MorphableFrom(other.TransferLane)
	default:
		return false
	}
}

func pathsRoughlyWithin(a, b geom.Path, tolerance geom.N) bool {
	return geom.PathsRoughlyWithin(a, b, tolerance)
}

func boolsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
