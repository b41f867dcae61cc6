// Package plan is the inbound model this compiler consumes: an ordered
// collection of user-drawn gestures, each carrying an intent. Capturing
// and editing gestures is the excluded editor's job; this package only
// describes the shape of what it hands over.
package plan

import "github.com/azybler/roadplan/pkg/geom"

// GestureID is a stable identity for one gesture within a Plan.
type GestureID int

// IntentKind discriminates the closed GestureIntent sum type.
type IntentKind int

const (
	// IntentOther covers every gesture intent this core does not process
	// (e.g. zoning, terrain) — it participates in no pipeline stage.
	IntentOther IntentKind = iota
	// IntentRoad marks a gesture as describing a road: the only intent
	// this compiler acts on.
	IntentRoad
)

// RoadIntent is the payload of a Road gesture intent: how many lanes run
// in each direction along the gesture's native orientation.
type RoadIntent struct {
	NLanesForward  uint8
	NLanesBackward uint8
}

// GestureIntent is a closed sum type: a gesture either describes a road or
// it describes something this core ignores.
type GestureIntent struct {
	Kind IntentKind
	Road RoadIntent // valid only when Kind == IntentRoad
}

// Road builds a Road gesture intent.
func Road(nLanesForward, nLanesBackward uint8) GestureIntent {
	return GestureIntent{Kind: IntentRoad, Road: RoadIntent{NLanesForward: nLanesForward, NLanesBackward: nLanesBackward}}
}

// Gesture is a user-drawn polyline with an intent.
type Gesture struct {
	ID     GestureID
	Points []geom.Point
	Intent GestureIntent
}

// Plan is an ordered collection of gestures.
type Plan struct {
	Gestures []Gesture
}

// Result is accepted by the compiler for caller convenience alongside a
// Plan, mirroring the upstream planning API, but is unused by this core:
// compilation is a pure function of the Plan alone.
type Result struct{}
