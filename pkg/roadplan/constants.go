// Package roadplan compiles a plan of road gestures into a validated
// road-network prototype: pavement outlines, in-segment lane centerlines,
// transfer lanes, and intersections with their connectors and connecting
// lanes. Compile is the single entry point; everything else in the
// package is an internal pipeline stage.
package roadplan

import "github.com/azybler/roadplan/pkg/geom"

const (
	// LaneWidth is the nominal width of a single lane.
	LaneWidth geom.N = 6.0
	// LaneDistance is the lateral offset between adjacent lane centerlines.
	LaneDistance geom.N = 0.8 * LaneWidth
	// CenterLaneDistance is the separation between the innermost forward
	// and innermost backward lane centerlines; each sits half of it from
	// the gesture's own centerline.
	CenterLaneDistance geom.N = 1.1 * LaneDistance
	// EndIntersectionDepth is the along-path length of the rectangular
	// end-cap intersection placed at each gesture extremity.
	EndIntersectionDepth geom.N = 15.0
	// TransferLaneDistanceTolerance is both the half-width of the bands
	// used to find lane-change opportunities and the maximum midpoint
	// separation a transfer-lane window may have.
	TransferLaneDistanceTolerance geom.N = 0.3
)
