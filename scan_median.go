package osm2lanes

import "math"

const (
	// Maximum height difference between a median strip and surrounding lanes
	medianElevationThreshold = 3.0
)

// findInnerLanes looks for a median inside regular block of scan's direction group.
// Outer lanes found behind the median are turned into inner ones.
func (scan laneScan) findInnerLanes(lanes []Lane, flags []LaneFlags, sorted []int) {
	m := scan.multiplier
	i := scan.start
	for ; i != scan.end && !scan.belongs(flags[sorted[i]]); i += scan.step {
	}
	if i == scan.end {
		return
	}

	ref := lanes[sorted[i]]
	refEdge, refWidth, refElevation := ref.innerEdge(m), ref.Width, ref.VerticalOffset

	inf := float32(math.Inf(1))
	medianEdge, medianElevation := inf, -inf

	firstInner := -1
scanning:
	for i += scan.step; i != scan.end; i += scan.step {
		laneIdx := sorted[i]
		lane := lanes[laneIdx]
		switch {
		case scan.belongs(flags[laneIdx]):
			outerEdge := lane.outerEdge(m)
			raisedMedian := medianEdge <= outerEdge &&
				medianElevation > lane.VerticalOffset &&
				medianElevation-lane.VerticalOffset < medianElevationThreshold
			gap := outerEdge >= refEdge+refWidth
			if raisedMedian || gap {
				firstInner = i
				break scanning
			}
			medianEdge, medianElevation = inf, -inf
			refEdge, refWidth, refElevation = lane.innerEdge(m), lane.Width, lane.VerticalOffset
		case scan.opposes(flags[laneIdx]):
			break scanning
		default:
			outerEdge := lane.outerEdge(m)
			if lane.VerticalOffset > refElevation &&
				lane.VerticalOffset-refElevation < medianElevationThreshold &&
				outerEdge >= refEdge {
				if outerEdge < medianEdge {
					medianEdge = outerEdge
				}
				if lane.VerticalOffset > medianElevation {
					medianElevation = lane.VerticalOffset
				}
			}
		}
	}
	if firstInner < 0 {
		return
	}

	outerGroup := LANE_OUTER | scan.group
	for j := scan.start; j != firstInner; j += scan.step {
		laneIdx := sorted[j]
		if flags[laneIdx].Has(outerGroup) && lanes[laneIdx].IsCarLane() {
			flags[laneIdx] |= LANE_ALLOW_SERVICE_LANE
		}
	}
	for j := firstInner; j != scan.end; j += scan.step {
		laneIdx := sorted[j]
		if !flags[laneIdx].Has(outerGroup) {
			continue
		}
		flags[laneIdx] = flags[laneIdx]&^LANE_OUTER | LANE_INNER | behaviorFlag(lanes[laneIdx], LANE_ALLOW_EXPRESS_LANE)
	}
}

// classifyMedians runs median detection for both direction groups
func classifyMedians(lanes []Lane, flags []LaneFlags, sorted []int) {
	lanesNum := len(sorted)
	outwardScan(LANE_BACKWARD_GROUP, lanesNum).findInnerLanes(lanes, flags, sorted)
	outwardScan(LANE_FORWARD_GROUP, lanesNum).findInnerLanes(lanes, flags, sorted)
}
