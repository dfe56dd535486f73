package osm2lanes

// markDisplacedOuter marks lanes stranded at the far edge of the road for scan's direction group.
// It returns sorted index of the innermost marked lane. If nothing has been marked
// then index right before the scan start is returned.
func (scan laneScan) markDisplacedOuter(flags []LaneFlags, sorted []int) int {
	bound := scan.start - scan.step
	for i := scan.start; i != scan.end; i += scan.step {
		laneIdx := sorted[i]
		if scan.opposes(flags[laneIdx]) {
			break
		}
		if !scan.belongs(flags[laneIdx]) {
			// Lanes without traffic are transparent
			continue
		}
		if flags[laneIdx].Position() == LANE_FLAGS_NONE {
			flags[laneIdx] |= LANE_DISPLACED_OUTER
		}
		bound = i
	}
	return bound
}

// markOuterAndDisplacedInner marks regular outer block of scan's direction group and every lane of the group
// found behind the opposite traffic. Scan has to be limited by the bound of displaced outer lanes.
func (scan laneScan) markOuterAndDisplacedInner(lanes []Lane, flags []LaneFlags, sorted []int) {
	i := scan.start
	// Pass through lanes of the opposite group which are displaced to this edge
	for ; i != scan.end && !scan.belongs(flags[sorted[i]]); i += scan.step {
	}
	for ; i != scan.end; i += scan.step {
		laneIdx := sorted[i]
		if scan.opposes(flags[laneIdx]) {
			break
		}
		if scan.belongs(flags[laneIdx]) && flags[laneIdx].Position() == LANE_FLAGS_NONE {
			flags[laneIdx] |= LANE_OUTER
		}
	}
	for ; i != scan.end; i += scan.step {
		laneIdx := sorted[i]
		if !scan.belongs(flags[laneIdx]) || flags[laneIdx].Position() != LANE_FLAGS_NONE {
			continue
		}
		flags[laneIdx] |= LANE_DISPLACED_INNER | behaviorFlag(lanes[laneIdx], LANE_ALLOW_CFI)
	}
}

// classifyComplex assigns positional flags for roads where direction groups interleave
func classifyComplex(lanes []Lane, flags []LaneFlags, sorted []int) {
	lanesNum := len(sorted)
	backwardBound := displacedScan(LANE_BACKWARD_GROUP, lanesNum).markDisplacedOuter(flags, sorted)
	forwardBound := displacedScan(LANE_FORWARD_GROUP, lanesNum).markDisplacedOuter(flags, sorted)
	outwardScan(LANE_BACKWARD_GROUP, lanesNum).until(backwardBound).markOuterAndDisplacedInner(lanes, flags, sorted)
	outwardScan(LANE_FORWARD_GROUP, lanesNum).until(forwardBound).markOuterAndDisplacedInner(lanes, flags, sorted)
}

// classifyRegular marks every road lane as outer one
func classifyRegular(flags []LaneFlags) {
	for i := range flags {
		if flags[i].Direction() != LANE_FLAGS_NONE {
			flags[i] |= LANE_OUTER
		}
	}
}
