package osm2lanes

// laneScan walks over sorted lanes from one physical end of the road towards the other one.
//
// Backward lanes of a regular road occupy the low end (negative positions), forward lanes occupy the high end.
// The same routine serves both orientations: start, end (exclusive) and step are mirrored,
// and multiplier turns positions into distances growing along the scan.
type laneScan struct {
	group      LaneFlags
	start      int
	end        int
	step       int
	multiplier float32
}

// outwardScan starts at the regular outer edge of the given direction group
func outwardScan(group LaneFlags, lanesNum int) laneScan {
	if group == LANE_BACKWARD_GROUP {
		return laneScan{group: group, start: 0, end: lanesNum, step: 1, multiplier: 1}
	}
	return laneScan{group: group, start: lanesNum - 1, end: -1, step: -1, multiplier: -1}
}

// displacedScan starts at the far edge of the given direction group (the regular outer edge of the opposite group)
func displacedScan(group LaneFlags, lanesNum int) laneScan {
	if group == LANE_BACKWARD_GROUP {
		return laneScan{group: group, start: lanesNum - 1, end: -1, step: -1, multiplier: -1}
	}
	return laneScan{group: group, start: 0, end: lanesNum, step: 1, multiplier: 1}
}

// until returns copy of scan with a new exclusive end
func (scan laneScan) until(end int) laneScan {
	scan.end = end
	return scan
}

// belongs returns true if lane is a member of scanned direction group
func (scan laneScan) belongs(flags LaneFlags) bool {
	return flags.Any(scan.group)
}

// opposes returns true if lane is a member of the opposite direction group only
func (scan laneScan) opposes(flags LaneFlags) bool {
	return flags.Any(opposite(scan.group)) && !flags.Any(scan.group)
}

// behaviorFlag picks routing behavior for lanes moved out of the regular outer block:
// connectable lanes must not be controlled, plain car lanes receive carFlag
func behaviorFlag(lane Lane, carFlag LaneFlags) LaneFlags {
	if lane.AllowConnect {
		return LANE_FORBID_CONTROLLED_LANES
	}
	if lane.IsCarLane() {
		return carFlag
	}
	return LANE_FLAGS_NONE
}
