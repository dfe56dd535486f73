package osm2lanes

// LaneGroup is a set of lanes sharing the same positional and direction flags
type LaneGroup struct {
	// Lane indices ordered by position
	Lanes []int
	// Aggregate of members flags
	Flags LaneFlags
}

// Position returns positional flag of the group
func (group LaneGroup) Position() LaneFlags {
	return group.Flags.Position()
}

// Direction returns direction group flags of the group
func (group LaneGroup) Direction() LaneFlags {
	return group.Flags.Direction()
}

// buildLaneGroups partitions classified lanes by (position, direction) flags.
// Sorted order is walked, so groups come out ordered by their lowest member and members are ordered by position.
func buildLaneGroups(flags []LaneFlags, sorted []int) []LaneGroup {
	groups := []LaneGroup{}
	groupByKey := make(map[LaneFlags]int)
	for _, laneIdx := range sorted {
		key := flags[laneIdx] & (LANE_FLAGS_POSITION | LANE_FLAGS_DIRECTION)
		if key == LANE_FLAGS_NONE {
			continue
		}
		groupIdx, ok := groupByKey[key]
		if !ok {
			groupIdx = len(groups)
			groupByKey[key] = groupIdx
			groups = append(groups, LaneGroup{})
		}
		groups[groupIdx].Lanes = append(groups[groupIdx].Lanes, laneIdx)
		groups[groupIdx].Flags |= flags[laneIdx]
	}
	return groups
}

// aggregateFlags returns union of flags over forward and backward group lanes
func aggregateFlags(flags []LaneFlags) (forward LaneFlags, backward LaneFlags) {
	for _, laneFlags := range flags {
		if laneFlags.Any(LANE_FORWARD_GROUP) {
			forward |= laneFlags
		}
		if laneFlags.Any(LANE_BACKWARD_GROUP) {
			backward |= laneFlags
		}
	}
	return forward, backward
}
