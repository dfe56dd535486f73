package osm2lanes

import "sort"

var (
	groupByDirection = map[LaneDirection]LaneFlags{
		DIRECTION_FORWARD:        LANE_FORWARD_GROUP,
		DIRECTION_AVOID_BACKWARD: LANE_FORWARD_GROUP,
		DIRECTION_BACKWARD:       LANE_BACKWARD_GROUP,
		DIRECTION_AVOID_FORWARD:  LANE_BACKWARD_GROUP,
		DIRECTION_BOTH:           LANE_FLAGS_DIRECTION,
		DIRECTION_AVOID_BOTH:     LANE_FLAGS_DIRECTION,
	}
)

// buildLaneTable returns direction group flags for every lane.
// Lanes which do not carry road traffic keep empty flags, but their slots are preserved.
func buildLaneTable(lanes []Lane) []LaneFlags {
	flags := make([]LaneFlags, len(lanes))
	for i := range lanes {
		if !lanes[i].IsRoadLane() {
			continue
		}
		flags[i] = groupByDirection[lanes[i].Direction]
	}
	return flags
}

// sortKey orders lanes sharing the same position: backward group first, forward group last.
// Lanes of both groups are treated like lanes without group.
func sortKey(flags LaneFlags) int {
	switch flags.Direction() {
	case LANE_BACKWARD_GROUP:
		return 1
	case LANE_FORWARD_GROUP:
		return 3
	default:
		return 2
	}
}

// sortLanes returns permutation of lane indices ordered by position.
//
// @TODO: lanes sharing exactly the same position are only ordered by direction group,
// mixed configurations of such lanes are not resolved any further
func sortLanes(lanes []Lane, flags []LaneFlags) []int {
	sorted := make([]int, len(lanes))
	for i := range sorted {
		sorted[i] = i
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if lanes[a].Position != lanes[b].Position {
			return lanes[a].Position < lanes[b].Position
		}
		return sortKey(flags[a]) < sortKey(flags[b])
	})
	return sorted
}
