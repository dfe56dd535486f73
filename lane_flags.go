package osm2lanes

import "strings"

// LaneFlags is a set of structural flags assigned to a lane by classification
type LaneFlags uint16

const (
	LANE_OUTER = LaneFlags(1 << iota)
	LANE_INNER
	LANE_DISPLACED_INNER
	LANE_DISPLACED_OUTER
	LANE_FORWARD_GROUP
	LANE_BACKWARD_GROUP
	LANE_ALLOW_SERVICE_LANE
	LANE_ALLOW_EXPRESS_LANE
	LANE_ALLOW_CFI
	LANE_FORBID_CONTROLLED_LANES
	LANE_FLAGS_NONE = LaneFlags(0)
)

// Combinations of primitive flags
const (
	LANE_FLAGS_POSITION  = LANE_OUTER | LANE_INNER | LANE_DISPLACED_INNER | LANE_DISPLACED_OUTER
	LANE_FLAGS_DIRECTION = LANE_FORWARD_GROUP | LANE_BACKWARD_GROUP
	LANE_FLAGS_BEHAVIOR  = LANE_ALLOW_SERVICE_LANE | LANE_ALLOW_EXPRESS_LANE | LANE_ALLOW_CFI | LANE_FORBID_CONTROLLED_LANES

	LANE_OUTER_FORWARD            = LANE_OUTER | LANE_FORWARD_GROUP
	LANE_OUTER_BACKWARD           = LANE_OUTER | LANE_BACKWARD_GROUP
	LANE_INNER_FORWARD            = LANE_INNER | LANE_FORWARD_GROUP
	LANE_INNER_BACKWARD           = LANE_INNER | LANE_BACKWARD_GROUP
	LANE_DISPLACED_INNER_FORWARD  = LANE_DISPLACED_INNER | LANE_FORWARD_GROUP
	LANE_DISPLACED_INNER_BACKWARD = LANE_DISPLACED_INNER | LANE_BACKWARD_GROUP
	LANE_DISPLACED_OUTER_FORWARD  = LANE_DISPLACED_OUTER | LANE_FORWARD_GROUP
	LANE_DISPLACED_OUTER_BACKWARD = LANE_DISPLACED_OUTER | LANE_BACKWARD_GROUP
)

var (
	laneFlagsOrdered = []LaneFlags{
		LANE_OUTER,
		LANE_INNER,
		LANE_DISPLACED_INNER,
		LANE_DISPLACED_OUTER,
		LANE_FORWARD_GROUP,
		LANE_BACKWARD_GROUP,
		LANE_ALLOW_SERVICE_LANE,
		LANE_ALLOW_EXPRESS_LANE,
		LANE_ALLOW_CFI,
		LANE_FORBID_CONTROLLED_LANES,
	}
	laneFlagNames = map[LaneFlags]string{
		LANE_OUTER:                   "outer",
		LANE_INNER:                   "inner",
		LANE_DISPLACED_INNER:         "displaced_inner",
		LANE_DISPLACED_OUTER:         "displaced_outer",
		LANE_FORWARD_GROUP:           "forward_group",
		LANE_BACKWARD_GROUP:          "backward_group",
		LANE_ALLOW_SERVICE_LANE:      "allow_service_lane",
		LANE_ALLOW_EXPRESS_LANE:      "allow_express_lane",
		LANE_ALLOW_CFI:               "allow_cfi",
		LANE_FORBID_CONTROLLED_LANES: "forbid_controlled_lanes",
	}
)

// Has returns true if every bit of mask is set
func (flags LaneFlags) Has(mask LaneFlags) bool {
	return flags&mask == mask
}

// Any returns true if at least one bit of mask is set
func (flags LaneFlags) Any(mask LaneFlags) bool {
	return flags&mask != 0
}

// Position returns positional part of flags
func (flags LaneFlags) Position() LaneFlags {
	return flags & LANE_FLAGS_POSITION
}

// Direction returns direction group part of flags
func (flags LaneFlags) Direction() LaneFlags {
	return flags & LANE_FLAGS_DIRECTION
}

func (flags LaneFlags) String() string {
	if flags == LANE_FLAGS_NONE {
		return "none"
	}
	names := make([]string, 0, len(laneFlagsOrdered))
	for _, bit := range laneFlagsOrdered {
		if flags&bit != 0 {
			names = append(names, laneFlagNames[bit])
		}
	}
	return strings.Join(names, "|")
}

// opposite returns opposite direction group for single group flag
func opposite(group LaneFlags) LaneFlags {
	if group == LANE_FORWARD_GROUP {
		return LANE_BACKWARD_GROUP
	}
	return LANE_FORWARD_GROUP
}
