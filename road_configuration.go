package osm2lanes

import "math"

// RoadLaneConfiguration describes how direction groups are laid out across the road
type RoadLaneConfiguration uint16

const (
	ROAD_CONFIG_ONE_WAY = RoadLaneConfiguration(iota + 1)
	ROAD_CONFIG_INVERTED_ONE_WAY
	ROAD_CONFIG_INVERTED
	ROAD_CONFIG_TWO_WAY
	ROAD_CONFIG_COMPLEX
	ROAD_CONFIG_UNDEFINED = RoadLaneConfiguration(0)
)

func (iotaIdx RoadLaneConfiguration) String() string {
	return [...]string{"undefined", "one_way", "inverted_one_way", "inverted", "two_way", "complex"}[iotaIdx]
}

// classifyConfiguration evaluates road configuration from extreme positions of each direction group
func classifyConfiguration(lanes []Lane, flags []LaneFlags) RoadLaneConfiguration {
	inf := float32(math.Inf(1))
	minForward, maxForward := inf, -inf
	minBackward, maxBackward := inf, -inf
	forwardSeen, backwardSeen := false, false

	for i := range lanes {
		pos := lanes[i].Position
		if flags[i].Any(LANE_FORWARD_GROUP) {
			forwardSeen = true
			if pos < minForward {
				minForward = pos
			}
			if pos > maxForward {
				maxForward = pos
			}
		}
		if flags[i].Any(LANE_BACKWARD_GROUP) {
			backwardSeen = true
			if pos < minBackward {
				minBackward = pos
			}
			if pos > maxBackward {
				maxBackward = pos
			}
		}
	}

	// Sentinels never reach comparisons below: both groups are guaranteed to be seen there
	switch {
	case !backwardSeen && !forwardSeen:
		return ROAD_CONFIG_UNDEFINED
	case !backwardSeen:
		return ROAD_CONFIG_ONE_WAY
	case !forwardSeen:
		return ROAD_CONFIG_INVERTED_ONE_WAY
	case maxForward < minBackward || (minForward < minBackward && maxForward == minBackward):
		return ROAD_CONFIG_INVERTED
	case minForward < maxBackward:
		return ROAD_CONFIG_COMPLEX
	default:
		return ROAD_CONFIG_TWO_WAY
	}
}
