package osm2lanes

// LaneClassification is the immutable result of lane template classification.
// Lanes has the same length and order as the source template.
type LaneClassification struct {
	Lanes         []LaneFlags
	Sorted        []int
	Groups        []LaneGroup
	ForwardFlags  LaneFlags
	BackwardFlags LaneFlags
	TotalFlags    LaneFlags
	Configuration RoadLaneConfiguration
}

// Classify evaluates structural flags for every lane of the road cross-section.
//
// Classification never fails: lanes are expected to come from a sound template,
// so degenerate inputs (no lanes, no road lanes) produce empty results with undefined configuration.
func Classify(lanes []Lane) *LaneClassification {
	flags := buildLaneTable(lanes)
	sorted := sortLanes(lanes, flags)
	configuration := classifyConfiguration(lanes, flags)

	switch configuration {
	case ROAD_CONFIG_COMPLEX:
		classifyComplex(lanes, flags, sorted)
		classifyMedians(lanes, flags, sorted)
	case ROAD_CONFIG_TWO_WAY:
		classifyRegular(flags)
		classifyMedians(lanes, flags, sorted)
	case ROAD_CONFIG_UNDEFINED:
		// Nothing to classify
	default:
		classifyRegular(flags)
	}

	forward, backward := aggregateFlags(flags)
	return &LaneClassification{
		Lanes:         flags,
		Sorted:        sorted,
		Groups:        buildLaneGroups(flags, sorted),
		ForwardFlags:  forward,
		BackwardFlags: backward,
		TotalFlags:    forward | backward,
		Configuration: configuration,
	}
}

// GroupOf returns index of the group containing given lane or -1 for lanes without traffic
func (cls *LaneClassification) GroupOf(laneIdx int) int {
	for groupIdx, group := range cls.Groups {
		for _, member := range group.Lanes {
			if member == laneIdx {
				return groupIdx
			}
		}
	}
	return -1
}

// SortedIndexOf returns position of given lane in sorted order or -1 if there is no such lane
func (cls *LaneClassification) SortedIndexOf(laneIdx int) int {
	for i, member := range cls.Sorted {
		if member == laneIdx {
			return i
		}
	}
	return -1
}

// LanesWith returns lanes (in sorted order) having every bit of mask set
func (cls *LaneClassification) LanesWith(mask LaneFlags) []int {
	found := []int{}
	for _, laneIdx := range cls.Sorted {
		if cls.Lanes[laneIdx].Has(mask) {
			found = append(found, laneIdx)
		}
	}
	return found
}
