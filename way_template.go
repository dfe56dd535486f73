package osm2lanes

import (
	"fmt"
	"math"
)

const (
	sidewalkElevation = 0.2
)

// crossSectionWidths holds default widths (meters) of lanes derived from OSM tags
type crossSectionWidths struct {
	lane     float32
	sidewalk float32
	parking  float32
	cycle    float32
}

// trafficLanes returns number of forward and backward road lanes of the way
func (way *WayData) trafficLanes() (forward int, backward int) {
	total := way.lanes
	if total <= 0 {
		total = way.highwayType.defaultLanes()
	}
	if way.Oneway {
		if way.IsReversed {
			return 0, total
		}
		return total, 0
	}
	forward, backward = way.lanesForward, way.lanesBackward
	switch {
	case forward >= 0 && backward >= 0:
	case forward >= 0:
		backward = maxInt(total-forward, 0)
	case backward >= 0:
		forward = maxInt(total-backward, 0)
	default:
		forward = int(math.Ceil(float64(total) / 2.0))
		backward = total - forward
	}
	return forward, backward
}

// psvLanes returns number of public transport lanes for each direction
func (way *WayData) psvLanes() (forward int, backward int) {
	forward, backward = maxInt(way.psvForward, 0), maxInt(way.psvBackward, 0)
	if way.psv > 0 && forward == 0 && backward == 0 {
		switch {
		case way.Oneway && way.IsReversed:
			backward = way.psv
		case way.Oneway:
			forward = way.psv
		default:
			forward = int(math.Ceil(float64(way.psv) / 2.0))
			backward = way.psv - forward
		}
	}
	return forward, backward
}

// laneTemplate derives road cross-section from way tags.
//
// Right-hand traffic is assumed: lanes are laid from the left edge (negative positions) to the right edge
// (positive positions) around the way axis. Sidewalk, cycle lane and parking are placed outside of road lanes.
func (way *WayData) laneTemplate(widths crossSectionWidths) LaneTemplate {
	template := LaneTemplate{
		Name: fmt.Sprintf("way_%d", way.ID),
	}

	auto, bike, walk := false, false, false
	for _, agent := range way.allowedAgentTypes() {
		switch agent {
		case AGENT_AUTO:
			auto = true
		case AGENT_BIKE:
			bike = true
		case AGENT_WALK:
			walk = true
		}
	}

	// Ways without motor traffic are a single strip for the allowed agent
	if !auto {
		switch {
		case bike:
			template.Lanes = []Lane{{Width: widths.cycle, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_BICYCLE}}
		case walk:
			template.Lanes = []Lane{{Width: widths.sidewalk, VerticalOffset: sidewalkElevation, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN}}
		}
		return template
	}

	forward, backward := way.trafficLanes()
	psvForward, psvBackward := way.psvLanes()

	roadLaneWidth := widths.lane
	if way.width > 0 && forward+backward > 0 {
		roadLaneWidth = float32(way.width) / float32(forward+backward)
	}
	vehicleType := VEHICLE_CAR
	if way.trolleyWire == "yes" {
		vehicleType |= VEHICLE_TROLLEYBUS
	}

	// Direction of side elements follows nearest traffic
	leftDirection, rightDirection := DIRECTION_BACKWARD, DIRECTION_FORWARD
	if way.Oneway {
		leftDirection, rightDirection = DIRECTION_FORWARD, DIRECTION_FORWARD
		if way.IsReversed {
			leftDirection, rightDirection = DIRECTION_BACKWARD, DIRECTION_BACKWARD
		}
	}

	lanes := []Lane{}
	if way.sidewalk.left {
		lanes = append(lanes, Lane{Width: widths.sidewalk, VerticalOffset: sidewalkElevation, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN})
	}
	if way.cycleLanes.left {
		lanes = append(lanes, Lane{Width: widths.cycle, Direction: leftDirection, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_BICYCLE})
	}
	if way.parking.left {
		lanes = append(lanes, Lane{Width: widths.parking, Direction: leftDirection, LaneType: LANE_TYPE_PARKING, VehicleType: VEHICLE_CAR})
	}

	// Backward lanes: public transport lanes are the outermost ones
	single := forward+backward == 1 && !way.Oneway
	for i := 0; i < backward; i++ {
		lane := Lane{Width: roadLaneWidth, Direction: DIRECTION_BACKWARD, LaneType: LANE_TYPE_VEHICLE, VehicleType: vehicleType, AllowConnect: true}
		if i < psvBackward {
			lane.LaneType = LANE_TYPE_TRANSPORT_VEHICLE
		}
		if single {
			lane.Direction = DIRECTION_BOTH
		}
		lanes = append(lanes, lane)
	}
	for i := forward - 1; i >= 0; i-- {
		lane := Lane{Width: roadLaneWidth, Direction: DIRECTION_FORWARD, LaneType: LANE_TYPE_VEHICLE, VehicleType: vehicleType, AllowConnect: true}
		if i < psvForward {
			lane.LaneType = LANE_TYPE_TRANSPORT_VEHICLE
		}
		if single {
			lane.Direction = DIRECTION_BOTH
		}
		lanes = append(lanes, lane)
	}

	if way.parking.right {
		lanes = append(lanes, Lane{Width: widths.parking, Direction: rightDirection, LaneType: LANE_TYPE_PARKING, VehicleType: VEHICLE_CAR})
	}
	if way.cycleLanes.right {
		lanes = append(lanes, Lane{Width: widths.cycle, Direction: rightDirection, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_BICYCLE})
	}
	if way.sidewalk.right {
		lanes = append(lanes, Lane{Width: widths.sidewalk, VerticalOffset: sidewalkElevation, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN})
	}

	layoutLanes(lanes)
	template.Lanes = lanes
	return template
}

// layoutLanes assigns positions to lanes put side by side, keeping the whole cross-section centered
func layoutLanes(lanes []Lane) {
	total := float32(0)
	for i := range lanes {
		total += lanes[i].Width
	}
	edge := -total / 2
	for i := range lanes {
		lanes[i].Position = edge + lanes[i].Width/2
		edge += lanes[i].Width
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
