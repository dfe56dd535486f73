package osm2lanes

import (
	"fmt"
	"strings"
)

// Lane is a single strip of a road cross-section.
//
// Position is the signed lateral offset of the lane center from the road axis: backward lanes
// of a regular two-way road have negative positions, forward lanes have positive ones.
type Lane struct {
	Position       float32
	Width          float32
	VerticalOffset float32
	Direction      LaneDirection
	LaneType       LaneType
	VehicleType    VehicleType
	AllowConnect   bool
}

// IsRoadLane returns true if lane carries car or trolleybus traffic
func (lane Lane) IsRoadLane() bool {
	return lane.LaneType&(LANE_TYPE_VEHICLE|LANE_TYPE_TRANSPORT_VEHICLE) != 0 &&
		lane.VehicleType&(VEHICLE_CAR|VEHICLE_TROLLEYBUS) != 0
}

// IsCarLane returns true for ordinary car lanes (no public transport, no mixed vehicle types)
func (lane Lane) IsCarLane() bool {
	return lane.LaneType == LANE_TYPE_VEHICLE && lane.VehicleType == VEHICLE_CAR
}

// outerEdge is the lane edge facing the scan origin
func (lane Lane) outerEdge(multiplier float32) float32 {
	return lane.Position*multiplier - lane.Width/2
}

// innerEdge is the lane edge facing away from the scan origin
func (lane Lane) innerEdge(multiplier float32) float32 {
	return lane.Position*multiplier + lane.Width/2
}

type LaneDirection uint16

const (
	DIRECTION_FORWARD = LaneDirection(iota + 1)
	DIRECTION_BACKWARD
	DIRECTION_BOTH
	DIRECTION_AVOID_FORWARD
	DIRECTION_AVOID_BACKWARD
	DIRECTION_AVOID_BOTH
	DIRECTION_NONE = LaneDirection(0)
)

func (iotaIdx LaneDirection) String() string {
	return [...]string{"none", "forward", "backward", "both", "avoid_forward", "avoid_backward", "avoid_both"}[iotaIdx]
}

var (
	laneDirections = map[string]LaneDirection{
		"none":           DIRECTION_NONE,
		"forward":        DIRECTION_FORWARD,
		"backward":       DIRECTION_BACKWARD,
		"both":           DIRECTION_BOTH,
		"avoid_forward":  DIRECTION_AVOID_FORWARD,
		"avoid_backward": DIRECTION_AVOID_BACKWARD,
		"avoid_both":     DIRECTION_AVOID_BOTH,
	}
)

// ParseLaneDirection returns direction for its text representation
func ParseLaneDirection(str string) (LaneDirection, error) {
	if found, ok := laneDirections[strings.ToLower(strings.TrimSpace(str))]; ok {
		return found, nil
	}
	return DIRECTION_NONE, fmt.Errorf("Unknown lane direction '%s'", str)
}

type LaneType uint16

const (
	LANE_TYPE_VEHICLE = LaneType(1 << iota)
	LANE_TYPE_TRANSPORT_VEHICLE
	LANE_TYPE_PARKING
	LANE_TYPE_PEDESTRIAN
	LANE_TYPE_CARGO_VEHICLE
	LANE_TYPE_NONE = LaneType(0)
)

var (
	laneTypesOrdered = []LaneType{LANE_TYPE_VEHICLE, LANE_TYPE_TRANSPORT_VEHICLE, LANE_TYPE_PARKING, LANE_TYPE_PEDESTRIAN, LANE_TYPE_CARGO_VEHICLE}
	laneTypeNames    = map[LaneType]string{
		LANE_TYPE_VEHICLE:           "vehicle",
		LANE_TYPE_TRANSPORT_VEHICLE: "transport_vehicle",
		LANE_TYPE_PARKING:           "parking",
		LANE_TYPE_PEDESTRIAN:        "pedestrian",
		LANE_TYPE_CARGO_VEHICLE:     "cargo_vehicle",
	}
	laneTypes = map[string]LaneType{
		"vehicle":           LANE_TYPE_VEHICLE,
		"transport_vehicle": LANE_TYPE_TRANSPORT_VEHICLE,
		"parking":           LANE_TYPE_PARKING,
		"pedestrian":        LANE_TYPE_PEDESTRIAN,
		"cargo_vehicle":     LANE_TYPE_CARGO_VEHICLE,
	}
)

func (laneType LaneType) String() string {
	if laneType == LANE_TYPE_NONE {
		return "none"
	}
	names := make([]string, 0, len(laneTypesOrdered))
	for _, bit := range laneTypesOrdered {
		if laneType&bit != 0 {
			names = append(names, laneTypeNames[bit])
		}
	}
	return strings.Join(names, "|")
}

// ParseLaneType combines given names into lane type bitmask
func ParseLaneType(names ...string) (LaneType, error) {
	laneType := LANE_TYPE_NONE
	for _, name := range names {
		found, ok := laneTypes[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return LANE_TYPE_NONE, fmt.Errorf("Unknown lane type '%s'", name)
		}
		laneType |= found
	}
	return laneType, nil
}

type VehicleType uint16

const (
	VEHICLE_CAR = VehicleType(1 << iota)
	VEHICLE_TROLLEYBUS
	VEHICLE_BICYCLE
	VEHICLE_TRAM
	VEHICLE_TRAIN
	VEHICLE_NONE = VehicleType(0)
)

var (
	vehicleTypesOrdered = []VehicleType{VEHICLE_CAR, VEHICLE_TROLLEYBUS, VEHICLE_BICYCLE, VEHICLE_TRAM, VEHICLE_TRAIN}
	vehicleTypeNames    = map[VehicleType]string{
		VEHICLE_CAR:        "car",
		VEHICLE_TROLLEYBUS: "trolleybus",
		VEHICLE_BICYCLE:    "bicycle",
		VEHICLE_TRAM:       "tram",
		VEHICLE_TRAIN:      "train",
	}
	vehicleTypes = map[string]VehicleType{
		"car":        VEHICLE_CAR,
		"trolleybus": VEHICLE_TROLLEYBUS,
		"bicycle":    VEHICLE_BICYCLE,
		"tram":       VEHICLE_TRAM,
		"train":      VEHICLE_TRAIN,
	}
)

func (vehicleType VehicleType) String() string {
	if vehicleType == VEHICLE_NONE {
		return "none"
	}
	names := make([]string, 0, len(vehicleTypesOrdered))
	for _, bit := range vehicleTypesOrdered {
		if vehicleType&bit != 0 {
			names = append(names, vehicleTypeNames[bit])
		}
	}
	return strings.Join(names, "|")
}

// ParseVehicleType combines given names into vehicle type bitmask
func ParseVehicleType(names ...string) (VehicleType, error) {
	vehicleType := VEHICLE_NONE
	for _, name := range names {
		found, ok := vehicleTypes[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return VEHICLE_NONE, fmt.Errorf("Unknown vehicle type '%s'", name)
		}
		vehicleType |= found
	}
	return vehicleType, nil
}
