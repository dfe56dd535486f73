package osm2lanes

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/osm"
)

var (
	testWidths = crossSectionWidths{lane: 3.5, sidewalk: 2.0, parking: 2.5, cycle: 1.5}
)

func testWay(id osm.WayID, tags map[string]string) *WayData {
	way := &osm.Way{
		ID:    id,
		Nodes: osm.WayNodes{{ID: 1}, {ID: 2}},
	}
	for k, v := range tags {
		way.Tags = append(way.Tags, osm.Tag{Key: k, Value: v})
	}
	return newWayData(way, log.New(io.Discard))
}

func TestWayTags(t *testing.T) {
	way := testWay(1, map[string]string{
		"highway":       "primary",
		"name":          "Main street",
		"lanes":         "five",
		"lanes:forward": "3",
		"width":         "10.5 m",
		"oneway":        "-1",
	})
	if way.highwayType != HIGHWAY_PRIMARY {
		t.Errorf("Highway type should be %s, but got %s", HIGHWAY_PRIMARY, way.highwayType)
	}
	if way.lanes != -1 {
		t.Errorf("Malformed number of lanes should be %d, but got %d", -1, way.lanes)
	}
	if way.lanesForward != 3 {
		t.Errorf("Number of forward lanes should be %d, but got %d", 3, way.lanesForward)
	}
	if way.width != 10.5 {
		t.Errorf("Width should be %f, but got %f", 10.5, way.width)
	}
	if !way.Oneway || !way.IsReversed {
		t.Errorf("Way should be reversed one way, but got oneway=%t reversed=%t", way.Oneway, way.IsReversed)
	}

	roundabout := testWay(2, map[string]string{"highway": "secondary", "junction": "roundabout"})
	if !roundabout.Oneway || roundabout.OnewayDefault {
		t.Errorf("Roundabout should be one way, but got oneway=%t default=%t", roundabout.Oneway, roundabout.OnewayDefault)
	}

	motorway := testWay(3, map[string]string{"highway": "motorway"})
	if !motorway.Oneway || !motorway.OnewayDefault {
		t.Errorf("Motorway should be one way by default, but got oneway=%t default=%t", motorway.Oneway, motorway.OnewayDefault)
	}
}

func TestTrafficLanes(t *testing.T) {
	cases := []struct {
		tags     map[string]string
		forward  int
		backward int
	}{
		{map[string]string{"highway": "primary", "lanes": "4"}, 2, 2},
		{map[string]string{"highway": "primary", "lanes": "3"}, 2, 1},
		{map[string]string{"highway": "primary", "lanes": "3", "lanes:backward": "2"}, 1, 2},
		{map[string]string{"highway": "primary", "lanes": "5", "lanes:forward": "2", "lanes:backward": "2"}, 2, 2},
		{map[string]string{"highway": "primary", "lanes": "2", "oneway": "yes"}, 2, 0},
		{map[string]string{"highway": "primary", "lanes": "2", "oneway": "-1"}, 0, 2},
		{map[string]string{"highway": "residential"}, defaultLanesByHighway[HIGHWAY_RESIDENTIAL] - defaultLanesByHighway[HIGHWAY_RESIDENTIAL]/2, defaultLanesByHighway[HIGHWAY_RESIDENTIAL] / 2},
	}
	for i, c := range cases {
		forward, backward := testWay(osm.WayID(i), c.tags).trafficLanes()
		if forward != c.forward || backward != c.backward {
			t.Errorf("Case %d: lanes should be %d forward and %d backward, but got %d and %d", i, c.forward, c.backward, forward, backward)
		}
	}
}

func TestLaneTemplateTwoWay(t *testing.T) {
	way := testWay(10, map[string]string{
		"highway":   "secondary",
		"lanes":     "2",
		"sidewalk":  "both",
		"lanes:psv": "0",
	})
	template := way.laneTemplate(testWidths)
	if template.Name != "way_10" {
		t.Errorf("Template name should be '%s', but got '%s'", "way_10", template.Name)
	}
	correct := []Lane{
		{Position: -4.5, Width: 2.0, VerticalOffset: sidewalkElevation, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN},
		{Position: -1.75, Width: 3.5, Direction: DIRECTION_BACKWARD, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_CAR, AllowConnect: true},
		{Position: 1.75, Width: 3.5, Direction: DIRECTION_FORWARD, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_CAR, AllowConnect: true},
		{Position: 4.5, Width: 2.0, VerticalOffset: sidewalkElevation, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN},
	}
	if diff := cmp.Diff(correct, template.Lanes); diff != "" {
		t.Errorf("Lanes mismatch (-want +got):\n%s", diff)
	}
	cls := Classify(template.Lanes)
	if cls.Configuration != ROAD_CONFIG_TWO_WAY {
		t.Errorf("Configuration should be %s, but got %s", ROAD_CONFIG_TWO_WAY, cls.Configuration)
	}
}

func TestLaneTemplateOneWay(t *testing.T) {
	way := testWay(11, map[string]string{
		"highway":            "primary",
		"oneway":             "yes",
		"lanes":              "3",
		"lanes:psv":          "1",
		"trolley_wire":       "yes",
		"parking:lane:right": "parallel",
		"cycleway:left":      "lane",
	})
	template := way.laneTemplate(testWidths)
	lanes := template.Lanes
	if len(lanes) != 5 {
		t.Fatalf("Number of lanes should be %d, but got %d", 5, len(lanes))
	}
	if lanes[0].VehicleType != VEHICLE_BICYCLE || lanes[0].Direction != DIRECTION_FORWARD {
		t.Errorf("Leftmost lane should be forward cycle lane, but got %+v", lanes[0])
	}
	if lanes[4].LaneType != LANE_TYPE_PARKING {
		t.Errorf("Rightmost lane should be parking, but got %+v", lanes[4])
	}
	if lanes[3].LaneType != LANE_TYPE_TRANSPORT_VEHICLE {
		t.Errorf("Rightmost traffic lane should be public transport lane, but got %+v", lanes[3])
	}
	for i := 1; i <= 3; i++ {
		if lanes[i].VehicleType != VEHICLE_CAR|VEHICLE_TROLLEYBUS {
			t.Errorf("Traffic lane %d should allow trolleybuses, but got %s", i, lanes[i].VehicleType)
		}
	}
	for i := 1; i < len(lanes); i++ {
		if lanes[i-1].Position >= lanes[i].Position {
			t.Errorf("Lanes should be laid from left to right, but lane %d is at %f and lane %d is at %f", i-1, lanes[i-1].Position, i, lanes[i].Position)
		}
	}
	cls := Classify(lanes)
	if cls.Configuration != ROAD_CONFIG_ONE_WAY {
		t.Errorf("Configuration should be %s, but got %s", ROAD_CONFIG_ONE_WAY, cls.Configuration)
	}
	if len(cls.Groups) != 1 || len(cls.Groups[0].Lanes) != 3 {
		t.Errorf("There should be single group of %d lanes, but got %v", 3, groupsLanes(cls.Groups))
	}
}

func TestLaneTemplateWithoutCars(t *testing.T) {
	footway := testWay(12, map[string]string{"highway": "footway"})
	template := footway.laneTemplate(testWidths)
	correct := []Lane{{Width: 2.0, VerticalOffset: sidewalkElevation, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN}}
	if diff := cmp.Diff(correct, template.Lanes); diff != "" {
		t.Errorf("Lanes mismatch (-want +got):\n%s", diff)
	}

	cycleway := testWay(13, map[string]string{"highway": "cycleway"})
	template = cycleway.laneTemplate(testWidths)
	if len(template.Lanes) != 1 || template.Lanes[0].VehicleType != VEHICLE_BICYCLE {
		t.Errorf("Cycleway should consist of single bicycle lane, but got %+v", template.Lanes)
	}

	private := testWay(14, map[string]string{"highway": "service", "access": "private"})
	if lanes := private.laneTemplate(testWidths).Lanes; len(lanes) != 0 {
		t.Errorf("Private way should have no lanes, but got %+v", lanes)
	}
}

func TestLaneTemplateSingleLane(t *testing.T) {
	way := testWay(15, map[string]string{"highway": "service", "lanes": "1"})
	lanes := way.laneTemplate(testWidths).Lanes
	if len(lanes) != 1 || lanes[0].Direction != DIRECTION_BOTH {
		t.Fatalf("Single two-way lane should have both directions, but got %+v", lanes)
	}
	cls := Classify(lanes)
	if cls.Lanes[0] != LANE_OUTER|LANE_FLAGS_DIRECTION {
		t.Errorf("Flags should be %s, but got %s", LANE_OUTER|LANE_FLAGS_DIRECTION, cls.Lanes[0])
	}
}
