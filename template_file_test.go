package osm2lanes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const templatesDoc = `
[[template]]
name = "two_lane_road"

  [[template.lane]]
  position = -1.5
  width = 3.0
  direction = "backward"
  lane_type = ["vehicle"]
  vehicle_type = ["car"]
  allow_connect = true

  [[template.lane]]
  position = 1.5
  width = 3.0
  direction = "forward"
  lane_type = ["vehicle"]
  vehicle_type = ["car", "trolleybus"]

[[template]]
name = "sidewalk"

  [[template.lane]]
  width = 2.0
  vertical_offset = 0.2
  direction = "both"
  lane_type = ["pedestrian"]
`

func TestDecodeTemplatesTOML(t *testing.T) {
	templates, err := DecodeTemplatesTOML([]byte(templatesDoc))
	if err != nil {
		t.Fatal(err)
	}
	correct := []LaneTemplate{
		{
			Name: "two_lane_road",
			Lanes: []Lane{
				{Position: -1.5, Width: 3.0, Direction: DIRECTION_BACKWARD, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_CAR, AllowConnect: true},
				{Position: 1.5, Width: 3.0, Direction: DIRECTION_FORWARD, LaneType: LANE_TYPE_VEHICLE, VehicleType: VEHICLE_CAR | VEHICLE_TROLLEYBUS},
			},
		},
		{
			Name: "sidewalk",
			Lanes: []Lane{
				{Width: 2.0, VerticalOffset: 0.2, Direction: DIRECTION_BOTH, LaneType: LANE_TYPE_PEDESTRIAN},
			},
		},
	}
	if diff := cmp.Diff(correct, templates); diff != "" {
		t.Errorf("Templates mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTemplatesTOMLErrors(t *testing.T) {
	badDirection := `
[[template]]
name = "broken"
  [[template.lane]]
  direction = "sideways"
`
	if _, err := DecodeTemplatesTOML([]byte(badDirection)); err == nil {
		t.Errorf("Unknown direction should produce an error")
	}

	badVehicle := `
[[template]]
name = "broken"
  [[template.lane]]
  direction = "forward"
  lane_type = ["vehicle"]
  vehicle_type = ["hovercraft"]
`
	if _, err := DecodeTemplatesTOML([]byte(badVehicle)); err == nil {
		t.Errorf("Unknown vehicle type should produce an error")
	}

	if _, err := DecodeTemplatesTOML([]byte("[[template]\n")); err == nil {
		t.Errorf("Malformed document should produce an error")
	}
}

func TestLoadTemplatesTOML(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "templates.toml")
	if err := os.WriteFile(fname, []byte(templatesDoc), 0644); err != nil {
		t.Fatal(err)
	}
	templates, err := LoadTemplatesTOML(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) != 2 {
		t.Fatalf("Number of templates should be %d, but got %d", 2, len(templates))
	}
	cls := Classify(templates[0].Lanes)
	if cls.Configuration != ROAD_CONFIG_TWO_WAY {
		t.Errorf("Configuration should be %s, but got %s", ROAD_CONFIG_TWO_WAY, cls.Configuration)
	}

	if _, err := LoadTemplatesTOML(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Missing file should produce an error")
	}
}
