package osm2lanes

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="osm2lanes-test">
 <node id="1" lat="55.7518" lon="37.6417" version="1"/>
 <node id="2" lat="55.7518" lon="37.6430" version="1"/>
 <node id="3" lat="55.7525" lon="37.6445" version="1"/>
 <node id="4" lat="55.7530" lon="37.6450" version="1"/>
 <node id="5" lat="55.7540" lon="37.6450" version="1"/>
 <node id="6" lat="55.7550" lon="37.6450" version="1"/>
 <way id="10" version="1">
  <nd ref="1"/>
  <nd ref="2"/>
  <nd ref="3"/>
  <tag k="highway" v="primary"/>
  <tag k="name" v="Main street"/>
  <tag k="lanes" v="4"/>
 </way>
 <way id="11" version="1">
  <nd ref="3"/>
  <nd ref="4"/>
  <tag k="highway" v="residential"/>
  <tag k="oneway" v="yes"/>
  <tag k="lanes" v="2"/>
  <tag k="sidewalk" v="both"/>
 </way>
 <way id="12" version="1">
  <nd ref="4"/>
  <nd ref="5"/>
  <tag k="highway" v="footway"/>
 </way>
 <way id="13" version="1">
  <nd ref="5"/>
  <nd ref="6"/>
  <tag k="highway" v="cycleway"/>
 </way>
 <way id="14" version="1">
  <nd ref="1"/>
  <nd ref="99"/>
  <tag k="highway" v="primary"/>
 </way>
 <way id="15" version="1">
  <nd ref="4"/>
  <nd ref="5"/>
  <nd ref="6"/>
  <nd ref="4"/>
  <tag k="building" v="yes"/>
 </way>
 <way id="16" version="1">
  <nd ref="2"/>
  <nd ref="3"/>
  <tag k="highway" v="primary"/>
  <tag k="lanes" v="4"/>
 </way>
</osm>
`

func writeSampleOSM(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "sample.osm")
	if err := os.WriteFile(fname, []byte(sampleOSM), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func readSampleLanes(t *testing.T, cache *TemplateCache) *RoadLanes {
	t.Helper()
	parser := NewParser(
		WithFilename(writeSampleOSM(t)),
		WithHighwayTags([]string{"primary", "residential", "footway"}),
		WithLogger(log.New(io.Discard)),
		WithTemplateCache(cache),
	)
	t.Log(parser)
	road, err := parser.ReadLanes()
	if err != nil {
		t.Fatal(err)
	}
	return road
}

func TestParser(t *testing.T) {
	cache := NewTemplateCache()
	road := readSampleLanes(t, cache)

	ids := []osm.WayID{}
	for _, way := range road.Ways() {
		ids = append(ids, way.ID)
	}
	if diff := cmp.Diff([]osm.WayID{10, 11, 12, 16}, ids); diff != "" {
		t.Fatalf("Ways mismatch (-want +got):\n%s", diff)
	}

	main := road.Ways()[0]
	if main.Name != "Main street" || main.Highway != "primary" {
		t.Errorf("Way attributes should be 'Main street' and 'primary', but got '%s' and '%s'", main.Name, main.Highway)
	}
	if len(main.Geometry()) != 3 {
		t.Errorf("Way geometry should have %d points, but got %d", 3, len(main.Geometry()))
	}
	if main.Classification.Configuration != ROAD_CONFIG_TWO_WAY {
		t.Errorf("Configuration should be %s, but got %s", ROAD_CONFIG_TWO_WAY, main.Classification.Configuration)
	}
	if len(main.Classification.Groups) != 2 {
		t.Errorf("Number of groups should be %d, but got %d", 2, len(main.Classification.Groups))
	}

	oneway := road.Ways()[1]
	if oneway.Classification.Configuration != ROAD_CONFIG_ONE_WAY {
		t.Errorf("Configuration should be %s, but got %s", ROAD_CONFIG_ONE_WAY, oneway.Classification.Configuration)
	}
	if len(oneway.Template.Lanes) != 4 {
		t.Errorf("Number of lanes should be %d, but got %d", 4, len(oneway.Template.Lanes))
	}

	footway := road.Ways()[2]
	if footway.Classification.Configuration != ROAD_CONFIG_UNDEFINED {
		t.Errorf("Configuration should be %s, but got %s", ROAD_CONFIG_UNDEFINED, footway.Classification.Configuration)
	}

	// Ways with the same cross-section share classification
	twin := road.Ways()[3]
	if twin.Key != main.Key || twin.Classification != main.Classification {
		t.Errorf("Ways with equal templates should share key and classification")
	}
	if len(road.Templates()) != 3 || cache.Len() != 3 {
		t.Errorf("Number of distinct templates should be %d, but got %d (cache %d)", 3, len(road.Templates()), cache.Len())
	}
}

func TestParserLaneGeometry(t *testing.T) {
	road := readSampleLanes(t, NewTemplateCache())
	main := road.Ways()[0]
	for i, lane := range main.Template.Lanes {
		geom := main.LaneGeometry(i)
		if len(geom) != len(main.Geometry()) {
			t.Errorf("Lane %d geometry should have %d points, but got %d", i, len(main.Geometry()), len(geom))
			continue
		}
		// Backward lanes follow the traffic, so they start near the way end
		wayStart := main.Geometry()[0]
		if lane.Direction == DIRECTION_BACKWARD && geom[0].Lon() <= wayStart.Lon()+0.001 {
			t.Errorf("Backward lane %d should start near the way end, but starts at %v", i, geom[0])
		}
		if lane.Direction == DIRECTION_FORWARD && geom[0].Lon() >= wayStart.Lon()+0.001 {
			t.Errorf("Forward lane %d should start near the way start, but starts at %v", i, geom[0])
		}
	}
}

func TestLaneGeometryAvoidDirection(t *testing.T) {
	way := &WayLanes{
		Template: LaneTemplate{Lanes: []Lane{
			carLane(-1.5, DIRECTION_AVOID_FORWARD, true),
			carLane(1.5, DIRECTION_AVOID_BACKWARD, true),
			sidewalkLane(4.5),
		}},
		geom: orb.LineString{{37.64, 55.75}, {37.65, 55.75}},
	}
	// Lanes avoiding forward traffic belong to the backward group and follow it
	if geom := way.LaneGeometry(0); geom[0].Lon() < 37.649 {
		t.Errorf("Lane avoiding forward direction should start near the way end, but starts at %v", geom[0])
	}
	for _, i := range []int{1, 2} {
		if geom := way.LaneGeometry(i); geom[0].Lon() > 37.641 {
			t.Errorf("Lane %d should start near the way start, but starts at %v", i, geom[0])
		}
	}
}

func TestParserErrors(t *testing.T) {
	parser := NewParser(WithLogger(log.New(io.Discard)))
	if _, err := parser.ReadLanes(); err == nil {
		t.Errorf("Parser without file should produce an error")
	}

	fname := filepath.Join(t.TempDir(), "sample.geojson")
	if err := os.WriteFile(fname, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	parser = NewParser(WithFilename(fname), WithLogger(log.New(io.Discard)))
	if _, err := parser.ReadLanes(); err == nil {
		t.Errorf("Unsupported file extension should produce an error")
	}
}

func readCSV(t *testing.T, fname string) [][]string {
	t.Helper()
	file, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestExportToCSV(t *testing.T) {
	road := readSampleLanes(t, NewTemplateCache())
	dir := t.TempDir()
	if err := road.ExportToCSV(filepath.Join(dir, "lanes.csv")); err != nil {
		t.Fatal(err)
	}

	lanesNum := 0
	for _, way := range road.Ways() {
		lanesNum += len(way.Template.Lanes)
	}
	lanes := readCSV(t, filepath.Join(dir, "lanes_lanes.csv"))
	if len(lanes) != lanesNum+1 {
		t.Errorf("Number of lane rows should be %d, but got %d", lanesNum+1, len(lanes))
	}
	if lanes[0][0] != "osm_way_id" || lanes[0][len(lanes[0])-1] != "geom" {
		t.Errorf("Unexpected header %v", lanes[0])
	}
	if lanes[1][0] != "10" || lanes[1][13] != LANE_OUTER_BACKWARD.String() {
		t.Errorf("First lane row should describe outer backward lane of way 10, but got %v", lanes[1])
	}

	templates := readCSV(t, filepath.Join(dir, "lanes_templates.csv"))
	if len(templates) != 4 {
		t.Errorf("Number of template rows should be %d, but got %d", 4, len(templates))
	}
	if templates[1][2] != "2" || templates[1][5] != ROAD_CONFIG_TWO_WAY.String() {
		t.Errorf("First template should be two way road shared by 2 ways, but got %v", templates[1])
	}
}

func TestExportToGeoJSON(t *testing.T) {
	road := readSampleLanes(t, NewTemplateCache())
	fname := filepath.Join(t.TempDir(), "lanes.geojson")
	if err := road.ExportToGeoJSON(fname); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}
	lanesNum := 0
	for _, way := range road.Ways() {
		lanesNum += len(way.Template.Lanes)
	}
	if len(fc.Features) != lanesNum {
		t.Fatalf("Number of features should be %d, but got %d", lanesNum, len(fc.Features))
	}
	feature := fc.Features[0]
	if !feature.Geometry.IsLineString() {
		t.Errorf("Feature geometry should be LineString, but got %s", feature.Geometry.Type)
	}
	if flags, _ := feature.PropertyString("flags"); flags != LANE_OUTER_BACKWARD.String() {
		t.Errorf("Flags property should be '%s', but got '%s'", LANE_OUTER_BACKWARD, flags)
	}
}
