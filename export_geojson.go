package osm2lanes

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// lineToGeoJSON converts polyline into GeoJSON coordinates
func lineToGeoJSON(geom orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(geom))
	for i := range geom {
		pts2d[i] = []float64{geom[i][0], geom[i][1]}
	}
	return pts2d
}

// FeatureCollection returns every lane as LineString feature with its attributes and classification flags
func (road *RoadLanes) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, way := range road.ways {
		cls := way.Classification
		for i, lane := range way.Template.Lanes {
			feature := geojson.NewLineStringFeature(lineToGeoJSON(way.LaneGeometry(i)))
			feature.SetProperty("osm_way_id", int64(way.ID))
			feature.SetProperty("lane_index", i)
			feature.SetProperty("group_index", cls.GroupOf(i))
			feature.SetProperty("template_key", string(way.Key))
			feature.SetProperty("highway", way.Highway)
			feature.SetProperty("name", way.Name)
			feature.SetProperty("position", lane.Position)
			feature.SetProperty("width", lane.Width)
			feature.SetProperty("direction", lane.Direction.String())
			feature.SetProperty("lane_type", lane.LaneType.String())
			feature.SetProperty("vehicle_type", lane.VehicleType.String())
			feature.SetProperty("flags", cls.Lanes[i].String())
			feature.SetProperty("configuration", cls.Configuration.String())
			fc.AddFeature(feature)
		}
	}
	return fc
}

// ExportToGeoJSON writes lanes into GeoJSON file
func (road *RoadLanes) ExportToGeoJSON(fname string) error {
	data, err := road.FeatureCollection().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal lanes")
	}
	err = os.WriteFile(fname, data, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}
