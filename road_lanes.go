package osm2lanes

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// RoadLanes is classified cross-sections of OSM ways
type RoadLanes struct {
	ways []*WayLanes
}

// Ways returns classified ways in the order they have been read
func (road *RoadLanes) Ways() []*WayLanes {
	return road.ways
}

// Templates returns distinct lane templates (first way met for each key names it) in order of appearance
func (road *RoadLanes) Templates() []*WayLanes {
	seen := make(map[TemplateKey]struct{})
	distinct := []*WayLanes{}
	for _, way := range road.ways {
		if _, ok := seen[way.Key]; ok {
			continue
		}
		seen[way.Key] = struct{}{}
		distinct = append(distinct, way)
	}
	return distinct
}

// WayLanes is lane template of single OSM way along with its classification
type WayLanes struct {
	ID             osm.WayID
	Name           string
	Highway        string
	Template       LaneTemplate
	Key            TemplateKey
	Classification *LaneClassification
	geom           orb.LineString
}

// Geometry returns way axis (EPSG:4326)
func (way *WayLanes) Geometry() orb.LineString {
	return way.geom
}

// LaneGeometry returns centerline of i-th lane of the template.
// Lanes of backward group are digitized against way direction, so their polylines follow the traffic.
func (way *WayLanes) LaneGeometry(i int) orb.LineString {
	lane := way.Template.Lanes[i]
	geom := lanePolyline(way.geom, float64(lane.Position))
	if groupByDirection[lane.Direction] == LANE_BACKWARD_GROUP {
		geom.Reverse()
	}
	return geom
}
