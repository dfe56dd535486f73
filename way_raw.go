package osm2lanes

import (
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/paulmach/osm"
)

// WayData is OSM way with flattened tags which matter for road cross-section
type WayData struct {
	name         string
	highway      string
	highwayType  HighwayType
	junction     string
	motorVehicle string
	access       string
	motorcar     string
	service      string
	foot         string
	bicycle      string
	trolleyWire  string

	sidewalk      waySides
	parking       waySides
	cycleLanes    waySides
	lanesBackward int
	lanesForward  int
	lanes         int
	psvForward    int
	psvBackward   int
	psv           int
	width         float64

	TagMap osm.Tags
	Nodes  []osm.NodeID
	ID     osm.WayID

	Oneway        bool
	OnewayDefault bool
	IsReversed    bool
}

var (
	widthRegExp = regexp.MustCompile(`\d+\.?\d*`)
)

// newWayData prepares way for further processing
func newWayData(way *osm.Way, logger *log.Logger) *WayData {
	preparedWay := &WayData{
		ID:     way.ID,
		Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
		TagMap: make(osm.Tags, len(way.Tags)),
	}
	copy(preparedWay.TagMap, way.Tags)
	for _, node := range way.Nodes {
		preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
	}
	preparedWay.processTags(logger)
	return preparedWay
}

func (way *WayData) processTags(logger *log.Logger) {
	way.name = way.TagMap.Find("name")
	way.highway = way.TagMap.Find("highway")
	way.highwayType = getHighwayType(way.highway)
	way.junction = way.TagMap.Find("junction")

	way.processOneway(logger)

	way.lanes = way.intTag("lanes", logger)
	way.lanesForward = way.intTag("lanes:forward", logger)
	way.lanesBackward = way.intTag("lanes:backward", logger)
	way.psv = way.intTag("lanes:psv", logger)
	way.psvForward = way.intTag("lanes:psv:forward", logger)
	way.psvBackward = way.intTag("lanes:psv:backward", logger)

	way.width = -1.0
	if width := way.TagMap.Find("width"); width != "" {
		widthValue := widthRegExp.FindString(width)
		parsed, err := strconv.ParseFloat(widthValue, 64)
		if err != nil {
			logger.Warn("Provided `width` tag value should be a float", "value", width, "way", way.ID)
		} else {
			way.width = parsed
		}
	}

	way.sidewalk = parseSides(way.TagMap.Find("sidewalk"))
	if left := way.TagMap.Find("sidewalk:left"); left == "yes" {
		way.sidewalk.left = true
	}
	if right := way.TagMap.Find("sidewalk:right"); right == "yes" {
		way.sidewalk.right = true
	}

	way.parking = waySides{
		left:  way.onStreetParking("left"),
		right: way.onStreetParking("right"),
	}

	way.cycleLanes = waySides{
		left:  way.cycleLane("left"),
		right: way.cycleLane("right"),
	}

	way.motorVehicle = way.TagMap.Find("motor_vehicle")
	way.access = way.TagMap.Find("access")
	way.motorcar = way.TagMap.Find("motorcar")
	way.service = way.TagMap.Find("service")
	way.foot = way.TagMap.Find("foot")
	way.bicycle = way.TagMap.Find("bicycle")
	way.trolleyWire = way.TagMap.Find("trolley_wire")
}

func (way *WayData) processOneway(logger *log.Logger) {
	onewayText := way.TagMap.Find("oneway")
	switch {
	case onewayText == "yes" || onewayText == "1" || onewayText == "true":
		way.Oneway = true
	case onewayText == "no" || onewayText == "0" || onewayText == "false":
		way.Oneway = false
	case onewayText == "-1":
		way.Oneway = true
		way.IsReversed = true
	case onewayText != "":
		// Reversible or alternating ways depend on time conditions
		if _, found := onewayReversible[onewayText]; !found {
			logger.Warn("Unhandled `oneway` tag value", "value", onewayText, "way", way.ID)
		}
		way.Oneway = false
	default:
		if _, ok := junctionTypes[way.junction]; ok {
			way.Oneway = true
		} else {
			way.Oneway = way.highwayType.impliesOneway()
			way.OnewayDefault = true
		}
	}
}

// intTag returns integer value of the tag or -1 if it is absent or malformed
func (way *WayData) intTag(key string, logger *log.Logger) int {
	text := way.TagMap.Find(key)
	if text == "" {
		return -1
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		logger.Warn("Provided tag value should be an integer", "tag", key, "value", text, "way", way.ID)
		return -1
	}
	return value
}

// onStreetParking checks `parking:lane:<side>`, `parking:<side>` and their `both` forms
func (way *WayData) onStreetParking(side string) bool {
	for _, key := range []string{"parking:lane:" + side, "parking:lane:both", "parking:" + side, "parking:both"} {
		if _, ok := parkingOnStreet[way.TagMap.Find(key)]; ok {
			return true
		}
	}
	return false
}

// cycleLane checks `cycleway:<side>`, `cycleway:both` and plain `cycleway`
func (way *WayData) cycleLane(side string) bool {
	for _, key := range []string{"cycleway:" + side, "cycleway:both", "cycleway"} {
		if _, ok := cycleLaneValues[way.TagMap.Find(key)]; ok {
			return true
		}
	}
	return false
}

func (way *WayData) isHighway() bool {
	return way.highway != ""
}
