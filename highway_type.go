package osm2lanes

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_BUSWAY
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_PATH
	HIGHWAY_STEPS
	HIGHWAY_UNDEFINED = HighwayType(0)
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"undefined", "motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "unclassified", "busway", "cycleway", "footway", "pedestrian", "path", "steps"}[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return HIGHWAY_UNDEFINED
}

// defaultLanes returns number of traffic lanes assumed for the way without `lanes` tag
func (iotaIdx HighwayType) defaultLanes() int {
	if lanes, ok := defaultLanesByHighway[iotaIdx]; ok {
		return lanes
	}
	return 1
}

// impliesOneway returns true for highways which are one way unless tagged otherwise
func (iotaIdx HighwayType) impliesOneway() bool {
	return iotaIdx == HIGHWAY_MOTORWAY || iotaIdx == HIGHWAY_MOTORWAY_LINK
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk":          HIGHWAY_TRUNK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary":        HIGHWAY_PRIMARY,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary":      HIGHWAY_SECONDARY,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"tertiary":       HIGHWAY_TERTIARY,
		"tertiary_link":  HIGHWAY_TERTIARY_LINK,
		"residential":    HIGHWAY_RESIDENTIAL,
		"living_street":  HIGHWAY_LIVING_STREET,
		"service":        HIGHWAY_SERVICE,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
		"busway":         HIGHWAY_BUSWAY,
		"cycleway":       HIGHWAY_CYCLEWAY,
		"footway":        HIGHWAY_FOOTWAY,
		"pedestrian":     HIGHWAY_PEDESTRIAN,
		"path":           HIGHWAY_PATH,
		"steps":          HIGHWAY_STEPS,
	}

	// Two-way roads split these numbers between directions
	defaultLanesByHighway = map[HighwayType]int{
		HIGHWAY_MOTORWAY:       2,
		HIGHWAY_MOTORWAY_LINK:  1,
		HIGHWAY_TRUNK:          4,
		HIGHWAY_TRUNK_LINK:     1,
		HIGHWAY_PRIMARY:        4,
		HIGHWAY_PRIMARY_LINK:   1,
		HIGHWAY_SECONDARY:      2,
		HIGHWAY_SECONDARY_LINK: 1,
		HIGHWAY_TERTIARY:       2,
		HIGHWAY_TERTIARY_LINK:  1,
		HIGHWAY_RESIDENTIAL:    2,
		HIGHWAY_LIVING_STREET:  1,
		HIGHWAY_SERVICE:        1,
		HIGHWAY_UNCLASSIFIED:   2,
		HIGHWAY_BUSWAY:         2,
		HIGHWAY_CYCLEWAY:       1,
		HIGHWAY_FOOTWAY:        1,
		HIGHWAY_PEDESTRIAN:     1,
		HIGHWAY_PATH:           1,
		HIGHWAY_STEPS:          1,
	}
)
