package osm2lanes

var (
	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}

	// Values of `parking:lane:*` and `parking:*` meaning on-street parking
	parkingOnStreet = map[string]struct{}{
		"parallel":      {},
		"diagonal":      {},
		"perpendicular": {},
		"lane":          {},
		"street_side":   {},
		"marked":        {},
		"yes":           {},
	}

	// Values of `cycleway:*` meaning a painted cycle lane on the carriageway
	cycleLaneValues = map[string]struct{}{
		"lane":          {},
		"shared_lane":   {},
		"opposite_lane": {},
	}
)

// Which sides of the way hold an element (sidewalk, parking, cycle lane)
type waySides struct {
	left  bool
	right bool
}

// parseSides turns `both|left|right|yes` style value into sides
func parseSides(value string) waySides {
	switch value {
	case "both", "yes":
		return waySides{left: true, right: true}
	case "left":
		return waySides{left: true}
	case "right":
		return waySides{right: true}
	default:
		return waySides{}
	}
}
