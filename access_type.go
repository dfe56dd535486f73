package osm2lanes

type AccessType uint16

const (
	ACCESS_HIGHWAY = AccessType(iota + 1)
	ACCESS_MOTOR_VEHICLE
	ACCESS_MOTORCAR
	ACCESS_OSM_ACCESS
	ACCESS_SERVICE
	ACCESS_BICYCLE
	ACCESS_FOOT
	ACCESS_UNDEFINED = AccessType(0)
)

func (iotaIdx AccessType) String() string {
	return [...]string{"undefined", "highway", "motor_vehicle", "motorcar", "access", "service", "bicycle", "foot"}[iotaIdx]
}

// accessValue returns value of the tag corresponding to access type
func (way *WayData) accessValue(accessType AccessType) string {
	switch accessType {
	case ACCESS_HIGHWAY:
		return way.highway
	case ACCESS_MOTOR_VEHICLE:
		return way.motorVehicle
	case ACCESS_MOTORCAR:
		return way.motorcar
	case ACCESS_OSM_ACCESS:
		return way.access
	case ACCESS_SERVICE:
		return way.service
	case ACCESS_BICYCLE:
		return way.bicycle
	case ACCESS_FOOT:
		return way.foot
	default:
		return ""
	}
}

// matchAccess returns true if any tag of the way holds value listed in filter
func (way *WayData) matchAccess(filter map[AccessType]map[string]struct{}) bool {
	for accessType, values := range filter {
		if _, ok := values[way.accessValue(accessType)]; ok {
			return true
		}
	}
	return false
}
