package osm2lanes

type AgentType uint16

const (
	AGENT_AUTO = AgentType(iota + 1)
	AGENT_BIKE
	AGENT_WALK
	AGENT_UNDEFINED = AgentType(0)
)

func (iotaIdx AgentType) String() string {
	return [...]string{"undefined", "auto", "bike", "walk"}[iotaIdx]
}

var (
	agentTypesAll = []AgentType{AGENT_AUTO, AGENT_BIKE, AGENT_WALK}

	agentsAccessIncludeValues = map[AgentType]map[AccessType]map[string]struct{}{
		AGENT_AUTO: {
			ACCESS_MOTOR_VEHICLE: {"yes": {}, "designated": {}},
			ACCESS_MOTORCAR:      {"yes": {}, "designated": {}},
		},
		AGENT_BIKE: {
			ACCESS_BICYCLE: {"yes": {}, "designated": {}},
		},
		AGENT_WALK: {
			ACCESS_FOOT: {"yes": {}, "designated": {}},
		},
	}

	agentsAccessExcludeValues = map[AgentType]map[AccessType]map[string]struct{}{
		AGENT_AUTO: {
			ACCESS_HIGHWAY: {
				"cycleway":   {},
				"footway":    {},
				"pedestrian": {},
				"steps":      {},
				"path":       {},
				"corridor":   {},
				"elevator":   {},
				"escalator":  {},
				"busway":     {},
			},
			ACCESS_MOTOR_VEHICLE: {"no": {}},
			ACCESS_MOTORCAR:      {"no": {}},
			ACCESS_OSM_ACCESS:    {"private": {}, "no": {}},
			ACCESS_SERVICE:       {"emergency_access": {}},
		},
		AGENT_BIKE: {
			ACCESS_HIGHWAY: {
				"footway":       {},
				"steps":         {},
				"corridor":      {},
				"elevator":      {},
				"escalator":     {},
				"motorway":      {},
				"motorway_link": {},
			},
			ACCESS_BICYCLE:    {"no": {}},
			ACCESS_OSM_ACCESS: {"private": {}, "no": {}},
		},
		AGENT_WALK: {
			ACCESS_HIGHWAY: {
				"cycleway":      {},
				"motorway":      {},
				"motorway_link": {},
				"trunk":         {},
				"trunk_link":    {},
			},
			ACCESS_FOOT:       {"no": {}},
			ACCESS_OSM_ACCESS: {"private": {}, "no": {}},
		},
	}
)

// allowsAgent checks whether way could be used by given agent type.
// Explicit permission wins over any restriction.
func (way *WayData) allowsAgent(agentType AgentType) bool {
	if way.matchAccess(agentsAccessIncludeValues[agentType]) {
		return true
	}
	return !way.matchAccess(agentsAccessExcludeValues[agentType])
}

// allowedAgentTypes returns every agent type permitted on the way
func (way *WayData) allowedAgentTypes() []AgentType {
	allowed := make([]AgentType, 0, len(agentTypesAll))
	for _, agentType := range agentTypesAll {
		if way.allowsAgent(agentType) {
			allowed = append(allowed, agentType)
		}
	}
	return allowed
}
