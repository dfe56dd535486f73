package osm2lanes

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LaneTemplate is a named road cross-section
type LaneTemplate struct {
	Name  string
	Lanes []Lane
}

// Key returns template identifier
func (template LaneTemplate) Key() TemplateKey {
	return TemplateKeyOf(template.Lanes)
}

type templatesFile struct {
	Templates []templateTOML `toml:"template"`
}

type templateTOML struct {
	Name  string     `toml:"name"`
	Lanes []laneTOML `toml:"lane"`
}

type laneTOML struct {
	Position       float32  `toml:"position"`
	Width          float32  `toml:"width"`
	VerticalOffset float32  `toml:"vertical_offset"`
	Direction      string   `toml:"direction"`
	LaneType       []string `toml:"lane_type"`
	VehicleType    []string `toml:"vehicle_type"`
	AllowConnect   bool     `toml:"allow_connect"`
}

// LoadTemplatesTOML reads lane templates from TOML file
//
// Expected layout:
//
//	[[template]]
//	name = "two_lane_road"
//	  [[template.lane]]
//	  position = -1.5
//	  width = 3.0
//	  direction = "backward"
//	  lane_type = ["vehicle"]
//	  vehicle_type = ["car"]
//	  allow_connect = true
func LoadTemplatesTOML(fname string) ([]LaneTemplate, error) {
	var raw templatesFile
	if _, err := toml.DecodeFile(fname, &raw); err != nil {
		return nil, errors.Wrapf(err, "Can't decode templates file '%s'", fname)
	}
	return raw.templates()
}

// DecodeTemplatesTOML parses lane templates from TOML document
func DecodeTemplatesTOML(data []byte) ([]LaneTemplate, error) {
	var raw templatesFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "Can't decode templates")
	}
	return raw.templates()
}

func (raw *templatesFile) templates() ([]LaneTemplate, error) {
	templates := make([]LaneTemplate, 0, len(raw.Templates))
	for i, rawTemplate := range raw.Templates {
		template := LaneTemplate{
			Name:  rawTemplate.Name,
			Lanes: make([]Lane, 0, len(rawTemplate.Lanes)),
		}
		for j, rawLane := range rawTemplate.Lanes {
			lane, err := rawLane.lane()
			if err != nil {
				return nil, errors.Wrapf(err, "Bad lane %d of template %d ('%s')", j, i, rawTemplate.Name)
			}
			template.Lanes = append(template.Lanes, lane)
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func (rawLane laneTOML) lane() (Lane, error) {
	direction := DIRECTION_NONE
	if rawLane.Direction != "" {
		var err error
		direction, err = ParseLaneDirection(rawLane.Direction)
		if err != nil {
			return Lane{}, err
		}
	}
	laneType, err := ParseLaneType(rawLane.LaneType...)
	if err != nil {
		return Lane{}, err
	}
	vehicleType, err := ParseVehicleType(rawLane.VehicleType...)
	if err != nil {
		return Lane{}, err
	}
	return Lane{
		Position:       rawLane.Position,
		Width:          rawLane.Width,
		VerticalOffset: rawLane.VerticalOffset,
		Direction:      direction,
		LaneType:       laneType,
		VehicleType:    vehicleType,
		AllowConnect:   rawLane.AllowConnect,
	}, nil
}
