package osm2lanes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	DEFAULT_LANE_WIDTH      = 3.5
	DEFAULT_SIDEWALK_WIDTH  = 2.0
	DEFAULT_PARKING_WIDTH   = 2.5
	DEFAULT_CYCLELANE_WIDTH = 1.5
)

type Parser struct {
	filename       string
	highwayTags    []string
	laneWidth      float32
	sidewalkWidth  float32
	parkingWidth   float32
	cycleLaneWidth float32
	logger         *log.Logger
	cache          *TemplateCache
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Lanes parser parameters:
	filename: '%s'
	highway_tags: '%s'
	lane_width: %f
	sidewalk_width: %f
	parking_width: %f
	cycle_lane_width: %f
	`,
		parser.filename,
		strings.Join(parser.highwayTags, ","),
		parser.laneWidth,
		parser.sidewalkWidth,
		parser.parkingWidth,
		parser.cycleLaneWidth,
	)
}

func NewParser(options ...func(*Parser)) *Parser {
	parser := &Parser{
		laneWidth:      DEFAULT_LANE_WIDTH,
		sidewalkWidth:  DEFAULT_SIDEWALK_WIDTH,
		parkingWidth:   DEFAULT_PARKING_WIDTH,
		cycleLaneWidth: DEFAULT_CYCLELANE_WIDTH,
		logger:         log.Default(),
	}
	for _, option := range options {
		option(parser)
	}
	if parser.cache == nil {
		parser.cache = NewTemplateCache()
	}
	return parser
}

func WithFilename(fileName string) func(*Parser) {
	return func(parser *Parser) {
		parser.filename = fileName
	}
}

// WithHighwayTags limits processed ways to given `highway` values. Empty list means every highway
func WithHighwayTags(highwayTags []string) func(*Parser) {
	return func(parser *Parser) {
		parser.highwayTags = highwayTags
	}
}

func WithLaneWidth(width float32) func(*Parser) {
	return func(parser *Parser) {
		parser.laneWidth = width
	}
}

func WithSidewalkWidth(width float32) func(*Parser) {
	return func(parser *Parser) {
		parser.sidewalkWidth = width
	}
}

func WithParkingWidth(width float32) func(*Parser) {
	return func(parser *Parser) {
		parser.parkingWidth = width
	}
}

func WithCycleLaneWidth(width float32) func(*Parser) {
	return func(parser *Parser) {
		parser.cycleLaneWidth = width
	}
}

func WithLogger(logger *log.Logger) func(*Parser) {
	return func(parser *Parser) {
		parser.logger = logger
	}
}

// WithTemplateCache shares memoized classifications between parsers
func WithTemplateCache(cache *TemplateCache) func(*Parser) {
	return func(parser *Parser) {
		parser.cache = cache
	}
}

// acceptWay checks if way's highway value is represented in configuration
func (parser *Parser) acceptWay(way *WayData) bool {
	if len(parser.highwayTags) == 0 {
		return true
	}
	for i := range parser.highwayTags {
		if parser.highwayTags[i] == way.highway {
			return true
		}
	}
	return false
}

func (parser *Parser) widths() crossSectionWidths {
	return crossSectionWidths{
		lane:     parser.laneWidth,
		sidewalk: parser.sidewalkWidth,
		parking:  parser.parkingWidth,
		cycle:    parser.cycleLaneWidth,
	}
}
