package osm2lanes

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ReadLanes reads OSM file and classifies cross-section of every accepted highway way
func (parser *Parser) ReadLanes() (*RoadLanes, error) {
	if parser.filename == "" {
		return nil, errors.New("Filename has not been provided")
	}
	dataOSM, err := readOSM(parser.filename, parser.acceptWay, parser.logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse OSM data")
	}
	return parser.prepareLanes(dataOSM)
}

func (parser *Parser) prepareLanes(dataOSM *OSMDataRaw) (*RoadLanes, error) {
	st := time.Now()
	widths := parser.widths()
	road := &RoadLanes{
		ways: make([]*WayLanes, 0, len(dataOSM.ways)),
	}
	skipped := 0
	for _, way := range dataOSM.ways {
		geom := dataOSM.wayGeometry(way)
		if len(geom) < 2 {
			parser.logger.Warn("Way has not enough nodes in the extract", "way", way.ID, "nodes", len(geom))
			skipped++
			continue
		}
		template := way.laneTemplate(widths)
		if len(template.Lanes) == 0 {
			skipped++
			continue
		}
		road.ways = append(road.ways, &WayLanes{
			ID:       way.ID,
			Name:     way.name,
			Highway:  way.highway,
			Template: template,
			geom:     geom,
		})
	}

	// Many ways share the same cross-section, so each distinct template is classified once
	group := errgroup.Group{}
	group.SetLimit(runtime.NumCPU())
	for _, wayLanes := range road.ways {
		wayLanes := wayLanes
		group.Go(func() error {
			wayLanes.Key, wayLanes.Classification = parser.cache.Classify(wayLanes.Template.Lanes)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "Can't classify lanes")
	}
	parser.logger.Info("Lanes classified", "ways", len(road.ways), "skipped", skipped, "templates", parser.cache.Len(), "elapsed", time.Since(st))
	return road, nil
}
