package osm2lanes

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMDataRaw is highway ways and coordinates of their nodes
type OSMDataRaw struct {
	nodes map[osm.NodeID]orb.Point
	ways  []*WayData
}

// newScanner guesses file format by its extension
func newScanner(filename string, reader io.Reader) (OSMScanner, error) {
	switch {
	case strings.HasSuffix(filename, ".osm.pbf"), filepath.Ext(filename) == ".pbf":
		return osmpbf.New(context.Background(), reader, 4), nil
	case filepath.Ext(filename) == ".osm", filepath.Ext(filename) == ".xml":
		return osmxml.New(context.Background(), reader), nil
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", filepath.Ext(filename), filename)
	}
}

// readOSM scans file twice: first pass collects accepted ways, second one collects coordinates of their nodes
func readOSM(filename string, acceptWay func(*WayData) bool, logger *log.Logger) (*OSMDataRaw, error) {
	logger.Info("Opening file", "file", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	st := time.Now()
	ways := []*WayData{}
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerWays.Close()

		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != osm.TypeWay {
				continue
			}
			preparedWay := newWayData(obj.(*osm.Way), logger)
			if !preparedWay.isHighway() || !acceptWay(preparedWay) {
				continue
			}
			for _, nodeID := range preparedWay.Nodes {
				nodesSeen[nodeID] = struct{}{}
			}
			ways = append(ways, preparedWay)
		}
		if err := scannerWays.Err(); err != nil {
			return nil, errors.Wrap(err, "Can't scan ways")
		}
	}
	logger.Debug("Ways processed", "ways", len(ways), "elapsed", time.Since(st))

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	st = time.Now()
	nodes := make(map[osm.NodeID]orb.Point, len(nodesSeen))
	{
		scannerNodes, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerNodes.Close()

		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != osm.TypeNode {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; ok {
				nodes[node.ID] = orb.Point{node.Lon, node.Lat}
			}
		}
		if err := scannerNodes.Err(); err != nil {
			return nil, errors.Wrap(err, "Can't scan nodes")
		}
	}
	logger.Debug("Nodes processed", "nodes", len(nodes), "elapsed", time.Since(st))

	return &OSMDataRaw{
		ways:  ways,
		nodes: nodes,
	}, nil
}

// wayGeometry returns way polyline, nodes missing in extract are skipped
func (data *OSMDataRaw) wayGeometry(way *WayData) orb.LineString {
	geom := make(orb.LineString, 0, len(way.Nodes))
	for _, nodeID := range way.Nodes {
		if pt, ok := data.nodes[nodeID]; ok {
			geom = append(geom, pt)
		}
	}
	return geom
}
