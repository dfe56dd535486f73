package main

import (
	"strings"

	"github.com/LdDl/osm2lanes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type osmOpts struct {
	file          string
	out           string
	geojson       string
	tags          string
	laneWidth     float32
	sidewalkWidth float32
	parkingWidth  float32
	cycleWidth    float32
}

func newOSMCmd() *cobra.Command {
	opts := osmOpts{}

	cmd := &cobra.Command{
		Use:   "osm",
		Short: "Derive and classify lanes of OSM highways",
		Long: `Reads *.osm / *.osm.pbf file, derives lane template of every highway way from its tags and classifies it.
If output file name is 'map.csv' then 2 files will be produced: 'map_lanes.csv' (one row per lane) and 'map_templates.csv' (one row per distinct template).`,
		Example: `  osm2lanes osm --file map.osm.pbf --out map.csv
  osm2lanes osm --file map.osm --out map.csv --geojson map.geojson --tags primary,secondary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			tags := []string{}
			if opts.tags != "" {
				tags = strings.Split(opts.tags, ",")
			}

			parser := osm2lanes.NewParser(
				osm2lanes.WithFilename(opts.file),
				osm2lanes.WithHighwayTags(tags),
				osm2lanes.WithLaneWidth(opts.laneWidth),
				osm2lanes.WithSidewalkWidth(opts.sidewalkWidth),
				osm2lanes.WithParkingWidth(opts.parkingWidth),
				osm2lanes.WithCycleLaneWidth(opts.cycleWidth),
				osm2lanes.WithLogger(logger),
			)
			logger.Debug(parser.String())

			road, err := parser.ReadLanes()
			if err != nil {
				return errors.Wrap(err, "Can't read lanes")
			}

			err = road.ExportToCSV(opts.out)
			if err != nil {
				return errors.Wrap(err, "Can't export lanes to CSV")
			}
			logger.Info("Lanes exported", "file", opts.out)

			if opts.geojson != "" {
				err = road.ExportToGeoJSON(opts.geojson)
				if err != nil {
					return errors.Wrap(err, "Can't export lanes to GeoJSON")
				}
				logger.Info("Lanes exported", "file", opts.geojson)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "my_graph.osm.pbf", "filename of *.osm or *.osm.pbf file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "my_graph.csv", "filename prefix of 'Comma-Separated Values' (CSV) output")
	cmd.Flags().StringVar(&opts.geojson, "geojson", "", "optional GeoJSON output file")
	cmd.Flags().StringVar(&opts.tags, "tags", "motorway,motorway_link,trunk,trunk_link,primary,primary_link,secondary,secondary_link,tertiary,tertiary_link,residential,living_street,service,unclassified", "set of needed highway tags (separated by commas), empty means every highway")
	cmd.Flags().Float32Var(&opts.laneWidth, "lane-width", osm2lanes.DEFAULT_LANE_WIDTH, "default width of traffic lane (meters)")
	cmd.Flags().Float32Var(&opts.sidewalkWidth, "sidewalk-width", osm2lanes.DEFAULT_SIDEWALK_WIDTH, "default width of sidewalk (meters)")
	cmd.Flags().Float32Var(&opts.parkingWidth, "parking-width", osm2lanes.DEFAULT_PARKING_WIDTH, "default width of on-street parking (meters)")
	cmd.Flags().Float32Var(&opts.cycleWidth, "cycle-width", osm2lanes.DEFAULT_CYCLELANE_WIDTH, "default width of cycle lane (meters)")
	return cmd
}
