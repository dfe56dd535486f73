package osm2lanes

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// ExportToCSV writes lanes and distinct templates into `<name>_lanes.csv` and `<name>_templates.csv`
func (road *RoadLanes) ExportToCSV(fname string) error {

	fnameParts := strings.Split(fname, ".csv")
	fnameLanes := fnameParts[0] + "_lanes.csv"
	fnameTemplates := fnameParts[0] + "_templates.csv"

	err := road.exportLanesToCSV(fnameLanes)
	if err != nil {
		return errors.Wrap(err, "Can't export lanes")
	}

	err = road.exportTemplatesToCSV(fnameTemplates)
	if err != nil {
		return errors.Wrap(err, "Can't export templates")
	}

	return nil
}

func (road *RoadLanes) exportLanesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"osm_way_id", "lane_index", "sorted_index", "group_index", "template_key", "highway", "position", "width", "vertical_offset", "direction", "lane_type", "vehicle_type", "allow_connect", "flags", "length_meters", "name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, way := range road.ways {
		cls := way.Classification
		for i, lane := range way.Template.Lanes {
			geom := way.LaneGeometry(i)
			err = writer.Write([]string{
				fmt.Sprintf("%d", way.ID),
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%d", cls.SortedIndexOf(i)),
				fmt.Sprintf("%d", cls.GroupOf(i)),
				string(way.Key),
				way.Highway,
				fmt.Sprintf("%f", lane.Position),
				fmt.Sprintf("%f", lane.Width),
				fmt.Sprintf("%f", lane.VerticalOffset),
				lane.Direction.String(),
				lane.LaneType.String(),
				lane.VehicleType.String(),
				fmt.Sprintf("%t", lane.AllowConnect),
				cls.Lanes[i].String(),
				fmt.Sprintf("%f", geo.Length(geom)),
				way.Name,
				wkt.MarshalString(geom),
			})
			if err != nil {
				return errors.Wrap(err, "Can't write lane")
			}
		}
	}
	return nil
}

func (road *RoadLanes) exportTemplatesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"template_key", "template_name", "ways_num", "lanes_num", "groups_num", "configuration", "forward_flags", "backward_flags", "total_flags"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	waysNum := make(map[TemplateKey]int)
	for _, way := range road.ways {
		waysNum[way.Key]++
	}

	for _, way := range road.Templates() {
		cls := way.Classification
		err = writer.Write([]string{
			string(way.Key),
			way.Template.Name,
			fmt.Sprintf("%d", waysNum[way.Key]),
			fmt.Sprintf("%d", len(way.Template.Lanes)),
			fmt.Sprintf("%d", len(cls.Groups)),
			cls.Configuration.String(),
			cls.ForwardFlags.String(),
			cls.BackwardFlags.String(),
			cls.TotalFlags.String(),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write template")
		}
	}
	return nil
}
