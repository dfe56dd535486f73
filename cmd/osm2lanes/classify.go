package main

import (
	"fmt"
	"io"

	"github.com/LdDl/osm2lanes"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
	colorCyan = lipgloss.Color("86")

	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

type classifyOpts struct {
	file     string
	template string
}

func newClassifyCmd() *cobra.Command {
	opts := classifyOpts{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify lanes of templates described in TOML file",
		Example: `  osm2lanes classify --file templates.toml
  osm2lanes classify --file templates.toml --template boulevard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			templates, err := osm2lanes.LoadTemplatesTOML(opts.file)
			if err != nil {
				return err
			}
			logger.Debug("Templates loaded", "file", opts.file, "templates", len(templates))

			cache := osm2lanes.NewTemplateCache()
			found := false
			for _, template := range templates {
				if opts.template != "" && template.Name != opts.template {
					continue
				}
				found = true
				key, cls := cache.Classify(template.Lanes)
				renderClassification(cmd.OutOrStdout(), template, key, cls)
			}
			if !found {
				return errors.Errorf("No template named '%s' in file '%s'", opts.template, opts.file)
			}
			logger.Debug("Templates classified", "distinct", cache.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "templates.toml", "TOML file with lane templates")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "classify only template with given name")
	return cmd
}

// renderClassification prints lanes of the template in sorted order
func renderClassification(w io.Writer, template osm2lanes.LaneTemplate, key osm2lanes.TemplateKey, cls *osm2lanes.LaneClassification) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", template.Name, key)))
	fmt.Fprintf(w, "configuration: %s, groups: %d\nforward: %s\nbackward: %s\n", cls.Configuration, len(cls.Groups), cls.ForwardFlags, cls.BackwardFlags)

	rows := make([][]string, 0, len(cls.Sorted))
	for _, laneIdx := range cls.Sorted {
		lane := template.Lanes[laneIdx]
		group := "-"
		if groupIdx := cls.GroupOf(laneIdx); groupIdx >= 0 {
			group = fmt.Sprintf("%d", groupIdx)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", laneIdx),
			fmt.Sprintf("%.2f", lane.Position),
			fmt.Sprintf("%.2f", lane.Width),
			lane.Direction.String(),
			lane.LaneType.String(),
			lane.VehicleType.String(),
			group,
			cls.Lanes[laneIdx].String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Lane", "Position", "Width", "Direction", "Type", "Vehicle", "Group", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 7 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
}
