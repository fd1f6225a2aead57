package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aouyang1/go-subgroup/region"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/spf13/cobra"
)

type regionsCmdConfig struct {
	*filterCmdConfig
	x string
	y string
}

func regionsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &regionsCmdConfig{filterCmdConfig: &filterCmdConfig{inputConfig: &inputConfig{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Print the plot rectangles of the filtered subgroups",
		Long: `Print the rectangle each filtered subgroup covers on a scatter plot of two attributes.
Without --x and --y the axes of the first subgroup are used and only subgroups over that pair are drawn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, rows, err := config.filter(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noSubgroups)
				return nil
			}

			x, y := config.x, config.y
			if x == "" && y == "" {
				x, y = rows[0].XColumn(), rows[0].YColumn()
			}
			if x == "" || y == "" {
				return fmt.Errorf("both --x and --y are required")
			}
			onAxes := make([]results.Row, 0, len(rows))
			for _, r := range rows {
				sameX := r.XColumn() == x || r.XColumn() == y
				sameY := r.YColumn() == "" || r.YColumn() == x || r.YColumn() == y
				if sameX && sameY {
					onAxes = append(onAxes, r)
				}
			}

			rects, err := region.Overlays(onAxes, x, y, data)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), config.format, rects, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "Subgroup\t%s\t%s\tDirection\tMean SG\tMean Dataset\n", x, y)
				for _, r := range rects {
					fmt.Fprintf(w, "%s\t[%.4f, %.4f]\t[%.4f, %.4f]\t%s\t%.4f\t%.4f\n",
						r.Subgroup, r.X0, r.X1, r.Y0, r.Y1, r.Direction, r.MeanSG, r.MeanDataset)
				}
			})
		},
	}
	config.register(cmd)
	cmd.Flags().StringVar(&(config.x), "x", "", "attribute on the horizontal axis")
	cmd.Flags().StringVar(&(config.y), "y", "", "attribute on the vertical axis")
	return cmd
}
