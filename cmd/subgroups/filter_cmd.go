package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/options"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/spf13/cobra"
)

type filterCmdConfig struct {
	*inputConfig
	threshold float64
	selected  []string
}

func (fc *filterCmdConfig) register(cmd *cobra.Command) {
	fc.inputConfig.register(cmd)
	cmd.Flags().Float64Var(&(fc.threshold), "threshold", 0, "merge subgroups whose dissimilarity is at or below this value, between 0 and 1")
	cmd.Flags().StringArrayVar(&(fc.selected), "selected", nil, "description of a selected subgroup, only subgroups over the same attributes are kept")
}

// filter runs the discovery and collapses the clustered subgroups of the class at the
// configured threshold
func (fc *filterCmdConfig) filter(ctx context.Context) (*dataset.Table, []results.Row, error) {
	f := &options.Filter{Threshold: fc.threshold, Selected: fc.selected}
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	p, data, res, err := fc.run(ctx)
	if err != nil {
		return nil, nil, err
	}
	c, err := p.Cluster(ctx, res, fc.class)
	if err != nil {
		return nil, nil, err
	}
	rows, _, err := p.FilterByThreshold(c, f)
	if err != nil {
		return nil, nil, err
	}
	return data, rows, nil
}

func filterCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &filterCmdConfig{inputConfig: &inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Merge near duplicate subgroups at a threshold",
		Long:  `Collapse every merge of the subgroup clustering at or below the threshold into its highest quality subgroup and print the survivors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows, err := config.filter(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noSubgroups)
				return nil
			}
			records := (&results.Table{Rows: rows}).Summary()
			return write(cmd.OutOrStdout(), config.format, records, func(w *tabwriter.Writer) {
				writeRecords(w, records)
			})
		},
	}
	config.register(cmd)
	return cmd
}
