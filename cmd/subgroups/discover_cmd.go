package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aouyang1/go-subgroup/results"
	"github.com/spf13/cobra"
)

const noSubgroups = "No subgroups have been found"

func discoverCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &inputConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover the subgroups of a class",
		Long:  `Discover the regions where the errors of a class deviate the most from their average and print them deduplicated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, res, err := config.run(cmd.Context())
			if err != nil {
				return err
			}
			res = res.ForClass(config.class)
			if res.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), noSubgroups)
				return nil
			}
			return write(cmd.OutOrStdout(), config.format, res.Summary(), func(w *tabwriter.Writer) {
				writeRecords(w, res.Summary())
			})
		},
	}
	config.register(cmd)
	return cmd
}

func writeRecords(w *tabwriter.Writer, records []results.Record) {
	fmt.Fprintln(w, "Subgroup\tSize\tAvg Error\tQuality")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\n", r.Subgroup, r.Size, r.AvgError, r.Quality)
	}
}
