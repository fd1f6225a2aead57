package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func dendrogramCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &inputConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "dendrogram",
		Short: "Print the merge tree of the subgroups of a class",
		Long:  `Cluster the deduplicated subgroups of a class by average linkage and print the leaves, the dissimilarity matrix and the linkage matrix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, res, err := config.run(cmd.Context())
			if err != nil {
				return err
			}
			if res.ForClass(config.class).IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), noSubgroups)
				return nil
			}
			c, err := p.Cluster(cmd.Context(), res, config.class)
			if err != nil {
				return err
			}
			d := p.Dendrogram(c)
			return write(cmd.OutOrStdout(), config.format, d, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "Leaf\tSubgroup")
				for i, l := range d.Labels {
					fmt.Fprintf(w, "%d\t%s\n", i, l)
				}
				fmt.Fprintln(w, "")
				fmt.Fprintln(w, "Node\tLeft\tRight\tDistance\tCount")
				for i, m := range d.Linkage {
					fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%d\n", len(d.Labels)+i, m.Left, m.Right, m.Distance, m.Count)
				}
			})
		},
	}
	config.register(cmd)
	return cmd
}
