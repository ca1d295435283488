package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func divisionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "divisions",
		Short: "List the divisions of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			divisions, err := catalog.ListDivisions(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DIVISION\tPACKS")
			for _, d := range divisions {
				fmt.Fprintf(w, "%s\t%d\n", d.Descriptor, d.PackCount)
			}
			return w.Flush()
		},
	}
}
