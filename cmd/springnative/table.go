package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/go-springnative/nativetools"
)

func newTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the compatibility table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SPRING NATIVE\tNATIVE BUILD TOOLS")
			for _, e := range nativetools.Default().Entries() {
				fmt.Fprintf(w, "%s\t%s\n", e.Pattern, e.Tooling)
			}
			return w.Flush()
		},
	}
}
