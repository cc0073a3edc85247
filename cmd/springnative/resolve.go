package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/go-springnative/nativetools"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve VERSION",
		Short: "Print the native build tools version for a Spring Native version",
		Example: `  springnative resolve 0.10.3
  springnative resolve 0.11.0-M2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tooling, ok := nativetools.Resolve(args[0])
			if !ok {
				return fmt.Errorf("no compatible native build tools version for spring native %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), tooling)
			return nil
		},
	}
}
