package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

// logger writes to w at Debug level when verbose is set, Warn otherwise.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "springnative",
		Short: "Spring Native build customization",
		Long: `springnative maps Spring Native versions to compatible GraalVM native build
tools versions and applies the Spring Native customization to build model
snapshots.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log customization details to stderr")

	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newCustomizeCommand(opts))

	return rootCmd
}
