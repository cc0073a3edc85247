package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	springnative "github.com/albertocavalcante/go-springnative"
	"github.com/albertocavalcante/go-springnative/gradle"
	"github.com/albertocavalcante/go-springnative/gradle/modelfile"
)

func newCustomizeCommand(root *rootOptions) *cobra.Command {
	var (
		dsl      string
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "customize FILE...",
		Short: "Apply the Spring Native customization to build model files",
		Long: `Parses each build model file, runs one Spring Native generation pass on it
and prints the customized model, or the changes with --diff. Files are
processed concurrently and printed in the order given.`,
		Example: `  springnative customize BUILD.model
  springnative customize --dsl kotlin --diff app/BUILD.model lib/BUILD.model`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := springnative.PlatformFor(dsl)
			if err != nil {
				return err
			}
			logger := root.logger(cmd.ErrOrStderr())

			outputs := make([][]byte, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					c, err := springnative.New(platform, springnative.WithLogger(logger.With("file", path)))
					if err != nil {
						return err
					}
					out, err := customizeFile(c, path, showDiff)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					outputs[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, out := range outputs {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "# %s\n", args[i])
				}
				if _, err := w.Write(out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dsl, "dsl", "groovy", "Gradle DSL of the project: groovy or kotlin")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print the changes instead of the customized model")

	return cmd
}

func customizeFile(c *springnative.Customizer, path string, showDiff bool) ([]byte, error) {
	b, err := modelfile.ParseFile(path)
	if err != nil {
		return nil, err
	}

	before := b.Clone()
	if err := c.Customize(b); err != nil {
		return nil, err
	}

	if !showDiff {
		return modelfile.Format(b), nil
	}
	var buf bytes.Buffer
	writeDiff(&buf, gradle.Diff(before, b))
	return buf.Bytes(), nil
}

func writeDiff(w io.Writer, d *gradle.BuildDiff) {
	if d.IsEmpty() {
		fmt.Fprintln(w, "no changes")
		return
	}
	for _, p := range d.AddedPlugins {
		fmt.Fprintf(w, "+ plugin %s %s\n", p.ID, p.Version)
	}
	for _, p := range d.ChangedPlugins {
		fmt.Fprintf(w, "~ plugin %s %s -> %s\n", p.ID, p.OldVersion, p.NewVersion)
	}
	for _, p := range d.RemovedPlugins {
		fmt.Fprintf(w, "- plugin %s %s\n", p.ID, p.Version)
	}
	for _, r := range d.AddedRepositories {
		fmt.Fprintf(w, "+ plugin_repository %s\n", r)
	}
	for _, r := range d.RemovedRepositories {
		fmt.Fprintf(w, "- plugin_repository %s\n", r)
	}
	for _, dep := range d.AddedDependencies {
		fmt.Fprintf(w, "+ dependency %s %s\n", dep.ID, dep.Dependency.Coordinates())
	}
	for _, dep := range d.RemovedDependencies {
		fmt.Fprintf(w, "- dependency %s %s\n", dep.ID, dep.Dependency.Coordinates())
	}
	for _, name := range d.CustomizedTasks {
		fmt.Fprintf(w, "~ task %s\n", name)
	}
}
