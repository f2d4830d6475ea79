package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/pkg/export"
	graphio "github.com/matzehuels/graphexport/pkg/io"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print node counts and nesting depth of a graph document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := graphio.StdinPath
			if len(args) == 1 {
				path = args[0]
			}
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, out io.Writer, path string) error {
	runner := c.newRunner()
	defer runner.Close()

	root, err := runner.Load(ctx, path)
	if err != nil {
		return err
	}
	opts := c.cfg.PipelineOptions()
	counts, err := export.Count(root, opts.EngineOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, StyleTitle.Render(displayName(path)))
	printKeyValue(out, "root", root.Kind().String())
	printKeyValue(out, "cities", strconv.Itoa(counts.Cities))
	printKeyValue(out, "industrial zones", strconv.Itoa(counts.IndustrialZones))
	printKeyValue(out, "stadiums", strconv.Itoa(counts.Stadiums))
	printKeyValue(out, "graphs", strconv.Itoa(counts.Graphs))
	printKeyValue(out, "max depth", strconv.Itoa(counts.MaxDepth))
	return nil
}
