package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	graphio "github.com/matzehuels/graphexport/pkg/io"
	"github.com/matzehuels/graphexport/pkg/node"
)

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var describe string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Export a built-in sample graph",
		Long: `Demo builds a graph holding a city, an industrial zone and a stadium and
exports it. Use --describe to print the sample as a graph document instead,
as a starting point for your own files.`,
		Example: `  graphexport demo
  graphexport demo -f json,yaml
  graphexport demo --describe yaml > city.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if describe != "" {
				return describeSample(cmd.OutOrStdout(), describe)
			}
			return c.runDemo(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addExportFlags(cmd)
	cmd.Flags().StringVar(&describe, "describe", "", "print the sample as a graph document (json, yaml or toml)")
	return cmd
}

// sampleGraph is a flat graph with one node of each leaf kind.
func sampleGraph() (*node.Graph, error) {
	return node.NewBuilder().
		City().
		IndustrialZone().
		Stadium().
		Build()
}

func (c *CLI) runDemo(ctx context.Context, out, status io.Writer) error {
	root, err := sampleGraph()
	if err != nil {
		return err
	}
	opts := c.cfg.PipelineOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner()
	defer runner.Close()

	result, err := runner.Execute(ctx, root, opts)
	if err != nil {
		return err
	}
	if err := writeArtifacts(out, []exported{{source: "demo", result: result}}, opts.Formats); err != nil {
		return err
	}
	printNextStep(status, "Export your own graph", "graphexport demo --describe yaml > city.yaml && graphexport export city.yaml")
	return nil
}

func describeSample(out io.Writer, name string) error {
	format, err := graphio.ParseFormat(name)
	if err != nil {
		return err
	}
	root, err := sampleGraph()
	if err != nil {
		return err
	}
	return graphio.Write(root, out, format)
}
