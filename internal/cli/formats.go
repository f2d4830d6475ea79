package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/pkg/pipeline"
)

var formatDescriptions = map[string]string{
	pipeline.FormatXML:  "one \"Exporting <kind> in xml format\" block per leaf",
	pipeline.FormatJSON: "nested JSON tree of kinds and descriptions",
	pipeline.FormatYAML: "nested YAML tree of kinds and descriptions",
	pipeline.FormatDOT:  "Graphviz digraph, graphs drawn as clusters",
	pipeline.FormatSVG:  "the DOT output laid out and rendered as SVG",
}

// formatsCommand creates the formats command.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printFormats(cmd.OutOrStdout())
		},
	}
}

func printFormats(w io.Writer) {
	for _, name := range pipeline.FormatNames() {
		desc := formatDescriptions[name]
		if name == pipeline.DefaultFormat {
			desc += " (default)"
		}
		printKeyValue(w, name, desc)
	}
}
