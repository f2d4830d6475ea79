package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/pkg/errors"
	graphio "github.com/matzehuels/graphexport/pkg/io"
	"github.com/matzehuels/graphexport/pkg/pipeline"
)

// exported is one finished pipeline run awaiting output.
type exported struct {
	source string
	result *pipeline.Result
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file...]",
		Short: "Export graph documents to xml, json, yaml, dot or svg",
		Long: `Export reads graph description documents (JSON, YAML or TOML, chosen by
file extension) and writes the exported artifacts to standard output.

With no file, or when file is -, the document is read from standard input
as YAML. When more than one artifact is produced, each is preceded by a
"==> file → format <==" header line.

Every file is loaded and exported before anything is written, so a failure
in any file produces no output.`,
		Example: `  graphexport export city.yaml
  graphexport export -f json,dot city.yaml region.toml
  cat city.json | graphexport export --max-depth 8 -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{graphio.StdinPath}
			}
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	addExportFlags(cmd)
	return cmd
}

// addExportFlags registers the flags shared by export and demo. They are
// bound to the configuration keys of the same name.
func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("formats", "f", nil, "output formats, comma separated (default from config, else xml)")
	cmd.Flags().Int("max-depth", 0, "fail on graphs nested deeper than this (0 = unlimited)")
	cmd.Flags().Bool("detailed", false, "include node descriptions in dot and svg output")

	_ = cmd.RegisterFlagCompletionFunc("formats", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func (c *CLI) runExport(ctx context.Context, out, status io.Writer, paths []string) error {
	opts := c.cfg.PipelineOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner()
	defer runner.Close()

	runs := make([]exported, 0, len(paths))
	for _, path := range paths {
		prog := newProgress(c.Logger)
		root, err := runner.Load(ctx, path)
		if err != nil {
			return err
		}
		result, err := runner.Execute(ctx, root, opts)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "export %s", displayName(path))
		}
		prog.done(fmt.Sprintf("Exported %s", displayName(path)))
		printStats(status, result.Stats.NodeCount, len(result.Artifacts), result.CacheInfo.All)
		runs = append(runs, exported{source: displayName(path), result: result})
	}

	return writeArtifacts(out, runs, opts.Formats)
}

// writeArtifacts writes every artifact in input order, then format order.
func writeArtifacts(w io.Writer, runs []exported, formats []string) error {
	multi := len(runs)*len(formats) > 1
	for _, run := range runs {
		for _, format := range formats {
			data := run.result.Artifacts[format]
			if multi {
				printArtifact(w, run.source, format)
			}
			if _, err := w.Write(data); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", format)
			}
			if multi && len(data) > 0 && data[len(data)-1] != '\n' {
				fmt.Fprintln(w)
			}
		}
	}
	return nil
}

func displayName(path string) string {
	if path == graphio.StdinPath {
		return "stdin"
	}
	return path
}
