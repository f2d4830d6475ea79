package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/export/dot"
	"github.com/matzehuels/graphexport/pkg/export/jsontree"
	"github.com/matzehuels/graphexport/pkg/export/xmltext"
	"github.com/matzehuels/graphexport/pkg/export/yamltree"
	"github.com/matzehuels/graphexport/pkg/node"
	"github.com/matzehuels/graphexport/pkg/observability"
)

// NewExporter returns the exporter for a textual format. SVG has no
// exporter of its own; it is rendered from DOT output.
func NewExporter(format string, opts Options) (export.Exporter, error) {
	switch format {
	case FormatXML:
		return xmltext.New(), nil
	case FormatJSON:
		return jsontree.New(), nil
	case FormatYAML:
		return yamltree.New(), nil
	case FormatDOT, FormatSVG:
		return dot.New(dot.Options{Detailed: opts.Detailed}), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

// Export produces one artifact for root in the given format.
func Export(ctx context.Context, root node.Node, format string, opts Options) (data []byte, err error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, format)
	start := time.Now()
	defer func() {
		hooks.OnExportComplete(ctx, format, len(data), time.Since(start), err)
	}()

	exp, err := NewExporter(format, opts)
	if err != nil {
		return nil, err
	}
	frags, err := export.ExportContext(ctx, root, exp, opts.EngineOptions()...)
	if err != nil {
		return nil, err
	}
	text := export.Join(frags)

	if format == FormatSVG {
		data, err = dot.RenderSVG(ctx, text)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return data, nil
	}
	return []byte(text), nil
}
