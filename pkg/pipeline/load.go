package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/export"
	graphio "github.com/matzehuels/graphexport/pkg/io"
	"github.com/matzehuels/graphexport/pkg/node"
	"github.com/matzehuels/graphexport/pkg/observability"
)

// Load reads the graph description document at path ("-" for standard
// input) and validates the resulting tree.
func Load(ctx context.Context, path string) (root node.Node, err error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	nodes := 0
	defer func() {
		hooks.OnLoadComplete(ctx, path, nodes, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCanceled, err, "load %s", path)
	}
	root, err = graphio.Import(path)
	if err != nil {
		return nil, err
	}
	counts, err := export.Count(root)
	if err != nil {
		return nil, err
	}
	nodes = counts.Leaves() + counts.Graphs
	return root, nil
}
