// Package pkg provides the core libraries for graphexport.
//
// # Overview
//
// graphexport models places as a composite graph: cities, industrial zones
// and stadiums are leaves, and graphs group leaves and other graphs in a
// fixed order. Exporters turn such a graph into text. The pkg directory is
// organized into three areas:
//
//  1. [node] and [export] - Domain logic (node model, traversal engine)
//  2. [export/xmltext], [export/jsontree], [export/yamltree], [export/dot] -
//     Concrete exporters
//  3. [io], [pipeline], [cache], [observability] - Loading, orchestration
//     and infrastructure
//
// # Architecture
//
// The typical data flow through graphexport:
//
//	Graph document (JSON / YAML / TOML) or node.Builder
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [node] package (sealed node tree)
//	         ↓
//	    [export] package (depth-first walk, one call per node)
//	         ↓
//	    xml / json / yaml / dot / svg output
//
// # Quick Start
//
// Build a graph and export it:
//
//	import (
//	    "github.com/matzehuels/graphexport/pkg/export"
//	    "github.com/matzehuels/graphexport/pkg/export/xmltext"
//	    "github.com/matzehuels/graphexport/pkg/node"
//	)
//
//	g, _ := node.NewBuilder().City().IndustrialZone().Stadium().Build()
//	out, _ := export.Render(g, xmltext.New())
//	fmt.Print(out)
//
// # Main Packages
//
// [node] - The closed set of node variants, the Graph composite, paths,
// structural validation and the fluent Builder.
//
// [export] - The Exporter contract and the traversal engine. The engine
// dispatches every node to exactly one exporter operation, hands each graph
// the fragments of its children and fails with UNSUPPORTED_VARIANT,
// CYCLIC_GRAPH or DEPTH_EXCEEDED instead of skipping anything.
//
// [io] - Reading and writing graph description documents.
//
// [pipeline] - Load → export for several formats at once, with caching.
//
// [errors] - Coded errors shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/export/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [node]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/node
// [export]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/export
// [export/xmltext]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/export/xmltext
// [export/jsontree]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/export/jsontree
// [export/yamltree]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/export/yamltree
// [export/dot]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/export/dot
// [io]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphexport/pkg/errors
package pkg
