// Package export implements type-directed traversal of node graphs.
//
// # Overview
//
// An [Exporter] renders nodes into an external representation. It provides
// one operation per leaf kind plus one for the composite:
//
//	type Exporter interface {
//	    ExportCity(c *node.City) (string, error)
//	    ExportIndustrialZone(z *node.IndustrialZone) (string, error)
//	    ExportStadium(s *node.Stadium) (string, error)
//	    ExportGraph(g *node.Graph, children []Fragment) ([]Fragment, error)
//	}
//
// The traversal engine ([Export], [ExportContext], [Render]) walks a graph
// depth-first in pre-order, selects the operation matching each node's
// variant, and accumulates the rendered [Fragment] values in child order.
// Exporters only render; they never mutate the graph.
//
// # Fragments
//
// Leaf operations return the text of exactly one fragment. ExportGraph
// receives the fragments of the graph's children, already rendered, and
// returns the graph's own fragments: it may pass them through (flattening
// the hierarchy, see [Flatten]) or wrap them. Fragments returned with a zero
// Kind are attributed to the graph itself.
//
// # Failure Semantics
//
// Export is all-or-nothing. Any error stops the walk and no fragments are
// returned. Errors carry codes from [github.com/matzehuels/graphexport/pkg/errors]:
//
//   - UNSUPPORTED_VARIANT: a node variant has no matching operation, either
//     because the engine does not know it or because the exporter declines
//     it (see [Unimplemented]). Nodes are never skipped silently.
//   - CYCLIC_GRAPH: a graph contains itself.
//   - DEPTH_EXCEEDED: nesting exceeds [WithMaxDepth].
//   - INVALID_INPUT: a nil node was found.
//   - CANCELED: the context passed to [ExportContext] was canceled.
//
// # Stack Usage
//
// The walk keeps an explicit stack of frames, so arbitrarily deep nesting
// consumes heap, not goroutine stack.
//
// # Extending the Node Set
//
// Adding a leaf kind requires a new method on [Exporter] and on every
// implementation, plus a case in the engine. This dual update is the price of
// dispatching on a closed variant set, and the compiler enforces it for all
// exporters.
package export
