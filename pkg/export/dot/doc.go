// Package dot renders node graphs as Graphviz diagrams.
//
// # Overview
//
// The [Exporter] produces DOT source in which every leaf becomes a Graphviz
// node and every graph becomes a cluster subgraph holding its children, so
// the composite hierarchy stays visible:
//
//	digraph G {
//	  subgraph "cluster" {
//	    label="graph";
//	    "n_0" [label="city", shape=house, ...];
//	    subgraph "cluster_1" { ... }
//	  }
//	}
//
// Node IDs derive from each node's path ("n_1_0" is the first child of the
// second child of the root), so output is deterministic and IDs are unique
// even when a subgraph is reachable twice.
//
// # Rendering
//
// [RenderSVG] lays out DOT source with the embedded Graphviz engine from
// github.com/goccy/go-graphviz; no external binaries are needed.
//
//	dotSrc, err := export.Render(g, dot.New(dot.Options{}))
//	svg, err := dot.RenderSVG(ctx, dotSrc)
package dot
