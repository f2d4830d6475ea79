// Package node defines the closed set of graph elements exported by
// graphexport.
//
// # Overview
//
// A graph is a tree of [Node] values. Leaves are one of a fixed set of kinds:
//
//   - [City]
//   - [IndustrialZone]
//   - [Stadium]
//
// The composite [Graph] owns an ordered sequence of children, each either a
// leaf or a nested Graph. Insertion order is significant and is preserved by
// every traversal in this module.
//
// # Closed Variant Set
//
// [Node] is a sealed interface: only types in this package implement it. The
// set of variants is enumerated by [Kind], and adding a kind is a breaking
// change to every exporter in [github.com/matzehuels/graphexport/pkg/export].
// That dual update is intentional: exporters must handle every kind.
//
// # Construction
//
// Leaves are built with [NewCity], [NewIndustrialZone] and [NewStadium], or
// generically with [NewLeaf]. Composites are built with [NewGraph] and grown
// with [Graph.Append], the only mutator:
//
//	g := node.NewGraph(node.NewCity(), node.NewIndustrialZone())
//	g.Append(node.NewGraph(node.NewStadium()))
//
// The [Builder] offers a fluent façade that validates the result:
//
//	g, err := node.NewBuilder().
//	    City().
//	    Graph(func(b *node.Builder) { b.Stadium() }).
//	    Build()
//
// # Acyclicity
//
// A Graph must never contain itself, directly or transitively. Append does
// not check this; [Validate] and [Builder.Build] do, and exporters detect it
// during traversal.
//
// # Concurrency
//
// Built graphs may be read by any number of goroutines. Append must not run
// concurrently with any traversal of the same Graph.
package node
