package node

import (
	"slices"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// Node is a graph element. It is implemented only by [*City],
// [*IndustrialZone], [*Stadium] and [*Graph].
type Node interface {
	// Kind returns the variant tag of the node.
	Kind() Kind
	// Describe returns the node-level tag line, e.g. "This is a city".
	Describe() string

	sealed()
}

// City is a leaf node.
type City struct{}

// IndustrialZone is a leaf node.
type IndustrialZone struct{}

// Stadium is a leaf node.
type Stadium struct{}

// NewCity returns a new City leaf.
func NewCity() *City { return &City{} }

// NewIndustrialZone returns a new IndustrialZone leaf.
func NewIndustrialZone() *IndustrialZone { return &IndustrialZone{} }

// NewStadium returns a new Stadium leaf.
func NewStadium() *Stadium { return &Stadium{} }

func (*City) Kind() Kind           { return KindCity }
func (*IndustrialZone) Kind() Kind { return KindIndustrialZone }
func (*Stadium) Kind() Kind        { return KindStadium }

func (*City) Describe() string           { return "This is a city" }
func (*IndustrialZone) Describe() string { return "This is an industrial zone" }
func (*Stadium) Describe() string        { return "This is a stadium" }

func (*City) sealed()           {}
func (*IndustrialZone) sealed() {}
func (*Stadium) sealed()        {}

// NewLeaf returns a new leaf of the given kind.
// It fails with INVALID_KIND if k is not a leaf kind.
func NewLeaf(k Kind) (Node, error) {
	switch k {
	case KindCity:
		return NewCity(), nil
	case KindIndustrialZone:
		return NewIndustrialZone(), nil
	case KindStadium:
		return NewStadium(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "%s is not a leaf kind", k)
}

// Graph is the composite node. It owns an ordered sequence of children.
//
// The zero value is an empty graph ready to use.
type Graph struct {
	children []Node
}

// NewGraph returns a graph holding children in the given order.
func NewGraph(children ...Node) *Graph {
	g := &Graph{}
	return g.Append(children...)
}

func (*Graph) Kind() Kind       { return KindGraph }
func (*Graph) Describe() string { return "This is a graph" }
func (*Graph) sealed()          {}

// Append adds children to the end of the graph and returns g for chaining.
//
// The caller must not append a node that contains g, directly or
// transitively: graphs are acyclic by construction and Append does not check
// it. Nil children are stored as given and rejected later by [Validate] and
// by exporters.
func (g *Graph) Append(children ...Node) *Graph {
	g.children = append(g.children, children...)
	return g
}

// Children returns a copy of the graph's children in insertion order.
// The result is never nil.
func (g *Graph) Children() []Node {
	if g == nil || len(g.children) == 0 {
		return []Node{}
	}
	return slices.Clone(g.children)
}

// Child returns the i-th child, or nil and false if i is out of range.
func (g *Graph) Child(i int) (Node, bool) {
	if g == nil || i < 0 || i >= len(g.children) {
		return nil, false
	}
	return g.children[i], true
}

// Len returns the number of direct children.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.children)
}
