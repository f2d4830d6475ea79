package node

import (
	"testing"

	"go.uber.org/multierr"

	"github.com/matzehuels/graphexport/pkg/errors"
)

func TestValidateAcyclic(t *testing.T) {
	shared := NewGraph(NewCity())
	g := NewGraph(shared, NewGraph(shared), NewStadium())

	if err := Validate(g); err != nil {
		t.Errorf("Validate() = %v, want nil for shared acyclic subgraph", err)
	}
	if err := Validate(NewCity()); err != nil {
		t.Errorf("Validate(leaf) = %v, want nil", err)
	}
}

func TestValidateNilRoot(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate(nil) = %v, want INVALID_INPUT", err)
	}
}

func TestValidateDirectCycle(t *testing.T) {
	g := NewGraph(NewCity())
	g.Append(g)

	err := Validate(g)
	if !errors.Is(err, errors.ErrCodeCyclicGraph) {
		t.Fatalf("Validate() = %v, want CYCLIC_GRAPH", err)
	}
}

func TestValidateTransitiveCycle(t *testing.T) {
	outer := NewGraph()
	inner := NewGraph(NewStadium())
	outer.Append(NewGraph(inner))
	inner.Append(outer)

	if err := Validate(outer); !errors.Is(err, errors.ErrCodeCyclicGraph) {
		t.Fatalf("Validate() = %v, want CYCLIC_GRAPH", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	g := NewGraph(nil, NewCity())
	g.Append(g, NewGraph(nil))

	errs := multierr.Errors(Validate(g))
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}

	codes := map[errors.Code]int{}
	for _, err := range errs {
		codes[errors.GetCode(err)]++
	}
	if codes[errors.ErrCodeInvalidInput] != 2 || codes[errors.ErrCodeCyclicGraph] != 1 {
		t.Errorf("codes = %v, want 2 INVALID_INPUT and 1 CYCLIC_GRAPH", codes)
	}
}

func TestBuilder(t *testing.T) {
	g, err := NewBuilder().
		City().
		IndustrialZone().
		Graph(func(b *Builder) { b.Stadium().Graph(nil) }).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	nested, _ := g.Child(2)
	sub, ok := nested.(*Graph)
	if !ok {
		t.Fatalf("child 2 = %T, want *Graph", nested)
	}
	if sub.Len() != 2 {
		t.Errorf("nested Len() = %d, want 2", sub.Len())
	}
}

func TestBuilderRejectsInvalid(t *testing.T) {
	g, err := NewBuilder().City().Add(nil).Build()
	if err == nil || g != nil {
		t.Fatalf("Build() = %v, %v; want error and nil graph", g, err)
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build() error = %v, want INVALID_INPUT", err)
	}
}
