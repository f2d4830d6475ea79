package node

import (
	"testing"

	"github.com/matzehuels/graphexport/pkg/errors"
)

func TestLeafKinds(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		kind     Kind
		describe string
	}{
		{"city", NewCity(), KindCity, "This is a city"},
		{"industrial zone", NewIndustrialZone(), KindIndustrialZone, "This is an industrial zone"},
		{"stadium", NewStadium(), KindStadium, "This is a stadium"},
		{"graph", NewGraph(), KindGraph, "This is a graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.node.Describe(); got != tt.describe {
				t.Errorf("Describe() = %q, want %q", got, tt.describe)
			}
		})
	}
}

func TestNewLeaf(t *testing.T) {
	for _, k := range LeafKinds() {
		n, err := NewLeaf(k)
		if err != nil {
			t.Fatalf("NewLeaf(%v) error: %v", k, err)
		}
		if n.Kind() != k {
			t.Errorf("NewLeaf(%v).Kind() = %v", k, n.Kind())
		}
	}

	if _, err := NewLeaf(KindGraph); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("NewLeaf(KindGraph) error = %v, want INVALID_KIND", err)
	}
	if _, err := NewLeaf(Kind(99)); err == nil {
		t.Error("NewLeaf(99) should fail")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"city", KindCity, false},
		{"City", KindCity, false},
		{" stadium ", KindStadium, false},
		{"industrial_zone", KindIndustrialZone, false},
		{"industrial-zone", KindIndustrialZone, false},
		{"IndustrialZone", KindIndustrialZone, false},
		{"graph", KindGraph, false},
		{"", 0, true},
		{"airport", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), parsed, err, k)
		}
	}
	if Kind(0).String() != "unknown" {
		t.Errorf("Kind(0).String() = %q, want unknown", Kind(0).String())
	}
	if Kind(0).Valid() || !KindGraph.Valid() {
		t.Error("Valid() mismatch")
	}
	if KindGraph.IsLeaf() || !KindStadium.IsLeaf() {
		t.Error("IsLeaf() mismatch")
	}
}

func TestGraphChildrenOrder(t *testing.T) {
	c, z, s := NewCity(), NewIndustrialZone(), NewStadium()
	g := NewGraph(c)
	g.Append(z).Append(s)

	children := g.Children()
	if len(children) != 3 || g.Len() != 3 {
		t.Fatalf("len = %d, Len() = %d, want 3", len(children), g.Len())
	}
	want := []Node{c, z, s}
	for i := range want {
		if children[i] != want[i] {
			t.Errorf("children[%d] = %T, want %T", i, children[i], want[i])
		}
	}
}

func TestGraphChildrenIsCopy(t *testing.T) {
	g := NewGraph(NewCity())
	children := g.Children()
	children[0] = NewStadium()

	if first, _ := g.Child(0); first.Kind() != KindCity {
		t.Error("mutating Children() result should not affect the graph")
	}
}

func TestEmptyGraph(t *testing.T) {
	var zero Graph
	if zero.Children() == nil || len(zero.Children()) != 0 {
		t.Error("zero Graph should have empty, non-nil children")
	}

	var nilGraph *Graph
	if nilGraph.Children() == nil || nilGraph.Len() != 0 {
		t.Error("nil *Graph should behave as empty")
	}
	if _, ok := nilGraph.Child(0); ok {
		t.Error("Child on nil graph should report false")
	}
}

func TestPath(t *testing.T) {
	var root Path
	if root.String() != "/" || root.Depth() != 0 {
		t.Errorf("root path = %q depth %d", root.String(), root.Depth())
	}

	p := root.Child(0).Child(2)
	if p.String() != "/0/2" || p.Depth() != 2 {
		t.Errorf("path = %q depth %d, want /0/2 depth 2", p.String(), p.Depth())
	}

	q := p.Child(1)
	r := p.Child(3)
	if q.Equal(r) || !p.Equal(Path{0, 2}) {
		t.Error("Child should not share backing storage between siblings")
	}
}
