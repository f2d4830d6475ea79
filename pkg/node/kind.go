package node

import (
	"strings"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// Kind enumerates the node variants. The leaf kinds form a closed set;
// KindGraph identifies the composite.
type Kind int

const (
	// KindCity identifies a [City] leaf.
	KindCity Kind = iota + 1
	// KindIndustrialZone identifies an [IndustrialZone] leaf.
	KindIndustrialZone
	// KindStadium identifies a [Stadium] leaf.
	KindStadium
	// KindGraph identifies the [Graph] composite.
	KindGraph
)

var kindNames = map[Kind]string{
	KindCity:           "city",
	KindIndustrialZone: "industrial_zone",
	KindStadium:        "stadium",
	KindGraph:          "graph",
}

// String returns the canonical lowercase name of the kind, or "unknown".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsLeaf reports whether k is one of the leaf kinds.
func (k Kind) IsLeaf() bool {
	return k == KindCity || k == KindIndustrialZone || k == KindStadium
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// LeafKinds returns the leaf kinds in declaration order.
func LeafKinds() []Kind {
	return []Kind{KindCity, KindIndustrialZone, KindStadium}
}

// Kinds returns every kind, leaves first.
func Kinds() []Kind {
	return append(LeafKinds(), KindGraph)
}

// ParseKind resolves a kind name. Matching is case-insensitive and accepts
// "industrialzone" and "industrial-zone" as spellings of industrial_zone.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	if norm == "industrialzone" {
		norm = "industrial_zone"
	}
	for k, name := range kindNames {
		if name == norm {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidKind, "unknown node kind %q", s)
}
