// Package jsontree renders node graphs as a nested JSON document.
//
// Unlike the flattening text formats, the JSON form keeps the hierarchy:
//
//	{
//	  "kind": "graph",
//	  "children": [
//	    {"kind": "city", "description": "This is a city"},
//	    {"kind": "graph", "children": []}
//	  ]
//	}
//
// Leaves render to one compact object each; a graph folds the objects of
// its children into a single graph value, and [Exporter.Finish] encodes the
// whole document once. The document can be read back by
// [github.com/matzehuels/graphexport/pkg/io.Read].
package jsontree

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/node"
)

type leaf struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// graph holds its children as already built graph values or leaf
// objects kept in their encoded form.
type graph struct {
	Kind     string `json:"kind"`
	Children []any  `json:"children"`
}

// Exporter is the JSON renderer. It is stateless and safe for concurrent use.
type Exporter struct {
	// Indent is the per-level indentation of the final document.
	// Empty produces compact output.
	Indent string
}

// New returns an Exporter indenting with two spaces.
func New() *Exporter { return &Exporter{Indent: "  "} }

func (e *Exporter) ExportCity(c *node.City) (string, error)                     { return encodeLeaf(c) }
func (e *Exporter) ExportIndustrialZone(z *node.IndustrialZone) (string, error) { return encodeLeaf(z) }
func (e *Exporter) ExportStadium(s *node.Stadium) (string, error)               { return encodeLeaf(s) }

// ExportGraph links the children into one graph value. Nested graphs are
// reused as built; the document is encoded once by Finish.
func (e *Exporter) ExportGraph(g *node.Graph, children []export.Fragment) ([]export.Fragment, error) {
	out := graph{Kind: g.Kind().String(), Children: make([]any, len(children))}
	for i, c := range children {
		if v, ok := c.Value.(graph); ok {
			out.Children[i] = v
			continue
		}
		out.Children[i] = json.RawMessage(c.Text)
	}
	return []export.Fragment{{Value: out}}, nil
}

// Finish encodes the document, indented unless Indent is empty, and
// terminates it with a newline. A leaf root is re-encoded from its text.
func (e *Exporter) Finish(root node.Node, frags []export.Fragment) ([]export.Fragment, error) {
	var v any = json.RawMessage(export.Join(frags))
	if len(frags) == 1 && frags[0].Value != nil {
		v = frags[0].Value
	}

	var (
		data []byte
		err  error
	)
	if e.Indent == "" {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", e.Indent)
	}
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return []export.Fragment{{Kind: root.Kind(), Text: string(data) + "\n"}}, nil
}

func encodeLeaf(n node.Node) (string, error) {
	data, err := json.Marshal(leaf{Kind: n.Kind().String(), Description: n.Describe()})
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", n.Kind(), err)
	}
	return string(data), nil
}

var (
	_ export.Exporter = (*Exporter)(nil)
	_ export.Finisher = (*Exporter)(nil)
)
