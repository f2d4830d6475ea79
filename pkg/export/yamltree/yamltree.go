// Package yamltree renders node graphs as a nested YAML document with the
// same shape as the JSON form:
//
//	kind: graph
//	children:
//	  - kind: city
//	    description: This is a city
//	  - kind: graph
//	    children: []
//
// Graphs are assembled as [yaml.Node] trees and encoded once by
// [Exporter.Finish]. The document can be read back by
// [github.com/matzehuels/graphexport/pkg/io.Read].
package yamltree

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/node"
)

const indent = 2

// Exporter is the YAML renderer. It is stateless and safe for concurrent use.
type Exporter struct{}

// New returns an Exporter.
func New() *Exporter { return &Exporter{} }

func (e *Exporter) ExportCity(c *node.City) (string, error)                     { return encodeLeaf(c) }
func (e *Exporter) ExportIndustrialZone(z *node.IndustrialZone) (string, error) { return encodeLeaf(z) }
func (e *Exporter) ExportStadium(s *node.Stadium) (string, error)               { return encodeLeaf(s) }

// ExportGraph links the children's nodes into a mapping with a children
// sequence. Nested graphs are reused as built; only leaf text is decoded.
func (e *Exporter) ExportGraph(g *node.Graph, children []export.Fragment) ([]export.Fragment, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(children))}
	for _, c := range children {
		n, err := childNode(c)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	if len(seq.Content) == 0 {
		seq.Style = yaml.FlowStyle
	}

	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{
		scalar("kind"), scalar(g.Kind().String()),
		scalar("children"), seq,
	}}
	return []export.Fragment{{Value: m}}, nil
}

// Finish encodes the root document. A leaf root is already encoded.
func (e *Exporter) Finish(root node.Node, frags []export.Fragment) ([]export.Fragment, error) {
	if len(frags) != 1 || frags[0].Value == nil {
		return []export.Fragment{{Kind: root.Kind(), Text: export.Join(frags)}}, nil
	}
	text, err := encode(frags[0].Value)
	if err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}
	return []export.Fragment{{Kind: root.Kind(), Text: text}}, nil
}

func childNode(c export.Fragment) (*yaml.Node, error) {
	if n, ok := c.Value.(*yaml.Node); ok {
		return n, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(c.Text), &doc); err != nil {
		return nil, fmt.Errorf("decode child at %s: %w", c.Location(), err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("decode child at %s: empty document", c.Location())
	}
	return doc.Content[0], nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

type leaf struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
}

func encodeLeaf(n node.Node) (string, error) {
	text, err := encode(leaf{Kind: n.Kind().String(), Description: n.Describe()})
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", n.Kind(), err)
	}
	return text, nil
}

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	_ export.Exporter = (*Exporter)(nil)
	_ export.Finisher = (*Exporter)(nil)
)
