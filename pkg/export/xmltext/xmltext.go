// Package xmltext renders node graphs as XML-shaped text.
//
// Every leaf produces one fragment: a header naming the kind and the format,
// followed by the node's tag line, each on its own line:
//
//	Exporting city in xml format
//	This is a city
//
// Graphs contribute no text; their children are exported as if they were
// top-level, so nested graphs are flattened in pre-order. An empty graph
// exports to nothing.
package xmltext

import (
	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/node"
)

// Format is the name of the format in headers.
const Format = "xml"

// Exporter is the XML-shaped text renderer. It is stateless and safe for
// concurrent use.
type Exporter struct{}

// New returns an Exporter.
func New() *Exporter { return &Exporter{} }

// ExportCity renders a City.
func (e *Exporter) ExportCity(c *node.City) (string, error) {
	return fragment("city", c), nil
}

// ExportIndustrialZone renders an IndustrialZone.
func (e *Exporter) ExportIndustrialZone(z *node.IndustrialZone) (string, error) {
	return fragment("industrial zone", z), nil
}

// ExportStadium renders a Stadium.
func (e *Exporter) ExportStadium(s *node.Stadium) (string, error) {
	return fragment("stadium", s), nil
}

// ExportGraph passes the children's fragments through unchanged.
func (e *Exporter) ExportGraph(g *node.Graph, children []export.Fragment) ([]export.Fragment, error) {
	return export.Flatten(g, children)
}

func fragment(label string, n node.Node) string {
	return "Exporting " + label + " in " + Format + " format\n" + n.Describe() + "\n"
}

var _ export.Exporter = (*Exporter)(nil)
