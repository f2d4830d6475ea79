package dot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/node"
)

// Options configures DOT rendering.
type Options struct {
	// Detailed adds each node's tag line to its label.
	// When false, only the kind name is shown.
	Detailed bool
}

// style holds the Graphviz attributes of one leaf kind.
type style struct {
	shape string
	fill  string
}

var styles = map[node.Kind]style{
	node.KindCity:           {shape: "house", fill: "lightblue"},
	node.KindIndustrialZone: {shape: "box3d", fill: "khaki"},
	node.KindStadium:        {shape: "ellipse", fill: "palegreen"},
}

// Exporter is the DOT renderer. It is stateless and safe for concurrent use.
type Exporter struct {
	opts Options
}

// New returns an Exporter with the given options.
func New(opts Options) *Exporter { return &Exporter{opts: opts} }

// ExportCity renders the attribute list of a City.
func (e *Exporter) ExportCity(c *node.City) (string, error) { return e.attrs(c), nil }

// ExportIndustrialZone renders the attribute list of an IndustrialZone.
func (e *Exporter) ExportIndustrialZone(z *node.IndustrialZone) (string, error) {
	return e.attrs(z), nil
}

// ExportStadium renders the attribute list of a Stadium.
func (e *Exporter) ExportStadium(s *node.Stadium) (string, error) { return e.attrs(s), nil }

// ExportGraph renders the body of g's cluster: its label followed by one
// statement per child. Leaf children become node statements keyed by their
// path; graph children become nested clusters.
func (e *Exporter) ExportGraph(g *node.Graph, children []export.Fragment) ([]export.Fragment, error) {
	var buf strings.Builder
	fmt.Fprintf(&buf, "label=%q;\n", g.Kind().String())
	buf.WriteString("style=\"rounded,dashed\";\n")
	for _, c := range children {
		writeStatement(&buf, c)
	}
	return []export.Fragment{{Text: buf.String()}}, nil
}

// Finish wraps the root in a digraph. A lone leaf root becomes a single node.
func (e *Exporter) Finish(root node.Node, frags []export.Fragment) ([]export.Fragment, error) {
	var body strings.Builder
	for _, f := range frags {
		writeStatement(&body, f)
	}

	var buf strings.Builder
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"filled\", fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")
	buf.WriteString(indent(body.String()))
	buf.WriteString("}\n")
	return []export.Fragment{{Kind: root.Kind(), Text: buf.String()}}, nil
}

// writeStatement emits a leaf fragment as a node statement and a graph
// fragment as a cluster subgraph. Graphviz only draws subgraphs whose name
// starts with "cluster".
func writeStatement(buf *strings.Builder, f export.Fragment) {
	if f.Kind != node.KindGraph {
		fmt.Fprintf(buf, "%q [%s];\n", "n"+suffix(f.Path), f.Text)
		return
	}
	fmt.Fprintf(buf, "subgraph %q {\n", "cluster"+suffix(f.Path))
	buf.WriteString(indent(f.Text))
	buf.WriteString("}\n")
}

func (e *Exporter) attrs(n node.Node) string {
	label := n.Kind().String()
	if e.opts.Detailed {
		label += "\n" + n.Describe()
	}
	st := styles[n.Kind()]
	return fmt.Sprintf("label=%q, shape=%s, fillcolor=%s", label, st.shape, st.fill)
}

// suffix derives a stable Graphviz ID suffix from a path: "", "_0", "_1_0".
func suffix(p node.Path) string {
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func indent(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(l)
	}
	return b.String()
}

var (
	_ export.Exporter = (*Exporter)(nil)
	_ export.Finisher = (*Exporter)(nil)
)
