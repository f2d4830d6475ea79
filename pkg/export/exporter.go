package export

import (
	"strings"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/node"
)

// Exporter renders nodes. Implementations must handle every variant.
//
// An Exporter used with the engine is called from a single goroutine per
// traversal. Stateless exporters may be shared across concurrent traversals.
type Exporter interface {
	// ExportCity renders a City leaf as the text of one fragment.
	ExportCity(c *node.City) (string, error)
	// ExportIndustrialZone renders an IndustrialZone leaf.
	ExportIndustrialZone(z *node.IndustrialZone) (string, error)
	// ExportStadium renders a Stadium leaf.
	ExportStadium(s *node.Stadium) (string, error)
	// ExportGraph combines the rendered children of g, in child order, into
	// the fragments of g.
	ExportGraph(g *node.Graph, children []Fragment) ([]Fragment, error)
}

// Finisher is implemented by exporters that wrap the complete output in a
// document envelope. Finish is called once, after the root has been
// rendered, with the root's fragments.
type Finisher interface {
	Finish(root node.Node, frags []Fragment) ([]Fragment, error)
}

// Fragment is the rendered output of a single visited node.
type Fragment struct {
	Kind node.Kind // Variant of the node that produced the fragment
	Path node.Path // Location of that node, relative to the exported root
	Text string    // Rendered text

	// Value optionally carries a structured rendering. Exporters that
	// assemble one document tree pass it up between levels and encode it
	// once in Finish; Join ignores it.
	Value any
}

// Location returns the fragment's path as "/0/2".
func (f Fragment) Location() string { return f.Path.String() }

// Join concatenates fragment texts in order.
func Join(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Flatten is an ExportGraph implementation that contributes no text of its
// own: the children's fragments become the graph's fragments.
func Flatten(_ *node.Graph, children []Fragment) ([]Fragment, error) {
	return children, nil
}

// Unimplemented rejects every node with UNSUPPORTED_VARIANT. Embed it in
// exporters that support only some variants and override the rest; the
// unsupported ones then fail the traversal instead of being skipped.
type Unimplemented struct{}

func (Unimplemented) ExportCity(*node.City) (string, error) {
	return "", unsupported(node.KindCity)
}

func (Unimplemented) ExportIndustrialZone(*node.IndustrialZone) (string, error) {
	return "", unsupported(node.KindIndustrialZone)
}

func (Unimplemented) ExportStadium(*node.Stadium) (string, error) {
	return "", unsupported(node.KindStadium)
}

func (Unimplemented) ExportGraph(*node.Graph, []Fragment) ([]Fragment, error) {
	return nil, unsupported(node.KindGraph)
}

func unsupported(k node.Kind) error {
	return errors.New(errors.ErrCodeUnsupportedVariant, "exporter does not support %s nodes", k)
}

var _ Exporter = Unimplemented{}
