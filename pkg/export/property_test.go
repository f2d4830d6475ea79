package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/node"
)

// drawGraph draws a random acyclic graph of bounded depth and fan-out.
func drawGraph(rt *rapid.T, depth int) *node.Graph {
	g := node.NewGraph()
	n := rapid.IntRange(0, 4).Draw(rt, "children")
	for range n {
		if depth > 0 && rapid.Bool().Draw(rt, "nested") {
			g.Append(drawGraph(rt, depth-1))
			continue
		}
		k := rapid.SampledFrom(node.LeafKinds()).Draw(rt, "kind")
		leaf, err := node.NewLeaf(k)
		require.NoError(rt, err)
		g.Append(leaf)
	}
	return g
}

// leafNames lists leaves in pre-order by plain recursion, the reference
// the iterative engine is checked against.
func leafNames(n node.Node) []string {
	g, ok := n.(*node.Graph)
	if !ok {
		return []string{n.Kind().String()}
	}
	var out []string
	for _, c := range g.Children() {
		out = append(out, leafNames(c)...)
	}
	return out
}

// kindNames renders each leaf as "<kind>\n".
type kindNames struct{}

func (kindNames) ExportCity(c *node.City) (string, error) { return c.Kind().String() + "\n", nil }
func (kindNames) ExportIndustrialZone(z *node.IndustrialZone) (string, error) {
	return z.Kind().String() + "\n", nil
}
func (kindNames) ExportStadium(s *node.Stadium) (string, error) { return s.Kind().String() + "\n", nil }
func (kindNames) ExportGraph(g *node.Graph, children []export.Fragment) ([]export.Fragment, error) {
	return export.Flatten(g, children)
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGraph(rt, 4)

		first, err := export.Render(g, kindNames{})
		require.NoError(rt, err)
		second, err := export.Render(g, kindNames{})
		require.NoError(rt, err)
		require.Equal(rt, first, second, "exporting twice must be byte-identical")
	})
}

func TestProperty_PreOrderLeaves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGraph(rt, 4)

		frags, err := export.Export(g, kindNames{})
		require.NoError(rt, err)

		want := leafNames(g)
		require.Len(rt, frags, len(want), "one fragment per leaf")
		for i, f := range frags {
			require.Equal(rt, want[i]+"\n", f.Text, "fragment %d", i)
			require.Equal(rt, want[i], f.Kind.String(), "fragment %d", i)
		}
	})
}

func TestProperty_ChildOrderConcatenation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGraph(rt, 3)

		whole, err := export.Render(g, kindNames{})
		require.NoError(rt, err)

		var parts []string
		for _, c := range g.Children() {
			part, err := export.Render(c, kindNames{})
			require.NoError(rt, err)
			parts = append(parts, part)
		}
		require.Equal(rt, strings.Join(parts, ""), whole)
	})
}

func TestProperty_CountMatchesLeaves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGraph(rt, 4)

		c, err := export.Count(g)
		require.NoError(rt, err)
		require.Equal(rt, len(leafNames(g)), c.Leaves())
		require.GreaterOrEqual(rt, c.Graphs, 1)
	})
}
