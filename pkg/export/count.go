package export

import "github.com/matzehuels/graphexport/pkg/node"

// Counts summarizes the nodes of a graph.
type Counts struct {
	Cities          int
	IndustrialZones int
	Stadiums        int
	Graphs          int // including the root, if it is a graph
	MaxDepth        int // deepest path length; 0 for a lone root
}

// Leaves returns the total number of leaf nodes.
func (c Counts) Leaves() int { return c.Cities + c.IndustrialZones + c.Stadiums }

// Count tallies the nodes reachable from root. It runs the same traversal as
// [Export], so it fails on the same structural problems.
func Count(root node.Node, opts ...Option) (Counts, error) {
	frags, err := Export(root, counter{}, opts...)
	if err != nil {
		return Counts{}, err
	}

	var c Counts
	for _, f := range frags {
		switch f.Kind {
		case node.KindCity:
			c.Cities++
		case node.KindIndustrialZone:
			c.IndustrialZones++
		case node.KindStadium:
			c.Stadiums++
		case node.KindGraph:
			c.Graphs++
		}
		c.MaxDepth = max(c.MaxDepth, f.Path.Depth())
	}
	return c, nil
}

// counter renders nothing; each graph adds a marker fragment ahead of its
// children so the tally sees every node exactly once.
type counter struct{}

func (counter) ExportCity(*node.City) (string, error)                     { return "", nil }
func (counter) ExportIndustrialZone(*node.IndustrialZone) (string, error) { return "", nil }
func (counter) ExportStadium(*node.Stadium) (string, error)               { return "", nil }

func (counter) ExportGraph(_ *node.Graph, children []Fragment) ([]Fragment, error) {
	return append([]Fragment{{}}, children...), nil
}
