package node

import (
	"go.uber.org/multierr"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// Validate checks the structural invariants of the graph rooted at n:
// no nil nodes and no cycles. Every violation found is reported; the
// returned error combines them and can be split with [multierr.Errors].
// Each combined error carries INVALID_INPUT or CYCLIC_GRAPH.
//
// A subgraph reachable along several paths is allowed as long as it never
// contains itself.
func Validate(n Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeInvalidInput, "root node is nil")
	}
	root, ok := n.(*Graph)
	if !ok {
		return nil
	}

	type frame struct {
		g     *Graph
		index int
		next  int
	}

	var errs error
	onPath := map[*Graph]bool{root: true}
	stack := []*frame{{g: root}}

	// at rebuilds the path of child i of the top frame; only needed for errors.
	at := func(i int) Path {
		p := make(Path, 0, len(stack))
		for _, f := range stack[1:] {
			p = append(p, f.index)
		}
		return append(p, i)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= top.g.Len() {
			delete(onPath, top.g)
			stack = stack[:len(stack)-1]
			continue
		}

		i := top.next
		top.next++

		switch c := top.g.children[i].(type) {
		case nil:
			errs = multierr.Append(errs, errors.New(errors.ErrCodeInvalidInput, "nil node at %s", at(i)))
		case *Graph:
			if c == nil {
				errs = multierr.Append(errs, errors.New(errors.ErrCodeInvalidInput, "nil graph at %s", at(i)))
				continue
			}
			if onPath[c] {
				errs = multierr.Append(errs, errors.New(errors.ErrCodeCyclicGraph, "graph at %s contains itself", at(i)))
				continue
			}
			onPath[c] = true
			stack = append(stack, &frame{g: c, index: i})
		}
	}
	return errs
}
