package export

import (
	"context"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/node"
)

// Export walks the graph rooted at root and returns the fragments produced by
// e, in traversal order. See [ExportContext].
func Export(root node.Node, e Exporter, opts ...Option) ([]Fragment, error) {
	return ExportContext(context.Background(), root, e, opts...)
}

// Render exports root and returns the concatenated fragment texts.
func Render(root node.Node, e Exporter, opts ...Option) (string, error) {
	frags, err := Export(root, e, opts...)
	if err != nil {
		return "", err
	}
	return Join(frags), nil
}

// ExportContext walks the graph rooted at root depth-first in pre-order and
// dispatches every node to the matching operation of e. Children are visited
// in insertion order and their fragments are handed to ExportGraph of their
// parent. If e implements [Finisher], Finish is applied to the root's
// fragments.
//
// The walk checks ctx between nodes. On any error no fragments are returned.
// For a fixed graph and a deterministic exporter the output is always
// identical.
func ExportContext(ctx context.Context, root node.Node, e Exporter, opts ...Option) ([]Fragment, error) {
	if e == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "exporter is nil")
	}
	w := walker{exp: e, cfg: newConfig(opts)}

	frags, err := w.walk(ctx, root)
	if err != nil {
		return nil, err
	}

	if f, ok := e.(Finisher); ok {
		frags, err = f.Finish(root, frags)
		if err != nil {
			return nil, exporterError(err, "finish")
		}
	}
	return frags, nil
}

// frame is one graph being rendered on the explicit walk stack. Frames
// record only their index in the parent; full paths are rebuilt from the
// stack on demand so that deep nesting stays linear in memory.
type frame struct {
	g     *node.Graph
	index int        // position in the parent graph; unused for the root
	next  int        // index of the next child to visit
	frags []Fragment // rendered children so far
}

type walker struct {
	exp    Exporter
	cfg    config
	stack  []*frame
	onPath map[*node.Graph]bool
}

func (w *walker) walk(ctx context.Context, root node.Node) ([]Fragment, error) {
	switch r := root.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidInput, "root node is nil")
	case *node.Graph:
		if r == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "root graph is nil")
		}
		w.onPath = make(map[*node.Graph]bool)
		w.push(r, 0)
	default:
		f, err := w.leaf(root, nil)
		if err != nil {
			return nil, err
		}
		return []Fragment{f}, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeCanceled, err, "export canceled")
		}

		top := w.stack[len(w.stack)-1]
		if top.next >= top.g.Len() {
			out, err := w.exp.ExportGraph(top.g, top.frags)
			if err != nil {
				return nil, exporterError(err, "graph at %s", w.path())
			}
			w.attribute(out)

			w.pop()
			if len(w.stack) == 0 {
				return out, nil
			}
			parent := w.stack[len(w.stack)-1]
			parent.frags = append(parent.frags, out...)
			continue
		}

		i := top.next
		top.next++
		child, _ := top.g.Child(i)

		sub, isGraph := child.(*node.Graph)
		if !isGraph {
			f, err := w.leaf(child, w.path(i))
			if err != nil {
				return nil, err
			}
			top.frags = append(top.frags, f)
			continue
		}

		if sub == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "nil graph at %s", w.path(i))
		}
		if w.cfg.cycleCheck && w.onPath[sub] {
			return nil, errors.New(errors.ErrCodeCyclicGraph, "graph at %s contains itself", w.path(i))
		}
		// The child graph sits one level below the current top.
		if w.cfg.maxDepth > 0 && len(w.stack) > w.cfg.maxDepth {
			return nil, errors.New(errors.ErrCodeDepthExceeded, "graph at %s nested deeper than %d", w.path(i), w.cfg.maxDepth)
		}
		w.push(sub, i)
	}
}

func (w *walker) push(g *node.Graph, index int) {
	if w.cfg.cycleCheck {
		w.onPath[g] = true
	}
	w.stack = append(w.stack, &frame{g: g, index: index, frags: make([]Fragment, 0, g.Len())})
}

func (w *walker) pop() {
	top := w.stack[len(w.stack)-1]
	if w.cfg.cycleCheck {
		delete(w.onPath, top.g)
	}
	w.stack[len(w.stack)-1] = nil
	w.stack = w.stack[:len(w.stack)-1]
}

// path returns the location of the top frame's graph, extended by extra
// child indices.
func (w *walker) path(extra ...int) node.Path {
	var p node.Path
	if len(w.stack) > 1 {
		p = make(node.Path, 0, len(w.stack)-1+len(extra))
		for _, f := range w.stack[1:] {
			p = append(p, f.index)
		}
	}
	return append(p, extra...)
}

// attribute assigns fragments produced by the top graph itself to it.
func (w *walker) attribute(frags []Fragment) {
	var at node.Path
	for i := range frags {
		if frags[i].Kind != 0 {
			continue
		}
		if at == nil {
			at = w.path()
		}
		frags[i].Kind = node.KindGraph
		frags[i].Path = at
	}
}

// leaf dispatches a non-composite node. The match is total over the leaf
// kinds; anything else is an unsupported variant.
func (w *walker) leaf(n node.Node, at node.Path) (Fragment, error) {
	var (
		text string
		err  error
	)

	switch v := n.(type) {
	case nil:
		return Fragment{}, errors.New(errors.ErrCodeInvalidInput, "nil node at %s", at)
	case *node.City:
		text, err = w.exp.ExportCity(v)
	case *node.IndustrialZone:
		text, err = w.exp.ExportIndustrialZone(v)
	case *node.Stadium:
		text, err = w.exp.ExportStadium(v)
	default:
		return Fragment{}, errors.New(errors.ErrCodeUnsupportedVariant, "no export operation for %T at %s", n, at)
	}

	if err != nil {
		return Fragment{}, exporterError(err, "%s at %s", n.Kind(), at)
	}
	return Fragment{Kind: n.Kind(), Path: at, Text: text}, nil
}

// exporterError keeps coded errors from exporters intact and codes the rest
// as internal failures.
func exporterError(err error, format string, args ...any) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "export "+format, args...)
}
