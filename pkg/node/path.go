package node

import (
	"slices"
	"strconv"
	"strings"
)

// Path locates a node by the child indices leading to it from the root.
// The root itself has the empty path.
type Path []int

// String renders the path as "/0/2"; the root renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// Depth returns the number of graphs between the root and the located node.
func (p Path) Depth() int { return len(p) }

// Child returns a new path extended by index i. p is not modified.
func (p Path) Child(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

// Equal reports whether p and q locate the same node.
func (p Path) Equal(q Path) bool { return slices.Equal(p, q) }
