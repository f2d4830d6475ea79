package node

// Builder assembles a [Graph] fluently. Methods append in call order and
// return the builder for chaining; [Builder.Build] validates the result.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	g *Graph
}

// NewBuilder returns a builder for a new, empty graph.
func NewBuilder() *Builder {
	return &Builder{g: NewGraph()}
}

// City appends a City leaf.
func (b *Builder) City() *Builder { return b.Add(NewCity()) }

// IndustrialZone appends an IndustrialZone leaf.
func (b *Builder) IndustrialZone() *Builder { return b.Add(NewIndustrialZone()) }

// Stadium appends a Stadium leaf.
func (b *Builder) Stadium() *Builder { return b.Add(NewStadium()) }

// Add appends arbitrary nodes, including previously built graphs.
func (b *Builder) Add(nodes ...Node) *Builder {
	b.g.Append(nodes...)
	return b
}

// Graph appends a nested graph populated by fn.
func (b *Builder) Graph(fn func(*Builder)) *Builder {
	sub := NewBuilder()
	if fn != nil {
		fn(sub)
	}
	return b.Add(sub.g)
}

// Build validates and returns the graph. On error the graph is not returned.
func (b *Builder) Build() (*Graph, error) {
	if err := Validate(b.g); err != nil {
		return nil, err
	}
	return b.g, nil
}
