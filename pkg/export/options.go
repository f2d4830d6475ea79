package export

// Option configures a traversal.
type Option func(*config)

type config struct {
	maxDepth   int
	cycleCheck bool
}

func newConfig(opts []Option) config {
	cfg := config{cycleCheck: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth bounds graph nesting. A graph nested more than n levels below
// the root fails the traversal with DEPTH_EXCEEDED. Zero or negative means
// unbounded, the default.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithCycleCheck toggles detection of graphs that contain themselves.
// It is enabled by default; a disabled check on a cyclic graph never
// terminates unless a context deadline or max depth stops it.
func WithCycleCheck(enabled bool) Option {
	return func(c *config) { c.cycleCheck = enabled }
}
